// Package isa defines the instruction set: the opcode enumeration and the
// decoded Instruction record that package asm builds, package cpu executes,
// and the 27-trit wire encoding that both agree on (see Encode/Decode in
// codec.go). This is the contract shared between assembler and emulator.
package isa

import "fmt"

// Opcode is the closed enumeration of instruction tags. All values other
// than those named below are reserved and decode as ErrUnknownOpcode.
type Opcode int

const (
	NOP  Opcode = 0
	ADD  Opcode = 1
	ADDI Opcode = 2
	SUB  Opcode = 3
	SUBI Opcode = 4
	LDW  Opcode = 5
	STW  Opcode = 6
	JMP  Opcode = 7
	CALL Opcode = 8
	RET  Opcode = 9
	BRZ  Opcode = 10
	HALT Opcode = 63
)

// mnemonics maps every recognized Opcode to its assembly mnemonic. This is
// the isa-level analogue of the opcode table a CPU core consults purely for
// diagnostics; execution semantics live in package cpu.
var mnemonics = map[Opcode]string{
	NOP:  "NOP",
	ADD:  "ADD",
	ADDI: "ADDI",
	SUB:  "SUB",
	SUBI: "SUBI",
	LDW:  "LDW",
	STW:  "STW",
	JMP:  "JMP",
	CALL: "CALL",
	RET:  "RET",
	BRZ:  "BRZ",
	HALT: "HALT",
}

// String renders the opcode's mnemonic, or a numeric fallback for an
// unrecognized value (decode should have already rejected those, but
// String must never panic).
func (op Opcode) String() string {
	if m, ok := mnemonics[op]; ok {
		return m
	}
	return fmt.Sprintf("OP(%d)", int(op))
}

// Valid reports whether op is one of the enumerated opcodes.
func (op Opcode) Valid() bool {
	_, ok := mnemonics[op]
	return ok
}

// RegCount is the number of addressable registers (R0-R26).
const RegCount = 27

// LinkReg is R26, the link register: CALL's return-address target, RET's
// source.
const LinkReg = 26

// ImmBits is the width, in trits, of the immediate/offset field.
const ImmBits = 12

// ImmMax is the largest signed value representable in ImmBits balanced
// trits: (3^12-1)/2.
const ImmMax int64 = 265720

// ImmMin is the smallest representable immediate: -ImmMax.
const ImmMin int64 = -ImmMax

// Instruction is the decoded form of one instruction. It is never stored in
// memory directly -- only its 27-trit encoding (see Encode) is.
type Instruction struct {
	Opcode       Opcode
	Rd, Rs1, Rs2 int
	Imm          int64
}
