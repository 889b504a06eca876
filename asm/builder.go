// Package asm is the programmatic assembler: it builds a list of
// isa.Instruction records and encodes them into a flat trit stream ready
// for the on-disk binary format (package trit). There is no symbolic
// parser here -- per spec, a textual assembly front-end is a future
// extension; Builder is the "construct a program in Go" path the teacher's
// own TestLoadProgram/TestThirty use (a hex string built by hand), made
// into a reusable, label-aware API instead of a one-off test fixture.
package asm

import (
	"fmt"

	"github.com/hejops/btern/isa"
	"github.com/hejops/btern/trit"
)

// instrLen is the tryte width of one instruction (one Word).
const instrLen = 3

// pendingLabel records an instruction whose imm field is a not-yet-resolved
// relative offset to a label.
type pendingLabel struct {
	index int // index into b.instrs
	label string
}

// Builder accumulates instructions and resolves label-relative branch/jump/
// call offsets to tryte-unit immediates at Build time.
type Builder struct {
	instrs  []isa.Instruction
	labels  map[string]int // label -> tryte address (index * instrLen)
	pending []pendingLabel
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{labels: map[string]int{}}
}

// Label marks the tryte address of the next instruction emitted.
func (b *Builder) Label(name string) *Builder {
	b.labels[name] = len(b.instrs) * instrLen
	return b
}

func (b *Builder) emit(i isa.Instruction) *Builder {
	b.instrs = append(b.instrs, i)
	return b
}

// emitToLabel emits an instruction whose Imm will be resolved, at Build
// time, to (address of label) - (address of this instruction).
func (b *Builder) emitToLabel(op isa.Opcode, rd, rs1, rs2 int, label string) *Builder {
	b.pending = append(b.pending, pendingLabel{index: len(b.instrs), label: label})
	return b.emit(isa.Instruction{Opcode: op, Rd: rd, Rs1: rs1, Rs2: rs2})
}

// Nop emits NOP.
func (b *Builder) Nop() *Builder { return b.emit(isa.Instruction{Opcode: isa.NOP}) }

// Add emits Rd = Rs1 + Rs2.
func (b *Builder) Add(rd, rs1, rs2 int) *Builder {
	return b.emit(isa.Instruction{Opcode: isa.ADD, Rd: rd, Rs1: rs1, Rs2: rs2})
}

// AddI emits Rd = Rs1 + imm.
func (b *Builder) AddI(rd, rs1 int, imm int64) *Builder {
	return b.emit(isa.Instruction{Opcode: isa.ADDI, Rd: rd, Rs1: rs1, Imm: imm})
}

// Sub emits Rd = Rs1 - Rs2.
func (b *Builder) Sub(rd, rs1, rs2 int) *Builder {
	return b.emit(isa.Instruction{Opcode: isa.SUB, Rd: rd, Rs1: rs1, Rs2: rs2})
}

// SubI emits Rd = Rs1 - imm.
func (b *Builder) SubI(rd, rs1 int, imm int64) *Builder {
	return b.emit(isa.Instruction{Opcode: isa.SUBI, Rd: rd, Rs1: rs1, Imm: imm})
}

// Ldw emits Rd = Mem[Rs1 + offset].
func (b *Builder) Ldw(rd, rs1 int, offset int64) *Builder {
	return b.emit(isa.Instruction{Opcode: isa.LDW, Rd: rd, Rs1: rs1, Imm: offset})
}

// Stw emits Mem[Rs1 + offset] = Rs2.
func (b *Builder) Stw(rs1 int, offset int64, rs2 int) *Builder {
	return b.emit(isa.Instruction{Opcode: isa.STW, Rs1: rs1, Imm: offset, Rs2: rs2})
}

// Jmp emits a relative jump to a label, resolved at Build time.
func (b *Builder) Jmp(label string) *Builder {
	return b.emitToLabel(isa.JMP, 0, 0, 0, label)
}

// JmpOffset emits a relative jump by a literal tryte offset.
func (b *Builder) JmpOffset(offset int64) *Builder {
	return b.emit(isa.Instruction{Opcode: isa.JMP, Imm: offset})
}

// Call emits a relative call to a label, resolved at Build time.
func (b *Builder) Call(label string) *Builder {
	return b.emitToLabel(isa.CALL, 0, 0, 0, label)
}

// CallOffset emits a relative call by a literal tryte offset.
func (b *Builder) CallOffset(offset int64) *Builder {
	return b.emit(isa.Instruction{Opcode: isa.CALL, Imm: offset})
}

// Ret emits RET.
func (b *Builder) Ret() *Builder { return b.emit(isa.Instruction{Opcode: isa.RET}) }

// Brz emits a conditional relative branch to a label if Rs1 is zero.
func (b *Builder) Brz(rs1 int, label string) *Builder {
	return b.emitToLabel(isa.BRZ, 0, rs1, 0, label)
}

// BrzOffset emits BRZ by a literal tryte offset.
func (b *Builder) BrzOffset(rs1 int, offset int64) *Builder {
	return b.emit(isa.Instruction{Opcode: isa.BRZ, Rs1: rs1, Imm: offset})
}

// Halt emits HALT.
func (b *Builder) Halt() *Builder { return b.emit(isa.Instruction{Opcode: isa.HALT}) }

// Instructions resolves all pending label references and returns the final
// instruction list, unencoded.
func (b *Builder) Instructions() ([]isa.Instruction, error) {
	out := make([]isa.Instruction, len(b.instrs))
	copy(out, b.instrs)

	for _, p := range b.pending {
		target, ok := b.labels[p.label]
		if !ok {
			return nil, fmt.Errorf("asm: undefined label %q", p.label)
		}
		here := p.index * instrLen
		out[p.index].Imm = int64(target - here)
	}

	return out, nil
}

// Build resolves labels, encodes every instruction, and flattens the result
// into a single trit stream ready for trit.Encode.
func (b *Builder) Build() ([]trit.Trit, error) {
	instrs, err := b.Instructions()
	if err != nil {
		return nil, err
	}

	trits := make([]trit.Trit, 0, len(instrs)*trit.WordLen)
	for _, inst := range instrs {
		w := isa.Encode(inst)
		trits = append(trits, w[:]...)
	}
	return trits, nil
}
