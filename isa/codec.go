package isa

import (
	"errors"
	"fmt"

	"github.com/hejops/btern/trit"
)

// ErrInvalidRegister is returned by Decode when a decoded register index
// falls outside [0, 26].
var ErrInvalidRegister = errors.New("isa: register index out of range [0, 26]")

// ErrUnknownOpcode is returned by Decode when the decoded opcode integer
// does not match any entry in the enumeration.
var ErrUnknownOpcode = errors.New("isa: unknown opcode")

// Wire layout of a 27-trit instruction word, LSB index 0 -> MSB index 26.
const (
	immLo, immHi = 0, 12
	rs2Lo, rs2Hi = 12, 15
	rs1Lo, rs1Hi = 15, 18
	rdLo, rdHi   = 18, 21
	opLo, opHi   = 21, 27
)

// Encode packs i into its 27-trit wire representation. Out-of-range fields
// truncate silently per the fixed-width encoding rules in package trit, so a
// register index that doesn't fit in 3 trits comes back from Decode as a
// different value: 14 decodes as -13 (rejected), 27 decodes as 0 (accepted).
func Encode(i Instruction) trit.Word {
	var w trit.Word
	copy(w[immLo:immHi], trit.IntToTritsFixed(i.Imm, immHi-immLo))
	copy(w[rs2Lo:rs2Hi], trit.IntToTritsFixed(int64(i.Rs2), rs2Hi-rs2Lo))
	copy(w[rs1Lo:rs1Hi], trit.IntToTritsFixed(int64(i.Rs1), rs1Hi-rs1Lo))
	copy(w[rdLo:rdHi], trit.IntToTritsFixed(int64(i.Rd), rdHi-rdLo))
	copy(w[opLo:opHi], trit.IntToTritsFixed(int64(i.Opcode), opHi-opLo))
	return w
}

// Decode unpacks w into an Instruction, validating register indices and the
// opcode against the enumeration.
func Decode(w trit.Word) (Instruction, error) {
	rd := int(trit.TritsToInt(w[rdLo:rdHi]))
	rs1 := int(trit.TritsToInt(w[rs1Lo:rs1Hi]))
	rs2 := int(trit.TritsToInt(w[rs2Lo:rs2Hi]))

	for _, r := range []int{rd, rs1, rs2} {
		if r < 0 || r >= RegCount {
			return Instruction{}, fmt.Errorf("isa: register index %d: %w", r, ErrInvalidRegister)
		}
	}

	op := Opcode(trit.TritsToInt(w[opLo:opHi]))
	if !op.Valid() {
		return Instruction{}, fmt.Errorf("isa: opcode %d: %w", int(op), ErrUnknownOpcode)
	}

	imm := trit.TritsToInt(w[immLo:immHi])

	return Instruction{
		Opcode: op,
		Rd:     rd,
		Rs1:    rs1,
		Rs2:    rs2,
		Imm:    imm,
	}, nil
}
