package isa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hejops/btern/trit"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	// invariant 7: decode(encode(i)) preserves every field
	for _, i := range []Instruction{
		{Opcode: NOP},
		{Opcode: ADDI, Rd: 1, Rs1: 0, Imm: 5},
		{Opcode: ADD, Rd: 3, Rs1: 1, Rs2: 2},
		{Opcode: SUB, Rd: 13, Rs1: 13, Rs2: 13, Imm: -13},
		{Opcode: LDW, Rd: 5, Rs1: 1, Imm: 100},
		{Opcode: STW, Rs1: 1, Rs2: 2, Imm: -100},
		{Opcode: JMP, Imm: 9},
		{Opcode: CALL, Imm: 9},
		{Opcode: RET},
		{Opcode: BRZ, Rs1: 1, Imm: 6},
		{Opcode: HALT},
		{Opcode: ADDI, Rd: 10, Rs1: 0, Imm: ImmMax},
		{Opcode: ADDI, Rd: 10, Rs1: 0, Imm: ImmMin},
	} {
		w := Encode(i)
		got, err := Decode(w)
		assert.NoError(t, err)
		assert.Equal(t, i, got)
	}
}

func TestDecodeInvalidRegister(t *testing.T) {
	// A 3-trit register field only represents [-13, 13]; 27 is out of
	// range but also out of the field's reach (it truncates to 0, which
	// decodes fine). The only way to hit ErrInvalidRegister is a field
	// that decodes negative.
	i := Instruction{Opcode: ADD, Rs1: 0, Rs2: 0}
	w := Encode(i)
	copy(w[rdLo:rdHi], trit.IntToTritsFixed(-1, rdHi-rdLo))
	_, err := Decode(w)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRegister))
}

func TestDecodeUnknownOpcode(t *testing.T) {
	var w trit.Word
	copy(w[opLo:opHi], trit.IntToTritsFixed(42, opHi-opLo))
	_, err := Decode(w)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownOpcode))
}

func TestImmTruncation(t *testing.T) {
	// documented lossy behavior: values outside the 12-trit range truncate
	i := Instruction{Opcode: ADDI, Imm: ImmMax + 1}
	w := Encode(i)
	got, err := Decode(w)
	assert.NoError(t, err)
	assert.NotEqual(t, ImmMax+1, got.Imm)
}

func TestOpcodeStringAndValid(t *testing.T) {
	assert.Equal(t, "ADD", ADD.String())
	assert.Equal(t, "HALT", HALT.String())
	assert.True(t, BRZ.Valid())
	assert.False(t, Opcode(42).Valid())
}
