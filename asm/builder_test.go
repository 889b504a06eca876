package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hejops/btern/isa"
)

func TestLabelResolvesToRelativeOffset(t *testing.T) {
	b := NewBuilder().
		Jmp("target").
		Nop().
		Label("target").
		Halt()

	instrs, err := b.Instructions()
	assert.NoError(t, err)
	assert.Len(t, instrs, 3)
	assert.Equal(t, int64(6), instrs[0].Imm) // target at tryte 6, jmp at tryte 0
}

func TestUndefinedLabelErrors(t *testing.T) {
	b := NewBuilder().Jmp("nowhere").Halt()
	_, err := b.Instructions()
	assert.Error(t, err)
}

func TestBackwardLabelNegativeOffset(t *testing.T) {
	b := NewBuilder().
		Label("loop").
		Nop().
		Brz(1, "loop").
		Halt()

	instrs, err := b.Instructions()
	assert.NoError(t, err)
	assert.Equal(t, int64(-3), instrs[1].Imm)
}

func TestBuildEncodesEveryInstruction(t *testing.T) {
	b := NewBuilder().AddI(1, 0, 5).Halt()
	trits, err := b.Build()
	assert.NoError(t, err)
	assert.Len(t, trits, 2*instrLen*9) // 2 instructions * 3 trytes * 9 trits

	instrs, err := b.Instructions()
	assert.NoError(t, err)
	assert.Equal(t, isa.ADDI, instrs[0].Opcode)
	assert.Equal(t, isa.HALT, instrs[1].Opcode)
}
