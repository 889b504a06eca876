// Package cpu implements the btern CPU: fetch/decode/execute over a
// trit-addressed memory, a 27-register file, a hardwired zero register and
// a tryte-addressed program counter.
//
// Adapted from the teacher's 6502 Cpu (gone/cpu): a struct holding a pointer
// to shared memory plus inline register state, with fetch/decode split out
// of the tick loop. There is no addressing-mode dispatch here -- this ISA's
// fields are fixed by position, not by opcode -- so that machinery from the
// teacher is replaced by isa.Decode.
package cpu

import (
	"errors"
	"fmt"
	"io"

	"github.com/hejops/btern/isa"
	"github.com/hejops/btern/mem"
	"github.com/hejops/btern/trit"
)

// ErrPcOutOfRange is returned when the program counter is negative, or
// names a tryte range that runs past the end of memory, at fetch time.
var ErrPcOutOfRange = errors.New("cpu: pc out of range")

// ErrAddressOutOfRange is returned when an LDW/STW effective address is
// negative or runs past the end of memory.
var ErrAddressOutOfRange = errors.New("cpu: effective address out of range")

// ErrInstructionBudgetExceeded is returned by Run when a positive
// InstructionBudget watchdog runs out before the program halts.
var ErrInstructionBudgetExceeded = errors.New("cpu: instruction budget exceeded")

// Cpu holds all machine state: the register file, the program counter, and
// a pointer to the memory it executes against. All of it is owned
// exclusively by this Cpu value for the duration of execution; there is no
// dynamic allocation once Run is underway.
type Cpu struct {
	Mem *mem.Memory

	Regs [isa.RegCount]trit.Word
	PC   trit.Word

	// InstructionBudget, if positive, bounds the number of fetch/decode/
	// execute cycles Run will perform before faulting with
	// ErrInstructionBudgetExceeded. Zero (the default) or a negative value
	// means unbounded.
	// This is the external watchdog spec.md describes as a trivial,
	// non-core addition: it does not change any instruction's semantics.
	InstructionBudget int64
}

// New returns a Cpu with all registers and the PC zeroed, executing against
// m. Programs are expected to begin at tryte address 0 (PC's all-Z state)
// unless the caller sets PC explicitly before Run.
func New(m *mem.Memory) *Cpu {
	return &Cpu{Mem: m}
}

// Reg reads register i. R0 always reads as the all-Z word, regardless of
// what SetReg(0, ...) was asked to do.
func (c *Cpu) Reg(i int) trit.Word {
	if i == 0 {
		return trit.Word{}
	}
	return c.Regs[i]
}

// SetReg writes register i. Writes to R0 are silently discarded: this is
// the single gating point enforcing the hardwired-zero invariant for every
// instruction with a destination register.
func (c *Cpu) SetReg(i int, w trit.Word) {
	if i == 0 {
		return
	}
	c.Regs[i] = w
}

// nextPC is PC+3 in word arithmetic: sequential advance by one instruction
// (3 trytes).
func (c *Cpu) nextPC() trit.Word {
	return trit.IntToWord(trit.WordToInt(c.PC) + 3)
}

// fetch reads the 27-trit instruction word at PC.
func (c *Cpu) fetch() (trit.Word, error) {
	pcVal := trit.WordToInt(c.PC)
	if pcVal < 0 {
		return trit.Word{}, fmt.Errorf("cpu: pc=%d: %w", pcVal, ErrPcOutOfRange)
	}
	w, err := c.Mem.Read3(int(pcVal))
	if err != nil {
		return trit.Word{}, fmt.Errorf("cpu: pc=%d: %w", pcVal, ErrPcOutOfRange)
	}
	return w, nil
}

// decode unpacks a fetched word into an Instruction.
func (c *Cpu) decode(w trit.Word) (isa.Instruction, error) {
	return isa.Decode(w)
}

// execute dispatches on the decoded opcode. It reports halt=true when a
// HALT instruction fires.
func (c *Cpu) execute(i isa.Instruction) (halt bool, err error) {
	switch i.Opcode {

	case isa.NOP:
		c.PC = c.nextPC()

	case isa.ADD:
		c.add(i.Rd, i.Rs1, i.Rs2)
		c.PC = c.nextPC()

	case isa.ADDI:
		c.addi(i.Rd, i.Rs1, i.Imm)
		c.PC = c.nextPC()

	case isa.SUB:
		c.sub(i.Rd, i.Rs1, i.Rs2)
		c.PC = c.nextPC()

	case isa.SUBI:
		c.subi(i.Rd, i.Rs1, i.Imm)
		c.PC = c.nextPC()

	case isa.LDW:
		if err := c.ldw(i.Rd, i.Rs1, i.Imm); err != nil {
			return false, err
		}
		c.PC = c.nextPC()

	case isa.STW:
		if err := c.stw(i.Rs1, i.Imm, i.Rs2); err != nil {
			return false, err
		}
		c.PC = c.nextPC()

	case isa.JMP:
		c.jmp(i.Imm)

	case isa.CALL:
		c.call(i.Imm)

	case isa.RET:
		c.ret()

	case isa.BRZ:
		c.brz(i.Rs1, i.Imm)

	case isa.HALT:
		return true, nil
	}

	return false, nil
}

// tick runs one fetch/decode/execute cycle.
func (c *Cpu) tick() (halt bool, err error) {
	w, err := c.fetch()
	if err != nil {
		return false, err
	}
	inst, err := c.decode(w)
	if err != nil {
		return false, err
	}
	return c.execute(inst)
}

// Run executes fetch/decode/execute cycles until HALT or a fault. Unlike
// the teacher's NES loop, there is no real-time cycle pacing: this machine
// has no external peripherals to synchronize against, so every tick runs as
// fast as the host can.
func (c *Cpu) Run() error {
	remaining := c.InstructionBudget
	bounded := remaining > 0

	for {
		if bounded {
			if remaining == 0 {
				return ErrInstructionBudgetExceeded
			}
			remaining--
		}

		halt, err := c.tick()
		if err != nil {
			return err
		}
		if halt {
			return nil
		}
	}
}

// Dump renders the register-dump format: 27 lines of
// "Rnn: <27 trit glyphs, MSB first> (<signed integer>)".
func (c *Cpu) Dump(w io.Writer) error {
	for i := 0; i < isa.RegCount; i++ {
		word := c.Reg(i)

		glyphs := make([]byte, trit.WordLen)
		for j := 0; j < trit.WordLen; j++ {
			glyphs[j] = word[trit.WordLen-1-j].String()[0]
		}

		if _, err := fmt.Fprintf(w, "R%02d: %s (%d)\n", i, glyphs, trit.WordToInt(word)); err != nil {
			return err
		}
	}
	return nil
}
