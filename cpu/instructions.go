package cpu

import (
	"fmt"

	"github.com/hejops/btern/isa"
	"github.com/hejops/btern/trit"
)

// ADD - Rd = Rs1 + Rs2 (word add, overflow wraps silently)
func (c *Cpu) add(rd, rs1, rs2 int) {
	c.SetReg(rd, trit.AddWords(c.Reg(rs1), c.Reg(rs2)))
}

// ADDI - Rd = Rs1 + imm
func (c *Cpu) addi(rd, rs1 int, imm int64) {
	c.SetReg(rd, trit.AddWords(c.Reg(rs1), trit.IntToWord(imm)))
}

// SUB - Rd = Rs1 + (-Rs2)
func (c *Cpu) sub(rd, rs1, rs2 int) {
	c.SetReg(rd, trit.AddWords(c.Reg(rs1), trit.NegWord(c.Reg(rs2))))
}

// SUBI - Rd = Rs1 + (-imm)
func (c *Cpu) subi(rd, rs1 int, imm int64) {
	c.SetReg(rd, trit.AddWords(c.Reg(rs1), trit.NegWord(trit.IntToWord(imm))))
}

// effectiveAddress computes Rs1 + imm as a tryte address, validating it's
// non-negative. The upper bound is checked by mem.Memory's own Read3/Write3.
func (c *Cpu) effectiveAddress(rs1 int, imm int64) (int, error) {
	ea := trit.WordToInt(c.Reg(rs1)) + imm
	if ea < 0 {
		return 0, fmt.Errorf("cpu: effective address %d: %w", ea, ErrAddressOutOfRange)
	}
	return int(ea), nil
}

// LDW - Rd = Mem[Rs1 + imm .. +2]
func (c *Cpu) ldw(rd, rs1 int, imm int64) error {
	ea, err := c.effectiveAddress(rs1, imm)
	if err != nil {
		return err
	}
	w, err := c.Mem.Read3(ea)
	if err != nil {
		return fmt.Errorf("cpu: effective address %d: %w", ea, ErrAddressOutOfRange)
	}
	c.SetReg(rd, w)
	return nil
}

// STW - Mem[Rs1 + imm .. +2] = Rs2
func (c *Cpu) stw(rs1 int, imm int64, rs2 int) error {
	ea, err := c.effectiveAddress(rs1, imm)
	if err != nil {
		return err
	}
	if err := c.Mem.Write3(ea, c.Reg(rs2)); err != nil {
		return fmt.Errorf("cpu: effective address %d: %w", ea, ErrAddressOutOfRange)
	}
	return nil
}

// JMP - PC = PC + imm (relative, tryte units)
func (c *Cpu) jmp(imm int64) {
	c.PC = trit.IntToWord(trit.WordToInt(c.PC) + imm)
}

// CALL - R26 = PC + 3; PC = PC + imm
func (c *Cpu) call(imm int64) {
	returnAddr := trit.WordToInt(c.PC) + 3
	c.SetReg(isa.LinkReg, trit.IntToWord(returnAddr))
	c.jmp(imm)
}

// RET - PC = R26
func (c *Cpu) ret() {
	c.PC = c.Reg(isa.LinkReg)
}

// BRZ - if Rs1 is all-Z then PC = PC + imm, else PC = NextPC
func (c *Cpu) brz(rs1 int, imm int64) {
	if trit.IsZero(c.Reg(rs1)) {
		c.jmp(imm)
		return
	}
	c.PC = c.nextPC()
}
