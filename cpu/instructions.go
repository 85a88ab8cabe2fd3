// Copyright © 2019 mg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cpu

// addWithCarry adds operand and the carry flag to A in 16-bit
// arithmetic, so carry-out and the overflow's sign-mismatch rule both
// fall out of the same intermediate sum. Both ADC and SBC fetch their
// own operand and pass it in explicitly, rather than ADC fetching a
// second time, so SBC's complemented byte survives into the add.
func addWithCarry(c *CPU, operand uint8) uint8 {
	op := uint16(operand)
	a := uint16(c.A)
	carry := uint16(0)
	if c.GetFlag(FlagCarry) {
		carry = 1
	}
	sum := a + op + carry

	c.SetFlag(FlagCarry, sum > 0xFF)
	c.SetFlag(FlagZero, sum&0xFF == 0)
	c.SetFlag(FlagNegative, sum&0x80 != 0)
	c.SetFlag(FlagOverflow, (^(a^op)&(a^sum))&0x80 != 0)

	c.A = uint8(sum & 0xFF)
	return 1
}

func opADC(c *CPU) uint8 {
	return addWithCarry(c, c.fetch())
}

// opSBC is ADC against the bitwise complement of the operand; this is
// the standard two's-complement identity and matches ADC's carry/
// overflow semantics exactly.
func opSBC(c *CPU) uint8 {
	return addWithCarry(c, ^c.fetch())
}

func compare(c *CPU, reg uint8) (carry, zero, negative bool) {
	operand := c.fetch()
	d := uint16(reg) - uint16(operand)
	return reg >= operand, d&0xFF == 0, d&0x80 != 0
}

func opCMP(c *CPU) uint8 {
	carry, zero, negative := compare(c, c.A)
	c.SetFlag(FlagCarry, carry)
	c.SetFlag(FlagZero, zero)
	c.SetFlag(FlagNegative, negative)
	return 1
}

func opCPX(c *CPU) uint8 {
	carry, zero, negative := compare(c, c.X)
	c.SetFlag(FlagCarry, carry)
	c.SetFlag(FlagZero, zero)
	c.SetFlag(FlagNegative, negative)
	return 0
}

func opCPY(c *CPU) uint8 {
	carry, zero, negative := compare(c, c.Y)
	c.SetFlag(FlagCarry, carry)
	c.SetFlag(FlagZero, zero)
	c.SetFlag(FlagNegative, negative)
	return 0
}

// writeShiftResult stores a shift/rotate result back to A when the
// current opcode addresses the accumulator, otherwise to addr_abs.
func (c *CPU) writeShiftResult(result uint8) {
	if OpcodeTable[c.opcode].Mode == ACC {
		c.A = result
	} else {
		c.write(c.addrAbs, result)
	}
}

func opASL(c *CPU) uint8 {
	operand := uint16(c.fetch())
	result := operand << 1
	c.SetFlag(FlagCarry, result&0xFF00 != 0)
	c.SetFlag(FlagZero, result&0xFF == 0)
	c.SetFlag(FlagNegative, result&0x80 != 0)
	c.writeShiftResult(uint8(result & 0xFF))
	return 0
}

func opLSR(c *CPU) uint8 {
	operand := c.fetch()
	c.SetFlag(FlagCarry, operand&0x01 != 0)
	result := operand >> 1
	c.SetFlag(FlagZero, result == 0)
	c.SetFlag(FlagNegative, result&0x80 != 0)
	c.writeShiftResult(result)
	return 0
}

func opROL(c *CPU) uint8 {
	operand := uint16(c.fetch())
	in := uint16(0)
	if c.GetFlag(FlagCarry) {
		in = 1
	}
	result := (operand << 1) | in
	c.SetFlag(FlagCarry, result&0xFF00 != 0)
	c.SetFlag(FlagZero, result&0xFF == 0)
	c.SetFlag(FlagNegative, result&0x80 != 0)
	c.writeShiftResult(uint8(result & 0xFF))
	return 0
}

func opROR(c *CPU) uint8 {
	operand := c.fetch()
	in := uint8(0)
	if c.GetFlag(FlagCarry) {
		in = 0x80
	}
	carryOut := operand&0x01 != 0
	result := in | (operand >> 1)
	c.SetFlag(FlagCarry, carryOut)
	c.SetFlag(FlagZero, result == 0)
	c.SetFlag(FlagNegative, result&0x80 != 0)
	c.writeShiftResult(result)
	return 0
}

func opAND(c *CPU) uint8 {
	c.A &= c.fetch()
	c.setZN(c.A)
	return 1
}

func opORA(c *CPU) uint8 {
	c.A |= c.fetch()
	c.setZN(c.A)
	return 1
}

func opEOR(c *CPU) uint8 {
	c.A ^= c.fetch()
	c.setZN(c.A)
	return 1
}

func opBIT(c *CPU) uint8 {
	operand := c.fetch()
	c.SetFlag(FlagZero, c.A&operand == 0)
	c.SetFlag(FlagNegative, operand&0x80 != 0)
	c.SetFlag(FlagOverflow, operand&0x40 != 0)
	return 0
}

func opINC(c *CPU) uint8 {
	result := c.fetch() + 1
	c.write(c.addrAbs, result)
	c.setZN(result)
	return 0
}

func opDEC(c *CPU) uint8 {
	result := c.fetch() - 1
	c.write(c.addrAbs, result)
	c.setZN(result)
	return 0
}

func opINX(c *CPU) uint8 { c.X++; c.setZN(c.X); return 0 }
func opINY(c *CPU) uint8 { c.Y++; c.setZN(c.Y); return 0 }
func opDEX(c *CPU) uint8 { c.X--; c.setZN(c.X); return 0 }
func opDEY(c *CPU) uint8 { c.Y--; c.setZN(c.Y); return 0 }

func opLDA(c *CPU) uint8 { c.A = c.fetch(); c.setZN(c.A); return 1 }
func opLDX(c *CPU) uint8 { c.X = c.fetch(); c.setZN(c.X); return 1 }
func opLDY(c *CPU) uint8 { c.Y = c.fetch(); c.setZN(c.Y); return 1 }

func opSTA(c *CPU) uint8 { c.write(c.addrAbs, c.A); return 0 }
func opSTX(c *CPU) uint8 { c.write(c.addrAbs, c.X); return 0 }
func opSTY(c *CPU) uint8 { c.write(c.addrAbs, c.Y); return 0 }

func opTAX(c *CPU) uint8 { c.X = c.A; c.setZN(c.X); return 0 }
func opTAY(c *CPU) uint8 { c.Y = c.A; c.setZN(c.Y); return 0 }
func opTSX(c *CPU) uint8 { c.X = c.SP; c.setZN(c.X); return 0 }
func opTXA(c *CPU) uint8 { c.A = c.X; c.setZN(c.A); return 0 }
func opTYA(c *CPU) uint8 { c.A = c.Y; c.setZN(c.A); return 0 }

// opTXS copies X into SP untouched by any flag, unlike every other
// register transfer.
func opTXS(c *CPU) uint8 { c.SP = c.X; return 0 }

func opPHA(c *CPU) uint8 { c.push(c.A); return 0 }

// opPHP pushes P with B and U forced to 1, per the documented PHP
// stack-frame contract.
func opPHP(c *CPU) uint8 {
	c.push(c.StatusByte())
	return 0
}

func opPLA(c *CPU) uint8 {
	c.A = c.pop()
	c.setZN(c.A)
	return 0
}

// opPLP loads P from the stack with U forced to 1 and B forced to 0.
func opPLP(c *CPU) uint8 {
	c.LoadStatusByte(c.pop(), false, true)
	return 0
}

// branch computes the 16-bit wrapped target and charges the documented
// one-or-two extra cycles, shared by all eight conditional branches.
func (c *CPU) branch() uint8 {
	c.cycles++
	target := c.PC + c.addrRel
	if target&0xFF00 != c.PC&0xFF00 {
		c.cycles++
	}
	c.PC = target
	return 0
}

func opBCC(c *CPU) uint8 {
	if !c.GetFlag(FlagCarry) {
		return c.branch()
	}
	return 0
}

func opBCS(c *CPU) uint8 {
	if c.GetFlag(FlagCarry) {
		return c.branch()
	}
	return 0
}

func opBEQ(c *CPU) uint8 {
	if c.GetFlag(FlagZero) {
		return c.branch()
	}
	return 0
}

func opBNE(c *CPU) uint8 {
	if !c.GetFlag(FlagZero) {
		return c.branch()
	}
	return 0
}

func opBMI(c *CPU) uint8 {
	if c.GetFlag(FlagNegative) {
		return c.branch()
	}
	return 0
}

func opBPL(c *CPU) uint8 {
	if !c.GetFlag(FlagNegative) {
		return c.branch()
	}
	return 0
}

func opBVC(c *CPU) uint8 {
	if !c.GetFlag(FlagOverflow) {
		return c.branch()
	}
	return 0
}

func opBVS(c *CPU) uint8 {
	if c.GetFlag(FlagOverflow) {
		return c.branch()
	}
	return 0
}

func opJMP(c *CPU) uint8 {
	c.PC = c.addrAbs
	return 0
}

// opJSR pushes the return address (PC-1, i.e. the last byte of the
// JSR instruction) and jumps to addr_abs. SP moves by exactly two,
// wrapping modulo 256 like every other stack access.
func opJSR(c *CPU) uint8 {
	c.pushWord(c.PC - 1)
	c.PC = c.addrAbs
	return 0
}

func opRTS(c *CPU) uint8 {
	c.PC = c.popWord() + 1
	return 0
}

// opBRK implements a software interrupt: the return address pushed is
// PC+1, the BRK opcode's address plus 2 (skipping the byte after the
// BRK opcode, conventionally a padding byte), followed by P with B and U forced to 1, then I is set and PC is
// loaded from the IRQ/BRK vector.
func opBRK(c *CPU) uint8 {
	c.PC++
	c.SetFlag(FlagInterrupt, true)

	c.pushWord(c.PC)
	c.push(c.StatusByte())

	c.addrAbs = 0xFFFE
	c.PC = c.read16(c.addrAbs)
	return 0
}

// opRTI pulls P then PC low then PC high, incrementing SP after each
// pull, and does not add 1 to the popped PC the way RTS does.
func opRTI(c *CPU) uint8 {
	c.LoadStatusByte(c.pop(), false, true)
	c.PC = c.popWord()
	return 0
}

func opCLC(c *CPU) uint8 { c.SetFlag(FlagCarry, false); return 0 }
func opSEC(c *CPU) uint8 { c.SetFlag(FlagCarry, true); return 0 }
func opCLD(c *CPU) uint8 { c.SetFlag(FlagDecimal, false); return 0 }
func opSED(c *CPU) uint8 { c.SetFlag(FlagDecimal, true); return 0 }
func opCLI(c *CPU) uint8 { c.SetFlag(FlagInterrupt, false); return 0 }
func opSEI(c *CPU) uint8 { c.SetFlag(FlagInterrupt, true); return 0 }
func opCLV(c *CPU) uint8 { c.SetFlag(FlagOverflow, false); return 0 }

func opNOP(c *CPU) uint8 { return 0 }

// opNOPPageCross backs the unofficial read-NOPs (0x1C/0x3C/0x5C/0x7C/
// 0xDC/0xFC): they read memory through ABX addressing and so take the
// page-cross penalty a plain NOP never does.
func opNOPPageCross(c *CPU) uint8 {
	c.fetch()
	return 1
}

// opXXX handles every unassigned opcode slot: no state change beyond
// the nominal cycle count already charged by the table entry.
func opXXX(c *CPU) uint8 {
	return 0
}
