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

// amIMP covers both IMP and ACC table entries. Neither has an operand;
// some implied instructions act on the accumulator, so fetched mirrors
// A for handlers that don't otherwise care which addressing tag fired.
func amIMP(c *CPU) uint8 {
	c.fetched = c.A
	return 0
}

func amIMM(c *CPU) uint8 {
	c.addrAbs = c.PC
	c.PC++
	return 0
}

func amZP0(c *CPU) uint8 {
	c.addrAbs = uint16(c.read(c.PC)) & 0x00FF
	c.PC++
	return 0
}

func amZPX(c *CPU) uint8 {
	c.addrAbs = uint16(c.read(c.PC)+c.X) & 0x00FF
	c.PC++
	return 0
}

func amZPY(c *CPU) uint8 {
	c.addrAbs = uint16(c.read(c.PC)+c.Y) & 0x00FF
	c.PC++
	return 0
}

func amREL(c *CPU) uint8 {
	c.addrRel = uint16(c.read(c.PC))
	c.PC++
	if c.addrRel&0x80 != 0 {
		c.addrRel |= 0xFF00
	}
	return 0
}

func amABS(c *CPU) uint8 {
	lo := uint16(c.read(c.PC))
	hi := uint16(c.read(c.PC + 1))
	c.PC += 2
	c.addrAbs = hi<<8 | lo
	return 0
}

func amABX(c *CPU) uint8 {
	lo := uint16(c.read(c.PC))
	hi := uint16(c.read(c.PC + 1))
	c.PC += 2
	addr := hi<<8 | lo
	addr += uint16(c.X)
	c.addrAbs = addr
	if addr&0xFF00 != hi<<8 {
		return 1
	}
	return 0
}

func amABY(c *CPU) uint8 {
	lo := uint16(c.read(c.PC))
	hi := uint16(c.read(c.PC + 1))
	c.PC += 2
	addr := hi<<8 | lo
	addr += uint16(c.Y)
	c.addrAbs = addr
	if addr&0xFF00 != hi<<8 {
		return 1
	}
	return 0
}

// amIND reproduces the JMP-indirect hardware bug: when the pointer's
// low byte is 0xFF, the target's high byte wraps back to the start of
// the same page instead of crossing into the next one.
func amIND(c *CPU) uint8 {
	ptrLo := uint16(c.read(c.PC))
	ptrHi := uint16(c.read(c.PC + 1))
	ptr := ptrHi<<8 | ptrLo
	c.PC += 2

	if ptrLo == 0x00FF {
		c.addrAbs = uint16(c.read(ptr&0xFF00))<<8 | uint16(c.read(ptr))
	} else {
		c.addrAbs = uint16(c.read(ptr+1))<<8 | uint16(c.read(ptr))
	}
	return 0
}

func amIZX(c *CPU) uint8 {
	t := uint16(c.read(c.PC))
	c.PC++
	lo := uint16(c.read((t + uint16(c.X)) & 0x00FF))
	hi := uint16(c.read((t + uint16(c.X) + 1) & 0x00FF))
	c.addrAbs = hi<<8 | lo
	return 0
}

func amIZY(c *CPU) uint8 {
	t := uint16(c.read(c.PC))
	c.PC++
	lo := uint16(c.read(t & 0x00FF))
	hi := uint16(c.read((t + 1) & 0x00FF))
	addr := hi<<8 | lo
	addr += uint16(c.Y)
	c.addrAbs = addr
	if addr&0xFF00 != hi<<8 {
		return 1
	}
	return 0
}
