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

// Flag identifies a single bit of the status register P.
type Flag uint8

// Status flag bit positions. These are part of the observable contract:
// PHP/PLP push and pop the packed byte, so the positions may never move.
const (
	FlagCarry     Flag = 1 << 0 // C
	FlagZero      Flag = 1 << 1 // Z
	FlagInterrupt Flag = 1 << 2 // I
	FlagDecimal   Flag = 1 << 3 // D, storable, never observed by ADC/SBC
	FlagBreak     Flag = 1 << 4 // B
	FlagUnused    Flag = 1 << 5 // U, always reads 1 on hardware
	FlagOverflow  Flag = 1 << 6 // V
	FlagNegative  Flag = 1 << 7 // N
)

// GetFlag reports whether f is set in P.
func (c *CPU) GetFlag(f Flag) bool {
	return c.P&uint8(f) != 0
}

// SetFlag sets or clears f in P.
func (c *CPU) SetFlag(f Flag, v bool) {
	if v {
		c.P |= uint8(f)
	} else {
		c.P &^= uint8(f)
	}
}

// setZN sets the Z and N flags from a result byte, the pattern shared by
// nearly every load/transfer/arithmetic handler.
func (c *CPU) setZN(v uint8) {
	c.SetFlag(FlagZero, v == 0x00)
	c.SetFlag(FlagNegative, v&0x80 != 0)
}

// LoadStatusByte loads P from a byte pulled off the stack (PLP, RTI),
// forcing B and U to the states spec'd for that path.
func (c *CPU) LoadStatusByte(b uint8, forceBreak, forceUnused bool) {
	c.P = b
	c.SetFlag(FlagBreak, forceBreak)
	c.SetFlag(FlagUnused, forceUnused)
}

// StatusByte returns the packed P register as pushed by PHP/BRK, with B
// and U forced to 1.
func (c *CPU) StatusByte() uint8 {
	return c.P | uint8(FlagBreak) | uint8(FlagUnused)
}
