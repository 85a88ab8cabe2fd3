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

// Package cpu implements the MOS 6502 (NES/Ricoh variant) instruction
// set: the status register, the 256-entry opcode table, the twelve
// addressing modes, the 56 documented instruction handlers plus the
// illegal-opcode catch-all, and the clocked dispatch loop that ties
// them together.
package cpu

import "fmt"

// Variant selects which silicon family the core models. The decode
// table and handler set are identical across variants today; the enum
// exists so decimal-mode gating (see SetFlag(FlagDecimal, ...) callers)
// has somewhere to grow into without reshaping the CPU constructor.
type Variant uint8

const (
	// VariantNMOSRicoh is the Ricoh 2A03/2A07 used in the NES/Famicom:
	// NMOS 6502 core with the decimal mode disabled in hardware.
	VariantNMOSRicoh Variant = iota
	// VariantNMOS is a stock NMOS 6502 with decimal mode wired up.
	VariantNMOS
)

// Bus is the minimal memory interface the core requires. bus.Bus
// satisfies it; tests may supply a fake.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, data uint8)
}

// Logger receives one call per retired instruction when attached via
// SetLogger. It never influences execution; the default logger
// discards everything.
type Logger interface {
	Log(line string)
}

type nopLogger struct{}

func (nopLogger) Log(string) {}

// InvalidStateError reports a programmer error in how the core was
// driven or configured — never an in-band 6502 condition, which per
// the core's error model cannot fail.
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cpu: invalid state: %s", e.Reason)
}

// CPU is the single owned aggregate of programmer-visible and
// execution-scratch state. Every handler and addressing-mode procedure
// takes it by pointer; there is no aliasing.
type CPU struct {
	A, X, Y uint8
	SP      uint8
	PC      uint16
	P       uint8

	fetched uint8
	addrAbs uint16
	addrRel uint16
	cycles  uint8
	opcode  uint8

	clockCount uint64

	variant Variant
	bus     Bus
	logger  Logger
}

// New returns a CPU with zeroed registers, attached to bus. bus must
// not be nil.
func New(bus Bus, variant Variant) *CPU {
	if bus == nil {
		panic(&InvalidStateError{Reason: "New called with a nil bus"})
	}
	return &CPU{bus: bus, variant: variant, logger: nopLogger{}}
}

// SetLogger installs an observer invoked once per retired instruction.
// Passing nil restores the no-op default.
func (c *CPU) SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}
	c.logger = l
}

// Variant reports which silicon family this core models.
func (c *CPU) Variant() Variant {
	return c.variant
}

func (c *CPU) read(addr uint16) uint8 {
	return c.bus.Read(addr)
}

func (c *CPU) write(addr uint16, data uint8) {
	c.bus.Write(addr, data)
}

func (c *CPU) read16(addr uint16) uint16 {
	lo := uint16(c.read(addr))
	hi := uint16(c.read(addr + 1))
	return hi<<8 | lo
}

// push writes a byte to the stack page and decrements SP, wrapping
// modulo 256.
func (c *CPU) push(v uint8) {
	c.write(0x0100+uint16(c.SP), v)
	c.SP--
}

// pop increments SP, wrapping modulo 256, and reads the byte now
// pointed at.
func (c *CPU) pop() uint8 {
	c.SP++
	return c.read(0x0100 + uint16(c.SP))
}

func (c *CPU) pushWord(v uint16) {
	c.push(uint8(v >> 8))
	c.push(uint8(v & 0xFF))
}

func (c *CPU) popWord() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return hi<<8 | lo
}

// fetch reads the operand for the current instruction: the accumulator
// for implied/accumulator addressing, or the byte at addr_abs for
// every other mode. Handlers call this instead of inspecting the
// addressing tag themselves.
func (c *CPU) fetch() uint8 {
	entry := &OpcodeTable[c.opcode]
	if entry.Mode != IMP && entry.Mode != ACC {
		c.fetched = c.read(c.addrAbs)
	}
	return c.fetched
}

// Reset brings the CPU to its documented power-up state and does not
// push anything to the stack: A, X, Y are cleared, SP is set to 0xFD,
// only the U flag is set in P, and PC is loaded from the reset vector.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.P = uint8(FlagUnused)

	c.addrAbs = 0xFFFC
	c.PC = c.read16(c.addrAbs)

	c.addrRel = 0
	c.fetched = 0
	c.addrAbs = 0

	c.cycles = 8
}

// IRQ requests a maskable interrupt. It is ignored if the I flag is
// set. Otherwise it pushes PC and P (B cleared, U and I set) and loads
// PC from the IRQ/BRK vector.
func (c *CPU) IRQ() {
	if c.GetFlag(FlagInterrupt) {
		return
	}
	c.pushWord(c.PC)

	c.SetFlag(FlagBreak, false)
	c.SetFlag(FlagUnused, true)
	c.SetFlag(FlagInterrupt, true)
	c.push(c.P)

	c.addrAbs = 0xFFFE
	c.PC = c.read16(c.addrAbs)

	c.cycles = 7
}

// NMI is unconditional IRQ entry through the NMI vector.
func (c *CPU) NMI() {
	c.pushWord(c.PC)

	c.SetFlag(FlagBreak, false)
	c.SetFlag(FlagUnused, true)
	c.SetFlag(FlagInterrupt, true)
	c.push(c.P)

	c.addrAbs = 0xFFFA
	c.PC = c.read16(c.addrAbs)

	c.cycles = 8
}

// Clock advances the CPU by one cycle. When the current instruction's
// cycle budget has been spent, it fetches and dispatches the next
// opcode before decrementing; otherwise it simply charges the tick.
func (c *CPU) Clock() {
	if c.cycles == 0 {
		instrPC := c.PC
		c.opcode = c.read(c.PC)
		c.SetFlag(FlagUnused, true)
		c.PC++

		entry := &OpcodeTable[c.opcode]
		c.cycles = entry.Cycles

		addrHint := entry.addr(c)
		opHint := entry.exec(c)
		c.cycles += addrHint & opHint

		c.SetFlag(FlagUnused, true)

		c.logger.Log(c.traceLine(instrPC, entry))
	}

	c.clockCount++
	c.cycles--
}

// Complete reports whether the CPU is between instructions, i.e.
// whether the current instruction's cycle budget has been exhausted.
// Hosts that want to single-step a whole instruction call Clock
// repeatedly until Complete returns true.
func (c *CPU) Complete() bool {
	return c.cycles == 0
}

// PC, Registers and similar trivial accessors are intentionally not
// provided beyond the exported struct fields: the aggregate is the
// contract.

func (c *CPU) traceLine(pc uint16, entry *Instruction) string {
	return fmt.Sprintf("%04X %s A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		pc, entry.Mnemonic, c.A, c.X, c.Y, c.P, c.SP, c.clockCount)
}
