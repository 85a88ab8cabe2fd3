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

package cpu_test

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sixtwo/sixtwo/cpu"
	"github.com/sixtwo/sixtwo/internal/romload"
)

// flatBus is a trivial 64KiB array satisfying cpu.Bus, used instead of
// the bus package so cpu's tests do not depend on it.
type flatBus struct {
	mem [65536]uint8
}

func (b *flatBus) Read(addr uint16) uint8     { return b.mem[addr] }
func (b *flatBus) Write(addr uint16, v uint8) { b.mem[addr] = v }

func (b *flatBus) load(origin uint16, data ...uint8) {
	for i, v := range data {
		b.mem[origin+uint16(i)] = v
	}
}

func newTestCPU(origin uint16, program ...uint8) (*cpu.CPU, *flatBus) {
	bus := &flatBus{}
	bus.load(origin, program...)
	bus.load(0xFFFC, uint8(origin&0xFF), uint8(origin>>8))
	c := cpu.New(bus, cpu.VariantNMOSRicoh)
	c.Reset()
	for !c.Complete() {
		c.Clock()
	}
	return c, bus
}

func runInstruction(c *cpu.CPU) {
	c.Clock()
	for !c.Complete() {
		c.Clock()
	}
}

func TestLDAImmediateThenStore(t *testing.T) {
	c, bus := newTestCPU(0x8000, 0xA9, 0x42, 0x8D, 0x00, 0x02)

	runInstruction(c)
	runInstruction(c)

	assert.Equal(t, uint8(0x42), c.A)
	assert.Equal(t, uint8(0x42), bus.Read(0x0200))
	assert.False(t, c.GetFlag(cpu.FlagZero))
	assert.False(t, c.GetFlag(cpu.FlagNegative))
}

func TestADCOverflow(t *testing.T) {
	c, _ := newTestCPU(0x8000, 0x69, 0x50)
	c.A = 0x50
	c.SetFlag(cpu.FlagCarry, false)

	runInstruction(c)

	assert.Equal(t, uint8(0xA0), c.A)
	assert.True(t, c.GetFlag(cpu.FlagOverflow))
	assert.True(t, c.GetFlag(cpu.FlagNegative))
	assert.False(t, c.GetFlag(cpu.FlagZero))
	assert.False(t, c.GetFlag(cpu.FlagCarry))
}

func TestSBCMatchesADCInverse(t *testing.T) {
	c, _ := newTestCPU(0x8000, 0xE9, 0xF0)
	c.A = 0x50
	c.SetFlag(cpu.FlagCarry, true)

	runInstruction(c)

	assert.Equal(t, uint8(0x60), c.A)
	assert.False(t, c.GetFlag(cpu.FlagCarry))
	assert.False(t, c.GetFlag(cpu.FlagOverflow))
	assert.False(t, c.GetFlag(cpu.FlagNegative))
	assert.False(t, c.GetFlag(cpu.FlagZero))
}

// TestBNETakenWithPageCross mirrors scenario 4: BNE with Z clear,
// offset +0x05, lands across a page boundary and must cost base+2.
func TestBNETakenWithPageCross(t *testing.T) {
	c, _ := newTestCPU(0x80FD, 0xD0, 0x05)
	c.SetFlag(cpu.FlagZero, false)

	ticks := 0
	c.Clock()
	ticks++
	for !c.Complete() {
		c.Clock()
		ticks++
	}

	require.Equal(t, 0x8104, int(c.PC))
	assert.Equal(t, 4, ticks)
}

func TestJMPIndirectPageWrapBug(t *testing.T) {
	bus := &flatBus{}
	bus.load(0x02FF, 0x00)
	bus.load(0x0300, 0x40)
	bus.load(0x0200, 0x80)
	bus.load(0x8000, 0x6C, 0xFF, 0x02)
	bus.load(0xFFFC, 0x00, 0x80)

	c := cpu.New(bus, cpu.VariantNMOSRicoh)
	c.Reset()
	for !c.Complete() {
		c.Clock()
	}

	runInstruction(c)

	assert.Equal(t, uint16(0x8000), c.PC)
}

func TestResetLoadsStackPointerAndVector(t *testing.T) {
	bus := &flatBus{}
	bus.load(0xFFFC, 0x34, 0x12)
	c := cpu.New(bus, cpu.VariantNMOSRicoh)
	c.Reset()

	assert.Equal(t, uint8(0xFD), c.SP)
	assert.Equal(t, uint16(0x1234), c.PC)
}

func TestPHAPLARoundTrip(t *testing.T) {
	c, bus := newTestCPU(0x8000, 0x48, 0x00, 0x68)
	c.A = 0x99
	sp := c.SP

	runInstruction(c) // PHA
	assert.Equal(t, uint8(0x99), bus.Read(0x0100+uint16(sp)))

	c.A = 0x00
	c.PC = 0x8002
	runInstruction(c) // PLA

	assert.Equal(t, uint8(0x99), c.A)
	assert.False(t, c.GetFlag(cpu.FlagZero))
	assert.True(t, c.GetFlag(cpu.FlagNegative))
	assert.Equal(t, sp, c.SP)
}

// TestIllegalOpcodeIsNoOp exercises the XXX catch-all: any unassigned
// byte must consume its nominal cycles and leave register state alone.
func TestIllegalOpcodeIsNoOp(t *testing.T) {
	c, _ := newTestCPU(0x8000, 0x02)
	a, x, y := c.A, c.X, c.Y

	runInstruction(c)

	if diff := deep.Equal([3]uint8{a, x, y}, [3]uint8{c.A, c.X, c.Y}); diff != nil {
		t.Errorf("XXX mutated registers: %v", diff)
	}
}

func TestDEXWrapsAndSetsFlags(t *testing.T) {
	c, _ := newTestCPU(0x8000, 0xCA)
	c.X = 0x00

	runInstruction(c)

	assert.Equal(t, uint8(0xFF), c.X)
	assert.True(t, c.GetFlag(cpu.FlagNegative))
	assert.False(t, c.GetFlag(cpu.FlagZero))
}

func TestJSRWrapsStackPointer(t *testing.T) {
	c, bus := newTestCPU(0x8000, 0x20, 0x00, 0x90)
	c.SP = 0x00

	runInstruction(c)

	assert.Equal(t, uint8(0xFE), c.SP)
	assert.Equal(t, uint16(0x9000), c.PC)
	assert.Equal(t, uint8(0x80), bus.Read(0x0100))
	assert.Equal(t, uint8(0x02), bus.Read(0x01FF))
}

// TestBRKPushesPCPlusOneAndStatus pins down the BRK stack frame: the
// pushed return address is the post-fetch PC plus one, i.e. the BRK
// opcode's address plus 2, skipping the padding byte after BRK — BRK
// is IMP-addressed, so nothing but the fetch and opBRK's own increment
// moves PC.
func TestBRKPushesPCPlusOneAndStatus(t *testing.T) {
	c, bus := newTestCPU(0x8000, 0x00, 0xEA)
	romload.PokeVector(bus, 0xFFFE, 0x9000)
	sp := c.SP

	runInstruction(c)

	assert.Equal(t, uint16(0x9000), c.PC)
	assert.Equal(t, sp-3, c.SP)
	assert.Equal(t, uint8(0x80), bus.Read(0x0100+uint16(sp)))
	assert.Equal(t, uint8(0x02), bus.Read(0x0100+uint16(sp-1)))
	pushedStatus := bus.Read(0x0100 + uint16(sp-2))
	assert.NotZero(t, pushedStatus&uint8(cpu.FlagBreak))
	assert.NotZero(t, pushedStatus&uint8(cpu.FlagUnused))
	assert.True(t, c.GetFlag(cpu.FlagInterrupt))
}

// TestRTIRestoresPCWithoutIncrement exercises the BRK/RTI round trip:
// RTI must not add 1 to the popped PC the way RTS does, and must force
// B=0, U=1 on the restored status byte.
func TestRTIRestoresPCWithoutIncrement(t *testing.T) {
	c, bus := newTestCPU(0x8000, 0x00, 0xEA)
	romload.PokeVector(bus, 0xFFFE, 0x9000)
	bus.load(0x9000, 0x40) // RTI

	runInstruction(c) // BRK
	runInstruction(c) // RTI

	assert.Equal(t, uint16(0x8002), c.PC)
	assert.False(t, c.GetFlag(cpu.FlagBreak))
	assert.True(t, c.GetFlag(cpu.FlagUnused))
}
