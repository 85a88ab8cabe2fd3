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

// Package bus implements the flat 64KiB address space the CPU core reads
// and writes. There is no banking, no mapper and no side effects on
// read: a real system layers a cartridge mapper, PPU/APU register
// windows and DMA on top of this, but those are external collaborators
// the core does not know about.
package bus

// Size is the number of addressable bytes on a 6502's 16-bit bus.
const Size = 1 << 16

const (
	// StackBase is the first address of the stack page, indexed by SP.
	StackBase = uint16(0x0100)
	// NMIVector holds the little-endian entry address for NMI.
	NMIVector = uint16(0xFFFA)
	// ResetVector holds the little-endian entry address loaded on reset.
	ResetVector = uint16(0xFFFC)
	// IRQVector holds the little-endian entry address for IRQ/BRK.
	IRQVector = uint16(0xFFFE)
)

// Bus is a flat, zero-initialized 64KiB byte array. Every address is
// valid; reads never fail and writes never overflow.
type Bus struct {
	ram [Size]uint8
}

// New returns a zero-initialized Bus.
func New() *Bus {
	return &Bus{}
}

// Read returns the byte stored at addr.
func (b *Bus) Read(addr uint16) uint8 {
	return b.ram[addr]
}

// Write stores data at addr.
func (b *Bus) Write(addr uint16, data uint8) {
	b.ram[addr] = data
}

// Read16 reads a little-endian 16-bit value starting at addr.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := uint16(b.Read(addr))
	hi := uint16(b.Read(addr + 1))
	return hi<<8 | lo
}

// Load copies data into the bus starting at origin, wrapping around the
// top of the address space if data does not fit. This is the minimal
// flat-binary loader the test-harness scenario in spec §6 assumes; it
// is not an iNES/ROM-image parser.
func (b *Bus) Load(origin uint16, data []byte) {
	for i, v := range data {
		b.ram[(int(origin)+i)%Size] = v
	}
}

// Reset fills the bus with zero bytes, matching the "64 KiB flat array,
// zero-initialised" data model in spec §3.
func (b *Bus) Reset() {
	for i := range b.ram {
		b.ram[i] = 0
	}
}
