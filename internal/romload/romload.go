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

// Package romload is the minimal flat-binary loader the nestest-style
// harness needs: read a file into a byte slice and poke it onto a bus
// at one or two origins. It has nothing to do with iNES headers,
// CHR/PRG banking or cartridge mappers — those remain out of scope.
package romload

import "os"

// Writer is the minimal bus interface the loader needs.
type Writer interface {
	Write(addr uint16, data uint8)
}

// Load reads path and writes its bytes onto bus starting at each of
// origins, in order. Passing two origins reproduces the conventional
// nestest setup of mirroring one 16KiB image at both 0x8000 and
// 0xC000.
func Load(bus Writer, path string, origins ...uint16) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	for _, origin := range origins {
		writeAt(bus, origin, data)
	}
	return nil
}

// LoadBytes writes data onto bus starting at each of origins, without
// touching the filesystem.
func LoadBytes(bus Writer, data []byte, origins ...uint16) {
	for _, origin := range origins {
		writeAt(bus, origin, data)
	}
}

// PokeVector writes a little-endian 16-bit entry address at addr, the
// shape every interrupt vector (NMI/reset/IRQ) takes.
func PokeVector(bus Writer, addr uint16, value uint16) {
	bus.Write(addr, uint8(value&0xFF))
	bus.Write(addr+1, uint8(value>>8))
}

func writeAt(bus Writer, origin uint16, data []byte) {
	addr := uint32(origin)
	for _, b := range data {
		bus.Write(uint16(addr&0xFFFF), b)
		addr++
	}
}
