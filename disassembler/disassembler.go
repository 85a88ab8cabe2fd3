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

// Package disassembler walks a memory snapshot and formats each
// instruction using the cpu package's opcode table. It is a pure,
// read-only consumer: it never touches CPU register state and has no
// side effects on the bus it reads.
package disassembler

import (
	"fmt"

	"github.com/sixtwo/sixtwo/cpu"
)

// Reader is the minimal memory interface the disassembler needs.
// bus.Bus satisfies it.
type Reader interface {
	Read(addr uint16) uint8
}

// Line is one disassembled instruction: the address it starts at and
// its canonical textual form.
type Line struct {
	Addr uint16
	Text string
}

// Range walks mem from start to end inclusive and returns one Line per
// instruction encountered. An instruction that begins at end but reads
// past it is still fully decoded (mem is treated as infinite, as any
// 64KiB bus is).
func Range(mem Reader, start, end uint16) []Line {
	var lines []Line
	cur := uint32(start)
	last := uint32(end)
	for cur <= last {
		addr := uint16(cur)
		entry := &cpu.OpcodeTable[mem.Read(addr)]
		text, length := format(mem, addr, entry)
		lines = append(lines, Line{Addr: addr, Text: text})
		cur += uint32(length)
		if cur > 0xFFFF {
			break
		}
	}
	return lines
}

// format renders one instruction starting at addr and reports its
// total length in bytes (opcode + operand).
func format(mem Reader, addr uint16, entry *cpu.Instruction) (string, int) {
	op := addr + 1

	switch entry.Mode {
	case cpu.IMP:
		return entry.Mnemonic, 1
	case cpu.ACC:
		return fmt.Sprintf("%s A", entry.Mnemonic), 1
	case cpu.IMM:
		return fmt.Sprintf("%s #$%02X", entry.Mnemonic, mem.Read(op)), 2
	case cpu.ZP0:
		return fmt.Sprintf("%s $%02X", entry.Mnemonic, mem.Read(op)), 2
	case cpu.ZPX:
		return fmt.Sprintf("%s $%02X, X", entry.Mnemonic, mem.Read(op)), 2
	case cpu.ZPY:
		return fmt.Sprintf("%s $%02X, Y", entry.Mnemonic, mem.Read(op)), 2
	case cpu.REL:
		offset := mem.Read(op)
		rel := uint16(offset)
		if rel&0x80 != 0 {
			rel |= 0xFF00
		}
		target := op + 1 + rel
		return fmt.Sprintf("%s $%02X [$%04X]", entry.Mnemonic, offset, target), 2
	case cpu.ABS:
		lo, hi := mem.Read(op), mem.Read(op+1)
		return fmt.Sprintf("%s $%04X", entry.Mnemonic, uint16(hi)<<8|uint16(lo)), 3
	case cpu.ABX:
		lo, hi := mem.Read(op), mem.Read(op+1)
		return fmt.Sprintf("%s $%04X, X", entry.Mnemonic, uint16(hi)<<8|uint16(lo)), 3
	case cpu.ABY:
		lo, hi := mem.Read(op), mem.Read(op+1)
		return fmt.Sprintf("%s $%04X, Y", entry.Mnemonic, uint16(hi)<<8|uint16(lo)), 3
	case cpu.IND:
		lo, hi := mem.Read(op), mem.Read(op+1)
		return fmt.Sprintf("%s ($%04X)", entry.Mnemonic, uint16(hi)<<8|uint16(lo)), 3
	case cpu.IZX:
		return fmt.Sprintf("%s ($%02X, X)", entry.Mnemonic, mem.Read(op)), 2
	case cpu.IZY:
		return fmt.Sprintf("%s ($%02X), Y", entry.Mnemonic, mem.Read(op)), 2
	default:
		return entry.Mnemonic, 1
	}
}
