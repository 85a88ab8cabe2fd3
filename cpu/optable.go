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

// AddrMode tags one of the twelve addressing-mode fetch procedures. ACC
// is carried as a distinct tag from IMP even though both addressing
// functions are identical, so instruction handlers that write back to
// memory (ASL/LSR/ROL/ROR) can tell "operate on A" from "operate on
// addr_abs" without a side struct field.
type AddrMode uint8

const (
	IMP AddrMode = iota
	ACC
	IMM
	ZP0
	ZPX
	ZPY
	REL
	ABS
	ABX
	ABY
	IND
	IZX
	IZY
)

func (m AddrMode) String() string {
	return addrModeNames[m]
}

var addrModeNames = [...]string{
	IMP: "IMP", ACC: "ACC", IMM: "IMM", ZP0: "ZP0", ZPX: "ZPX", ZPY: "ZPY",
	REL: "REL", ABS: "ABS", ABX: "ABX", ABY: "ABY", IND: "IND", IZX: "IZX", IZY: "IZY",
}

// addrModeFn computes the effective address (or fetched value, for
// IMP/ACC) for one opcode and reports whether it may owe an extra
// cycle on a page cross.
type addrModeFn func(c *CPU) uint8

// opFn executes the instruction body and reports whether it may owe an
// extra cycle on a page cross. The two hints are ANDed together by the
// dispatch loop, not summed, so a handler indifferent to page crossing
// must always return 0.
type opFn func(c *CPU) uint8

// Instruction is one immutable entry of the 256-entry decode table.
type Instruction struct {
	Mnemonic string
	Mode     AddrMode
	Cycles   uint8
	addr     addrModeFn
	exec     opFn
}

// OpcodeTable is the process-global, 256-entry decode table indexed by
// opcode byte. It never changes after package initialisation.
var OpcodeTable [256]Instruction

func init() {
	for i := range OpcodeTable {
		OpcodeTable[i] = Instruction{"???", IMP, 2, amIMP, opXXX}
	}
	for _, e := range opcodeEntries {
		OpcodeTable[e.opcode] = Instruction{e.mnemonic, e.mode, e.cycles, e.addr, e.exec}
	}
}

type opcodeEntry struct {
	opcode   uint8
	mnemonic string
	mode     AddrMode
	addr     addrModeFn
	exec     opFn
	cycles   uint8
}

// opcodeEntries lists every documented (and a handful of commonly
// charted illegal) opcode. Anything not listed here keeps the XXX/IMP/2
// default installed by init above, per the "unassigned slots" rule.
var opcodeEntries = []opcodeEntry{
	{0x00, "BRK", IMP, amIMP, opBRK, 7}, {0x01, "ORA", IZX, amIZX, opORA, 6},
	{0x05, "ORA", ZP0, amZP0, opORA, 3}, {0x06, "ASL", ZP0, amZP0, opASL, 5},
	{0x08, "PHP", IMP, amIMP, opPHP, 3}, {0x09, "ORA", IMM, amIMM, opORA, 2},
	{0x0A, "ASL", ACC, amIMP, opASL, 2}, {0x0D, "ORA", ABS, amABS, opORA, 4},
	{0x0E, "ASL", ABS, amABS, opASL, 6},

	{0x10, "BPL", REL, amREL, opBPL, 2}, {0x11, "ORA", IZY, amIZY, opORA, 5},
	{0x15, "ORA", ZPX, amZPX, opORA, 4}, {0x16, "ASL", ZPX, amZPX, opASL, 6},
	{0x18, "CLC", IMP, amIMP, opCLC, 2}, {0x19, "ORA", ABY, amABY, opORA, 4},
	{0x1D, "ORA", ABX, amABX, opORA, 4}, {0x1E, "ASL", ABX, amABX, opASL, 7},

	{0x20, "JSR", ABS, amABS, opJSR, 6}, {0x21, "AND", IZX, amIZX, opAND, 6},
	{0x24, "BIT", ZP0, amZP0, opBIT, 3}, {0x25, "AND", ZP0, amZP0, opAND, 3},
	{0x26, "ROL", ZP0, amZP0, opROL, 5}, {0x28, "PLP", IMP, amIMP, opPLP, 4},
	{0x29, "AND", IMM, amIMM, opAND, 2}, {0x2A, "ROL", ACC, amIMP, opROL, 2},
	{0x2C, "BIT", ABS, amABS, opBIT, 4}, {0x2D, "AND", ABS, amABS, opAND, 4},
	{0x2E, "ROL", ABS, amABS, opROL, 6},

	{0x30, "BMI", REL, amREL, opBMI, 2}, {0x31, "AND", IZY, amIZY, opAND, 5},
	{0x35, "AND", ZPX, amZPX, opAND, 4}, {0x36, "ROL", ZPX, amZPX, opROL, 6},
	{0x38, "SEC", IMP, amIMP, opSEC, 2}, {0x39, "AND", ABY, amABY, opAND, 4},
	{0x3D, "AND", ABX, amABX, opAND, 4}, {0x3E, "ROL", ABX, amABX, opROL, 7},

	{0x40, "RTI", IMP, amIMP, opRTI, 6}, {0x41, "EOR", IZX, amIZX, opEOR, 6},
	{0x45, "EOR", ZP0, amZP0, opEOR, 3}, {0x46, "LSR", ZP0, amZP0, opLSR, 5},
	{0x48, "PHA", IMP, amIMP, opPHA, 3}, {0x49, "EOR", IMM, amIMM, opEOR, 2},
	{0x4A, "LSR", ACC, amIMP, opLSR, 2}, {0x4C, "JMP", ABS, amABS, opJMP, 3},
	{0x4D, "EOR", ABS, amABS, opEOR, 4}, {0x4E, "LSR", ABS, amABS, opLSR, 6},

	{0x50, "BVC", REL, amREL, opBVC, 2}, {0x51, "EOR", IZY, amIZY, opEOR, 5},
	{0x55, "EOR", ZPX, amZPX, opEOR, 4}, {0x56, "LSR", ZPX, amZPX, opLSR, 6},
	{0x58, "CLI", IMP, amIMP, opCLI, 2}, {0x59, "EOR", ABY, amABY, opEOR, 4},
	{0x5D, "EOR", ABX, amABX, opEOR, 4}, {0x5E, "LSR", ABX, amABX, opLSR, 7},

	{0x60, "RTS", IMP, amIMP, opRTS, 6}, {0x61, "ADC", IZX, amIZX, opADC, 6},
	{0x65, "ADC", ZP0, amZP0, opADC, 3}, {0x66, "ROR", ZP0, amZP0, opROR, 5},
	{0x68, "PLA", IMP, amIMP, opPLA, 4}, {0x69, "ADC", IMM, amIMM, opADC, 2},
	{0x6A, "ROR", ACC, amIMP, opROR, 2}, {0x6C, "JMP", IND, amIND, opJMP, 5},
	{0x6D, "ADC", ABS, amABS, opADC, 4}, {0x6E, "ROR", ABS, amABS, opROR, 6},

	{0x70, "BVS", REL, amREL, opBVS, 2}, {0x71, "ADC", IZY, amIZY, opADC, 5},
	{0x75, "ADC", ZPX, amZPX, opADC, 4}, {0x76, "ROR", ZPX, amZPX, opROR, 6},
	{0x78, "SEI", IMP, amIMP, opSEI, 2}, {0x79, "ADC", ABY, amABY, opADC, 4},
	{0x7D, "ADC", ABX, amABX, opADC, 4}, {0x7E, "ROR", ABX, amABX, opROR, 7},

	{0x81, "STA", IZX, amIZX, opSTA, 6}, {0x84, "STY", ZP0, amZP0, opSTY, 3},
	{0x85, "STA", ZP0, amZP0, opSTA, 3}, {0x86, "STX", ZP0, amZP0, opSTX, 3},
	{0x88, "DEY", IMP, amIMP, opDEY, 2}, {0x8A, "TXA", IMP, amIMP, opTXA, 2},
	{0x8C, "STY", ABS, amABS, opSTY, 4}, {0x8D, "STA", ABS, amABS, opSTA, 4},
	{0x8E, "STX", ABS, amABS, opSTX, 4},

	{0x90, "BCC", REL, amREL, opBCC, 2}, {0x91, "STA", IZY, amIZY, opSTA, 6},
	{0x94, "STY", ZPX, amZPX, opSTY, 4}, {0x95, "STA", ZPX, amZPX, opSTA, 4},
	{0x96, "STX", ZPY, amZPY, opSTX, 4}, {0x98, "TYA", IMP, amIMP, opTYA, 2},
	{0x99, "STA", ABY, amABY, opSTA, 5}, {0x9A, "TXS", IMP, amIMP, opTXS, 2},
	{0x9D, "STA", ABX, amABX, opSTA, 5},

	{0xA0, "LDY", IMM, amIMM, opLDY, 2}, {0xA1, "LDA", IZX, amIZX, opLDA, 6},
	{0xA2, "LDX", IMM, amIMM, opLDX, 2}, {0xA4, "LDY", ZP0, amZP0, opLDY, 3},
	{0xA5, "LDA", ZP0, amZP0, opLDA, 3}, {0xA6, "LDX", ZP0, amZP0, opLDX, 3},
	{0xA8, "TAY", IMP, amIMP, opTAY, 2}, {0xA9, "LDA", IMM, amIMM, opLDA, 2},
	{0xAA, "TAX", IMP, amIMP, opTAX, 2}, {0xAC, "LDY", ABS, amABS, opLDY, 4},
	{0xAD, "LDA", ABS, amABS, opLDA, 4}, {0xAE, "LDX", ABS, amABS, opLDX, 4},

	{0xB0, "BCS", REL, amREL, opBCS, 2}, {0xB1, "LDA", IZY, amIZY, opLDA, 5},
	{0xB4, "LDY", ZPX, amZPX, opLDY, 4}, {0xB5, "LDA", ZPX, amZPX, opLDA, 4},
	{0xB6, "LDX", ZPY, amZPY, opLDX, 4}, {0xB8, "CLV", IMP, amIMP, opCLV, 2},
	{0xB9, "LDA", ABY, amABY, opLDA, 4}, {0xBA, "TSX", IMP, amIMP, opTSX, 2},
	{0xBC, "LDY", ABX, amABX, opLDY, 4}, {0xBD, "LDA", ABX, amABX, opLDA, 4},
	{0xBE, "LDX", ABY, amABY, opLDX, 4},

	{0xC0, "CPY", IMM, amIMM, opCPY, 2}, {0xC1, "CMP", IZX, amIZX, opCMP, 6},
	{0xC4, "CPY", ZP0, amZP0, opCPY, 3}, {0xC5, "CMP", ZP0, amZP0, opCMP, 3},
	{0xC6, "DEC", ZP0, amZP0, opDEC, 5}, {0xC8, "INY", IMP, amIMP, opINY, 2},
	{0xC9, "CMP", IMM, amIMM, opCMP, 2}, {0xCA, "DEX", IMP, amIMP, opDEX, 2},
	{0xCC, "CPY", ABS, amABS, opCPY, 4}, {0xCD, "CMP", ABS, amABS, opCMP, 4},
	{0xCE, "DEC", ABS, amABS, opDEC, 6},

	{0xD0, "BNE", REL, amREL, opBNE, 2}, {0xD1, "CMP", IZY, amIZY, opCMP, 5},
	{0xD5, "CMP", ZPX, amZPX, opCMP, 4}, {0xD6, "DEC", ZPX, amZPX, opDEC, 6},
	{0xD8, "CLD", IMP, amIMP, opCLD, 2}, {0xD9, "CMP", ABY, amABY, opCMP, 4},
	{0xDC, "NOP", ABX, amABX, opNOPPageCross, 4}, {0xDD, "CMP", ABX, amABX, opCMP, 4},
	{0xDE, "DEC", ABX, amABX, opDEC, 7},

	{0xE0, "CPX", IMM, amIMM, opCPX, 2}, {0xE1, "SBC", IZX, amIZX, opSBC, 6},
	{0xE4, "CPX", ZP0, amZP0, opCPX, 3}, {0xE5, "SBC", ZP0, amZP0, opSBC, 3},
	{0xE6, "INC", ZP0, amZP0, opINC, 5}, {0xE8, "INX", IMP, amIMP, opINX, 2},
	{0xE9, "SBC", IMM, amIMM, opSBC, 2}, {0xEA, "NOP", IMP, amIMP, opNOP, 2},
	{0xEC, "CPX", ABS, amABS, opCPX, 4}, {0xED, "SBC", ABS, amABS, opSBC, 4},
	{0xEE, "INC", ABS, amABS, opINC, 6},

	{0xF0, "BEQ", REL, amREL, opBEQ, 2}, {0xF1, "SBC", IZY, amIZY, opSBC, 5},
	{0xF5, "SBC", ZPX, amZPX, opSBC, 4}, {0xF6, "INC", ZPX, amZPX, opINC, 6},
	{0xF8, "SED", IMP, amIMP, opSED, 2}, {0xF9, "SBC", ABY, amABY, opSBC, 4},
	{0x1C, "NOP", ABX, amABX, opNOPPageCross, 4}, {0x3C, "NOP", ABX, amABX, opNOPPageCross, 4},
	{0x5C, "NOP", ABX, amABX, opNOPPageCross, 4}, {0x7C, "NOP", ABX, amABX, opNOPPageCross, 4},
	{0xFC, "NOP", ABX, amABX, opNOPPageCross, 4},
	{0xFD, "SBC", ABX, amABX, opSBC, 4}, {0xFE, "INC", ABX, amABX, opINC, 7},
}
