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

// Command sixtwodbg is a read-only termui inspector: it loads a flat
// program, resets the core, and lets you single-step instructions
// while watching registers, flags, RAM pages and a disassembly of the
// whole address space with the instruction at PC highlighted. The
// listing is taken once at load time, starts at $0000 and does not
// scroll to follow PC.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"github.com/sixtwo/sixtwo/bus"
	"github.com/sixtwo/sixtwo/cpu"
	"github.com/sixtwo/sixtwo/disassembler"
	"github.com/sixtwo/sixtwo/internal/romload"
)

var (
	core          *cpu.CPU
	mem           *bus.Bus
	disasm        []disassembler.Line
	paragraphCPU  *widgets.Paragraph
	paragraphCode *widgets.Paragraph
	paragraphRam0 *widgets.Paragraph
	paragraphRam1 *widgets.Paragraph
	paragraphTips *widgets.Paragraph
)

func renderCPU(p *widgets.Paragraph) {
	type flagGlyph struct {
		flag cpu.Flag
		ch   rune
	}
	glyphs := []flagGlyph{
		{cpu.FlagNegative, 'N'}, {cpu.FlagOverflow, 'V'}, {cpu.FlagUnused, '-'},
		{cpu.FlagBreak, 'B'}, {cpu.FlagDecimal, 'D'}, {cpu.FlagInterrupt, 'I'},
		{cpu.FlagZero, 'Z'}, {cpu.FlagCarry, 'C'},
	}

	sb := &strings.Builder{}
	sb.WriteString("STATUS: ")
	for _, g := range glyphs {
		sb.WriteRune('[')
		sb.WriteRune(g.ch)
		sb.WriteString("](fg:")
		if core.GetFlag(g.flag) {
			sb.WriteString("green")
		} else {
			sb.WriteString("red")
		}
		sb.WriteString(") ")
	}
	fmt.Fprintf(sb, "\nPC: $%04X SP: $%02X\n", core.PC, core.SP)
	fmt.Fprintf(sb, "A: $%02X [%d]\n", core.A, core.A)
	fmt.Fprintf(sb, "X: $%02X [%d]\n", core.X, core.X)
	fmt.Fprintf(sb, "Y: $%02X [%d]\n", core.Y, core.Y)
	p.Text = sb.String()
}

func renderRAM(p *widgets.Paragraph, addr uint16, rows, cols int) {
	sb := &strings.Builder{}
	cur := addr
	for r := 0; r < rows; r++ {
		fmt.Fprintf(sb, "$%04X:", cur)
		for c := 0; c < cols; c++ {
			fmt.Fprintf(sb, " %02X", mem.Read(cur))
			cur++
		}
		sb.WriteRune('\n')
	}
	p.Text = sb.String()
}

func renderCode(p *widgets.Paragraph) {
	sb := &strings.Builder{}
	for _, line := range disasm {
		if line.Addr == core.PC {
			fmt.Fprintf(sb, "[$%04X: %s](fg:cyan)\n", line.Addr, line.Text)
		} else {
			fmt.Fprintf(sb, "$%04X: %s\n", line.Addr, line.Text)
		}
	}
	p.Text = sb.String()
}

func renderTips(p *widgets.Paragraph) {
	p.Text = "SPACE = Step Instruction    R = RESET    I = IRQ    N = NMI    Q = Quit"
}

func draw() {
	renderRAM(paragraphRam0, 0x0000, 16, 16)
	renderRAM(paragraphRam1, 0x8000, 16, 16)
	renderCPU(paragraphCPU)
	renderCode(paragraphCode)
	renderTips(paragraphTips)
	ui.Render(paragraphRam0, paragraphRam1, paragraphCPU, paragraphCode, paragraphTips)
}

func initLayout() {
	paragraphRam0 = widgets.NewParagraph()
	paragraphRam0.Title = "RAM Page 0x00"
	paragraphRam0.SetRect(0, 0, 56, 18)

	paragraphRam1 = widgets.NewParagraph()
	paragraphRam1.Title = "RAM Page 0x80"
	paragraphRam1.SetRect(0, 18, 56, 36)

	paragraphCPU = widgets.NewParagraph()
	paragraphCPU.Title = "CPU"
	paragraphCPU.SetRect(56, 0, 56+34, 7)

	paragraphCode = widgets.NewParagraph()
	paragraphCode.Title = "Disassembly"
	paragraphCode.SetRect(56, 7, 56+34, 7+29)

	paragraphTips = widgets.NewParagraph()
	paragraphTips.Title = "Tips"
	paragraphTips.SetRect(0, 36, 56+34, 39)
}

func loadCore(path string, origin uint16) {
	mem = bus.New()
	core = cpu.New(mem, cpu.VariantNMOSRicoh)

	if path != "" {
		if err := romload.Load(mem, path, origin); err != nil {
			log.Fatalf("load %s: %v", path, err)
		}
	}
	romload.PokeVector(mem, bus.ResetVector, origin)

	disasm = disassembler.Range(mem, 0x0000, 0xFFFF)
	core.Reset()
	for !core.Complete() {
		core.Clock()
	}
}

func main() {
	path := flag.String("rom", "", "flat binary to load at -origin")
	origin := flag.Uint("origin", 0x8000, "load address / reset vector")
	flag.Parse()

	loadCore(*path, uint16(*origin))

	if err := ui.Init(); err != nil {
		log.Fatalf("failed to initialize termui: %v", err)
	}
	defer ui.Close()

	initLayout()
	draw()

	for e := range ui.PollEvents() {
		if e.Type != ui.KeyboardEvent {
			continue
		}
		switch e.ID {
		case "q", "Q", "<C-c>":
			return
		case "<Space>":
			core.Clock()
			for !core.Complete() {
				core.Clock()
			}
		case "r", "R":
			core.Reset()
		case "i", "I":
			core.IRQ()
		case "n", "N":
			core.NMI()
		}
		draw()
	}
}
