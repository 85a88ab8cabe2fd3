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

// Command sixtwostep is an Elm-architecture single-step debugger built
// on bubbletea: space steps one instruction, r/i/n fire reset/IRQ/NMI,
// and the opcode under the cursor is dumped with go-spew.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/sixtwo/sixtwo/bus"
	"github.com/sixtwo/sixtwo/cpu"
	"github.com/sixtwo/sixtwo/internal/romload"
)

type model struct {
	core   *cpu.CPU
	mem    *bus.Bus
	prevPC uint16
	err    error
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.prevPC = m.core.PC
		m.core.Clock()
		for !m.core.Complete() {
			m.core.Clock()
		}
	case "r":
		m.core.Reset()
	case "i":
		m.core.IRQ()
	case "n":
		m.core.NMI()
	}
	return m, nil
}

func (m model) renderPage(start uint16) string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "%04X | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		v := m.mem.Read(addr)
		if addr == m.core.PC {
			fmt.Fprintf(sb, "[%02X] ", v)
		} else {
			fmt.Fprintf(sb, " %02X  ", v)
		}
	}
	return sb.String()
}

func (m model) status() string {
	glyphs := []struct {
		flag cpu.Flag
		ch   byte
	}{
		{cpu.FlagNegative, 'N'}, {cpu.FlagOverflow, 'V'}, {cpu.FlagUnused, '_'},
		{cpu.FlagBreak, 'B'}, {cpu.FlagDecimal, 'D'}, {cpu.FlagInterrupt, 'I'},
		{cpu.FlagZero, 'Z'}, {cpu.FlagCarry, 'C'},
	}
	var header, flags strings.Builder
	for _, g := range glyphs {
		header.WriteByte(g.ch)
		header.WriteByte(' ')
		if m.core.GetFlag(g.flag) {
			flags.WriteString("/ ")
		} else {
			flags.WriteString("  ")
		}
	}
	return fmt.Sprintf("PC: %04X (%04X)\n A: %02X\n X: %02X\n Y: %02X\nSP: %02X\n%s\n%s",
		m.core.PC, m.prevPC, m.core.A, m.core.X, m.core.Y, m.core.SP,
		header.String(), flags.String())
}

func (m model) pageTable() string {
	offsets := []uint16{0x0000, 0x0010, 0x0020, 0x0030, 0x0040}
	base := m.core.PC &^ 0x000F
	offsets = append(offsets, base, base+16, base+32, base+48, base+64)

	lines := []string{"page |  0   1   2   3   4   5   6   7   8   9   a   b   c   d   e   f"}
	for _, o := range offsets {
		lines = append(lines, m.renderPage(o))
	}
	return strings.Join(lines, "\n")
}

func (m model) View() string {
	opcode := m.mem.Read(m.core.PC)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), "   "+m.status()),
		"",
		spew.Sdump(cpu.OpcodeTable[opcode]),
		"SPACE=step  r=reset  i=irq  n=nmi  q=quit",
	)
}

func main() {
	path := flag.String("rom", "", "flat binary to load at -origin")
	origin := flag.Uint("origin", 0x8000, "load address / reset vector")
	flag.Parse()

	mem := bus.New()
	core := cpu.New(mem, cpu.VariantNMOSRicoh)

	if *path != "" {
		if err := romload.Load(mem, *path, uint16(*origin)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	romload.PokeVector(mem, bus.ResetVector, uint16(*origin))
	core.Reset()
	for !core.Complete() {
		core.Clock()
	}

	m, err := tea.NewProgram(model{core: core, mem: mem}).Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if x, ok := m.(model); ok && x.err != nil {
		fmt.Println("Error:", x.err)
	}
}
