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

// Command sixtwoctl drives the core headlessly: load a flat binary,
// optionally mirror it, poke the reset vector, run to a halt
// condition, and print the final register file. This is the nestest
// harness scenario exposed as a CLI workflow instead of a test-only
// fixture.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/sixtwo/sixtwo/bus"
	"github.com/sixtwo/sixtwo/cpu"
	"github.com/sixtwo/sixtwo/internal/romload"
)

func run(c *cli.Context) error {
	mem := bus.New()

	path := c.String("rom")
	origin := uint16(c.Uint("origin"))
	origins := []uint16{origin}
	if c.Bool("mirror") {
		origins = append(origins, uint16(c.Uint("mirror-origin")))
	}
	if path != "" {
		if err := romload.Load(mem, path, origins...); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}

	startPC := origin
	if c.IsSet("pc") {
		startPC = uint16(c.Uint("pc"))
	}
	romload.PokeVector(mem, bus.ResetVector, origin)

	core := cpu.New(mem, cpu.VariantNMOSRicoh)
	if c.Bool("trace") {
		core.SetLogger(stdoutLogger{})
	}
	core.Reset()
	for !core.Complete() {
		core.Clock()
	}
	core.PC = startPC

	haltPC := uint16(c.Uint("halt-pc"))
	maxCycles := c.Uint64("max-cycles")

	var cycles uint64
	for {
		core.Clock()
		cycles++
		if core.Complete() {
			if c.IsSet("halt-pc") && core.PC == haltPC {
				break
			}
		}
		if maxCycles != 0 && cycles >= maxCycles {
			break
		}
	}

	fmt.Printf("PC=%04X A=%02X X=%02X Y=%02X SP=%02X P=%02X cycles=%d\n",
		core.PC, core.A, core.X, core.Y, core.SP, core.P, cycles)
	if addr := c.Uint("peek"); c.IsSet("peek") {
		fmt.Printf("mem[%04X]=%04X\n", addr, mem.Read16(uint16(addr)))
	}
	return nil
}

type stdoutLogger struct{}

func (stdoutLogger) Log(line string) { fmt.Println(line) }

func main() {
	app := &cli.App{
		Name:  "sixtwoctl",
		Usage: "run a flat 6502 binary against the core",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "rom", Usage: "flat binary to load"},
			&cli.UintFlag{Name: "origin", Value: 0x8000, Usage: "load address and reset vector"},
			&cli.BoolFlag{Name: "mirror", Usage: "also load the binary at -mirror-origin"},
			&cli.UintFlag{Name: "mirror-origin", Value: 0xC000},
			&cli.UintFlag{Name: "pc", Usage: "override PC after reset"},
			&cli.UintFlag{Name: "halt-pc", Usage: "stop once PC reaches this value at an instruction boundary"},
			&cli.Uint64Flag{Name: "max-cycles", Usage: "stop after this many cycles regardless of PC (0 = unbounded)"},
			&cli.UintFlag{Name: "peek", Usage: "print the little-endian word at this address when done"},
			&cli.BoolFlag{Name: "trace", Usage: "log one line per retired instruction"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
