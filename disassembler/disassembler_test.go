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

package disassembler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sixtwo/sixtwo/bus"
	"github.com/sixtwo/sixtwo/disassembler"
)

func TestRangeFormatsEachAddressingMode(t *testing.T) {
	b := bus.New()
	// LDA #$42 ; LDA $00 ; LDA $00,X ; LDA $1234 ; LDA $1234,X ; JMP ($1234)
	b.Load(0x8000, []byte{
		0xA9, 0x42,
		0xA5, 0x00,
		0xB5, 0x00,
		0xAD, 0x34, 0x12,
		0xBD, 0x34, 0x12,
		0x6C, 0x34, 0x12,
	})

	lines := disassembler.Range(b, 0x8000, 0x800D)
	require.Len(t, lines, 6)

	assert.Equal(t, "LDA #$42", lines[0].Text)
	assert.Equal(t, "LDA $00", lines[1].Text)
	assert.Equal(t, "LDA $00, X", lines[2].Text)
	assert.Equal(t, "LDA $1234", lines[3].Text)
	assert.Equal(t, "LDA $1234, X", lines[4].Text)
	assert.Equal(t, "JMP ($1234)", lines[5].Text)
}

func TestRangeAddressesAdvanceByInstructionLength(t *testing.T) {
	b := bus.New()
	b.Load(0x8000, []byte{0xEA, 0xA9, 0x00})

	lines := disassembler.Range(b, 0x8000, 0x8002)
	require.Len(t, lines, 2)
	assert.Equal(t, uint16(0x8000), lines[0].Addr)
	assert.Equal(t, uint16(0x8001), lines[1].Addr)
}
