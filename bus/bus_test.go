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

package bus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sixtwo/sixtwo/bus"
)

func TestZeroInitialized(t *testing.T) {
	b := bus.New()
	for _, addr := range []uint16{0x0000, 0x0200, 0x8000, 0xFFFF} {
		assert.Equal(t, uint8(0), b.Read(addr))
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	b := bus.New()
	b.Write(0x0200, 0x42)
	assert.Equal(t, uint8(0x42), b.Read(0x0200))
}

func TestRead16LittleEndian(t *testing.T) {
	b := bus.New()
	b.Write(0xFFFC, 0x34)
	b.Write(0xFFFD, 0x12)
	assert.Equal(t, uint16(0x1234), b.Read16(0xFFFC))
}

func TestLoadWrapsAtTopOfAddressSpace(t *testing.T) {
	b := bus.New()
	b.Load(0xFFFE, []byte{0xAA, 0xBB, 0xCC})
	assert.Equal(t, uint8(0xAA), b.Read(0xFFFE))
	assert.Equal(t, uint8(0xBB), b.Read(0xFFFF))
	assert.Equal(t, uint8(0xCC), b.Read(0x0000))
}
