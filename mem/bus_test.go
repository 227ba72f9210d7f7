package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakePPU records register traffic so the dispatch tests can assert the bus
// resolved the $2000-$3FFF mirror correctly.
type fakePPU struct {
	reads  []uint16
	writes map[uint16]uint8
}

func newFakePPU() *fakePPU {
	return &fakePPU{writes: map[uint16]uint8{}}
}

func (f *fakePPU) ReadRegister(addr uint16) uint8 {
	f.reads = append(f.reads, addr)
	return 0xAB
}

func (f *fakePPU) WriteRegister(addr uint16, data uint8) {
	f.writes[addr] = data
}

func TestRAMMirrors(t *testing.T) {
	b := New(newFakePPU(), make([]byte, 0x8000))

	// A write to any mirror must be visible through all four.
	for _, base := range []uint16{0x0000, 0x0042, 0x07FF} {
		b.Write(base, 0x5A)
		for k := uint16(0); k < 4; k++ {
			assert.Equal(t, uint8(0x5A), b.Read(base+k*0x0800), "mirror %d of %#04x", k, base)
		}
		b.Write(base+3*0x0800, 0xA5)
		assert.Equal(t, uint8(0xA5), b.Read(base))
	}
}

func TestPPURegisterMirrors(t *testing.T) {
	p := newFakePPU()
	b := New(p, make([]byte, 0x8000))

	// $2000, $2008, $3FF8 all decode to register 0; $3FFF decodes to 7.
	b.Read(0x2000)
	b.Read(0x2008)
	b.Read(0x3FF8)
	b.Read(0x3FFF)
	assert.Equal(t, []uint16{0x2000, 0x2000, 0x2000, 0x2007}, p.reads)

	b.Write(0x2E06, 0x99)
	assert.Equal(t, uint8(0x99), p.writes[0x2006])
}

func TestAPUIOWindowReadsFF(t *testing.T) {
	b := New(newFakePPU(), make([]byte, 0x8000))
	for _, addr := range []uint16{0x4000, 0x4014, 0x4016, 0x401F} {
		assert.Equal(t, uint8(0xFF), b.Read(addr))
	}
	// Unmapped expansion/SRAM space behaves the same.
	assert.Equal(t, uint8(0xFF), b.Read(0x4020))
	assert.Equal(t, uint8(0xFF), b.Read(0x5FFF))
	assert.Equal(t, uint8(0xFF), b.Read(0x6000))
	assert.Equal(t, uint8(0xFF), b.Read(0x7FFF))
}

func TestPRGRead32K(t *testing.T) {
	prg := make([]byte, 0x8000)
	prg[0x0000] = 0x11
	prg[0x4000] = 0x22
	prg[0x7FFF] = 0x33
	b := New(newFakePPU(), prg)

	assert.Equal(t, uint8(0x11), b.Read(0x8000))
	assert.Equal(t, uint8(0x22), b.Read(0xC000))
	assert.Equal(t, uint8(0x33), b.Read(0xFFFF))
}

func TestPRG16KMirrorsUpperHalf(t *testing.T) {
	prg := make([]byte, 0x4000)
	prg[0x0000] = 0x11
	prg[0x3FFF] = 0x22
	b := New(newFakePPU(), prg)

	assert.Equal(t, uint8(0x11), b.Read(0x8000))
	assert.Equal(t, uint8(0x11), b.Read(0xC000))
	assert.Equal(t, uint8(0x22), b.Read(0xBFFF))
	assert.Equal(t, uint8(0x22), b.Read(0xFFFF))
}

// TestPRGReadsSideEffectFree reads the same PRG byte repeatedly through both
// halves of the 16 KiB mirror and expects identical values every time.
func TestPRGReadsSideEffectFree(t *testing.T) {
	prg := make([]byte, 0x4000)
	prg[0x0123] = 0x77
	b := New(newFakePPU(), prg)
	for i := 0; i < 10; i++ {
		assert.Equal(t, uint8(0x77), b.Read(0x8123))
		assert.Equal(t, uint8(0x77), b.Read(0xC123))
	}
}

func TestWritesToReadOnlyRegionsIgnored(t *testing.T) {
	prg := make([]byte, 0x8000)
	prg[0x0000] = 0x42
	b := New(newFakePPU(), prg)

	// None of these may panic or alter observable state.
	b.Write(0x4000, 0x01)
	b.Write(0x401F, 0x01)
	b.Write(0x4020, 0x01)
	b.Write(0x6000, 0x01)
	b.Write(0x8000, 0x01)
	b.Write(0xFFFF, 0x01)

	assert.Equal(t, uint8(0x42), b.Read(0x8000))
	assert.Equal(t, uint8(0xFF), b.Read(0x4000))
}

func TestRead16LittleEndian(t *testing.T) {
	b := New(newFakePPU(), make([]byte, 0x8000))
	b.Write(0x0010, 0xEF)
	b.Write(0x0011, 0xBE)
	assert.Equal(t, uint16(0xBEEF), b.Read16(0x0010))
}
