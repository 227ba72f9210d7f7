// Package cartridge holds the PRG/CHR byte banks handed to a MemoryBus.
//
// Parsing an iNES file into these banks, and selecting a mapper beyond
// mapper-0 passthrough, are both external concerns; this package is
// deliberately just a data holder.
package cartridge

import "fmt"

// Cartridge carries program and character ROM banks read off a cartridge
// image. PRG must be 0x4000 (16 KiB) or 0x8000 (32 KiB) bytes; a 16 KiB
// image is mirrored into the upper half of CPU address space by the bus.
type Cartridge struct {
	PRG []byte
	CHR []byte
}

// New validates the PRG length and returns a Cartridge wrapping prg and chr
// by reference (no copy).
func New(prg, chr []byte) (*Cartridge, error) {
	if len(prg) != 0x4000 && len(prg) != 0x8000 {
		return nil, fmt.Errorf("cartridge: PRG-ROM length must be 0x4000 or 0x8000, got %#x", len(prg))
	}
	return &Cartridge{PRG: prg, CHR: chr}, nil
}
