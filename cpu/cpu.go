// Package cpu implements the MOS 6502 core (NES 2A03 variant, no decimal
// mode) used by the Nintendo Entertainment System: registers, the full
// official and unofficial opcode set, per-instruction cycle accounting, and
// the interrupt vectors.
package cpu

import (
	"fmt"

	"nescore/mem"
	"nescore/ppu"
)

const (
	stackBase   uint16 = 0x0100
	resetVector uint16 = 0xfffc
	nmiVector   uint16 = 0xfffa
	irqVector   uint16 = 0xfffe
)

// CPU holds the full register file plus the buses it drives. PPU is kept
// alongside Bus (rather than reached only through it) because Step needs to
// tick it three times per CPU cycle; Bus also holds a reference to the same
// PPU for the CPU's own memory-mapped register reads and writes.
type CPU struct {
	A  byte
	X  byte
	Y  byte
	SP byte
	PC uint16
	P  Flags

	Cycles uint64

	Bus *mem.Bus
	PPU *ppu.PPU
}

// New wires a CPU to bus and ppu and resets it, which loads PC from the
// reset vector.
func New(bus *mem.Bus, p *ppu.PPU) *CPU {
	c := &CPU{Bus: bus, PPU: p}
	c.Reset()
	return c
}

// Reset puts the CPU in its post-power-on state: SP at 0xfd, interrupts
// disabled, the unused flag set, and PC loaded from the reset vector.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xfd
	c.P = 0
	c.P.SetUnused(true)
	c.P.SetInterrupt(true)
	c.PC = c.Bus.Read16(resetVector)
	c.Cycles = 0
}

// LoadProgram copies program into Bus.PRG at offset and points PC at it. It
// exists for tests and the debugger, which run small hand-assembled
// snippets rather than full cartridge images.
func (c *CPU) LoadProgram(program []byte, offset uint16) {
	base := int(offset) - 0x8000
	if base < 0 || base+len(program) > len(c.Bus.PRG) {
		panic(fmt.Sprintf("cpu: LoadProgram range [%#x,%#x) out of PRG bounds", offset, int(offset)+len(program)))
	}
	copy(c.Bus.PRG[base:], program)
	c.PC = offset
}

// Step executes exactly one instruction: fetch, decode, execute, and the
// matching amount of PPU ticking (3 PPU cycles per CPU cycle). It returns
// the number of CPU cycles the instruction consumed. A pending NMI is
// serviced before the next instruction is fetched.
func (c *CPU) Step() int {
	if c.PPU.NmiRequested {
		c.PPU.NmiRequested = false
		c.TriggerNMI()
	}

	opcodeByte := c.Bus.Read(c.PC)
	c.PC++

	entry, ok := OpcodeTable[opcodeByte]
	if !ok {
		panic(fmt.Sprintf("cpu: unimplemented opcode %#02x at %#04x", opcodeByte, c.PC-1))
	}

	pcAfterFetch := c.PC
	cycles := entry.Cycles

	var addr uint16
	var crossed bool
	switch entry.Mode {
	case Implied, Accumulator, Relative:
		// No operand address to resolve; the handler reads what it needs.
	case Indirect:
		addr = c.resolveIndirectJMP()
	default:
		addr, crossed = c.resolveAddress(entry.Mode)
	}

	if entry.PenalizeCross && crossed {
		cycles++
	}

	cycles += entry.Exec(c, addr)

	if c.PC == pcAfterFetch {
		c.PC += uint16(entry.Length) - 1
	}

	c.Cycles += uint64(cycles)
	c.tickPPU(cycles)
	return cycles
}

func (c *CPU) tickPPU(cpuCycles int) {
	for i := 0; i < cpuCycles*3; i++ {
		c.PPU.Step()
	}
}

// TriggerNMI performs the non-maskable interrupt entry sequence: it pushes
// PC and P (with B clear), disables interrupts, jumps through the NMI
// vector, and accounts the 7 cycles (21 PPU ticks) the entry costs. Step
// calls it automatically when the PPU's request line is high, but an outer
// driver that polls the line itself can call it directly.
func (c *CPU) TriggerNMI() {
	c.push16(c.PC)
	c.pushStatus(false)
	c.P.SetInterrupt(true)
	c.PC = c.Bus.Read16(nmiVector)
	c.Cycles += 7
	c.tickPPU(7)
}

// ReadByte and WriteByte expose the bus to test harnesses without making
// them reach through the CPU's internals.
func (c *CPU) ReadByte(addr uint16) byte     { return c.Bus.Read(addr) }
func (c *CPU) WriteByte(addr uint16, v byte) { c.Bus.Write(addr, v) }

func (c *CPU) push(v byte) {
	c.Bus.Write(stackBase+uint16(c.SP), v)
	c.SP--
}

func (c *CPU) pop() byte {
	c.SP++
	return c.Bus.Read(stackBase + uint16(c.SP))
}

// push16 pushes a 16-bit value high byte first, so the low byte ends up at
// the lower address - the convention RTS/RTI/JSR/BRK/NMI all rely on.
func (c *CPU) push16(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *CPU) pop16() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return hi<<8 | lo
}

// pushStatus pushes P with U always set and B set according to breakFlag:
// true for PHP/BRK, false for a hardware interrupt (NMI/IRQ).
func (c *CPU) pushStatus(breakFlag bool) {
	v := c.P
	v.SetUnused(true)
	v.SetBreak(breakFlag)
	c.push(byte(v))
}

// pullStatus restores P from the stack (PLP/RTI). Neither B nor U is a real
// latch on the 6502; both PLP and RTI always read back U=1, B=0 regardless
// of what was pushed.
func (c *CPU) pullStatus() {
	c.P = Flags(c.pop())
	c.P.SetUnused(true)
	c.P.SetBreak(false)
}
