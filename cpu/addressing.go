package cpu

// AddressingMode identifies how an opcode's operand maps to an effective
// address. Relative (branches) and Indirect (JMP) are resolved outside
// resolveAddress's nine-mode switch (by branch in instructions.go and by
// resolveIndirectJMP below) because both have behavior too special-cased to
// fit it (a deferred branch penalty, and the page-wrap bug respectively).
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	IndirectX
	IndirectY
	Relative
	Indirect
)

// resolveAddress computes the effective address for mode, given that the
// operand fetch address is the CPU's current PC (the byte immediately after
// the opcode). It never mutates PC; the caller advances PC by the opcode's
// length once execution is done. crossed reports whether the effective
// address and its base lie on different pages — callers apply the
// page-cross cycle penalty themselves, since writes and read-modify-write
// instructions never pay it even though they use the same modes.
func (c *CPU) resolveAddress(mode AddressingMode) (addr uint16, crossed bool) {
	switch mode {
	case Immediate:
		return c.PC, false

	case ZeroPage:
		return uint16(c.Bus.Read(c.PC)), false

	case ZeroPageX:
		return uint16(c.Bus.Read(c.PC) + c.X), false

	case ZeroPageY:
		return uint16(c.Bus.Read(c.PC) + c.Y), false

	case Absolute:
		return c.Bus.Read16(c.PC), false

	case AbsoluteX:
		base := c.Bus.Read16(c.PC)
		addr = base + uint16(c.X)
		return addr, addr&0xFF00 != base&0xFF00

	case AbsoluteY:
		base := c.Bus.Read16(c.PC)
		addr = base + uint16(c.Y)
		return addr, addr&0xFF00 != base&0xFF00

	case IndirectX:
		base := c.Bus.Read(c.PC)
		ptr := base + c.X
		lo := uint16(c.Bus.Read(uint16(ptr)))
		hi := uint16(c.Bus.Read(uint16(ptr + 1)))
		return hi<<8 | lo, false

	case IndirectY:
		base := c.Bus.Read(c.PC)
		lo := uint16(c.Bus.Read(uint16(base)))
		hi := uint16(c.Bus.Read(uint16(base + 1)))
		deref := hi<<8 | lo
		addr = deref + uint16(c.Y)
		return addr, addr&0xFF00 != deref&0xFF00

	default:
		panic("resolveAddress: unsupported mode")
	}
}

// resolveIndirectJMP implements the page-wrap bug in JMP ($xxFF): the high
// byte is fetched from $xx00 of the same page, not the next page.
func (c *CPU) resolveIndirectJMP() uint16 {
	ptr := c.Bus.Read16(c.PC)
	lo := uint16(c.Bus.Read(ptr))
	var hiAddr uint16
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	} else {
		hiAddr = ptr + 1
	}
	hi := uint16(c.Bus.Read(hiAddr))
	return hi<<8 | lo
}
