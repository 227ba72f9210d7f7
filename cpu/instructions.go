package cpu

// Official instruction set. One handler per mnemonic (shared across the
// addressing modes OpcodeTable lists it under); addr is the effective
// address the mode resolver already computed, or the fetch address itself
// for Immediate. Implied-mode handlers ignore addr.
//
// https://www.nesdev.org/obelisk-6502-guide/reference.html

// addToA is the shared ADC/SBC core: SBC calls it with the operand's ones'
// complement, which turns subtraction into addition without a separate
// borrow chain.
func (c *CPU) addToA(data byte) {
	sum := uint16(c.A) + uint16(data) + uint16(b2u8(c.P.Carry()))
	result := byte(sum)
	c.P.SetCarry(sum > 0xFF)
	c.P.SetOverflow((data^result)&(result^c.A)&0x80 != 0)
	c.A = result
	c.P.setNZ(c.A)
}

func b2u8(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func adc(c *CPU, addr uint16) int {
	c.addToA(c.Bus.Read(addr))
	return 0
}

func sbc(c *CPU, addr uint16) int {
	data := c.Bus.Read(addr)
	c.addToA(^data)
	return 0
}

func and(c *CPU, addr uint16) int {
	c.A &= c.Bus.Read(addr)
	c.P.setNZ(c.A)
	return 0
}

func ora(c *CPU, addr uint16) int {
	c.A |= c.Bus.Read(addr)
	c.P.setNZ(c.A)
	return 0
}

func eor(c *CPU, addr uint16) int {
	c.A ^= c.Bus.Read(addr)
	c.P.setNZ(c.A)
	return 0
}

func aslMem(c *CPU, addr uint16) int {
	v := c.Bus.Read(addr)
	c.P.SetCarry(v&0x80 != 0)
	v <<= 1
	c.Bus.Write(addr, v)
	c.P.setNZ(v)
	return 0
}

func aslAcc(c *CPU, addr uint16) int {
	c.P.SetCarry(c.A&0x80 != 0)
	c.A <<= 1
	c.P.setNZ(c.A)
	return 0
}

func lsrMem(c *CPU, addr uint16) int {
	v := c.Bus.Read(addr)
	c.P.SetCarry(v&0x01 != 0)
	v >>= 1
	c.Bus.Write(addr, v)
	c.P.setNZ(v)
	return 0
}

func lsrAcc(c *CPU, addr uint16) int {
	c.P.SetCarry(c.A&0x01 != 0)
	c.A >>= 1
	c.P.setNZ(c.A)
	return 0
}

func rolMem(c *CPU, addr uint16) int {
	v := c.Bus.Read(addr)
	oldCarry := c.P.Carry()
	c.P.SetCarry(v&0x80 != 0)
	v <<= 1
	if oldCarry {
		v |= 0x01
	}
	c.Bus.Write(addr, v)
	c.P.setNZ(v)
	return 0
}

func rolAcc(c *CPU, addr uint16) int {
	oldCarry := c.P.Carry()
	c.P.SetCarry(c.A&0x80 != 0)
	c.A <<= 1
	if oldCarry {
		c.A |= 0x01
	}
	c.P.setNZ(c.A)
	return 0
}

func rorMem(c *CPU, addr uint16) int {
	v := c.Bus.Read(addr)
	oldCarry := c.P.Carry()
	c.P.SetCarry(v&0x01 != 0)
	v >>= 1
	if oldCarry {
		v |= 0x80
	}
	c.Bus.Write(addr, v)
	c.P.setNZ(v)
	return 0
}

func rorAcc(c *CPU, addr uint16) int {
	oldCarry := c.P.Carry()
	c.P.SetCarry(c.A&0x01 != 0)
	c.A >>= 1
	if oldCarry {
		c.A |= 0x80
	}
	c.P.setNZ(c.A)
	return 0
}

func bit(c *CPU, addr uint16) int {
	v := c.Bus.Read(addr)
	c.P.SetZero(c.A&v == 0)
	c.P.SetOverflow(v&0x40 != 0)
	c.P.SetNegative(v&0x80 != 0)
	return 0
}

func compareWith(c *CPU, reg, data byte) {
	c.P.SetCarry(reg >= data)
	c.P.setNZ(reg - data)
}

func cmp(c *CPU, addr uint16) int {
	compareWith(c, c.A, c.Bus.Read(addr))
	return 0
}

func cpx(c *CPU, addr uint16) int {
	compareWith(c, c.X, c.Bus.Read(addr))
	return 0
}

func cpy(c *CPU, addr uint16) int {
	compareWith(c, c.Y, c.Bus.Read(addr))
	return 0
}

func dec(c *CPU, addr uint16) int {
	v := c.Bus.Read(addr) - 1
	c.Bus.Write(addr, v)
	c.P.setNZ(v)
	return 0
}

func inc(c *CPU, addr uint16) int {
	v := c.Bus.Read(addr) + 1
	c.Bus.Write(addr, v)
	c.P.setNZ(v)
	return 0
}

func dex(c *CPU, addr uint16) int { c.X--; c.P.setNZ(c.X); return 0 }
func dey(c *CPU, addr uint16) int { c.Y--; c.P.setNZ(c.Y); return 0 }
func inx(c *CPU, addr uint16) int { c.X++; c.P.setNZ(c.X); return 0 }
func iny(c *CPU, addr uint16) int { c.Y++; c.P.setNZ(c.Y); return 0 }

func lda(c *CPU, addr uint16) int {
	c.A = c.Bus.Read(addr)
	c.P.setNZ(c.A)
	return 0
}

func ldx(c *CPU, addr uint16) int {
	c.X = c.Bus.Read(addr)
	c.P.setNZ(c.X)
	return 0
}

func ldy(c *CPU, addr uint16) int {
	c.Y = c.Bus.Read(addr)
	c.P.setNZ(c.Y)
	return 0
}

func sta(c *CPU, addr uint16) int { c.Bus.Write(addr, c.A); return 0 }
func stx(c *CPU, addr uint16) int { c.Bus.Write(addr, c.X); return 0 }
func sty(c *CPU, addr uint16) int { c.Bus.Write(addr, c.Y); return 0 }

func tax(c *CPU, addr uint16) int { c.X = c.A; c.P.setNZ(c.X); return 0 }
func txa(c *CPU, addr uint16) int { c.A = c.X; c.P.setNZ(c.A); return 0 }
func tay(c *CPU, addr uint16) int { c.Y = c.A; c.P.setNZ(c.Y); return 0 }
func tya(c *CPU, addr uint16) int { c.A = c.Y; c.P.setNZ(c.A); return 0 }
func tsx(c *CPU, addr uint16) int { c.X = c.SP; c.P.setNZ(c.X); return 0 }
func txs(c *CPU, addr uint16) int { c.SP = c.X; return 0 } // TXS never touches flags

func clc(c *CPU, addr uint16) int { c.P.SetCarry(false); return 0 }
func sec(c *CPU, addr uint16) int { c.P.SetCarry(true); return 0 }
func cli(c *CPU, addr uint16) int { c.P.SetInterrupt(false); return 0 }
func sei(c *CPU, addr uint16) int { c.P.SetInterrupt(true); return 0 }
func clv(c *CPU, addr uint16) int { c.P.SetOverflow(false); return 0 }
func cld(c *CPU, addr uint16) int { c.P.SetDecimal(false); return 0 }
func sed(c *CPU, addr uint16) int { c.P.SetDecimal(true); return 0 }

func nop(c *CPU, addr uint16) int { return 0 }

func pha(c *CPU, addr uint16) int { c.push(c.A); return 0 }

func pla(c *CPU, addr uint16) int {
	c.A = c.pop()
	c.P.setNZ(c.A)
	return 0
}

func php(c *CPU, addr uint16) int { c.pushStatus(true); return 0 }
func plp(c *CPU, addr uint16) int { c.pullStatus(); return 0 }

// branch applies the taken/page-cross cycle penalties and, if taken, moves
// PC to the target; otherwise PC is left at the offset byte so Step's
// generic advance-by-length takes over.
func (c *CPU) branch(taken bool) int {
	next := c.PC + 1
	if !taken {
		return 0
	}
	offset := int8(c.Bus.Read(c.PC))
	target := uint16(int32(next) + int32(offset))
	extra := 1
	if target&0xFF00 != next&0xFF00 {
		extra++
	}
	c.PC = target
	return extra
}

func bcc(c *CPU, addr uint16) int { return c.branch(!c.P.Carry()) }
func bcs(c *CPU, addr uint16) int { return c.branch(c.P.Carry()) }
func beq(c *CPU, addr uint16) int { return c.branch(c.P.Zero()) }
func bne(c *CPU, addr uint16) int { return c.branch(!c.P.Zero()) }
func bmi(c *CPU, addr uint16) int { return c.branch(c.P.Negative()) }
func bpl(c *CPU, addr uint16) int { return c.branch(!c.P.Negative()) }
func bvc(c *CPU, addr uint16) int { return c.branch(!c.P.Overflow()) }
func bvs(c *CPU, addr uint16) int { return c.branch(c.P.Overflow()) }

func jmp(c *CPU, addr uint16) int { c.PC = addr; return 0 }

func jsr(c *CPU, addr uint16) int {
	c.push16(c.PC + 1)
	c.PC = addr
	return 0
}

func rts(c *CPU, addr uint16) int {
	c.PC = c.pop16() + 1
	return 0
}

// brk skips the padding byte that always follows a BRK opcode, then behaves
// like a software IRQ with B set in the pushed status.
func brk(c *CPU, addr uint16) int {
	c.PC++
	c.push16(c.PC)
	c.pushStatus(true)
	c.P.SetInterrupt(true)
	c.PC = c.Bus.Read16(irqVector)
	return 0
}

func rti(c *CPU, addr uint16) int {
	c.pullStatus()
	c.PC = c.pop16()
	return 0
}
