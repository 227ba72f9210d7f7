package cpu

import "nescore/mask"

// Flags is the packed 8-bit processor status register, laid out N V U B D I
// Z C (bit 7 down to bit 0). U (bit 5) has no hardware meaning but is always
// read back as 1; callers never see it cleared except transiently on the
// stack, per the PHP/PLP/BRK/RTI conventions in instructions.go.
//
// mask's bit positions are 1-indexed from the MSB, which lines up exactly
// with this layout: N=I1, V=I2, U=I3, B=I4, D=I5, I=I6, Z=I7, C=I8.
type Flags byte

func (f Flags) Negative() bool  { return mask.IsSet(byte(f), mask.I1) }
func (f Flags) Overflow() bool  { return mask.IsSet(byte(f), mask.I2) }
func (f Flags) Unused() bool    { return mask.IsSet(byte(f), mask.I3) }
func (f Flags) Break() bool     { return mask.IsSet(byte(f), mask.I4) }
func (f Flags) Decimal() bool   { return mask.IsSet(byte(f), mask.I5) }
func (f Flags) Interrupt() bool { return mask.IsSet(byte(f), mask.I6) }
func (f Flags) Zero() bool      { return mask.IsSet(byte(f), mask.I7) }
func (f Flags) Carry() bool     { return mask.IsSet(byte(f), mask.I8) }

func (f *Flags) SetNegative(v bool) {
	if v {
		*f = Flags(mask.Set(byte(*f), mask.I1, 1))
	} else {
		*f = Flags(mask.Unset(byte(*f), mask.I1, mask.I1))
	}
}

func (f *Flags) SetOverflow(v bool) {
	if v {
		*f = Flags(mask.Set(byte(*f), mask.I2, 1))
	} else {
		*f = Flags(mask.Unset(byte(*f), mask.I2, mask.I2))
	}
}

func (f *Flags) SetUnused(v bool) {
	if v {
		*f = Flags(mask.Set(byte(*f), mask.I3, 1))
	} else {
		*f = Flags(mask.Unset(byte(*f), mask.I3, mask.I3))
	}
}

func (f *Flags) SetBreak(v bool) {
	if v {
		*f = Flags(mask.Set(byte(*f), mask.I4, 1))
	} else {
		*f = Flags(mask.Unset(byte(*f), mask.I4, mask.I4))
	}
}

func (f *Flags) SetDecimal(v bool) {
	if v {
		*f = Flags(mask.Set(byte(*f), mask.I5, 1))
	} else {
		*f = Flags(mask.Unset(byte(*f), mask.I5, mask.I5))
	}
}

func (f *Flags) SetInterrupt(v bool) {
	if v {
		*f = Flags(mask.Set(byte(*f), mask.I6, 1))
	} else {
		*f = Flags(mask.Unset(byte(*f), mask.I6, mask.I6))
	}
}

func (f *Flags) SetZero(v bool) {
	if v {
		*f = Flags(mask.Set(byte(*f), mask.I7, 1))
	} else {
		*f = Flags(mask.Unset(byte(*f), mask.I7, mask.I7))
	}
}

func (f *Flags) SetCarry(v bool) {
	if v {
		*f = Flags(mask.Set(byte(*f), mask.I8, 1))
	} else {
		*f = Flags(mask.Unset(byte(*f), mask.I8, mask.I8))
	}
}

// setNZ applies the universal "update NZ flags from v" convention used by
// almost every instruction.
func (f *Flags) setNZ(v byte) {
	f.SetZero(v == 0)
	f.SetNegative(v&0x80 != 0)
}
