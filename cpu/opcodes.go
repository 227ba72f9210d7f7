package cpu

// An Opcode binds one of the 256 possible byte values to the addressing
// mode used to find its operand, the instruction length in bytes, its base
// cycle count, whether a page-cross of its operand address adds one more
// cycle, and the handler that performs the work.
//
// Many opcode bytes share a handler and differ only in addressing mode;
// OpcodeTable lists all 256 anyway; that's how the hardware's decode ROM
// actually works; there is no 56-entry "official" subset, only a "what
// does software actually use" one.
type Opcode struct {
	Mnemonic      string
	Mode          AddressingMode
	Length        byte
	Cycles        int
	PenalizeCross bool
	Exec          func(c *CPU, addr uint16) int
}

// kil models the handful of opcode bytes real 6502 silicon has no decode
// for; the CPU locks up until reset. There's no reasonable software use of
// these, so we panic instead of spinning forever.
func kil(c *CPU, addr uint16) int {
	panic("cpu: executed a KIL/JAM opcode")
}

// OpcodeTable is generated from the canonical 6502/2A03 instruction matrix
// (http://www.oxyron.de/html/opcodes02.html), including the undocumented
// opcodes the NES's decode ROM executes the same as any other byte.
var OpcodeTable = map[byte]Opcode{
	// ADC - Add with Carry
	0x69: {"ADC", Immediate, 2, 2, false, adc},
	0x65: {"ADC", ZeroPage, 2, 3, false, adc},
	0x75: {"ADC", ZeroPageX, 2, 4, false, adc},
	0x6D: {"ADC", Absolute, 3, 4, false, adc},
	0x7D: {"ADC", AbsoluteX, 3, 4, true, adc},
	0x79: {"ADC", AbsoluteY, 3, 4, true, adc},
	0x61: {"ADC", IndirectX, 2, 6, false, adc},
	0x71: {"ADC", IndirectY, 2, 5, true, adc},

	// AND - Logical AND
	0x29: {"AND", Immediate, 2, 2, false, and},
	0x25: {"AND", ZeroPage, 2, 3, false, and},
	0x35: {"AND", ZeroPageX, 2, 4, false, and},
	0x2D: {"AND", Absolute, 3, 4, false, and},
	0x3D: {"AND", AbsoluteX, 3, 4, true, and},
	0x39: {"AND", AbsoluteY, 3, 4, true, and},
	0x21: {"AND", IndirectX, 2, 6, false, and},
	0x31: {"AND", IndirectY, 2, 5, true, and},

	// ASL - Arithmetic Shift Left
	0x0A: {"ASL", Accumulator, 1, 2, false, aslAcc},
	0x06: {"ASL", ZeroPage, 2, 5, false, aslMem},
	0x16: {"ASL", ZeroPageX, 2, 6, false, aslMem},
	0x0E: {"ASL", Absolute, 3, 6, false, aslMem},
	0x1E: {"ASL", AbsoluteX, 3, 7, false, aslMem},

	// Branches
	0x90: {"BCC", Relative, 2, 2, false, bcc},
	0xB0: {"BCS", Relative, 2, 2, false, bcs},
	0xF0: {"BEQ", Relative, 2, 2, false, beq},
	0x30: {"BMI", Relative, 2, 2, false, bmi},
	0xD0: {"BNE", Relative, 2, 2, false, bne},
	0x10: {"BPL", Relative, 2, 2, false, bpl},
	0x50: {"BVC", Relative, 2, 2, false, bvc},
	0x70: {"BVS", Relative, 2, 2, false, bvs},

	// BIT - Bit Test
	0x24: {"BIT", ZeroPage, 2, 3, false, bit},
	0x2C: {"BIT", Absolute, 3, 4, false, bit},

	// BRK - Force Interrupt
	0x00: {"BRK", Implied, 1, 7, false, brk},

	// Flag clear/set
	0x18: {"CLC", Implied, 1, 2, false, clc},
	0xD8: {"CLD", Implied, 1, 2, false, cld},
	0x58: {"CLI", Implied, 1, 2, false, cli},
	0xB8: {"CLV", Implied, 1, 2, false, clv},
	0x38: {"SEC", Implied, 1, 2, false, sec},
	0xF8: {"SED", Implied, 1, 2, false, sed},
	0x78: {"SEI", Implied, 1, 2, false, sei},

	// CMP - Compare
	0xC9: {"CMP", Immediate, 2, 2, false, cmp},
	0xC5: {"CMP", ZeroPage, 2, 3, false, cmp},
	0xD5: {"CMP", ZeroPageX, 2, 4, false, cmp},
	0xCD: {"CMP", Absolute, 3, 4, false, cmp},
	0xDD: {"CMP", AbsoluteX, 3, 4, true, cmp},
	0xD9: {"CMP", AbsoluteY, 3, 4, true, cmp},
	0xC1: {"CMP", IndirectX, 2, 6, false, cmp},
	0xD1: {"CMP", IndirectY, 2, 5, true, cmp},

	// CPX - Compare X Register
	0xE0: {"CPX", Immediate, 2, 2, false, cpx},
	0xE4: {"CPX", ZeroPage, 2, 3, false, cpx},
	0xEC: {"CPX", Absolute, 3, 4, false, cpx},

	// CPY - Compare Y Register
	0xC0: {"CPY", Immediate, 2, 2, false, cpy},
	0xC4: {"CPY", ZeroPage, 2, 3, false, cpy},
	0xCC: {"CPY", Absolute, 3, 4, false, cpy},

	// DEC - Decrement Memory
	0xC6: {"DEC", ZeroPage, 2, 5, false, dec},
	0xD6: {"DEC", ZeroPageX, 2, 6, false, dec},
	0xCE: {"DEC", Absolute, 3, 6, false, dec},
	0xDE: {"DEC", AbsoluteX, 3, 7, false, dec},

	0xCA: {"DEX", Implied, 1, 2, false, dex},
	0x88: {"DEY", Implied, 1, 2, false, dey},

	// EOR - Exclusive OR
	0x49: {"EOR", Immediate, 2, 2, false, eor},
	0x45: {"EOR", ZeroPage, 2, 3, false, eor},
	0x55: {"EOR", ZeroPageX, 2, 4, false, eor},
	0x4D: {"EOR", Absolute, 3, 4, false, eor},
	0x5D: {"EOR", AbsoluteX, 3, 4, true, eor},
	0x59: {"EOR", AbsoluteY, 3, 4, true, eor},
	0x41: {"EOR", IndirectX, 2, 6, false, eor},
	0x51: {"EOR", IndirectY, 2, 5, true, eor},

	// INC - Increment Memory
	0xE6: {"INC", ZeroPage, 2, 5, false, inc},
	0xF6: {"INC", ZeroPageX, 2, 6, false, inc},
	0xEE: {"INC", Absolute, 3, 6, false, inc},
	0xFE: {"INC", AbsoluteX, 3, 7, false, inc},

	0xE8: {"INX", Implied, 1, 2, false, inx},
	0xC8: {"INY", Implied, 1, 2, false, iny},

	// JMP - Jump
	0x4C: {"JMP", Absolute, 3, 3, false, jmp},
	0x6C: {"JMP", Indirect, 3, 5, false, jmp},

	// JSR - Jump to Subroutine
	0x20: {"JSR", Absolute, 3, 6, false, jsr},

	// LDA - Load Accumulator
	0xA9: {"LDA", Immediate, 2, 2, false, lda},
	0xA5: {"LDA", ZeroPage, 2, 3, false, lda},
	0xB5: {"LDA", ZeroPageX, 2, 4, false, lda},
	0xAD: {"LDA", Absolute, 3, 4, false, lda},
	0xBD: {"LDA", AbsoluteX, 3, 4, true, lda},
	0xB9: {"LDA", AbsoluteY, 3, 4, true, lda},
	0xA1: {"LDA", IndirectX, 2, 6, false, lda},
	0xB1: {"LDA", IndirectY, 2, 5, true, lda},

	// LDX - Load X Register
	0xA2: {"LDX", Immediate, 2, 2, false, ldx},
	0xA6: {"LDX", ZeroPage, 2, 3, false, ldx},
	0xB6: {"LDX", ZeroPageY, 2, 4, false, ldx},
	0xAE: {"LDX", Absolute, 3, 4, false, ldx},
	0xBE: {"LDX", AbsoluteY, 3, 4, true, ldx},

	// LDY - Load Y Register
	0xA0: {"LDY", Immediate, 2, 2, false, ldy},
	0xA4: {"LDY", ZeroPage, 2, 3, false, ldy},
	0xB4: {"LDY", ZeroPageX, 2, 4, false, ldy},
	0xAC: {"LDY", Absolute, 3, 4, false, ldy},
	0xBC: {"LDY", AbsoluteX, 3, 4, true, ldy},

	// LSR - Logical Shift Right
	0x4A: {"LSR", Accumulator, 1, 2, false, lsrAcc},
	0x46: {"LSR", ZeroPage, 2, 5, false, lsrMem},
	0x56: {"LSR", ZeroPageX, 2, 6, false, lsrMem},
	0x4E: {"LSR", Absolute, 3, 6, false, lsrMem},
	0x5E: {"LSR", AbsoluteX, 3, 7, false, lsrMem},

	// NOP - No Operation
	0xEA: {"NOP", Implied, 1, 2, false, nop},

	// ORA - Logical Inclusive OR
	0x09: {"ORA", Immediate, 2, 2, false, ora},
	0x05: {"ORA", ZeroPage, 2, 3, false, ora},
	0x15: {"ORA", ZeroPageX, 2, 4, false, ora},
	0x0D: {"ORA", Absolute, 3, 4, false, ora},
	0x1D: {"ORA", AbsoluteX, 3, 4, true, ora},
	0x19: {"ORA", AbsoluteY, 3, 4, true, ora},
	0x01: {"ORA", IndirectX, 2, 6, false, ora},
	0x11: {"ORA", IndirectY, 2, 5, true, ora},

	// Stack
	0x48: {"PHA", Implied, 1, 3, false, pha},
	0x08: {"PHP", Implied, 1, 3, false, php},
	0x68: {"PLA", Implied, 1, 4, false, pla},
	0x28: {"PLP", Implied, 1, 4, false, plp},

	// ROL - Rotate Left
	0x2A: {"ROL", Accumulator, 1, 2, false, rolAcc},
	0x26: {"ROL", ZeroPage, 2, 5, false, rolMem},
	0x36: {"ROL", ZeroPageX, 2, 6, false, rolMem},
	0x2E: {"ROL", Absolute, 3, 6, false, rolMem},
	0x3E: {"ROL", AbsoluteX, 3, 7, false, rolMem},

	// ROR - Rotate Right
	0x6A: {"ROR", Accumulator, 1, 2, false, rorAcc},
	0x66: {"ROR", ZeroPage, 2, 5, false, rorMem},
	0x76: {"ROR", ZeroPageX, 2, 6, false, rorMem},
	0x6E: {"ROR", Absolute, 3, 6, false, rorMem},
	0x7E: {"ROR", AbsoluteX, 3, 7, false, rorMem},

	// RTI / RTS
	0x40: {"RTI", Implied, 1, 6, false, rti},
	0x60: {"RTS", Implied, 1, 6, false, rts},

	// SBC - Subtract with Carry
	0xE9: {"SBC", Immediate, 2, 2, false, sbc},
	0xE5: {"SBC", ZeroPage, 2, 3, false, sbc},
	0xF5: {"SBC", ZeroPageX, 2, 4, false, sbc},
	0xED: {"SBC", Absolute, 3, 4, false, sbc},
	0xFD: {"SBC", AbsoluteX, 3, 4, true, sbc},
	0xF9: {"SBC", AbsoluteY, 3, 4, true, sbc},
	0xE1: {"SBC", IndirectX, 2, 6, false, sbc},
	0xF1: {"SBC", IndirectY, 2, 5, true, sbc},

	// STA - Store Accumulator
	0x85: {"STA", ZeroPage, 2, 3, false, sta},
	0x95: {"STA", ZeroPageX, 2, 4, false, sta},
	0x8D: {"STA", Absolute, 3, 4, false, sta},
	0x9D: {"STA", AbsoluteX, 3, 5, false, sta},
	0x99: {"STA", AbsoluteY, 3, 5, false, sta},
	0x81: {"STA", IndirectX, 2, 6, false, sta},
	0x91: {"STA", IndirectY, 2, 6, false, sta},

	// STX / STY - Store X / Y Register
	0x86: {"STX", ZeroPage, 2, 3, false, stx},
	0x96: {"STX", ZeroPageY, 2, 4, false, stx},
	0x8E: {"STX", Absolute, 3, 4, false, stx},
	0x84: {"STY", ZeroPage, 2, 3, false, sty},
	0x94: {"STY", ZeroPageX, 2, 4, false, sty},
	0x8C: {"STY", Absolute, 3, 4, false, sty},

	// Register transfers
	0xAA: {"TAX", Implied, 1, 2, false, tax},
	0x8A: {"TXA", Implied, 1, 2, false, txa},
	0xA8: {"TAY", Implied, 1, 2, false, tay},
	0x98: {"TYA", Implied, 1, 2, false, tya},
	0xBA: {"TSX", Implied, 1, 2, false, tsx},
	0x9A: {"TXS", Implied, 1, 2, false, txs},

	// Unofficial opcodes: combined RMW ops (LAX, SAX, DCP, ISB, SLO, RLA,
	// SRE, RRA), organized by mnemonic same as above.
	0xA7: {"LAX", ZeroPage, 2, 3, false, lax},
	0xB7: {"LAX", ZeroPageY, 2, 4, false, lax},
	0xAF: {"LAX", Absolute, 3, 4, false, lax},
	0xBF: {"LAX", AbsoluteY, 3, 4, true, lax},
	0xA3: {"LAX", IndirectX, 2, 6, false, lax},
	0xB3: {"LAX", IndirectY, 2, 5, true, lax},

	0x87: {"SAX", ZeroPage, 2, 3, false, sax},
	0x97: {"SAX", ZeroPageY, 2, 4, false, sax},
	0x8F: {"SAX", Absolute, 3, 4, false, sax},
	0x83: {"SAX", IndirectX, 2, 6, false, sax},

	0xC7: {"DCP", ZeroPage, 2, 5, false, dcp},
	0xD7: {"DCP", ZeroPageX, 2, 6, false, dcp},
	0xCF: {"DCP", Absolute, 3, 6, false, dcp},
	0xDF: {"DCP", AbsoluteX, 3, 7, false, dcp},
	0xDB: {"DCP", AbsoluteY, 3, 7, false, dcp},
	0xC3: {"DCP", IndirectX, 2, 8, false, dcp},
	0xD3: {"DCP", IndirectY, 2, 8, false, dcp},

	0xE7: {"ISB", ZeroPage, 2, 5, false, isb},
	0xF7: {"ISB", ZeroPageX, 2, 6, false, isb},
	0xEF: {"ISB", Absolute, 3, 6, false, isb},
	0xFF: {"ISB", AbsoluteX, 3, 7, false, isb},
	0xFB: {"ISB", AbsoluteY, 3, 7, false, isb},
	0xE3: {"ISB", IndirectX, 2, 8, false, isb},
	0xF3: {"ISB", IndirectY, 2, 8, false, isb},

	0x07: {"SLO", ZeroPage, 2, 5, false, slo},
	0x17: {"SLO", ZeroPageX, 2, 6, false, slo},
	0x0F: {"SLO", Absolute, 3, 6, false, slo},
	0x1F: {"SLO", AbsoluteX, 3, 7, false, slo},
	0x1B: {"SLO", AbsoluteY, 3, 7, false, slo},
	0x03: {"SLO", IndirectX, 2, 8, false, slo},
	0x13: {"SLO", IndirectY, 2, 8, false, slo},

	0x27: {"RLA", ZeroPage, 2, 5, false, rla},
	0x37: {"RLA", ZeroPageX, 2, 6, false, rla},
	0x2F: {"RLA", Absolute, 3, 6, false, rla},
	0x3F: {"RLA", AbsoluteX, 3, 7, false, rla},
	0x3B: {"RLA", AbsoluteY, 3, 7, false, rla},
	0x23: {"RLA", IndirectX, 2, 8, false, rla},
	0x33: {"RLA", IndirectY, 2, 8, false, rla},

	0x47: {"SRE", ZeroPage, 2, 5, false, sre},
	0x57: {"SRE", ZeroPageX, 2, 6, false, sre},
	0x4F: {"SRE", Absolute, 3, 6, false, sre},
	0x5F: {"SRE", AbsoluteX, 3, 7, false, sre},
	0x5B: {"SRE", AbsoluteY, 3, 7, false, sre},
	0x43: {"SRE", IndirectX, 2, 8, false, sre},
	0x53: {"SRE", IndirectY, 2, 8, false, sre},

	0x67: {"RRA", ZeroPage, 2, 5, false, rra},
	0x77: {"RRA", ZeroPageX, 2, 6, false, rra},
	0x6F: {"RRA", Absolute, 3, 6, false, rra},
	0x7F: {"RRA", AbsoluteX, 3, 7, false, rra},
	0x7B: {"RRA", AbsoluteY, 3, 7, false, rra},
	0x63: {"RRA", IndirectX, 2, 8, false, rra},
	0x73: {"RRA", IndirectY, 2, 8, false, rra},

	// Unofficial NOPs: 1-byte implied, 2-byte (immediate or zero page),
	// and 3-byte (absolute/absolute,X) forms. The abs,x and immediate
	// forms still pay the read cost their mode implies.
	0x1A: {"NOP", Implied, 1, 2, false, nop},
	0x3A: {"NOP", Implied, 1, 2, false, nop},
	0x5A: {"NOP", Implied, 1, 2, false, nop},
	0x7A: {"NOP", Implied, 1, 2, false, nop},
	0xDA: {"NOP", Implied, 1, 2, false, nop},
	0xFA: {"NOP", Implied, 1, 2, false, nop},

	0x80: {"NOP", Immediate, 2, 2, false, nopRead},
	0x82: {"NOP", Immediate, 2, 2, false, nopRead},
	0x89: {"NOP", Immediate, 2, 2, false, nopRead},
	0xC2: {"NOP", Immediate, 2, 2, false, nopRead},
	0xE2: {"NOP", Immediate, 2, 2, false, nopRead},

	0x04: {"NOP", ZeroPage, 2, 3, false, nopRead},
	0x44: {"NOP", ZeroPage, 2, 3, false, nopRead},
	0x64: {"NOP", ZeroPage, 2, 3, false, nopRead},
	0x14: {"NOP", ZeroPageX, 2, 4, false, nopRead},
	0x34: {"NOP", ZeroPageX, 2, 4, false, nopRead},
	0x54: {"NOP", ZeroPageX, 2, 4, false, nopRead},
	0x74: {"NOP", ZeroPageX, 2, 4, false, nopRead},
	0xD4: {"NOP", ZeroPageX, 2, 4, false, nopRead},
	0xF4: {"NOP", ZeroPageX, 2, 4, false, nopRead},

	0x0C: {"NOP", Absolute, 3, 4, false, nopRead},
	0x1C: {"NOP", AbsoluteX, 3, 4, true, nopRead},
	0x3C: {"NOP", AbsoluteX, 3, 4, true, nopRead},
	0x5C: {"NOP", AbsoluteX, 3, 4, true, nopRead},
	0x7C: {"NOP", AbsoluteX, 3, 4, true, nopRead},
	0xDC: {"NOP", AbsoluteX, 3, 4, true, nopRead},
	0xFC: {"NOP", AbsoluteX, 3, 4, true, nopRead},

	// SBC's unofficial duplicate.
	0xEB: {"SBC", Immediate, 2, 2, false, sbc},

	// Unstable/unstable-adjacent opcodes: behavior on real hardware varies
	// with analog bus effects; these implement the commonly emulated
	// approximation (see DESIGN.md).
	0x0B: {"ANC", Immediate, 2, 2, false, anc},
	0x2B: {"ANC", Immediate, 2, 2, false, anc},
	0x4B: {"ALR", Immediate, 2, 2, false, alr},
	0x6B: {"ARR", Immediate, 2, 2, false, arr},
	0xCB: {"AXS", Immediate, 2, 2, false, axs},
	0xBB: {"LAS", AbsoluteY, 3, 4, true, las},
	0xAB: {"LXA", Immediate, 2, 2, false, lxa},
	0x8B: {"XAA", Immediate, 2, 2, false, xaa},
	0x93: {"AHX", IndirectY, 2, 6, false, ahx},
	0x9F: {"AHX", AbsoluteY, 3, 5, false, ahx},
	0x9E: {"SHX", AbsoluteY, 3, 5, false, shx},
	0x9C: {"SHY", AbsoluteX, 3, 5, false, shy},
	0x9B: {"TAS", AbsoluteY, 3, 5, false, tas},

	// KIL/JAM: hangs real hardware; no decode in this core either.
	0x02: {"KIL", Implied, 1, 0, false, kil},
	0x12: {"KIL", Implied, 1, 0, false, kil},
	0x22: {"KIL", Implied, 1, 0, false, kil},
	0x32: {"KIL", Implied, 1, 0, false, kil},
	0x42: {"KIL", Implied, 1, 0, false, kil},
	0x52: {"KIL", Implied, 1, 0, false, kil},
	0x62: {"KIL", Implied, 1, 0, false, kil},
	0x72: {"KIL", Implied, 1, 0, false, kil},
	0x92: {"KIL", Implied, 1, 0, false, kil},
	0xB2: {"KIL", Implied, 1, 0, false, kil},
	0xD2: {"KIL", Implied, 1, 0, false, kil},
	0xF2: {"KIL", Implied, 1, 0, false, kil},
}
