package cpu

// opcodeEntry is one slot of the 256-entry dispatch table: a mnemonic/
// addressing-mode/length/cycle tuple bound to a handler function, looked
// up once per Step instead of dispatching through a 256-case switch.
// Slots the real 6502 leaves undocumented carry the invalid sentinel
// (length 0, cycles 0, iNOP): executing one is a documented no-op, never
// a fault.
type opcodeEntry struct {
	mnemonic string
	mode     addrMode
	length   uint8
	cycles   uint8
	// readClass marks instructions that read an operand through indexed or
	// indirect-indexed addressing and so pay +1 cycle when that addressing
	// crosses a page boundary. Stores and read-modify-write instructions
	// never set this; they always charge their fixed worst-case cost.
	readClass bool
	handler   handlerFunc
}

// opcodeTable is indexed directly by the fetched opcode byte. Unlisted
// indices are filled by init() with the invalid-opcode sentinel.
var opcodeTable = [256]opcodeEntry{
	0x00: {"BRK", modeImplied, 1, 7, false, iBRK},
	0x01: {"ORA", modeIndirectX, 2, 6, false, iORA},
	0x05: {"ORA", modeZeroPage, 2, 3, false, iORA},
	0x06: {"ASL", modeZeroPage, 2, 5, false, iASL},
	0x08: {"PHP", modeImplied, 1, 3, false, iPHP},
	0x09: {"ORA", modeImmediate, 2, 2, false, iORA},
	0x0A: {"ASL", modeAccumulator, 1, 2, false, iASL},
	0x0D: {"ORA", modeAbsolute, 3, 4, false, iORA},
	0x0E: {"ASL", modeAbsolute, 3, 6, false, iASL},

	0x10: {"BPL", modeRelative, 2, 2, false, iBPL},
	0x11: {"ORA", modeIndirectY, 2, 5, true, iORA},
	0x15: {"ORA", modeZeroPageX, 2, 4, false, iORA},
	0x16: {"ASL", modeZeroPageX, 2, 6, false, iASL},
	0x18: {"CLC", modeImplied, 1, 2, false, iCLC},
	0x19: {"ORA", modeAbsoluteY, 3, 4, true, iORA},
	0x1D: {"ORA", modeAbsoluteX, 3, 4, true, iORA},
	0x1E: {"ASL", modeAbsoluteX, 3, 7, false, iASL},

	0x20: {"JSR", modeAbsolute, 3, 6, false, iJSR},
	0x21: {"AND", modeIndirectX, 2, 6, false, iAND},
	0x24: {"BIT", modeZeroPage, 2, 3, false, iBIT},
	0x25: {"AND", modeZeroPage, 2, 3, false, iAND},
	0x26: {"ROL", modeZeroPage, 2, 5, false, iROL},
	0x28: {"PLP", modeImplied, 1, 4, false, iPLP},
	0x29: {"AND", modeImmediate, 2, 2, false, iAND},
	0x2A: {"ROL", modeAccumulator, 1, 2, false, iROL},
	0x2C: {"BIT", modeAbsolute, 3, 4, false, iBIT},
	0x2D: {"AND", modeAbsolute, 3, 4, false, iAND},
	0x2E: {"ROL", modeAbsolute, 3, 6, false, iROL},

	0x30: {"BMI", modeRelative, 2, 2, false, iBMI},
	0x31: {"AND", modeIndirectY, 2, 5, true, iAND},
	0x35: {"AND", modeZeroPageX, 2, 4, false, iAND},
	0x36: {"ROL", modeZeroPageX, 2, 6, false, iROL},
	0x38: {"SEC", modeImplied, 1, 2, false, iSEC},
	0x39: {"AND", modeAbsoluteY, 3, 4, true, iAND},
	0x3D: {"AND", modeAbsoluteX, 3, 4, true, iAND},
	0x3E: {"ROL", modeAbsoluteX, 3, 7, false, iROL},

	0x40: {"RTI", modeImplied, 1, 6, false, iRTI},
	0x41: {"EOR", modeIndirectX, 2, 6, false, iEOR},
	0x45: {"EOR", modeZeroPage, 2, 3, false, iEOR},
	0x46: {"LSR", modeZeroPage, 2, 5, false, iLSR},
	0x48: {"PHA", modeImplied, 1, 3, false, iPHA},
	0x49: {"EOR", modeImmediate, 2, 2, false, iEOR},
	0x4A: {"LSR", modeAccumulator, 1, 2, false, iLSR},
	0x4C: {"JMP", modeAbsolute, 3, 3, false, iJMP},
	0x4D: {"EOR", modeAbsolute, 3, 4, false, iEOR},
	0x4E: {"LSR", modeAbsolute, 3, 6, false, iLSR},

	0x50: {"BVC", modeRelative, 2, 2, false, iBVC},
	0x51: {"EOR", modeIndirectY, 2, 5, true, iEOR},
	0x55: {"EOR", modeZeroPageX, 2, 4, false, iEOR},
	0x56: {"LSR", modeZeroPageX, 2, 6, false, iLSR},
	0x58: {"CLI", modeImplied, 1, 2, false, iCLI},
	0x59: {"EOR", modeAbsoluteY, 3, 4, true, iEOR},
	0x5D: {"EOR", modeAbsoluteX, 3, 4, true, iEOR},
	0x5E: {"LSR", modeAbsoluteX, 3, 7, false, iLSR},

	0x60: {"RTS", modeImplied, 1, 6, false, iRTS},
	0x61: {"ADC", modeIndirectX, 2, 6, false, iADC},
	0x65: {"ADC", modeZeroPage, 2, 3, false, iADC},
	0x66: {"ROR", modeZeroPage, 2, 5, false, iROR},
	0x68: {"PLA", modeImplied, 1, 4, false, iPLA},
	0x69: {"ADC", modeImmediate, 2, 2, false, iADC},
	0x6A: {"ROR", modeAccumulator, 1, 2, false, iROR},
	0x6C: {"JMP", modeIndirect, 3, 5, false, iJMP},
	0x6D: {"ADC", modeAbsolute, 3, 4, false, iADC},
	0x6E: {"ROR", modeAbsolute, 3, 6, false, iROR},

	0x70: {"BVS", modeRelative, 2, 2, false, iBVS},
	0x71: {"ADC", modeIndirectY, 2, 5, true, iADC},
	0x75: {"ADC", modeZeroPageX, 2, 4, false, iADC},
	0x76: {"ROR", modeZeroPageX, 2, 6, false, iROR},
	0x78: {"SEI", modeImplied, 1, 2, false, iSEI},
	0x79: {"ADC", modeAbsoluteY, 3, 4, true, iADC},
	0x7D: {"ADC", modeAbsoluteX, 3, 4, true, iADC},
	0x7E: {"ROR", modeAbsoluteX, 3, 7, false, iROR},

	0x81: {"STA", modeIndirectX, 2, 6, false, iSTA},
	0x84: {"STY", modeZeroPage, 2, 3, false, iSTY},
	0x85: {"STA", modeZeroPage, 2, 3, false, iSTA},
	0x86: {"STX", modeZeroPage, 2, 3, false, iSTX},
	0x88: {"DEY", modeImplied, 1, 2, false, iDEY},
	0x8A: {"TXA", modeImplied, 1, 2, false, iTXA},
	0x8C: {"STY", modeAbsolute, 3, 4, false, iSTY},
	0x8D: {"STA", modeAbsolute, 3, 4, false, iSTA},
	0x8E: {"STX", modeAbsolute, 3, 4, false, iSTX},

	0x90: {"BCC", modeRelative, 2, 2, false, iBCC},
	0x91: {"STA", modeIndirectY, 2, 6, false, iSTA},
	0x94: {"STY", modeZeroPageX, 2, 4, false, iSTY},
	0x95: {"STA", modeZeroPageX, 2, 4, false, iSTA},
	0x96: {"STX", modeZeroPageY, 2, 4, false, iSTX},
	0x98: {"TYA", modeImplied, 1, 2, false, iTYA},
	0x99: {"STA", modeAbsoluteY, 3, 5, false, iSTA},
	0x9A: {"TXS", modeImplied, 1, 2, false, iTXS},
	0x9D: {"STA", modeAbsoluteX, 3, 5, false, iSTA},

	0xA0: {"LDY", modeImmediate, 2, 2, false, iLDY},
	0xA1: {"LDA", modeIndirectX, 2, 6, false, iLDA},
	0xA2: {"LDX", modeImmediate, 2, 2, false, iLDX},
	0xA4: {"LDY", modeZeroPage, 2, 3, false, iLDY},
	0xA5: {"LDA", modeZeroPage, 2, 3, false, iLDA},
	0xA6: {"LDX", modeZeroPage, 2, 3, false, iLDX},
	0xA8: {"TAY", modeImplied, 1, 2, false, iTAY},
	0xA9: {"LDA", modeImmediate, 2, 2, false, iLDA},
	0xAA: {"TAX", modeImplied, 1, 2, false, iTAX},
	0xAC: {"LDY", modeAbsolute, 3, 4, false, iLDY},
	0xAD: {"LDA", modeAbsolute, 3, 4, false, iLDA},
	0xAE: {"LDX", modeAbsolute, 3, 4, false, iLDX},

	0xB0: {"BCS", modeRelative, 2, 2, false, iBCS},
	0xB1: {"LDA", modeIndirectY, 2, 5, true, iLDA},
	0xB4: {"LDY", modeZeroPageX, 2, 4, false, iLDY},
	0xB5: {"LDA", modeZeroPageX, 2, 4, false, iLDA},
	0xB6: {"LDX", modeZeroPageY, 2, 4, false, iLDX},
	0xB8: {"CLV", modeImplied, 1, 2, false, iCLV},
	0xB9: {"LDA", modeAbsoluteY, 3, 4, true, iLDA},
	0xBA: {"TSX", modeImplied, 1, 2, false, iTSX},
	0xBC: {"LDY", modeAbsoluteX, 3, 4, true, iLDY},
	0xBD: {"LDA", modeAbsoluteX, 3, 4, true, iLDA},
	0xBE: {"LDX", modeAbsoluteY, 3, 4, true, iLDX},

	0xC0: {"CPY", modeImmediate, 2, 2, false, iCPY},
	0xC1: {"CMP", modeIndirectX, 2, 6, false, iCMP},
	0xC4: {"CPY", modeZeroPage, 2, 3, false, iCPY},
	0xC5: {"CMP", modeZeroPage, 2, 3, false, iCMP},
	0xC6: {"DEC", modeZeroPage, 2, 5, false, iDEC},
	0xC8: {"INY", modeImplied, 1, 2, false, iINY},
	0xC9: {"CMP", modeImmediate, 2, 2, false, iCMP},
	0xCA: {"DEX", modeImplied, 1, 2, false, iDEX},
	0xCC: {"CPY", modeAbsolute, 3, 4, false, iCPY},
	0xCD: {"CMP", modeAbsolute, 3, 4, false, iCMP},
	0xCE: {"DEC", modeAbsolute, 3, 6, false, iDEC},

	0xD0: {"BNE", modeRelative, 2, 2, false, iBNE},
	0xD1: {"CMP", modeIndirectY, 2, 5, true, iCMP},
	0xD5: {"CMP", modeZeroPageX, 2, 4, false, iCMP},
	0xD6: {"DEC", modeZeroPageX, 2, 6, false, iDEC},
	0xD8: {"CLD", modeImplied, 1, 2, false, iCLD},
	0xD9: {"CMP", modeAbsoluteY, 3, 4, true, iCMP},
	0xDD: {"CMP", modeAbsoluteX, 3, 4, true, iCMP},
	0xDE: {"DEC", modeAbsoluteX, 3, 7, false, iDEC},

	0xE0: {"CPX", modeImmediate, 2, 2, false, iCPX},
	0xE1: {"SBC", modeIndirectX, 2, 6, false, iSBC},
	0xE4: {"CPX", modeZeroPage, 2, 3, false, iCPX},
	0xE5: {"SBC", modeZeroPage, 2, 3, false, iSBC},
	0xE6: {"INC", modeZeroPage, 2, 5, false, iINC},
	0xE8: {"INX", modeImplied, 1, 2, false, iINX},
	0xE9: {"SBC", modeImmediate, 2, 2, false, iSBC},
	0xEA: {"NOP", modeImplied, 1, 2, false, iNOP},
	0xEC: {"CPX", modeAbsolute, 3, 4, false, iCPX},
	0xED: {"SBC", modeAbsolute, 3, 4, false, iSBC},
	0xEE: {"INC", modeAbsolute, 3, 6, false, iINC},

	0xF0: {"BEQ", modeRelative, 2, 2, false, iBEQ},
	0xF1: {"SBC", modeIndirectY, 2, 5, true, iSBC},
	0xF5: {"SBC", modeZeroPageX, 2, 4, false, iSBC},
	0xF6: {"INC", modeZeroPageX, 2, 6, false, iINC},
	0xF8: {"SED", modeImplied, 1, 2, false, iSED},
	0xF9: {"SBC", modeAbsoluteY, 3, 4, true, iSBC},
	0xFD: {"SBC", modeAbsoluteX, 3, 4, true, iSBC},
	0xFE: {"INC", modeAbsoluteX, 3, 7, false, iINC},
}

// init fills every slot the documented table above left at its zero value
// with the invalid-opcode sentinel.
func init() {
	for i := range opcodeTable {
		if opcodeTable[i].handler == nil {
			opcodeTable[i] = opcodeEntry{mnemonic: "???", mode: modeInvalid, length: 0, cycles: 0, handler: iNOP}
		}
	}
}
