package cpu

// AddrMode is the public mirror of addrMode, exported so other packages
// (disassemble, a future debugger) can interpret Decode's result without
// reaching into the CPU engine's internals.
type AddrMode int

const (
	ModeImplied AddrMode = iota
	ModeAccumulator
	ModeImmediate
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirect
	ModeIndirectX
	ModeIndirectY
	ModeRelative
	ModeInvalid
)

// Decode returns the static shape of the instruction encoded by op: its
// mnemonic, addressing mode, and total length in bytes (0 for the
// undocumented sentinel). It does not touch any Chip state, so it is safe
// to call against raw ROM bytes for disassembly purposes.
func Decode(op uint8) (mnemonic string, mode AddrMode, length uint8) {
	e := opcodeTable[op]
	return e.mnemonic, AddrMode(e.mode), e.length
}
