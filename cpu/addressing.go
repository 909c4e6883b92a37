package cpu

// addrMode tags one of the 13 documented 6502 addressing modes plus the
// sentinel used for undocumented opcodes.
type addrMode int

const (
	modeImplied     addrMode = iota // impli
	modeAccumulator                 // accum
	modeImmediate                   // immed
	modeZeroPage                    // zpage
	modeZeroPageX                   // xizpg
	modeZeroPageY                   // yizpg
	modeAbsolute                    // absol
	modeAbsoluteX                   // xiabs
	modeAbsoluteY                   // yiabs
	modeIndirect                    // absin
	modeIndirectX                   // xizpi
	modeIndirectY                   // yizpi
	modeRelative                    // relat
	modeInvalid                     // sentinel for undocumented opcodes
)

// operand is the effective operand resolved for an instruction: either a
// byte value (reads/immediates/accumulator), an effective address (loads,
// stores, read-modify-write, control transfer), or neither (implied).
// Read-class addressing modes populate value by reading through the bus so
// load/logic/arithmetic/compare handlers never need to re-derive it; store
// and read-modify-write handlers use addr instead.
type operand struct {
	value       uint8
	addr        uint16
	hasAddr     bool
	pageCrossed bool
}

// resolve computes the effective operand for mode, with the first operand
// byte (if any) at base (always c.PC+1 at call time, before PC has been
// advanced by the instruction's length).
func (c *Chip) resolve(mode addrMode, base uint16) operand {
	switch mode {
	case modeImplied, modeInvalid:
		return operand{}
	case modeAccumulator:
		return operand{value: c.A}
	case modeImmediate:
		return operand{value: c.ram.Read(base)}
	case modeZeroPage:
		addr := uint16(c.ram.Read(base))
		return operand{addr: addr, hasAddr: true, value: c.ram.Read(addr)}
	case modeZeroPageX:
		addr := uint16(c.ram.Read(base) + c.X)
		return operand{addr: addr, hasAddr: true, value: c.ram.Read(addr)}
	case modeZeroPageY:
		addr := uint16(c.ram.Read(base) + c.Y)
		return operand{addr: addr, hasAddr: true, value: c.ram.Read(addr)}
	case modeAbsolute:
		addr := c.readAbs(base)
		return operand{addr: addr, hasAddr: true, value: c.ram.Read(addr)}
	case modeAbsoluteX:
		return c.resolveIndexedAbsolute(base, c.X)
	case modeAbsoluteY:
		return c.resolveIndexedAbsolute(base, c.Y)
	case modeIndirect:
		// JMP (a): the classic page-wrap bug. The low byte comes from ptr,
		// the high byte from (ptr & 0xFF00)|((ptr+1) & 0x00FF) - i.e. the
		// high byte fetch never crosses into the next page.
		ptr := c.readAbs(base)
		lo := c.ram.Read(ptr)
		hi := c.ram.Read((ptr & 0xFF00) | ((ptr + 1) & 0x00FF))
		return operand{addr: uint16(hi)<<8 | uint16(lo), hasAddr: true}
	case modeIndirectX:
		zp := c.ram.Read(base) + c.X
		lo := c.ram.Read(uint16(zp))
		hi := c.ram.Read(uint16(zp + 1))
		addr := uint16(hi)<<8 | uint16(lo)
		return operand{addr: addr, hasAddr: true, value: c.ram.Read(addr)}
	case modeIndirectY:
		zp := c.ram.Read(base)
		lo := c.ram.Read(uint16(zp))
		hi := c.ram.Read(uint16(zp + 1))
		base16 := uint16(hi)<<8 | uint16(lo)
		addr := base16 + uint16(c.Y)
		crossed := (base16 & 0xFF00) != (addr & 0xFF00)
		return operand{addr: addr, hasAddr: true, value: c.ram.Read(addr), pageCrossed: crossed}
	case modeRelative:
		// The raw signed offset byte; the branch handler computes the
		// target once it knows PC has already advanced past this
		// instruction and whether the branch is taken.
		return operand{value: c.ram.Read(base)}
	}
	return operand{}
}

// readAbs reads a little-endian 16 bit word starting at addr.
func (c *Chip) readAbs(addr uint16) uint16 {
	lo := c.ram.Read(addr)
	hi := c.ram.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (c *Chip) resolveIndexedAbsolute(base uint16, reg uint8) operand {
	base16 := c.readAbs(base)
	addr := base16 + uint16(reg)
	crossed := (base16 & 0xFF00) != (addr & 0xFF00)
	return operand{addr: addr, hasAddr: true, value: c.ram.Read(addr), pageCrossed: crossed}
}
