// Package cpu defines the 2A03/6502 architecture and provides the methods
// needed to run the CPU and interface with it for emulation. The engine is
// instruction-accurate: Step executes one full instruction per call and
// returns the number of clock cycles it consumed, rather than simulating
// every bus tick in between.
package cpu

import (
	"fmt"

	"github.com/fjmcde/rp2a03/irq"
	"github.com/fjmcde/rp2a03/memory"
)

// CPUType is an enumeration of the valid CPU types this package can emulate.
type CPUType int

const (
	CPU_UNIMPLEMENTED CPUType = iota // Start of valid cpu enumerations.
	CPU_NMOS_RICOH                   // Ricoh 2A03: NMOS 6502 with BCD mode wired off, as used in the console this emulates.
	CPU_MAX                          // End of CPU enumerations.
)

const (
	NMI_VECTOR   = uint16(0xFFFA)
	RESET_VECTOR = uint16(0xFFFC)
	IRQ_VECTOR   = uint16(0xFFFE)

	P_NEGATIVE  = uint8(0x80)
	P_OVERFLOW  = uint8(0x40)
	P_S1        = uint8(0x20) // Always reads 1.
	P_B         = uint8(0x10) // Only set during BRK/PHP pushes. Cleared on hardware interrupt pushes.
	P_DECIMAL   = uint8(0x8)  // Mutated by CLD/SED but never consulted; BCD is wired off on this CPU.
	P_INTERRUPT = uint8(0x4)
	P_ZERO      = uint8(0x2)
	P_CARRY     = uint8(0x1)
)

// InvalidCPUState represents a construction-time or precondition violation
// in the emulator, never a runtime fault from executing a program -
// invalid opcodes are a documented no-op family, not an error.
type InvalidCPUState struct {
	Reason string
}

// Error implements the error interface.
func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// ChipDef defines a 2A03 CPU instance.
type ChipDef struct {
	// Cpu is the distinct cpu type for this implementation.
	Cpu CPUType
	// Ram is the bus/memory interface this CPU fetches and executes against.
	Ram memory.Ram
	// Irq is an optional IRQ source, sampled at the top of every Step.
	Irq irq.Sender
	// Nmi is an optional NMI source, sampled at the top of every Step.
	Nmi irq.Sender
}

// Chip holds the complete architectural state of one 2A03 CPU.
type Chip struct {
	A  uint8  // Accumulator register.
	X  uint8  // X index register.
	Y  uint8  // Y index register.
	S  uint8  // Stack pointer; physical stack address is 0x0100|S.
	P  uint8  // Status register.
	PC uint16 // Program counter.

	cpuType CPUType
	ram     memory.Ram
	irq     irq.Sender
	nmi     irq.Sender
}

// Init creates a new 2A03 CPU of the type requested and returns it after a
// power-on reset. Fails fast (construction-time error) if the CPU type or
// RAM collaborator is invalid - the running engine never faults once
// constructed.
func Init(def *ChipDef) (*Chip, error) {
	if def.Cpu <= CPU_UNIMPLEMENTED || def.Cpu >= CPU_MAX {
		return nil, InvalidCPUState{fmt.Sprintf("CPU type %d is invalid", def.Cpu)}
	}
	if def.Ram == nil {
		return nil, InvalidCPUState{"Ram collaborator must not be nil"}
	}
	c := &Chip{
		cpuType: def.Cpu,
		ram:     def.Ram,
		irq:     def.Irq,
		nmi:     def.Nmi,
	}
	c.PowerOn()
	return c, nil
}

// PowerOn resets the CPU to its documented power-on state: A, X, Y are
// zeroed, S is 0xFD, P has I=1 and U=1 with all other flags clear (0x24),
// and PC is loaded from the reset vector.
func (c *Chip) PowerOn() {
	c.A, c.X, c.Y = 0, 0, 0
	c.S = 0xFD
	c.P = P_INTERRUPT | P_S1
	c.PC = c.readVector(RESET_VECTOR)
}

// Reset loads PC from the reset vector and disables interrupts, matching
// PowerOn's interrupt-related effects without disturbing A/X/Y, and moves
// S down by 3 as if PC/P had been pushed (the real 6502's reset quirk:
// the pushes occur but writes are suppressed).
func (c *Chip) Reset() {
	c.S -= 3
	c.P |= P_INTERRUPT
	c.PC = c.readVector(RESET_VECTOR)
}

// SetNMI wires an edge-triggered NMI source directly, replacing the
// irq.Sender given in ChipDef.Nmi. It does not latch an NMI itself; one is
// pending once e.Trigger has been called.
func (c *Chip) SetNMI(e *irq.EdgeLatch) {
	c.nmi = e
}

// SetIRQ wires a level-triggered IRQ source directly.
func (c *Chip) SetIRQ(l *irq.Level) {
	c.irq = l
}

func (c *Chip) readVector(addr uint16) uint16 {
	lo := c.ram.Read(addr)
	hi := c.ram.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// zeroCheck sets the Z flag based on the register/result contents.
func (c *Chip) zeroCheck(v uint8) {
	c.P &^= P_ZERO
	if v == 0 {
		c.P |= P_ZERO
	}
}

// negativeCheck sets the N flag based on bit 7 of the register/result.
func (c *Chip) negativeCheck(v uint8) {
	c.P &^= P_NEGATIVE
	if v&P_NEGATIVE != 0 {
		c.P |= P_NEGATIVE
	}
}

// carryCheck sets the C flag if an 8 bit ALU operation (passed as a 16
// bit intermediate result) carried out, i.e. produced a value >= 0x100.
func (c *Chip) carryCheck(res uint16) {
	c.P &^= P_CARRY
	if res >= 0x100 {
		c.P |= P_CARRY
	}
}

// overflowCheck sets the V flag if the ALU operation caused a two's
// complement sign change. See http://www.righto.com/2012/12/the-6502-overflow-flag-explained.html
func (c *Chip) overflowCheck(reg, arg, res uint8) {
	c.P &^= P_OVERFLOW
	if (reg^res)&(arg^res)&0x80 != 0 {
		c.P |= P_OVERFLOW
	}
}

func (c *Chip) pushStack(val uint8) {
	c.ram.Write(0x0100+uint16(c.S), val)
	c.S--
}

func (c *Chip) popStack() uint8 {
	c.S++
	return c.ram.Read(0x0100 + uint16(c.S))
}

func (c *Chip) push16(v uint16) {
	c.pushStack(uint8(v >> 8))
	c.pushStack(uint8(v & 0xFF))
}

func (c *Chip) pop16() uint16 {
	lo := c.popStack()
	hi := c.popStack()
	return uint16(hi)<<8 | uint16(lo)
}

// Step executes one full instruction (servicing a pending interrupt
// instead, if one is asserted) and returns the number of clock cycles
// consumed: fetch, resolve the addressing mode, advance PC, run the
// handler, then total the cycle cost.
func (c *Chip) Step() (uint8, error) {
	if c.nmi != nil && c.nmi.Raised() {
		c.serviceInterrupt(NMI_VECTOR, false)
		return 7, nil
	}
	if c.irq != nil && c.irq.Raised() && c.P&P_INTERRUPT == 0 {
		c.serviceInterrupt(IRQ_VECTOR, false)
		return 7, nil
	}

	op := c.ram.Read(c.PC)
	entry := opcodeTable[op]

	res := c.resolve(entry.mode, c.PC+1)
	c.PC += uint16(entry.length)

	extra := entry.handler(c, res)

	cycles := entry.cycles
	if entry.readClass && res.pageCrossed {
		cycles++
	}
	cycles += extra
	return cycles, nil
}

// serviceInterrupt runs the shared NMI/IRQ/BRK sequence: push PC high/low,
// push P with B set when brk is true and cleared for a hardware interrupt,
// set I, load PC from the given vector. Always 7 cycles.
func (c *Chip) serviceInterrupt(vector uint16, brk bool) {
	c.push16(c.PC)
	push := c.P | P_S1
	if brk {
		push |= P_B
	} else {
		push &^= P_B
	}
	c.pushStack(push)
	c.P |= P_INTERRUPT
	c.PC = c.readVector(vector)
}
