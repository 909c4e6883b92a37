// Package apu is a stub register bank for the audio processing unit and
// the remaining general I/O registers that share its address window
// (0x4000-0x401F). Synthesis is out of scope for the CPU core; this
// package exists only so the bus has a real collaborator for that range.
package apu

import "github.com/fjmcde/rp2a03/memmap"

// Registers is the bus-facing contract for the APU/IO register bank.
type Registers interface {
	// ReadRegister returns the value of register n (0-0x1F).
	ReadRegister(n uint8) uint8
	// WriteRegister updates register n (0-0x1F) with val.
	WriteRegister(n uint8, val uint8)
	// PowerOn resets all registers to their power-on state.
	PowerOn()
}

// Stub is a minimal Registers implementation with no synthesis, DMA, or
// frame-counter side effects.
type Stub struct {
	reg [memmap.APURegisterSize]uint8
}

var _ Registers = (*Stub)(nil)

// NewStub returns a power-on Stub.
func NewStub() *Stub {
	s := &Stub{}
	s.PowerOn()
	return s
}

// ReadRegister implements Registers.
func (s *Stub) ReadRegister(n uint8) uint8 {
	if int(n) >= len(s.reg) {
		return 0
	}
	return s.reg[n]
}

// WriteRegister implements Registers.
func (s *Stub) WriteRegister(n uint8, val uint8) {
	if int(n) >= len(s.reg) {
		return
	}
	s.reg[n] = val
}

// PowerOn implements Registers, zeroing all registers.
func (s *Stub) PowerOn() {
	for i := range s.reg {
		s.reg[i] = 0
	}
}
