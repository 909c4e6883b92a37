// Package ppu is a stub register bank for the picture processing unit.
// Rendering, sprite evaluation, and palette behavior are out of scope for
// the CPU core; this package exists only so the bus has a real
// collaborator to route the 0x2000-0x2007 register window to.
package ppu

import "github.com/fjmcde/rp2a03/memmap"

// Registers is the bus-facing contract for the PPU's 8-register window.
// A real PPU implementation (out of scope here) would satisfy the same
// interface while additionally driving a frame buffer off the side.
type Registers interface {
	// ReadRegister returns the value of register n (0-7).
	ReadRegister(n uint8) uint8
	// WriteRegister updates register n (0-7) with val.
	WriteRegister(n uint8, val uint8)
	// PowerOn resets all registers to their power-on state.
	PowerOn()
}

// Stub is a minimal Registers implementation: each register is a plain
// byte cell with no side effects (no OAM DMA trigger, no VBlank flag
// clear-on-read, etc). It exists purely so bus.Bus has something to read
// real, mirrored values from.
type Stub struct {
	reg [memmap.PPURegisterSize]uint8
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
	return s.reg[n%memmap.PPURegisterSize]
}

// WriteRegister implements Registers.
func (s *Stub) WriteRegister(n uint8, val uint8) {
	s.reg[n%memmap.PPURegisterSize] = val
}

// PowerOn implements Registers, zeroing all registers.
func (s *Stub) PowerOn() {
	for i := range s.reg {
		s.reg[i] = 0
	}
}
