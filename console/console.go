// Package console wires the CPU, bus, and PPU/APU stubs into a single
// top-level system: a thin composition root driven by an external loop
// rather than one that owns its own.
package console

import (
	"io"
	"log"

	"github.com/fjmcde/rp2a03/apu"
	"github.com/fjmcde/rp2a03/bus"
	"github.com/fjmcde/rp2a03/cartridge"
	"github.com/fjmcde/rp2a03/cpu"
	"github.com/fjmcde/rp2a03/irq"
	"github.com/fjmcde/rp2a03/memory"
	"github.com/fjmcde/rp2a03/ppu"
)

// Def configures a NES instance. Cart may be nil (an empty machine with no
// program, useful for CPU-only tests); PPU/APU default to their stub
// implementations when nil.
type Def struct {
	Cart *cartridge.Cartridge
	PPU  ppu.Registers
	APU  apu.Registers
}

// NES is the top-level console: one CPU driven over one Bus, with the
// PPU/APU register banks reachable but not internally simulated.
type NES struct {
	CPU *cpu.Chip
	Bus *bus.Bus
	NMI *irq.EdgeLatch
	IRQ *irq.Level
}

// New constructs a powered-on NES from def.
func New(def Def) (*NES, error) {
	p := def.PPU
	if p == nil {
		p = ppu.NewStub()
	}
	a := def.APU
	if a == nil {
		a = apu.NewStub()
	}

	b := bus.New(bus.Def{
		Mem:  memory.NewMap(),
		PPU:  p,
		APU:  a,
		Cart: def.Cart,
	})
	b.PowerOn()

	nmi := &irq.EdgeLatch{}
	lvl := &irq.Level{}

	c, err := cpu.Init(&cpu.ChipDef{
		Cpu: cpu.CPU_NMOS_RICOH,
		Ram: b,
		Nmi: nmi,
		Irq: lvl,
	})
	if err != nil {
		return nil, err
	}

	log.Printf("console: powered on, PC=%.4X", c.PC)
	return &NES{CPU: c, Bus: b, NMI: nmi, IRQ: lvl}, nil
}

// Load reads an iNES image from r and returns the decoded cartridge. It
// does not change the cartridge of any existing NES.
func Load(r io.Reader) (*cartridge.Cartridge, error) {
	return cartridge.Load(r)
}

// Step runs one CPU instruction and returns the cycle count it consumed.
// The PPU/APU stubs are not ticked or notified.
func (n *NES) Step() (uint8, error) {
	cycles, err := n.CPU.Step()
	if err != nil {
		return cycles, err
	}
	return cycles, nil
}

// Reset applies the documented reset sequence to the CPU.
func (n *NES) Reset() {
	n.CPU.Reset()
}

// RaiseNMI latches a pending NMI for the next Step.
func (n *NES) RaiseNMI() {
	n.NMI.Trigger()
}

// SetIRQ asserts or deasserts the level-triggered IRQ line.
func (n *NES) SetIRQ(asserted bool) {
	n.IRQ.Set(asserted)
}
