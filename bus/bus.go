// Package bus implements the single read/write gateway the CPU uses to
// reach memory and the external collaborators (PPU registers, APU/IO
// registers, cartridge). No CPU path may access memory directly; all
// access flows through Bus.Read/Bus.Write.
package bus

import (
	"github.com/fjmcde/rp2a03/apu"
	"github.com/fjmcde/rp2a03/cartridge"
	"github.com/fjmcde/rp2a03/memmap"
	"github.com/fjmcde/rp2a03/memory"
	"github.com/fjmcde/rp2a03/ppu"
)

// Def wires together the collaborators a Bus routes to. Mem is required;
// PPU, APU, and Cart may be nil, in which case that address window reads
// as open-bus zero and drops writes - a missing collaborator is a
// construction-time choice, not a runtime fault.
type Def struct {
	Mem  *memory.Map
	PPU  ppu.Registers
	APU  apu.Registers
	Cart *cartridge.Cartridge
}

// Bus is the sole conduit between the CPU and memory.
type Bus struct {
	mem  *memory.Map
	ppu  ppu.Registers
	apu  apu.Registers
	cart *cartridge.Cartridge
}

var _ memory.Ram = (*Bus)(nil)

// New constructs a Bus from def. A nil Mem is replaced with a fresh,
// power-on memory.Map so callers always get a usable bus.
func New(def Def) *Bus {
	mem := def.Mem
	if mem == nil {
		mem = memory.NewMap()
	}
	return &Bus{mem: mem, ppu: def.PPU, apu: def.APU, cart: def.Cart}
}

// Read returns the byte visible at addr after applying mirroring. Never
// fails; unmapped regions return 0.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= memmap.RAMMirrorEnd:
		return b.mem.Read(addr)
	case addr <= memmap.PPUMirrorEnd:
		if b.ppu == nil {
			return 0
		}
		return b.ppu.ReadRegister(uint8((addr - memmap.PPURegisterBase) % memmap.PPURegisterSize))
	case addr >= memmap.APURegisterBase && addr < memmap.APURegisterBase+memmap.APURegisterSize:
		if b.apu == nil {
			return 0
		}
		return b.apu.ReadRegister(uint8(addr - memmap.APURegisterBase))
	case addr >= memmap.PRGROMLowerBase:
		if b.cart == nil {
			return 0
		}
		return b.cart.ReadPRG(addr)
	default:
		// Expansion ROM / save RAM window.
		return b.mem.Read(addr)
	}
}

// Write updates the byte at addr. Writes to ROM regions (PRG-ROM and
// expansion ROM) are silently ignored, matching real hardware, which
// decodes but does not store. Every write in the PPU/APU register windows
// is passed on to that collaborator: the bus does not single out
// read-only register addresses, and the ppu/apu stubs store every write.
// From the CPU's point of view the write is synchronous and non-faulting.
func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr <= memmap.RAMMirrorEnd:
		b.mem.Write(addr, val)
	case addr <= memmap.PPUMirrorEnd:
		if b.ppu == nil {
			return
		}
		b.ppu.WriteRegister(uint8((addr-memmap.PPURegisterBase)%memmap.PPURegisterSize), val)
	case addr >= memmap.APURegisterBase && addr < memmap.APURegisterBase+memmap.APURegisterSize:
		if b.apu == nil {
			return
		}
		b.apu.WriteRegister(uint8(addr-memmap.APURegisterBase), val)
	case addr >= memmap.PRGROMLowerBase:
		if b.cart == nil {
			return
		}
		b.cart.WritePRG(addr, val)
	default:
		b.mem.Write(addr, val)
	}
}

// PowerOn resets all owned/collaborating storage to its power-on state.
// The cartridge is not reset since its content is fixed at load time.
func (b *Bus) PowerOn() {
	b.mem.PowerOn()
	if b.ppu != nil {
		b.ppu.PowerOn()
	}
	if b.apu != nil {
		b.apu.PowerOn()
	}
}

// Mem exposes the backing memory.Map directly, for hosts that need direct
// RAM access (e.g. a debugger dumping zero page).
func (b *Bus) Mem() *memory.Map {
	return b.mem
}
