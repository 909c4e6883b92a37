// Package memory implements the concrete backing storage for the 2A03's
// address space: RAM with its mirrored views, and the general-purpose
// banked storage (save RAM, expansion ROM) that sits between the I/O
// register banks and program ROM. PRG-ROM itself is owned by the
// cartridge package; the bus routes directly to it.
package memory

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/fjmcde/rp2a03/memmap"
)

// Ram is the interface the cpu package depends on for fetch/decode/address/
// execute. Any backing store the bus presents to the CPU (normally a Bus
// itself, or a flat test double) must satisfy this.
type Ram interface {
	// Read returns the data byte stored at addr. Never fails; unmapped
	// regions read back as open-bus zero.
	Read(addr uint16) uint8
	// Write updates addr with the new value. Writes to read-only regions
	// are silently dropped.
	Write(addr uint16, val uint8)
	// PowerOn resets backing storage to its power-on state.
	PowerOn()
}

// Bank is a single fixed-size byte-addressed storage region. It implements
// Ram directly for the case where a region is used standalone (e.g. in
// tests), and is also the building block the Map type composes.
type Bank struct {
	data     []uint8
	writable bool
}

// NewBank allocates a Bank of the given size. If writable is false, Write
// is a silent no-op (models ROM).
func NewBank(size int, writable bool) (*Bank, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid bank size: %d must be positive", size)
	}
	return &Bank{data: make([]uint8, size), writable: writable}, nil
}

// Read implements Ram, masking addr to the bank's size.
func (b *Bank) Read(addr uint16) uint8 {
	return b.data[int(addr)%len(b.data)]
}

// Write implements Ram. No-op if the bank is not writable.
func (b *Bank) Write(addr uint16, val uint8) {
	if !b.writable {
		return
	}
	b.data[int(addr)%len(b.data)] = val
}

// PowerOn implements Ram by randomizing contents if writable, matching
// real SRAM/DRAM power-on state; ROM-backed banks are left untouched since
// PowerOn is not how cartridge content gets loaded (see cartridge.Load).
func (b *Bank) PowerOn() {
	if !b.writable {
		return
	}
	for i := range b.data {
		b.data[i] = uint8(rand.Intn(256))
	}
}

// Load copies data into the bank starting at offset 0, for use by the
// cartridge loader to install ROM content. Truncates or zero-pads to fit.
func (b *Bank) Load(data []uint8) {
	n := copy(b.data, data)
	for i := n; i < len(b.data); i++ {
		b.data[i] = 0
	}
}

// Map is the concrete storage for every region the CPU can see that is not
// delegated to an external collaborator (PPU/APU registers live outside
// Map; see the bus package). It implements the mirroring rule for the
// 2KiB RAM window.
type Map struct {
	ram          [memmap.RAMSize]uint8
	saveRAM      *Bank
	expansionROM *Bank
}

var (
	_ Ram = (*Map)(nil)
)

// NewMap allocates a fully zeroed Map with save RAM and expansion ROM
// backing stores sized per the console's memory map.
func NewMap() *Map {
	save, err := NewBank(int(memmap.SaveRAMSize), true)
	if err != nil {
		// NewBank only fails for a non-positive size, which the constant
		// above never is; a mismatch here is a construction-time bug.
		panic(err)
	}
	exp, err := NewBank(int(memmap.ExpansionROMSize), false)
	if err != nil {
		panic(err)
	}
	return &Map{saveRAM: save, expansionROM: exp}
}

// Read returns the byte visible at addr within Map's regions (RAM mirror,
// save RAM, expansion ROM). Addresses outside those windows return 0; the
// bus is responsible for routing PPU/APU/PRG-ROM ranges elsewhere before
// ever calling Map.Read.
func (m *Map) Read(addr uint16) uint8 {
	switch {
	case addr <= memmap.RAMMirrorEnd:
		return m.ram[addr&(memmap.RAMSize-1)]
	case addr >= memmap.SaveRAMBase && addr < memmap.SaveRAMBase+memmap.SaveRAMSize:
		return m.saveRAM.Read(addr - memmap.SaveRAMBase)
	case addr >= memmap.ExpansionROMBase && addr < memmap.SaveRAMBase:
		return m.expansionROM.Read(addr - memmap.ExpansionROMBase)
	}
	return 0
}

// Write updates the byte at addr within Map's regions. Addresses outside
// those windows are silently ignored.
func (m *Map) Write(addr uint16, val uint8) {
	switch {
	case addr <= memmap.RAMMirrorEnd:
		m.ram[addr&(memmap.RAMSize-1)] = val
	case addr >= memmap.SaveRAMBase && addr < memmap.SaveRAMBase+memmap.SaveRAMSize:
		m.saveRAM.Write(addr-memmap.SaveRAMBase, val)
	case addr >= memmap.ExpansionROMBase && addr < memmap.SaveRAMBase:
		m.expansionROM.Write(addr-memmap.ExpansionROMBase, val)
	}
}

// PowerOn randomizes RAM and save RAM, matching real hardware's undefined
// power-on state, and leaves expansion ROM as allocated (zeroed) since
// nothing has loaded cartridge content into it yet.
func (m *Map) PowerOn() {
	rand.Seed(time.Now().UnixNano())
	for i := range m.ram {
		m.ram[i] = uint8(rand.Intn(256))
	}
	m.saveRAM.PowerOn()
}

// SaveRAM exposes the battery-backed save RAM bank directly, for a host
// that wants to persist/restore it between sessions.
func (m *Map) SaveRAM() *Bank {
	return m.saveRAM
}
