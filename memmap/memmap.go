// Package memmap defines the named base addresses for the 2A03's segmented
// 16-bit address space. It holds no behavior; it exists purely so other
// packages (memory, bus, cpu) can refer to regions by name instead of by
// magic constant.
package memmap

// Base addresses for each of the eight memory regions described by the
// console's memory map. Sizes are documented alongside each constant;
// mirroring rules live in the memory and bus packages, not here.
const (
	// ZeroPageBase starts the first 256 bytes of RAM (0x0000-0x00FF).
	ZeroPageBase = uint16(0x0000)
	// StackPageBase starts the second 256 bytes of RAM (0x0100-0x01FF),
	// addressed by the CPU's stack pointer as 0x0100|SP.
	StackPageBase = uint16(0x0100)
	// RAMBase starts the remainder of general-purpose RAM (0x0200-0x07FF).
	RAMBase = uint16(0x0200)
	// RAMSize is the total size of the unmirrored RAM region.
	RAMSize = 0x0800
	// RAMMirrorBase starts the mirrored view of the 2KiB RAM region,
	// repeating every RAMSize bytes through 0x1FFF.
	RAMMirrorBase = uint16(0x0800)
	// RAMMirrorEnd is the last address covered by the RAM mirror.
	RAMMirrorEnd = uint16(0x1FFF)

	// PPURegisterBase starts the PPU's 8-byte register window (0x2000-0x2007).
	PPURegisterBase = uint16(0x2000)
	// PPURegisterSize is the number of distinct PPU registers.
	PPURegisterSize = 0x0008
	// PPUMirrorEnd is the last address covered by the PPU register mirror,
	// which repeats every PPURegisterSize bytes through 0x3FFF.
	PPUMirrorEnd = uint16(0x3FFF)

	// APURegisterBase starts the APU/IO register bank (0x4000-0x401F). Unmirrored.
	APURegisterBase = uint16(0x4000)
	// APURegisterSize is the size of the APU/IO register bank.
	APURegisterSize = 0x0020

	// ExpansionROMBase starts cartridge-defined expansion ROM (0x4020-0x5FFF).
	ExpansionROMBase = uint16(0x4020)
	// ExpansionROMSize is the size of the expansion ROM window.
	ExpansionROMSize = 0x5FFF - 0x4020 + 1

	// SaveRAMBase starts cartridge-defined, potentially battery-backed save
	// RAM (0x6000-0x7FFF).
	SaveRAMBase = uint16(0x6000)
	// SaveRAMSize is the size of the save RAM window.
	SaveRAMSize = 0x2000

	// PRGROMLowerBase starts the lower 16KiB program ROM bank (0x8000-0xBFFF).
	PRGROMLowerBase = uint16(0x8000)
	// PRGROMUpperBase starts the upper 16KiB program ROM bank (0xC000-0xFFFF).
	PRGROMUpperBase = uint16(0xC000)
	// PRGBankSize is the size of a single program ROM bank.
	PRGBankSize = 0x4000

	// NMIVector is the address of the 16-bit little-endian NMI handler pointer.
	NMIVector = uint16(0xFFFA)
	// ResetVector is the address of the 16-bit little-endian reset handler pointer.
	ResetVector = uint16(0xFFFC)
	// IRQVector is the address of the 16-bit little-endian IRQ/BRK handler pointer.
	IRQVector = uint16(0xFFFE)
)
