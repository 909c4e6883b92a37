// Package cartridge implements a minimal iNES ROM loader backing the two
// 16KiB PRG-ROM banks of the address map. Only mapper 0 (NROM) is
// supported: real cartridge-mapper logic is explicitly out of scope for
// the CPU core, but the core still needs real PRG content to read from
// 0x8000-0xFFFF in order to be testable end to end, so a single
// always-present linear mapper is in scope.
package cartridge

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fjmcde/rp2a03/memmap"
)

const (
	headerSize  = 16
	magic0      = 'N'
	magic1      = 'E'
	magic2      = 'S'
	magic3      = 0x1A
	prgBankSize = int(memmap.PRGBankSize)
	chrBankSize = 8192
)

// UnsupportedMapper is returned by Load when the ROM's header declares a
// mapper number other than 0. Cartridge-mapper logic is out of scope, so
// this is a construction-time rejection rather than a partially-working load.
type UnsupportedMapper struct {
	Mapper uint8
}

func (e UnsupportedMapper) Error() string {
	return fmt.Sprintf("cartridge: unsupported mapper %d (only mapper 0/NROM is implemented)", e.Mapper)
}

// InvalidHeader is returned when the iNES magic number or declared sizes
// don't describe a well-formed ROM image.
type InvalidHeader struct {
	Reason string
}

func (e InvalidHeader) Error() string {
	return fmt.Sprintf("cartridge: invalid iNES header: %s", e.Reason)
}

// Cartridge holds the decoded PRG/CHR content of an NROM image.
type Cartridge struct {
	Mapper  uint8
	PRGRAM  bool
	prg     []uint8 // 16KiB or 32KiB
	chr     []uint8 // 0 (uses CHR RAM) or 8KiB multiples
	mirrorV bool
}

// Load parses an iNES-format ROM image from r.
func Load(r io.Reader) (*Cartridge, error) {
	br := bufio.NewReader(r)
	hdr := make([]uint8, headerSize)
	if _, err := io.ReadFull(br, hdr); err != nil {
		return nil, InvalidHeader{fmt.Sprintf("short header read: %v", err)}
	}
	if hdr[0] != magic0 || hdr[1] != magic1 || hdr[2] != magic2 || hdr[3] != magic3 {
		return nil, InvalidHeader{"missing 'NES\\x1A' magic"}
	}
	prgBanks := int(hdr[4])
	chrBanks := int(hdr[5])
	flags6 := hdr[6]
	flags7 := hdr[7]
	if prgBanks == 0 {
		return nil, InvalidHeader{"PRG bank count is 0"}
	}

	mapper := (flags6 >> 4) | (flags7 & 0xF0)
	if mapper != 0 {
		return nil, UnsupportedMapper{mapper}
	}

	// A 512-byte trainer may precede PRG data; skip it if flagged.
	if flags6&0x04 != 0 {
		if _, err := io.CopyN(io.Discard, br, 512); err != nil {
			return nil, InvalidHeader{fmt.Sprintf("short trainer read: %v", err)}
		}
	}

	prg := make([]uint8, prgBanks*prgBankSize)
	if _, err := io.ReadFull(br, prg); err != nil {
		return nil, InvalidHeader{fmt.Sprintf("short PRG read: %v", err)}
	}

	var chr []uint8
	if chrBanks > 0 {
		chr = make([]uint8, chrBanks*chrBankSize)
		if _, err := io.ReadFull(br, chr); err != nil {
			return nil, InvalidHeader{fmt.Sprintf("short CHR read: %v", err)}
		}
	}

	return &Cartridge{
		Mapper:  mapper,
		PRGRAM:  flags6&0x02 != 0,
		prg:     prg,
		chr:     chr,
		mirrorV: flags6&0x01 != 0,
	}, nil
}

// NewRaw wraps a raw byte slice as PRG-ROM content without any iNES
// header, for test fixtures that want to hand-place bytes at fixed
// addresses. The slice is mirrored across the 32KiB PRG-ROM window,
// exactly as a 16KiB NROM cartridge mirrors its single bank.
func NewRaw(prg []uint8) *Cartridge {
	return &Cartridge{prg: prg}
}

// MirrorVertical reports the nametable mirroring mode declared by the
// header. Exposed for a future PPU implementation; unused by the CPU core.
func (c *Cartridge) MirrorVertical() bool {
	return c.mirrorV
}

// ReadPRG returns the byte at addr within the 0x8000-0xFFFF PRG-ROM
// window. A 16KiB cartridge mirrors its single bank into both the lower
// and upper halves, matching real NROM wiring.
func (c *Cartridge) ReadPRG(addr uint16) uint8 {
	if len(c.prg) == 0 {
		return 0
	}
	off := int(addr - memmap.PRGROMLowerBase)
	return c.prg[off%len(c.prg)]
}

// WritePRG is a no-op: PRG-ROM is read-only on an NROM cartridge.
func (c *Cartridge) WritePRG(addr uint16, val uint8) {}

// ReadCHR returns the byte at addr within the pattern-table address space.
// Returns 0 if the cartridge has no CHR-ROM (CHR-RAM case is out of scope
// since it belongs to the PPU, not the CPU core).
func (c *Cartridge) ReadCHR(addr uint16) uint8 {
	if len(c.chr) == 0 {
		return 0
	}
	return c.chr[int(addr)%len(c.chr)]
}
