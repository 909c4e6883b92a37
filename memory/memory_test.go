package memory

import (
	"testing"

	"github.com/fjmcde/rp2a03/memmap"
)

func TestBankRejectsNonPositiveSize(t *testing.T) {
	if _, err := NewBank(0, true); err == nil {
		t.Error("NewBank(0, ...): got nil error, want an error")
	}
	if _, err := NewBank(-1, true); err == nil {
		t.Error("NewBank(-1, ...): got nil error, want an error")
	}
}

func TestBankReadWriteMasking(t *testing.T) {
	b, err := NewBank(16, true)
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}
	b.Write(0, 0x42)
	if got := b.Read(16); got != 0x42 {
		t.Errorf("Read(16) = %.2X, want 0x42 (wraps to offset 0)", got)
	}
}

func TestBankReadOnlyDropsWrites(t *testing.T) {
	b, err := NewBank(4, false)
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}
	b.Load([]uint8{1, 2, 3, 4})
	b.Write(0, 0xFF)
	if got := b.Read(0); got != 1 {
		t.Errorf("Read(0) = %.2X, want 1 (write to read-only bank should be dropped)", got)
	}
}

func TestBankLoadTruncatesAndZeroPads(t *testing.T) {
	b, err := NewBank(4, true)
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}
	b.Load([]uint8{9, 9})
	if b.Read(0) != 9 || b.Read(1) != 9 || b.Read(2) != 0 || b.Read(3) != 0 {
		t.Errorf("Load did not zero-pad short data: %.2X %.2X %.2X %.2X", b.Read(0), b.Read(1), b.Read(2), b.Read(3))
	}
}

func TestMapRAMMirroring(t *testing.T) {
	m := NewMap()
	m.Write(0x0000, 0x7E)
	for _, mirror := range []uint16{0x0800, 0x1000, 0x1800} {
		if got := m.Read(mirror); got != 0x7E {
			t.Errorf("Read(%.4X) = %.2X, want 0x7E (RAM mirror)", mirror, got)
		}
	}
}

func TestMapSaveRAMWindow(t *testing.T) {
	m := NewMap()
	m.Write(memmap.SaveRAMBase, 0x11)
	if got := m.Read(memmap.SaveRAMBase); got != 0x11 {
		t.Errorf("Read(SaveRAMBase) = %.2X, want 0x11", got)
	}
	if got := m.SaveRAM().Read(0); got != 0x11 {
		t.Errorf("SaveRAM().Read(0) = %.2X, want 0x11 (same backing store)", got)
	}
}

func TestMapUnmappedReadsZero(t *testing.T) {
	m := NewMap()
	if got := m.Read(0x2000); got != 0 {
		t.Errorf("Read(0x2000) = %.2X, want 0 (PPU window not handled by Map)", got)
	}
}
