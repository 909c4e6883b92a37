package console

import (
	"bytes"
	"testing"

	"github.com/fjmcde/rp2a03/cartridge"
	"github.com/fjmcde/rp2a03/memmap"
)

func newTestROM(t *testing.T) *cartridge.Cartridge {
	t.Helper()
	hdr := []byte{'N', 'E', 'S', 0x1A, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	prg := make([]byte, memmap.PRGBankSize)
	prg[0] = 0xEA // NOP at reset vector target
	// Reset vector lives at 0xFFFC, which this single 16KiB bank serves
	// through its upper-half mirror: (0xFFFC - 0x8000) % 0x4000 = 0x3FFC.
	prg[0x3FFC] = 0x00
	prg[0x3FFD] = 0x80
	var buf bytes.Buffer
	buf.Write(hdr)
	buf.Write(prg)
	cart, err := cartridge.Load(&buf)
	if err != nil {
		t.Fatalf("cartridge.Load: %v", err)
	}
	return cart
}

func TestNewPowersOnAndResetsPC(t *testing.T) {
	n, err := New(Def{Cart: newTestROM(t)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if n.CPU.PC != 0x8000 {
		t.Errorf("PC = %.4X, want 0x8000", n.CPU.PC)
	}
}

func TestStepExecutesOneInstruction(t *testing.T) {
	n, err := New(Def{Cart: newTestROM(t)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cycles, err := n.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if cycles != 2 {
		t.Errorf("cycles = %d, want 2 (NOP)", cycles)
	}
	if n.CPU.PC != 0x8001 {
		t.Errorf("PC = %.4X, want 0x8001", n.CPU.PC)
	}
}

func TestRaiseNMIServicedOnNextStep(t *testing.T) {
	n, err := New(Def{Cart: newTestROM(t)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	n.RaiseNMI()
	cycles, err := n.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if cycles != 7 {
		t.Errorf("cycles = %d, want 7 (interrupt service)", cycles)
	}
}
