package ppu

import "testing"

func TestRegisterMirroring(t *testing.T) {
	s := NewStub()
	s.WriteRegister(0, 0x3C)
	if got := s.ReadRegister(8); got != 0x3C {
		t.Errorf("ReadRegister(8) = %.2X, want 0x3C (8-register mirror)", got)
	}
}

func TestPowerOnZeroes(t *testing.T) {
	s := NewStub()
	s.WriteRegister(2, 0xFF)
	s.PowerOn()
	if got := s.ReadRegister(2); got != 0 {
		t.Errorf("ReadRegister(2) after PowerOn = %.2X, want 0", got)
	}
}
