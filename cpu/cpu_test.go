package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"

	"github.com/fjmcde/rp2a03/irq"
)

// flatMemory is a 64KiB RAM double satisfying memory.Ram, used so tests
// can place vectors and programs at any address without routing through
// the bus's mirroring/decode logic.
type flatMemory struct {
	addr [65536]uint8
}

func (r *flatMemory) Read(addr uint16) uint8     { return r.addr[addr] }
func (r *flatMemory) Write(addr uint16, v uint8) { r.addr[addr] = v }
func (r *flatMemory) PowerOn()                   {}

func (r *flatMemory) setVector(vector, target uint16) {
	r.addr[vector] = uint8(target & 0xFF)
	r.addr[vector+1] = uint8(target >> 8)
}

func setup(t *testing.T) (*Chip, *flatMemory) {
	t.Helper()
	r := &flatMemory{}
	r.setVector(RESET_VECTOR, 0x8000)
	r.setVector(NMI_VECTOR, 0x9000)
	r.setVector(IRQ_VECTOR, 0xA000)
	c, err := Init(&ChipDef{Cpu: CPU_NMOS_RICOH, Ram: r})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	return c, r
}

func TestInitRejectsBadDef(t *testing.T) {
	if _, err := Init(&ChipDef{Cpu: CPU_UNIMPLEMENTED, Ram: &flatMemory{}}); err == nil {
		t.Error("Init with CPU_UNIMPLEMENTED: got nil error, want InvalidCPUState")
	}
	if _, err := Init(&ChipDef{Cpu: CPU_NMOS_RICOH, Ram: nil}); err == nil {
		t.Error("Init with nil Ram: got nil error, want InvalidCPUState")
	}
}

func TestPowerOnState(t *testing.T) {
	c, _ := setup(t)
	want := &Chip{A: 0, X: 0, Y: 0, S: 0xFD, P: P_INTERRUPT | P_S1, PC: 0x8000, cpuType: CPU_NMOS_RICOH, ram: c.ram}
	if diff := deep.Equal(c, want); diff != nil {
		t.Errorf("PowerOn state mismatch: %v\ngot: %s", diff, spew.Sdump(c))
	}
}

func TestLDASetsFlags(t *testing.T) {
	tests := []struct {
		name    string
		val     uint8
		wantZ   bool
		wantN   bool
	}{
		{"zero", 0x00, true, false},
		{"positive", 0x42, false, false},
		{"negative", 0x80, false, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, r := setup(t)
			r.addr[0x8000] = 0xA9 // LDA #imm
			r.addr[0x8001] = tc.val
			if _, err := c.Step(); err != nil {
				t.Fatalf("Step: %v", err)
			}
			if c.A != tc.val {
				t.Errorf("A = %.2X, want %.2X", c.A, tc.val)
			}
			if got := c.P&P_ZERO != 0; got != tc.wantZ {
				t.Errorf("Z flag = %v, want %v", got, tc.wantZ)
			}
			if got := c.P&P_NEGATIVE != 0; got != tc.wantN {
				t.Errorf("N flag = %v, want %v", got, tc.wantN)
			}
		})
	}
}

func TestSTARoundTrip(t *testing.T) {
	c, r := setup(t)
	c.A = 0x55
	r.addr[0x8000] = 0x8D // STA abs
	r.addr[0x8001] = 0x00
	r.addr[0x8002] = 0x02
	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if r.addr[0x0200] != 0x55 {
		t.Errorf("mem[0x0200] = %.2X, want 0x55", r.addr[0x0200])
	}
	if cycles != 4 {
		t.Errorf("cycles = %d, want 4", cycles)
	}
}

func TestADCCarryAndOverflow(t *testing.T) {
	c, r := setup(t)
	c.A = 0x7F // +127
	c.P &^= P_CARRY
	r.addr[0x8000] = 0x69 // ADC #imm
	r.addr[0x8001] = 0x01
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.A != 0x80 {
		t.Errorf("A = %.2X, want 0x80", c.A)
	}
	if c.P&P_OVERFLOW == 0 {
		t.Error("V flag not set on signed overflow")
	}
	if c.P&P_NEGATIVE == 0 {
		t.Error("N flag not set for 0x80 result")
	}
	if c.P&P_CARRY != 0 {
		t.Error("C flag unexpectedly set")
	}
}

func TestSBCBorrow(t *testing.T) {
	c, r := setup(t)
	c.A = 0x00
	c.P |= P_CARRY // carry set means "no borrow" going in
	r.addr[0x8000] = 0xE9 // SBC #imm
	r.addr[0x8001] = 0x01
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.A != 0xFF {
		t.Errorf("A = %.2X, want 0xFF", c.A)
	}
	if c.P&P_CARRY != 0 {
		t.Error("C flag set, want clear (borrow occurred)")
	}
}

func TestBranchTakenPageCross(t *testing.T) {
	c, r := setup(t)
	c.PC = 0x80F0
	r.addr[0x80F0] = 0xF0 // BEQ rel
	r.addr[0x80F1] = 0x20 // +32 -> 0x8112, crosses from page 0x80 to 0x81
	c.P |= P_ZERO
	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != 0x8112 {
		t.Errorf("PC = %.4X, want 0x8112", c.PC)
	}
	if cycles != 4 { // base 2 + taken 1 + page-cross 1
		t.Errorf("cycles = %d, want 4", cycles)
	}
}

func TestBranchNotTaken(t *testing.T) {
	c, r := setup(t)
	r.addr[0x8000] = 0xF0 // BEQ rel
	r.addr[0x8001] = 0x10
	c.P &^= P_ZERO
	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != 0x8002 {
		t.Errorf("PC = %.4X, want 0x8002", c.PC)
	}
	if cycles != 2 {
		t.Errorf("cycles = %d, want 2", cycles)
	}
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c, r := setup(t)
	r.addr[0x8000] = 0x20 // JSR abs
	r.addr[0x8001] = 0x00
	r.addr[0x8002] = 0x90
	r.addr[0x9000] = 0x60 // RTS
	if _, err := c.Step(); err != nil {
		t.Fatalf("JSR Step: %v", err)
	}
	if c.PC != 0x9000 {
		t.Errorf("PC after JSR = %.4X, want 0x9000", c.PC)
	}
	if _, err := c.Step(); err != nil {
		t.Fatalf("RTS Step: %v", err)
	}
	if c.PC != 0x8003 {
		t.Errorf("PC after RTS = %.4X, want 0x8003", c.PC)
	}
}

func TestBRKAndRTI(t *testing.T) {
	c, r := setup(t)
	r.addr[0x8000] = 0x00 // BRK
	if _, err := c.Step(); err != nil {
		t.Fatalf("BRK Step: %v", err)
	}
	if c.PC != 0xA000 {
		t.Errorf("PC after BRK = %.4X, want IRQ vector 0xA000", c.PC)
	}
	if c.P&P_INTERRUPT == 0 {
		t.Error("I flag not set after BRK")
	}
	r.addr[0xA000] = 0x40 // RTI
	if _, err := c.Step(); err != nil {
		t.Fatalf("RTI Step: %v", err)
	}
	if c.PC != 0x8002 {
		t.Errorf("PC after RTI = %.4X, want 0x8002 (post-BRK padding byte skipped)", c.PC)
	}
}

func TestNMIServiced(t *testing.T) {
	c, _ := setup(t)
	nmi := &irq.EdgeLatch{}
	c.SetNMI(nmi)
	nmi.Trigger()
	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != 0x9000 {
		t.Errorf("PC = %.4X, want NMI vector 0x9000", c.PC)
	}
	if cycles != 7 {
		t.Errorf("cycles = %d, want 7", cycles)
	}
	if nmi.Raised() {
		t.Error("NMI still latched after being serviced")
	}
}

func TestIRQMaskedByI(t *testing.T) {
	c, r := setup(t)
	lvl := &irq.Level{}
	c.SetIRQ(lvl)
	lvl.Set(true)
	c.P |= P_INTERRUPT
	r.addr[0x8000] = 0xEA // NOP, proves IRQ was ignored
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != 0x8001 {
		t.Errorf("PC = %.4X, want 0x8001 (IRQ masked, NOP executed)", c.PC)
	}
}

func TestInvalidOpcodeIsZeroCostNoOp(t *testing.T) {
	c, r := setup(t)
	r.addr[0x8000] = 0x02 // undocumented on the real 6502
	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("Step returned error for invalid opcode: %v", err)
	}
	if cycles != 0 {
		t.Errorf("cycles = %d, want 0", cycles)
	}
	if c.PC != 0x8000 {
		t.Errorf("PC = %.4X, want unchanged 0x8000", c.PC)
	}
}

func TestJMPIndirectPageWrapBug(t *testing.T) {
	c, r := setup(t)
	r.addr[0x8000] = 0x6C // JMP (ind)
	r.addr[0x8001] = 0xFF
	r.addr[0x8002] = 0x02 // pointer = 0x02FF
	r.addr[0x02FF] = 0x34
	r.addr[0x0200] = 0x12 // high byte wrongly fetched from 0x0200, not 0x0300
	r.addr[0x0300] = 0xFF // if the bug were absent, this would be used instead
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != 0x1234 {
		t.Errorf("PC = %.4X, want 0x1234 (page-wrap bug reproduced)", c.PC)
	}
}
