package disassemble

import (
	"strings"
	"testing"
)

type flatMemory struct {
	addr [65536]uint8
}

func (r *flatMemory) Read(addr uint16) uint8     { return r.addr[addr] }
func (r *flatMemory) Write(addr uint16, v uint8) { r.addr[addr] = v }
func (r *flatMemory) PowerOn()                   {}

func TestStepImmediate(t *testing.T) {
	r := &flatMemory{}
	r.addr[0x8000] = 0xA9 // LDA #imm
	r.addr[0x8001] = 0x42
	line, n := Step(0x8000, r)
	if n != 2 {
		t.Errorf("n = %d, want 2", n)
	}
	if !strings.Contains(line, "LDA") || !strings.Contains(line, "#42") {
		t.Errorf("line = %q, want it to mention LDA #42", line)
	}
}

func TestStepInvalidOpcodeZeroLength(t *testing.T) {
	r := &flatMemory{}
	r.addr[0x8000] = 0x02 // undocumented
	_, n := Step(0x8000, r)
	if n != 0 {
		t.Errorf("n = %d, want 0 for an undocumented opcode", n)
	}
}

func TestStepRelativeComputesTarget(t *testing.T) {
	r := &flatMemory{}
	r.addr[0x8000] = 0xF0 // BEQ
	r.addr[0x8001] = 0x05
	line, n := Step(0x8000, r)
	if n != 2 {
		t.Errorf("n = %d, want 2", n)
	}
	if !strings.Contains(line, "8007") {
		t.Errorf("line = %q, want branch target 8007", line)
	}
}
