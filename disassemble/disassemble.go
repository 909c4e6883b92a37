// Package disassemble renders the instruction at a given address as a
// human-readable trace line, without interpreting it - a JMP target is
// never followed, so a sequence of bytes that happens to look like
// LDA/JMP/LDA disassembles as exactly that sequence.
package disassemble

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/fjmcde/rp2a03/cpu"
	"github.com/fjmcde/rp2a03/memory"
)

var (
	mnemonicStyle = lipgloss.NewStyle().Bold(true)
	addrStyle     = lipgloss.NewStyle().Faint(true)
)

// Step disassembles the instruction at pc and returns its rendered form
// plus the number of bytes it occupies (0 for the undocumented sentinel).
// This always reads up to 2 bytes past pc, whether or not the instruction
// is that long, so callers must ensure those addresses are valid to read.
func Step(pc uint16, r memory.Ram) (string, int) {
	o := r.Read(pc)
	pc1 := r.Read(pc + 1)
	pc2 := r.Read(pc + 2)

	mnemonic, mode, length := cpu.Decode(o)
	if length == 0 {
		return fmt.Sprintf("%.4X %.2X      %s", pc, o, mnemonicStyle.Render("???")), 0
	}

	addr := addrStyle.Render(fmt.Sprintf("%.4X", pc))
	name := mnemonicStyle.Render(mnemonic)

	var operand string
	switch mode {
	case cpu.ModeImmediate:
		operand = fmt.Sprintf("#%.2X", pc1)
	case cpu.ModeZeroPage:
		operand = fmt.Sprintf("%.2X", pc1)
	case cpu.ModeZeroPageX:
		operand = fmt.Sprintf("%.2X,X", pc1)
	case cpu.ModeZeroPageY:
		operand = fmt.Sprintf("%.2X,Y", pc1)
	case cpu.ModeIndirectX:
		operand = fmt.Sprintf("(%.2X,X)", pc1)
	case cpu.ModeIndirectY:
		operand = fmt.Sprintf("(%.2X),Y", pc1)
	case cpu.ModeAbsolute:
		operand = fmt.Sprintf("%.2X%.2X", pc2, pc1)
	case cpu.ModeAbsoluteX:
		operand = fmt.Sprintf("%.2X%.2X,X", pc2, pc1)
	case cpu.ModeAbsoluteY:
		operand = fmt.Sprintf("%.2X%.2X,Y", pc2, pc1)
	case cpu.ModeIndirect:
		operand = fmt.Sprintf("(%.2X%.2X)", pc2, pc1)
	case cpu.ModeAccumulator:
		operand = "A"
	case cpu.ModeRelative:
		target := pc + 2 + uint16(int16(int8(pc1)))
		operand = fmt.Sprintf("%.2X (%.4X)", pc1, target)
	case cpu.ModeImplied:
		operand = ""
	}

	raw := fmt.Sprintf("%.2X", o)
	for i := uint8(1); i < length; i++ {
		b := pc1
		if i == 2 {
			b = pc2
		}
		raw += fmt.Sprintf(" %.2X", b)
	}

	return fmt.Sprintf("%s %-8s %s %s", addr, raw, name, operand), int(length)
}

// FormatTrace renders the instruction at pc the same way Step does,
// returning only the styled line - for callers that don't need the byte
// count back. cmd/disasm calls Step, not FormatTrace.
func FormatTrace(pc uint16, r memory.Ram) string {
	line, _ := Step(pc, r)
	return line
}
