package cpu

// handlerFunc implements one instruction's semantics given its resolved
// operand. It returns any cycle cost beyond the opcode table's base cycle
// count and the engine's automatic indexed-read page-crossing penalty -
// in practice this is only nonzero for taken branches.
type handlerFunc func(c *Chip, op operand) uint8

// writeResult stores res back to memory (RMW modes) or the accumulator
// (accumulator mode), matching whichever the resolved operand carries.
func (c *Chip) writeResult(op operand, res uint8) {
	if op.hasAddr {
		c.ram.Write(op.addr, res)
		return
	}
	c.A = res
}

// --- Load/store ---

func iLDA(c *Chip, op operand) uint8 {
	c.A = op.value
	c.zeroCheck(c.A)
	c.negativeCheck(c.A)
	return 0
}

func iLDX(c *Chip, op operand) uint8 {
	c.X = op.value
	c.zeroCheck(c.X)
	c.negativeCheck(c.X)
	return 0
}

func iLDY(c *Chip, op operand) uint8 {
	c.Y = op.value
	c.zeroCheck(c.Y)
	c.negativeCheck(c.Y)
	return 0
}

func iSTA(c *Chip, op operand) uint8 {
	c.ram.Write(op.addr, c.A)
	return 0
}

func iSTX(c *Chip, op operand) uint8 {
	c.ram.Write(op.addr, c.X)
	return 0
}

func iSTY(c *Chip, op operand) uint8 {
	c.ram.Write(op.addr, c.Y)
	return 0
}

// --- Transfer ---

func iTAX(c *Chip, op operand) uint8 {
	c.X = c.A
	c.zeroCheck(c.X)
	c.negativeCheck(c.X)
	return 0
}

func iTAY(c *Chip, op operand) uint8 {
	c.Y = c.A
	c.zeroCheck(c.Y)
	c.negativeCheck(c.Y)
	return 0
}

func iTSX(c *Chip, op operand) uint8 {
	c.X = c.S
	c.zeroCheck(c.X)
	c.negativeCheck(c.X)
	return 0
}

func iTXA(c *Chip, op operand) uint8 {
	c.A = c.X
	c.zeroCheck(c.A)
	c.negativeCheck(c.A)
	return 0
}

// iTXS does not touch flags, unlike every other transfer instruction.
func iTXS(c *Chip, op operand) uint8 {
	c.S = c.X
	return 0
}

func iTYA(c *Chip, op operand) uint8 {
	c.A = c.Y
	c.zeroCheck(c.A)
	c.negativeCheck(c.A)
	return 0
}

// --- Stack ---

func iPHA(c *Chip, op operand) uint8 {
	c.pushStack(c.A)
	return 0
}

// iPHP pushes P with B and U both forced to 1.
func iPHP(c *Chip, op operand) uint8 {
	c.pushStack(c.P | P_B | P_S1)
	return 0
}

func iPLA(c *Chip, op operand) uint8 {
	c.A = c.popStack()
	c.zeroCheck(c.A)
	c.negativeCheck(c.A)
	return 0
}

// iPLP restores P but discards the pushed B bit and forces U to 1.
func iPLP(c *Chip, op operand) uint8 {
	v := c.popStack()
	c.P = (v &^ P_B) | P_S1
	return 0
}

// --- Logic ---

func iAND(c *Chip, op operand) uint8 {
	c.A &= op.value
	c.zeroCheck(c.A)
	c.negativeCheck(c.A)
	return 0
}

func iORA(c *Chip, op operand) uint8 {
	c.A |= op.value
	c.zeroCheck(c.A)
	c.negativeCheck(c.A)
	return 0
}

func iEOR(c *Chip, op operand) uint8 {
	c.A ^= op.value
	c.zeroCheck(c.A)
	c.negativeCheck(c.A)
	return 0
}

// iBIT computes A&M for Z only; N and V are loaded directly from bits 7
// and 6 of M, not from the AND result.
func iBIT(c *Chip, op operand) uint8 {
	c.zeroCheck(c.A & op.value)
	c.P &^= (P_NEGATIVE | P_OVERFLOW)
	c.P |= op.value & (P_NEGATIVE | P_OVERFLOW)
	return 0
}

// --- Shift/rotate ---

func iASL(c *Chip, op operand) uint8 {
	v := op.value
	carry := v&0x80 != 0
	res := v << 1
	c.writeResult(op, res)
	setCarry(c, carry)
	c.zeroCheck(res)
	c.negativeCheck(res)
	return 0
}

func iLSR(c *Chip, op operand) uint8 {
	v := op.value
	carry := v&0x01 != 0
	res := v >> 1
	c.writeResult(op, res)
	setCarry(c, carry)
	c.zeroCheck(res)
	c.negativeCheck(res)
	return 0
}

func iROL(c *Chip, op operand) uint8 {
	v := op.value
	carryIn := c.P & P_CARRY
	carryOut := v&0x80 != 0
	res := (v << 1) | carryIn
	c.writeResult(op, res)
	setCarry(c, carryOut)
	c.zeroCheck(res)
	c.negativeCheck(res)
	return 0
}

func iROR(c *Chip, op operand) uint8 {
	v := op.value
	carryIn := (c.P & P_CARRY) << 7
	carryOut := v&0x01 != 0
	res := (v >> 1) | carryIn
	c.writeResult(op, res)
	setCarry(c, carryOut)
	c.zeroCheck(res)
	c.negativeCheck(res)
	return 0
}

func setCarry(c *Chip, v bool) {
	c.P &^= P_CARRY
	if v {
		c.P |= P_CARRY
	}
}

// --- Arithmetic ---

// adcCore implements the addition both ADC and SBC reduce to; decimal
// mode is never consulted since it is wired off on this CPU variant.
func (c *Chip) adcCore(m uint8) {
	carry := uint16(c.P & P_CARRY)
	sum := uint16(c.A) + uint16(m) + carry
	res := uint8(sum)
	c.overflowCheck(c.A, m, res)
	c.carryCheck(sum)
	c.A = res
	c.zeroCheck(c.A)
	c.negativeCheck(c.A)
}

func iADC(c *Chip, op operand) uint8 {
	c.adcCore(op.value)
	return 0
}

// iSBC is ADC with the operand one's-complemented.
func iSBC(c *Chip, op operand) uint8 {
	c.adcCore(^op.value)
	return 0
}

// --- Compare ---

func compare(c *Chip, reg, m uint8) {
	diff := reg - m
	if reg >= m {
		c.P |= P_CARRY
	} else {
		c.P &^= P_CARRY
	}
	c.zeroCheck(diff)
	c.negativeCheck(diff)
}

func iCMP(c *Chip, op operand) uint8 {
	compare(c, c.A, op.value)
	return 0
}

func iCPX(c *Chip, op operand) uint8 {
	compare(c, c.X, op.value)
	return 0
}

func iCPY(c *Chip, op operand) uint8 {
	compare(c, c.Y, op.value)
	return 0
}

// --- Increment/decrement ---

func iINC(c *Chip, op operand) uint8 {
	res := op.value + 1
	c.ram.Write(op.addr, res)
	c.zeroCheck(res)
	c.negativeCheck(res)
	return 0
}

func iDEC(c *Chip, op operand) uint8 {
	res := op.value - 1
	c.ram.Write(op.addr, res)
	c.zeroCheck(res)
	c.negativeCheck(res)
	return 0
}

func iINX(c *Chip, op operand) uint8 {
	c.X++
	c.zeroCheck(c.X)
	c.negativeCheck(c.X)
	return 0
}

func iINY(c *Chip, op operand) uint8 {
	c.Y++
	c.zeroCheck(c.Y)
	c.negativeCheck(c.Y)
	return 0
}

func iDEX(c *Chip, op operand) uint8 {
	c.X--
	c.zeroCheck(c.X)
	c.negativeCheck(c.X)
	return 0
}

func iDEY(c *Chip, op operand) uint8 {
	c.Y--
	c.zeroCheck(c.Y)
	c.negativeCheck(c.Y)
	return 0
}

// --- Branches ---

// branch implements the shared mechanics of all eight conditional
// branches: when cond holds, PC moves by the signed offset already
// resolved into op.value, charging +1 for the taken branch and +1 more if
// the target lands on a different page than the instruction after the
// branch, computed from the PC value the engine has already advanced to
// by the time the handler runs.
func branch(c *Chip, op operand, cond bool) uint8 {
	if !cond {
		return 0
	}
	old := c.PC
	offset := int16(int8(op.value))
	next := uint16(int32(old) + int32(offset))
	c.PC = next
	extra := uint8(1)
	if old&0xFF00 != next&0xFF00 {
		extra++
	}
	return extra
}

func iBCC(c *Chip, op operand) uint8 { return branch(c, op, c.P&P_CARRY == 0) }
func iBCS(c *Chip, op operand) uint8 { return branch(c, op, c.P&P_CARRY != 0) }
func iBEQ(c *Chip, op operand) uint8 { return branch(c, op, c.P&P_ZERO != 0) }
func iBNE(c *Chip, op operand) uint8 { return branch(c, op, c.P&P_ZERO == 0) }
func iBPL(c *Chip, op operand) uint8 { return branch(c, op, c.P&P_NEGATIVE == 0) }
func iBMI(c *Chip, op operand) uint8 { return branch(c, op, c.P&P_NEGATIVE != 0) }
func iBVC(c *Chip, op operand) uint8 { return branch(c, op, c.P&P_OVERFLOW == 0) }
func iBVS(c *Chip, op operand) uint8 { return branch(c, op, c.P&P_OVERFLOW != 0) }

// --- Jumps and subroutines ---

func iJMP(c *Chip, op operand) uint8 {
	c.PC = op.addr
	return 0
}

// iJSR pushes the address of the last byte of the JSR instruction (PC has
// already advanced by the instruction's 3 byte length, so PC-1 is correct)
// then jumps to the effective address.
func iJSR(c *Chip, op operand) uint8 {
	c.push16(c.PC - 1)
	c.PC = op.addr
	return 0
}

// iRTS pulls the return address and adds 1, undoing iJSR's PC-1 push.
func iRTS(c *Chip, op operand) uint8 {
	c.PC = c.pop16() + 1
	return 0
}

// --- Software interrupt ---

// iBRK skips the traditional signature byte after the opcode (PC has
// already advanced by 1 for the opcode itself; this adds the 2nd byte)
// before running the shared interrupt sequence with B=1.
func iBRK(c *Chip, op operand) uint8 {
	c.PC++
	c.serviceInterrupt(IRQ_VECTOR, true)
	return 0
}

// iRTI restores P (discarding the pushed B bit, forcing U to 1) and pulls
// PC with no adjustment, unlike RTS.
func iRTI(c *Chip, op operand) uint8 {
	v := c.popStack()
	c.P = (v &^ P_B) | P_S1
	c.PC = c.pop16()
	return 0
}

// --- Flags ---

func iCLC(c *Chip, op operand) uint8 { c.P &^= P_CARRY; return 0 }
func iSEC(c *Chip, op operand) uint8 { c.P |= P_CARRY; return 0 }
func iCLI(c *Chip, op operand) uint8 { c.P &^= P_INTERRUPT; return 0 }
func iSEI(c *Chip, op operand) uint8 { c.P |= P_INTERRUPT; return 0 }
func iCLV(c *Chip, op operand) uint8 { c.P &^= P_OVERFLOW; return 0 }
func iCLD(c *Chip, op operand) uint8 { c.P &^= P_DECIMAL; return 0 }
func iSED(c *Chip, op operand) uint8 { c.P |= P_DECIMAL; return 0 }

// --- No-ops ---

// iNOP backs both the documented NOP and the sentinel invalid-opcode
// entry: undocumented opcodes are treated as a no-op family rather than
// given their real (illegal) side effects.
func iNOP(c *Chip, op operand) uint8 { return 0 }
