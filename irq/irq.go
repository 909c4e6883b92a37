// Package irq defines the basic interfaces for working
// with a 6502 family interrupt. A receiver of interrupts (IRQ/NMI)
// will implement this interface to allow other components which generate
// them to easily raise state without cross coupling component logic.
// NOTE: Even though chips make a distinction between level and edge type interrupts
//       the interfaces here don't matter and assume implementors simply account for
//       this in clock cycle management.
package irq

import "sync/atomic"

// Sender defines the interface for an IRQ source.
type Sender interface {
	// Raised indicates whether the interrupt is currently held high.
	Raised() bool
}

// EdgeLatch is an edge-triggered Sender such as NMI: Trigger() latches a
// pending interrupt that stays pending until the next Raised() call, which
// clears it. Safe to Trigger from one goroutine while another calls Raised,
// the single-producer/single-consumer case an asynchronously PPU-driven
// NMI requires.
type EdgeLatch struct {
	pending atomic.Bool
}

// Trigger latches the interrupt as pending.
func (e *EdgeLatch) Trigger() {
	e.pending.Store(true)
}

// Raised reports and clears the pending state.
func (e *EdgeLatch) Raised() bool {
	return e.pending.Swap(false)
}

// Level is a level-triggered Sender such as IRQ: Set(true) holds the line
// asserted until Set(false), and Raised() does not clear it (the CPU only
// services it once the interrupt-disable flag allows).
type Level struct {
	asserted atomic.Bool
}

// Set asserts or deasserts the line.
func (l *Level) Set(v bool) {
	l.asserted.Store(v)
}

// Raised reports whether the line is currently asserted.
func (l *Level) Raised() bool {
	return l.asserted.Load()
}
