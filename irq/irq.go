// Package irq defines the basic interfaces for working with a 6502 family
// interrupt line. A generator of interrupts (a timer, a peripheral chip)
// implements Sender so it can be polled by a host without cross coupling
// component logic; the CPU core itself is edge-triggered (see cpu.CPU.IRQ
// and cpu.CPU.NMI) and does not poll a Sender on its own - a host that
// wants level-triggered semantics layered on top polls Sender once per
// clock and calls CPU.IRQ/CPU.NMI when it transitions high.
package irq

// Sender defines the interface for an IRQ source.
type Sender interface {
	// Raised indicates whether the interrupt is currently held high.
	Raised() bool
}

// Line is a simple edge-latched interrupt source a host can raise and
// lower by hand - e.g. a periodic timer in a host such as run that wants to
// exercise CPU.IRQ without writing a full peripheral chip. It implements
// Sender.
type Line struct {
	held bool
}

// Raise asserts the line until Lower is called.
func (l *Line) Raise() {
	l.held = true
}

// Lower deasserts the line.
func (l *Line) Lower() {
	l.held = false
}

// Raised implements Sender.
func (l *Line) Raised() bool {
	return l.held
}
