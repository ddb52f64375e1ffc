package cpu

// Bit positions of the 8 flags packed into the P status register. U never
// reflects real state -- it reads 1 at all times except in the instant
// between PHP computing its pushed copy and the clock forcing it back.
const (
	flagC uint8 = 1 << 0 // Carry
	flagZ uint8 = 1 << 1 // Zero
	flagI uint8 = 1 << 2 // Interrupt disable
	flagD uint8 = 1 << 3 // Decimal mode (recognized, BCD math not implemented)
	flagB uint8 = 1 << 4 // Break (synthetic, only meaningful in a pushed copy)
	flagU uint8 = 1 << 5 // Unused, always reads 1
	flagV uint8 = 1 << 6 // Overflow
	flagN uint8 = 1 << 7 // Negative
)

func getFlag(p uint8, mask uint8) bool {
	return p&mask != 0
}

func setFlag(p *uint8, mask uint8, v bool) {
	if v {
		*p |= mask
		return
	}
	*p &^= mask
}

// setZN derives the Z and N flags from a computed 8-bit result, the most
// common post-op flag update across the instruction set.
func (c *CPU) setZN(v uint8) {
	setFlag(&c.P, flagZ, v == 0)
	setFlag(&c.P, flagN, v&0x80 != 0)
}

// GetCarry reports the state of the carry flag.
func (c *CPU) GetCarry() bool { return getFlag(c.P, flagC) }

// GetZero reports the state of the zero flag.
func (c *CPU) GetZero() bool { return getFlag(c.P, flagZ) }

// GetInterruptDisable reports the state of the interrupt-disable flag.
func (c *CPU) GetInterruptDisable() bool { return getFlag(c.P, flagI) }

// GetDecimal reports the state of the decimal flag. Set/cleared normally
// but never consulted by ADC/SBC, which always do binary math.
func (c *CPU) GetDecimal() bool { return getFlag(c.P, flagD) }

// GetOverflow reports the state of the overflow flag.
func (c *CPU) GetOverflow() bool { return getFlag(c.P, flagV) }

// GetNegative reports the state of the negative flag.
func (c *CPU) GetNegative() bool { return getFlag(c.P, flagN) }

// SetCarry sets or clears the carry flag directly. Exposed for hosts that
// want to seed specific states (test harnesses, monitors); normal
// instruction execution never needs it from outside the package.
func (c *CPU) SetCarry(v bool) { setFlag(&c.P, flagC, v) }

// SetDecimal sets or clears the decimal flag directly.
func (c *CPU) SetDecimal(v bool) { setFlag(&c.P, flagD, v) }

// ClearStatus resets P to the power-on convention: only U set, everything
// else clear.
func (c *CPU) ClearStatus() {
	c.P = flagU
}
