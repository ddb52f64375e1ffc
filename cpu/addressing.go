package cpu

// AddrMode identifies one of the 6502's addressing modes. It dispatches
// the effective-address computation inside the CPU and doubles as the
// operand-format selector for the disassembler.
type AddrMode int

const (
	ModeImplied AddrMode = iota
	ModeAccumulator
	ModeImmediate
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirect
	ModeIndirectX
	ModeIndirectY
	ModeRelative
)

// fetchOperandAddr advances PC past the operand bytes of the current
// instruction's addressing mode and leaves the effective address in
// c.addrAbs (or the branch target in c.addrRel for ModeRelative). It
// returns whether a page boundary was crossed computing that address --
// only meaningful for the indexed modes, false otherwise.
func (c *CPU) fetchOperandAddr(mode AddrMode) bool {
	switch mode {
	case ModeImplied, ModeAccumulator:
		return false
	case ModeImmediate:
		c.addrAbs = c.PC
		c.PC++
		return false
	case ModeZeroPage:
		c.addrAbs = uint16(c.bus.Read(c.PC))
		c.PC++
		return false
	case ModeZeroPageX:
		zp := c.bus.Read(c.PC)
		c.PC++
		c.addrAbs = uint16(zp + c.X)
		return false
	case ModeZeroPageY:
		zp := c.bus.Read(c.PC)
		c.PC++
		c.addrAbs = uint16(zp + c.Y)
		return false
	case ModeAbsolute:
		c.addrAbs = c.bus.Read16(c.PC)
		c.PC += 2
		return false
	case ModeAbsoluteX:
		base := c.bus.Read16(c.PC)
		c.PC += 2
		c.addrAbs = base + uint16(c.X)
		return base&0xFF00 != c.addrAbs&0xFF00
	case ModeAbsoluteY:
		base := c.bus.Read16(c.PC)
		c.PC += 2
		c.addrAbs = base + uint16(c.Y)
		return base&0xFF00 != c.addrAbs&0xFF00
	case ModeIndirect:
		ptr := c.bus.Read16(c.PC)
		c.PC += 2
		// Faithful reproduction of the NMOS indirect-JMP page boundary
		// bug: if the pointer's low byte is 0xFF, the high byte is
		// fetched from the start of the same page rather than the next.
		lo := c.bus.Read(ptr)
		var hi uint8
		if ptr&0x00FF == 0x00FF {
			hi = c.bus.Read(ptr & 0xFF00)
		} else {
			hi = c.bus.Read(ptr + 1)
		}
		c.addrAbs = uint16(hi)<<8 | uint16(lo)
		return false
	case ModeIndirectX:
		zp := c.bus.Read(c.PC)
		c.PC++
		ptr := zp + c.X // zero-page wraparound, never crosses to page 1
		lo := c.bus.Read(uint16(ptr))
		hi := c.bus.Read(uint16(ptr + 1))
		c.addrAbs = uint16(hi)<<8 | uint16(lo)
		return false
	case ModeIndirectY:
		zp := c.bus.Read(c.PC)
		c.PC++
		lo := c.bus.Read(uint16(zp))
		hi := c.bus.Read(uint16(zp + 1)) // zero-page wraparound
		base := uint16(hi)<<8 | uint16(lo)
		c.addrAbs = base + uint16(c.Y)
		return base&0xFF00 != c.addrAbs&0xFF00
	case ModeRelative:
		off := int8(c.bus.Read(c.PC))
		c.PC++
		c.addrRel = c.PC + uint16(off)
		return false
	}
	return false
}

// operand reads the byte at the effective address computed by
// fetchOperandAddr. For ModeAccumulator callers use c.A directly instead.
func (c *CPU) operand() uint8 {
	return c.bus.Read(c.addrAbs)
}
