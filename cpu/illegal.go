package cpu

// The documented-but-unofficial NMOS opcodes. Most (SLO/RLA/SRE/RRA/SAX/
// LAX/DCP/ISC) are simple combinations of a read-modify-write step with an
// accumulator operation and are fully deterministic on real silicon. A
// handful (ANE, LXA, SHA/SHX/SHY, TAS) are genuinely unstable on real NMOS
// parts -- their result depends on analog bus capacitance effects that
// differ between chip batches. Those are implemented here using the
// commonly documented "typical" behavior rather than true hardware
// instability, which is the tolerated approximation for rarely used
// illegal opcodes.

func opSLO(c *CPU) error {
	v := c.operand()
	setFlag(&c.P, flagC, v&0x80 != 0)
	v <<= 1
	if err := c.bus.Write(c.addrAbs, v); err != nil {
		return err
	}
	c.A |= v
	c.setZN(c.A)
	return nil
}

func opRLA(c *CPU) error {
	oldC := boolToUint8(c.GetCarry())
	v := c.operand()
	setFlag(&c.P, flagC, v&0x80 != 0)
	v = v<<1 | oldC
	if err := c.bus.Write(c.addrAbs, v); err != nil {
		return err
	}
	c.A &= v
	c.setZN(c.A)
	return nil
}

func opSRE(c *CPU) error {
	v := c.operand()
	setFlag(&c.P, flagC, v&0x01 != 0)
	v >>= 1
	if err := c.bus.Write(c.addrAbs, v); err != nil {
		return err
	}
	c.A ^= v
	c.setZN(c.A)
	return nil
}

func opRRA(c *CPU) error {
	oldC := boolToUint8(c.GetCarry())
	v := c.operand()
	setFlag(&c.P, flagC, v&0x01 != 0)
	v = v>>1 | oldC<<7
	if err := c.bus.Write(c.addrAbs, v); err != nil {
		return err
	}
	sum := uint16(c.A) + uint16(v) + uint16(boolToUint8(c.GetCarry()))
	res := uint8(sum)
	setFlag(&c.P, flagV, (c.A^res)&(v^res)&0x80 != 0)
	setFlag(&c.P, flagC, sum > 0xFF)
	c.A = res
	c.setZN(c.A)
	return nil
}

func opSAX(c *CPU) error {
	return c.bus.Write(c.addrAbs, c.A&c.X)
}

func opLAX(c *CPU) error {
	v := c.operand()
	c.A = v
	c.X = v
	c.setZN(v)
	return nil
}

func opDCP(c *CPU) error {
	v := c.operand() - 1
	if err := c.bus.Write(c.addrAbs, v); err != nil {
		return err
	}
	setFlag(&c.P, flagC, c.A >= v)
	c.setZN(c.A - v)
	return nil
}

func opISC(c *CPU) error {
	v := c.operand() + 1
	if err := c.bus.Write(c.addrAbs, v); err != nil {
		return err
	}
	val := v ^ 0xFF
	sum := uint16(c.A) + uint16(val) + uint16(boolToUint8(c.GetCarry()))
	res := uint8(sum)
	setFlag(&c.P, flagV, (c.A^res)&(val^res)&0x80 != 0)
	setFlag(&c.P, flagC, sum > 0xFF)
	c.A = res
	c.setZN(c.A)
	return nil
}

func opANC(c *CPU) error {
	c.A &= c.operand()
	c.setZN(c.A)
	setFlag(&c.P, flagC, c.A&0x80 != 0)
	return nil
}

func opALR(c *CPU) error {
	c.A &= c.operand()
	setFlag(&c.P, flagC, c.A&0x01 != 0)
	c.A >>= 1
	c.setZN(c.A)
	return nil
}

func opARR(c *CPU) error {
	c.A &= c.operand()
	oldC := boolToUint8(c.GetCarry())
	c.A = c.A>>1 | oldC<<7
	setFlag(&c.P, flagC, c.A&0x40 != 0)
	setFlag(&c.P, flagV, (c.A>>6)&1^(c.A>>5)&1 != 0)
	c.setZN(c.A)
	return nil
}

// opSBX implements AXS/SBX: (A & X) - operand, with no input carry and no
// overflow flag update.
func opSBX(c *CPU) error {
	v := c.operand()
	t := c.A & c.X
	setFlag(&c.P, flagC, t >= v)
	c.X = t - v
	c.setZN(c.X)
	return nil
}

// opANE implements the unstable ANE/XAA opcode using the commonly
// documented approximation (A = X & operand) rather than modeling the
// chip-dependent "magic constant" instability.
func opANE(c *CPU) error {
	c.A = c.X & c.operand()
	c.setZN(c.A)
	return nil
}

// opLXA implements the unstable LXA/LAX-immediate opcode, approximated as
// a plain immediate load into both A and X.
func opLXA(c *CPU) error {
	v := c.operand()
	c.A = v
	c.X = v
	c.setZN(v)
	return nil
}

func highByteForUnstableStore(c *CPU) uint8 {
	return uint8(c.addrAbs>>8) + 1
}

// opSHA implements the unstable AHX/SHA opcode.
func opSHA(c *CPU) error {
	v := c.A & c.X & highByteForUnstableStore(c)
	return c.bus.Write(c.addrAbs, v)
}

// opSHX implements the unstable SHX opcode.
func opSHX(c *CPU) error {
	v := c.X & highByteForUnstableStore(c)
	return c.bus.Write(c.addrAbs, v)
}

// opSHY implements the unstable SHY opcode.
func opSHY(c *CPU) error {
	v := c.Y & highByteForUnstableStore(c)
	return c.bus.Write(c.addrAbs, v)
}

// opTAS implements the unstable TAS/XAS opcode: SP = A & X, then stores
// SP & (high byte of the address + 1).
func opTAS(c *CPU) error {
	c.SP = c.A & c.X
	v := c.SP & highByteForUnstableStore(c)
	return c.bus.Write(c.addrAbs, v)
}

// opLAS implements LAS/LAR: A, X and SP are all set to operand & SP.
func opLAS(c *CPU) error {
	v := c.operand() & c.SP
	c.A = v
	c.X = v
	c.SP = v
	c.setZN(v)
	return nil
}

// opJAM implements any of the 12 opcodes that lock the processor. Only a
// Reset can recover from this state.
func opJAM(c *CPU) error {
	c.halted = true
	return nil
}
