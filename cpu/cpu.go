// Package cpu implements the MOS 6502 instruction set: registers, status
// flags, the 256-entry opcode dispatch table and its addressing modes,
// and the Clock-driven execution loop that ties them together.
package cpu

import (
	"fmt"

	"github.com/earthPerson-001/emulator-6502/bus"
)

// The three fixed interrupt/reset vectors, resident in ROM in the
// canonical memory map.
const (
	vectorNMI   = uint16(0xFFFA)
	vectorReset = uint16(0xFFFC)
	vectorIRQ   = uint16(0xFFFE)
)

// stackBase is the fixed page the stack pointer indexes into. The 6502
// stack grows down from 0x01FF.
const stackBase = uint16(0x0100)

// HaltedError is returned by Clock once the processor has executed a JAM
// opcode. Only a Reset can recover from this state; further Clock calls
// keep returning the same error without advancing anything.
type HaltedError struct {
	Opcode uint8
}

func (e HaltedError) Error() string {
	return fmt.Sprintf("CPU halted by opcode 0x%02X", e.Opcode)
}

// CPU holds the full architectural state of a MOS 6502: the 8-bit A, X,
// Y, SP and P registers, the program counter, and the bookkeeping Clock needs to
// amortize a multi-cycle instruction over single-cycle calls.
type CPU struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	P  uint8
	PC uint16

	bus *bus.Bus

	cyclesRemaining int
	opcode          uint8
	mode            AddrMode
	addrAbs         uint16
	addrRel         uint16

	halted     bool
	haltOpcode uint8
}

// New creates a CPU wired to b and brings it up in the reset state: PC
// loaded from the reset vector, registers cleared, 8 cycles charged
// before the first instruction fetch.
func New(b *bus.Bus) *CPU {
	c := &CPU{bus: b}
	c.Reset()
	return c
}

// NewAt is New with the first fetch address chosen by the caller: pc is
// stored at the reset vector (0xFFFC/D, little-endian) before the reset
// sequence reads it back.
func NewAt(b *bus.Bus, pc uint16) *CPU {
	_ = b.Write(vectorReset, uint8(pc))
	_ = b.Write(vectorReset+1, uint8(pc>>8))
	return New(b)
}

// Reset models the power-on/reset line: A, X and Y are cleared, SP goes
// to 0xFF, P is cleared except for the always-set U bit, the
// per-instruction scratch state is dropped, and PC is loaded from the
// reset vector. The sequence charges 8 cycles before the first fetch. A
// halted CPU is unhalted by Reset; nothing else recovers a halt.
func (c *CPU) Reset() {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.SP = 0xFF
	c.P = 0
	setFlag(&c.P, flagU, true)
	c.PC = c.bus.Read16(vectorReset)
	c.opcode = 0
	c.mode = ModeImplied
	c.addrAbs = 0
	c.addrRel = 0
	c.cyclesRemaining = 8
	c.halted = false
	c.haltOpcode = 0
}

// IRQ requests a maskable interrupt. If the interrupt-disable flag is
// set the request is ignored. A halted CPU does not service it either and
// returns HaltedError instead (only Reset clears a halt).
func (c *CPU) IRQ() error {
	if c.halted {
		return HaltedError{Opcode: c.haltOpcode}
	}
	if getFlag(c.P, flagI) {
		return nil
	}
	c.serviceInterrupt(vectorIRQ, 7)
	return nil
}

// NMI requests a non-maskable interrupt. Unlike IRQ this is never
// suppressed by the interrupt-disable flag.
func (c *CPU) NMI() error {
	if c.halted {
		return HaltedError{Opcode: c.haltOpcode}
	}
	c.serviceInterrupt(vectorNMI, 8)
	return nil
}

// serviceInterrupt implements the shared entry sequence for both IRQ and
// NMI: push PC, push P with B cleared and U set, disable further IRQs,
// and load PC from vector. IRQ entry takes 7 cycles like BRK; NMI takes
// one more.
func (c *CPU) serviceInterrupt(vector uint16, cycles int) {
	c.push16(c.PC)
	pushed := c.P
	setFlag(&pushed, flagB, false)
	setFlag(&pushed, flagU, true)
	c.push8(pushed)
	setFlag(&c.P, flagI, true)
	c.PC = c.bus.Read16(vector)
	c.cyclesRemaining = cycles
}

// Clock advances the CPU by one cycle. On the first cycle of an
// instruction the opcode is fetched, its operand address resolved, and
// its entire effect executed immediately; the remaining cycles for that
// instruction are then just counted down with no further side effects.
// This is an amortized model of the real per-cycle hardware timing:
// external observers see the same register, memory, and cycle schedule,
// just not the intermediate bus states mid-instruction.
//
// Clock returns HaltedError once a JAM opcode has executed, and keeps
// returning it on every subsequent call until Reset.
func (c *CPU) Clock() error {
	if c.halted {
		return HaltedError{Opcode: c.haltOpcode}
	}
	if c.cyclesRemaining == 0 {
		c.opcode = c.bus.Read(c.PC)
		c.PC++
		entry := opcodeTable[c.opcode]
		c.mode = entry.mode
		// The base cycle count must be in place before the op runs: the
		// branch ops add their taken/page-cross penalties on top of it.
		c.cyclesRemaining = int(entry.cycles)

		crossed := c.fetchOperandAddr(entry.mode)

		setFlag(&c.P, flagU, true)
		if err := entry.fn(c); err != nil {
			return err
		}
		setFlag(&c.P, flagU, true)

		if crossed && entry.pageCross {
			c.cyclesRemaining++
		}
		if c.halted {
			// A JAM never retires: its cycle counter stops draining and
			// every Clock from here on reports the halt.
			c.haltOpcode = c.opcode
			return HaltedError{Opcode: c.haltOpcode}
		}
	}
	c.cyclesRemaining--
	return nil
}

// CyclesRemaining reports how many more Clock calls will elapse before
// the next instruction is fetched.
func (c *CPU) CyclesRemaining() int { return c.cyclesRemaining }

// Halted reports whether a JAM opcode has executed.
func (c *CPU) Halted() bool { return c.halted }

// Opcode returns the opcode byte most recently dispatched.
func (c *CPU) Opcode() uint8 { return c.opcode }

// Bus returns the bus this CPU is wired to, for callers that need to read
// memory for tracing or disassembly without stepping the CPU itself.
func (c *CPU) Bus() *bus.Bus { return c.bus }

func (c *CPU) push8(v uint8) {
	_ = c.bus.Write(stackBase+uint16(c.SP), v)
	c.SP--
}

func (c *CPU) pull8() uint8 {
	c.SP++
	return c.bus.Read(stackBase + uint16(c.SP))
}

func (c *CPU) push16(v uint16) {
	c.push8(uint8(v >> 8))
	c.push8(uint8(v))
}

func (c *CPU) pull16() uint16 {
	lo := uint16(c.pull8())
	hi := uint16(c.pull8())
	return hi<<8 | lo
}
