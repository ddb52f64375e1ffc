// Package disassemble implements a disassembler for 6502 opcodes, used by
// both the monitor TUI and the disassembler CLI to render an instruction
// stream without having to execute it. Opcode identities and addressing
// modes come straight from package cpu's dispatch table, so the listing and
// the execution engine can never drift apart.
package disassemble

import (
	"fmt"

	"github.com/earthPerson-001/emulator-6502/cpu"
)

// Reader is the minimal read-only view of an address space a disassembler
// needs. *bus.Bus satisfies this without disassemble importing bus, which
// keeps this package usable against any byte-addressable source (a bus, a
// raw ROM dump, a test fixture).
type Reader interface {
	Read(addr uint16) uint8
}

// Step takes the given PC value and disassembles the instruction at that
// location, returning a string for the disassembly and the number of
// bytes forward PC should move to reach the next instruction. This does
// not interpret the instructions, so LDA, JMP, LDA in memory disassembles
// as that sequence and does not follow the JMP.
// This always reads at least one byte past the current PC, so make sure
// that address is valid.
func Step(pc uint16, r Reader) (string, int) {
	o := r.Read(pc)
	// All instructions read a 2nd byte generally so just do that now.
	pc1 := r.Read(pc + 1)
	// Setup a 16 bit value so it can be added to the PC for branch offsets.
	// Sign extend it as needed.
	pc116 := uint16(int16(int8(pc1)))
	// And preread the 2nd byte for 3 byte instructions.
	pc2 := r.Read(pc + 2)

	info := cpu.Lookup(o)
	op := info.Mnemonic
	mode := info.Mode
	if o == 0x00 {
		// BRK reads and skips a signature byte, so list it 2 wide like an
		// immediate even though it executes as an implied op.
		mode = cpu.ModeImmediate
	}

	count := 2 // Default byte count, adjusted below.
	out := fmt.Sprintf("%.4X %.2X ", pc, o)
	switch mode {
	case cpu.ModeImmediate:
		out += fmt.Sprintf("%.2X      %s #%.2X       ", pc1, op, pc1)
	case cpu.ModeZeroPage:
		out += fmt.Sprintf("%.2X      %s %.2X        ", pc1, op, pc1)
	case cpu.ModeZeroPageX:
		out += fmt.Sprintf("%.2X      %s %.2X,X      ", pc1, op, pc1)
	case cpu.ModeZeroPageY:
		out += fmt.Sprintf("%.2X      %s %.2X,Y      ", pc1, op, pc1)
	case cpu.ModeIndirectX:
		out += fmt.Sprintf("%.2X      %s (%.2X,X)    ", pc1, op, pc1)
	case cpu.ModeIndirectY:
		out += fmt.Sprintf("%.2X      %s (%.2X),Y    ", pc1, op, pc1)
	case cpu.ModeAbsolute:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X      ", pc1, pc2, op, pc2, pc1)
		count++
	case cpu.ModeAbsoluteX:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,X    ", pc1, pc2, op, pc2, pc1)
		count++
	case cpu.ModeAbsoluteY:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,Y    ", pc1, pc2, op, pc2, pc1)
		count++
	case cpu.ModeIndirect:
		out += fmt.Sprintf("%.2X %.2X   %s (%.2X%.2X)    ", pc1, pc2, op, pc2, pc1)
		count++
	case cpu.ModeImplied, cpu.ModeAccumulator:
		out += fmt.Sprintf("        %s           ", op)
		count--
	case cpu.ModeRelative:
		out += fmt.Sprintf("%.2X      %s %.2X (%.4X) ", pc1, op, pc1, pc+pc116+2)
	default:
		panic(fmt.Sprintf("Invalid mode: %d", mode))
	}
	return out, count
}

// Range disassembles count instructions starting at pc, returning one
// formatted line per instruction. It never reads past the given count of
// instructions, but each Step call may still read one or two bytes beyond
// the last instruction's first byte per its own doc comment.
func Range(pc uint16, r Reader, count int) []string {
	lines := make([]string, 0, count)
	for i := 0; i < count; i++ {
		dis, off := Step(pc, r)
		lines = append(lines, dis)
		pc += uint16(off)
	}
	return lines
}
