// Package bus implements the 6502's 16-bit address-decoded memory map:
// one RAM region, one Other (I/O) region, and one ROM region, laid out
// contiguously starting at address 0. It owns address decoding; the
// regions themselves (see package memory) know nothing about bus
// addresses, only their own local offsets.
package bus

import (
	"fmt"
	"io"

	"github.com/earthPerson-001/emulator-6502/memory"
)

// BadAddressError is returned by Write when addr doesn't land in any of
// the three configured regions. Reads past every region instead return 0
// silently (open-bus behavior); only writes are errors, per the core's
// error handling design.
type BadAddressError struct {
	Addr uint16
}

func (e BadAddressError) Error() string {
	return fmt.Sprintf("bad address: 0x%04X is outside every mapped region", e.Addr)
}

// Bus decodes a 16-bit address across three contiguous regions: RAM,
// then Other (I/O), then ROM. In the canonical configuration
// len(RAM)+len(Other)+len(ROM) == 0x10000 and every address is valid;
// smaller configurations are allowed for testing and leave a gap at the
// top of the space that reads as 0 and write-errors.
type Bus struct {
	RAM   memory.Region
	Other memory.Region
	ROM   *memory.ROM
}

// New wires up a Bus over the three given regions. Regions are mapped in
// the order RAM, Other, ROM starting at address 0x0000.
func New(ram, other memory.Region, rom *memory.ROM) *Bus {
	return &Bus{RAM: ram, Other: other, ROM: rom}
}

// NewCanonical builds the Bus described in the 6502 core's default memory
// map: 16 KiB RAM at 0x0000, 16 KiB Other at 0x4000, 32 KiB ROM at
// 0x8000, covering the full 64 KiB space.
func NewCanonical() *Bus {
	return New(memory.NewRAM(0x4000), memory.NewRAM(0x4000), memory.NewROM(0x8000))
}

// decode returns which region addr lands in along with the offset local
// to that region. ok is false if addr is outside every region (only
// possible with a non-canonical, undersized configuration).
func (b *Bus) decode(addr uint16) (region memory.Region, off int, ok bool) {
	a := int(addr)
	r := b.RAM.Len()
	o := b.Other.Len()
	s := b.ROM.Len()
	switch {
	case a < r:
		return b.RAM, a, true
	case a < r+o:
		return b.Other, a - r, true
	case a < r+o+s:
		return b.ROM, a - r - o, true
	default:
		return nil, 0, false
	}
}

// Read returns the byte at addr. An address outside every configured
// region reads as 0 (open-bus behavior); this never errors.
func (b *Bus) Read(addr uint16) uint8 {
	region, off, ok := b.decode(addr)
	if !ok {
		return 0
	}
	return region.Read(off)
}

// Write stores val at addr. A write to ROM is permitted and mutates the
// ROM region - the 6502 bus can't distinguish RAM from ROM at this level,
// so write-protection isn't modeled. An address outside every configured
// region returns BadAddressError.
func (b *Bus) Write(addr uint16, val uint8) error {
	region, off, ok := b.decode(addr)
	if !ok {
		return BadAddressError{Addr: addr}
	}
	region.Write(off, val)
	return nil
}

// Read16 reads a little-endian 16-bit value at addr, addr+1.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := uint16(b.Read(addr))
	hi := uint16(b.Read(addr + 1))
	return hi<<8 | lo
}

// LoadROM delegates to the ROM region's Load, placing bytes read from src
// starting at startOffset within the ROM region (not the 16-bit bus
// address space - callers mapping ROM at a non-zero bus address must
// subtract len(RAM)+len(Other) themselves, or just use startOffset 0 to
// fill the ROM from its base).
func (b *Bus) LoadROM(src io.Reader, startOffset int) error {
	return b.ROM.Load(src, startOffset)
}

// LoadROMBytes is the bulk, already-in-memory equivalent of LoadROM.
func (b *Bus) LoadROMBytes(data []byte, startOffset int) {
	b.ROM.LoadBytes(data, startOffset)
}

// PowerOn clears every region to its zero value.
func (b *Bus) PowerOn() {
	b.RAM.PowerOn()
	b.Other.PowerOn()
	b.ROM.PowerOn()
}
