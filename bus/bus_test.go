package bus

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earthPerson-001/emulator-6502/memory"
)

func TestCanonicalLayoutCoversFullSpace(t *testing.T) {
	b := NewCanonical()
	assert.Equal(t, 0x10000, b.RAM.Len()+b.Other.Len()+b.ROM.Len())
}

func TestReadWriteDecodesToRAM(t *testing.T) {
	b := NewCanonical()
	require.NoError(t, b.Write(0x0042, 0x7E))
	assert.Equal(t, uint8(0x7E), b.Read(0x0042))
}

func TestReadWriteDecodesToOther(t *testing.T) {
	b := NewCanonical()
	require.NoError(t, b.Write(0x4001, 0x11))
	assert.Equal(t, uint8(0x11), b.Read(0x4001))
	// Shouldn't leak into RAM.
	assert.Equal(t, uint8(0), b.Read(0x0001))
}

func TestReadWriteDecodesToROM(t *testing.T) {
	b := NewCanonical()
	require.NoError(t, b.Write(0x8000, 0x99))
	assert.Equal(t, uint8(0x99), b.Read(0x8000))
}

func TestWriteToUndersizedConfigReturnsBadAddress(t *testing.T) {
	b := New(memory.NewRAM(0x10), memory.NewRAM(0x10), memory.NewROM(0x10))
	err := b.Write(0xFFFF, 0x01)
	require.Error(t, err)
	var bad BadAddressError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, uint16(0xFFFF), bad.Addr)
}

func TestReadPastUndersizedConfigReadsZero(t *testing.T) {
	b := New(memory.NewRAM(0x10), memory.NewRAM(0x10), memory.NewROM(0x10))
	assert.Equal(t, uint8(0), b.Read(0xFFFF))
}

func TestRead16LittleEndian(t *testing.T) {
	b := NewCanonical()
	require.NoError(t, b.Write(0x0010, 0x34))
	require.NoError(t, b.Write(0x0011, 0x12))
	assert.Equal(t, uint16(0x1234), b.Read16(0x0010))
}

func TestLoadROMFromBytes(t *testing.T) {
	b := NewCanonical()
	b.LoadROMBytes([]byte{0xA9, 0x42}, 0)
	assert.Equal(t, uint8(0xA9), b.Read(0x8000))
	assert.Equal(t, uint8(0x42), b.Read(0x8001))
}

func TestLoadROMFromReader(t *testing.T) {
	b := NewCanonical()
	require.NoError(t, b.LoadROM(bytes.NewReader([]byte{0x01, 0x02, 0x03}), 0x10))
	assert.Equal(t, uint8(0x01), b.Read(0x8010))
}

func TestVectorsRoundTripThroughROM(t *testing.T) {
	b := NewCanonical()
	// Reset vector lives at 0xFFFC/D, which is ROM offset 0x7FFC/D.
	b.LoadROMBytes([]byte{0x34, 0x12}, 0x7FFC)
	assert.Equal(t, uint16(0x1234), b.Read16(0xFFFC))
}
