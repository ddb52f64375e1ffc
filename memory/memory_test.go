package memory

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRAMOutOfRangeReadsZero(t *testing.T) {
	r := NewRAM(16)
	assert.Equal(t, uint8(0), r.Read(100))
	assert.Equal(t, uint8(0), r.Read(-1))
}

func TestRAMOutOfRangeWriteIsNoop(t *testing.T) {
	r := NewRAM(16)
	r.Write(100, 0xFF)
	r.Write(-1, 0xFF)
	for i := 0; i < r.Len(); i++ {
		assert.Equal(t, uint8(0), r.Read(i))
	}
}

func TestRAMPowerOnClears(t *testing.T) {
	r := NewRAM(4)
	r.Write(0, 0x11)
	r.Write(3, 0x22)
	r.PowerOn()
	for i := 0; i < 4; i++ {
		assert.Equal(t, uint8(0), r.Read(i))
	}
}

func TestROMLoadBytesShortInputTolerated(t *testing.T) {
	r := NewROM(8)
	r.LoadBytes([]byte{0xAA, 0xBB}, 0)
	assert.Equal(t, uint8(0xAA), r.Read(0))
	assert.Equal(t, uint8(0xBB), r.Read(1))
	assert.Equal(t, uint8(0), r.Read(2))
}

func TestROMLoadBytesAtOffset(t *testing.T) {
	r := NewROM(8)
	r.LoadBytes([]byte{0x01, 0x02}, 4)
	assert.Equal(t, uint8(0), r.Read(3))
	assert.Equal(t, uint8(0x01), r.Read(4))
	assert.Equal(t, uint8(0x02), r.Read(5))
}

func TestROMLoadBytesOutOfRangeOffsetIsNoop(t *testing.T) {
	r := NewROM(4)
	r.LoadBytes([]byte{0xFF}, 10)
	for i := 0; i < 4; i++ {
		assert.Equal(t, uint8(0), r.Read(i))
	}
}

func TestROMLoadFromReader(t *testing.T) {
	r := NewROM(4)
	err := r.Load(bytes.NewReader([]byte{0x10, 0x20, 0x30, 0x40}), 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x10), r.Read(0))
	assert.Equal(t, uint8(0x40), r.Read(3))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestROMLoadFromFailingReader(t *testing.T) {
	r := NewROM(4)
	err := r.Load(failingReader{}, 0)
	require.Error(t, err)
	var rlf RomLoadFailedError
	require.ErrorAs(t, err, &rlf)
}

func TestROMLoadNilSource(t *testing.T) {
	r := NewROM(4)
	err := r.Load(nil, 0)
	require.Error(t, err)
}
