package disassemble

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeMem [65536]uint8

func (f *fakeMem) Read(addr uint16) uint8 { return f[addr] }

func TestStepImmediate(t *testing.T) {
	var m fakeMem
	m[0x8000] = 0xA9
	m[0x8001] = 0x42
	out, n := Step(0x8000, &m)
	assert.Equal(t, 2, n)
	assert.True(t, strings.Contains(out, "LDA"))
	assert.True(t, strings.Contains(out, "#42"))
}

func TestStepAbsoluteAdvancesThreeBytes(t *testing.T) {
	var m fakeMem
	m[0x8000] = 0x4C // JMP abs
	m[0x8001] = 0x34
	m[0x8002] = 0x12
	out, n := Step(0x8000, &m)
	assert.Equal(t, 3, n)
	assert.True(t, strings.Contains(out, "JMP"))
	assert.True(t, strings.Contains(out, "1234"))
}

func TestStepImpliedAdvancesOneByte(t *testing.T) {
	var m fakeMem
	m[0x8000] = 0xEA // NOP
	_, n := Step(0x8000, &m)
	assert.Equal(t, 1, n)
}

func TestStepRelativeComputesTarget(t *testing.T) {
	var m fakeMem
	m[0x8000] = 0xD0 // BNE
	m[0x8001] = 0x05
	out, n := Step(0x8000, &m)
	assert.Equal(t, 2, n)
	assert.True(t, strings.Contains(out, "8007"))
}

func TestStepIllegalOpcodeMnemonic(t *testing.T) {
	var m fakeMem
	m[0x8000] = 0x93 // SHA (d),y
	out, _ := Step(0x8000, &m)
	assert.True(t, strings.Contains(out, "SHA"))
}
