package dsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/intuitionamiga/blockdsp/dsp"
)

func TestSignExtend8(t *testing.T) {
	assert.Equal(t, int16(0), dsp.SignExtend8(0))
	assert.Equal(t, int16(127), dsp.SignExtend8(127))
	assert.Equal(t, int16(-128), dsp.SignExtend8(128))
	assert.Equal(t, int16(-1), dsp.SignExtend8(255))
}

func TestSignExtend8Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := uint8(rapid.IntRange(0, 255).Draw(rt, "v"))
		got := dsp.SignExtend8(v)
		var want int16
		if v < 0x80 {
			want = int16(v)
		} else {
			want = int16(v) - 0x100
		}
		assert.Equal(rt, want, got)
	})
}

func TestMaxSampleValue(t *testing.T) {
	assert.Equal(t, 32767, dsp.MaxSampleValue(16))
	assert.Equal(t, 127, dsp.MaxSampleValue(8))
}

func TestClampInt16(t *testing.T) {
	assert.Equal(t, int16(32767), dsp.ClampInt16(40000))
	assert.Equal(t, int16(-32768), dsp.ClampInt16(-40000))
	assert.Equal(t, int16(100), dsp.ClampInt16(100))
}
