package dsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/intuitionamiga/blockdsp/dsp"
)

func TestFrequencyGeneratorReal(t *testing.T) {
	gen := dsp.NewFrequencyGeneratorReal(1, 0.25, 10, math.Pi)
	out := dsp.NewVectorOutputReal(1)
	out.BindInputSignal(gen, 0)
	g, err := dsp.NewGraph(gen, out)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		g.Tick()
	}

	want := []dsp.Real{
		-10, 0, 10, 0,
		-10, 0, 10, 0,
		-10, 0, 10, 0,
		-10, 0, 10, 0,
	}
	got := out.Stored()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "sample %d", i)
	}
}

func TestFrequencyGeneratorComplex(t *testing.T) {
	gen := dsp.NewFrequencyGeneratorComplex(1, 0.25, 10, math.Pi)
	out := dsp.NewVectorOutputComplex(1)
	out.BindInputSignal(gen, 0)
	g, err := dsp.NewGraph(gen, out)
	require.NoError(t, err)

	g.Tick()

	wantRe := []dsp.Real{-10, 0, 10, 0}
	wantIm := []dsp.Real{0, -10, 0, 10}
	gotRe, gotIm := out.StoredComplex()
	for i := range wantRe {
		assert.InDelta(t, wantRe[i], gotRe[i], 1e-9, "re %d", i)
		assert.InDelta(t, wantIm[i], gotIm[i], 1e-9, "im %d", i)
	}
}

// TestFrequencyGeneratorPhaseBounded checks that a unit-amplitude
// generator's output stays within [-1, 1] over many ticks, for random
// sample rates and frequencies up to Nyquist. The phase accumulator itself
// is not visible from this package, so only its output is checked.
func TestFrequencyGeneratorPhaseBounded(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		sampleRate := rapid.IntRange(1, 48000).Draw(rt, "sampleRate")
		f := rapid.Float64Range(0, float64(sampleRate)/2).Draw(rt, "f")
		gen := dsp.NewFrequencyGeneratorReal(sampleRate, dsp.Real(f), 1, 0)
		out := dsp.NewVectorOutputReal(sampleRate)
		out.BindInputSignal(gen, 0)
		g, err := dsp.NewGraph(gen, out)
		require.NoError(rt, err)
		for i := 0; i < 50; i++ {
			g.Tick()
		}
		for _, s := range out.Stored() {
			assert.LessOrEqual(rt, math.Abs(float64(s)), 1.0+1e-6)
		}
	})
}
