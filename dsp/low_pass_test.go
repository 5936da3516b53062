package dsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intuitionamiga/blockdsp/dsp"
)

// TestLowPassAttenuatesHighFrequency checks that a low-pass filter below
// a tone's frequency leaves it with less energy than a tone well below
// cutoff, using the sum of squares over a settled window.
func TestLowPassAttenuatesHighFrequency(t *testing.T) {
	const sampleRate = 8000
	const taps = 63

	run := func(freq dsp.Real) dsp.Real {
		gen := dsp.NewFrequencyGeneratorReal(sampleRate, freq, 1, 0)
		lp := dsp.NewLowPass(sampleRate, taps, 500, dsp.Hamming)
		lp.BindInputSignal(gen, 0)
		out := dsp.NewVectorOutputReal(sampleRate)
		out.BindInputSignal(lp, 0)
		g, err := dsp.NewGraph(gen, lp, out)
		require.NoError(t, err)
		for i := 0; i < 100; i++ {
			g.Tick()
		}
		samples := out.Stored()
		tail := samples[len(samples)-dsp.W*20:]
		var sumSq dsp.Real
		for _, s := range tail {
			sumSq += s * s
		}
		return sumSq
	}

	low := run(100)
	high := run(3000)
	assert.Greater(t, low, high)
}
