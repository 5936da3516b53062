package dsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intuitionamiga/blockdsp/dsp"
)

// TestFrequencyModulatorZeroModulationMatchesCarrier checks that with a
// zero modulating signal, the FM output is indistinguishable from a plain
// carrier sinusoid at the same frequency.
func TestFrequencyModulatorZeroModulationMatchesCarrier(t *testing.T) {
	const sampleRate = 8
	mod := dsp.NewVectorInputReal(sampleRate, []dsp.Real{0, 0, 0, 0})
	fm := dsp.NewFrequencyModulatorReal(sampleRate, 1, 100, 1)
	fm.BindModulator(mod, 0)
	fmOut := dsp.NewVectorOutputReal(sampleRate)
	fmOut.BindInputSignal(fm, 0)

	carrier := dsp.NewFrequencyGeneratorReal(sampleRate, 1, 1, 0)
	carOut := dsp.NewVectorOutputReal(sampleRate)
	carOut.BindInputSignal(carrier, 0)

	g, err := dsp.NewGraph(mod, fm, fmOut, carrier, carOut)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		g.Tick()
	}

	got := fmOut.Stored()
	want := carOut.Stored()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "sample %d", i)
	}
}
