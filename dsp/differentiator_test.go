package dsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intuitionamiga/blockdsp/dsp"
)

func TestDifferentiatorOfConstantIsZero(t *testing.T) {
	in := dsp.NewVectorInputReal(1, []dsp.Real{5, 5, 5, 5})
	d := dsp.NewDifferentiatorReal(1)
	d.BindInputSignal(in, 0)
	out := dsp.NewVectorOutputReal(1)
	out.BindInputSignal(d, 0)

	g, err := dsp.NewGraph(in, d, out)
	require.NoError(t, err)
	g.Tick()
	g.Tick()

	got := out.Stored()
	// First sample reflects the jump from the zero-initialized previous
	// sample to 5; every sample after that is a flat run, so its
	// difference is zero.
	for i := 1; i < len(got); i++ {
		assert.InDelta(t, 0.0, got[i], 1e-9, "sample %d", i)
	}
}

func TestDifferentiatorOfRampIsConstant(t *testing.T) {
	in := dsp.NewVectorInputReal(1, []dsp.Real{0, 1, 2, 3, 4, 5, 6, 7})
	d := dsp.NewDifferentiatorReal(1)
	d.BindInputSignal(in, 0)
	out := dsp.NewVectorOutputReal(1)
	out.BindInputSignal(d, 0)

	g, err := dsp.NewGraph(in, d, out)
	require.NoError(t, err)
	g.Tick()
	g.Tick()

	got := out.Stored()
	want := (1.0) / (2 * 3.14159265358979323846)
	for i := 1; i < len(got); i++ {
		assert.InDelta(t, want, got[i], 1e-6, "sample %d", i)
	}
}
