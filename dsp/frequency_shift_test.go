package dsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intuitionamiga/blockdsp/dsp"
)

func TestFrequencyShiftReal(t *testing.T) {
	in := dsp.NewVectorInputReal(2, []dsp.Real{1, -1, 1, -1})
	shift := dsp.NewFrequencyShiftReal(2, -1)
	shift.BindInputSignal(in, 0)
	out := dsp.NewVectorOutputComplex(2)
	out.BindInputSignal(shift, 0)

	g, err := dsp.NewGraph(in, shift, out)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		g.Tick()
	}

	re, im := out.StoredComplex()
	require.Len(t, re, 16)
	for i := range re {
		assert.InDelta(t, 1.0, re[i], 1e-9, "re %d", i)
		assert.InDelta(t, 0.0, im[i], 1e-9, "im %d", i)
	}
}
