package dsp_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intuitionamiga/blockdsp/dsp"
)

func TestRiffWaveOutputThenInputRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gen.wav")

	const sampleRate = 8000
	gen := dsp.NewFrequencyGeneratorReal(sampleRate, 200, 1, 0)
	w, err := dsp.NewRiffWaveOutputReal(sampleRate, path, 1.0)
	require.NoError(t, err)
	w.BindInputSignal(gen, 0)
	ref := dsp.NewVectorOutputReal(sampleRate)
	ref.BindInputSignal(gen, 0)

	g, err := dsp.NewGraph(gen, w, ref)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		g.Tick()
	}
	require.NoError(t, w.Close())

	in, err := dsp.NewRiffWaveInputReal(path)
	require.NoError(t, err)
	defer in.Close()

	assert.Equal(t, 1, in.NumOutputs())
	out := dsp.NewVectorOutputReal(sampleRate)
	out.BindInputSignal(in, 0)
	g2, err := dsp.NewGraph(in, out)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		g2.Tick()
	}

	got := out.Stored()
	require.Len(t, got, 20*dsp.W)
	// Round-tripping through 16-bit PCM loses fine precision but should
	// stay close to the original normalized signal.
	want := ref.Stored()
	for i := range got {
		assert.InDelta(t, want[i], got[i], 1e-4)
	}
}
