package dsp_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/intuitionamiga/blockdsp/dsp"
)

type scenario struct {
	Name         string     `yaml:"name"`
	Kind         string     `yaml:"kind"`
	SampleRate   int        `yaml:"sample_rate"`
	Ticks        int        `yaml:"ticks"`
	Frequency    dsp.Real   `yaml:"frequency"`
	Amplitude    dsp.Real   `yaml:"amplitude"`
	Phase        dsp.Real   `yaml:"phase"`
	Coefficients []dsp.Real `yaml:"coefficients"`
	Input        []dsp.Real `yaml:"input"`
	Want         []dsp.Real `yaml:"want"`
}

func loadScenarios(t *testing.T) []scenario {
	data, err := os.ReadFile("testdata/scenarios.yaml")
	require.NoError(t, err)
	var scenarios []scenario
	require.NoError(t, yaml.Unmarshal(data, &scenarios))
	return scenarios
}

func TestGoldenScenarios(t *testing.T) {
	for _, sc := range loadScenarios(t) {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			var got []dsp.Real
			switch sc.Kind {
			case "vector_input_output":
				in := dsp.NewVectorInputReal(sc.SampleRate, sc.Input)
				out := dsp.NewVectorOutputReal(sc.SampleRate)
				out.BindInputSignal(in, 0)
				g, err := dsp.NewGraph(in, out)
				require.NoError(t, err)
				for i := 0; i < sc.Ticks; i++ {
					g.Tick()
				}
				got = out.Stored()

			case "frequency_generator_real":
				gen := dsp.NewFrequencyGeneratorReal(sc.SampleRate, sc.Frequency, sc.Amplitude, sc.Phase)
				out := dsp.NewVectorOutputReal(sc.SampleRate)
				out.BindInputSignal(gen, 0)
				g, err := dsp.NewGraph(gen, out)
				require.NoError(t, err)
				for i := 0; i < sc.Ticks; i++ {
					g.Tick()
				}
				got = out.Stored()

			case "fir_real":
				in := dsp.NewVectorInputReal(sc.SampleRate, append(append([]dsp.Real(nil), sc.Input...), sc.Input...))
				fir := dsp.NewFIRReal(sc.SampleRate, sc.Coefficients)
				fir.BindInputSignal(in, 0)
				out := dsp.NewVectorOutputReal(sc.SampleRate)
				out.BindInputSignal(fir, 0)
				g, err := dsp.NewGraph(in, fir, out)
				require.NoError(t, err)
				for i := 0; i < sc.Ticks; i++ {
					g.Tick()
				}
				got = out.Stored()

			default:
				t.Fatalf("unknown scenario kind %q", sc.Kind)
			}

			require.Len(t, got, len(sc.Want))
			for i := range sc.Want {
				assert.InDelta(t, sc.Want[i], got[i], 1e-9, "sample %d", i)
			}
		})
	}
}
