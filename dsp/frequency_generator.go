// frequency_generator.go - standalone sinusoid source, Real or Complex

package dsp

// FrequencyGenerator emits a sinusoid of frequency f and amplitude amp,
// as a Real cosine or a Complex (cos, sin) pair.
type FrequencyGenerator struct {
	Base
	amp   Real
	accum phaseAccum
}

// NewFrequencyGeneratorReal builds a one-output Real sinusoid source.
func NewFrequencyGeneratorReal(sampleRate int, f, amp, phi Real) *FrequencyGenerator {
	return &FrequencyGenerator{
		Base:  NewBase(sampleRate, KindReal),
		amp:   amp,
		accum: newPhaseAccum(sampleRate, f, phi),
	}
}

// NewFrequencyGeneratorComplex builds a one-output Complex sinusoid source.
func NewFrequencyGeneratorComplex(sampleRate int, f, amp, phi Real) *FrequencyGenerator {
	return &FrequencyGenerator{
		Base:  NewBase(sampleRate, KindComplex),
		amp:   amp,
		accum: newPhaseAccum(sampleRate, f, phi),
	}
}

// Update emits the next block then advances the phase accumulator.
func (g *FrequencyGenerator) Update() {
	phase := g.accum.current()
	switch g.OutputKind(0) {
	case KindReal:
		g.setReal(0, phase.CosPi().Scale(g.amp))
	case KindComplex:
		g.setComplex(0, phase.CosPi().Scale(g.amp), phase.SinPi().Scale(g.amp))
	}
	g.accum.advance()
}
