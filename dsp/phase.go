// phase.go - shared block-wise phase/pi accumulation for the generators

package dsp

// phaseAccum tracks a normalized phase (theta/pi, one period = 2) across
// blocks for a fixed per-sample increment.
type phaseAccum struct {
	phase RealVec // phase/pi of each lane in the current block
	step  Real    // normalized phase/pi advance per sample
}

// newPhaseAccum seeds the accumulator for frequency f (Hz) at the given
// sample rate, offset by phi (radians).
func newPhaseAccum(sampleRate int, f, phi Real) phaseAccum {
	dt := 1 / Real(sampleRate)
	step := 2 * f * dt
	var p RealVec
	for i := range p {
		p[i] = f*2*Real(i)*dt + phi/piReal
	}
	return phaseAccum{phase: p, step: step}
}

// current returns the phase for the block about to be emitted.
func (a *phaseAccum) current() RealVec { return a.phase }

// advance moves the accumulator forward by one block (W samples) and
// reduces by a full period when lane 0 has wrapped past it.
func (a *phaseAccum) advance() {
	var next RealVec
	for i := range a.phase {
		next[i] = a.phase[i] + Real(W)*a.step
	}
	if next[0] > 1 {
		for i := range next {
			next[i] -= 2
		}
	}
	a.phase = next
}

const piReal = Real(3.14159265358979323846)
