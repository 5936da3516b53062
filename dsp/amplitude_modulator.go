// amplitude_modulator.go - carrier sinusoid scaled by a Real input signal

package dsp

// AmplitudeModulator multiplies a carrier sinusoid by a Real modulating
// input, expected in [-1, 1].
type AmplitudeModulator struct {
	Base
	amp   Real
	accum phaseAccum
}

func newAmplitudeModulator(sampleRate int, f, amp, phi Real, kind outputKind) *AmplitudeModulator {
	m := &AmplitudeModulator{
		Base:  NewBase(sampleRate, kind),
		amp:   amp,
		accum: newPhaseAccum(sampleRate, f, phi),
	}
	m.addInput()
	return m
}

// NewAmplitudeModulatorReal builds a Real-output amplitude modulator.
func NewAmplitudeModulatorReal(sampleRate int, f, amp, phi Real) *AmplitudeModulator {
	return newAmplitudeModulator(sampleRate, f, amp, phi, KindReal)
}

// NewAmplitudeModulatorComplex builds a Complex-output amplitude modulator.
func NewAmplitudeModulatorComplex(sampleRate int, f, amp, phi Real) *AmplitudeModulator {
	return newAmplitudeModulator(sampleRate, f, amp, phi, KindComplex)
}

// BindModulator wires the modulating Real input.
func (m *AmplitudeModulator) BindModulator(src Node, srcOut int) {
	BindInput(m, 0, src, srcOut)
}

// Update emits amp * m(t) * cos/sin(phase) then advances the phase.
func (m *AmplitudeModulator) Update() {
	mod := m.readReal(0)
	phase := m.accum.current()
	switch m.OutputKind(0) {
	case KindReal:
		m.setReal(0, phase.CosPi().Mul(mod).Scale(m.amp))
	case KindComplex:
		m.setComplex(0, phase.CosPi().Mul(mod).Scale(m.amp), phase.SinPi().Mul(mod).Scale(m.amp))
	}
	m.accum.advance()
}
