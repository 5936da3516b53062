// frequency_modulator.go - carrier whose instantaneous frequency is swept
// by a Real input signal, carrier and bandwidth both expressed in Hz

package dsp

// FrequencyModulator integrates f + m(t)*bandwidth sample-by-sample
// within each block to produce a phase-continuous FM carrier. Both the
// carrier frequency and the bandwidth are Hz, matching the single-unit
// convention chosen for this implementation (see frequency modulator
// design notes).
type FrequencyModulator struct {
	Base
	f, bandwidth, amp Real
	dt                Real
	carry             Real // carryover phase/pi from the previous block
}

func newFrequencyModulator(sampleRate int, f, bandwidth, amp Real, kind outputKind) *FrequencyModulator {
	m := &FrequencyModulator{
		Base:      NewBase(sampleRate, kind),
		f:         f,
		bandwidth: bandwidth,
		amp:       amp,
		dt:        1 / Real(sampleRate),
	}
	m.addInput()
	return m
}

// NewFrequencyModulatorReal builds a Real-output frequency modulator.
func NewFrequencyModulatorReal(sampleRate int, f, bandwidth, amp Real) *FrequencyModulator {
	return newFrequencyModulator(sampleRate, f, bandwidth, amp, KindReal)
}

// NewFrequencyModulatorComplex builds a Complex-output frequency modulator.
func NewFrequencyModulatorComplex(sampleRate int, f, bandwidth, amp Real) *FrequencyModulator {
	return newFrequencyModulator(sampleRate, f, bandwidth, amp, KindComplex)
}

// BindModulator wires the modulating Real input.
func (m *FrequencyModulator) BindModulator(src Node, srcOut int) {
	BindInput(m, 0, src, srcOut)
}

// Update runs the per-sample phase recurrence then emits the block.
func (m *FrequencyModulator) Update() {
	mod := m.readReal(0)
	var phase RealVec
	phase[0] = m.carry
	for i := 1; i < W; i++ {
		phase[i] = phase[i-1] + 2*(m.f+mod[i-1]*m.bandwidth)*m.dt
	}
	m.carry = phase[W-1] + 2*(m.f+mod[W-1]*m.bandwidth)*m.dt
	if phase[0] > 1 {
		for i := range phase {
			phase[i] -= 2
		}
		m.carry -= 2
	}
	switch m.OutputKind(0) {
	case KindReal:
		m.setReal(0, phase.CosPi().Scale(m.amp))
	case KindComplex:
		m.setComplex(0, phase.CosPi().Scale(m.amp), phase.SinPi().Scale(m.amp))
	}
}
