// frequency_shift.go - heterodyne mixer: shifts a signal's spectrum by deltaF

package dsp

// FrequencyShift multiplies a Real or Complex input by exp(j*2*pi*deltaF*t),
// shifting its spectrum by deltaF Hz. The output is always Complex.
type FrequencyShift struct {
	Base
	deltaF   Real
	dt       Real
	phase    RealVec // phase/pi per lane for the current block
	step     Real     // phase/pi advance per sample
	inputIsComplex bool
}

func newFrequencyShift(sampleRate int, deltaF Real, inputIsComplex bool) *FrequencyShift {
	dt := 1 / Real(sampleRate)
	step := 2 * deltaF * dt
	var phase RealVec
	for i := range phase {
		phase[i] = Real(i) * step
	}
	s := &FrequencyShift{
		Base:           NewBase(sampleRate, KindComplex),
		deltaF:         deltaF,
		dt:             dt,
		phase:          phase,
		step:           step,
		inputIsComplex: inputIsComplex,
	}
	s.addInput()
	return s
}

// NewFrequencyShiftReal builds a shifter whose input is a Real signal.
func NewFrequencyShiftReal(sampleRate int, deltaF Real) *FrequencyShift {
	return newFrequencyShift(sampleRate, deltaF, false)
}

// NewFrequencyShiftComplex builds a shifter whose input is a Complex signal.
func NewFrequencyShiftComplex(sampleRate int, deltaF Real) *FrequencyShift {
	return newFrequencyShift(sampleRate, deltaF, true)
}

// BindInputSignal wires the signal to be shifted.
func (s *FrequencyShift) BindInputSignal(src Node, srcOut int) {
	BindInput(s, 0, src, srcOut)
}

// Update mixes the input block against the rotating local oscillator then
// advances and reduces the phase.
func (s *FrequencyShift) Update() {
	cosP := s.phase.CosPi()
	sinP := s.phase.SinPi()

	if s.inputIsComplex {
		re, im := s.readComplex(0)
		s.setComplex(0, cosP.Mul(re).Add(sinP.Mul(im).Scale(-1)), sinP.Mul(re).Add(cosP.Mul(im)))
	} else {
		x := s.readReal(0)
		s.setComplex(0, cosP.Mul(x), sinP.Mul(x))
	}

	var next RealVec
	for i := range s.phase {
		next[i] = s.phase[i] + Real(W)*s.step
	}
	mid := next[W/2]
	if mid >= 2 || mid <= -2 {
		k := Real(int(mid / 2))
		for i := range next {
			next[i] -= 2 * k
		}
	}
	s.phase = next
}
