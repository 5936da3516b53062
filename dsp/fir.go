// fir.go - scalar FIR convolution, the behavioural reference for FIRSimd

package dsp

// FIR computes y[n] = sum_{k=0}^{T-1} h[k]*x[n-k] using a circular delay
// line per rail. It is the simplest correct implementation and is used as
// the cross-check reference for FIRSimd.
type FIR struct {
	Base
	coeffs    []Real
	delayRe   *RingBuffer
	delayIm   *RingBuffer
	isComplex bool
}

func newFIR(sampleRate int, coeffs []Real, kind outputKind) *FIR {
	f := &FIR{
		Base:      NewBase(sampleRate, kind),
		coeffs:    append([]Real(nil), coeffs...),
		delayRe:   NewRingBuffer(len(coeffs)),
		isComplex: kind == KindComplex,
	}
	if f.isComplex {
		f.delayIm = NewRingBuffer(len(coeffs))
	}
	f.addInput()
	return f
}

// NewFIRReal builds a Real-in/Real-out FIR with the given taps.
func NewFIRReal(sampleRate int, coeffs []Real) *FIR {
	return newFIR(sampleRate, coeffs, KindReal)
}

// NewFIRComplex builds a Complex-in/Complex-out FIR with the given taps,
// applied independently to the real and imaginary rails.
func NewFIRComplex(sampleRate int, coeffs []Real) *FIR {
	return newFIR(sampleRate, coeffs, KindComplex)
}

// BindInputSignal wires the signal to filter.
func (f *FIR) BindInputSignal(src Node, srcOut int) {
	BindInput(f, 0, src, srcOut)
}

// SetCoefficients replaces the tap weights and clears the delay line. The
// new slice must have the same length as the filter's declared tap count.
func (f *FIR) SetCoefficients(h []Real) error {
	if len(h) != len(f.coeffs) {
		return ErrBadCoefficientCount
	}
	copy(f.coeffs, h)
	f.delayRe = NewRingBuffer(len(f.coeffs))
	if f.isComplex {
		f.delayIm = NewRingBuffer(len(f.coeffs))
	}
	return nil
}

func (f *FIR) dot(ring *RingBuffer) Real {
	var acc Real
	for k, h := range f.coeffs {
		acc += h * ring.At(k)
	}
	return acc
}

// Update pushes W new samples through the delay line(s) and emits their
// convolution against the tap weights.
func (f *FIR) Update() {
	if f.isComplex {
		re, im := f.readComplex(0)
		var outRe, outIm RealVec
		for i := 0; i < W; i++ {
			f.delayRe.Push(re[i])
			f.delayIm.Push(im[i])
			outRe[i] = f.dot(f.delayRe)
			outIm[i] = f.dot(f.delayIm)
		}
		f.setComplex(0, outRe, outIm)
		return
	}
	x := f.readReal(0)
	var out RealVec
	for i := 0; i < W; i++ {
		f.delayRe.Push(x[i])
		out[i] = f.dot(f.delayRe)
	}
	f.setReal(0, out)
}
