// fir_simd.go - FIR convolution laid out as an independent sliding-window
// dot product per lane, the shape a vectorized backend would want: each
// of the W output samples is computed from a contiguous slice of recent
// history with no dependency on the other lanes in the same block.

package dsp

// FIRSimd is convolution-equivalent to FIR. Where FIR threads a single
// ring buffer sample-by-sample, FIRSimd keeps only the T-1 sample tail
// needed to seed the next block, concatenates it with the incoming block,
// and computes every lane's convolution window independently out of that
// combined buffer - the access pattern a SIMD gather/dot over aligned
// lanes would use.
type FIRSimd struct {
	Base
	taps          int
	coeffs        []Real
	tailRe, tailIm []Real // last (taps-1) samples carried into the next block
	isComplex     bool
}

func newFIRSimd(sampleRate int, coeffs []Real, kind outputKind) *FIRSimd {
	t := len(coeffs)
	tailLen := t - 1
	if tailLen < 0 {
		tailLen = 0
	}
	f := &FIRSimd{
		Base:      NewBase(sampleRate, kind),
		taps:      t,
		coeffs:    append([]Real(nil), coeffs...),
		tailRe:    make([]Real, tailLen),
		isComplex: kind == KindComplex,
	}
	if f.isComplex {
		f.tailIm = make([]Real, tailLen)
	}
	f.addInput()
	return f
}

// NewFIRSimdReal builds a Real-in/Real-out FIRSimd with the given taps.
func NewFIRSimdReal(sampleRate int, coeffs []Real) *FIRSimd {
	return newFIRSimd(sampleRate, coeffs, KindReal)
}

// NewFIRSimdComplex builds a Complex-in/Complex-out FIRSimd, applying the
// same real-valued tap weights independently to each rail.
func NewFIRSimdComplex(sampleRate int, coeffs []Real) *FIRSimd {
	return newFIRSimd(sampleRate, coeffs, KindComplex)
}

// BindInputSignal wires the signal to filter.
func (f *FIRSimd) BindInputSignal(src Node, srcOut int) {
	BindInput(f, 0, src, srcOut)
}

// SetCoefficients replaces the tap weights and clears the delay tail. The
// new slice must have the same length as the filter's declared tap count.
func (f *FIRSimd) SetCoefficients(h []Real) error {
	if len(h) != f.taps {
		return ErrBadCoefficientCount
	}
	copy(f.coeffs, h)
	for i := range f.tailRe {
		f.tailRe[i] = 0
	}
	for i := range f.tailIm {
		f.tailIm[i] = 0
	}
	return nil
}

// convolveLane computes one output sample from combined[tailLen+i-k] for
// k in 0..taps-1, where combined = tail ++ block.
func (f *FIRSimd) convolveLane(combined []Real, tailLen, i int) Real {
	var acc Real
	base := tailLen + i
	for k := 0; k < f.taps; k++ {
		acc += f.coeffs[k] * combined[base-k]
	}
	return acc
}

func (f *FIRSimd) runRail(tail *[]Real, block RealVec) RealVec {
	tailLen := len(*tail)
	combined := make([]Real, tailLen+W)
	copy(combined, *tail)
	copy(combined[tailLen:], block[:])

	var out RealVec
	for i := 0; i < W; i++ {
		out[i] = f.convolveLane(combined, tailLen, i)
	}

	if tailLen > 0 {
		*tail = append((*tail)[:0], combined[len(combined)-tailLen:]...)
	}
	return out
}

// Update convolves the next W input samples, one independent lane at a
// time, against the tap weights.
func (f *FIRSimd) Update() {
	if f.isComplex {
		re, im := f.readComplex(0)
		outRe := f.runRail(&f.tailRe, re)
		outIm := f.runRail(&f.tailIm, im)
		f.setComplex(0, outRe, outIm)
		return
	}
	x := f.readReal(0)
	f.setReal(0, f.runRail(&f.tailRe, x))
}
