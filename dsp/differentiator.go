// differentiator.go - first-difference filter scaled to preserve amplitude

package dsp

// Differentiator computes (x[n] - x[n-1]) * sampleRate/(2*pi), so that a
// unit-amplitude sinusoid at frequency f emits amplitude f.
type Differentiator struct {
	Base
	scale      Real
	prevRe     Real
	prevIm     Real
	isComplex  bool
}

func newDifferentiator(sampleRate int, kind outputKind) *Differentiator {
	d := &Differentiator{
		Base:      NewBase(sampleRate, kind),
		scale:     Real(sampleRate) / (2 * piReal),
		isComplex: kind == KindComplex,
	}
	d.addInput()
	return d
}

// NewDifferentiatorReal builds a Real-in/Real-out differentiator.
func NewDifferentiatorReal(sampleRate int) *Differentiator {
	return newDifferentiator(sampleRate, KindReal)
}

// NewDifferentiatorComplex builds a Complex-in/Complex-out differentiator.
func NewDifferentiatorComplex(sampleRate int) *Differentiator {
	return newDifferentiator(sampleRate, KindComplex)
}

// BindInputSignal wires the signal to differentiate.
func (d *Differentiator) BindInputSignal(src Node, srcOut int) {
	BindInput(d, 0, src, srcOut)
}

// Update computes the scaled first difference, sample by sample.
func (d *Differentiator) Update() {
	if d.isComplex {
		re, im := d.readComplex(0)
		var outRe, outIm RealVec
		for i := 0; i < W; i++ {
			outRe[i] = (re[i] - d.prevRe) * d.scale
			outIm[i] = (im[i] - d.prevIm) * d.scale
			d.prevRe, d.prevIm = re[i], im[i]
		}
		d.setComplex(0, outRe, outIm)
		return
	}
	x := d.readReal(0)
	var out RealVec
	for i := 0; i < W; i++ {
		out[i] = (x[i] - d.prevRe) * d.scale
		d.prevRe = x[i]
	}
	d.setReal(0, out)
}
