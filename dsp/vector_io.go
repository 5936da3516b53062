// vector_io.go - in-memory looping source and growing sink nodes

package dsp

// VectorInput replays an owned sample vector in a loop, W samples per
// block.
type VectorInput struct {
	Base
	re, im   []Real
	cursor   int
	isComplex bool
}

// NewVectorInputReal builds a looping Real source over samples.
func NewVectorInputReal(sampleRate int, samples []Real) *VectorInput {
	return &VectorInput{
		Base: NewBase(sampleRate, KindReal),
		re:   samples,
	}
}

// NewVectorInputComplex builds a looping Complex source over paired
// real/imag samples; both slices must be the same, non-zero length.
func NewVectorInputComplex(sampleRate int, re, im []Real) *VectorInput {
	return &VectorInput{
		Base:      NewBase(sampleRate, KindComplex),
		re:        re,
		im:        im,
		isComplex: true,
	}
}

// Update emits the next W samples starting at the cursor, wrapping.
func (v *VectorInput) Update() {
	n := len(v.re)
	var outRe, outIm RealVec
	for i := 0; i < W; i++ {
		idx := (v.cursor + i) % n
		outRe[i] = v.re[idx]
		if v.isComplex {
			outIm[i] = v.im[idx]
		}
	}
	v.cursor = (v.cursor + W) % n
	if v.isComplex {
		v.setComplex(0, outRe, outIm)
	} else {
		v.setReal(0, outRe)
	}
}

// VectorOutput accumulates every emitted block into an owned, growing
// vector.
type VectorOutput struct {
	Base
	re, im    []Real
	isComplex bool
}

func newVectorOutput(sampleRate int, kind outputKind) *VectorOutput {
	o := &VectorOutput{Base: NewBase(sampleRate, kind), isComplex: kind == KindComplex}
	o.addInput()
	return o
}

// NewVectorOutputReal builds a Real-input sink.
func NewVectorOutputReal(sampleRate int) *VectorOutput {
	return newVectorOutput(sampleRate, KindReal)
}

// NewVectorOutputComplex builds a Complex-input sink.
func NewVectorOutputComplex(sampleRate int) *VectorOutput {
	return newVectorOutput(sampleRate, KindComplex)
}

// BindInputSignal wires the signal to record.
func (o *VectorOutput) BindInputSignal(src Node, srcOut int) {
	BindInput(o, 0, src, srcOut)
}

// Update appends the next W samples to the stored vector(s).
func (o *VectorOutput) Update() {
	if o.isComplex {
		re, im := o.readComplex(0)
		o.re = append(o.re, re[:]...)
		o.im = append(o.im, im[:]...)
		return
	}
	re := o.readReal(0)
	o.re = append(o.re, re[:]...)
}

// Stored returns a read-only view of the recorded Real rail.
func (o *VectorOutput) Stored() []Real { return o.re }

// StoredComplex returns read-only views of the recorded real and
// imaginary rails.
func (o *VectorOutput) StoredComplex() ([]Real, []Real) { return o.re, o.im }
