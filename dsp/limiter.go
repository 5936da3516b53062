// limiter.go - tanh-curve soft limiter, adapted from a lookup-table
// saturation stage for a fixed-point synthesis engine into a Kind-tagged
// graph node operating on Real/Complex blocks.

package dsp

import "math"

const (
	limiterLUTSize = 4096
	limiterLUTMin  = Real(-4.0)
	limiterLUTMax  = Real(4.0)
)

var limiterLUT [limiterLUTSize]Real

func init() {
	for i := 0; i < limiterLUTSize; i++ {
		x := limiterLUTMin + Real(i)*(limiterLUTMax-limiterLUTMin)/Real(limiterLUTSize-1)
		limiterLUT[i] = Real(math.Tanh(float64(x)))
	}
}

// softClip returns tanh(x) via linear interpolation into a precomputed
// table, saturating to +/-1 outside [-4, 4].
func softClip(x Real) Real {
	if x <= limiterLUTMin {
		return -1
	}
	if x >= limiterLUTMax {
		return 1
	}
	scale := Real(limiterLUTSize-1) / (limiterLUTMax - limiterLUTMin)
	idxF := (x - limiterLUTMin) * scale
	idx := int(idxF)
	if idx >= limiterLUTSize-1 {
		return limiterLUT[limiterLUTSize-1]
	}
	frac := idxF - Real(idx)
	return limiterLUT[idx] + frac*(limiterLUT[idx+1]-limiterLUT[idx])
}

// Limiter applies a tanh soft-clip curve to its input, useful as a final
// dampening stage ahead of a RiffWaveOutput to tame occasional
// out-of-range peaks without hard clipping.
type Limiter struct {
	Base
	drive     Real
	isComplex bool
}

func newLimiter(sampleRate int, drive Real, kind outputKind) *Limiter {
	l := &Limiter{Base: NewBase(sampleRate, kind), drive: drive, isComplex: kind == KindComplex}
	l.addInput()
	return l
}

// NewLimiterReal builds a Real-in/Real-out soft limiter. drive scales the
// input before the curve is applied; higher drive saturates sooner.
func NewLimiterReal(sampleRate int, drive Real) *Limiter {
	return newLimiter(sampleRate, drive, KindReal)
}

// NewLimiterComplex builds a Complex-in/Complex-out soft limiter, applying
// the curve independently to each rail.
func NewLimiterComplex(sampleRate int, drive Real) *Limiter {
	return newLimiter(sampleRate, drive, KindComplex)
}

// BindInputSignal wires the signal to limit.
func (l *Limiter) BindInputSignal(src Node, srcOut int) {
	BindInput(l, 0, src, srcOut)
}

// Update applies the soft-clip curve sample by sample.
func (l *Limiter) Update() {
	if l.isComplex {
		re, im := l.readComplex(0)
		var outRe, outIm RealVec
		for i := 0; i < W; i++ {
			outRe[i] = softClip(re[i] * l.drive)
			outIm[i] = softClip(im[i] * l.drive)
		}
		l.setComplex(0, outRe, outIm)
		return
	}
	x := l.readReal(0)
	var out RealVec
	for i := 0; i < W; i++ {
		out[i] = softClip(x[i] * l.drive)
	}
	l.setReal(0, out)
}
