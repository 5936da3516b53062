// riff_wave_io.go - bridge nodes between the RIFF/WAVE codec and the graph

package dsp

import (
	"fmt"
	"io"

	"github.com/intuitionamiga/blockdsp/wave"
)

// RiffWaveInput streams a WAVE file into the graph. A Real node emits one
// output per channel; a Complex node requires an even channel count and
// pairs channels (2k, 2k+1) into one Complex output each.
type RiffWaveInput struct {
	Base
	r        *wave.Reader
	maxValue Real
}

func newRiffWaveInput(path string, asComplex bool) (*RiffWaveInput, error) {
	r, err := wave.Open(path)
	if err != nil {
		return nil, err
	}
	ch := r.Channels()
	var kinds []outputKind
	if asComplex {
		if ch%2 != 0 {
			r.Close()
			return nil, fmt.Errorf("%w: %w", ErrChannelParity, wave.ErrUnsupportedFormat)
		}
		for i := 0; i < ch/2; i++ {
			kinds = append(kinds, KindComplex)
		}
	} else {
		for i := 0; i < ch; i++ {
			kinds = append(kinds, KindReal)
		}
	}
	in := &RiffWaveInput{
		Base:     NewBase(r.FrameRate(), kinds...),
		r:        r,
		maxValue: Real(MaxSampleValue(r.BitsPerSample())),
	}
	return in, nil
}

// NewRiffWaveInputReal opens path and exposes each channel as a Real output.
func NewRiffWaveInputReal(path string) (*RiffWaveInput, error) {
	return newRiffWaveInput(path, false)
}

// NewRiffWaveInputComplex opens path and pairs channels into Complex outputs.
func NewRiffWaveInputComplex(path string) (*RiffWaveInput, error) {
	return newRiffWaveInput(path, true)
}

// Update reads W frames and emits one normalized block per output.
func (in *RiffWaveInput) Update() {
	isComplex := in.NumOutputs() > 0 && in.OutputKind(0) == KindComplex
	numOut := in.NumOutputs()
	outsRe := make([]RealVec, numOut)
	outsIm := make([]RealVec, numOut)
	for i := 0; i < W; i++ {
		var frame []int16
		if !in.r.EOF() {
			f, err := in.r.ReadFrame()
			if err != nil && err != io.EOF {
				panic(fmt.Errorf("dsp: riff wave input read: %w", err))
			}
			frame = f
		} else {
			frame = make([]int16, in.r.Channels())
		}
		if isComplex {
			for k := 0; k < numOut; k++ {
				outsRe[k][i] = Real(frame[2*k]) / in.maxValue
				outsIm[k][i] = Real(frame[2*k+1]) / in.maxValue
			}
		} else {
			for k := 0; k < numOut; k++ {
				outsRe[k][i] = Real(frame[k]) / in.maxValue
			}
		}
	}
	for k := 0; k < numOut; k++ {
		if isComplex {
			in.setComplex(k, outsRe[k], outsIm[k])
		} else {
			in.setReal(k, outsRe[k])
		}
	}
}

// Close releases the underlying file.
func (in *RiffWaveInput) Close() error { return in.r.Close() }

// RiffWaveOutput writes a Real or Complex input signal to a WAVE file, one
// channel for Real, two (real, imag) for Complex.
type RiffWaveOutput struct {
	Base
	w               *wave.Writer
	dampeningFactor Real
	maxValue        Real
	isComplex       bool
}

func newRiffWaveOutput(sampleRate int, path string, dampeningFactor Real, asComplex bool) (*RiffWaveOutput, error) {
	channels := 1
	if asComplex {
		channels = 2
	}
	w, err := wave.NewWriter(path, channels, sampleRate)
	if err != nil {
		return nil, err
	}
	kind := KindReal
	if asComplex {
		kind = KindComplex
	}
	out := &RiffWaveOutput{
		Base:            NewBase(sampleRate, kind),
		w:               w,
		dampeningFactor: dampeningFactor,
		maxValue:        Real(MaxSampleValue(16)),
		isComplex:       asComplex,
	}
	out.addInput()
	return out, nil
}

// NewRiffWaveOutputReal opens path as a single-channel 16-bit PCM sink.
func NewRiffWaveOutputReal(sampleRate int, path string, dampeningFactor Real) (*RiffWaveOutput, error) {
	return newRiffWaveOutput(sampleRate, path, dampeningFactor, false)
}

// NewRiffWaveOutputComplex opens path as a two-channel 16-bit PCM sink.
func NewRiffWaveOutputComplex(sampleRate int, path string, dampeningFactor Real) (*RiffWaveOutput, error) {
	return newRiffWaveOutput(sampleRate, path, dampeningFactor, true)
}

// BindInputSignal wires the signal to record.
func (out *RiffWaveOutput) BindInputSignal(src Node, srcOut int) {
	BindInput(out, 0, src, srcOut)
}

// Update writes the next W frames to the file, scaled by the dampening
// factor and clamped to the representable 16-bit range.
func (out *RiffWaveOutput) Update() {
	if out.isComplex {
		re, im := out.readComplex(0)
		for i := 0; i < W; i++ {
			r := ClampInt16(re[i] * out.dampeningFactor * out.maxValue)
			m := ClampInt16(im[i] * out.dampeningFactor * out.maxValue)
			if err := out.w.WriteFrame([]int16{r, m}); err != nil {
				panic(fmt.Errorf("dsp: riff wave output write: %w", err))
			}
		}
		return
	}
	re := out.readReal(0)
	for i := 0; i < W; i++ {
		r := ClampInt16(re[i] * out.dampeningFactor * out.maxValue)
		if err := out.w.WriteFrame([]int16{r}); err != nil {
			panic(fmt.Errorf("dsp: riff wave output write: %w", err))
		}
	}
}

// Close rewrites the file's headers with their final sizes and closes it.
func (out *RiffWaveOutput) Close() error { return out.w.Close() }
