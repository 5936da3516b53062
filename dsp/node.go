// node.go - the node base contract: output buffers, input wiring, Update

package dsp

import "fmt"

type outputKind int

const (
	// KindReal marks an output slot whose imaginary rail is unused.
	KindReal outputKind = iota
	// KindComplex marks an output slot with both real and imaginary rails.
	KindComplex
)

type output struct {
	kind outputKind
	re   RealVec
	im   RealVec
}

// inputRef names one producer output a node reads from.
type inputRef struct {
	src    Node
	outIdx int
	bound  bool
}

// Node is implemented by every filter in the graph. Update advances the
// node by exactly one block; it must be called in an order that respects
// the input dependency DAG (see Graph).
type Node interface {
	Update()
	SampleRate() int
	NumOutputs() int
	OutputKind(i int) outputKind
	NumInputs() int
	inputSource(i int) (Node, int, bool)
	bindInput(i int, src Node, srcOut int)
}

// Base is embedded by every concrete node type. It owns the node's output
// buffers and its input wiring, and implements the bookkeeping half of the
// Node interface; concrete types supply Update.
type Base struct {
	sampleRate int
	dt         Real
	outputs    []output
	inputs     []inputRef
}

// NewBase constructs a node base with the given sample rate and output
// kinds, one output slot per entry in kinds.
func NewBase(sampleRate int, kinds ...outputKind) Base {
	if sampleRate <= 0 {
		panic(fmt.Errorf("dsp: sample rate must be positive, got %d", sampleRate))
	}
	outs := make([]output, len(kinds))
	for i, k := range kinds {
		outs[i] = output{kind: k}
	}
	return Base{
		sampleRate: sampleRate,
		dt:         1 / Real(sampleRate),
		outputs:    outs,
	}
}

// SampleRate returns the node's configured sample rate in Hz.
func (b *Base) SampleRate() int { return b.sampleRate }

// Nyquist returns half the sample rate.
func (b *Base) Nyquist() Real { return Real(b.sampleRate) / 2 }

// Dt returns 1/sampleRate.
func (b *Base) Dt() Real { return b.dt }

// NumOutputs returns the number of output slots.
func (b *Base) NumOutputs() int { return len(b.outputs) }

// OutputKind reports whether output i is Real or Complex.
func (b *Base) OutputKind(i int) outputKind { return b.outputs[i].kind }

// Real returns a copy of output i's real rail, asserting it is a Real
// output when AssertOutputKind is enabled.
func (b *Base) Real(i int) RealVec {
	checkKind(b.outputs[i].kind, KindReal)
	return b.outputs[i].re
}

// Complex returns a copy of output i's real and imaginary rails,
// asserting it is a Complex output when AssertOutputKind is enabled.
func (b *Base) Complex(i int) (RealVec, RealVec) {
	checkKind(b.outputs[i].kind, KindComplex)
	return b.outputs[i].re, b.outputs[i].im
}

func (b *Base) setReal(i int, v RealVec) {
	b.outputs[i].re = v
}

func (b *Base) setComplex(i int, re, im RealVec) {
	b.outputs[i].re = re
	b.outputs[i].im = im
}

// addInput appends an unbound input slot and returns its index.
func (b *Base) addInput() int {
	b.inputs = append(b.inputs, inputRef{})
	return len(b.inputs) - 1
}

// NumInputs returns the number of input slots.
func (b *Base) NumInputs() int { return len(b.inputs) }

func (b *Base) inputSource(i int) (Node, int, bool) {
	r := b.inputs[i]
	return r.src, r.outIdx, r.bound
}

func (b *Base) bindInput(i int, src Node, srcOut int) {
	b.inputs[i] = inputRef{src: src, outIdx: srcOut, bound: true}
}

// readReal fetches the current block of input slot i as a Real vector,
// panicking with ErrUnboundInput if the slot was never bound.
func (b *Base) readReal(i int) RealVec {
	src, idx, bound := b.inputSource(i)
	if !bound {
		panic(ErrUnboundInput)
	}
	if rb, ok := src.(interface{ Real(int) RealVec }); ok {
		return rb.Real(idx)
	}
	panic(ErrKindMismatch)
}

// readComplex fetches the current block of input slot i as a Complex pair.
func (b *Base) readComplex(i int) (RealVec, RealVec) {
	src, idx, bound := b.inputSource(i)
	if !bound {
		panic(ErrUnboundInput)
	}
	if cb, ok := src.(interface {
		Complex(int) (RealVec, RealVec)
	}); ok {
		return cb.Complex(idx)
	}
	panic(ErrKindMismatch)
}

// BindInput wires input slot i of n to read output srcOut of src. Binding
// is only valid between ticks.
func BindInput(n Node, i int, src Node, srcOut int) {
	n.bindInput(i, src, srcOut)
}
