//go:build !noassert

// assert_on.go - output-kind assertions enabled (default build)

package dsp

// AssertOutputKind is true unless the module is built with -tags noassert.
const AssertOutputKind = true

func checkKind(got, want outputKind) {
	if got != want {
		panic(ErrKindMismatch)
	}
}
