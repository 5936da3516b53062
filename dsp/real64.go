//go:build !single

// real64.go - double-precision Real type (default build)

package dsp

// Real is the sample/coefficient precision used throughout the graph.
// Build with -tags single to switch to float32.
type Real = float64
