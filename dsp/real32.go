//go:build single

// real32.go - single-precision Real type, selected with -tags single

package dsp

// Real is the sample/coefficient precision used throughout the graph.
type Real = float32
