// selftest.go - the -t/--test built-in checks, a runnable subset of the
// scenarios also covered by the dsp package's test suite

package main

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/intuitionamiga/blockdsp/dsp"
)

func almostEqual(a, b dsp.Real) bool {
	return math.Abs(float64(a-b)) < 1e-9
}

// selfTest runs a handful of the scenarios from the property suite as a
// quick smoke test, independent of `go test`.
func selfTest(logger *log.Logger) error {
	logger.Info("running vector input/output scenario")
	if err := testVectorIO(); err != nil {
		return err
	}
	logger.Info("running frequency generator scenario")
	if err := testFrequencyGenerator(); err != nil {
		return err
	}
	logger.Info("running scalar FIR scenario")
	if err := testFIR(); err != nil {
		return err
	}
	return nil
}

func testVectorIO() error {
	in := dsp.NewVectorInputReal(1, []dsp.Real{0, 1, 2, 3, 4, 5, 6, 7})
	out := dsp.NewVectorOutputReal(1)
	out.BindInputSignal(in, 0)
	graph, err := dsp.NewGraph(in, out)
	if err != nil {
		return err
	}
	for i := 0; i < 4; i++ {
		graph.Tick()
	}
	want := []dsp.Real{0, 1, 2, 3, 4, 5, 6, 7, 0, 1, 2, 3, 4, 5, 6, 7}
	got := out.Stored()
	if len(got) != len(want) {
		return fmt.Errorf("vector io: got %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			return fmt.Errorf("vector io: sample %d = %v, want %v", i, got[i], want[i])
		}
	}
	return nil
}

func testFrequencyGenerator() error {
	gen := dsp.NewFrequencyGeneratorReal(1, 0.25, 10, math.Pi)
	out := dsp.NewVectorOutputReal(1)
	out.BindInputSignal(gen, 0)
	graph, err := dsp.NewGraph(gen, out)
	if err != nil {
		return err
	}
	for i := 0; i < 4; i++ {
		graph.Tick()
	}
	want := []dsp.Real{-10, 0, 10, 0}
	got := out.Stored()
	for i := 0; i < 4; i++ {
		if !almostEqual(got[i], want[i]) {
			return fmt.Errorf("frequency generator: sample %d = %v, want %v", i, got[i], want[i])
		}
	}
	return nil
}

func testFIR() error {
	fir := dsp.NewFIRReal(1, []dsp.Real{1, 0, -1})
	in := dsp.NewVectorInputReal(1, []dsp.Real{
		0, 0, 0, 0,
		0.5, 1, 1.5, 2,
		1.75, 1.5, 1.25, 1,
		0.75, 0.5, 0.25, 0,
	})
	fir.BindInputSignal(in, 0)
	out := dsp.NewVectorOutputReal(1)
	out.BindInputSignal(fir, 0)
	graph, err := dsp.NewGraph(in, fir, out)
	if err != nil {
		return err
	}
	for i := 0; i < 4; i++ {
		graph.Tick()
	}
	want := []dsp.Real{
		0, 0, 0, 0,
		0.5, 1, 1, 1,
		0.25, -0.5, -0.5, -0.5,
		-0.5, -0.5, -0.5, -0.5,
	}
	got := out.Stored()
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			return fmt.Errorf("fir: sample %d = %v, want %v", i, got[i], want[i])
		}
	}
	return nil
}
