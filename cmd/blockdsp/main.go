// main.go - command-line demo and self-test harness for the blockdsp graph

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"
	"github.com/spf13/pflag"

	"github.com/intuitionamiga/blockdsp/dsp"
)

var (
	runTests    bool
	outputPath  string
	durationS   int
	namePattern string
)

func init() {
	pflag.BoolVarP(&runTests, "test", "t", false, "run the built-in self tests and exit")
	pflag.StringVarP(&outputPath, "output", "o", "", "output WAVE file path (default derived from --name-pattern)")
	pflag.IntVarP(&durationS, "duration", "d", 300, "pipeline duration in seconds")
	pflag.StringVar(&namePattern, "name-pattern", "modified-%Y%m%d-%H%M%S.wav", "strftime pattern used to derive --output when it is not set")
	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, "blockdsp - a block-oriented DSP graph demo")
		pflag.PrintDefaults()
	}
}

// defaultOutputPath expands namePattern with the current time using
// strftime, so repeated demo runs don't clobber each other's output.
func defaultOutputPath(pattern string, at time.Time) (string, error) {
	f, err := strftime.New(pattern)
	if err != nil {
		return "", fmt.Errorf("name pattern: %w", err)
	}
	return f.FormatString(at), nil
}

func main() {
	pflag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "blockdsp"})

	if outputPath == "" {
		path, err := defaultOutputPath(namePattern, time.Now())
		if err != nil {
			logger.Error("bad name pattern", "err", err)
			os.Exit(1)
		}
		outputPath = path
	}

	if runTests {
		if err := selfTest(logger); err != nil {
			logger.Error("self test failed", "err", err)
			os.Exit(1)
		}
		logger.Info("self test passed")
		return
	}

	if err := runDemo(logger, outputPath, durationS); err != nil {
		logger.Error("demo pipeline failed", "err", err)
		os.Exit(1)
	}
	logger.Info("wrote output", "path", outputPath)
}

// runDemo wires a frequency generator through a frequency shifter into a
// WAVE sink, mirroring the reference 100 Hz carrier shifted by -100 Hz.
func runDemo(logger *log.Logger, path string, seconds int) error {
	const sampleRate = 44100
	gen := dsp.NewFrequencyGeneratorComplex(sampleRate, 100, 1, 0)
	shift := dsp.NewFrequencyShiftComplex(sampleRate, -100)
	shift.BindInputSignal(gen, 0)

	out, err := dsp.NewRiffWaveOutputComplex(sampleRate, path, 0.9)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	out.BindInputSignal(shift, 0)

	graph, err := dsp.NewGraph(gen, shift, out)
	if err != nil {
		return fmt.Errorf("build graph: %w", err)
	}

	ticks := (seconds * sampleRate) / dsp.W
	logger.Info("running pipeline", "seconds", seconds, "ticks", ticks)
	for t := 0; t < ticks; t++ {
		graph.Tick()
	}
	return out.Close()
}
