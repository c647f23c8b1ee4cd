// Command wfcbench profiles the propagator's hot loop against a
// synthetic checkerboard sample, grounded on shenwei356/wfa's
// benchmark/wfa-go.go use of github.com/pkg/profile.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mosaicwave/wfc/pattern"
	"github.com/mosaicwave/wfc/wfc"
	"github.com/pkg/profile"
)

func main() {
	mode := flag.String("profile", "cpu", "profile mode: cpu, mem, or none")
	width := flag.Int("width", 64, "output width")
	height := flag.Int("height", 64, "output height")
	n := flag.Int("n", 3, "pattern window size")
	runs := flag.Int("runs", 5, "number of synthesis runs to bench")
	flag.Parse()

	switch *mode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	case "none":
	default:
		fmt.Fprintf(os.Stderr, "wfcbench: unknown -profile mode %q\n", *mode)
		os.Exit(1)
	}

	sample := checkerboardSample(8)
	cfg := wfc.Config{
		N: *n, Width: *width, Height: *height,
		PeriodicInput: true, PeriodicOutput: true,
		Symmetry: 8, MaxAttempts: 20,
	}

	start := time.Now()
	for i := 0; i < *runs; i++ {
		cfg.Seed = int64(i + 1)
		if _, err := wfc.Run(context.Background(), sample, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "wfcbench: run %d failed: %v\n", i, err)
			os.Exit(1)
		}
	}
	elapsed := time.Since(start)
	fmt.Printf("%d runs in %s (%s/run)\n", *runs, elapsed, elapsed/time.Duration(*runs))
}

// checkerboardSample builds a size x size checkerboard of two colors, a
// worst-case-ish input for propagation since every cell's domain starts
// maximally ambiguous.
func checkerboardSample(size int) pattern.Sample {
	px := make([]int, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			px[y*size+x] = (x + y) % 2
		}
	}
	return pattern.Sample{Width: size, Height: size, Pixels: px}
}
