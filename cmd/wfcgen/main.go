// Command wfcgen is a demo CLI driving the wfc package end to end: decode
// a sample PNG, run the overlapping model, encode the result, and
// optionally write an HTML progress trace.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/blang/semver"
	"github.com/joho/godotenv"
	"github.com/mosaicwave/wfc/imageio"
	"github.com/mosaicwave/wfc/wfc"
	"github.com/mosaicwave/wfc/wfcviz"
)

var version = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "wfcgen:", err)
		os.Exit(1)
	}
}

func run() error {
	// The -in, -out and -trace defaults come from WFC_IN, WFC_OUT and
	// WFC_TRACE, set in the environment or in a .env file in the working
	// directory, and flags override them; the other flags read no variable.
	// A missing .env file is ignored.
	_ = godotenv.Load()

	showVersion := flag.Bool("version", false, "print version and exit")
	in := flag.String("in", envOr("WFC_IN", ""), "input sample image (PNG)")
	out := flag.String("out", envOr("WFC_OUT", "out.png"), "output image path")
	trace := flag.String("trace", envOr("WFC_TRACE", ""), "optional HTML progress trace path")
	n := flag.Int("n", 3, "pattern window size N")
	width := flag.Int("width", 48, "output width")
	height := flag.Int("height", 48, "output height")
	symmetry := flag.Int("symmetry", 8, "pattern symmetry orbit: 1, 2, 4, or 8")
	periodicIn := flag.Bool("periodic-input", true, "treat sample as periodic")
	periodicOut := flag.Bool("periodic-output", true, "treat output grid as periodic")
	seed := flag.Int64("seed", 1, "deterministic seed")
	attempts := flag.Int("attempts", 10, "max restart attempts on contradiction")
	flag.Parse()

	if *showVersion {
		v, err := semver.Parse(version)
		if err != nil {
			return fmt.Errorf("invalid build version %q: %w", version, err)
		}
		fmt.Printf("wfcgen v%s\n", v)
		return nil
	}

	if *in == "" {
		return fmt.Errorf("missing -in sample image path")
	}

	f, err := os.Open(*in)
	if err != nil {
		return fmt.Errorf("open sample: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return fmt.Errorf("decode sample: %w", err)
	}

	sample, pal, err := imageio.Decode(img)
	if err != nil {
		return fmt.Errorf("quantize sample: %w", err)
	}

	recorder := wfcviz.NewTrace()
	cfg := wfc.Config{
		N:              *n,
		Width:          *width,
		Height:         *height,
		PeriodicInput:  *periodicIn,
		PeriodicOutput: *periodicOut,
		Symmetry:       *symmetry,
		Seed:           *seed,
		MaxAttempts:    *attempts,
		Palette:        pal,
	}
	if *trace != "" {
		cfg.OnObserve = recorder.Record
	}

	res, err := wfc.Run(context.Background(), sample, cfg)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	fmt.Printf("synthesized %dx%d in %d attempt(s)\n", res.Width, res.Height, res.Attempts)

	outImg := imageio.Encode(res.Width, res.Height, res.Pixels, pal)
	outFile, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer outFile.Close()
	if err := png.Encode(outFile, outImg); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	if *trace != "" {
		traceFile, err := os.Create(*trace)
		if err != nil {
			return fmt.Errorf("create trace: %w", err)
		}
		defer traceFile.Close()
		if err := wfcviz.Render(recorder, traceFile); err != nil {
			return fmt.Errorf("render trace: %w", err)
		}
	}

	return nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
