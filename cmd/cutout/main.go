// Command cutout cuts the region marked in a mask image out of an original
// and saves it as a cropped, transparent PNG.
//
// Usage:
//
//	cutout [flags] <original> <mask> <output>
//
// original and mask may be http(s) URLs or local paths. Flag defaults come
// from the CUTOUT_* environment variables.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ironsheep/mask-cutout/internal/config"
	"github.com/ironsheep/mask-cutout/internal/cutout"
	"github.com/ironsheep/mask-cutout/internal/fetch"
	"github.com/ironsheep/mask-cutout/internal/imageio"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// errUsage marks command-line mistakes, reported with exit status 2.
var errUsage = errors.New("usage error")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	err := cut(args, stdout, stderr)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, err)
		return 2
	default:
		fmt.Fprintf(stdout, "FAILED: %v\n", err)
		return 1
	}
}

func cut(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	s := cfg.Settings

	fs := flag.NewFlagSet("cutout", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&s.Strategy, "strategy", s.Strategy, "classification strategy: threshold or diff_blue")
	fs.IntVar(&s.RedThresh, "red-thresh", s.RedThresh, "threshold: mask red must exceed this")
	fs.IntVar(&s.GreenThresh, "green-thresh", s.GreenThresh, "threshold: mask green must be below this")
	fs.IntVar(&s.BlueThresh, "blue-thresh", s.BlueThresh, "threshold: mask blue must be below this")
	fs.IntVar(&s.DiffThresh, "diff-thresh", s.DiffThresh, "diff_blue: summed channel difference must exceed this")
	fs.IntVar(&s.KernelSize, "kernel", s.KernelSize, "diff_blue: odd opening kernel size")
	fs.StringVar(&s.Resample, "resample", s.Resample, "mask resize filter: linear, nearest or box")
	timeout := fs.Duration("timeout", cfg.FetchTimeout, "download timeout per image")
	version := fs.Bool("version", false, "print version information")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: cutout [flags] <original> <mask> <output>")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "original and mask may be http(s) URLs or local files.")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if *version {
		fmt.Fprintf(stdout, "cutout %s\n", Version)
		fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
		fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
		return nil
	}
	if fs.NArg() != 3 {
		fs.Usage()
		return fmt.Errorf("%w: expected 3 arguments, got %d", errUsage, fs.NArg())
	}
	originalLoc, maskLoc, outputPath := fs.Arg(0), fs.Arg(1), fs.Arg(2)

	opts, err := s.Options()
	if err != nil {
		return err
	}

	fetchOpts := cfg.FetchOptions()
	fetchOpts.Timeout = *timeout
	client := fetch.NewClient(fetchOpts)
	ctx := context.Background()

	fmt.Fprintf(stdout, "Downloading Original: %s\n", originalLoc)
	originalData, err := fetch.Open(ctx, client, originalLoc)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Downloading Mask: %s\n", maskLoc)
	maskData, err := fetch.Open(ctx, client, maskLoc)
	if err != nil {
		return err
	}

	out, res, err := cutout.Cut(originalData, maskData, opts)
	if err != nil {
		return err
	}
	if err := imageio.WriteFile(outputPath, out); err != nil {
		return err
	}

	if cfg.Debug {
		fmt.Fprintf(stderr, "%s: kept %d of %dx%d pixels in %s\n",
			res.Strategy, res.Kept, res.Width, res.Height, res.Timings.Total.Round(time.Microsecond))
	}
	if !res.Cropped {
		fmt.Fprintln(stdout, "Warning: no pixels matched the mask; saved the full transparent frame")
	}
	fmt.Fprintf(stdout, "Success! Saved to: %s\n", outputPath)
	return nil
}
