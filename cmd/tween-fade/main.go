// Command tween-fade applies eased fade-in and fade-out envelopes to WAV files.
//
// Usage:
//
//	tween-fade --curve ease-out --in 250ms --out 2s input.wav output.wav
//	tween-fade -c bounce:4 --in 1s --out 0 input.wav output.wav
//	tween-fade --parallel=false input.wav output.wav   # Process channels sequentially
//
// The fade-out mirrors the fade-in: the same curve runs backwards over the
// last --out of audio. Curves that overshoot 1 (elastic) are clipped at full scale.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	tween "github.com/tphakala/go-tween"
)

const (
	// CLI defaults
	defaultCurve    = "ease-in-out"
	defaultFadeIn   = 500 * time.Millisecond
	defaultFadeOut  = 500 * time.Millisecond
	minRequiredArgs = 2

	// Channel count constants for fast paths
	monoChannels   = 1
	stereoChannels = 2

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Full-scale values per bit depth
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	// WAV audio format tag for integer PCM
	wavFormatPCM = 1
)

// errUsage signals missing positional arguments.
var errUsage = errors.New("usage: tween-fade [options] input.wav output.wav")

// config holds the parsed command-line options.
type config struct {
	inputPath  string
	outputPath string
	curve      tween.Curve
	fadeIn     time.Duration
	fadeOut    time.Duration
	parallel   bool
	verbose    bool
}

// Validate checks that the options describe a runnable job.
func (c *config) Validate() error {
	if c.inputPath == "" || c.outputPath == "" {
		return errUsage
	}
	if c.fadeIn < 0 || c.fadeOut < 0 {
		return fmt.Errorf("fade durations must not be negative (in=%s, out=%s)", c.fadeIn, c.fadeOut)
	}
	if filepath.Clean(c.inputPath) == filepath.Clean(c.outputPath) {
		return fmt.Errorf("output would overwrite input %s", c.inputPath)
	}
	return nil
}

func main() {
	log := logrus.New()
	if err := run(os.Args[1:], log); err != nil {
		log.Fatal(err)
	}
}

func parseFlags(args []string) (*config, error) {
	fs := flag.NewFlagSet("tween-fade", flag.ContinueOnError)
	curveSpec := fs.StringP("curve", "c", defaultCurve, "Fade curve spec, e.g. ease-out:2, bounce:4, in-out-sine")
	fadeIn := fs.Duration("in", defaultFadeIn, "Fade-in duration (0 disables)")
	fadeOut := fs.Duration("out", defaultFadeOut, "Fade-out duration (0 disables)")
	parallel := fs.Bool("parallel", true, "Process channels concurrently")
	verbose := fs.BoolP("verbose", "v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	curve, err := tween.Parse(*curveSpec)
	if err != nil {
		return nil, err
	}

	cfg := &config{
		curve:    curve,
		fadeIn:   *fadeIn,
		fadeOut:  *fadeOut,
		parallel: *parallel,
		verbose:  *verbose,
	}
	if rest := fs.Args(); len(rest) >= minRequiredArgs {
		cfg.inputPath, cfg.outputPath = rest[0], rest[1]
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(args []string, log *logrus.Logger) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}
	if cfg.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	log.WithFields(logrus.Fields{
		"input":    cfg.inputPath,
		"output":   cfg.outputPath,
		"curve":    cfg.curve.String(),
		"fade_in":  cfg.fadeIn,
		"fade_out": cfg.fadeOut,
		"parallel": cfg.parallel,
	}).Debug("starting fade")

	start := time.Now()
	stats, err := fadeWAV(cfg, log)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"rate":            stats.rate,
		"channels":        stats.channels,
		"bit_depth":       stats.bitDepth,
		"frames":          stats.frames,
		"fade_in_frames":  stats.fadeInFrames,
		"fade_out_frames": stats.fadeOutFrames,
		"clipped":         stats.clipped,
		"elapsed":         time.Since(start).Round(time.Millisecond),
	}).Infof("faded %s -> %s", filepath.Base(cfg.inputPath), filepath.Base(cfg.outputPath))

	return nil
}
