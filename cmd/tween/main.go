// Command tween prints sampled values or shape statistics for easing curves.
//
// Usage:
//
//	tween                          # all built-in families, 11 samples
//	tween -n 5 ease-in:2 bounce:4  # selected curves
//	tween --stats elastic:5        # overshoot, monotonicity, area
//	tween --list                   # every registered curve name
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	tween "github.com/tphakala/go-tween"
)

// Default command-line flag values
const (
	defaultSamples      = 11
	defaultStatsSamples = 1001
)

// Output formatting
const (
	nameColumnWidth = 14
	valuePrecision  = 4
)

// defaultSpecs lists the built-in families printed when no curve is given.
var defaultSpecs = []string{"linear", "ease-in", "ease-out", "ease-in-out", "elastic", "bounce"}

type options struct {
	samples int
	stats   bool
	list    bool
	verbose bool
	specs   []string
}

// Validate checks the options for consistency.
func (o *options) Validate() error {
	if o.samples < 2 {
		return fmt.Errorf("%w: --samples must be at least 2, got %d", tween.ErrInvalidSampleCount, o.samples)
	}
	return nil
}

func main() {
	log := logrus.New()
	if err := run(os.Args[1:], os.Stdout, log); err != nil {
		log.Fatal(err)
	}
}

func parseOptions(args []string) (*options, error) {
	fs := flag.NewFlagSet("tween", flag.ContinueOnError)
	opts := &options{}
	fs.IntVarP(&opts.samples, "samples", "n", 0, "Number of evenly spaced samples (default 11, or 1001 with --stats)")
	fs.BoolVar(&opts.stats, "stats", false, "Print curve statistics instead of samples")
	fs.BoolVar(&opts.list, "list", false, "List registered curve names")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.samples == 0 {
		opts.samples = defaultSamples
		if opts.stats {
			opts.samples = defaultStatsSamples
		}
	}
	opts.specs = fs.Args()
	if len(opts.specs) == 0 {
		opts.specs = defaultSpecs
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

func run(args []string, out io.Writer, log *logrus.Logger) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}
	if opts.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if opts.list {
		for _, name := range tween.Names() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	curves := make([]tween.Curve, 0, len(opts.specs))
	for _, spec := range opts.specs {
		c, err := tween.Parse(spec)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"spec":  spec,
			"curve": c.String(),
			"kind":  c.Kind(),
		}).Debug("parsed curve")
		curves = append(curves, c)
	}

	if opts.stats {
		return printStats(out, curves, opts.samples)
	}
	return printSamples(out, curves, opts.samples)
}

func printSamples(out io.Writer, curves []tween.Curve, n int) error {
	header := []string{fmt.Sprintf("%-*s", nameColumnWidth, "p")}
	step := 1 / float64(n-1)
	for i := range n {
		header = append(header, formatValue(float64(i)*step))
	}
	fmt.Fprintln(out, strings.Join(header, " "))

	for _, c := range curves {
		ys, err := tween.Sample(c, n)
		if err != nil {
			return err
		}
		row := []string{fmt.Sprintf("%-*s", nameColumnWidth, c.String())}
		for _, y := range ys {
			row = append(row, formatValue(y))
		}
		fmt.Fprintln(out, strings.Join(row, " "))
	}
	return nil
}

func printStats(out io.Writer, curves []tween.Curve, n int) error {
	fmt.Fprintf(out, "%-*s %8s %8s %9s %10s %8s %9s\n",
		nameColumnWidth, "curve", "min", "max", "overshoot", "undershoot", "area", "monotonic")

	for _, c := range curves {
		p, err := tween.Analyze(c, n)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-*s %8.*f %8.*f %9.*f %10.*f %8.*f %9t\n",
			nameColumnWidth, c.String(),
			valuePrecision, p.Min,
			valuePrecision, p.Max,
			valuePrecision, p.Overshoot,
			valuePrecision, p.Undershoot,
			valuePrecision, p.Area,
			p.Monotonic)
	}
	return nil
}

func formatValue(v float64) string {
	return fmt.Sprintf("%7.*f", valuePrecision, v)
}
