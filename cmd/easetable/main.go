// Command easetable samples easing curves and prints them as text tables.
//
// Usage:
//
//	easetable -curve out-bounce -steps 20
//	easetable -all -stats
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/tphakala/go-gamemath/easing"
	"github.com/tphakala/go-gamemath/internal/curve"
)

var errUnknownCurve = errors.New("unknown curve")

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	name := flag.String("curve", defaultCurve, "Curve name, e.g. in-quad, out-bounce (see -list)")
	all := flag.Bool("all", false, "Process every registered curve")
	list := flag.Bool("list", false, "List curve names and exit")
	steps := flag.Int("steps", defaultSteps, "Number of intervals between t=0 and t=1")
	stats := flag.Bool("stats", false, "Print shape statistics instead of samples")
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(easing.Names(), "\n"))
		return nil
	}

	names := []string{*name}
	if *all {
		names = easing.Names()
	}

	if *stats {
		return writeStats(os.Stdout, names, *steps)
	}
	for i, n := range names {
		if i > 0 {
			fmt.Println()
		}
		if err := writeSamples(os.Stdout, n, *steps); err != nil {
			return err
		}
	}
	return nil
}

// sampleByName resolves a curve name and samples it.
func sampleByName(name string, steps int) (*curve.Table, error) {
	fn, ok := easing.ByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errUnknownCurve, name)
	}
	tbl, err := curve.Sample(fn, steps)
	if err != nil {
		return nil, fmt.Errorf("failed to sample %s: %w", name, err)
	}
	return tbl, nil
}

// writeSamples prints one t/value row per sample.
func writeSamples(w io.Writer, name string, steps int) error {
	tbl, err := sampleByName(name, steps)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, tabMinWidth, tabWidth, tabPadding, tabPadChar, 0)
	fmt.Fprintf(tw, "# %s\n", name)
	fmt.Fprintf(tw, "t\tvalue\n")
	for i, t := range tbl.Times {
		fmt.Fprintf(tw, "%.4f\t%.6f\n", t, tbl.Values[i])
	}
	return tw.Flush()
}

// writeStats prints one statistics row per curve.
func writeStats(w io.Writer, names []string, steps int) error {
	tw := tabwriter.NewWriter(w, tabMinWidth, tabWidth, tabPadding, tabPadChar, 0)
	fmt.Fprintf(tw, "curve\tmin\tmax\tmean\tarea\tovershoot\tmonotonic\n")
	for _, name := range names {
		tbl, err := sampleByName(name, steps)
		if err != nil {
			return err
		}
		s := tbl.Stats()
		fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%t\n",
			name, s.Min, s.Max, s.Mean, s.Area, s.Overshoot, s.Monotonic)
	}
	return tw.Flush()
}
