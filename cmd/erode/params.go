package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/erode/dsp/effects/erode"
	"github.com/cwbudde/erode/dsp/param"
)

func runParams(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("params", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var ef effectFlags
	ef.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := ef.load(fs)
	if err != nil {
		return err
	}
	proc, params, err := newProcessor(cfg)
	if err != nil {
		return err
	}
	stream := cfg.Stream()
	if err := proc.Prepare(stream.SampleRate, stream.BlockSize, 1); err != nil {
		return fmt.Errorf("prepare: %w", err)
	}

	if err := printParams(stdout, params.Set()); err != nil {
		return err
	}
	return printTone(stdout, proc, params.Snapshot().Cut)
}

var toneFrequencies = []float64{50, 100, 200, 500, 1000, 2000, 5000, 10000}

// printTone prints the tone filter gain at a fixed set of frequencies.
func printTone(w io.Writer, proc *erode.Processor, cut float64) error {
	if proc.Profile() != erode.ProfileTone || cut <= erode.MinCut {
		_, err := fmt.Fprintf(w, "\ntone filter bypassed\n")
		return err
	}

	gains := make([]float64, len(toneFrequencies))
	proc.ToneResponse(gains, toneFrequencies, cut)

	if _, err := fmt.Fprintf(w, "\ntone high-pass, cut %.0f Hz\n", cut); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for i, f := range toneFrequencies {
		if _, err := fmt.Fprintf(tw, "%.0f Hz\t%.2f dB\t\n", f, gains[i]); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func printParams(w io.Writer, set *param.Set) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "ID\tName\tRange\tDefault\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "--\t----\t-----\t-------\n"); err != nil {
		return err
	}

	for _, p := range set.All() {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Name, describeRange(p), p.Format()); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func describeRange(p *param.Parameter) string {
	if len(p.Choices) > 0 {
		return strings.Join(p.Choices, "|")
	}

	format := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	s := format(p.Range.Min) + ".." + format(p.Range.Max)
	if p.Unit != "" {
		s += " " + p.Unit
	}
	if p.Range.Skew != 0 && p.Range.Skew != 1 {
		s += " (skew " + format(p.Range.Skew) + ")"
	}
	return s
}
