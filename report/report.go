// Package report renders the human-readable run output: the capacity,
// the three value vectors, the counter selector as a table, and the
// validator's verdict. It is the Go-native descendant
// of storm-cmdp.cpp's showResult and CounterSelector.cpp's
// printCounterSelector, with the source's hand-rolled TeeStream
// replaced by io.MultiWriter, the way a Go rewrite would actually tee
// output to two writers.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/arthuralsett/cmdp-safety/cmdp"
	"github.com/arthuralsett/cmdp-safety/extint"
	"github.com/arthuralsett/cmdp-safety/validate"
)

// Writer wraps the destination(s) output is rendered to; it tees to
// every writer given, mirroring the source's TeeStream without
// needing a bespoke type.
func Writer(outs ...io.Writer) io.Writer {
	return io.MultiWriter(outs...)
}

// WriteVector prints name followed by one "state: value" line per
// entry, matching showResult's per-vector section.
func WriteVector(w io.Writer, name string, v []extint.ExtInt) {
	fmt.Fprintf(w, "%s:\n", name)
	for s, val := range v {
		fmt.Fprintf(w, "  %d: %s\n", s, val)
	}
}

// WriteSelector prints the counter selector as a |States| x (cap+1)
// table, "-" for an undefined entry, aligned with text/tabwriter the
// way printCounterSelector aligns its columns by hand.
func WriteSelector(w io.Writer, sel cmdp.CounterSelector, cap int64) {
	tw := tabwriter.NewWriter(w, 0, 2, 1, ' ', 0)
	fmt.Fprint(tw, "state")
	for r := int64(0); r <= cap; r++ {
		fmt.Fprintf(tw, "\tr=%d", r)
	}
	fmt.Fprintln(tw)
	for s, rule := range sel {
		fmt.Fprintf(tw, "%d", s)
		for _, a := range rule {
			if a == cmdp.UndefinedAction {
				fmt.Fprint(tw, "\t-")
			} else {
				fmt.Fprintf(tw, "\t%d", a)
			}
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

// WriteReport renders the full report: capacity, the three vectors,
// the selector table, and the validator's verdict line.
func WriteReport(w io.Writer, cap int64, minInitCons, safe, safePR []extint.ExtInt, sel cmdp.CounterSelector, result validate.Result) {
	fmt.Fprintf(w, "capacity: %d\n\n", cap)
	WriteVector(w, "MinInitCons", minInitCons)
	fmt.Fprintln(w)
	WriteVector(w, "Safe", safe)
	fmt.Fprintln(w)
	WriteVector(w, "SafePR", safePR)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "counter selector:")
	WriteSelector(w, sel, cap)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Counter selector satisfies requirements: %t\n", result.OK)
	for _, f := range result.Failures {
		fmt.Fprintf(w, "  state %d: %s\n", f.State, f.Reason)
	}
}
