package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arthuralsett/cmdp-safety/cmdp"
	"github.com/arthuralsett/cmdp-safety/extint"
	"github.com/arthuralsett/cmdp-safety/validate"
)

func TestWriteVectorRendersInfinity(t *testing.T) {
	var buf bytes.Buffer
	WriteVector(&buf, "Safe", []extint.ExtInt{extint.Finite(0), extint.PosInf()})
	out := buf.String()
	if !strings.Contains(out, "0: 0") || !strings.Contains(out, "1: infinity") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestWriteSelectorRendersUndefinedAsDash(t *testing.T) {
	var buf bytes.Buffer
	sel := cmdp.NewCounterSelector(1, 1)
	sel[0][1] = 0
	WriteSelector(&buf, sel, 1)
	out := buf.String()
	if !strings.Contains(out, "-") {
		t.Errorf("expected a '-' for the undefined entry, got:\n%s", out)
	}
}

func TestWriteReportIncludesVerdict(t *testing.T) {
	var buf bytes.Buffer
	sel := cmdp.NewCounterSelector(1, 0)
	WriteReport(&buf, 0,
		[]extint.ExtInt{extint.Finite(0)},
		[]extint.ExtInt{extint.Finite(0)},
		[]extint.ExtInt{extint.Finite(0)},
		sel,
		validate.Result{OK: true})
	out := buf.String()
	if !strings.Contains(out, "Counter selector satisfies requirements: true") {
		t.Errorf("missing verdict line:\n%s", out)
	}
}

func TestWriterTeesToBothDestinations(t *testing.T) {
	var a, b bytes.Buffer
	w := Writer(&a, &b)
	w.Write([]byte("hello"))
	if a.String() != "hello" || b.String() != "hello" {
		t.Errorf("tee failed: a=%q b=%q", a.String(), b.String())
	}
}
