package main

import (
	"io"
	"os"
	"strings"
	"testing"
)

// TestRunTeesReportToStdoutAndOutputFile exercises the -o flag
// end-to-end: the report must still reach stdout, not just the file.
func TestRunTeesReportToStdoutAndOutputFile(t *testing.T) {
	demoName = "two-state-loop"
	capacityOverride = -1
	verbose = false
	defer func() {
		demoName = ""
		outputPath = ""
	}()

	f, err := os.CreateTemp(t.TempDir(), "report-*.txt")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	outputPath = f.Name()
	f.Close()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe: %v", err)
	}
	os.Stdout = w

	runErr := run(rootCmd, nil)

	w.Close()
	os.Stdout = origStdout
	captured, _ := io.ReadAll(r)

	if runErr != nil {
		t.Fatalf("run: %v", runErr)
	}

	fileContents, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	for _, out := range []struct {
		name, content string
	}{
		{"stdout", string(captured)},
		{"output file", string(fileContents)},
	} {
		if !strings.Contains(out.content, "capacity:") {
			t.Errorf("%s missing report content:\n%s", out.name, out.content)
		}
	}
}
