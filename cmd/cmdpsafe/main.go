// Command cmdpsafe runs the one-shot pipeline: parse -> build CMDP ->
// MinInitCons -> Safe -> SafePR -> product -> validate -> render. It
// is the Go-native descendant of storm-cmdp-cli/storm-cmdp.cpp,
// restructured as a cobra root command the way the pack's other CLIs
// (steveyegge-beads's bd-examples, theRebelliousNerd-codenerd's nerd)
// are, with the source's per-stage Stopwatch timing restored as
// structured zap fields rather than printed durations.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arthuralsett/cmdp-safety/cmdp"
	"github.com/arthuralsett/cmdp-safety/modelio"
	"github.com/arthuralsett/cmdp-safety/product"
	"github.com/arthuralsett/cmdp-safety/report"
	"github.com/arthuralsett/cmdp-safety/validate"
)

var (
	capacityOverride int64
	outputPath       string
	verbose          bool
	demoName         string
)

var rootCmd = &cobra.Command{
	Use:   "cmdpsafe [model-file]",
	Short: "Compute resource-safe counter selectors for Consumption MDPs",
	Long: `cmdpsafe reads a Consumption Markov Decision Process, computes
MinInitCons, Safe and SafePR, builds the counter selector alongside
SafePR, validates it against the product MDP, and renders a report.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().Int64Var(&capacityOverride, "capacity", -1, "override the model's capacity (default: read from the model)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file path (default: stdout)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log per-stage timings")
	names := make([]string, 0, len(cmdp.BuiltinExamples()))
	for name := range cmdp.BuiltinExamples() {
		names = append(names, name)
	}
	rootCmd.Flags().StringVar(&demoName, "demo", "", fmt.Sprintf("run a built-in example instead of reading a model file (one of: %s)", strings.Join(names, ", ")))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCodeFor(err))
	}
}

func exitCodeFor(err error) int {
	cerr, ok := err.(*cmdp.Error)
	if !ok {
		return 1
	}
	switch cerr.Kind {
	case cmdp.ValidationFailed:
		return 3
	case cmdp.IoError:
		return 2
	default:
		return 1
	}
}

func newLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}
	config.Level = zap.NewAtomicLevelAt(level)
	return config.Build()
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return cmdp.Errorf(cmdp.IoError, err, "building logger")
	}
	defer logger.Sync()

	start := time.Now()
	c, cap, err := loadModel(args)
	logStage(logger, "load", start)
	if err != nil {
		return err
	}
	if capacityOverride >= 0 {
		cap = capacityOverride
	}
	logger.Info("model loaded", zap.Int("states", c.NumStates()), zap.Int64("capacity", cap))

	start = time.Now()
	minInitCons := cmdp.ComputeMinInitCons(c, cmdp.NewReloadSet(c))
	logStage(logger, "MinInitCons", start)

	start = time.Now()
	safe, _ := cmdp.ComputeSafe(c, cap)
	logStage(logger, "Safe", start)

	start = time.Now()
	safePR, err := cmdp.ComputeSafePR(c, cap, safe)
	if err != nil {
		return err
	}
	logStage(logger, "SafePR", start)

	start = time.Now()
	p := product.Build(c, cap, safePR.Selector)
	logStage(logger, "product", start)

	start = time.Now()
	result := validate.Validate(c, p, safePR.Values)
	logStage(logger, "validate", start)
	if !result.OK {
		logger.Warn("validation failed", zap.Int("failures", len(result.Failures)))
	}

	out := report.Writer(os.Stdout)
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return cmdp.Errorf(cmdp.IoError, err, "creating output file %q", outputPath)
		}
		defer f.Close()
		out = report.Writer(os.Stdout, f)
	}

	report.WriteReport(out, cap, minInitCons, safe, safePR.Values, safePR.Selector, result)

	if !result.OK {
		return cmdp.Errorf(cmdp.ValidationFailed, nil, "counter selector does not satisfy requirements")
	}
	return nil
}

// loadModel resolves the CMDP either from --demo, a name in
// cmdp.BuiltinExamples, or from the given model file.
func loadModel(args []string) (cmdp.CMDP, int64, error) {
	if demoName != "" {
		loader, ok := cmdp.BuiltinExamples()[demoName]
		if !ok {
			return nil, 0, cmdp.Errorf(cmdp.UnsupportedModel, nil, "unknown demo %q", demoName)
		}
		return loader.Load()
	}
	if len(args) == 0 {
		return nil, 0, cmdp.Errorf(cmdp.IoError, nil, "a model file or --demo is required")
	}
	return modelio.Load(args[0])
}

func logStage(logger *zap.Logger, name string, start time.Time) {
	logger.Debug("stage complete", zap.String("stage", name), zap.Duration("elapsed", time.Since(start)))
}
