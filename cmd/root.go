package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	sim "github.com/inference-sim/sjf-sim/sim"
	"github.com/inference-sim/sjf-sim/sim/trace"
)

var (
	// CLI flags for the simulation parameters
	seed             uint64  // Seed for the random number generator
	meanInterarrival float64 // Mean interarrival time (unscaled ticks)
	meanService      float64 // Mean service time (unscaled ticks)
	simulationLength int64   // End-of-simulation time (in scaled ticks)

	logLevel     string // Log verbosity level
	configPath   string // Optional YAML parameter file
	interactive  bool   // Prompt for parameters on stdin
	resultsPath  string // Optional JSON results file
	snapshotPath string // Optional end-of-run state dump

	// CLI flags for customer tracing
	traceLevel  string // "none" or "customers"
	traceFormat string // "", "csv" or "sqlite"
	tracePath   string // trace file; empty = generated name
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "sjf-sim",
	Short: "Discrete-event simulator for a single-server Shortest-Job-First queue",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:          "run",
	Short:        "Run the SJF queue simulation",
	SilenceUsage: true,
	RunE:         runSimulation,
}

func runSimulation(cmd *cobra.Command, args []string) error {
	// Set up logging
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q", logLevel)
	}
	logrus.SetLevel(level)

	cfg := sim.NewConfig(meanInterarrival, meanService, simulationLength, seed)
	tr := TraceParams{Level: traceLevel, Format: traceFormat, Path: tracePath}

	if configPath != "" {
		params, err := loadParamsFile(configPath)
		if err != nil {
			return err
		}
		applyParamsFile(&cfg, &tr, params, cmd.Flags().Changed)
		logrus.Infof("Loaded parameters from %s", configPath)
	}
	if interactive {
		cfg, err = readParams(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
	}

	if !trace.IsValidTraceLevel(tr.Level) {
		return fmt.Errorf("unknown trace level %q", tr.Level)
	}
	if tr.Format != "" && !trace.ValidFormats[tr.Format] {
		return fmt.Errorf("unknown trace format %q", tr.Format)
	}

	s, err := sim.NewSimulator(cfg)
	if err != nil {
		return err
	}

	var writer trace.Writer
	if tr.Format != "" {
		writer, err = trace.NewWriter(tr.Format, tr.Path)
		if err != nil {
			return err
		}
		defer func() {
			if err := writer.Close(); err != nil {
				logrus.Errorf("closing trace writer: %v", err)
			}
		}()
	}
	if writer != nil || trace.TraceLevel(tr.Level) == trace.TraceLevelCustomers {
		s.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevel(tr.Level)}, writer)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, " Simulation time = %d units\n", cfg.Length)
	fmt.Fprintln(out, " Simulation begins...")

	startTime := time.Now()
	runErr := s.Run()
	if snapshotPath != "" {
		if err := writeSnapshot(snapshotPath, s); err != nil {
			logrus.Errorf("%v", err)
		} else {
			logrus.Infof("State snapshot written to %s", snapshotPath)
		}
	}
	if runErr != nil {
		return fmt.Errorf("simulation failed: %w", runErr)
	}

	s.Metrics.Print(out)
	if s.Trace != nil && s.Trace.Config.Level == trace.TraceLevelCustomers {
		printTraceSummary(out, trace.Summarize(s.Trace, sim.VariateScale))
	}

	runID := xid.New().String()
	if resultsPath != "" {
		if err := s.Results(runID).SaveToFile(resultsPath); err != nil {
			return err
		}
		logrus.Infof("Results written to %s", resultsPath)
	}

	logrus.Infof("Simulation %s complete in %v.", runID, time.Since(startTime))
	return nil
}

func printTraceSummary(w io.Writer, summary *trace.TraceSummary) {
	fmt.Fprintln(w, " Customer trace")
	fmt.Fprintf(w, " traced customers -----------> %d\n", summary.Completed)
	fmt.Fprintf(w, " mean wait time -------------> %-6.3f\n", summary.MeanWaitTime)
	fmt.Fprintf(w, " mean response time ---------> %-6.3f\n", summary.MeanResponseTime)
	fmt.Fprintf(w, " max queue depth at start ---> %d\n", summary.MaxQueueDepth)
}

// Execute runs the CLI root command. Registered exit handlers (trace writers)
// run before the process exits.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Uint64Var(&seed, "seed", 42, "Seed for the random number generator")
	runCmd.Flags().Float64Var(&meanInterarrival, "mean-interarrival", 5.0, "Mean interarrival time")
	runCmd.Flags().Float64Var(&meanService, "mean-service", 3.0, "Mean service time")
	runCmd.Flags().Int64Var(&simulationLength, "length", 100000, "Length of simulation (in scaled ticks, 100 per time unit)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML parameter file; explicitly set flags take precedence")
	runCmd.Flags().BoolVar(&interactive, "interactive", false, "Prompt for the simulation parameters on stdin")
	runCmd.Flags().StringVar(&resultsPath, "results-path", "", "Write the run results as JSON to this file")
	runCmd.Flags().StringVar(&snapshotPath, "snapshot-path", "", "Dump the final simulator state (clock, pending events, waiting customers) to this file")

	// Customer trace configs
	runCmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Trace level (none, customers)")
	runCmd.Flags().StringVar(&traceFormat, "trace-format", "", "Persist customer records (csv, sqlite)")
	runCmd.Flags().StringVar(&tracePath, "trace-path", "", "Trace file path (default: generated sjf_trace_<id> name)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
