package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/inference-sim/sjf-sim/sim"
)

// ParamsFile is the YAML parameter file accepted by --config.
// Nil pointer fields mean "not set in YAML" and do not override flags.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type ParamsFile struct {
	MeanInterarrival *float64    `yaml:"mean_interarrival"`
	MeanService      *float64    `yaml:"mean_service"`
	Length           *int64      `yaml:"length"`
	Seed             *uint64     `yaml:"seed"`
	Trace            TraceParams `yaml:"trace"`
}

// TraceParams configures customer tracing. Empty strings mean "not set".
type TraceParams struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
}

// loadParamsFile parses a YAML parameter file with strict field checking:
// typos must cause errors.
func loadParamsFile(path string) (*ParamsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading parameter file: %w", err)
	}
	var params ParamsFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&params); err != nil {
		return nil, fmt.Errorf("parsing parameter file %s: %w", path, err)
	}
	return &params, nil
}

// applyParamsFile copies every value set in the file onto cfg and tr, unless
// the corresponding flag was given explicitly on the command line.
func applyParamsFile(cfg *sim.Config, tr *TraceParams, params *ParamsFile, changed func(flag string) bool) {
	if params.MeanInterarrival != nil && !changed("mean-interarrival") {
		cfg.MeanInterarrival = *params.MeanInterarrival
	}
	if params.MeanService != nil && !changed("mean-service") {
		cfg.MeanService = *params.MeanService
	}
	if params.Length != nil && !changed("length") {
		cfg.Length = *params.Length
	}
	if params.Seed != nil && !changed("seed") {
		cfg.Seed = *params.Seed
	}
	if params.Trace.Level != "" && !changed("trace-level") {
		tr.Level = params.Trace.Level
	}
	if params.Trace.Format != "" && !changed("trace-format") {
		tr.Format = params.Trace.Format
	}
	if params.Trace.Path != "" && !changed("trace-path") {
		tr.Path = params.Trace.Path
	}
}

// readParams runs the operator dialogue: it prompts for each parameter on out
// and reads the answers from in, in the order mean interarrival time, mean
// service time, simulation length, seed.
func readParams(in io.Reader, out io.Writer) (sim.Config, error) {
	var cfg sim.Config
	r := bufio.NewReader(in)

	fmt.Fprintln(out, "   SIMULATION -- M/M/1 Queueing System (SJF)")
	fmt.Fprintln(out, "      Input the following parameters:")

	prompts := []struct {
		label string
		dst   any
	}{
		{"mean interarrival time", &cfg.MeanInterarrival},
		{"mean service time", &cfg.MeanService},
		{"length of simulation", &cfg.Length},
		{"seed for the random number generator", &cfg.Seed},
	}
	for _, p := range prompts {
		fmt.Fprintf(out, "      %s => ", p.label)
		if _, err := fmt.Fscan(r, p.dst); err != nil {
			return cfg, fmt.Errorf("reading %s: %w", p.label, err)
		}
	}
	return cfg, nil
}
