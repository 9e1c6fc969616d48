package trace

import "fmt"

// TraceLevel controls the verbosity of customer tracing.
type TraceLevel string

const (
	// TraceLevelNone disables in-memory tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelCustomers keeps a record for every departed customer.
	TraceLevelCustomers TraceLevel = "customers"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelCustomers: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// Writer is a sink that persists customer records as they are produced.
type Writer interface {
	Write(record CustomerRecord) error
	Flush() error
	Close() error
}

// SimulationTrace collects customer records during a simulation.
type SimulationTrace struct {
	Config    TraceConfig
	Customers []CustomerRecord

	writer Writer
}

// NewSimulationTrace creates a SimulationTrace ready for recording. w may be
// nil, in which case records are only kept in memory (if the level asks for it).
func NewSimulationTrace(config TraceConfig, w Writer) *SimulationTrace {
	return &SimulationTrace{
		Config:    config,
		Customers: make([]CustomerRecord, 0),
		writer:    w,
	}
}

// RecordCustomer stores a record in memory at TraceLevelCustomers and hands it
// to the writer, if any.
func (st *SimulationTrace) RecordCustomer(record CustomerRecord) error {
	if st.Config.Level == TraceLevelCustomers {
		st.Customers = append(st.Customers, record)
	}
	if st.writer == nil {
		return nil
	}
	if err := st.writer.Write(record); err != nil {
		return fmt.Errorf("writing trace record for %s: %w", record.CustomerID, err)
	}
	return nil
}

// Flush flushes the writer, if any.
func (st *SimulationTrace) Flush() error {
	if st.writer == nil {
		return nil
	}
	return st.writer.Flush()
}
