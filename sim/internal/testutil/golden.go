// Package testutil provides shared test infrastructure for the SJF simulator:
// the golden dataset types and float assertion helpers used by sim tests.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one recorded run: the configuration and the statistics
// it produced.
type GoldenTestCase struct {
	Name             string        `json:"name"`
	MeanInterarrival float64       `json:"mean_interarrival"`
	MeanService      float64       `json:"mean_service"`
	Length           int64         `json:"length"`
	Seed             uint64        `json:"seed"`
	Metrics          GoldenMetrics `json:"metrics"`
}

// GoldenMetrics represents the expected statistics of a golden test case.
type GoldenMetrics struct {
	// Exact match (integers, scaled ticks)
	CompletedCustomers int64 `json:"completed_customers"`
	Arrivals           int64 `json:"arrivals"`
	ServiceStarts      int64 `json:"service_starts"`
	TotalResponseTime  int64 `json:"total_response_time"`
	BusyTime           int64 `json:"busy_time"`
	MaxQueueLength     int   `json:"max_queue_length"`
	EndTime            int64 `json:"end_time"`

	// Derived, rounded to 9 decimals in the file
	MeanResponseTime float64 `json:"mean_response_time"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
