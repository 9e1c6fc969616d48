package sim

import (
	"encoding/json"
	"fmt"
	"os"
)

// Results is the machine-readable summary of a finished run.
type Results struct {
	RunID              string  `json:"run_id"`
	Seed               uint64  `json:"seed"`
	MeanInterarrival   float64 `json:"mean_interarrival"`
	MeanService        float64 `json:"mean_service"`
	Length             int64   `json:"length"`
	MeanResponseTime   float64 `json:"mean_response_time"`
	CompletedCustomers int64   `json:"completed_customers"`
	Arrivals           int64   `json:"arrivals"`
	Utilization        float64 `json:"utilization"`
	MaxQueueLength     int     `json:"max_queue_length"`
	EndTime            int64   `json:"end_time"`
}

// Results builds the summary of the run tagged with runID.
func (sim *Simulator) Results(runID string) Results {
	return Results{
		RunID:              runID,
		Seed:               sim.Config.Seed,
		MeanInterarrival:   sim.Config.MeanInterarrival,
		MeanService:        sim.Config.MeanService,
		Length:             sim.Config.Length,
		MeanResponseTime:   sim.Metrics.MeanResponseTime(),
		CompletedCustomers: sim.Metrics.CompletedCustomers,
		Arrivals:           sim.Metrics.Arrivals,
		Utilization:        sim.Metrics.Utilization(),
		MaxQueueLength:     sim.Metrics.MaxQueueLength,
		EndTime:            sim.Metrics.SimEndedTime,
	}
}

// SaveToFile writes the results as indented JSON.
func (r Results) SaveToFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling results: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing results to %s: %w", path, err)
	}
	return nil
}
