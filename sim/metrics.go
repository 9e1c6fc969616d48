// Tracks simulation-wide statistics: response-time accumulation, arrival and
// service counts, queue depth and server busy time.

package sim

import (
	"fmt"
	"io"
)

// Metrics aggregates statistics about the simulation for final reporting.
// All times are in scaled ticks; MeanResponseTime un-scales.
// Mutated only by the Simulator.
type Metrics struct {
	CompletedCustomers int64 // customers whose departure has been processed
	TotalResponseTime  int64 // sum of (departure - arrival) over completed customers
	Arrivals           int64 // arrival events processed
	ServiceStarts      int64 // customers handed to the server
	BusyTime           int64 // sum of bursts over completed customers
	MaxQueueLength     int   // largest ReadyQueue length observed after an enqueue
	SimEndedTime       int64 // clock when the end-of-simulation event fired
}

// NewMetrics creates a zeroed Metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// recordDeparture accumulates one response-time sample.
func (m *Metrics) recordDeparture(responseTime, burst int64) {
	m.TotalResponseTime += responseTime
	m.CompletedCustomers++
	m.BusyTime += burst
}

// MeanResponseTime returns the accumulated response time divided by
// VariateScale times the number of completed customers. Returns 0 when no
// customer completed.
func (m *Metrics) MeanResponseTime() float64 {
	if m.CompletedCustomers == 0 {
		return 0
	}
	return float64(m.TotalResponseTime) / (VariateScale * float64(m.CompletedCustomers))
}

// Utilization returns the fraction of the run the server spent on customers
// that completed. Returns 0 before the run has ended.
func (m *Metrics) Utilization() float64 {
	if m.SimEndedTime <= 0 {
		return 0
	}
	return float64(m.BusyTime) / float64(m.SimEndedTime)
}

// Print writes the end-of-run report.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintln(w, "...Simulation ends")
	fmt.Fprintln(w, " Simulation results")
	fmt.Fprintf(w, " mean response time ---------> %-6.3f\n", m.MeanResponseTime())
	fmt.Fprintf(w, " completed customers --------> %d\n", m.CompletedCustomers)
	fmt.Fprintf(w, " arrivals -------------------> %d\n", m.Arrivals)
	fmt.Fprintf(w, " server utilization ---------> %-6.3f\n", m.Utilization())
	fmt.Fprintf(w, " max queue length -----------> %d\n", m.MaxQueueLength)
}
