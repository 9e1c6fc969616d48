// Package trace provides per-customer trace recording for post-run analysis.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// CustomerRecord captures one customer's passage through the system. All
// times are in scaled simulation ticks.
type CustomerRecord struct {
	CustomerID    string
	ArrivalTime   int64
	ServiceStart  int64
	DepartureTime int64
	Burst         int64
	QueueDepth    int // customers still waiting when this one entered service
}

// WaitTime returns the time spent in the ready queue.
func (r CustomerRecord) WaitTime() int64 {
	return r.ServiceStart - r.ArrivalTime
}

// ResponseTime returns the time spent in the system.
func (r CustomerRecord) ResponseTime() int64 {
	return r.DepartureTime - r.ArrivalTime
}
