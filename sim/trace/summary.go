package trace

// TraceSummary aggregates statistics from a SimulationTrace.
// Mean times are un-scaled by the given scale.
type TraceSummary struct {
	Completed        int
	MeanWaitTime     float64
	MeanResponseTime float64
	MaxWaitTime      int64 // scaled ticks
	MaxQueueDepth    int
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace, scale float64) *TraceSummary {
	summary := &TraceSummary{}
	if st == nil || len(st.Customers) == 0 {
		return summary
	}
	if scale <= 0 {
		scale = 1
	}

	var totalWait, totalResponse int64
	for _, r := range st.Customers {
		wait := r.WaitTime()
		totalWait += wait
		totalResponse += r.ResponseTime()
		if wait > summary.MaxWaitTime {
			summary.MaxWaitTime = wait
		}
		if r.QueueDepth > summary.MaxQueueDepth {
			summary.MaxQueueDepth = r.QueueDepth
		}
	}

	summary.Completed = len(st.Customers)
	n := float64(summary.Completed) * scale
	summary.MeanWaitTime = float64(totalWait) / n
	summary.MeanResponseTime = float64(totalResponse) / n
	return summary
}
