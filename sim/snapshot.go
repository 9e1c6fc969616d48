package sim

// Snapshot is a point-in-time view of a Simulator, detached from its live
// state. It is meant for diagnostics after a run ends or aborts.
type Snapshot struct {
	Clock            int64
	Busy             bool
	Done             bool
	Err              string
	PendingEvents    []string // removal order
	WaitingCustomers []string // service order
	Metrics          Metrics
}

// Snapshot copies the current simulator state.
func (sim *Simulator) Snapshot() *Snapshot {
	snap := &Snapshot{
		Clock:   sim.Clock,
		Busy:    sim.busy,
		Done:    sim.done,
		Metrics: *sim.Metrics,
	}
	if sim.err != nil {
		snap.Err = sim.err.Error()
	}
	for _, ev := range sim.Timeline.Events() {
		snap.PendingEvents = append(snap.PendingEvents, ev.String())
	}
	for _, c := range sim.ReadyQ.Items() {
		snap.WaitingCustomers = append(snap.WaitingCustomers, c.ID)
	}
	return snap
}
