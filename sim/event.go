package sim

import "fmt"

// EventKind identifies which state transition an event drives.
type EventKind int

const (
	// EventArrival brings its customer into the system.
	EventArrival EventKind = iota
	// EventDeparture completes service of its customer.
	EventDeparture
	// EventEndOfSimulation stops the run. Scheduled exactly once.
	EventEndOfSimulation
)

func (k EventKind) String() string {
	switch k {
	case EventArrival:
		return "Arrival"
	case EventDeparture:
		return "Departure"
	case EventEndOfSimulation:
		return "EndOfSimulation"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a scheduled state transition. It is owned by the Timeline until
// removed and handed to the Simulator.
type Event struct {
	ID       uint64    // insertion sequence number, unique within a Timeline
	Kind     EventKind // arrival, departure or end of simulation
	Time     int64     // simulation time (in ticks) at which the event fires
	Customer *Customer // nil for EventEndOfSimulation
}

func (e Event) String() string {
	if e.Customer == nil {
		return fmt.Sprintf("%s#%d@%d", e.Kind, e.ID, e.Time)
	}
	return fmt.Sprintf("%s#%d@%d(%s)", e.Kind, e.ID, e.Time, e.Customer.ID)
}
