// Defines the Customer struct that models a single job moving through the
// single-server system. Tracks arrival time, service burst and the timestamps
// needed for response-time accounting.

package sim

import (
	"fmt"
)

// CustomerState represents the lifecycle state of a customer.
type CustomerState string

const (
	StatePending   CustomerState = "pending"    // created, arrival event not yet fired
	StateQueued    CustomerState = "queued"     // waiting in the ReadyQueue
	StateInService CustomerState = "in-service" // owned by the pending departure event
	StateDeparted  CustomerState = "departed"
)

// Customer is owned by exactly one of: a pending arrival event, the
// ReadyQueue, or the departure event scheduled for it while in service.
type Customer struct {
	ID string

	ArrivalTime  int64 // clock tick at which the arrival event fired
	Burst        int64 // service requirement in scaled ticks, drawn on arrival
	ServiceStart int64 // clock tick at which the server picked the customer up

	State CustomerState

	queueDepthAtStart int // customers left waiting when service started
}

// ResponseTime returns the time spent in the system up to the given clock.
func (c *Customer) ResponseTime(departure int64) int64 {
	return departure - c.ArrivalTime
}

func (c Customer) String() string {
	return fmt.Sprintf("Customer: (ID: %s, State: %s, ArrivalTime: %d, Burst: %d)", c.ID, c.State, c.ArrivalTime, c.Burst)
}
