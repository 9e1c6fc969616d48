package sim

import "errors"

// Internal-consistency errors. None of them is recoverable: each one means a
// previous step left the timeline or the ready queue in a state the driver
// never produces on its own.
var (
	// ErrEmptyTimeline is returned when the earliest event is requested from an
	// empty timeline. A well-formed run always has its end-of-simulation event
	// pending until it is consumed.
	ErrEmptyTimeline = errors.New("event timeline is empty")

	// ErrEmptyQueue is returned when the shortest customer is requested from an
	// empty ready queue.
	ErrEmptyQueue = errors.New("ready queue is empty")

	// ErrInvariantViolation is returned when a middle insertion cannot find its
	// position, i.e. the container was no longer sorted.
	ErrInvariantViolation = errors.New("sort invariant violated")

	// ErrSimulationFinished is returned when Start, Step or Run is called on a
	// simulator that has already processed its end-of-simulation event.
	ErrSimulationFinished = errors.New("simulation already finished")
)
