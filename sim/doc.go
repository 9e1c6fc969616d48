// Package sim provides the discrete-event simulation engine for a single-server
// queue served Shortest-Job-First (non-preemptive).
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - customer.go: Customer lifecycle (pending → queued → in-service → departed)
//   - event.go: Event kinds that drive the simulation (Arrival, Departure, EndOfSimulation)
//   - simulator.go: The event loop and the arrival/service-start/departure logic
//
// # Ordered containers
//
// timeline.go and queue.go share one sorted-slice implementation (ordered.go).
// Both keep equal keys in insertion order, so simultaneous events fire in the
// order they were scheduled and equal bursts are served first-come-first-served.
//
// # Randomness
//
// rng.go derives one stream per subsystem (arrival, service) from the seed;
// variate.go turns uniform draws into exponential durations scaled by
// VariateScale. Reported means divide by VariateScale again.
//
// # Tracing
//
// sim/trace/ records one CustomerRecord per departure and can persist them to
// CSV or SQLite. snapshot.go copies the live state of a run for diagnostics.
package sim
