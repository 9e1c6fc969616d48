// sim/simulator.go
package sim

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/sjf-sim/sim/trace"
)

// Simulator is the core object that holds simulation time, system state, and the event loop.
// Every run owns its own Simulator; nothing is shared between instances.
type Simulator struct {
	Clock  int64
	Config Config
	// Timeline has all pending events: arrivals, departures and the end of simulation
	Timeline *Timeline
	// ReadyQ holds customers waiting for the server, shortest burst first
	ReadyQ  *ReadyQueue
	Metrics *Metrics
	RNG     *PartitionedRNG
	// Interarrival and Service draw durations in scaled ticks. NewSimulator
	// wires exponential samplers; tests may replace them before Start.
	Interarrival DurationSampler
	Service      DurationSampler
	// Trace receives one record per departed customer. nil disables tracing.
	Trace *trace.SimulationTrace

	busy           bool
	started        bool
	done           bool
	err            error
	nextCustomerID int
}

// NewSimulator validates cfg and creates a Simulator in its initial state:
// server idle, empty Timeline and ReadyQueue, clock 0, zeroed statistics.
func NewSimulator(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))
	return &Simulator{
		Clock:        0,
		Config:       cfg,
		Timeline:     NewTimeline(),
		ReadyQ:       NewReadyQueue(),
		Metrics:      NewMetrics(),
		RNG:          rng,
		Interarrival: NewExponentialSampler(cfg.MeanInterarrival, rng.ForSubsystem(SubsystemArrival)),
		Service:      NewExponentialSampler(cfg.MeanService, rng.ForSubsystem(SubsystemService)),
	}, nil
}

// Busy reports whether a customer is in service.
func (sim *Simulator) Busy() bool {
	return sim.busy
}

// Done reports whether the end-of-simulation event has been processed or the
// run was aborted.
func (sim *Simulator) Done() bool {
	return sim.done
}

// Err returns the error that aborted the run, if any.
func (sim *Simulator) Err() error {
	return sim.err
}

// Start primes the Timeline with the end-of-simulation event and the first
// arrival. Calling it again before the run ends is a no-op.
func (sim *Simulator) Start() error {
	if err := sim.checkRunnable(); err != nil {
		return err
	}
	if sim.started {
		return nil
	}
	if _, err := sim.Timeline.Insert(EventEndOfSimulation, sim.Config.Length, nil); err != nil {
		return sim.abort(err)
	}
	if err := sim.generateArrival(); err != nil {
		return sim.abort(err)
	}
	sim.started = true
	logrus.Infof("Simulation begins: length=%d ticks, meanInterarrival=%v, meanService=%v, seed=%d",
		sim.Config.Length, sim.Config.MeanInterarrival, sim.Config.MeanService, sim.Config.Seed)
	return nil
}

// Step removes the earliest event, advances the clock to it and processes it
// to completion.
func (sim *Simulator) Step() error {
	if err := sim.checkRunnable(); err != nil {
		return err
	}
	if !sim.started {
		if err := sim.Start(); err != nil {
			return err
		}
	}

	ev, err := sim.Timeline.RemoveEarliest()
	if err != nil {
		return sim.abort(err)
	}
	if ev.Time < sim.Clock {
		return sim.abort(fmt.Errorf("event %s is earlier than clock %d: %w", ev, sim.Clock, ErrInvariantViolation))
	}
	sim.Clock = ev.Time
	logrus.Debugf("[tick %07d] Executing %s", sim.Clock, ev)

	switch ev.Kind {
	case EventArrival:
		err = sim.arrive(ev)
	case EventDeparture:
		err = sim.depart(ev)
	case EventEndOfSimulation:
		err = sim.finish()
	default:
		err = fmt.Errorf("invalid event kind %v: %w", ev.Kind, ErrInvariantViolation)
	}
	if err != nil {
		return sim.abort(err)
	}
	return nil
}

// Run primes the simulation if needed and processes events until the
// end-of-simulation event.
func (sim *Simulator) Run() error {
	if err := sim.Start(); err != nil {
		return err
	}
	for !sim.done {
		if err := sim.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (sim *Simulator) checkRunnable() error {
	if sim.err != nil {
		return sim.err
	}
	if sim.done {
		return ErrSimulationFinished
	}
	return nil
}

// abort logs err and stops the run. Consistency errors are never retried.
func (sim *Simulator) abort(err error) error {
	logrus.Errorf("[tick %07d] Simulation aborted: %v", sim.Clock, err)
	sim.err = err
	sim.done = true
	return err
}

func (sim *Simulator) newCustomer() *Customer {
	c := &Customer{
		ID:    fmt.Sprintf("customer_%d", sim.nextCustomerID),
		State: StatePending,
	}
	sim.nextCustomerID++
	return c
}

// generateArrival creates the next customer and schedules its arrival.
func (sim *Simulator) generateArrival() error {
	c := sim.newCustomer()
	iat := sim.Interarrival.Sample()
	logrus.Debugf(" Interarrival time for %s is %d", c.ID, iat)
	at, err := sim.after(iat)
	if err != nil {
		return err
	}
	logrus.Debugf(" Arrival time for %s is %d", c.ID, at)
	_, err = sim.Timeline.Insert(EventArrival, at, c)
	return err
}

// arrive schedules the next arrival, stamps the arriving customer, queues it
// and starts service if the server is idle.
func (sim *Simulator) arrive(ev *Event) error {
	if err := sim.generateArrival(); err != nil {
		return err
	}

	c := ev.Customer
	ev.Customer = nil
	if c == nil || c.State != StatePending {
		return fmt.Errorf("arrival %s carries no pending customer: %w", ev, ErrInvariantViolation)
	}
	c.ArrivalTime = sim.Clock
	c.Burst = sim.Service.Sample()
	c.State = StateQueued
	sim.Metrics.Arrivals++

	if err := sim.ReadyQ.Enqueue(c); err != nil {
		return err
	}
	sim.Metrics.MaxQueueLength = max(sim.Metrics.MaxQueueLength, sim.ReadyQ.Len())

	if !sim.busy {
		return sim.startService()
	}
	return nil
}

// startService hands the shortest waiting customer to the server and
// schedules its departure.
func (sim *Simulator) startService() error {
	c, err := sim.ReadyQ.DequeueShortest()
	if err != nil {
		return fmt.Errorf("starting service: %w", err)
	}
	sim.busy = true
	c.State = StateInService
	c.ServiceStart = sim.Clock
	c.queueDepthAtStart = sim.ReadyQ.Len()
	sim.Metrics.ServiceStarts++

	logrus.Debugf(" Service time for %s is %d", c.ID, c.Burst)
	at, err := sim.after(c.Burst)
	if err != nil {
		return err
	}
	logrus.Debugf(" Departure time for %s is %d", c.ID, at)
	_, err = sim.Timeline.Insert(EventDeparture, at, c)
	return err
}

// after returns the clock tick d ticks from now. Validated configs never
// overflow; samplers swapped in by callers might.
func (sim *Simulator) after(d int64) (int64, error) {
	if d < 0 || d > math.MaxInt64-sim.Clock {
		return 0, fmt.Errorf("duration %d from tick %d overflows the clock: %w", d, sim.Clock, ErrInvariantViolation)
	}
	return sim.Clock + d, nil
}

// depart frees the server, records the response time and starts the next
// service if anyone is waiting.
func (sim *Simulator) depart(ev *Event) error {
	sim.busy = false

	c := ev.Customer
	ev.Customer = nil
	if c == nil || c.State != StateInService {
		return fmt.Errorf("departure %s carries no customer in service: %w", ev, ErrInvariantViolation)
	}
	rt := c.ResponseTime(sim.Clock)
	logrus.Debugf(" Response time for %s is %d", c.ID, rt)
	sim.Metrics.recordDeparture(rt, c.Burst)
	c.State = StateDeparted

	if sim.Trace != nil {
		err := sim.Trace.RecordCustomer(trace.CustomerRecord{
			CustomerID:    c.ID,
			ArrivalTime:   c.ArrivalTime,
			ServiceStart:  c.ServiceStart,
			DepartureTime: sim.Clock,
			Burst:         c.Burst,
			QueueDepth:    c.queueDepthAtStart,
		})
		if err != nil {
			return err
		}
	}

	if next := sim.ReadyQ.Peek(); next != nil {
		logrus.Debugf(" Next in line is %s with burst %d", next.ID, next.Burst)
		return sim.startService()
	}
	return nil
}

// finish ends the run. Customers still waiting or in service are dropped
// with the Simulator.
func (sim *Simulator) finish() error {
	sim.done = true
	sim.Metrics.SimEndedTime = sim.Clock
	logrus.Infof("[tick %07d] Simulation ended: completed=%d, meanResponseTime=%.3f",
		sim.Clock, sim.Metrics.CompletedCustomers, sim.Metrics.MeanResponseTime())
	if sim.Trace != nil {
		return sim.Trace.Flush()
	}
	return nil
}
