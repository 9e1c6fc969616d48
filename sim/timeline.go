package sim

import (
	"fmt"
	"strings"
)

// Timeline holds all pending events in non-decreasing time order. Events
// sharing a time are removed in the order they were inserted.
//
// The Timeline is the only scheduling authority of the simulation: the
// Simulator never reorders events itself.
type Timeline struct {
	list   *orderedList[*Event]
	nextID uint64
}

// NewTimeline creates an empty Timeline.
func NewTimeline() *Timeline {
	return &Timeline{
		list: newOrderedList(func(e *Event) int64 { return e.Time }),
	}
}

// Insert schedules a new event of the given kind at time t. The customer, if
// any, moves into the event.
func (tl *Timeline) Insert(kind EventKind, t int64, c *Customer) (*Event, error) {
	ev := &Event{
		ID:       tl.nextID,
		Kind:     kind,
		Time:     t,
		Customer: c,
	}
	if err := tl.list.insert(ev); err != nil {
		return nil, fmt.Errorf("timeline insert %s: %w", ev, err)
	}
	tl.nextID++
	return ev, nil
}

// RemoveEarliest removes and returns the first pending event.
func (tl *Timeline) RemoveEarliest() (*Event, error) {
	ev, ok := tl.list.popFront()
	if !ok {
		return nil, ErrEmptyTimeline
	}
	return ev, nil
}

// Len returns the number of pending events.
func (tl *Timeline) Len() int {
	return tl.list.Len()
}

// Events returns the pending events in removal order.
// The returned slice is the Timeline's internal storage; callers MUST NOT modify it.
func (tl *Timeline) Events() []*Event {
	return tl.list.items
}

func (tl *Timeline) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, ev := range tl.list.items {
		sb.WriteString(ev.String())
		if i < len(tl.list.items)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
