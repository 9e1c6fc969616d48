package sim

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeline_EqualTimes_RemovedInInsertionOrder(t *testing.T) {
	// GIVEN an empty timeline
	tl := NewTimeline()

	// WHEN A then B are inserted at t=50
	a, err := tl.Insert(EventArrival, 50, &Customer{ID: "A"})
	require.NoError(t, err)
	b, err := tl.Insert(EventArrival, 50, &Customer{ID: "B"})
	require.NoError(t, err)

	// THEN A is removed before B
	first, err := tl.RemoveEarliest()
	require.NoError(t, err)
	second, err := tl.RemoveEarliest()
	require.NoError(t, err)
	assert.Same(t, a, first)
	assert.Same(t, b, second)
	assert.Equal(t, 0, tl.Len())
}

func TestTimeline_Insert_FourCases(t *testing.T) {
	tests := []struct {
		name  string
		times []int64
		want  []int64 // IDs in removal order
	}{
		{"empty", []int64{7}, []int64{0}},
		{"before head", []int64{50, 10}, []int64{1, 0}},
		{"equal to tail appends", []int64{10, 50, 50}, []int64{0, 1, 2}},
		{"after tail", []int64{10, 50, 90}, []int64{0, 1, 2}},
		{"middle", []int64{10, 90, 50}, []int64{0, 2, 1}},
		{"middle after equal run", []int64{10, 30, 30, 90, 30}, []int64{0, 1, 2, 4, 3}},
		{"equal to head goes after head", []int64{10, 90, 10}, []int64{0, 2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := NewTimeline()
			for _, ts := range tt.times {
				_, err := tl.Insert(EventArrival, ts, nil)
				require.NoError(t, err)
			}
			var got []int64
			for tl.Len() > 0 {
				ev, err := tl.RemoveEarliest()
				require.NoError(t, err)
				got = append(got, int64(ev.ID))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeline_RemoveEarliest_Empty_ReturnsErrEmptyTimeline(t *testing.T) {
	tl := NewTimeline()

	ev, err := tl.RemoveEarliest()

	assert.Nil(t, ev)
	assert.True(t, errors.Is(err, ErrEmptyTimeline))
}

func TestTimeline_RemoveEarliest_LastEvent_LeavesDistinguishedEmptyState(t *testing.T) {
	// GIVEN a timeline with one event
	tl := NewTimeline()
	_, err := tl.Insert(EventEndOfSimulation, 100, nil)
	require.NoError(t, err)

	// WHEN it is removed
	_, err = tl.RemoveEarliest()
	require.NoError(t, err)

	// THEN the timeline is empty and accepts inserts again from the empty case
	assert.Equal(t, 0, tl.Len())
	assert.Empty(t, tl.Events())
	_, err = tl.Insert(EventArrival, 5, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, tl.Len())
}

// TestTimeline_RandomOperations_StaySorted checks the sortedness invariant
// after an interleaving of inserts and removes: the pending events must equal
// a stable sort by time of the still-pending subset in insertion order.
func TestTimeline_RandomOperations_StaySorted(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tl := NewTimeline()
	var pending []*Event // insertion order

	for i := 0; i < 2000; i++ {
		if tl.Len() > 0 && rng.Intn(3) == 0 {
			ev, err := tl.RemoveEarliest()
			require.NoError(t, err)
			// the removed event must be the earliest, first inserted among equals
			expected := stableByTime(pending)[0]
			require.Same(t, expected, ev)
			pending = removeEvent(pending, ev)
			continue
		}
		ev, err := tl.Insert(EventArrival, int64(rng.Intn(50)), nil)
		require.NoError(t, err)
		pending = append(pending, ev)

		require.True(t, tl.list.sorted(), "timeline lost its order after insert %d", i)
		require.Equal(t, stableByTime(pending), tl.Events())
	}
}

func stableByTime(events []*Event) []*Event {
	sorted := append([]*Event(nil), events...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })
	return sorted
}

func removeEvent(events []*Event, target *Event) []*Event {
	for i, ev := range events {
		if ev == target {
			return append(events[:i], events[i+1:]...)
		}
	}
	return events
}

func TestTimeline_String(t *testing.T) {
	tl := NewTimeline()
	_, _ = tl.Insert(EventEndOfSimulation, 100, nil)
	_, _ = tl.Insert(EventArrival, 20, &Customer{ID: "customer_0"})

	assert.Equal(t, "[Arrival#1@20(customer_0) EndOfSimulation#0@100]", tl.String())
}
