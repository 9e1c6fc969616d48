package sim

import (
	"testing"
)

// fixedSampler returns the given durations in order and repeats the last one
// once the list is exhausted.
type fixedSampler struct {
	values []int64
	next   int
}

func (s *fixedSampler) Sample() int64 {
	if s.next >= len(s.values) {
		return s.values[len(s.values)-1]
	}
	v := s.values[s.next]
	s.next++
	return v
}

// newScriptedSimulator builds a Simulator whose interarrival times and bursts
// are taken from the given lists instead of the RNG.
func newScriptedSimulator(t *testing.T, length int64, interarrivals, bursts []int64) *Simulator {
	t.Helper()
	s, err := NewSimulator(NewConfig(5, 3, length, 1))
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	s.Interarrival = &fixedSampler{values: interarrivals}
	s.Service = &fixedSampler{values: bursts}
	return s
}

// pendingKinds counts the pending events of each kind.
func pendingKinds(tl *Timeline) map[EventKind]int {
	counts := make(map[EventKind]int)
	for _, ev := range tl.Events() {
		counts[ev.Kind]++
	}
	return counts
}
