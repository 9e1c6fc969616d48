package sim

import (
	"errors"
	"math/rand"
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dequeueAllIDs(t *testing.T, rq *ReadyQueue) []string {
	t.Helper()
	ids := make([]string, 0, rq.Len())
	for rq.Len() > 0 {
		c, err := rq.DequeueShortest()
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}
	return ids
}

func TestReadyQueue_ShorterBurstServedFirst(t *testing.T) {
	// GIVEN two customers arriving at the same tick with bursts 10 and 2
	rq := NewReadyQueue()
	long := &Customer{ID: "long", ArrivalTime: 40, Burst: 10}
	short := &Customer{ID: "short", ArrivalTime: 40, Burst: 2}
	require.NoError(t, rq.Enqueue(long))
	require.NoError(t, rq.Enqueue(short))

	// WHEN the server picks the next customer
	got, err := rq.DequeueShortest()

	// THEN the burst-2 customer is served first
	require.NoError(t, err)
	assert.Same(t, short, got)
	assert.Equal(t, 1, rq.Len())
}

func TestReadyQueue_EqualBursts_FIFO(t *testing.T) {
	rq := NewReadyQueue()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, rq.Enqueue(&Customer{ID: id, Burst: 7}))
	}

	assert.Equal(t, []string{"A", "B", "C"}, dequeueAllIDs(t, rq))
}

func TestReadyQueue_Enqueue_FourCases(t *testing.T) {
	tests := []struct {
		name   string
		bursts []int64
		want   []string
	}{
		{"empty", []int64{5}, []string{"c0"}},
		{"shorter than shortest", []int64{5, 3}, []string{"c1", "c0"}},
		{"not shorter than longest", []int64{3, 5, 5}, []string{"c0", "c1", "c2"}},
		{"middle", []int64{1, 9, 4}, []string{"c0", "c2", "c1"}},
		{"middle behind equal bursts", []int64{1, 4, 4, 9, 4}, []string{"c0", "c1", "c2", "c4", "c3"}},
		{"equal to shortest goes behind it", []int64{2, 8, 2}, []string{"c0", "c2", "c1"}},
		{"zero burst", []int64{3, 0, 0}, []string{"c1", "c2", "c0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rq := NewReadyQueue()
			for i, b := range tt.bursts {
				require.NoError(t, rq.Enqueue(&Customer{ID: "c" + string(rune('0'+i)), Burst: b}))
			}
			assert.Equal(t, tt.want, dequeueAllIDs(t, rq))
		})
	}
}

func TestReadyQueue_DequeueShortest_Empty_ReturnsErrEmptyQueue(t *testing.T) {
	rq := NewReadyQueue()

	c, err := rq.DequeueShortest()

	assert.Nil(t, c)
	assert.True(t, errors.Is(err, ErrEmptyQueue))
}

func TestReadyQueue_Enqueue_Nil_Panics(t *testing.T) {
	rq := NewReadyQueue()
	assert.Panics(t, func() { _ = rq.Enqueue(nil) })
}

func TestReadyQueue_Peek(t *testing.T) {
	rq := NewReadyQueue()
	assert.Nil(t, rq.Peek())

	a := &Customer{ID: "A", Burst: 9}
	b := &Customer{ID: "B", Burst: 4}
	require.NoError(t, rq.Enqueue(a))
	require.NoError(t, rq.Enqueue(b))

	assert.Same(t, b, rq.Peek())
	assert.Equal(t, 2, rq.Len(), "Peek must not remove")
}

// TestReadyQueue_RandomOperations_StaySorted checks that the queue always
// equals a stable sort by burst of the waiting customers in enqueue order.
func TestReadyQueue_RandomOperations_StaySorted(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	rq := NewReadyQueue()
	var waiting []*Customer

	for i := 0; i < 2000; i++ {
		if rq.Len() > 0 && rng.Intn(3) == 0 {
			c, err := rq.DequeueShortest()
			require.NoError(t, err)
			require.Same(t, stableByBurst(waiting)[0], c)
			for j, w := range waiting {
				if w == c {
					waiting = append(waiting[:j], waiting[j+1:]...)
					break
				}
			}
			continue
		}
		c := &Customer{ID: strconv.Itoa(i), Burst: int64(rng.Intn(20))}
		require.NoError(t, rq.Enqueue(c))
		waiting = append(waiting, c)
		require.Equal(t, stableByBurst(waiting), rq.Items())
	}
}

func stableByBurst(customers []*Customer) []*Customer {
	sorted := append([]*Customer(nil), customers...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Burst < sorted[j].Burst })
	return sorted
}
