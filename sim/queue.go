// Implements the ReadyQueue, which holds all customers waiting for the server.
// Customers are enqueued on arrival and served Shortest-Job-First.

package sim

import (
	"fmt"
	"strings"
)

// ReadyQueue keeps waiting customers in ascending burst order. Among customers
// with equal bursts the earliest enqueued is served first. Service is
// non-preemptive: a customer leaves the queue only when the server is free.
type ReadyQueue struct {
	list *orderedList[*Customer]
}

// NewReadyQueue creates an empty ReadyQueue.
func NewReadyQueue() *ReadyQueue {
	return &ReadyQueue{
		list: newOrderedList(func(c *Customer) int64 { return c.Burst }),
	}
}

// Enqueue inserts a customer at its SJF position.
func (rq *ReadyQueue) Enqueue(c *Customer) error {
	if c == nil {
		panic("Enqueue: customer must not be nil")
	}
	if err := rq.list.insert(c); err != nil {
		return fmt.Errorf("ready queue enqueue %s: %w", c.ID, err)
	}
	return nil
}

// DequeueShortest removes and returns the customer with the smallest burst.
func (rq *ReadyQueue) DequeueShortest() (*Customer, error) {
	c, ok := rq.list.popFront()
	if !ok {
		return nil, ErrEmptyQueue
	}
	return c, nil
}

// Peek returns the customer that DequeueShortest would return, without
// removing it. Returns nil if the queue is empty.
func (rq *ReadyQueue) Peek() *Customer {
	if rq.list.Len() == 0 {
		return nil
	}
	return rq.list.items[0]
}

// Len returns the number of waiting customers.
func (rq *ReadyQueue) Len() int {
	return rq.list.Len()
}

// Items returns the queue contents in service order.
// The returned slice is the queue's internal storage; callers MUST NOT modify it.
func (rq *ReadyQueue) Items() []*Customer {
	return rq.list.items
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range rq.list.items {
		sb.WriteString(fmt.Sprint(val))
		if i < len(rq.list.items)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
