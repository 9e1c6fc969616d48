package sim

import (
	"fmt"
	"slices"
)

// orderedList is a slice kept in non-decreasing key order. Items with equal
// keys keep their insertion order: a new item is placed after every item that
// shares its key. It backs both the Timeline (keyed by event time) and the
// ReadyQueue (keyed by burst).
//
// Not thread-safe. Owned by a single Simulator.
type orderedList[T any] struct {
	items []T
	key   func(T) int64
}

func newOrderedList[T any](key func(T) int64) *orderedList[T] {
	return &orderedList[T]{key: key}
}

func (l *orderedList[T]) Len() int {
	return len(l.items)
}

// insert places item at its sorted position. The four cases are kept apart so
// that the common appends and prepends never scan.
func (l *orderedList[T]) insert(item T) error {
	k := l.key(item)
	n := len(l.items)

	// empty
	if n == 0 {
		l.items = append(l.items, item)
		return nil
	}
	// strictly earlier than the current head
	if k < l.key(l.items[0]) {
		l.items = slices.Insert(l.items, 0, item)
		return nil
	}
	// no earlier than the current tail
	if k >= l.key(l.items[n-1]) {
		l.items = append(l.items, item)
		return nil
	}

	// Middle: the head is <= k and the tail is > k, so the first item with a
	// key strictly greater than k lies in [1, n-1]. The scan is bounded by the
	// tail and never walks past it.
	for i := 1; i < n; i++ {
		if l.key(l.items[i]) > k {
			l.items = slices.Insert(l.items, i, item)
			return nil
		}
	}
	return fmt.Errorf("no insertion point for key %d among %d items: %w", k, n, ErrInvariantViolation)
}

// popFront removes and returns the first item. ok is false on an empty list.
// The vacated slot is cleared so the list keeps no reference to the item.
func (l *orderedList[T]) popFront() (item T, ok bool) {
	if len(l.items) == 0 {
		return item, false
	}
	item = l.items[0]
	var zero T
	l.items[0] = zero
	l.items = l.items[1:]
	if len(l.items) == 0 {
		l.items = nil
	}
	return item, true
}

// sorted reports whether the list still satisfies its ordering invariant.
func (l *orderedList[T]) sorted() bool {
	return slices.IsSortedFunc(l.items, func(a, b T) int {
		ka, kb := l.key(a), l.key(b)
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		}
		return 0
	})
}
