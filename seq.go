package nonempty

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/npillmayer/nonempty/capacity"
)

// Seq is an ordered sequence of items which is guaranteed to hold at least
// one item.
//
// A sequence created by
//
//	nonempty.New(item)
//
// has length 1 and did not allocate a backing store. The first item lives in
// a field of the struct itself; items beyond it live in an ordinary Go slice.
// Index 0 addresses the statically held item, index i > 0 addresses slot i-1
// of the slice. Every mutating operation keeps the length at 1 or above; the
// only operation which may remove the final item is Pop, which consumes the
// sequence (see there).
//
// The zero value of Seq is a valid sequence holding the zero value of T as
// its single item.
type Seq[T any] struct {
	first   T
	dynamic []T
}

// New creates a sequence holding a single item. The dynamic portion of the
// sequence does not allocate until more items are pushed.
func New[T any](first T) *Seq[T] {
	return &Seq[T]{first: first}
}

// SeqOf creates a sequence from one mandatory item followed by any number of
// additional ones, in order. It is the literal-construction helper of this
// package, equivalent to New followed by a Push per additional item.
func SeqOf[T any](first T, rest ...T) *Seq[T] {
	s := New(first)
	s.Append(rest...)
	return s
}

// WithCapacity creates a sequence holding a single item, with the dynamic
// portion pre-allocated to hold at least c.Dynamic() additional items without
// reallocating. The backing store may end up larger than requested; Capacity
// reports the allocation actually made.
//
// Capacity is a hint, not a limit. A request exceeding the platform's maximum
// allocation size panics, as any Go allocation of that size would.
func WithCapacity[T any](first T, c capacity.Capacity[capacity.One]) *Seq[T] {
	return &Seq[T]{first: first, dynamic: make([]T, 0, int(c.Dynamic()))}
}

// Capacity reports the number of items the sequence can hold without
// reallocating, expressed as a two-view capacity value. The dynamic view is
// the capacity of the backing slice, which may exceed what was requested at
// construction.
func (s *Seq[T]) Capacity() capacity.Capacity[capacity.One] {
	return capacity.FromDynamic[capacity.One](uint(cap(s.dynamic)))
}

// Len returns the number of items in the sequence, which is always at least 1.
func (s *Seq[T]) Len() int {
	return 1 + len(s.dynamic)
}

// IsEmpty returns false. It exists for interface parity with possibly-empty
// collections and is never computed.
func (s *Seq[T]) IsEmpty() bool {
	return false
}

// Reserve grows the dynamic portion's backing store, if necessary, so that at
// least additional more items fit without reallocating. The store may grow
// further to amortize future reservations. Non-positive counts and sufficient
// existing capacity make Reserve a no-op.
func (s *Seq[T]) Reserve(additional int) {
	if additional <= 0 {
		return
	}
	s.dynamic = slices.Grow(s.dynamic, additional)
}

// ReserveExact grows the dynamic portion's backing store, if necessary, to fit
// exactly additional more items. Unlike Reserve it does not over-allocate to
// amortize future growth; prefer Reserve unless the final size is known.
func (s *Seq[T]) ReserveExact(additional int) {
	if additional <= 0 || cap(s.dynamic)-len(s.dynamic) >= additional {
		return
	}
	grown := make([]T, len(s.dynamic), len(s.dynamic)+additional)
	copy(grown, s.dynamic)
	s.dynamic = grown
}

// Push appends an item to the end of the sequence. Amortized O(1).
func (s *Seq[T]) Push(item T) {
	s.dynamic = append(s.dynamic, item)
}

// Append appends all given items to the end of the sequence, in order.
func (s *Seq[T]) Append(items ...T) {
	s.dynamic = append(s.dynamic, items...)
}

// Extend appends every item produced by the iterator to the end of the
// sequence, in production order.
func (s *Seq[T]) Extend(items iter.Seq[T]) {
	for item := range items {
		s.dynamic = append(s.dynamic, item)
	}
}

// Pop removes and returns the last item of the sequence.
//
// Pop conceptually consumes its receiver and hands back a successor. As long
// as the dynamic portion holds items, the successor is the receiver itself,
// shrunk by one. Once only the statically held item remains, removing it
// would contradict non-emptiness, so the sequence as a whole is consumed: Pop
// returns a nil successor together with the final item, and the receiver must
// not be used afterwards. Callers have to check the successor for nil, which
// is exactly the point: the possibly-empty outcome is pushed back to the
// caller instead of living on as a stale object.
func (s *Seq[T]) Pop() (*Seq[T], T) {
	if n := len(s.dynamic); n > 0 {
		item := s.dynamic[n-1]
		var zero T
		s.dynamic[n-1] = zero // drop the reference, the slot may live on
		s.dynamic = s.dynamic[:n-1]
		return s, item
	}
	return nil, s.first
}

// At returns the item at position i. The sequence is indexed from 0, with
// position 0 being the statically held item. Out-of-range positions panic;
// index validity is a caller precondition, as with slice indexing.
func (s *Seq[T]) At(i int) T {
	assert(i >= 0 && i < s.Len(), "sequence index out of range")
	if i == 0 {
		return s.first
	}
	return s.dynamic[i-1]
}

// SetAt replaces the item at position i. Out-of-range positions panic.
func (s *Seq[T]) SetAt(i int, item T) {
	assert(i >= 0 && i < s.Len(), "sequence index out of range")
	if i == 0 {
		s.first = item
		return
	}
	s.dynamic[i-1] = item
}

// First returns the first item of the sequence. It cannot fail: a first item
// always exists.
func (s *Seq[T]) First() T {
	return s.first
}

// Last returns the last item of the sequence. It cannot fail.
func (s *Seq[T]) Last() T {
	if n := len(s.dynamic); n > 0 {
		return s.dynamic[n-1]
	}
	return s.first
}

// All iterates over the items of the sequence in order.
func (s *Seq[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !yield(s.first) {
			return
		}
		for _, item := range s.dynamic {
			if !yield(item) {
				return
			}
		}
	}
}

// String returns a debug rendering of the sequence, marking the split between
// the statically held item and the dynamic portion.
func (s *Seq[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "⟨%v", s.first)
	if len(s.dynamic) > 0 {
		b.WriteString(" |")
		for _, item := range s.dynamic {
			fmt.Fprintf(&b, " %v", item)
		}
	}
	b.WriteRune('⟩')
	return b.String()
}
