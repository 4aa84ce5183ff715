package nonempty

import "iter"

// Set is an unordered collection of unique items which is guaranteed to hold
// at least one item.
//
// Storage follows the shape of Seq and Map: one item is held statically, all
// further items live in an ordinary Go map used as a set. The statically held
// item never occurs in the dynamic portion.
type Set[T comparable] struct {
	first   T
	dynamic map[T]struct{}
}

// NewSet creates a set holding a single item. The dynamic portion does not
// allocate until more items are inserted.
func NewSet[T comparable](first T) *Set[T] {
	return &Set[T]{first: first}
}

// SetOf creates a set from one mandatory item followed by any number of
// additional ones; duplicates collapse. The literal-construction helper for
// sets, equivalent to NewSet followed by an Insert per additional item.
func SetOf[T comparable](first T, rest ...T) *Set[T] {
	s := NewSet(first)
	for _, item := range rest {
		s.Insert(item)
	}
	return s
}

// Len returns the number of items, which is always at least 1.
func (s *Set[T]) Len() int {
	return 1 + len(s.dynamic)
}

// IsEmpty returns false; see Seq.IsEmpty.
func (s *Set[T]) IsEmpty() bool {
	return false
}

// Contains reports whether the set holds item.
func (s *Set[T]) Contains(item T) bool {
	if item == s.first {
		return true
	}
	_, ok := s.dynamic[item]
	return ok
}

// Insert adds item to the set, reporting whether the set grew. Inserting an
// item already present, statically held or not, is a no-op.
func (s *Set[T]) Insert(item T) bool {
	if s.Contains(item) {
		return false
	}
	if s.dynamic == nil {
		s.dynamic = make(map[T]struct{})
	}
	s.dynamic[item] = struct{}{}
	return true
}

// Delete removes item from the set, reporting whether an item was removed.
// Like Seq.Pop it conceptually consumes the receiver and returns a successor:
// removing the statically held item promotes an arbitrary dynamic item into
// the static slot, and once no such item remains the set as a whole is
// consumed and the successor is nil. The receiver must not be used after a
// nil return.
func (s *Set[T]) Delete(item T) (*Set[T], bool) {
	if item != s.first {
		if _, ok := s.dynamic[item]; !ok {
			return s, false
		}
		delete(s.dynamic, item)
		return s, true
	}
	if len(s.dynamic) == 0 {
		return nil, true
	}
	for promoted := range s.dynamic {
		s.first = promoted
		delete(s.dynamic, promoted)
		break
	}
	return s, true
}

// All iterates over the items of the set. The statically held item comes
// first; dynamic items follow in unspecified order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !yield(s.first) {
			return
		}
		for item := range s.dynamic {
			if !yield(item) {
				return
			}
		}
	}
}

// SetFromSlice converts a plain (possibly empty) slice into a non-empty set,
// collapsing duplicates. It fails with ErrSourceEmpty if the slice holds no
// items; otherwise the first item becomes the statically held one.
func SetFromSlice[T comparable](src []T) (*Set[T], error) {
	if len(src) == 0 {
		return nil, ErrSourceEmpty
	}
	tracer().Debugf("non-empty set from slice of %d items", len(src))
	s := NewSet(src[0])
	for _, item := range src[1:] {
		s.Insert(item)
	}
	return s, nil
}

// ToSlice converts the set into a freshly allocated slice holding all items,
// statically held item first, dynamic items in unspecified order.
func (s *Set[T]) ToSlice() []T {
	out := make([]T, 0, s.Len())
	out = append(out, s.first)
	for item := range s.dynamic {
		out = append(out, item)
	}
	return out
}
