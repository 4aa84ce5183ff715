package nonempty

import (
	"container/list"
	"slices"

	"github.com/npillmayer/nonempty/capacity"
)

// SeqFromSlice converts a plain (possibly empty) slice into a non-empty
// sequence. It fails with ErrSourceEmpty if the slice holds no items;
// otherwise the first item moves into the static slot and the remainder is
// copied into the dynamic portion, preserving order. The source slice is not
// aliased.
func SeqFromSlice[T any](src []T) (*Seq[T], error) {
	if len(src) == 0 {
		return nil, ErrSourceEmpty
	}
	tracer().Debugf("non-empty sequence from slice of %d items", len(src))
	return &Seq[T]{first: src[0], dynamic: slices.Clone(src[1:])}, nil
}

// ToSlice converts the sequence into a plain slice of length Len(), with the
// statically held item up front. The slice is freshly allocated and shares no
// storage with the sequence.
func (s *Seq[T]) ToSlice() []T {
	out := make([]T, 0, s.Len())
	out = append(out, s.first)
	return append(out, s.dynamic...)
}

// SeqFromList converts a container/list, Go's double-ended queue stand-in,
// into a non-empty sequence, front to back. It fails with ErrSourceEmpty if
// the list holds no elements. Every element value must be of type T; a
// mistyped element is a caller error and panics.
func SeqFromList[T any](src *list.List) (*Seq[T], error) {
	if src == nil || src.Len() == 0 {
		return nil, ErrSourceEmpty
	}
	tracer().Debugf("non-empty sequence from list of %d elements", src.Len())
	el := src.Front()
	s := WithCapacity(listItem[T](el), capacity.Total[capacity.One](uint(src.Len())))
	for el = el.Next(); el != nil; el = el.Next() {
		s.Push(listItem[T](el))
	}
	return s, nil
}

// ToList converts the sequence into a freshly allocated container/list, with
// the statically held item at the front.
func (s *Seq[T]) ToList() *list.List {
	l := list.New()
	l.PushBack(s.first)
	for _, item := range s.dynamic {
		l.PushBack(item)
	}
	return l
}

func listItem[T any](el *list.Element) T {
	item, ok := el.Value.(T)
	assert(ok, "list element is not of the sequence's item type")
	return item
}
