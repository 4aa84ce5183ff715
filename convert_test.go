package nonempty

import (
	"container/list"
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSeqFromEmptySlice(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	if _, err := SeqFromSlice([]int{}); !errors.Is(err, ErrSourceEmpty) {
		t.Errorf("expected ErrSourceEmpty, got %v", err)
	}
	if _, err := SeqFromSlice[int](nil); !errors.Is(err, ErrSourceEmpty) {
		t.Errorf("expected ErrSourceEmpty for nil slice, got %v", err)
	}
}

func TestSeqFromSingletonSlice(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s, err := SeqFromSlice([]string{"only"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 1 || s.At(0) != "only" {
		t.Errorf("expected the length-1 sequence [only], got %s", s)
	}
}

func TestSliceRoundTrip(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	src := []int{5, 6, 7, 8}
	s, err := SeqFromSlice(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := s.ToSlice()
	if !slices.Equal(out, src) {
		t.Errorf("round trip = %v, should be %v", out, src)
	}
	out[0] = 99 // must not write through to the sequence
	if s.At(0) != 5 {
		t.Errorf("ToSlice aliases the sequence storage")
	}
	src[1] = 99
	if s.At(1) != 6 {
		t.Errorf("SeqFromSlice aliases the source slice")
	}
}

func TestListRoundTrip(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	l := list.New()
	l.PushBack("a")
	l.PushBack("b")
	l.PushBack("c")
	s, err := SeqFromList[string](l)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(s.ToSlice(), []string{"a", "b", "c"}) {
		t.Fatalf("sequence from list = %v", s.ToSlice())
	}
	back := s.ToList()
	var collected []string
	for el := back.Front(); el != nil; el = el.Next() {
		collected = append(collected, el.Value.(string))
	}
	if !slices.Equal(collected, []string{"a", "b", "c"}) {
		t.Errorf("list round trip = %v", collected)
	}
}

func TestSeqFromEmptyList(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	if _, err := SeqFromList[int](list.New()); !errors.Is(err, ErrSourceEmpty) {
		t.Errorf("expected ErrSourceEmpty, got %v", err)
	}
	if _, err := SeqFromList[int](nil); !errors.Is(err, ErrSourceEmpty) {
		t.Errorf("expected ErrSourceEmpty for nil list, got %v", err)
	}
}

func TestSeqFromMistypedListPanics(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	defer func() {
		if recover() == nil {
			t.Errorf("mistyped list element should panic")
		}
	}()
	l := list.New()
	l.PushBack("not an int")
	_, _ = SeqFromList[int](l)
}
