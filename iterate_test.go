package ordmap

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestIteratorInvalidatedByInsert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()
	//
	tree := buildIntTree(t, 1, 2, 3)
	it := tree.Ascend()
	if !it.Next() || it.Key() != 1 {
		t.Fatalf("expected first entry 1")
	}
	if err := tree.Add(4, 0); err != nil {
		t.Fatalf("mutation during iteration must succeed, got %v", err)
	}
	if it.Next() {
		t.Fatalf("expected stale iterator to refuse advancing, got key %d", it.Key())
	}
	if !errors.Is(it.Err(), ErrInvalidStructuralState) {
		t.Fatalf("expected ErrInvalidStructuralState, got %v", it.Err())
	}
	if it.Valid() || it.Next() {
		t.Errorf("stale iterator should stay invalid")
	}
	if tree.Count() != 4 {
		t.Errorf("expected insert to have happened")
	}
}

func TestIteratorInvalidatedByRemoveAndClear(t *testing.T) {
	tree := buildIntTree(t, 1, 2, 3)
	it := tree.Descend()
	it.Next()
	tree.Remove(42) // no-op
	if !it.Next() || it.Key() != 2 {
		t.Fatalf("removal of absent key must not invalidate iterators")
	}
	tree.Remove(1)
	if it.Next() || !errors.Is(it.Err(), ErrInvalidStructuralState) {
		t.Fatalf("expected removal to invalidate iterator")
	}
	it = tree.Ascend()
	tree.Clear()
	if it.Next() || !errors.Is(it.Err(), ErrInvalidStructuralState) {
		t.Fatalf("expected clear to invalidate unstarted iterator")
	}
}

func TestIteratorValueMutationKeepsPosition(t *testing.T) {
	tree := buildIntTree(t, 20, 10, 30)
	it := tree.Ascend()
	var keys []int
	for it.Next() {
		keys = append(keys, it.Key())
		it.SetValue(it.Key() * 2)
		tree.Set(it.Key(), it.Value()+1) // overwrite is not structural
	}
	if it.Err() != nil {
		t.Fatalf("value mutation invalidated iterator: %v", it.Err())
	}
	if !slices.Equal(keys, []int{10, 20, 30}) {
		t.Errorf("got keys %v", keys)
	}
	if v, _ := tree.Get(20); v != 41 {
		t.Errorf("expected value 41, have %d", v)
	}
}

func TestIteratorExhaustedThenMutated(t *testing.T) {
	tree := buildIntTree(t, 1)
	it := tree.Ascend()
	for it.Next() {
	}
	tree.Set(2, 2)
	if it.Next() || it.Err() != nil {
		t.Errorf("exhausted iterator should stay exhausted without error, err=%v", it.Err())
	}
}

func TestIteratorOnEmptyTree(t *testing.T) {
	tree := NewOrdered[int, int]()
	it := tree.Ascend()
	if it.Next() || it.Err() != nil {
		t.Errorf("empty tree should yield nothing")
	}
}

func TestReverseIsMirror(t *testing.T) {
	tree := buildIntTree(t, 8, 4, 12, 2, 6, 10, 14, 1, 3, 5, 7, 9, 11, 13, 15)
	var fwd, bwd []int
	for k := range tree.Keys() {
		fwd = append(fwd, k)
	}
	for k := range tree.Backward() {
		bwd = append(bwd, k)
	}
	slices.Reverse(bwd)
	if !slices.Equal(fwd, bwd) || len(fwd) != 15 {
		t.Fatalf("forward %v, reversed backward %v", fwd, bwd)
	}
	var vals []int
	for v := range tree.Values() {
		vals = append(vals, v)
	}
	if len(vals) != 15 || vals[0] != 7 {
		t.Errorf("unexpected values %v", vals)
	}
}

func TestSequenceEarlyBreak(t *testing.T) {
	tree := buildIntTree(t, 1, 2, 3, 4)
	n := 0
	for range tree.All() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("expected break after 2 entries")
	}
}

func TestSequencePanicsOnStructuralChange(t *testing.T) {
	tree := buildIntTree(t, 1, 2, 3)
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvalidStructuralState) {
			t.Fatalf("expected panic with ErrInvalidStructuralState, got %v", r)
		}
	}()
	for k := range tree.All() {
		tree.Set(k+10, 0)
	}
	t.Fatalf("expected panic")
}

func TestForEachVariants(t *testing.T) {
	tree := buildIntTree(t, 2, 1, 3)
	var got []string
	err := tree.ForEach(func(k, v int) error {
		got = append(got, fmt.Sprintf("%d:%d", k, v))
		return nil
	})
	if err != nil || !slices.Equal(got, []string{"1:1", "2:0", "3:2"}) {
		t.Fatalf("ForEach: %v, %v", got, err)
	}
	got = got[:0]
	err = tree.ForEachReverse(func(k, v int) error {
		got = append(got, fmt.Sprintf("%d", k))
		return nil
	})
	if err != nil || !slices.Equal(got, []string{"3", "2", "1"}) {
		t.Fatalf("ForEachReverse: %v, %v", got, err)
	}
	err = tree.ForEachMutable(func(k int, v *int) error {
		*v = k * 100
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := tree.Get(3); v != 300 {
		t.Errorf("ForEachMutable did not rewrite value, have %d", v)
	}
}

func TestForEachStopsAtError(t *testing.T) {
	tree := buildIntTree(t, 1, 2, 3)
	stop := errors.New("stop")
	calls := 0
	err := tree.ForEach(func(k, _ int) error {
		calls++
		if k == 2 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) || calls != 2 {
		t.Errorf("expected stop after 2 calls, got %d calls, err=%v", calls, err)
	}
}

func TestForEachReportsStructuralChange(t *testing.T) {
	tree := buildIntTree(t, 1, 2, 3)
	calls := 0
	err := tree.ForEach(func(k, _ int) error {
		calls++
		tree.Remove(3)
		return nil
	})
	if !errors.Is(err, ErrInvalidStructuralState) || calls != 1 {
		t.Errorf("expected ErrInvalidStructuralState after 1 call, got %d calls, err=%v", calls, err)
	}
}
