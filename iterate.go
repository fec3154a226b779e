package ordmap

import (
	"fmt"
	"iter"
)

// Iterator walks the entries of a tree in ascending or descending key order.
//
// An iterator is positioned before the first entry after creation; call Next
// to advance it. Stepping from one entry to the next follows child and parent
// links of the tree and needs no additional memory.
//
// Iterators remember the version of the tree at creation time. If the tree is
// structurally changed afterwards, the next call to Next returns false and
// Err reports ErrInvalidStructuralState. Overwriting values (with Tree.Set or
// Iterator.SetValue) is not a structural change.
//
// Abandoning an iterator halfway requires no cleanup.
type Iterator[K, V any] struct {
	tree    *Tree[K, V]
	cur     *node[K, V]
	version uint64
	reverse bool
	started bool
	done    bool
	err     error
}

// Ascend returns an iterator over the entries in ascending key order.
func (t *Tree[K, V]) Ascend() *Iterator[K, V] {
	return &Iterator[K, V]{tree: t, version: t.version}
}

// Descend returns an iterator over the entries in descending key order.
func (t *Tree[K, V]) Descend() *Iterator[K, V] {
	return &Iterator[K, V]{tree: t, version: t.version, reverse: true}
}

// Next advances the iterator to the next entry and reports whether there is
// one. It returns false when the entries are exhausted or when the tree has been
// structurally changed since the iterator has been created; use Err to tell
// the two apart.
func (it *Iterator[K, V]) Next() bool {
	if it.done || it.err != nil {
		return false
	}
	if it.version != it.tree.version {
		it.err = fmt.Errorf("%w: version %d, tree is at %d",
			ErrInvalidStructuralState, it.version, it.tree.version)
		it.cur = nil
		return false
	}
	switch {
	case !it.started:
		it.started = true
		if it.tree.root != nil {
			if it.reverse {
				it.cur = it.tree.root.rightmost()
			} else {
				it.cur = it.tree.root.leftmost()
			}
		}
	case it.reverse:
		it.cur = it.cur.predecessor()
	default:
		it.cur = it.cur.successor()
	}
	if it.cur == nil {
		it.done = true
		return false
	}
	return true
}

// Valid reports whether the iterator is positioned at an entry.
func (it *Iterator[K, V]) Valid() bool {
	return it.cur != nil
}

// Key returns the key of the current entry.
// It panics if the iterator is not positioned at an entry.
func (it *Iterator[K, V]) Key() K {
	assert(it.cur != nil, "iterator is not positioned at an entry")
	return it.cur.key
}

// Value returns the value of the current entry.
// It panics if the iterator is not positioned at an entry.
func (it *Iterator[K, V]) Value() V {
	assert(it.cur != nil, "iterator is not positioned at an entry")
	return it.cur.value
}

// SetValue overwrites the value of the current entry in place, without
// moving the iterator. It panics if the iterator is not positioned at an entry.
func (it *Iterator[K, V]) SetValue(value V) {
	assert(it.cur != nil, "iterator is not positioned at an entry")
	it.cur.value = value
}

// Err returns ErrInvalidStructuralState (wrapped) if the iteration has been
// stopped because the tree changed its shape, nil otherwise.
func (it *Iterator[K, V]) Err() error {
	return it.err
}

// --- Sequences -------------------------------------------------------------

// All returns a sequence of all entries in ascending key order.
//
// Changing the structure of the tree while ranging over the sequence is a
// programming error: the sequence panics with an error wrapping
// ErrInvalidStructuralState, much like Go maps do on concurrent writes.
// Use an Iterator to handle this condition gracefully.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		rangeEntries(t.Ascend(), yield)
	}
}

// Backward returns a sequence of all entries in descending key order.
// Structural changes during iteration make it panic, as for All.
func (t *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		rangeEntries(t.Descend(), yield)
	}
}

// Keys returns a sequence of all keys in ascending order.
func (t *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns a sequence of all values in ascending order of their keys.
func (t *Tree[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range t.All() {
			if !yield(v) {
				return
			}
		}
	}
}

func rangeEntries[K, V any](it *Iterator[K, V], yield func(K, V) bool) {
	for it.Next() {
		if !yield(it.cur.key, it.cur.value) {
			return
		}
	}
	if it.err != nil {
		panic(it.err)
	}
}

// --- Visitors --------------------------------------------------------------

// ForEach calls f for every entry in ascending key order.
//
// Iteration stops at the first callback error and returns that error to the
// caller. If f changes the structure of the tree, ForEach stops and returns
// ErrInvalidStructuralState.
func (t *Tree[K, V]) ForEach(f func(key K, value V) error) error {
	return visit(t.Ascend(), func(n *node[K, V]) error {
		return f(n.key, n.value)
	})
}

// ForEachReverse calls f for every entry in descending key order.
// Errors are handled as for ForEach.
func (t *Tree[K, V]) ForEachReverse(f func(key K, value V) error) error {
	return visit(t.Descend(), func(n *node[K, V]) error {
		return f(n.key, n.value)
	})
}

// ForEachMutable calls f for every entry in ascending key order, handing out
// a pointer to the entry's value. f may rewrite the value in place.
// Errors are handled as for ForEach.
func (t *Tree[K, V]) ForEachMutable(f func(key K, value *V) error) error {
	return visit(t.Ascend(), func(n *node[K, V]) error {
		return f(n.key, &n.value)
	})
}

func visit[K, V any](it *Iterator[K, V], f func(*node[K, V]) error) error {
	for it.Next() {
		if err := f(it.cur); err != nil {
			return err
		}
	}
	return it.Err()
}
