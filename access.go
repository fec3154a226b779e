package ordmap

import "fmt"

// Get returns the value for key, or ErrKeyNotFound if key is not present.
func (t *Tree[K, V]) Get(key K) (V, error) {
	n, _, _ := t.locate(key)
	if n == nil {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return n.value, nil
}

// TryGet returns the value for key and reports whether key is present.
func (t *Tree[K, V]) TryGet(key K) (V, bool) {
	n, _, _ := t.locate(key)
	if n == nil {
		var zero V
		return zero, false
	}
	return n.value, true
}

// GetOrDefault returns the value for key, or fallback if key is not present.
func (t *Tree[K, V]) GetOrDefault(key K, fallback V) V {
	if v, ok := t.TryGet(key); ok {
		return v
	}
	return fallback
}

// ContainsKey reports whether key is present.
func (t *Tree[K, V]) ContainsKey(key K) bool {
	n, _, _ := t.locate(key)
	return n != nil
}

// First returns the entry with the smallest key.
func (t *Tree[K, V]) First() (K, V, error) {
	if t.root == nil {
		var k K
		var v V
		return k, v, fmt.Errorf("%w: no first entry", ErrEmptyContainer)
	}
	n := t.root.leftmost()
	return n.key, n.value, nil
}

// Last returns the entry with the largest key.
func (t *Tree[K, V]) Last() (K, V, error) {
	if t.root == nil {
		var k K
		var v V
		return k, v, fmt.Errorf("%w: no last entry", ErrEmptyContainer)
	}
	n := t.root.rightmost()
	return n.key, n.value, nil
}

// FirstKey returns the smallest key.
func (t *Tree[K, V]) FirstKey() (K, error) {
	k, _, err := t.First()
	return k, err
}

// FirstValue returns the value of the smallest key.
func (t *Tree[K, V]) FirstValue() (V, error) {
	_, v, err := t.First()
	return v, err
}

// LastKey returns the largest key.
func (t *Tree[K, V]) LastKey() (K, error) {
	k, _, err := t.Last()
	return k, err
}

// LastValue returns the value of the largest key.
func (t *Tree[K, V]) LastValue() (V, error) {
	_, v, err := t.Last()
	return v, err
}
