package ordmap

import "fmt"

// Set associates value with key. If key is already present, its value is
// overwritten in place; this is not a structural change and does not
// invalidate iterators.
func (t *Tree[K, V]) Set(key K, value V) {
	n, parent, dir := t.locate(key)
	if n != nil {
		n.value = value
		return
	}
	t.emplace(parent, dir, key, value)
}

// Add inserts a new entry. It returns ErrDuplicateKey if key is already present.
func (t *Tree[K, V]) Add(key K, value V) error {
	n, parent, dir := t.locate(key)
	if n != nil {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	t.emplace(parent, dir, key, value)
	return nil
}

// AddIfAbsent inserts a new entry if key is not yet present and reports
// whether it did. The value of an existing entry is left untouched.
func (t *Tree[K, V]) AddIfAbsent(key K, value V) bool {
	n, parent, dir := t.locate(key)
	if n != nil {
		return false
	}
	t.emplace(parent, dir, key, value)
	return true
}

// Remove deletes the entry for key and reports whether there was one.
// Removing an absent key is a no-op.
func (t *Tree[K, V]) Remove(key K) bool {
	n, _, _ := t.locate(key)
	if n == nil {
		return false
	}
	t.splice(n)
	return true
}

// Clear removes all entries. Clear always counts as a structural change,
// even for an empty tree.
func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.count = 0
	t.version++
	tracer().Debugf("ordmap: cleared, version=%d", t.version)
	t.checkIfConfigured("clear")
}

// emplace links a new leaf into the empty slot identified by locate.
func (t *Tree[K, V]) emplace(parent *node[K, V], dir direction, key K, value V) {
	n := &node[K, V]{key: key, value: value, parent: parent}
	switch dir {
	case atRoot:
		assert(t.root == nil && parent == nil, "emplace at root of non-empty tree")
		t.root = n
	case toLeft:
		assert(parent.left == nil, "emplace into occupied left slot")
		parent.left = n
	case toRight:
		assert(parent.right == nil, "emplace into occupied right slot")
		parent.right = n
	}
	t.count++
	t.version++
	t.checkIfConfigured("insert")
}

// splice removes n from the tree, reconnecting its subtrees such that the
// ordering and the parent links stay intact.
func (t *Tree[K, V]) splice(n *node[K, V]) {
	switch {
	case n.left == nil:
		tracer().Debugf("ordmap: splice node with at most a right child")
		t.replace(n, n.right)
	case n.right == nil:
		tracer().Debugf("ordmap: splice node with a left child only")
		t.replace(n, n.left)
	default:
		tracer().Debugf("ordmap: splice node with two children")
		succ := n.right.leftmost()
		if succ != n.right {
			// succ has no left child; lift its right subtree into its place
			t.replace(succ, succ.right)
			succ.right = n.right
			succ.right.parent = succ
		}
		t.replace(n, succ)
		succ.left = n.left
		succ.left.parent = succ
	}
	n.left, n.right, n.parent = nil, nil, nil
	t.count--
	t.version++
	t.checkIfConfigured("remove")
}

// replace puts subtree v into the slot of u, i.e. u's parent (or the root)
// will point to v afterwards. u's own links are not changed.
func (t *Tree[K, V]) replace(u, v *node[K, V]) {
	switch {
	case u.parent == nil:
		t.root = v
	case u.parent.left == u:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}
