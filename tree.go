package ordmap

/*
BSD 3-Clause License

Copyright (c) 2021–26, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
)

// Tree is an ordered map from keys K to values V, implemented as an
// unbalanced binary search tree.
//
// A Tree has to be created with New, NewOrdered or NewFunc; the zero value
// has no comparator and is not usable.
//
// Due to the missing balancing, the performance characteristics depend on the
// order of insertion:
//
//	Operation     |   average       |  worst case
//	--------------+-----------------+------------
//	Get/Set       |   O(log n)      |   O(n)
//	Remove        |   O(log n)      |   O(n)
//	Next/Prev     |   O(1) amort.   |   O(n)
//	First/Last    |   O(log n)      |   O(n)
//	Copy          |   O(n)          |   O(n)
type Tree[K, V any] struct {
	cfg     Config[K]
	root    *node[K, V]
	count   int
	version uint64 // incremented on every structural change
}

// node is the unit of storage. A node owns its children; parent is a
// navigation link only and is nil for the root.
type node[K, V any] struct {
	key    K
	value  V
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V]
}

type depthFrame[K, V any] struct {
	n     *node[K, V]
	depth int
}

type copyPair[K, V any] struct {
	src, dst *node[K, V]
}

// New creates an empty tree with validated configuration.
func New[K, V any](cfg Config[K]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[K, V]{cfg: cfg}, nil
}

// NewOrdered creates an empty tree ordering keys by their natural order.
func NewOrdered[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{cfg: OrderedConfig[K]()}
}

// NewFunc creates an empty tree ordering keys with compare.
// It panics if compare is nil.
func NewFunc[K, V any](compare func(a, b K) int) *Tree[K, V] {
	t, err := New[K, V](Config[K]{Compare: compare})
	if err != nil {
		panic(err.Error())
	}
	return t
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V]) Config() Config[K] {
	return t.cfg
}

// Comparator returns the function used to order keys.
func (t *Tree[K, V]) Comparator() func(a, b K) int {
	return t.cfg.Compare
}

// Count returns the number of entries in the tree.
func (t *Tree[K, V]) Count() int {
	if t == nil {
		return 0
	}
	return t.count
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Height returns the number of nodes on the longest path from the root to a
// leaf, where 0 means empty. As the tree is not balanced, Height may be as
// large as Count.
func (t *Tree[K, V]) Height() int {
	if t == nil || t.root == nil {
		return 0
	}
	height := 0
	stack := []depthFrame[K, V]{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		height = max(height, f.depth)
		if f.n.left != nil {
			stack = append(stack, depthFrame[K, V]{f.n.left, f.depth + 1})
		}
		if f.n.right != nil {
			stack = append(stack, depthFrame[K, V]{f.n.right, f.depth + 1})
		}
	}
	return height
}

// Copy returns a deep copy of the tree. The copy has the same shape as t,
// shares no nodes with it and starts with a fresh version counter.
//
// Copying does not recurse, so it is safe for degenerated trees of any depth.
func (t *Tree[K, V]) Copy() *Tree[K, V] {
	if t == nil {
		return nil
	}
	c := &Tree[K, V]{cfg: t.cfg, count: t.count}
	if t.root == nil {
		return c
	}
	c.root = &node[K, V]{key: t.root.key, value: t.root.value}
	work := []copyPair[K, V]{{t.root, c.root}}
	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]
		if p.src.left != nil {
			p.dst.left = &node[K, V]{key: p.src.left.key, value: p.src.left.value, parent: p.dst}
			work = append(work, copyPair[K, V]{p.src.left, p.dst.left})
		}
		if p.src.right != nil {
			p.dst.right = &node[K, V]{key: p.src.right.key, value: p.src.right.value, parent: p.dst}
			work = append(work, copyPair[K, V]{p.src.right, p.dst.right})
		}
	}
	return c
}

// String returns a short description of the tree, not its contents.
func (t *Tree[K, V]) String() string {
	if t == nil {
		return "Tree(nil)"
	}
	return fmt.Sprintf("Tree(count=%d, version=%d)", t.count, t.version)
}

// --- Locate ----------------------------------------------------------------

// direction tells which child slot of a parent a node occupies.
type direction int8

const (
	atRoot direction = iota
	toLeft
	toRight
)

// locate descends from the root to find key.
//
// If key is present, n is the matching node. Otherwise n is nil and parent/dir
// name the empty slot where a node for key would have to be linked. For an
// empty tree parent is nil and dir is atRoot.
func (t *Tree[K, V]) locate(key K) (n *node[K, V], parent *node[K, V], dir direction) {
	dir = atRoot
	for n = t.root; n != nil; {
		c := t.cfg.Compare(key, n.key)
		if c == 0 {
			return n, n.parent, dir
		}
		parent = n
		if c < 0 {
			n, dir = n.left, toLeft
		} else {
			n, dir = n.right, toRight
		}
	}
	return nil, parent, dir
}

func (n *node[K, V]) leftmost() *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[K, V]) rightmost() *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// successor returns the in-order successor of n, or nil if n is the last node.
func (n *node[K, V]) successor() *node[K, V] {
	if n.right != nil {
		return n.right.leftmost()
	}
	for n.parent != nil && n.parent.right == n {
		n = n.parent
	}
	return n.parent
}

// predecessor returns the in-order predecessor of n, or nil if n is the first node.
func (n *node[K, V]) predecessor() *node[K, V] {
	if n.left != nil {
		return n.left.rightmost()
	}
	for n.parent != nil && n.parent.left == n {
		n = n.parent
	}
	return n.parent
}
