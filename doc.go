/*
Package ordmap provides an ordered map, keeping its entries sorted by key.

Keys are totally ordered by a comparator supplied at construction time. Entries
are stored in a plain binary search tree: every node owns its left and right
child and carries a back-reference to its parent. The parent links allow
walking the entries in sorted order (and in reverse) one step at a time,
without recursion and without an auxiliary stack.

	tree := ordmap.NewOrdered[string, int]()
	tree.Set("foo", 10)
	tree.Set("bar", 20)
	for k, v := range tree.All() {
	    fmt.Println(k, v)       // bar 20, foo 10
	}

The tree is not self-balancing. Inserting keys in sorted order will produce a
tree of linear depth, and every operation degrades to O(n) for it.

# Iteration and structural changes

Every structural change of a tree (an insert, a removal, or clearing the
tree) increments a version counter. Iterators remember the version of the tree
at the time they have been created and will refuse to advance once the tree has
changed its shape, reporting ErrInvalidStructuralState. Overwriting the value
of an existing key is not a structural change.

Detection is lazy: the mutating call always succeeds, only the next attempt to
advance a stale iterator fails.

# Concurrency

Trees are not safe for concurrent use. Clients have to serialize access to a
tree shared between goroutines.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) 2021–26, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package ordmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordmap'
func tracer() tracing.Trace {
	return tracing.Select("ordmap")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
