package crosscheck

import (
	"github.com/npillmayer/ordmap"
)

// Report is the outcome of comparing a tree with a reference sequence.
type Report struct {
	Name     string
	Expected int   // length of the reference
	Actual   int   // number of entries produced by walking the tree
	Count    int   // Count() of the tree
	Height   int   // height of the tree
	Mismatch int   // position of first divergence, -1 if none
	Want     int   // reference value at Mismatch
	Got      int   // tree key at Mismatch
	Err      error // traversal or invariant error
}

// OK reports whether the tree matched the reference.
func (r Report) OK() bool {
	return r.Err == nil && r.Mismatch < 0 && r.Expected == r.Actual && r.Count == r.Actual
}

// Compare walks tree in ascending order and compares its keys with ref.
// The tree's invariants are checked as well.
func Compare(name string, tree *ordmap.Tree[int, int], ref []int) Report {
	r := Report{
		Name:     name,
		Expected: len(ref),
		Count:    tree.Count(),
		Height:   tree.Height(),
		Mismatch: -1,
	}
	it := tree.Ascend()
	for it.Next() {
		k := it.Key()
		if r.Mismatch < 0 {
			if r.Actual >= len(ref) {
				r.Mismatch, r.Got = r.Actual, k
			} else if ref[r.Actual] != k {
				r.Mismatch, r.Want, r.Got = r.Actual, ref[r.Actual], k
			}
		}
		r.Actual++
	}
	if err := it.Err(); err != nil {
		r.Err = err
	} else if err := tree.Check(); err != nil {
		r.Err = err
	}
	if r.Mismatch < 0 && r.Actual < len(ref) {
		r.Mismatch, r.Want = r.Actual, ref[r.Actual]
	}
	tracer().Debugf("compared %s: expected=%d actual=%d mismatch=%d", name, r.Expected, r.Actual, r.Mismatch)
	return r
}
