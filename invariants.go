package ordmap

import "fmt"

// Check validates the structural invariants of the tree:
//
//   - every key in the left subtree of a node is less than the node's key, every
//     key in its right subtree is greater,
//   - every child's parent link points to the node holding it; the root has no parent,
//   - the number of reachable nodes equals Count.
//
// Violations are reported as errors wrapping ErrInvariantViolation.
// The check takes O(n) time and is meant for tests and debugging.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariantViolation)
	}
	if t.root == nil {
		if t.count != 0 {
			return fmt.Errorf("%w: empty tree must have count=0, has %d", ErrInvariantViolation, t.count)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrInvariantViolation)
	}
	visited := 0
	stack := []checkFrame[K, V]{{n: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visited++
		if visited > t.count {
			return fmt.Errorf("%w: more nodes reachable than count=%d", ErrInvariantViolation, t.count)
		}
		if err := t.checkNode(f.n, f.lo, f.hi); err != nil {
			return err
		}
		if f.n.left != nil {
			stack = append(stack, checkFrame[K, V]{n: f.n.left, lo: f.lo, hi: f.n})
		}
		if f.n.right != nil {
			stack = append(stack, checkFrame[K, V]{n: f.n.right, lo: f.n, hi: f.hi})
		}
	}
	if visited != t.count {
		return fmt.Errorf("%w: count mismatch (%d reachable != %d)", ErrInvariantViolation, visited, t.count)
	}
	return nil
}

// checkFrame is a node to check; lo and hi are the nearest ancestors bounding
// its subtree from below and above.
type checkFrame[K, V any] struct {
	n, lo, hi *node[K, V]
}

func (t *Tree[K, V]) checkNode(n, lo, hi *node[K, V]) error {
	if lo != nil && t.cfg.Compare(n.key, lo.key) <= 0 {
		return fmt.Errorf("%w: key %v not greater than ancestor key %v", ErrInvariantViolation, n.key, lo.key)
	}
	if hi != nil && t.cfg.Compare(n.key, hi.key) >= 0 {
		return fmt.Errorf("%w: key %v not less than ancestor key %v", ErrInvariantViolation, n.key, hi.key)
	}
	if n.left != nil && n.left.parent != n {
		return fmt.Errorf("%w: left child of %v has wrong parent link", ErrInvariantViolation, n.key)
	}
	if n.right != nil && n.right.parent != n {
		return fmt.Errorf("%w: right child of %v has wrong parent link", ErrInvariantViolation, n.key)
	}
	return nil
}

// checkIfConfigured runs Check if the tree has been configured for it.
// A violation is traced and otherwise ignored.
func (t *Tree[K, V]) checkIfConfigured(op string) {
	if !t.cfg.CheckInvariants {
		return
	}
	if err := t.Check(); err != nil {
		tracer().Errorf("ordmap: after %s: %s", op, err.Error())
	}
}
