package ordmap

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("ordmap: invalid configuration")
	// ErrKeyNotFound is returned when reading a key which is not present.
	ErrKeyNotFound = errors.New("ordmap: key not found")
	// ErrDuplicateKey is returned by Add if the key is already present.
	ErrDuplicateKey = errors.New("ordmap: duplicate key")
	// ErrEmptyContainer is returned by First and Last (and variants) for an
	// empty tree.
	ErrEmptyContainer = errors.New("ordmap: empty container")
	// ErrInvalidStructuralState signals that a tree has been structurally
	// modified while an iteration over it was in progress.
	ErrInvalidStructuralState = errors.New("ordmap: tree modified during iteration")
	// ErrInvariantViolation is reported by the diagnostic invariant checker.
	ErrInvariantViolation = errors.New("ordmap: tree invariant violated")
)
