package ordmap

import (
	"cmp"
	"fmt"
)

// Config configures an ordered map.
type Config[K any] struct {
	// Compare defines a total order on keys. It returns a negative number if
	// a < b, a positive number if a > b, and 0 if a and b are equal.
	Compare func(a, b K) int
	// CheckInvariants switches on the diagnostic checker after every
	// structural change. Violations are traced, not returned.
	// Intended for debugging only, as it costs O(n) per change.
	CheckInvariants bool
}

// OrderedConfig returns a configuration ordering keys by their natural order.
func OrderedConfig[K cmp.Ordered]() Config[K] {
	return Config[K]{Compare: cmp.Compare[K]}
}

func (cfg Config[K]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	return nil
}
