package crosscheck

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/npillmayer/ordmap"
)

// Order is the order in which keys are inserted into a tree.
type Order int

// Insertion orders. Ascending and Descending produce degenerated trees.
const (
	Shuffled Order = iota
	Ascending
	Descending
)

func (o Order) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "shuffled"
	}
}

// ParseOrder parses the name of an insertion order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "shuffled", "shuffle", "":
		return Shuffled, nil
	case "ascending", "asc":
		return Ascending, nil
	case "descending", "desc":
		return Descending, nil
	}
	return Shuffled, fmt.Errorf("unknown insertion order %q", s)
}

// BuildOptions control how BuildTree inserts keys.
type BuildOptions struct {
	Order           Order
	Seed            uint64 // seed for Shuffled
	CheckInvariants bool   // configure the tree to check invariants after every change
}

// Sieve returns all primes up to and including limit.
func Sieve(limit int) []int {
	if limit < 2 {
		return nil
	}
	composite := make([]bool, limit+1)
	var primes []int
	for i := 2; i <= limit; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, i)
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}
	return primes
}

// BuildTree creates a tree mapping every key to its position in keys.
// Duplicate keys keep the position of their first occurrence.
func BuildTree(keys []int, opts BuildOptions) (*ordmap.Tree[int, int], error) {
	cfg := ordmap.OrderedConfig[int]()
	cfg.CheckInvariants = opts.CheckInvariants
	tree, err := ordmap.New[int, int](cfg)
	if err != nil {
		return nil, err
	}
	idx := make([]int, len(keys))
	for i := range idx {
		idx[i] = i
	}
	switch opts.Order {
	case Ascending:
		slices.SortStableFunc(idx, func(a, b int) int { return cmp.Compare(keys[a], keys[b]) })
	case Descending:
		slices.SortStableFunc(idx, func(a, b int) int { return cmp.Compare(keys[b], keys[a]) })
	default:
		rnd := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
		rnd.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
	}
	for _, i := range idx {
		if v, ok := tree.TryGet(keys[i]); ok && v < i {
			continue
		}
		tree.Set(keys[i], i)
	}
	tracer().Debugf("built tree of %d keys in %s order, height %d", tree.Count(), opts.Order, tree.Height())
	return tree, nil
}
