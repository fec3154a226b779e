package crosscheck

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/npillmayer/ordmap"
)

// Scenario is a small, self-checking exercise of an ordered map.
type Scenario struct {
	Name string
	Run  func() (detail string, err error)
}

// Scenarios returns the demonstration scenarios run by 'ordcheck demo'.
func Scenarios() []Scenario {
	return []Scenario{
		{Name: "string keys", Run: stringKeys},
		{Name: "remove from chain", Run: removeFromChain},
		{Name: "successor splice", Run: successorSplice},
		{Name: "stale iterator", Run: staleIterator},
	}
}

func stringKeys() (string, error) {
	tree := ordmap.NewFunc[string, int](strings.Compare)
	tree.Set("foo", 10)
	tree.Set("bar", 20)
	tree.Set("baz", 30)
	var parts []string
	for k, v := range tree.All() {
		parts = append(parts, fmt.Sprintf("(%s,%d)", k, v))
	}
	got := strings.Join(parts, " ")
	if want := "(bar,20) (baz,30) (foo,10)"; got != want {
		return got, fmt.Errorf("want %s", want)
	}
	return got, nil
}

func removeFromChain() (string, error) {
	tree := ordmap.NewOrdered[int, int]()
	for _, k := range []int{1, 2, 3} {
		tree.Set(k, k)
	}
	first := tree.Remove(2)
	second := tree.Remove(2)
	keys := slices.Collect(tree.Keys())
	detail := fmt.Sprintf("keys %v, remove(2) -> %v, %v", keys, first, second)
	if !slices.Equal(keys, []int{1, 3}) || !first || second {
		return detail, errors.New("unexpected removal result")
	}
	return detail, tree.Check()
}

func successorSplice() (string, error) {
	tree := ordmap.NewOrdered[int, int]()
	for _, k := range []int{5, 3, 8, 7, 9} {
		tree.Set(k, k)
	}
	tree.Remove(5)
	keys := slices.Collect(tree.Keys())
	detail := fmt.Sprintf("keys %v, height %d", keys, tree.Height())
	if !slices.Equal(keys, []int{3, 7, 8, 9}) {
		return detail, errors.New("unexpected keys after removal")
	}
	return detail, tree.Check()
}

func staleIterator() (string, error) {
	tree := ordmap.NewOrdered[int, int]()
	for _, k := range []int{1, 2, 3} {
		tree.Set(k, k)
	}
	it := tree.Ascend()
	it.Next()
	if err := tree.Add(4, 4); err != nil {
		return "", err
	}
	if it.Next() {
		return fmt.Sprintf("advanced to %d", it.Key()), errors.New("stale iterator advanced")
	}
	if !errors.Is(it.Err(), ordmap.ErrInvalidStructuralState) {
		return "", fmt.Errorf("expected invalid structural state, got %v", it.Err())
	}
	return it.Err().Error(), nil
}
