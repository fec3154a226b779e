package ordmap

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestAddDuplicate(t *testing.T) {
	tree := buildIntTree(t, 1, 2)
	v := tree.version
	if err := tree.Add(2, 99); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
	if got, _ := tree.Get(2); got != 1 {
		t.Errorf("failed Add must not overwrite value, have %d", got)
	}
	if tree.version != v || tree.Count() != 2 {
		t.Errorf("failed Add changed the tree")
	}
}

func TestAddIfAbsent(t *testing.T) {
	tree := NewOrdered[string, int]()
	if !tree.AddIfAbsent("a", 1) {
		t.Fatalf("expected insertion of absent key")
	}
	v := tree.version
	if tree.AddIfAbsent("a", 2) {
		t.Fatalf("expected no insertion of present key")
	}
	if got, _ := tree.Get("a"); got != 1 {
		t.Errorf("AddIfAbsent overwrote existing value: %d", got)
	}
	if tree.version != v {
		t.Errorf("AddIfAbsent on present key bumped version")
	}
}

func TestSetOverwriteIsNotStructural(t *testing.T) {
	tree := buildIntTree(t, 3, 1, 2)
	v := tree.version
	tree.Set(2, 200)
	if tree.version != v {
		t.Errorf("value overwrite bumped version from %d to %d", v, tree.version)
	}
	if got, _ := tree.Get(2); got != 200 {
		t.Errorf("expected overwritten value 200, have %d", got)
	}
	tree.Set(4, 400)
	if tree.version != v+1 || tree.Count() != 4 {
		t.Errorf("insert via Set: version=%d count=%d", tree.version, tree.Count())
	}
}

func TestRemoveMiddleOfChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()
	//
	tree := buildIntTree(t, 1, 2, 3)
	if !tree.Remove(2) {
		t.Fatalf("expected 2 to be removed")
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 3}; !slices.Equal(keysOf(tree), want) {
		t.Errorf("got %v, want %v", keysOf(tree), want)
	}
	if tree.Remove(2) {
		t.Errorf("second removal of 2 should report false")
	}
	if tree.root.right.key != 3 || tree.root.right.parent != tree.root {
		t.Errorf("expected 3 to be promoted below 1")
	}
}

func TestRemoveWithSuccessorSplice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()
	//
	tree := buildIntTree(t, 5, 3, 8, 7, 9)
	if !tree.Remove(5) {
		t.Fatalf("expected 5 to be removed")
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	if want := []int{3, 7, 8, 9}; !slices.Equal(keysOf(tree), want) {
		t.Errorf("got %v, want %v", keysOf(tree), want)
	}
	root := tree.root
	if root.key != 7 || root.parent != nil {
		t.Fatalf("expected successor 7 to become the root, have %d", root.key)
	}
	if root.left.key != 3 || root.left.parent != root {
		t.Errorf("expected 3 reparented below 7")
	}
	eight := root.right
	if eight.key != 8 || eight.parent != root || eight.left != nil {
		t.Errorf("expected 8 reparented below 7 without a left child")
	}
	if eight.right.key != 9 || eight.right.parent != eight {
		t.Errorf("expected 9 to remain below 8")
	}
}

func TestRemoveWithImmediateSuccessor(t *testing.T) {
	tree := buildIntTree(t, 10, 5, 15, 20)
	tree.Remove(10)
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	if tree.root.key != 15 || tree.root.left.key != 5 || tree.root.right.key != 20 {
		t.Errorf("unexpected shape after removal of root with immediate successor")
	}
}

func TestRemoveSuccessorWithRightChild(t *testing.T) {
	tree := buildIntTree(t, 50, 30, 80, 60, 90, 70, 65)
	tree.Remove(50)
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	// 60 replaces 50, its right subtree (70, 65) is lifted below 80
	if tree.root.key != 60 || tree.root.right.left.key != 70 {
		t.Errorf("successor's right subtree not lifted correctly")
	}
	if want := []int{30, 60, 65, 70, 80, 90}; !slices.Equal(keysOf(tree), want) {
		t.Errorf("got %v, want %v", keysOf(tree), want)
	}
}

func TestRemoveRootAndLeaves(t *testing.T) {
	tree := buildIntTree(t, 2, 1)
	tree.Remove(2) // root with left child only
	if tree.root.key != 1 || tree.root.parent != nil {
		t.Fatalf("expected 1 promoted to root")
	}
	tree.Remove(1) // sole root
	if !tree.IsEmpty() || tree.Count() != 0 {
		t.Fatalf("expected empty tree")
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestRemoveAbsentIsIdempotent(t *testing.T) {
	tree := buildIntTree(t, 4, 2, 6)
	v := tree.version
	if tree.Remove(5) {
		t.Fatalf("removal of absent key reported success")
	}
	if tree.Count() != 3 || tree.version != v {
		t.Errorf("removal of absent key changed the tree")
	}
	if want := []int{2, 4, 6}; !slices.Equal(keysOf(tree), want) {
		t.Errorf("got %v", keysOf(tree))
	}
}

func TestClear(t *testing.T) {
	tree := buildIntTree(t, 4, 2, 6)
	v := tree.version
	tree.Clear()
	if !tree.IsEmpty() || tree.Count() != 0 || tree.version != v+1 {
		t.Errorf("unexpected state after clear: %s", tree)
	}
	tree.Clear()
	if tree.version != v+2 {
		t.Errorf("clearing an empty tree should count as structural change")
	}
	tree.Set(1, 1)
	if keys := keysOf(tree); !slices.Equal(keys, []int{1}) {
		t.Errorf("tree unusable after clear: %v", keys)
	}
}

func TestRandomOperationsKeepInvariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()
	//
	rnd := rand.New(rand.NewPCG(4711, 42))
	tree := NewOrdered[int, int]()
	shadow := make(map[int]int)
	for i := range 3000 {
		k := rnd.IntN(200)
		switch rnd.IntN(3) {
		case 0:
			removed := tree.Remove(k)
			_, present := shadow[k]
			if removed != present {
				t.Fatalf("step %d: Remove(%d)=%v, shadow presence %v", i, k, removed, present)
			}
			delete(shadow, k)
		default:
			tree.Set(k, i)
			shadow[k] = i
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if tree.Count() != len(shadow) {
			t.Fatalf("step %d: count %d, shadow has %d", i, tree.Count(), len(shadow))
		}
	}
	want := make([]int, 0, len(shadow))
	for k := range shadow {
		want = append(want, k)
	}
	slices.Sort(want)
	if got := keysOf(tree); !slices.Equal(got, want) {
		t.Fatalf("forward keys differ from shadow map")
	}
	var back []int
	for k, v := range tree.Backward() {
		if shadow[k] != v {
			t.Fatalf("value mismatch for %d: %d != %d", k, v, shadow[k])
		}
		back = append(back, k)
	}
	slices.Reverse(back)
	if !slices.Equal(back, want) {
		t.Fatalf("backward keys are not the reverse of forward keys")
	}
}
