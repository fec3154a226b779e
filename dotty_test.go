package ordmap

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTree2Dot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()
	//
	tree := buildIntTree(t, 5, 3, 8, 7)
	var bf bytes.Buffer
	err := Tree2Dot(&bf, tree, func(k, v int) string {
		return fmt.Sprintf("%d=%d", k, v)
	})
	if err != nil {
		t.Fatal(err)
	}
	dot := bf.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("not a digraph")
	}
	for _, frag := range []string{`label="5=0"`, `label="7=3"`, `"1" -> "2"`, `"1" -> "3"`, `"3" -> "4"`, `"3" -> "-1"`} {
		if !strings.Contains(dot, frag) {
			t.Errorf("expected DOT output to contain %s", frag)
		}
	}
}

func TestTree2DotEmpty(t *testing.T) {
	var bf bytes.Buffer
	if err := Tree2Dot[int, int](&bf, NewOrdered[int, int](), nil); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(bf.String(), "->") {
		t.Errorf("empty tree should have no edges")
	}
}
