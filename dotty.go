package ordmap

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[K, V any] struct {
	idTable map[*node[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*node[K, V]]int),
		max:     1,
	}
}

func (ids nodeids[K, V]) find(n *node[K, V]) int {
	return ids.idTable[n]
}

func (ids *nodeids[K, V]) alloc(n *node[K, V]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// label formats the text of a node; if it is nil, the key is printed with %v.
// Empty child slots of inner nodes are drawn as small circles, so the left/right
// position of single children stays visible.
func Tree2Dot[K, V any](w io.Writer, tree *Tree[K, V], label func(K, V) string) error {
	if label == nil {
		label = func(k K, _ V) string { return fmt.Sprintf("%v", k) }
	}
	var nodelist, edgelist strings.Builder
	ids := newtable[K, V]()
	if tree != nil && tree.root != nil {
		nilid := 0
		stack := []*node[K, V]{tree.root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			ID := ids.alloc(n)
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, escape(label(n.key, n.value)),
				nodeDotStyles(n == tree.root))
			if n.left == nil && n.right == nil {
				continue
			}
			for _, child := range [2]*node[K, V]{n.left, n.right} {
				if child == nil {
					nilid--
					fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
					fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
					continue
				}
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			}
			if n.right != nil {
				stack = append(stack, n.right)
			}
			if n.left != nil {
				stack = append(stack, n.left)
			}
		}
	}
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("strict digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	write(nodelist.String())
	write(edgelist.String())
	write("}\n")
	if err != nil {
		tracer().Errorf("ordmap DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(isroot bool) string {
	s := ",style=filled,shape=box"
	if isroot {
		s += ",color=black,fillcolor=\"#a3d7e4\""
	} else {
		s += ",fillcolor=\"#CCDDFF\""
	}
	return s
}

func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "\\\"")
}
