package jsonflatten

import (
	"iter"
	"strings"
)

// SelectorAll is the wildcard selector applying one child node to every
// element of an array.
const SelectorAll = "all"

// Node is a position in a compiled template. Nodes are immutable once
// compiled and may be shared by concurrent flatten calls.
//
// A node whose children are absent discards whatever input it meets; a node
// with an empty (but present) child set descends and keeps nothing.
type Node struct {
	ops      *OpSet
	children *children
}

type children struct {
	sels  []string
	nodes map[string]*Node
}

func (c *children) add(sel string, n *Node) {
	if _, ok := c.nodes[sel]; !ok {
		c.sels = append(c.sels, sel)
	}
	c.nodes[sel] = n
}

// Ops returns the node's operations, or nil when none apply.
func (n *Node) Ops() *OpSet { return n.ops }

// HasChildren reports whether the node declares a child set (possibly empty).
func (n *Node) HasChildren() bool { return n.children != nil }

// Len returns the number of child selectors.
func (n *Node) Len() int {
	if n.children == nil {
		return 0
	}
	return len(n.children.sels)
}

// Child returns the node stored under sel.
func (n *Node) Child(sel string) (*Node, bool) {
	if n.children == nil {
		return nil, false
	}
	c, ok := n.children.nodes[sel]
	return c, ok
}

// Children iterates selectors and child nodes in template order.
func (n *Node) Children() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		if n.children == nil {
			return
		}
		for _, sel := range n.children.sels {
			if !yield(sel, n.children.nodes[sel]) {
				return
			}
		}
	}
}

// String renders the compiled tree, one selector per line:
//
//	users [list;compact]
//	  all
//	    1 (leaf)
func (n *Node) String() string {
	b := &strings.Builder{}
	if !n.ops.Empty() {
		b.WriteString("[" + n.ops.String() + "]\n")
	}
	for sel, c := range n.Children() {
		writeNode(b, sel, c, 0)
	}
	if !n.HasChildren() {
		b.WriteString("(no children)\n")
	}
	return b.String()
}

func writeNode(b *strings.Builder, sel string, n *Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(sel)
	if !n.ops.Empty() {
		b.WriteString(" [")
		b.WriteString(n.ops.String())
		b.WriteString("]")
	}
	if !n.HasChildren() {
		b.WriteString(" (leaf)")
	}
	b.WriteByte('\n')
	for csel, c := range n.Children() {
		writeNode(b, csel, c, depth+1)
	}
}
