// Released under an MIT license. See LICENSE.

package ast

// Index identifies a node in an Arena. An Index is only meaningful for the
// arena that issued it.
type Index int

// Arena is an append-only store of nodes. Nodes are never removed or
// replaced, so an Index stays valid for as long as the arena is alive.
type Arena struct {
	nodes []Node
}

type arena = Arena

// NewArena creates an empty arena.
func NewArena() *arena {
	return &arena{nodes: make([]Node, 0, 64)} //nolint:gomnd
}

// Len returns the number of nodes in the arena a.
func (a *arena) Len() int {
	return len(a.nodes)
}

// Node returns the node at index i.
func (a *arena) Node(i Index) Node {
	return a.nodes[i]
}

// Push appends n to the arena a and returns its index.
func (a *arena) Push(n Node) Index {
	a.nodes = append(a.nodes, n)

	return Index(len(a.nodes) - 1)
}
