package tree

import (
	"slices"

	"github.com/matzehuels/netforest/pkg/address"
)

// Node is a vertex of a tree: an address, the children it owns, and a
// back-reference to its parent (nil at the root).
//
// The zero value is a leaf with address 0.0.0.0; use [New] to build nodes.
type Node struct {
	addr     address.Address
	children []*Node
	parent   *Node
}

// Edge is a parent to child connection.
type Edge struct {
	Parent address.Address
	Child  address.Address
}

// New creates a node that takes ownership of children. Each child's parent is
// set to the new node (detaching it from any previous parent) and the children
// are sorted by address.
func New(addr address.Address, children ...*Node) *Node {
	n := &Node{addr: addr}
	n.AddChildren(children...)
	n.SortChildren()
	return n
}

// Address returns the node's address.
func (n *Node) Address() address.Address { return n.addr }

// Parent returns the parent node, or nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Children returns the node's children. The returned slice should not be
// modified - use it as a read-only view.
func (n *Node) Children() []*Node { return n.children }

// Child returns the direct child with the given address, or nil.
func (n *Node) Child(addr address.Address) *Node {
	for _, c := range n.children {
		if c.addr == addr {
			return c
		}
	}
	return nil
}

// Degree returns the number of tree edges at n: its children plus one if it
// has a parent.
func (n *Node) Degree() int {
	if n.parent != nil {
		return len(n.children) + 1
	}
	return len(n.children)
}

// AddChildren takes ownership of each child and appends it without
// re-sorting. A child that is attached to another parent is detached from it
// first.
func (n *Node) AddChildren(children ...*Node) {
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.parent != nil {
			c.parent.RemoveChild(c)
		}
		c.parent = n
		n.children = append(n.children, c)
	}
}

// RemoveChild detaches c from n and clears its parent. It reports whether c
// was a child of n.
func (n *Node) RemoveChild(c *Node) bool {
	i := slices.Index(n.children, c)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	c.parent = nil
	return true
}

// SortChildren orders the direct children by address.
func (n *Node) SortChildren() {
	slices.SortFunc(n.children, compareNodes)
}

// SortedChildren returns a sorted copy of the children without touching n.
func (n *Node) SortedChildren() []*Node {
	sorted := slices.Clone(n.children)
	slices.SortFunc(sorted, compareNodes)
	return sorted
}

// Copy returns an independent deep copy of the subtree rooted at n. The copy
// shares no nodes with the original and its root has no parent.
func (n *Node) Copy() *Node {
	cp := &Node{addr: n.addr, children: make([]*Node, 0, len(n.children))}
	for _, c := range n.children {
		cc := c.Copy()
		cc.parent = cp
		cp.children = append(cp.children, cc)
	}
	return cp
}

// Root follows parent references up to the root of n's tree.
func (n *Node) Root() *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Nodes returns every node of the subtree rooted at root in breadth-first
// order.
func Nodes(root *Node) []*Node {
	if root == nil {
		return nil
	}
	nodes := []*Node{root}
	for i := 0; i < len(nodes); i++ {
		nodes = append(nodes, nodes[i].children...)
	}
	return nodes
}

// Addresses returns the addresses of the subtree rooted at root in ascending
// order.
func Addresses(root *Node) []address.Address {
	nodes := Nodes(root)
	addrs := make([]address.Address, len(nodes))
	for i, n := range nodes {
		addrs[i] = n.addr
	}
	address.Sort(addrs)
	return addrs
}

// Edges returns the parent to child edges of the subtree rooted at root in
// breadth-first order, children of each node in address order.
func Edges(root *Node) []Edge {
	var edges []Edge
	for _, n := range Nodes(root) {
		for _, c := range n.SortedChildren() {
			edges = append(edges, Edge{Parent: n.addr, Child: c.addr})
		}
	}
	return edges
}

func compareNodes(a, b *Node) int { return a.addr.Compare(b.addr) }
