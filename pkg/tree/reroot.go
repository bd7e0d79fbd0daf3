package tree

import (
	"slices"

	"github.com/matzehuels/netforest/pkg/address"
)

// Reroot makes n the root of its tree by reversing every edge on the path
// from n to the current root. It returns the previous root. The node set and
// the number of edges do not change, and rerooting at the current root is a
// no-op.
func Reroot(n *Node) (oldRoot *Node) {
	path := []*Node{n}
	for p := n.parent; p != nil; p = p.parent {
		path = append(path, p)
	}
	oldRoot = path[len(path)-1]

	// Walk from the old root down, turning each parent into a child of the
	// node below it.
	for i := len(path) - 1; i > 0; i-- {
		upper, lower := path[i], path[i-1]
		upper.RemoveChild(lower)
		upper.parent = lower
		lower.children = append(lower.children, upper)
	}
	n.parent = nil
	return oldRoot
}

// Levels groups the nodes below root by distance. Layer 0 is root itself and
// every layer is sorted in ascending address order. A nil root has no levels.
func Levels(root *Node) [][]address.Address {
	if root == nil {
		return nil
	}
	var levels [][]address.Address
	frontier := []*Node{root}
	for len(frontier) > 0 {
		layer := make([]address.Address, len(frontier))
		var next []*Node
		for i, n := range frontier {
			layer[i] = n.addr
			next = append(next, n.children...)
		}
		address.Sort(layer)
		levels = append(levels, layer)
		frontier = next
	}
	return levels
}

// Height returns the number of edges on the longest downward path from root,
// or 0 for a nil root or a single node.
func Height(root *Node) int {
	if root == nil {
		return 0
	}
	return len(Levels(root)) - 1
}

// PathToRoot returns n's address followed by the addresses of its ancestors,
// ending with the root.
func PathToRoot(n *Node) []address.Address {
	var path []address.Address
	for ; n != nil; n = n.parent {
		path = append(path, n.addr)
	}
	return path
}

// Route returns the addresses from start down to end. start must be the root
// of end's tree; if it is not, Route returns nil.
func Route(start, end *Node) []address.Address {
	if start == nil || end == nil {
		return nil
	}
	path := PathToRoot(end)
	if path[len(path)-1] != start.addr {
		return nil
	}
	slices.Reverse(path)
	return path
}
