package tree

import "github.com/matzehuels/netforest/pkg/address"

// IsCircular reports whether a breadth-first walk from root reaches the same
// node twice, or reaches two distinct nodes holding the same address.
//
// A tree built only through this package can never contain a true cycle, but
// two nodes with one address are a cycle of the network: the node would be
// connected to itself through the tree. Merge candidates are checked with
// this before they are accepted.
func IsCircular(root *Node) bool {
	if root == nil {
		return false
	}
	visited := make(map[*Node]struct{})
	seen := make(map[address.Address]struct{})
	queue := []*Node{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if _, ok := visited[n]; ok {
			return true
		}
		visited[n] = struct{}{}
		if _, ok := seen[n.addr]; ok {
			return true
		}
		seen[n.addr] = struct{}{}
		queue = append(queue, n.children...)
	}
	return false
}
