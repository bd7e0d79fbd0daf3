package network

import (
	"fmt"
	"maps"
	"slices"

	"github.com/matzehuels/netforest/pkg/address"
	"github.com/matzehuels/netforest/pkg/tree"
)

type edge struct{ lo, hi address.Address }

// Equal reports whether n and other hold the same addresses connected by the
// same edges. Roots and edge directions are ignored.
func (n *Network) Equal(other *Network) bool {
	if other == nil || n.Len() != other.Len() {
		return false
	}
	for a := range n.index {
		if !other.Contains(a) {
			return false
		}
	}
	return maps.Equal(n.edgeSet(), other.edgeSet())
}

// SameShape reports whether n and other look alike without comparing
// addresses: same node count, same subnet count, and subnets with matching
// degree sequences.
func (n *Network) SameShape(other *Network) bool {
	if other == nil || n.Len() != other.Len() || len(n.subnets) != len(other.subnets) {
		return false
	}
	return slices.Equal(n.degreeSignatures(), other.degreeSignatures())
}

func (n *Network) edgeSet() map[edge]struct{} {
	set := make(map[edge]struct{}, len(n.index))
	for _, node := range n.index {
		p := node.Parent()
		if p == nil {
			continue
		}
		e := edge{lo: p.Address(), hi: node.Address()}
		if e.hi.Less(e.lo) {
			e.lo, e.hi = e.hi, e.lo
		}
		set[e] = struct{}{}
	}
	return set
}

// degreeSignatures returns one sorted degree sequence per subnet, the list
// itself sorted so subnet order does not matter.
func (n *Network) degreeSignatures() []string {
	sigs := make([]string, len(n.subnets))
	for i, root := range n.subnets {
		nodes := tree.Nodes(root)
		degrees := make([]int, len(nodes))
		for j, node := range nodes {
			degrees[j] = node.Degree()
		}
		slices.Sort(degrees)
		sigs[i] = fmt.Sprint(degrees)
	}
	slices.Sort(sigs)
	return sigs
}
