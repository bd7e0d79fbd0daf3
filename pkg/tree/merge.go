package tree

import (
	"slices"

	"github.com/matzehuels/netforest/pkg/address"
)

// FindConnection returns the first address of sub found while scanning layers
// in order, ascending within each layer. layers is normally Levels of the
// receiving tree, so the connection point is the shared node closest to its
// root.
func FindConnection(layers [][]address.Address, sub *Node) (address.Address, bool) {
	in := make(map[address.Address]struct{})
	for _, n := range Nodes(sub) {
		in[n.addr] = struct{}{}
	}
	for _, layer := range layers {
		for _, a := range layer {
			if _, ok := in[a]; ok {
				return a, true
			}
		}
	}
	return address.Address{}, false
}

// Splice grafts the children of src onto dst. A child of src whose address is
// not among dst's children moves under dst with its whole subtree; a child
// present on both sides is spliced recursively. dst and src are expected to
// hold the same address.
//
// Splice consumes src. The result may hold an address twice when src brings a
// node that exists elsewhere in dst's tree; callers detect that with
// [IsCircular] and discard the result.
func Splice(dst, src *Node) {
	for _, sc := range slices.Clone(src.children) {
		if dc := dst.Child(sc.addr); dc != nil {
			Splice(dc, sc)
			continue
		}
		dst.AddChildren(sc)
	}
}
