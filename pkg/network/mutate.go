package network

import (
	"slices"

	"github.com/matzehuels/netforest/pkg/address"
	"github.com/matzehuels/netforest/pkg/errors"
	"github.com/matzehuels/netforest/pkg/tree"
)

// Connect adds an edge between a and b, joining their two subnets into one.
// b's subnet is re-rooted at b and hung below a.
//
// It returns false if either address is missing, a equals b, or both are
// already in the same subnet.
func (n *Network) Connect(a, b address.Address) bool {
	na, okA := n.index[a]
	nb, okB := n.index[b]
	if !okA || !okB || a == b || na.Root() == nb.Root() {
		return false
	}
	return n.transact("connect", func(s *Network) (bool, error) {
		parent, child := s.index[a], s.index[b]
		s.reroot(child)
		s.removeSubnet(child)
		parent.AddChildren(child)
		return true, nil
	})
}

// Disconnect removes the edge between a and b.
//
// After the cut, the child side becomes a subnet of its own when it still has
// children and is dropped otherwise; the parent side is dropped when it has no
// edges left. It returns false if either address is missing, the network has
// two nodes or fewer, or a and b are not directly connected.
func (n *Network) Disconnect(a, b address.Address) bool {
	na, okA := n.index[a]
	nb, okB := n.index[b]
	if !okA || !okB || len(n.index) <= 2 {
		return false
	}
	if na.Parent() != nb && nb.Parent() != na {
		return false
	}
	return n.transact("disconnect", func(s *Network) (bool, error) {
		parent, child := s.index[a], s.index[b]
		if child.Parent() != parent {
			parent, child = child, parent
		}
		parent.RemoveChild(child)

		if !child.IsLeaf() {
			s.subnets = append(s.subnets, child)
		}
		if parent.Degree() == 0 {
			s.removeSubnet(parent)
		}
		return true, nil
	})
}

// Add merges other into n and reports whether n changed. other is copied and
// never modified.
//
// Each subnet of other is merged in its own transaction: a subnet that would
// close a cycle is skipped without affecting the others.
func (n *Network) Add(other *Network) bool {
	if other == nil {
		return false
	}
	changed := false
	for _, sub := range byLowestAddress(other.Subnets()) {
		if n.transact("add", func(s *Network) (bool, error) { return s.merge(sub) }) {
			changed = true
		}
	}
	return changed
}

// merge grafts sub into the scratch network and then merges local subnets
// until no two share an address. sub is consumed.
func (n *Network) merge(sub *tree.Node) (bool, error) {
	nodesBefore, subnetsBefore := len(n.index), len(n.subnets)

	if tree.IsCircular(sub) {
		return false, errors.New(errors.ErrCodeCircular, "incoming subnet %s is circular", sub.Address())
	}

	host := n.firstSharing(sub)
	if host == nil {
		n.subnets = append(n.subnets, sub)
		return true, nil
	}
	if err := n.graft(host, sub); err != nil {
		return false, err
	}

	for {
		dst, src := n.firstOverlap()
		if dst == nil {
			break
		}
		n.removeSubnet(src)
		if err := n.graft(dst, src); err != nil {
			return false, err
		}
	}

	nodes := 0
	for _, r := range n.subnets {
		nodes += len(tree.Nodes(r))
	}
	return nodes > nodesBefore || len(n.subnets) < subnetsBefore, nil
}

// graft splices src onto the local subnet rooted at dst, joining them at the
// shared address nearest dst's root. src must not be in the subnet list.
func (n *Network) graft(dst, src *tree.Node) error {
	at, ok := tree.FindConnection(tree.Levels(dst), src)
	if !ok {
		return errors.New(errors.ErrCodeInternal, "subnets %s and %s share no address", dst.Address(), src.Address())
	}
	hostNode, subNode := findNode(dst, at), findNode(src, at)

	n.reroot(hostNode)
	tree.Reroot(subNode)
	tree.Splice(hostNode, subNode)

	if tree.IsCircular(hostNode) {
		return errors.New(errors.ErrCodeCircular, "merging at %s closes a cycle", at)
	}
	return nil
}

// firstSharing returns the root of the first local subnet, by lowest address,
// that shares an address with sub.
func (n *Network) firstSharing(sub *tree.Node) *tree.Node {
	incoming := addressSet(sub)
	for _, root := range byLowestAddress(n.subnets) {
		for _, node := range tree.Nodes(root) {
			if _, ok := incoming[node.Address()]; ok {
				return root
			}
		}
	}
	return nil
}

// firstOverlap returns the first pair of local subnets, by lowest address,
// that share an address. dst sorts before src.
func (n *Network) firstOverlap() (dst, src *tree.Node) {
	roots := byLowestAddress(n.subnets)
	sets := make([]map[address.Address]struct{}, len(roots))
	for i, r := range roots {
		sets[i] = addressSet(r)
	}
	for i := range roots {
		for j := i + 1; j < len(roots); j++ {
			for a := range sets[j] {
				if _, ok := sets[i][a]; ok {
					return roots[i], roots[j]
				}
			}
		}
	}
	return nil, nil
}

func (n *Network) removeSubnet(root *tree.Node) {
	if i := slices.Index(n.subnets, root); i >= 0 {
		n.subnets = slices.Delete(n.subnets, i, i+1)
	}
}

// byLowestAddress returns roots ordered by the lowest address in each tree.
func byLowestAddress(roots []*tree.Node) []*tree.Node {
	type keyed struct {
		root *tree.Node
		low  address.Address
	}
	ks := make([]keyed, len(roots))
	for i, r := range roots {
		ks[i] = keyed{root: r, low: tree.Addresses(r)[0]}
	}
	slices.SortFunc(ks, func(a, b keyed) int { return a.low.Compare(b.low) })

	out := make([]*tree.Node, len(ks))
	for i, k := range ks {
		out[i] = k.root
	}
	return out
}

func addressSet(root *tree.Node) map[address.Address]struct{} {
	set := make(map[address.Address]struct{})
	for _, node := range tree.Nodes(root) {
		set[node.Address()] = struct{}{}
	}
	return set
}

func findNode(root *tree.Node, a address.Address) *tree.Node {
	for _, node := range tree.Nodes(root) {
		if node.Address() == a {
			return node
		}
	}
	return nil
}
