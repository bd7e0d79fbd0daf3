package network

import (
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/netforest/pkg/address"
	"github.com/matzehuels/netforest/pkg/errors"
	"github.com/matzehuels/netforest/pkg/notation"
	"github.com/matzehuels/netforest/pkg/tree"
)

// Network is a forest of disjoint subnets. The zero value is not usable;
// build networks with [New], [Parse] or [FromTrees].
type Network struct {
	subnets []*tree.Node                   // current root of every subnet
	index   map[address.Address]*tree.Node // every node by address
	logger  *log.Logger
}

// Option configures a Network.
type Option func(*Network)

// WithLogger logs rejected transactions to l at debug level.
func WithLogger(l *log.Logger) Option {
	return func(n *Network) { n.logger = l }
}

// New builds a network with a single one-level subnet: root with a leaf for
// every address in children.
//
// Returns [errors.ErrCodeInvalidInput] if children is empty and
// [errors.ErrCodeCircular] if children repeat an address or contain root.
func New(root address.Address, children []address.Address, opts ...Option) (*Network, error) {
	if len(children) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "subnet %s needs at least one child", root)
	}
	leaves := make([]*tree.Node, len(children))
	for i, c := range children {
		leaves[i] = tree.New(c)
	}
	return FromTrees([]*tree.Node{tree.New(root, leaves...)}, opts...)
}

// Parse builds a network with a single subnet from bracket notation.
//
// Returns [errors.ErrCodeInvalidNotation] for malformed text (see
// [notation.Parse]) and [errors.ErrCodeCircular] if the tree is circular.
func Parse(text string, opts ...Option) (*Network, error) {
	root, err := notation.Parse(text)
	if err != nil {
		return nil, err
	}
	return FromTrees([]*tree.Node{root}, opts...)
}

// FromTrees builds a network that takes ownership of roots, one subnet per
// tree. Every tree needs at least one edge and no address may appear twice
// across all trees.
func FromTrees(roots []*tree.Node, opts ...Option) (*Network, error) {
	if len(roots) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "network needs at least one subnet")
	}
	n := &Network{subnets: slices.Clone(roots)}
	for _, opt := range opts {
		opt(n)
	}
	if err := n.reindex(); err != nil {
		return nil, err
	}
	return n, nil
}

// MustParse is like [Parse] but panics on error.
func MustParse(text string, opts ...Option) *Network {
	n, err := Parse(text, opts...)
	if err != nil {
		panic(err)
	}
	return n
}

// List returns every address in ascending order.
func (n *Network) List() []address.Address {
	addrs := make([]address.Address, 0, len(n.index))
	for a := range n.index {
		addrs = append(addrs, a)
	}
	address.Sort(addrs)
	return addrs
}

// Len returns the number of nodes.
func (n *Network) Len() int { return len(n.index) }

// Contains reports whether a is part of the network.
func (n *Network) Contains(a address.Address) bool {
	_, ok := n.index[a]
	return ok
}

// Height returns the height of a's subnet when rooted at a, or 0 if a is not
// part of the network.
func (n *Network) Height(a address.Address) int {
	node, ok := n.rerootAt(a)
	if !ok {
		return 0
	}
	return tree.Height(node)
}

// Levels returns a's subnet rooted at a, grouped by distance from a. Each
// level is sorted ascending. Returns nil if a is not part of the network.
func (n *Network) Levels(a address.Address) [][]address.Address {
	node, ok := n.rerootAt(a)
	if !ok {
		return nil
	}
	return tree.Levels(node)
}

// Route returns the addresses on the path from a to b, both included. It
// returns nil if either address is missing or the two are in different
// subnets.
func (n *Network) Route(a, b address.Address) []address.Address {
	end, ok := n.index[b]
	if !ok {
		return nil
	}
	start, ok := n.rerootAt(a)
	if !ok {
		return nil
	}
	return tree.Route(start, end)
}

// Format renders a's subnet in bracket notation with a as the root. It
// returns the empty string if a is not part of the network.
func (n *Network) Format(a address.Address) string {
	node, ok := n.rerootAt(a)
	if !ok {
		return ""
	}
	return notation.Format(node)
}

// String renders every subnet from its current root, one per line, ordered
// by root address.
func (n *Network) String() string {
	roots := n.sortedRoots()
	lines := make([]string, len(roots))
	for i, r := range roots {
		lines[i] = notation.Format(r)
	}
	return strings.Join(lines, "\n")
}

// Roots returns the current root address of every subnet in ascending order.
func (n *Network) Roots() []address.Address {
	roots := n.sortedRoots()
	addrs := make([]address.Address, len(roots))
	for i, r := range roots {
		addrs[i] = r.Address()
	}
	return addrs
}

// Subnets returns a deep copy of every subnet, ordered by root address.
// Changing the copies does not affect the network.
func (n *Network) Subnets() []*tree.Node {
	roots := n.sortedRoots()
	out := make([]*tree.Node, len(roots))
	for i, r := range roots {
		out[i] = r.Copy()
	}
	return out
}

// Clone returns an independent deep copy of the network with the same options.
// It panics if n no longer holds a valid forest.
func (n *Network) Clone() *Network {
	cp, err := n.clone()
	if err != nil {
		panic(err)
	}
	return cp
}

func (n *Network) clone() (*Network, error) {
	cp := &Network{
		subnets: make([]*tree.Node, len(n.subnets)),
		logger:  n.logger,
	}
	for i, r := range n.subnets {
		cp.subnets[i] = r.Copy()
	}
	if err := cp.reindex(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "clone network")
	}
	return cp, nil
}

// rerootAt makes a the root of its subnet and returns its node.
func (n *Network) rerootAt(a address.Address) (*tree.Node, bool) {
	node, ok := n.index[a]
	if !ok {
		return nil, false
	}
	n.reroot(node)
	return node, true
}

// reroot makes node the root of its subnet and updates the subnet list.
func (n *Network) reroot(node *tree.Node) {
	old := tree.Reroot(node)
	if old == node {
		return
	}
	if i := slices.Index(n.subnets, old); i >= 0 {
		n.subnets[i] = node
	}
}

func (n *Network) sortedRoots() []*tree.Node {
	roots := slices.Clone(n.subnets)
	slices.SortFunc(roots, func(a, b *tree.Node) int {
		return a.Address().Compare(b.Address())
	})
	return roots
}

// reindex validates the subnet list and rebuilds the address index from it.
// On error the index is left untouched.
func (n *Network) reindex() error {
	index := make(map[address.Address]*tree.Node, len(n.index))
	for _, root := range n.subnets {
		if root == nil || !root.IsRoot() {
			return errors.New(errors.ErrCodeInternal, "subnet entry is not a root")
		}
		if tree.IsCircular(root) {
			return errors.New(errors.ErrCodeCircular, "subnet %s is circular", root.Address())
		}
		if root.IsLeaf() {
			return errors.New(errors.ErrCodeInvalidInput, "subnet %s has no edges", root.Address())
		}
		for _, node := range tree.Nodes(root) {
			if _, dup := index[node.Address()]; dup {
				return errors.New(errors.ErrCodeCircular, "address %s appears in two subnets", node.Address())
			}
			index[node.Address()] = node
		}
	}
	n.index = index
	return nil
}
