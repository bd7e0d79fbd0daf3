package io

import (
	"github.com/matzehuels/netforest/pkg/address"
	"github.com/matzehuels/netforest/pkg/errors"
	"github.com/matzehuels/netforest/pkg/network"
	"github.com/matzehuels/netforest/pkg/tree"
)

type forest struct {
	Nodes []node `json:"nodes" yaml:"nodes"`
	Edges []edge `json:"edges" yaml:"edges"`
}

type node struct {
	Address string `json:"address" yaml:"address"`
}

type edge struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// fromNetwork flattens n into nodes and parent to child edges.
func fromNetwork(n *network.Network) forest {
	out := forest{Nodes: []node{}, Edges: []edge{}}
	for _, root := range n.Subnets() {
		for _, nd := range tree.Nodes(root) {
			out.Nodes = append(out.Nodes, node{Address: nd.Address().String()})
		}
		for _, e := range tree.Edges(root) {
			out.Edges = append(out.Edges, edge{From: e.Parent.String(), To: e.Child.String()})
		}
	}
	return out
}

// toNetwork rebuilds the subnets described by f.
func (f forest) toNetwork(opts ...network.Option) (*network.Network, error) {
	if len(f.Nodes) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no nodes")
	}

	nodes := make(map[address.Address]*tree.Node, len(f.Nodes))
	order := make([]address.Address, 0, len(f.Nodes))
	for _, n := range f.Nodes {
		a, err := address.Parse(n.Address)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "node %q", n.Address)
		}
		if _, dup := nodes[a]; dup {
			return nil, errors.New(errors.ErrCodeInvalidInput, "node %s: duplicate address", a)
		}
		nodes[a] = tree.New(a)
		order = append(order, a)
	}

	for _, e := range f.Edges {
		from, err := lookup(nodes, e.From)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "edge %s->%s", e.From, e.To)
		}
		to, err := lookup(nodes, e.To)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "edge %s->%s", e.From, e.To)
		}
		if to.Parent() != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "edge %s->%s: %s already has parent %s",
				e.From, e.To, e.To, to.Parent().Address())
		}
		if from == to {
			return nil, errors.New(errors.ErrCodeCircular, "edge %s->%s: self loop", e.From, e.To)
		}
		from.AddChildren(to)
	}

	var roots []*tree.Node
	reached := 0
	for _, a := range order {
		nd := nodes[a]
		if !nd.IsRoot() {
			continue
		}
		if nd.IsLeaf() {
			return nil, errors.New(errors.ErrCodeInvalidInput, "node %s has no edges", a)
		}
		roots = append(roots, nd)
		reached += len(tree.Nodes(nd))
	}
	// Nodes on a parent cycle are never reached from a root.
	if reached != len(nodes) {
		return nil, errors.New(errors.ErrCodeCircular, "edges form a cycle")
	}
	for _, nd := range nodes {
		nd.SortChildren()
	}
	return network.FromTrees(roots, opts...)
}

func lookup(nodes map[address.Address]*tree.Node, s string) (*tree.Node, error) {
	a, err := address.Parse(s)
	if err != nil {
		return nil, err
	}
	nd, ok := nodes[a]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "unknown node %s", a)
	}
	return nd, nil
}
