// Package network manages a forest of addressable nodes.
//
// # Overview
//
// A [Network] is a set of disjoint trees, called subnets, over 32-bit
// addresses. Every address belongs to exactly one subnet and every subnet has
// at least one edge. Subnets are unrooted: each query re-roots the subnet it
// touches at the address it was asked about, so
//
//	net.Format(a)
//
// always renders a's subnet with a at the top, and
//
//	net.Route(a, b)
//
// walks from a down to b.
//
// # Building Networks
//
// Networks are built from bracket notation ([Parse]), from a root and a flat
// list of children ([New]) or from already-built trees ([FromTrees]). Failing
// constructors never return a partially built network.
//
// # Changing Networks
//
// [Network.Connect], [Network.Disconnect] and [Network.Add] report whether
// they changed anything. Each runs as a transaction on a scratch copy of the
// network that is validated before it replaces the live state: a change that
// would produce a cycle, or put one address into two places, is discarded as a
// whole and the operation returns false.
//
// Merging with [Network.Add] processes the other network one subnet at a
// time. Each incoming subnet is grafted onto the first local subnet (ordered
// by lowest address) it shares an address with, joined at the shared node
// nearest that subnet's root. Local subnets that end up sharing addresses are
// then merged the same way. An incoming subnet that shares nothing becomes a
// new subnet. A cycle rolls back only the incoming subnet that caused it.
//
// # Observability
//
// Commits and rollbacks are reported to [observability.Network]. Pass
// [WithLogger] to also log rejected transactions at debug level.
//
// # Concurrency
//
// A Network is not safe for concurrent use. Queries re-root subnets and are
// therefore writes as far as the data structure is concerned.
package network
