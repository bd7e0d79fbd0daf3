// Package tree provides the mutable, re-rootable tree at the heart of
// netforest.
//
// # Overview
//
// A [Node] owns its children and keeps a non-owning back-reference to its
// parent. A node without a parent is the root of its tree. Trees in netforest
// are unrooted in the graph sense: any node can become the root through
// [Reroot], which reverses every edge on the path to the old root without
// adding or removing nodes or edges.
//
// Every mutating function in this package keeps the two directions
// consistent: c.Parent() == p exactly when c appears in p.Children().
// Callers never set parent pointers themselves.
//
// # Queries
//
// The traversal helpers assume the node they receive is the root of the part
// of the tree they should visit:
//
//   - [Levels] and [Height]: breadth-first layering, layers sorted by address
//   - [PathToRoot] and [Route]: parent-chain walks
//   - [Nodes], [Addresses] and [Edges]: full enumeration
//
// # Validation
//
// [IsCircular] performs the breadth-first revisit check that every structural
// change must pass. Besides true cycles it also reports a tree that holds the
// same address twice, which is how a merge candidate that would duplicate a
// node is rejected.
//
// # Merging
//
// [FindConnection] picks the splice point shared by two trees and [Splice]
// grafts one tree onto another below that point. Splice is destructive on its
// source, so callers run it on copies (see [Node.Copy]) and validate the
// result before keeping it.
//
// # Concurrency
//
// Nodes are not safe for concurrent use. Rerooting and splicing perform
// multi-step surgery that is not atomic.
package tree
