// Package pkg provides the core libraries for netforest.
//
// # Overview
//
// netforest manages a network of IPv4-addressed nodes organized as disjoint,
// unrooted trees called subnets. Any node can serve as the root of its
// subnet; queries re-root on demand. The pkg directory is organized into
// three areas:
//
//  1. Engine: [address], [tree], [notation] and [network]
//  2. Surfaces: [io] for files, [render] for diagrams, [scenario] for scripted runs
//  3. Support: [errors], [cache], [observability] and [buildinfo]
//
// # Architecture
//
// The typical data flow through netforest:
//
//	bracket notation / JSON / YAML
//	         ↓
//	    [notation] or [io] (parse and validate)
//	         ↓
//	    [network] (query, connect, disconnect, merge)
//	         ↓
//	    [render/nodelink] (DOT → SVG/PDF/PNG, cached by [cache])
//
// # Quick Start
//
// Build a network, merge another into it and ask for a route:
//
//	import (
//	    "github.com/matzehuels/netforest/pkg/address"
//	    "github.com/matzehuels/netforest/pkg/network"
//	)
//
//	n, _ := network.Parse("(1.1.1.1 (2.2.2.2 3.3.3.3) 4.4.4.4)")
//	n.Add(network.MustParse("(3.3.3.3 5.5.5.5)"))
//	route := n.Route(address.MustParse("5.5.5.5"), address.MustParse("4.4.4.4"))
//	// 5.5.5.5 3.3.3.3 2.2.2.2 1.1.1.1 4.4.4.4
//
// # Main Packages
//
// [address] - The 32-bit dotted-quad address type. Parsing is strict: four
// decimal octets, no leading zeros, no surrounding whitespace.
//
// [tree] - Nodes with owned children and a parent back-reference, plus the
// algorithms on them: re-rooting, levels, routes, cycle detection and the
// splice used by merges.
//
// [notation] - The bracket notation "(root child (inner leaf ...) ...)" with
// a recursive-descent parser and a canonical formatter.
//
// [network] - The forest itself. Every change runs against a copy and is
// swapped in only when the result is still a valid forest.
//
// [io] - JSON, YAML and line-based bracket-notation files.
//
// [render/nodelink] - Graphviz diagrams with one cluster per subnet.
// [render] converts SVG to PDF and PNG.
//
// [scenario] - TOML files that build networks and check operation results.
//
// [errors] - Coded errors shared by every package.
//
// [cache] - File-backed cache for rendered artifacts.
//
// [observability] - Hooks for commits, rollbacks, renders and cache traffic.
package pkg
