// Package io provides JSON, YAML and bracket-notation import and export for
// netforest networks.
//
// # Overview
//
// A network is serialized as a flat list of nodes and a list of directed
// parent to child edges. Every subnet is written from its current root, so
// importing an exported network restores both the structure and the roots.
// The format is designed for:
//
//   - Integration with external tools that produce or consume topology data
//   - Saving the result of a CLI session and picking it up later
//   - Round-trip preservation: import, change, export, and re-import identically
//
// # Format
//
// The format has two required top-level arrays:
//
//	{
//	  "nodes": [
//	    {"address": "85.193.148.81"},
//	    {"address": "34.49.145.239"},
//	    {"address": "141.255.1.133"}
//	  ],
//	  "edges": [
//	    {"from": "85.193.148.81", "to": "34.49.145.239"},
//	    {"from": "85.193.148.81", "to": "141.255.1.133"}
//	  ]
//	}
//
// YAML files use the same keys:
//
//	nodes:
//	  - address: 85.193.148.81
//	  - address: 34.49.145.239
//	edges:
//	  - from: 85.193.148.81
//	    to: 34.49.145.239
//
// Plain text files hold one subnet per line in bracket notation:
//
//	# lines starting with '#' are comments
//	(85.193.148.81 34.49.145.239 141.255.1.133)
//	(9.9.9.9 8.8.8.8)
//
// # Import
//
// Use [ImportJSON] or [ImportYAML] to read a network from a file path, or
// [ReadJSON] and [ReadYAML] to read from any io.Reader. [Import] picks the
// decoder from the file extension.
//
// Import validates addresses and structure: every node must take part in at
// least one edge, no node may have two parents, and the edges must not form a
// cycle. Errors carry the codes from [errors] and name the offending node or
// edge.
//
// # Export
//
// Use [ExportJSON], [ExportYAML] or the extension-based [Export] to write a
// network to a file, or [WriteJSON] and [WriteYAML] to write to any
// io.Writer. Nodes and edges are written in a stable order: subnets by root
// address, then breadth-first within each subnet.
//
// [errors]: github.com/matzehuels/netforest/pkg/errors
package io
