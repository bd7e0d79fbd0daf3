package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/netforest/pkg/network"
)

// WriteJSON encodes a network as JSON and writes it to w.
// The output can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(n *network.Network, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fromNetwork(n)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a network to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(n *network.Network, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(n, f)
}

// ReadJSON decodes a JSON network from r.
//
// ReadJSON returns an error if the JSON is malformed, an address is invalid
// or repeated, an edge references an unknown node, a node has two parents or
// no edges at all, or the edges form a cycle.
//
// The returned network is independent of r. ReadJSON does not close r.
func ReadJSON(r io.Reader, opts ...network.Option) (*network.Network, error) {
	var data forest
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return data.toNetwork(opts...)
}

// ImportJSON reads a JSON file at path and returns the decoded network.
func ImportJSON(path string, opts ...network.Option) (*network.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f, opts...)
}
