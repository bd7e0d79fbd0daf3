package io

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/netforest/pkg/network"
)

// WriteYAML encodes a network as YAML and writes it to w.
func WriteYAML(n *network.Network, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fromNetwork(n)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return enc.Close()
}

// ExportYAML writes a network to a YAML file at path.
func ExportYAML(n *network.Network, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteYAML(n, f)
}

// ReadYAML decodes a YAML network from r with the same validation as
// [ReadJSON].
func ReadYAML(r io.Reader, opts ...network.Option) (*network.Network, error) {
	var data forest
	if err := yaml.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return data.toNetwork(opts...)
}

// ImportYAML reads a YAML file at path and returns the decoded network.
func ImportYAML(path string, opts ...network.Option) (*network.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadYAML(f, opts...)
}
