package io

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/netforest/pkg/errors"
	"github.com/matzehuels/netforest/pkg/network"
)

// Formats lists the file formats understood by [Import] and [Export].
var Formats = []string{"json", "yaml", "text"}

// FormatOf returns the serialization format implied by path's extension.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json", nil
	case ".yaml", ".yml":
		return "yaml", nil
	case ".txt", ".nf":
		return "text", nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "cannot tell format of %s, use .json, .yaml, .yml, .txt or .nf", path)
}

// Import reads a network from path, choosing the decoder from the extension.
func Import(path string, opts ...network.Option) (*network.Network, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case "yaml":
		return ImportYAML(path, opts...)
	case "text":
		return ImportText(path, opts...)
	}
	return ImportJSON(path, opts...)
}

// Export writes n to path, choosing the encoder from the extension.
func Export(n *network.Network, path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	switch format {
	case "yaml":
		return ExportYAML(n, path)
	case "text":
		return ExportText(n, path)
	}
	return ExportJSON(n, path)
}
