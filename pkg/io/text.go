package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/netforest/pkg/errors"
	"github.com/matzehuels/netforest/pkg/network"
	"github.com/matzehuels/netforest/pkg/notation"
	"github.com/matzehuels/netforest/pkg/tree"
)

// WriteText writes n in bracket notation, one subnet per line, each from its
// current root.
func WriteText(n *network.Network, w io.Writer) error {
	if _, err := fmt.Fprintln(w, n.String()); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// ExportText writes a network to a bracket-notation file at path.
func ExportText(n *network.Network, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteText(n, f)
}

// ReadText reads a network written one subnet per line in bracket notation.
// Blank lines and lines starting with '#' are skipped. Subnets must not share
// addresses.
func ReadText(r io.Reader, opts ...network.Option) (*network.Network, error) {
	var roots []*tree.Node
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		root, err := notation.Parse(text)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidNotation, err, "line %d", line)
		}
		roots = append(roots, root)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if len(roots) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no subnets")
	}
	return network.FromTrees(roots, opts...)
}

// ImportText reads a bracket-notation file at path.
func ImportText(path string, opts ...network.Option) (*network.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadText(f, opts...)
}
