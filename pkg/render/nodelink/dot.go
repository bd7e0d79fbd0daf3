package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/netforest/pkg/address"
	"github.com/matzehuels/netforest/pkg/errors"
	"github.com/matzehuels/netforest/pkg/network"
	"github.com/matzehuels/netforest/pkg/observability"
	"github.com/matzehuels/netforest/pkg/render"
	"github.com/matzehuels/netforest/pkg/tree"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the depth below the subnet root and the degree of each
	// node to its label. When false, only the address is shown.
	Detailed bool

	// Highlight marks the listed nodes, and the edges between consecutive
	// entries, in a contrasting color. Pass the result of
	// [network.Network.Route] to draw a route.
	Highlight []address.Address
}

// ToDOT converts a network to Graphviz DOT format. Every subnet is drawn as
// a cluster from its current root downward. The resulting DOT string can be
// rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(n *network.Network, opts Options) string {
	marked := make(map[address.Address]bool, len(opts.Highlight))
	for _, a := range opts.Highlight {
		marked[a] = true
	}
	onRoute := make(map[tree.Edge]bool)
	for i := 1; i < len(opts.Highlight); i++ {
		a, b := opts.Highlight[i-1], opts.Highlight[i]
		onRoute[tree.Edge{Parent: a, Child: b}] = true
		onRoute[tree.Edge{Parent: b, Child: a}] = true
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")

	for _, root := range n.Subnets() {
		fmt.Fprintf(&buf, "\n  subgraph %q {\n", "cluster_"+root.Address().String())
		buf.WriteString("    style=\"rounded,dashed\";\n")
		buf.WriteString("    color=grey;\n")

		nodes := make(map[address.Address]*tree.Node)
		for _, nd := range tree.Nodes(root) {
			nodes[nd.Address()] = nd
		}
		for depth, layer := range tree.Levels(root) {
			for _, a := range layer {
				label := fmtLabel(nodes[a], depth, opts.Detailed)
				attrs := fmtAttrs(label, marked[a])
				fmt.Fprintf(&buf, "    %q [%s];\n", a.String(), strings.Join(attrs, ", "))
			}
		}
		for _, e := range tree.Edges(root) {
			if onRoute[e] {
				fmt.Fprintf(&buf, "    %q -> %q [color=crimson, penwidth=3];\n", e.Parent.String(), e.Child.String())
				continue
			}
			fmt.Fprintf(&buf, "    %q -> %q;\n", e.Parent.String(), e.Child.String())
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n *tree.Node, depth int, detailed bool) string {
	if !detailed {
		return n.Address().String()
	}
	return fmt.Sprintf("%s\ndepth: %d\ndegree: %d", n.Address(), depth, n.Degree())
}

func fmtAttrs(label string, highlighted bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if highlighted {
		attrs = append(attrs, "color=crimson", "penwidth=3", "fillcolor=mistyrose")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}

// Render produces the artifact for format ("dot", "svg", "pdf" or "png") and
// reports the call to [observability.Render].
func Render(ctx context.Context, dot, format string) ([]byte, error) {
	start := time.Now()
	formats := []string{format}
	observability.Render().OnRenderStart(ctx, formats)

	var (
		out []byte
		err error
	)
	switch strings.ToLower(format) {
	case "dot":
		out = []byte(dot)
	case "svg":
		out, err = RenderSVG(ctx, dot)
	case "pdf":
		out, err = RenderPDF(ctx, dot)
	case "png":
		out, err = RenderPNG(ctx, dot, 2.0)
	default:
		err = errors.New(errors.ErrCodeInvalidFormat, "unsupported render format %q", format)
	}

	observability.Render().OnRenderComplete(ctx, formats, time.Since(start), err)
	return out, err
}

// Formats lists the formats accepted by [Render].
var Formats = []string{"dot", "svg", "pdf", "png"}
