// Package nodelink renders networks as node-link diagrams.
//
// # Overview
//
// This package produces Graphviz diagrams of a [network.Network]. Every
// subnet becomes a dashed cluster drawn top-down from its current root, so
// re-rooting a subnet before rendering changes the picture but not the
// topology.
//
// # Usage
//
// Convert a network to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(net, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// [Render] dispatches on a format name and reports timings to
// [observability.Render].
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: node labels include depth and degree
//   - Highlight: nodes and consecutive edges to emphasize, e.g. a route
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
//
// [network.Network]: github.com/matzehuels/netforest/pkg/network.Network
// [observability.Render]: github.com/matzehuels/netforest/pkg/observability.Render
package nodelink
