// Package render provides format conversion for rendered networks.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). A missing tool is reported
// with code UNSUPPORTED so callers can fall back to SVG.
//
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage turns a network into Graphviz DOT and renders it
// in-process.
//
// [nodelink]: github.com/matzehuels/netforest/pkg/render/nodelink
package render
