package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/netforest/pkg/address"
	"github.com/matzehuels/netforest/pkg/cache"
	"github.com/matzehuels/netforest/pkg/errors"
	"github.com/matzehuels/netforest/pkg/network"
	"github.com/matzehuels/netforest/pkg/render/nodelink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file path (or base path for multiple outputs)
	formats  []string // output formats: "dot", "svg", "pdf", "png"
	detailed bool     // show depth and degree in node labels
	root     string   // re-root this address's subnet before drawing
	route    []string // highlight the route between two addresses
	noCache  bool     // bypass the render cache
}

// renderCommand creates the render command for generating node-link diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <network>",
		Short: "Render a network as a node-link diagram",
		Long: `Render a network with Graphviz. Every subnet is drawn as a cluster from
its current root. SVG is produced in-process; PDF and PNG need rsvg-convert.

Rendered artifacts are cached by content under the netforest cache
directory.`,
		Example: `  netforest render forest.json -o forest.svg
  netforest render forest.json --root 3.3.3.3 --route 3.3.3.3,4.4.4.4 -f svg,png`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeNetworks(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, pdf, png (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show depth and degree in node labels")
	cmd.Flags().StringVarP(&opts.root, "root", "r", "", "re-root the subnet containing this address before drawing")
	cmd.Flags().StringSliceVar(&opts.route, "route", nil, "highlight the route between two addresses (from,to)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the render cache")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return parts
}

// validateFormats checks that all requested formats are renderable.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if err := errors.ValidateFormat(f, nodelink.Formats...); err != nil {
			return err
		}
	}
	return nil
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input; a literal input
// becomes "network". If output has a format extension, it is stripped.
func basePath(output, input string) string {
	if output == "" {
		if strings.HasPrefix(strings.TrimSpace(input), "(") {
			return "network"
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if errors.ValidateFormat(ext, nodelink.Formats...) == nil {
		return strings.TrimSuffix(output, filepath.Ext(output))
	}
	return output
}

// runRender loads the network, applies --root and --route and writes one
// file per requested format.
func (c *CLI) runRender(ctx context.Context, cmd *cobra.Command, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger, "render")

	n, err := c.loadNetwork(input)
	if err != nil {
		return err
	}
	highlight, err := renderHighlight(n, opts)
	if err != nil {
		return err
	}

	dot := nodelink.ToDOT(n, nodelink.Options{Detailed: opts.detailed, Highlight: highlight})
	logger.Debugf("Generated DOT: %d bytes", len(dot))

	store := newCache(logger, opts.noCache)
	defer store.Close()

	base := basePath(opts.output, input)
	allCached := true
	for _, format := range opts.formats {
		path := base + "." + format
		if opts.output != "" && len(opts.formats) == 1 {
			path = opts.output
		}
		cached, err := renderFormat(ctx, cmd, store, dot, format, path)
		if err != nil {
			return fmt.Errorf("%s: %w", format, err)
		}
		allCached = allCached && cached
	}

	printStats(cmd.ErrOrStderr(), n.Len(), len(n.Roots()), allCached)
	prog.done(n, "formats", strings.Join(opts.formats, ","), "cached", allCached)
	return nil
}

// renderHighlight returns the route named by --route and then applies
// --root. Route re-roots the start's subnet, so --root goes last to stay in
// charge of the drawing.
func renderHighlight(n *network.Network, opts *renderOpts) ([]address.Address, error) {
	var route []address.Address
	if len(opts.route) > 0 {
		if len(opts.route) != 2 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "--route takes two addresses, got %d", len(opts.route))
		}
		addrs, err := parseAddresses(opts.route...)
		if err != nil {
			return nil, err
		}
		if route = n.Route(addrs[0], addrs[1]); route == nil {
			return nil, errors.New(errors.ErrCodeNotFound, "no route from %s to %s", addrs[0], addrs[1])
		}
	}

	if opts.root != "" {
		addrs, err := parseAddresses(opts.root)
		if err != nil {
			return nil, err
		}
		if err := requireAddress(n, addrs[0]); err != nil {
			return nil, err
		}
		n.Format(addrs[0])
	}
	return route, nil
}

// renderFormat renders dot in one format through the cache and writes it to
// path. It reports whether the artifact came from the cache.
func renderFormat(ctx context.Context, cmd *cobra.Command, store cache.Cache, dot, format, path string) (bool, error) {
	logger := loggerFromContext(ctx)

	cached := true
	data, err := cache.Fetch(ctx, store, cache.RenderKey(dot, format), 0, func() ([]byte, error) {
		cached = false
		sp := newSpinner(ctx, cmd.ErrOrStderr(), "Rendering "+format)
		sp.Start()
		defer sp.Stop()
		return nodelink.Render(ctx, dot, format)
	})
	if err != nil {
		return false, err
	}
	logger.Debugf("Generated %s: %d bytes (cached: %v)", format, len(data), cached)

	out, err := openOutput(cmd.OutOrStdout(), path)
	if err != nil {
		return false, err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return false, err
	}
	logger.Infof("Generated %s", path)
	return cached, nil
}
