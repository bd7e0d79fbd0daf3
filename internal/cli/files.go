package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/netforest/pkg/errors"
	nfio "github.com/matzehuels/netforest/pkg/io"
	"github.com/matzehuels/netforest/pkg/notation"
)

// validateCommand checks network files and literals.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <network>...",
		Short: "Check that networks are well-formed",
		Long: `Load every argument as a network and report whether it is well-formed.
Bracket-notation literals are checked against the grammar without building
the network.`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeNetworks(-1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, src := range args {
				if literal := strings.TrimSpace(src); strings.HasPrefix(literal, "(") {
					if err := notation.Validate(literal); err != nil {
						printError(out, "%s", errors.UserMessage(err))
						failed++
						continue
					}
					printSuccess(out, "valid bracket notation")
					continue
				}

				n, err := c.loadNetwork(src)
				if err != nil {
					printError(out, "%s: %s", src, errors.UserMessage(err))
					failed++
					continue
				}
				printSuccess(out, "%s", src)
				printStats(out, n.Len(), len(n.Roots()), false)
			}
			if failed > 0 {
				return errors.New(errors.ErrCodeInvalidInput, "%d of %d networks are invalid", failed, len(args))
			}
			return nil
		},
	}
}

// exportCommand converts a network between formats.
func (c *CLI) exportCommand() *cobra.Command {
	var output, format string

	cmd := &cobra.Command{
		Use:   "export <network>",
		Short: "Convert a network to JSON, YAML or bracket notation",
		Long: `Write a network in another format. With --output the format follows the
file extension; without it the network is written to stdout in --format.`,
		Example: `  netforest export "(1.1.1.1 2.2.2.2)" -o forest.json
  netforest export forest.json --format yaml`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeNetworks(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.loadNetwork(args[0])
			if err != nil {
				return err
			}
			if output != "" {
				return writeNetwork(cmd.OutOrStdout(), n, output)
			}

			if err := errors.ValidateFormat(format, nfio.Formats...); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case "json":
				return nfio.WriteJSON(n, w)
			case "yaml":
				return nfio.WriteYAML(n, w)
			}
			return nfio.WriteText(n, w)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file; the extension picks the format")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "format for stdout: json, yaml, text")

	return cmd
}
