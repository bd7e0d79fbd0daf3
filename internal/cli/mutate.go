package cli

import (
	"github.com/spf13/cobra"
)

// changeOpts holds the flags shared by the commands that change a network.
type changeOpts struct {
	output string // where to write the changed network; stdout if empty
}

func (o *changeOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "write the result to a .json, .yaml, .txt or .nf file instead of stdout")
}

// connectCommand joins two subnets with an edge.
func (c *CLI) connectCommand() *cobra.Command {
	var opts changeOpts

	cmd := &cobra.Command{
		Use:   "connect <network> <a> <b>",
		Short: "Join the subnets of two addresses with an edge",
		Long: `Add an edge between two addresses in different subnets. The subnet of b
is re-rooted at b and hung below a.

The network is printed or written unchanged when the edge cannot be added.`,
		Args:              cobra.ExactArgs(3),
		ValidArgsFunction: completeNetworks(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(loggerFromContext(cmd.Context()), "connect")
			n, err := c.loadNetwork(args[0])
			if err != nil {
				return err
			}
			addrs, err := parseAddresses(args[1], args[2])
			if err != nil {
				return err
			}

			out := cmd.ErrOrStderr()
			changed := n.Connect(addrs[0], addrs[1])
			prog.done(n, "a", addrs[0], "b", addrs[1], "changed", changed)
			if changed {
				printSuccess(out, "Connected %s and %s", addrs[0], addrs[1])
			} else {
				printWarning(out, "Cannot connect %s and %s", addrs[0], addrs[1])
			}
			return writeNetwork(cmd.OutOrStdout(), n, opts.output)
		},
	}
	opts.register(cmd)

	return cmd
}

// disconnectCommand removes an edge.
func (c *CLI) disconnectCommand() *cobra.Command {
	var opts changeOpts

	cmd := &cobra.Command{
		Use:   "disconnect <network> <a> <b>",
		Short: "Remove the edge between two adjacent addresses",
		Long: `Remove the edge between two adjacent addresses. The side below the cut
becomes a subnet of its own; a side left without edges is dropped.

The network is printed or written unchanged when the edge cannot be removed.`,
		Args:              cobra.ExactArgs(3),
		ValidArgsFunction: completeNetworks(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(loggerFromContext(cmd.Context()), "disconnect")
			n, err := c.loadNetwork(args[0])
			if err != nil {
				return err
			}
			addrs, err := parseAddresses(args[1], args[2])
			if err != nil {
				return err
			}

			out := cmd.ErrOrStderr()
			changed := n.Disconnect(addrs[0], addrs[1])
			prog.done(n, "a", addrs[0], "b", addrs[1], "changed", changed)
			if changed {
				printSuccess(out, "Disconnected %s and %s", addrs[0], addrs[1])
			} else {
				printWarning(out, "Cannot disconnect %s and %s", addrs[0], addrs[1])
			}
			return writeNetwork(cmd.OutOrStdout(), n, opts.output)
		},
	}
	opts.register(cmd)

	return cmd
}

// mergeCommand adds further networks into the first.
func (c *CLI) mergeCommand() *cobra.Command {
	var opts changeOpts

	cmd := &cobra.Command{
		Use:   "merge <network> <other>...",
		Short: "Merge networks into the first one",
		Long: `Merge every other network into the first. Subnets sharing an address are
joined at the shared address closest to the root; a subnet that would close
a cycle is skipped and the rest are still merged.`,
		Args:              cobra.MinimumNArgs(2),
		ValidArgsFunction: completeNetworks(-1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(loggerFromContext(cmd.Context()), "merge")
			n, err := c.loadNetwork(args[0])
			if err != nil {
				return err
			}

			out := cmd.ErrOrStderr()
			merged := 0
			for _, src := range args[1:] {
				other, err := c.loadNetwork(src)
				if err != nil {
					return err
				}
				if n.Add(other) {
					merged++
					printSuccess(out, "Merged %s", src)
				} else {
					printWarning(out, "Nothing merged from %s", src)
				}
			}
			prog.done(n, "merged", merged, "skipped", len(args)-1-merged)
			printStats(out, n.Len(), len(n.Roots()), false)
			return writeNetwork(cmd.OutOrStdout(), n, opts.output)
		},
	}
	opts.register(cmd)

	return cmd
}
