package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/netforest/pkg/errors"
	"github.com/matzehuels/netforest/pkg/scenario"
)

// showCommand prints a network in bracket notation.
func (c *CLI) showCommand() *cobra.Command {
	var root string
	var stats bool

	cmd := &cobra.Command{
		Use:   "show <network>",
		Short: "Print a network in bracket notation",
		Long: `Print every subnet of a network in bracket notation, one per line.

With --root, only the subnet containing that address is printed, re-rooted
at it.`,
		Example: `  netforest show forest.json
  netforest show "(1.1.1.1 (2.2.2.2 3.3.3.3))" --root 3.3.3.3`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeNetworks(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.loadNetwork(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if root == "" {
				fmt.Fprintln(out, n.String())
			} else {
				addrs, err := parseAddresses(root)
				if err != nil {
					return err
				}
				if err := requireAddress(n, addrs[0]); err != nil {
					return err
				}
				fmt.Fprintln(out, n.Format(addrs[0]))
			}

			if stats {
				printStats(out, n.Len(), len(n.Roots()), false)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&root, "root", "r", "", "re-root the subnet containing this address and print only it")
	cmd.Flags().BoolVar(&stats, "stats", false, "print node and subnet counts")

	return cmd
}

// listCommand prints every address of a network.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "list <network>",
		Short:             "List every address in ascending order",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeNetworks(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.loadNetwork(args[0])
			if err != nil {
				return err
			}
			for _, a := range n.List() {
				fmt.Fprintln(cmd.OutOrStdout(), a)
			}
			return nil
		},
	}
}

// heightCommand prints the height of a subnet rooted at an address.
func (c *CLI) heightCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "height <network> <address>",
		Short:             "Print the height of a subnet rooted at an address",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeNetworks(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.loadNetwork(args[0])
			if err != nil {
				return err
			}
			addrs, err := parseAddresses(args[1])
			if err != nil {
				return err
			}
			if err := requireAddress(n, addrs[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.Itoa(n.Height(addrs[0])))
			return nil
		},
	}
}

// levelsCommand prints a subnet level by level.
func (c *CLI) levelsCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:               "levels <network> <address>",
		Short:             "Print a subnet level by level from an address",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeNetworks(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.loadNetwork(args[0])
			if err != nil {
				return err
			}
			addrs, err := parseAddresses(args[1])
			if err != nil {
				return err
			}
			if err := requireAddress(n, addrs[0]); err != nil {
				return err
			}

			levels := n.Levels(addrs[0])
			if plain {
				fmt.Fprintln(cmd.OutOrStdout(), scenario.FormatLevels(levels))
				return nil
			}
			printLevels(cmd.OutOrStdout(), levels)
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print levels on one line instead of a table")

	return cmd
}

// routeCommand prints the path between two addresses.
func (c *CLI) routeCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:               "route <network> <from> <to>",
		Short:             "Print the route between two addresses",
		Args:              cobra.ExactArgs(3),
		ValidArgsFunction: completeNetworks(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.loadNetwork(args[0])
			if err != nil {
				return err
			}
			addrs, err := parseAddresses(args[1], args[2])
			if err != nil {
				return err
			}

			route := n.Route(addrs[0], addrs[1])
			if route == nil {
				return errors.New(errors.ErrCodeNotFound, "no route from %s to %s", addrs[0], addrs[1])
			}
			if plain {
				fmt.Fprintln(cmd.OutOrStdout(), scenario.FormatAddresses(route))
				return nil
			}
			printRoute(cmd.OutOrStdout(), route)
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print the route on one line instead of a table")

	return cmd
}
