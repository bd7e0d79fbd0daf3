package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/netforest/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// The CLI's logger is attached to each command's context before it runs and
// is accessible via loggerFromContext.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "netforest manages forests of addressable tree networks",
		Long:         `netforest loads networks of IPv4-addressed nodes organized as disjoint trees, queries them from any root, joins, splits and merges them, and renders them as node-link diagrams.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddGroup(
		&cobra.Group{ID: groupQuery, Title: "Query Commands:"},
		&cobra.Group{ID: groupChange, Title: "Change Commands:"},
		&cobra.Group{ID: groupFiles, Title: "File Commands:"},
	)

	for _, cmd := range []*cobra.Command{
		c.showCommand(),
		c.listCommand(),
		c.heightCommand(),
		c.levelsCommand(),
		c.routeCommand(),
	} {
		cmd.GroupID = groupQuery
		root.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{
		c.connectCommand(),
		c.disconnectCommand(),
		c.mergeCommand(),
	} {
		cmd.GroupID = groupChange
		root.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{
		c.validateCommand(),
		c.exportCommand(),
		c.renderCommand(),
		c.runCommand(),
	} {
		cmd.GroupID = groupFiles
		root.AddCommand(cmd)
	}

	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

const (
	groupQuery  = "query"
	groupChange = "change"
	groupFiles  = "files"
)
