package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for netforest.

Network arguments complete to .json, .yaml, .yml, .txt and .nf files and
scenario arguments to .toml files.

Bash:
  $ source <(netforest completion bash)

Zsh:
  $ netforest completion zsh > "${fpath[1]}/_netforest"

Fish:
  $ netforest completion fish > ~/.config/fish/completions/netforest.fish

PowerShell:
  PS> netforest completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(w, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}

	return cmd
}

// networkFileExts are the extensions offered for network arguments.
var networkFileExts = []string{"json", "yaml", "yml", "txt", "nf"}

// completeNetworks completes the first n arguments of a command to network
// files. Later arguments, which are addresses, get no completion.
func completeNetworks(n int) cobra.CompletionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if n >= 0 && len(args) >= n {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return networkFileExts, cobra.ShellCompDirectiveFilterFileExt
	}
}

// completeScenarios completes every argument to TOML files.
func completeScenarios(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"toml"}, cobra.ShellCompDirectiveFilterFileExt
}
