package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/netforest/pkg/errors"
	"github.com/matzehuels/netforest/pkg/scenario"
)

// runCommand executes scenario files.
func (c *CLI) runCommand() *cobra.Command {
	var showAll bool

	cmd := &cobra.Command{
		Use:   "run <scenario.toml>...",
		Short: "Run TOML scenario files",
		Long: `Build the networks declared in each scenario file and run its steps in
order. Steps with an expect value are checked; the command fails when any
check fails.

Supported ops: ` + strings.Join(scenario.Ops(), ", ") + `.`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeScenarios,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			runner := scenario.NewRunner(logger)
			out := cmd.OutOrStdout()

			failed := 0
			for _, path := range args {
				if err := errors.ValidatePath(path); err != nil {
					return err
				}
				s, err := scenario.Load(path)
				if err != nil {
					return err
				}
				report, err := runner.Run(cmd.Context(), s)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				printReport(out, path, report, showAll)
				failed += report.Failed
			}

			if failed > 0 {
				return errors.New(errors.ErrCodeInvalidInput, "%d checks failed", failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "show every step, not only checked ones")

	return cmd
}

func printReport(w io.Writer, path string, report *scenario.Report, showAll bool) {
	name := report.Name
	if name == "" {
		name = path
	}

	var rows [][]string
	for _, r := range report.Results {
		if !r.Checked && !showAll {
			continue
		}
		status := "-"
		switch {
		case r.Failed:
			status = iconError
		case r.Checked:
			status = iconSuccess
		}
		row := []string{strconv.Itoa(r.Step), r.Op, r.Network, r.Output, status}
		if r.Failed {
			row[3] = r.Output + " (want " + r.Expect + ")"
		}
		rows = append(rows, row)
	}

	if report.OK() {
		printSuccess(w, "%s", StyleTitle.Render(name))
	} else {
		printError(w, "%s: %d failed", StyleTitle.Render(name), report.Failed)
	}
	if len(rows) > 0 {
		printTable(w, []string{"Step", "Op", "Network", "Output", ""}, rows)
	}
	printDetail(w, "%d steps in %s", len(report.Results), report.Duration)
}
