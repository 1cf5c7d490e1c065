package cmd

import (
	"github.com/spf13/cobra"
)

const listLongDescription = `Classify every selected file and print where it would be written, with
line counts, without writing anything. Problems that would fail a run, such
as missing package keys or destination collisions, are reported the same way.`

var listFlags rewriteFlags

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "Show planned destinations and line counts",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := loadRules(listFlags.mode)
			if err != nil {
				return err
			}

			_, err = workflow.Plan(commandContext(cmd), listFlags.planArgs(args, rules))

			return err
		},
	}
	addPlanFlags(cmd, &listFlags)

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
