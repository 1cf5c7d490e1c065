package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/trimsrc/internal/adapter"
)

var initPresetFlag string
var initForceFlag bool

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a rule file from a preset",
		Long: "Create a rule file from a built-in preset. Available presets: " +
			strings.Join(adapter.PresetNames(), ", ") + ".",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := rulesFlag
			if path == "" {
				path = adapter.DefaultRulesFile
			}

			if _, err := os.Stat(path); err == nil && !initForceFlag {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			rules, err := adapter.Preset(initPresetFlag)
			if err != nil {
				return err
			}

			if err := ruleStore.Save(path, rules); err != nil {
				return err
			}

			cmd.Printf("Rule file created: %s\n", path)

			return nil
		},
	}
	cmd.Flags().StringVar(&initPresetFlag, "preset", "empty", "preset to start from")
	cmd.Flags().BoolVarP(&initForceFlag, "force", "f", false, "overwrite an existing rule file")

	return cmd
}

func init() {
	rootCmd.AddCommand(initCmd)
}
