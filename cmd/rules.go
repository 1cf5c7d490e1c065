package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/trimsrc/internal/adapter"
	"github.com/mouse-blink/trimsrc/internal/domain"
	m "github.com/mouse-blink/trimsrc/internal/model"
)

var rulesPresetFlag string

// rulesCmd represents the rules command.
var rulesCmd = newRulesCmd()

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the effective rule set",
		Long:  "Load, complete with defaults and validate the rule set, then print it as YAML.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				rules m.RuleSet
				err   error
			)

			if rulesPresetFlag != "" {
				rules, err = adapter.Preset(rulesPresetFlag)
			} else {
				rules, err = ruleStore.Load(rulesFlag)
			}

			if err != nil {
				return err
			}

			rules = rules.WithDefaults()
			if err := domain.ValidateRuleSet(rules); err != nil {
				return err
			}

			data, err := adapter.EncodeRuleSet(rules)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
	cmd.Flags().StringVar(&rulesPresetFlag, "preset", "", "print a built-in preset instead of the rule file")

	return cmd
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
