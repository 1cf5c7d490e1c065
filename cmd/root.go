// Package cmd provides the root command and CLI setup for trimsrc.
package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mouse-blink/trimsrc/internal/adapter"
	"github.com/mouse-blink/trimsrc/internal/controller"
	"github.com/mouse-blink/trimsrc/internal/domain"
	m "github.com/mouse-blink/trimsrc/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var ruleStore adapter.RuleStore
var workflow domain.Workflow
var ui controller.UI
var logger *zap.Logger

var logLevel = zap.NewAtomicLevelAt(zap.InfoLevel)

func init() {
	logger = newLogger()
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	ruleStore = adapter.NewRuleStore()
	workflow = domain.NewWorkflow(fsAdapter, reportStore, ui, logger)
}

var rulesFlag string
var verboseFlag bool
var rootFlags rewriteFlags

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trimsrc [paths...]",
		Short: "Selective source rewriter",
		Long: `Trimsrc copies source trees while stripping lines that match a rule set:
generated codec boilerplate, logging macros, feature-gated blocks. Kept lines
can be rewritten with literal substitutions, and output files can be regrouped
into one directory per declared package.

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./a ./b        scan the top level of multiple directories

Without a subcommand, paths are rewritten as with "trimsrc run".`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verboseFlag {
				logLevel.SetLevel(zap.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			return runRewrite(cmd, args, rootFlags)
		},
	}
	cmd.PersistentFlags().StringVarP(&rulesFlag, "rules", "r", "", "rule file (default "+adapter.DefaultRulesFile+" when present)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	addRewriteFlags(cmd, &rootFlags)

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()

	_ = logger.Sync()

	if err != nil {
		os.Exit(1)
	}
}

func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = logLevel
	cfg.Encoding = "console"
	cfg.Sampling = nil
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}

	return l
}

// loadRules reads the rule file and applies flag overrides.
func loadRules(mode string) (m.RuleSet, error) {
	rules, err := ruleStore.Load(rulesFlag)
	if err != nil {
		return m.RuleSet{}, err
	}

	if mode != "" {
		rules.Output.Mode = m.OutputMode(mode)
	}

	return rules, nil
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"./..."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
