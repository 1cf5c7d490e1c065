package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/trimsrc/internal/domain"
	m "github.com/mouse-blink/trimsrc/internal/model"
)

const defaultOutputDir = "gen"

const runLongDescription = `Rewrite every selected file and write the result below the output
directory.

Each file is filtered line by line with the rule set: trigger lines drop the
brace-delimited block that follows them, drop rules remove matching lines,
declaration lines are removed unless they match the allow list, and kept
lines go through the substitutions. A file that ends inside a dropped block
is still written and reported as a warning. Files that cannot be read, lack
a package key in regroup mode, or collide on the same destination fail
without stopping the others.`

// rewriteFlags holds the flags shared by the root and run commands.
type rewriteFlags struct {
	out      string
	mode     string
	parallel int
	exclude  []string
	manifest bool
}

func addPlanFlags(cmd *cobra.Command, f *rewriteFlags) {
	cmd.Flags().StringVarP(&f.out, "out", "o", defaultOutputDir, "output directory")
	cmd.Flags().StringVarP(&f.mode, "mode", "m", "", "output layout: mirror or regroup (overrides the rule file)")
	cmd.Flags().IntVarP(&f.parallel, "parallel", "p", 1, "number of files processed concurrently")
	cmd.Flags().StringArrayVarP(&f.exclude, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
}

func addRewriteFlags(cmd *cobra.Command, f *rewriteFlags) {
	addPlanFlags(cmd, f)
	cmd.Flags().BoolVar(&f.manifest, "manifest", false, "write a manifest of the run into the output directory")
}

func (f rewriteFlags) planArgs(args []string, rules m.RuleSet) domain.PlanArgs {
	return domain.PlanArgs{
		Paths:   parsePaths(args),
		Exclude: f.exclude,
		Rules:   rules,
		Output:  m.Path(f.out),
		Threads: f.parallel,
	}
}

var runFlags rewriteFlags

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Rewrite source files into the output directory",
		Long:  runLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRewrite(cmd, args, runFlags)
		},
	}
	addRewriteFlags(cmd, &runFlags)

	return cmd
}

func runRewrite(cmd *cobra.Command, args []string, flags rewriteFlags) error {
	rules, err := loadRules(flags.mode)
	if err != nil {
		return err
	}

	_, err = workflow.Rewrite(commandContext(cmd), domain.RewriteArgs{
		PlanArgs: flags.planArgs(args, rules),
		Manifest: flags.manifest,
	})

	return err
}

func init() {
	rootCmd.AddCommand(runCmd)
}
