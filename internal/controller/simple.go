package controller

import (
	"bytes"
	"fmt"
	"path/filepath"

	m "github.com/mouse-blink/trimsrc/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd  *cobra.Command
	mode StartMode
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.mode = newStartConfig(options...).mode

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; output is written synchronously.
func (s *SimpleUI) Wait() {}

// DisplayStart prints how much work is queued.
func (s *SimpleUI) DisplayStart(files int, threads int) {
	verb := "Rewriting"
	if s.mode == ModePlan {
		verb = "Planning"
	}

	s.printf("%s %d file(s) with %d worker(s)\n", verb, files, threads)
}

// DisplayFileDone is a no-op; results are printed by DisplaySummary.
func (s *SimpleUI) DisplayFileDone(_ m.FileReport) {}

// DisplaySummary prints one table row per file followed by warnings and
// errors.
func (s *SimpleUI) DisplaySummary(reports []m.FileReport) error {
	if len(reports) == 0 {
		s.printf("No source files found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Source", "Destination", "Status", "In", "Out", "Dropped"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	for _, r := range reports {
		table.Append([]string{
			displayPath(r.Source),
			string(r.Destination),
			string(r.Status),
			fmt.Sprintf("%d", r.Stats.In),
			fmt.Sprintf("%d", r.Stats.Out()),
			fmt.Sprintf("%d", r.Stats.Dropped),
		})
	}

	summary := m.Summarize(reports)
	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", summary.Files),
		"",
		fmt.Sprintf("Failed %d", summary.Failed),
		fmt.Sprintf("%d", summary.Stats.In),
		fmt.Sprintf("%d", summary.Stats.Out()),
		fmt.Sprintf("%d", summary.Stats.Dropped),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	for _, r := range reports {
		for _, w := range r.Warnings {
			s.printf("warning: %s: %s\n", displayPath(r.Source), w)
		}

		if r.Err != nil {
			s.printf("error: %s: %v\n", displayPath(r.Source), r.Err)
		}
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// displayPath prefers the root-relative path for readability.
func displayPath(src m.Source) string {
	if src.Root != "" && src.Rel != "" {
		return filepath.Join(filepath.Base(string(src.Root)), string(src.Rel))
	}

	return string(src.Path)
}
