package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/trimsrc/internal/model"
)

const maxListedProblems = 10

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)
	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 0, 2)
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	fileStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	problemStyle = lipgloss.NewStyle().Padding(0, 0, 0, 4)
)

// rewriteModel shows a progress bar while files are processed and a summary
// once the run is over.
type rewriteModel struct {
	mode        StartMode
	progressBar progress.Model
	width       int

	files    int
	threads  int
	done     int
	failed   int
	warned   int
	lastFile string
	stats    m.LineStats
	problems []string
	finished bool
}

func newRewriteModel(mode StartMode) rewriteModel {
	return rewriteModel{
		mode: mode,
		progressBar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(40),
			progress.WithoutPercentage(),
		),
	}
}

func (r rewriteModel) Init() tea.Cmd {
	return nil
}

func (r rewriteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		if w := msg.Width - 20; w > 10 && w < 80 {
			r.progressBar.Width = w
		}

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return r, tea.Quit
		}

	case startMsg:
		r.files = msg.files
		r.threads = msg.threads

	case fileDoneMsg:
		r = r.handleFileDone(msg.report)

	case summaryMsg:
		r = r.handleSummary(msg.reports)

		return r, tea.Quit
	}

	return r, nil
}

func (r rewriteModel) handleFileDone(report m.FileReport) rewriteModel {
	r.done++
	r.lastFile = string(report.Source.Rel)

	if r.lastFile == "" {
		r.lastFile = string(report.Source.Path)
	}

	return r
}

func (r rewriteModel) handleSummary(reports []m.FileReport) rewriteModel {
	summary := m.Summarize(reports)

	r.finished = true
	r.done = summary.Files
	r.failed = summary.Failed
	r.warned = summary.Warned
	r.stats = summary.Stats
	r.problems = r.problems[:0]

	if r.files == 0 {
		r.files = summary.Files
	}

	for _, report := range reports {
		name := displayPath(report.Source)

		if report.Err != nil {
			r.problems = append(r.problems, failStyle.Render("✗ ")+fmt.Sprintf("%s: %v", name, report.Err))
		}

		for _, w := range report.Warnings {
			r.problems = append(r.problems, warnStyle.Render("! ")+fmt.Sprintf("%s: %s", name, w))
		}
	}

	return r
}

func (r rewriteModel) percent() float64 {
	if r.files == 0 {
		return 0
	}

	p := float64(r.done) / float64(r.files)
	if p > 1 {
		p = 1
	}

	return p
}

func (r rewriteModel) View() string {
	title := "✂ trimsrc rewrite"
	if r.mode == ModePlan {
		title = "✂ trimsrc plan"
	}

	lines := []string{
		titleStyle.Render(title),
		summaryStyle.Render(fmt.Sprintf("%s %s",
			r.progressBar.ViewAs(r.percent()),
			accentStyle.Render(fmt.Sprintf("%d/%d", r.done, r.files)),
		)),
	}

	if !r.finished {
		if r.lastFile != "" {
			lines = append(lines, summaryStyle.Render(mutedStyle.Render("last: ")+fileStyle.Render(r.lastFile)))
		}

		if r.threads > 0 {
			lines = append(lines, summaryStyle.Render(mutedStyle.Render(fmt.Sprintf("%d worker(s)", r.threads))))
		}

		return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
	}

	lines = append(lines, summaryStyle.Render(fmt.Sprintf(
		"Files: %s   Failed: %s   Warned: %s   Lines: %s in, %s out, %s dropped",
		accentStyle.Render(fmt.Sprintf("%d", r.done)),
		failStyle.Render(fmt.Sprintf("%d", r.failed)),
		warnStyle.Render(fmt.Sprintf("%d", r.warned)),
		accentStyle.Render(fmt.Sprintf("%d", r.stats.In)),
		accentStyle.Render(fmt.Sprintf("%d", r.stats.Out())),
		accentStyle.Render(fmt.Sprintf("%d", r.stats.Dropped)),
	)))

	shown := r.problems
	if len(shown) > maxListedProblems {
		shown = shown[:maxListedProblems]
	}

	for _, p := range shown {
		lines = append(lines, problemStyle.Render(p))
	}

	if hidden := len(r.problems) - len(shown); hidden > 0 {
		lines = append(lines, problemStyle.Render(mutedStyle.Render(fmt.Sprintf("… %d more", hidden))))
	}

	return strings.TrimRight(lipgloss.JoinVertical(lipgloss.Left, lines...), "\n") + "\n"
}
