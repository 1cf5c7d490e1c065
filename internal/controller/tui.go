package controller

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/trimsrc/internal/model"
)

// TUI implements UI using Bubble Tea for live progress display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
	started bool
	closed  bool
	mode    StartMode
	mu      sync.Mutex
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options...)
	t.mode = cfg.mode

	return t.startWithModel(newRewriteModel(cfg.mode))
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	t.program = tea.NewProgram(model, tea.WithOutput(t.output), tea.WithInput(nil))
	t.done = make(chan struct{})
	t.started = true

	go func(p *tea.Program, done chan struct{}) {
		defer close(done)

		_, _ = p.Run()
	}(t.program, t.done)

	return nil
}

func (t *TUI) ensureStarted() {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()

	if started {
		return
	}

	_ = t.Start(func(c *StartConfig) { c.mode = t.mode })
}

// send forwards msg to the running program. Before Start it is a no-op.
func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}

// Wait blocks until the program has rendered its final view.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	<-done
}

// Close stops the program. Calling it more than once is safe.
func (t *TUI) Close() {
	t.mu.Lock()
	if t.closed || t.program == nil {
		t.closed = true
		t.mu.Unlock()

		return
	}

	t.closed = true
	program, done := t.program, t.done
	t.mu.Unlock()

	program.Quit()
	<-done
}

// DisplayStart announces the number of files and workers.
func (t *TUI) DisplayStart(files int, threads int) {
	t.ensureStarted()
	t.send(startMsg{files: files, threads: threads})
}

// DisplayFileDone advances the progress bar.
func (t *TUI) DisplayFileDone(report m.FileReport) {
	t.send(fileDoneMsg{report: report})
}

// DisplaySummary renders the final view; the program exits afterwards.
func (t *TUI) DisplaySummary(reports []m.FileReport) error {
	t.send(summaryMsg{reports: reports})

	return nil
}
