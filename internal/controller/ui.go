// Package controller provides output adapters for displaying rewrite progress
// and results.
package controller

import (
	m "github.com/mouse-blink/trimsrc/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRewrite StartMode = iota
	ModePlan
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithRewriteMode sets the UI to rewrite mode: files are written.
func WithRewriteMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRewrite
	}
}

// WithPlanMode sets the UI to plan mode: nothing is written.
func WithPlanMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModePlan
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeRewrite}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying a rewrite run.
// Implementations can use different output methods (simple text, TUI, etc).
// DisplayFileDone may be called from several goroutines at once.
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish rendering the summary
	DisplayStart(files int, threads int)
	DisplayFileDone(report m.FileReport)
	DisplaySummary(reports []m.FileReport) error
}
