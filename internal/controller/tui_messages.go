package controller

import (
	m "github.com/mouse-blink/trimsrc/internal/model"
)

// Message types.
type startMsg struct {
	files   int
	threads int
}

type fileDoneMsg struct {
	report m.FileReport
}

type summaryMsg struct {
	reports []m.FileReport
}
