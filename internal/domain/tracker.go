package domain

import (
	"fmt"
	"strings"
)

// BlockMode is the position of a Tracker relative to a restricted region.
type BlockMode int

// Available BlockMode values.
const (
	BlockNormal BlockMode = iota
	BlockAwaitingOpen
	BlockInside
)

func (b BlockMode) String() string {
	switch b {
	case BlockNormal:
		return "normal"
	case BlockAwaitingOpen:
		return "awaiting open delimiter"
	case BlockInside:
		return "inside restricted block"
	default:
		return fmt.Sprintf("BlockMode(%d)", int(b))
	}
}

// Tracker follows restricted regions across the lines of a single file.
//
// A region is announced by a trigger line and delimited by an open/close
// token pair that may start on a later line. Depth is not counted: the first
// close token seen inside a region ends it, so a region holding its own
// inner open/close pair ends early.
type Tracker struct {
	open  string
	close string

	mode       BlockMode
	closeToken string

	triggers int
	opened   int
	closed   int
}

// NewTracker returns a Tracker in BlockNormal for the given delimiter pair.
func NewTracker(open, closeToken string) *Tracker {
	return &Tracker{open: open, close: closeToken}
}

// Mode returns the current mode.
func (t *Tracker) Mode() BlockMode {
	return t.mode
}

// Normal reports whether lines are currently outside any region.
func (t *Tracker) Normal() bool {
	return t.mode == BlockNormal
}

// Trigger arms the tracker from a trigger line. The trigger line itself may
// already carry the open token, in which case the region starts on it.
func (t *Tracker) Trigger(line string) {
	t.triggers++
	t.mode = BlockAwaitingOpen

	if strings.Contains(line, t.open) {
		t.enter(line)
	}
}

// Consume advances the tracker over a line seen while not in BlockNormal.
// The line is always dropped by the caller. retrigger marks a line that is
// itself a trigger; while awaiting an open token it re-arms the tracker
// instead of cancelling it, so stacked trigger lines share one region.
func (t *Tracker) Consume(line string, retrigger bool) {
	switch t.mode {
	case BlockAwaitingOpen:
		if strings.Contains(line, t.open) {
			t.enter(line)
			return
		}

		if retrigger {
			return
		}

		// The trigger guarded a single-line construct.
		t.mode = BlockNormal
	case BlockInside:
		if strings.Contains(line, t.closeToken) {
			t.leave()
		}
	case BlockNormal:
	}
}

// Finish checks the end-of-file state.
func (t *Tracker) Finish() error {
	if t.mode == BlockNormal {
		return nil
	}

	return fmt.Errorf("%w: file ended while %s (opened %d, closed %d)", ErrMalformedBlock, t.mode, t.opened, t.closed)
}

// Opened returns how many regions were entered.
func (t *Tracker) Opened() int {
	return t.opened
}

// Closed returns how many regions were left through their close token.
func (t *Tracker) Closed() int {
	return t.closed
}

// Triggers returns how many times the tracker was armed from BlockNormal.
func (t *Tracker) Triggers() int {
	return t.triggers
}

func (t *Tracker) enter(line string) {
	t.mode = BlockInside
	t.closeToken = t.close
	t.opened++

	// fn f() {} closes on its opening line.
	rest := line[strings.Index(line, t.open)+len(t.open):]
	if strings.Contains(rest, t.closeToken) {
		t.leave()
	}
}

func (t *Tracker) leave() {
	t.mode = BlockNormal
	t.closeToken = ""
	t.closed++
}
