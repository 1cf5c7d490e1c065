package domain

import (
	"strings"

	m "github.com/mouse-blink/trimsrc/internal/model"
)

// Decision is the classifier's verdict for one line.
type Decision int

// Available Decision values.
const (
	Keep Decision = iota
	KeepSubstituted
	Drop
)

func (d Decision) String() string {
	switch d {
	case Keep:
		return "keep"
	case KeepSubstituted:
		return "keep-substituted"
	case Drop:
		return "drop"
	default:
		return "unknown"
	}
}

// Classification is the outcome for a line. Text is the line to emit when
// the decision is not Drop.
type Classification struct {
	Decision Decision
	Text     string
}

// Classifier decides line by line what survives from one file. A Classifier
// carries the per-file tracker state, so a new one is built for every file.
//
// Matching is textual. Tokens inside string literals or comments trigger
// rules exactly like code does.
type Classifier struct {
	drops       []m.DropRule
	starts      []m.Matcher
	allow       []string
	dropBody    bool
	resume      []string
	substituter *Substituter

	tracker *Tracker
	inBody  bool
}

// NewClassifier builds a classifier for the file whose stem is given. The
// rule set is expected to have defaults applied.
func NewClassifier(rules m.RuleSet, stem string) *Classifier {
	return &Classifier{
		drops:       rules.DropRules(),
		starts:      rules.Declarations.Starts,
		allow:       expandAllow(rules.Declarations.Allow, stem),
		dropBody:    rules.Declarations.DropBody,
		resume:      rules.Declarations.Resume,
		substituter: NewSubstituter(rules.Substitutions),
		tracker:     NewTracker(rules.Open, rules.Close),
	}
}

// Tracker exposes the block tracker of the file being classified.
func (c *Classifier) Tracker() *Tracker {
	return c.tracker
}

// Classify returns the decision for the next line of the file.
func (c *Classifier) Classify(line string) Classification {
	if !c.tracker.Normal() {
		c.tracker.Consume(line, c.opensBlock(line))

		return Classification{Decision: Drop}
	}

	if c.inBody {
		switch {
		case c.isDeclaration(line):
			c.inBody = false
		case c.resumes(line):
			c.inBody = false
		default:
			return Classification{Decision: Drop}
		}
	}

	if c.matchDrop(line) {
		if c.opensBlock(line) {
			c.tracker.Trigger(line)
		} else if c.startsBody(line) {
			c.inBody = true
		}

		return Classification{Decision: Drop}
	}

	if c.isDeclaration(line) && !c.allowed(line) {
		if c.dropBody {
			c.inBody = true
		}

		return Classification{Decision: Drop}
	}

	text, changed := c.substituter.Apply(line)
	if changed {
		return Classification{Decision: KeepSubstituted, Text: text}
	}

	return Classification{Decision: Keep, Text: line}
}

// Finish reports the end-of-file state of the tracker.
func (c *Classifier) Finish() error {
	return c.tracker.Finish()
}

func (c *Classifier) matchDrop(line string) bool {
	for _, rule := range c.drops {
		if rule.Match(line) {
			return true
		}
	}

	return false
}

func (c *Classifier) opensBlock(line string) bool {
	for _, rule := range c.drops {
		if rule.OpensBlock && rule.Match(line) {
			return true
		}
	}

	return false
}

func (c *Classifier) startsBody(line string) bool {
	for _, rule := range c.drops {
		if rule.DropBody && rule.Match(line) {
			return true
		}
	}

	return false
}

func (c *Classifier) isDeclaration(line string) bool {
	for _, start := range c.starts {
		if start.Match(line) {
			return true
		}
	}

	return false
}

func (c *Classifier) allowed(line string) bool {
	for _, fragment := range c.allow {
		if strings.Contains(line, fragment) {
			return true
		}
	}

	return false
}

func (c *Classifier) resumes(line string) bool {
	for _, prefix := range c.resume {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}

	return false
}
