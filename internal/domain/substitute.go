package domain

import (
	"strings"

	m "github.com/mouse-blink/trimsrc/internal/model"
)

// Substituter applies literal replacements to kept lines.
type Substituter struct {
	pairs []m.Substitution
}

// NewSubstituter returns a Substituter applying pairs in order.
func NewSubstituter(pairs []m.Substitution) *Substituter {
	return &Substituter{pairs: pairs}
}

// Apply runs every pair over line left to right. Each needle replaces all of
// its occurrences; a whole-line pair replaces the entire line. The boolean
// reports whether the text changed.
func (s *Substituter) Apply(line string) (string, bool) {
	out := line

	for _, p := range s.pairs {
		if p.From == "" || !strings.Contains(out, p.From) {
			continue
		}

		if p.Line {
			out = p.To
			continue
		}

		out = strings.ReplaceAll(out, p.From, p.To)
	}

	return out, out != line
}
