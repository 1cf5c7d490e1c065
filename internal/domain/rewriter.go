package domain

import (
	"strings"

	"go.uber.org/zap"

	m "github.com/mouse-blink/trimsrc/internal/model"
)

// RewriteResult is the output of rewriting one file.
type RewriteResult struct {
	Document m.Document
	Stats    m.LineStats
	// Warning is set when the file was rewritten but is malformed; it wraps
	// ErrMalformedBlock.
	Warning error
}

// Rewriter drives a Classifier over every line of a file.
type Rewriter interface {
	Rewrite(path m.Path, content []byte) RewriteResult
	RewriteLines(path m.Path, lines []string) ([]string, m.LineStats, error)
}

type rewriter struct {
	rules  m.RuleSet
	logger *zap.Logger
}

// NewRewriter returns a Rewriter for rules. Defaults are applied to the rule
// set; validation is the caller's job.
func NewRewriter(rules m.RuleSet, logger *zap.Logger) Rewriter {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &rewriter{rules: rules.WithDefaults(), logger: logger}
}

// Rewrite splits content into lines, rewrites them and keeps the line-ending
// state of the input.
func (r *rewriter) Rewrite(path m.Path, content []byte) RewriteResult {
	doc := SplitDocument(content)

	lines, stats, warning := r.RewriteLines(path, doc.Lines)

	return RewriteResult{
		Document: m.Document{Lines: lines, TrailingNewline: doc.TrailingNewline},
		Stats:    stats,
		Warning:  warning,
	}
}

// RewriteLines classifies lines with a fresh Classifier. The returned error
// only ever wraps ErrMalformedBlock; the lines are valid either way.
func (r *rewriter) RewriteLines(path m.Path, lines []string) ([]string, m.LineStats, error) {
	classifier := NewClassifier(r.rules, FileStem(string(path)))

	out := make([]string, 0, len(lines))
	stats := m.LineStats{In: len(lines)}

	for _, line := range lines {
		c := classifier.Classify(line)

		switch c.Decision {
		case Drop:
			stats.Dropped++

			continue
		case KeepSubstituted:
			stats.Substituted++
		case Keep:
			stats.Kept++
		}

		out = append(out, c.Text)
	}

	err := classifier.Finish()
	if err != nil {
		r.logger.Warn("file ended inside a restricted block",
			zap.String("path", string(path)),
			zap.Stringer("state", classifier.Tracker().Mode()),
			zap.Int("opened", classifier.Tracker().Opened()),
			zap.Int("closed", classifier.Tracker().Closed()),
		)
	}

	return out, stats, err
}

// SplitDocument splits content on '\n'. Carriage returns stay part of the
// line text so CRLF files round-trip unchanged.
func SplitDocument(content []byte) m.Document {
	if len(content) == 0 {
		return m.Document{}
	}

	text := string(content)
	trailing := strings.HasSuffix(text, "\n")

	if trailing {
		text = text[:len(text)-1]
	}

	return m.Document{Lines: strings.Split(text, "\n"), TrailingNewline: trailing}
}

// JoinDocument is the inverse of SplitDocument.
func JoinDocument(doc m.Document) []byte {
	if len(doc.Lines) == 0 {
		return nil
	}

	var b strings.Builder

	for i, line := range doc.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}

		b.WriteString(line)
	}

	if doc.TrailingNewline {
		b.WriteByte('\n')
	}

	return []byte(b.String())
}
