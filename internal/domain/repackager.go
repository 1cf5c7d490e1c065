package domain

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	m "github.com/mouse-blink/trimsrc/internal/model"
)

// ExtractPackageKey returns the identifier declared on the first line that
// starts with prefix, ignoring leading whitespace. The key ends at the first
// whitespace, semicolon or opening brace.
func ExtractPackageKey(lines []string, prefix string) (string, bool) {
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if !strings.HasPrefix(trimmed, prefix) {
			continue
		}

		rest := strings.TrimSpace(strings.TrimPrefix(trimmed, prefix))
		if i := strings.IndexAny(rest, " \t;{"); i >= 0 {
			rest = rest[:i]
		}

		if rest == "" {
			continue
		}

		return rest, true
	}

	return "", false
}

// Repackager computes output locations.
type Repackager struct {
	out   m.Path
	rules m.OutputRules
}

// NewRepackager returns a Repackager writing below out.
func NewRepackager(out m.Path, rules m.OutputRules) *Repackager {
	if rules.Mode == "" {
		rules.Mode = m.OutputMirror
	}

	if rules.KeyPrefix == "" {
		rules.KeyPrefix = m.DefaultKeyPrefix
	}

	return &Repackager{out: out, rules: rules}
}

// NeedsKey reports whether destinations depend on the package key.
func (r *Repackager) NeedsKey() bool {
	return r.rules.Mode == m.OutputRegroup
}

// Key extracts the package key of a file in regroup mode.
func (r *Repackager) Key(src m.Source, lines []string) (string, error) {
	key, ok := ExtractPackageKey(lines, r.rules.KeyPrefix)
	if !ok {
		return "", fmt.Errorf("%w: no line starting with %q in %s", ErrMissingPackageKey, r.rules.KeyPrefix, src.Path)
	}

	return key, nil
}

// Destination returns the output path for src. key is ignored in mirror
// mode.
func (r *Repackager) Destination(src m.Source, key string) m.Path {
	if r.rules.Mode == m.OutputRegroup {
		return m.Path(filepath.Join(string(r.out), key+r.rules.DirSuffix, filepath.Base(string(src.Path))))
	}

	return m.Path(filepath.Join(string(r.out), string(src.Rel)))
}

// MarkCollisions fails every report whose destination is shared with another
// report. Reports that already failed are ignored.
func MarkCollisions(reports []m.FileReport) int {
	byDest := make(map[m.Path][]int)

	for i, r := range reports {
		if r.Failed() || r.Destination == "" {
			continue
		}

		byDest[r.Destination] = append(byDest[r.Destination], i)
	}

	marked := 0

	for dest, idx := range byDest {
		if len(idx) < 2 {
			continue
		}

		sort.Ints(idx)

		for _, i := range idx {
			others := make([]string, 0, len(idx)-1)

			for _, j := range idx {
				if j != i {
					others = append(others, string(reports[j].Source.Path))
				}
			}

			reports[i].Status = m.StatusFailed
			reports[i].Err = fmt.Errorf("%w: %s is also written by %s", ErrDestinationCollision, dest, strings.Join(others, ", "))
			marked++
		}
	}

	return marked
}
