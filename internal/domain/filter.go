package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/mouse-blink/trimsrc/internal/model"
)

// sourceFilter drops walked files that should not be rewritten.
type sourceFilter struct {
	exclude    []*regexp.Regexp
	extensions map[string]struct{}
	outDir     string
}

func newSourceFilter(exclude []string, extensions []string, out m.Path) (*sourceFilter, error) {
	f := &sourceFilter{}

	for _, expr := range exclude {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", expr, err)
		}

		f.exclude = append(f.exclude, re)
	}

	if len(extensions) > 0 {
		f.extensions = make(map[string]struct{}, len(extensions))
		for _, ext := range extensions {
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}

			f.extensions[ext] = struct{}{}
		}
	}

	if out != "" {
		abs, err := filepath.Abs(string(out))
		if err != nil {
			return nil, err
		}

		f.outDir = abs
	}

	return f, nil
}

func (f *sourceFilter) keep(src m.Source) bool {
	if f.outDir != "" && isWithin(f.outDir, string(src.Path)) {
		return false
	}

	if f.extensions != nil && src.Err == nil {
		if _, ok := f.extensions[filepath.Ext(string(src.Path))]; !ok {
			return false
		}
	}

	for _, re := range f.exclude {
		if re.MatchString(string(src.Path)) || re.MatchString(string(src.Rel)) {
			return false
		}
	}

	return true
}

func (f *sourceFilter) apply(sources []m.Source) []m.Source {
	kept := sources[:0:0]

	for _, src := range sources {
		if f.keep(src) {
			kept = append(kept, src)
		}
	}

	return kept
}

func isWithin(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
