package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	m "github.com/mouse-blink/trimsrc/internal/model"
)

// ValidateRuleSet checks a rule set after defaults are applied.
func ValidateRuleSet(rs m.RuleSet) error {
	if rs.Open == "" || rs.Close == "" {
		return fmt.Errorf("%w: open and close tokens must not be empty", ErrInvalidRuleSet)
	}

	for i, token := range rs.Triggers {
		if token == "" {
			return fmt.Errorf("%w: trigger %d is empty", ErrInvalidRuleSet, i)
		}
	}

	for i, rule := range rs.Drop {
		if err := validateMatcher(rule.Matcher); err != nil {
			return fmt.Errorf("%w: drop rule %d: %v", ErrInvalidRuleSet, i, err)
		}
	}

	for i, start := range rs.Declarations.Starts {
		if err := validateMatcher(start); err != nil {
			return fmt.Errorf("%w: declaration start %d: %v", ErrInvalidRuleSet, i, err)
		}
	}

	for i, fragment := range rs.Declarations.Allow {
		if fragment == "" {
			return fmt.Errorf("%w: declaration allow entry %d is empty", ErrInvalidRuleSet, i)
		}
	}

	if err := validateSubstitutions(rs.Substitutions); err != nil {
		return err
	}

	switch rs.Output.Mode {
	case m.OutputMirror, m.OutputRegroup:
	default:
		return fmt.Errorf("%w: unknown output mode %q", ErrInvalidRuleSet, rs.Output.Mode)
	}

	if strings.TrimSpace(rs.Output.KeyPrefix) == "" {
		return fmt.Errorf("%w: key prefix must not be blank", ErrInvalidRuleSet)
	}

	if strings.ContainsAny(rs.Output.DirSuffix, `/\`) {
		return fmt.Errorf("%w: dir suffix %q contains a path separator", ErrInvalidRuleSet, rs.Output.DirSuffix)
	}

	return nil
}

func validateMatcher(mt m.Matcher) error {
	if mt.IsZero() {
		return fmt.Errorf("no condition set")
	}

	if mt.Contains != "" && mt.Prefix != "" {
		return fmt.Errorf("both contains and prefix set")
	}

	return nil
}

// validateSubstitutions rejects pairs that could fire again on their own
// output, which keeps Substituter.Apply idempotent.
func validateSubstitutions(pairs []m.Substitution) error {
	for i, p := range pairs {
		if p.From == "" {
			return fmt.Errorf("%w: substitution %d has an empty needle", ErrInvalidRuleSet, i)
		}

		if strings.ContainsAny(p.To, "\r\n") {
			return fmt.Errorf("%w: substitution %d replacement spans lines", ErrInvalidRuleSet, i)
		}

		for j, other := range pairs {
			if other.From != "" && strings.Contains(p.To, other.From) {
				return fmt.Errorf("%w: substitution %d replacement %q contains needle %q of substitution %d",
					ErrInvalidRuleSet, i, p.To, other.From, j)
			}
		}
	}

	return nil
}

// FileStem returns the capitalised base name of path up to its first dot,
// e.g. "proto/message.pb.go" -> "Message".
func FileStem(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}

	r, size := utf8.DecodeRuneInString(base)
	if r == utf8.RuneError {
		return base
	}

	return string(unicode.ToUpper(r)) + base[size:]
}

// expandAllow replaces the stem placeholder in allow-list fragments.
func expandAllow(fragments []string, stem string) []string {
	out := make([]string, len(fragments))
	for i, f := range fragments {
		out[i] = strings.ReplaceAll(f, m.StemPlaceholder, stem)
	}

	return out
}
