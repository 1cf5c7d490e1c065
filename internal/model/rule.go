package model

import "strings"

// Default delimiter pair for restricted regions.
const (
	DefaultOpenToken  = "{"
	DefaultCloseToken = "}"
	DefaultKeyPrefix  = "package "
)

// StemPlaceholder is expanded inside declaration allow-list fragments to the
// capitalised stem of the file being rewritten.
const StemPlaceholder = "{stem}"

// OutputMode selects how destination paths are derived.
type OutputMode string

const (
	// OutputMirror keeps the input tree shape under the output directory.
	OutputMirror OutputMode = "mirror"
	// OutputRegroup places every file under a directory named after its
	// declared package key.
	OutputRegroup OutputMode = "regroup"
)

// Matcher is a textual line condition. Exactly one field is expected to be
// set; an empty Matcher never matches.
type Matcher struct {
	Contains string `yaml:"contains,omitempty"`
	Prefix   string `yaml:"prefix,omitempty"`
}

// Match reports whether line satisfies the condition.
func (mt Matcher) Match(line string) bool {
	switch {
	case mt.Contains != "":
		return strings.Contains(line, mt.Contains)
	case mt.Prefix != "":
		return strings.HasPrefix(line, mt.Prefix)
	default:
		return false
	}
}

// IsZero reports whether no condition is configured.
func (mt Matcher) IsZero() bool {
	return mt.Contains == "" && mt.Prefix == ""
}

func (mt Matcher) String() string {
	if mt.Prefix != "" {
		return "prefix:" + mt.Prefix
	}

	return "contains:" + mt.Contains
}

// DropRule removes every line it matches. When OpensBlock is set the line
// also announces a restricted region that starts on a following line. With
// DropBody the following lines are dropped as well, up to the next
// declaration start or resume prefix.
type DropRule struct {
	Matcher    `yaml:",inline"`
	OpensBlock bool `yaml:"opensBlock,omitempty"`
	DropBody   bool `yaml:"dropBody,omitempty"`
}

// DeclarationRules drop declaration lines unless an allow-list fragment is
// present on the same line.
type DeclarationRules struct {
	Starts []Matcher `yaml:"starts,omitempty"`
	Allow  []string  `yaml:"allow,omitempty"`
	// DropBody extends a dropped declaration over the following lines until
	// the next declaration start or a Resume prefix.
	DropBody bool `yaml:"dropBody,omitempty"`
	// Resume ends a dropped body, whether a declaration or a DropBody rule
	// started it.
	Resume []string `yaml:"resume,omitempty"`
}

// Substitution replaces From with To in kept lines. With Line set, a line
// containing From is replaced as a whole.
type Substitution struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Line bool   `yaml:"line,omitempty"`
}

// OutputRules configure destination layout.
type OutputRules struct {
	Mode      OutputMode `yaml:"mode,omitempty"`
	KeyPrefix string     `yaml:"keyPrefix,omitempty"`
	DirSuffix string     `yaml:"dirSuffix,omitempty"`
}

// RuleSet is the complete, ordered configuration consumed at startup.
type RuleSet struct {
	Triggers      []string         `yaml:"triggers,omitempty"`
	Open          string           `yaml:"open,omitempty"`
	Close         string           `yaml:"close,omitempty"`
	Drop          []DropRule       `yaml:"drop,omitempty"`
	Declarations  DeclarationRules `yaml:"declarations,omitempty"`
	Substitutions []Substitution   `yaml:"substitutions,omitempty"`
	Extensions    []string         `yaml:"extensions,omitempty"`
	Output        OutputRules      `yaml:"output,omitempty"`
}

// WithDefaults returns a copy with empty delimiter and output fields filled.
func (rs RuleSet) WithDefaults() RuleSet {
	if rs.Open == "" {
		rs.Open = DefaultOpenToken
	}

	if rs.Close == "" {
		rs.Close = DefaultCloseToken
	}

	if rs.Output.Mode == "" {
		rs.Output.Mode = OutputMirror
	}

	if rs.Output.KeyPrefix == "" {
		rs.Output.KeyPrefix = DefaultKeyPrefix
	}

	return rs
}

// DropRules returns the unconditional drop rules in evaluation order:
// trigger tokens first, then the configured drop list.
func (rs RuleSet) DropRules() []DropRule {
	rules := make([]DropRule, 0, len(rs.Triggers)+len(rs.Drop))
	for _, token := range rs.Triggers {
		rules = append(rules, DropRule{Matcher: Matcher{Contains: token}, OpensBlock: true})
	}

	return append(rules, rs.Drop...)
}
