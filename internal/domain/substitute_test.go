package domain

import (
	"testing"

	m "github.com/mouse-blink/trimsrc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstituter_Apply(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []m.Substitution
		line    string
		want    string
		changed bool
	}{
		{
			name:    "single needle",
			pairs:   []m.Substitution{{From: "ErrUnexpectedEOF", To: "ErrEOF"}},
			line:    "raise ErrUnexpectedEOF here",
			want:    "raise ErrEOF here",
			changed: true,
		},
		{
			name:    "all occurrences",
			pairs:   []m.Substitution{{From: "warn!", To: "println!"}},
			line:    `warn!("a"); warn!("b");`,
			want:    `println!("a"); println!("b");`,
			changed: true,
		},
		{
			name: "pairs apply in order",
			pairs: []m.Substitution{
				{From: "foo", To: "bar"},
				{From: "baz", To: "qux"},
			},
			line:    "foo baz foo",
			want:    "bar qux bar",
			changed: true,
		},
		{
			name:    "whole line",
			pairs:   []m.Substitution{{From: "use bevy_utils::HashMap", To: "use std::collections::HashMap;", Line: true}},
			line:    "    use bevy_utils::HashMap; // maps",
			want:    "use std::collections::HashMap;",
			changed: true,
		},
		{
			name:    "no match",
			pairs:   []m.Substitution{{From: "x", To: "y"}},
			line:    "abc",
			want:    "abc",
			changed: false,
		},
		{
			name:    "replacement equal to input",
			pairs:   []m.Substitution{{From: "a", To: "a"}},
			line:    "abc",
			want:    "abc",
			changed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := NewSubstituter(tt.pairs).Apply(tt.line)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.changed, changed)
		})
	}
}

func TestSubstituter_Idempotent(t *testing.T) {
	pairs := []m.Substitution{
		{From: "io.ErrUnexpectedEOF", To: `fmt.Errorf("ErrUnexpectedEOF")`},
		{From: "warn!", To: "println!"},
		{From: "HashMap::default()", To: "HashMap::<_, _, RandomState>::default()"},
		{From: "use bevy_utils::HashMap", To: "use std::collections::HashMap;", Line: true},
	}
	require.NoError(t, ValidateRuleSet(m.RuleSet{Substitutions: pairs}.WithDefaults()))

	s := NewSubstituter(pairs)

	for _, line := range []string{
		"return io.ErrUnexpectedEOF",
		`warn!("x"); let m = HashMap::default();`,
		"use bevy_utils::HashMap;",
		"untouched",
	} {
		once, _ := s.Apply(line)
		twice, changed := s.Apply(once)

		assert.Equal(t, once, twice, "line %q", line)
		assert.False(t, changed, "line %q", line)
	}
}
