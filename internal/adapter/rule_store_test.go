package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/trimsrc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bevyRulesYAML = `triggers: ['#[cfg(feature = "bevy_reflect")]']
drop:
  - contains: "use bevy_utils::tracing::"
  - prefix: "const ("
    opensBlock: true
  - contains: "var fileDescriptor"
    dropBody: true
declarations:
  starts: [{contains: "func"}]
  allow: ["Marshal()", "encodeVarint{stem}"]
  dropBody: true
  resume: ["var", "type"]
substitutions:
  - {from: "ErrUnexpectedEOF", to: "ErrEOF"}
  - {from: "use bevy_utils::HashMap", to: "use std::collections::HashMap;", line: true}
extensions: [".rs"]
output:
  mode: regroup
  dirSuffix: ".pb"
`

func TestDecodeRuleSet(t *testing.T) {
	t.Run("decodes every section", func(t *testing.T) {
		rules, err := DecodeRuleSet([]byte(bevyRulesYAML))
		require.NoError(t, err)

		assert.Equal(t, []string{`#[cfg(feature = "bevy_reflect")]`}, rules.Triggers)
		assert.Equal(t, []m.DropRule{
			{Matcher: m.Matcher{Contains: "use bevy_utils::tracing::"}},
			{Matcher: m.Matcher{Prefix: "const ("}, OpensBlock: true},
			{Matcher: m.Matcher{Contains: "var fileDescriptor"}, DropBody: true},
		}, rules.Drop)
		assert.Equal(t, []m.Matcher{{Contains: "func"}}, rules.Declarations.Starts)
		assert.Equal(t, []string{"Marshal()", "encodeVarint{stem}"}, rules.Declarations.Allow)
		assert.True(t, rules.Declarations.DropBody)
		assert.Equal(t, []string{"var", "type"}, rules.Declarations.Resume)
		assert.Equal(t, []m.Substitution{
			{From: "ErrUnexpectedEOF", To: "ErrEOF"},
			{From: "use bevy_utils::HashMap", To: "use std::collections::HashMap;", Line: true},
		}, rules.Substitutions)
		assert.Equal(t, []string{".rs"}, rules.Extensions)
		assert.Equal(t, m.OutputRegroup, rules.Output.Mode)
		assert.Equal(t, ".pb", rules.Output.DirSuffix)
		assert.Empty(t, rules.Open, "defaults are applied later")
	})

	t.Run("empty document yields empty rule set", func(t *testing.T) {
		rules, err := DecodeRuleSet([]byte("  \n"))
		require.NoError(t, err)
		assert.Equal(t, m.RuleSet{}, rules)
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		_, err := DecodeRuleSet([]byte("trigers: [\"#flag_block\"]\n"))
		assert.ErrorContains(t, err, "decode rules")
	})
}

func TestEncodeRuleSet_RoundTrip(t *testing.T) {
	want, err := DecodeRuleSet([]byte(bevyRulesYAML))
	require.NoError(t, err)

	data, err := EncodeRuleSet(want)
	require.NoError(t, err)

	got, err := DecodeRuleSet(data)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestLocalRuleStore_Load(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		writeTestFile(t, path, "triggers: [\"#flag_block\"]\n")

		rules, err := NewRuleStore().Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"#flag_block"}, rules.Triggers)
	})

	t.Run("missing explicit path is an error", func(t *testing.T) {
		_, err := NewRuleStore().Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("empty path without default file yields empty rule set", func(t *testing.T) {
		chdir(t, t.TempDir())

		rules, err := NewRuleStore().Load("")
		require.NoError(t, err)
		assert.Equal(t, m.RuleSet{}, rules)
	})

	t.Run("empty path reads default file", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, filepath.Join(dir, DefaultRulesFile), "open: \"(\"\nclose: \")\"\n")
		chdir(t, dir)

		rules, err := NewRuleStore().Load("")
		require.NoError(t, err)
		assert.Equal(t, "(", rules.Open)
		assert.Equal(t, ")", rules.Close)
	})
}

func TestLocalRuleStore_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	store := NewRuleStore()

	rules := m.RuleSet{
		Triggers:      []string{"#flag_block"},
		Substitutions: []m.Substitution{{From: "a", To: "b"}},
	}

	require.NoError(t, store.Save(path, rules))

	got, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, rules, got)
}

func TestPreset(t *testing.T) {
	assert.Equal(t, []string{"bevy", "empty", "gogoproto"}, PresetNames())

	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			rules, err := Preset(name)
			require.NoError(t, err)

			data, err := EncodeRuleSet(rules)
			require.NoError(t, err)

			decoded, err := DecodeRuleSet(data)
			require.NoError(t, err)
			assert.Equal(t, rules, decoded)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := Preset("nope")
		assert.ErrorContains(t, err, "unknown preset")
	})
}
