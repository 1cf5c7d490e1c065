package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mouse-blink/trimsrc/internal/adapter"
	"github.com/mouse-blink/trimsrc/internal/domain"
	m "github.com/mouse-blink/trimsrc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesCmd_PrintsEffectiveRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("triggers: [\"#flag_block\"]\n"), 0o600))

	cmd, out := newTestRoot(t, newRulesCmd)
	cmd.SetArgs([]string{"rules", "--rules", path})
	require.NoError(t, cmd.Execute())

	rules, err := adapter.DecodeRuleSet(out.Bytes())
	require.NoError(t, err)

	assert.Equal(t, []string{"#flag_block"}, rules.Triggers)
	assert.Equal(t, m.DefaultOpenToken, rules.Open)
	assert.Equal(t, m.DefaultCloseToken, rules.Close)
	assert.Equal(t, m.OutputMirror, rules.Output.Mode)
	assert.Equal(t, m.DefaultKeyPrefix, rules.Output.KeyPrefix)
}

func TestRulesCmd_Preset(t *testing.T) {
	cmd, out := newTestRoot(t, newRulesCmd)
	cmd.SetArgs([]string{"rules", "--preset", "bevy"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "bevy_reflect")
}

func TestRulesCmd_RejectsInvalidRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("substitutions:\n  - {from: a, to: aa}\n"), 0o600))

	cmd, _ := newTestRoot(t, newRulesCmd)
	cmd.SetArgs([]string{"rules", "--rules", path})

	assert.ErrorIs(t, cmd.Execute(), domain.ErrInvalidRuleSet)
}
