package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mouse-blink/trimsrc/internal/adapter"
	m "github.com/mouse-blink/trimsrc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCmd_WritesPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")

	cmd, out := newTestRoot(t, newInitCmd)
	cmd.SetArgs([]string{"init", "--rules", path, "--preset", "gogoproto"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Rule file created: "+path)

	rules, err := adapter.NewRuleStore().Load(path)
	require.NoError(t, err)

	want, err := adapter.Preset("gogoproto")
	require.NoError(t, err)
	assert.Equal(t, want, rules)
	assert.Equal(t, m.OutputRegroup, rules.Output.Mode)
}

func TestInitCmd_DefaultPath(t *testing.T) {
	dir := t.TempDir()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cmd, _ := newTestRoot(t, newInitCmd)
	cmd.SetArgs([]string{"init"})
	require.NoError(t, cmd.Execute())

	assert.FileExists(t, filepath.Join(dir, adapter.DefaultRulesFile))
}

func TestInitCmd_RefusesToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("open: \"(\"\n"), 0o600))

	cmd, _ := newTestRoot(t, newInitCmd)
	cmd.SetArgs([]string{"init", "--rules", path})
	assert.ErrorContains(t, cmd.Execute(), "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "open: \"(\"\n", string(data))

	cmd, _ = newTestRoot(t, newInitCmd)
	cmd.SetArgs([]string{"init", "--rules", path, "--force", "--preset", "bevy"})
	require.NoError(t, cmd.Execute())

	rules, err := adapter.NewRuleStore().Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{".rs"}, rules.Extensions)
}

func TestInitCmd_UnknownPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")

	cmd, _ := newTestRoot(t, newInitCmd)
	cmd.SetArgs([]string{"init", "--rules", path, "--preset", "nope"})

	assert.ErrorContains(t, cmd.Execute(), "unknown preset")
	assert.NoFileExists(t, path)
}
