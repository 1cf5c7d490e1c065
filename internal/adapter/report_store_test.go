package adapter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/trimsrc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalReportStore_SaveManifest(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	rs := NewReportStore()

	reports := []m.FileReport{
		{
			Source:      m.Source{Path: "/src/a/message.pb.go", Rel: "a/message.pb.go"},
			Destination: m.Path(filepath.Join(out, "wire.pb", "message.pb.go")),
			PackageKey:  "wire",
			Status:      m.StatusRewritten,
			Stats:       m.LineStats{In: 10, Kept: 6, Substituted: 1, Dropped: 3},
		},
		{
			Source:      m.Source{Path: "/src/b/broken.rs", Rel: "b/broken.rs"},
			Destination: m.Path(filepath.Join(out, "b", "broken.rs")),
			Status:      m.StatusWarned,
			Stats:       m.LineStats{In: 3, Kept: 1, Dropped: 2},
			Warnings:    []string{"malformed block"},
		},
		{
			Source: m.Source{Path: "/src/c/nokey.go", Rel: "c/nokey.go"},
			Status: m.StatusFailed,
			Stats:  m.LineStats{},
			Err:    errors.New("missing package key"),
		},
	}

	require.NoError(t, rs.SaveManifest(m.Path(out), reports))

	data, err := os.ReadFile(filepath.Join(out, ManifestFileName))
	require.NoError(t, err)

	var decoded Manifest
	require.NoError(t, yaml.Unmarshal(data, &decoded))

	assert.Equal(t, 1, decoded.Version)
	assert.Equal(t, 3, decoded.Total)
	assert.Equal(t, 1, decoded.Failed)
	assert.Equal(t, 1, decoded.Warned)
	assert.Equal(t, m.LineStats{In: 13, Kept: 7, Substituted: 1, Dropped: 5}, decoded.Lines)

	require.Len(t, decoded.Files, 3)

	assert.Equal(t, "/src/a/message.pb.go", decoded.Files[0].Source)
	assert.Equal(t, filepath.Join("wire.pb", "message.pb.go"), decoded.Files[0].Destination)
	assert.Equal(t, "wire", decoded.Files[0].PackageKey)
	assert.Equal(t, "rewritten", decoded.Files[0].Status)

	assert.Equal(t, []string{"malformed block"}, decoded.Files[1].Warnings)

	assert.Empty(t, decoded.Files[2].Destination)
	assert.Equal(t, "missing package key", decoded.Files[2].Err)
	assert.Equal(t, "failed", decoded.Files[2].Status)
}

func TestLocalReportStore_LoadManifest(t *testing.T) {
	t.Parallel()

	t.Run("round trips saved manifest", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "gen")
		rs := NewReportStore()

		reports := []m.FileReport{{
			Source:      m.Source{Path: "/src/main.rs"},
			Destination: m.Path(filepath.Join(out, "main.rs")),
			Status:      m.StatusRewritten,
			Stats:       m.LineStats{In: 2, Kept: 2},
		}}

		require.NoError(t, rs.SaveManifest(m.Path(out), reports))

		manifest, err := rs.LoadManifest(m.Path(out))
		require.NoError(t, err)

		require.Len(t, manifest.Files, 1)
		assert.Equal(t, "main.rs", manifest.Files[0].Destination)
		assert.Equal(t, 2, manifest.Lines.Kept)
	})

	t.Run("missing manifest is an error", func(t *testing.T) {
		t.Parallel()

		_, err := NewReportStore().LoadManifest(m.Path(t.TempDir()))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		t.Parallel()

		out := t.TempDir()
		writeTestFile(t, filepath.Join(out, ManifestFileName), "files: [\n")

		_, err := NewReportStore().LoadManifest(m.Path(out))
		assert.ErrorContains(t, err, "decode manifest")
	})
}
