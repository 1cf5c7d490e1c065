package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/trimsrc/internal/model"
)

// ManifestFileName is the name of the manifest written into the output root.
const ManifestFileName = ".trimsrc-manifest.yaml"

// ReportStore persists the outcome of a rewrite run next to its output.
type ReportStore interface {
	SaveManifest(out m.Path, reports []m.FileReport) error
	LoadManifest(out m.Path) (Manifest, error)
}

// Manifest is the decoded form of the manifest file.
type Manifest struct {
	Files   []ManifestEntry `yaml:"files"`
	Total   int             `yaml:"total_files"`
	Failed  int             `yaml:"failed_files"`
	Warned  int             `yaml:"warned_files"`
	Lines   m.LineStats     `yaml:"lines"`
	Version int             `yaml:"version"`
}

// ManifestEntry records one input file.
type ManifestEntry struct {
	Source      string      `yaml:"source"`
	Destination string      `yaml:"destination,omitempty"`
	PackageKey  string      `yaml:"package_key,omitempty"`
	Status      string      `yaml:"status"`
	Lines       m.LineStats `yaml:"lines"`
	Warnings    []string    `yaml:"warnings,omitempty"`
	Err         string      `yaml:"error,omitempty"`
}

const manifestVersion = 1

// LocalReportStore writes manifests to the local disk.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

// SaveManifest writes the manifest for reports into out. Destinations are
// stored relative to out.
func (rs *LocalReportStore) SaveManifest(out m.Path, reports []m.FileReport) error {
	summary := m.Summarize(reports)

	manifest := Manifest{
		Files:   make([]ManifestEntry, 0, len(reports)),
		Total:   summary.Files,
		Failed:  summary.Failed,
		Warned:  summary.Warned,
		Lines:   summary.Stats,
		Version: manifestVersion,
	}

	for _, r := range reports {
		entry := ManifestEntry{
			Source:     string(r.Source.Path),
			PackageKey: r.PackageKey,
			Status:     string(r.Status),
			Lines:      r.Stats,
			Warnings:   r.Warnings,
		}

		if r.Destination != "" {
			dest, err := filepath.Rel(string(out), string(r.Destination))
			if err != nil {
				dest = string(r.Destination)
			}

			entry.Destination = dest
		}

		if r.Err != nil {
			entry.Err = r.Err.Error()
		}

		manifest.Files = append(manifest.Files, entry)
	}

	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	if err := os.MkdirAll(string(out), 0o750); err != nil {
		return err
	}

	// #nosec G306 - manifest is meant to be read alongside the output tree
	return os.WriteFile(filepath.Join(string(out), ManifestFileName), data, 0o644)
}

// LoadManifest reads the manifest stored in out.
func (rs *LocalReportStore) LoadManifest(out m.Path) (Manifest, error) {
	// #nosec G304 - out is the user-selected output directory
	data, err := os.ReadFile(filepath.Join(string(out), ManifestFileName))
	if err != nil {
		return Manifest{}, err
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}

	return manifest, nil
}
