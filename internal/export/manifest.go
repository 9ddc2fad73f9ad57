package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const manifestFileName = "manifest.yaml"

type Manifest struct {
	RunID  string `yaml:"run_id"`
	Seed   uint64 `yaml:"seed"`
	Format string `yaml:"format"`
	Files  []File `yaml:"files"`
}

func writeManifest(dir string, opts Options, files []File) (string, error) {
	format := opts.Format
	if format == "" {
		format = FormatCSV
	}
	rel := make([]File, len(files))
	for i, f := range files {
		rel[i] = File{Table: f.Table, Path: filepath.Base(f.Path), Rows: f.Rows}
	}

	data, err := yaml.Marshal(Manifest{
		RunID:  uuid.NewString(),
		Seed:   opts.Seed,
		Format: format,
		Files:  rel,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal manifest: %w", err)
	}

	path := filepath.Join(dir, manifestFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}
	return path, nil
}

func readManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}
