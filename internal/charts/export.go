package charts

import (
	"fmt"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cinestat/cinestat-cli/internal/utils"
)

// Manifest indexes the artifact files of one exported run.
type Manifest struct {
	RunID       string    `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Format      string    `json:"format" yaml:"format"`
	Files       []string  `json:"files" yaml:"files"`
}

// Write exports the set into dir, one file per artifact family plus a
// manifest. Format is "json" or "yaml".
func (s *Set) Write(dir, format string) (*Manifest, error) {
	if format != "json" && format != "yaml" {
		return nil, fmt.Errorf("unsupported format %q (use json|yaml)", format)
	}
	if err := utils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	man := &Manifest{RunID: s.RunID, GeneratedAt: s.GeneratedAt, Format: format}
	files := []struct {
		name string
		v    any
		skip bool
	}{
		{"histograms", s.Histograms, len(s.Histograms) == 0},
		{"box_plots", s.BoxPlots, len(s.BoxPlots) == 0},
		{"correlation", s.Correlation, s.Correlation == nil},
		{"scatter", s.Scatter, s.Scatter == nil},
		{"frequencies", s.Frequencies, len(s.Frequencies) == 0},
	}
	for _, f := range files {
		if f.skip {
			continue
		}
		name := f.name + "." + format
		if err := writeArtifact(filepath.Join(dir, name), f.v, format); err != nil {
			return nil, err
		}
		man.Files = append(man.Files, name)
	}
	if err := writeArtifact(filepath.Join(dir, "manifest."+format), man, format); err != nil {
		return nil, err
	}
	return man, nil
}

func writeArtifact(path string, v any, format string) error {
	var (
		b   []byte
		err error
	)
	if format == "yaml" {
		b, err = yaml.Marshal(v)
		if err != nil {
			err = fmt.Errorf("marshal yaml: %w", err)
		}
	} else {
		b, err = utils.PrettyJSON(v)
	}
	if err != nil {
		return err
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
