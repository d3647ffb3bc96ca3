package charts

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cinestat/cinestat-cli/internal/dataset"
	"github.com/cinestat/cinestat-cli/internal/pipeline"
)

func sampleSet(t *testing.T) *Set {
	t.Helper()
	res, err := pipeline.Run(dataset.Sample(), pipeline.DefaultOptions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return Build(res)
}

func TestBuildSampleArtifacts(t *testing.T) {
	s := sampleSet(t)
	if s.RunID == "" {
		t.Fatal("missing run ID")
	}
	// 4 numeric columns raw + 2 log1p financial views
	if len(s.Histograms) != 6 {
		t.Fatalf("histograms = %d, want 6", len(s.Histograms))
	}
	var logs int
	for _, h := range s.Histograms {
		if h.Log1p {
			logs++
		}
	}
	if logs != 2 {
		t.Fatalf("log1p histograms = %d, want 2", logs)
	}
	if len(s.BoxPlots) != 4 {
		t.Fatalf("box plots = %d, want 4", len(s.BoxPlots))
	}
	for _, bp := range s.BoxPlots {
		if math.IsNaN(float64(bp.Median)) {
			t.Errorf("box plot %s has undefined median", bp.Column)
		}
		if float64(bp.WhiskerLow) > float64(bp.Median) || float64(bp.WhiskerHigh) < float64(bp.Median) {
			t.Errorf("box plot %s whiskers exclude the median: %+v", bp.Column, bp)
		}
	}
	if s.Correlation == nil || len(s.Correlation.Columns) != 4 {
		t.Fatalf("correlation = %+v", s.Correlation)
	}
	if s.Scatter == nil || len(s.Scatter.Points) != 5 {
		t.Fatalf("scatter = %+v", s.Scatter)
	}
	if len(s.Frequencies) != 3 { // title, genre, director
		t.Fatalf("frequencies = %d, want 3", len(s.Frequencies))
	}
}

func TestFloatMarshalsNaNAsNull(t *testing.T) {
	b, err := json.Marshal(struct {
		A Float `json:"a"`
		B Float `json:"b"`
	}{A: Float(math.NaN()), B: Float(0.5)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"a":null,"b":0.5}` {
		t.Fatalf("json = %s", b)
	}
}

func TestWriteJSONArtifacts(t *testing.T) {
	s := sampleSet(t)
	dir := t.TempDir()
	man, err := s.Write(dir, "json")
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := []string{"histograms.json", "box_plots.json", "correlation.json", "scatter.json", "frequencies.json"}
	if len(man.Files) != len(want) {
		t.Fatalf("manifest files = %v", man.Files)
	}
	for i, name := range want {
		if man.Files[i] != name {
			t.Fatalf("manifest files = %v, want %v", man.Files, want)
		}
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("artifact %s not written: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "manifest.json")); err != nil {
		t.Fatalf("manifest not written: %v", err)
	}
	// the correlation artifact must decode as a matrix again
	b, err := os.ReadFile(filepath.Join(dir, "correlation.json"))
	if err != nil {
		t.Fatalf("read correlation: %v", err)
	}
	var hm struct {
		Columns []string     `json:"columns"`
		R       [][]*float64 `json:"r"`
	}
	if err := json.Unmarshal(b, &hm); err != nil {
		t.Fatalf("decode correlation: %v", err)
	}
	if len(hm.Columns) != 4 || len(hm.R) != 4 {
		t.Fatalf("correlation = %+v", hm)
	}
	if hm.R[0][0] == nil || *hm.R[0][0] != 1 {
		t.Fatalf("diagonal = %+v", hm.R[0][0])
	}
}

func TestWriteYAMLArtifacts(t *testing.T) {
	s := sampleSet(t)
	dir := t.TempDir()
	man, err := s.Write(dir, "yaml")
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if len(man.Files) == 0 || !strings.HasSuffix(man.Files[0], ".yaml") {
		t.Fatalf("manifest files = %v", man.Files)
	}
	b, err := os.ReadFile(filepath.Join(dir, "scatter.yaml"))
	if err != nil {
		t.Fatalf("read scatter: %v", err)
	}
	if !strings.Contains(string(b), "emphasis: vote_average") {
		t.Fatalf("scatter yaml = %s", b)
	}
}

func TestWriteRejectsUnknownFormat(t *testing.T) {
	s := sampleSet(t)
	if _, err := s.Write(t.TempDir(), "toml"); err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
}
