package pipeline

import (
	"math"
	"reflect"
	"testing"

	"github.com/cinestat/cinestat-cli/internal/dataset"
)

func TestRunSampleEndToEnd(t *testing.T) {
	d := dataset.Sample()
	opt := DefaultOptions()
	// the five-movie sample correlates budget~revenue at r ≈ 0.68
	opt.Insight.CorrelationThreshold = 0.65
	res, err := Run(d, opt)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.RunID == "" {
		t.Fatal("missing run ID")
	}
	if res.Structure.Rows != 5 || res.Structure.Columns != 9 {
		t.Fatalf("shape = (%d, %d), want (5, 9)", res.Structure.Rows, res.Structure.Columns)
	}
	for _, cm := range res.Missing {
		if cm.Count != 0 {
			t.Errorf("column %s missing count = %d, want 0", cm.Name, cm.Count)
		}
	}
	if len(res.Samples) != 5 {
		t.Fatalf("samples = %d, want 5", len(res.Samples))
	}

	// genre frequencies: Action 2, Drama 2, Sci-Fi 1, in that order
	var found bool
	for _, f := range res.Frequencies {
		if f.Column != "genre" {
			continue
		}
		found = true
		if len(f.Counts) != 3 ||
			f.Counts[0].Value != "Action" || f.Counts[0].Count != 2 ||
			f.Counts[1].Value != "Drama" || f.Counts[1].Count != 2 ||
			f.Counts[2].Value != "Sci-Fi" || f.Counts[2].Count != 1 {
			t.Fatalf("genre counts = %+v", f.Counts)
		}
	}
	if !found {
		t.Fatal("no genre frequency computed")
	}

	// budget and revenue are strongly positively correlated in the sample
	r := res.Correlation.Entry("budget", "revenue")
	if math.IsNaN(r) || r <= 0.6 {
		t.Fatalf("budget~revenue r = %v, want strongly positive", r)
	}
	if len(res.Insights) == 0 || res.Insights[0].Rule != "financial-correlation" {
		t.Fatalf("insights = %+v, want financial-correlation first", res.Insights)
	}

	if res.Scatter == nil || len(res.Scatter.Points) != 5 {
		t.Fatalf("scatter = %+v, want 5 points", res.Scatter)
	}
	if len(res.LogHists) != 2 {
		t.Fatalf("log histograms = %d, want budget and revenue", len(res.LogHists))
	}

	// histogram counts sum to the non-missing count per column
	for _, h := range res.Histograms {
		total := 0
		for _, b := range h.Bins {
			total += b.Count
		}
		if total != h.N {
			t.Errorf("column %s: bin counts sum to %d, want %d", h.Column, total, h.N)
		}
	}
}

func TestRunParallelMatchesSequential(t *testing.T) {
	d := dataset.Sample()
	seq, err := Run(d, DefaultOptions())
	if err != nil {
		t.Fatalf("sequential Run: %v", err)
	}
	opt := DefaultOptions()
	opt.Workers = 4
	par, err := Run(d, opt)
	if err != nil {
		t.Fatalf("parallel Run: %v", err)
	}
	if !reflect.DeepEqual(seq.Describe, par.Describe) {
		t.Fatal("describe differs between sequential and parallel runs")
	}
	if !reflect.DeepEqual(seq.Outliers, par.Outliers) {
		t.Fatal("outliers differ between sequential and parallel runs")
	}
	if !reflect.DeepEqual(seq.Histograms, par.Histograms) {
		t.Fatal("histograms differ between sequential and parallel runs")
	}
	if !reflect.DeepEqual(seq.Densities, par.Densities) {
		t.Fatal("densities differ between sequential and parallel runs")
	}
}

func TestRunRecordsSchemaGaps(t *testing.T) {
	d, fellBack := dataset.Acquire("testdata/definitely-absent.csv")
	if !fellBack {
		t.Fatal("expected fallback")
	}
	res, err := Run(d, DefaultOptions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Notes) != 0 {
		t.Fatalf("sample run notes = %v, want none", res.Notes)
	}
}

func TestRunSkipsScatterOnSchemaGap(t *testing.T) {
	opt := DefaultOptions()
	opt.EmphasisColumn = "no_such_column"
	res, err := Run(dataset.Sample(), opt)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Scatter != nil {
		t.Fatal("scatter should be skipped when the emphasis column is absent")
	}
	if len(res.Notes) == 0 {
		t.Fatal("expected a skipped-statistic note")
	}
}
