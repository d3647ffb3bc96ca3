package insight

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cinestat/cinestat-cli/internal/bivariate"
	"github.com/cinestat/cinestat-cli/internal/dataset"
	"github.com/cinestat/cinestat-cli/internal/quality"
	"github.com/cinestat/cinestat-cli/internal/univariate"
)

func loadCSV(t *testing.T, rows ...string) *dataset.Dataset {
	t.Helper()
	p := filepath.Join(t.TempDir(), "fixture.csv")
	if err := os.WriteFile(p, []byte(strings.Join(rows, "\n")), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	d, err := dataset.Load(p)
	if err != nil {
		t.Fatalf("load csv: %v", err)
	}
	return d
}

func inputsFor(t *testing.T, d *dataset.Dataset, cfg Config) Inputs {
	t.Helper()
	in := Inputs{
		Missing:     quality.Missingness(d),
		Describe:    quality.Describe(d),
		Correlation: bivariate.Correlations(d),
		Config:      cfg,
	}
	for _, c := range d.NumericColumns() {
		in.Histograms = append(in.Histograms, univariate.NewHistogram(c, 10))
	}
	for _, c := range d.CategoricalColumns() {
		in.Frequencies = append(in.Frequencies, univariate.NewFrequency(c))
	}
	return in
}

func findRule(findings []Finding, id string) (Finding, bool) {
	for _, f := range findings {
		if f.Rule == id {
			return f, true
		}
	}
	return Finding{}, false
}

func TestFinancialCorrelationFiresOnPerfectPair(t *testing.T) {
	d := loadCSV(t,
		"budget,revenue",
		"1,10",
		"2,20",
		"3,30",
		"4,40",
	)
	findings := Synthesize(inputsFor(t, d, DefaultConfig()))
	f, ok := findRule(findings, "financial-correlation")
	if !ok {
		t.Fatal("rule should fire for perfectly correlated columns")
	}
	if len(f.Values) != 1 || math.Abs(f.Values[0]-1) > 1e-9 {
		t.Fatalf("values = %v, want [1]", f.Values)
	}
	if !strings.Contains(f.Text, "strong positive correlation") {
		t.Fatalf("text = %q", f.Text)
	}
}

func TestFinancialCorrelationSilentWhenUncorrelated(t *testing.T) {
	// x against a symmetric pattern: r is exactly 0
	d := loadCSV(t,
		"budget,revenue",
		"1,1",
		"2,2",
		"3,2",
		"4,1",
	)
	findings := Synthesize(inputsFor(t, d, DefaultConfig()))
	if f, ok := findRule(findings, "financial-correlation"); ok {
		t.Fatalf("rule fired on uncorrelated pair: %+v", f)
	}
}

func TestFinancialCorrelationSilentWhenUndefined(t *testing.T) {
	d := loadCSV(t,
		"budget,revenue",
		"1,5",
		"2,5",
		"3,5",
	)
	findings := Synthesize(inputsFor(t, d, DefaultConfig()))
	if _, ok := findRule(findings, "financial-correlation"); ok {
		t.Fatal("rule fired on a zero-variance pair (NaN coefficient)")
	}
}

func TestCorrelationThresholdConfigurable(t *testing.T) {
	d := loadCSV(t,
		"budget,revenue",
		"1,2",
		"2,3",
		"3,2",
		"4,5",
		"5,4",
	)
	in := inputsFor(t, d, DefaultConfig())
	r := in.Correlation.Entry("budget", "revenue")
	if math.IsNaN(r) || math.Abs(r) >= 0.95 {
		t.Fatalf("fixture correlation unexpectedly extreme: %v", r)
	}
	strict := in
	strict.Config.CorrelationThreshold = 0.99
	if _, ok := findRule(Synthesize(strict), "financial-correlation"); ok {
		t.Fatal("rule fired above its threshold")
	}
	loose := in
	loose.Config.CorrelationThreshold = math.Abs(r) - 0.01
	if _, ok := findRule(Synthesize(loose), "financial-correlation"); !ok {
		t.Fatal("rule should fire once the threshold drops below |r|")
	}
}

func TestCompletenessFiresPerColumn(t *testing.T) {
	d := loadCSV(t,
		"runtime,genre",
		"100,Action",
		",Drama",
		"120,",
		"130,Action",
	)
	findings := Synthesize(inputsFor(t, d, DefaultConfig()))
	var hits int
	for _, f := range findings {
		if f.Rule == "completeness" {
			hits++
			if !strings.Contains(f.Text, "missing") {
				t.Fatalf("text = %q", f.Text)
			}
		}
	}
	// both columns are 25% missing, above the 5% default
	if hits != 2 {
		t.Fatalf("completeness findings = %d, want 2", hits)
	}
}

func TestDominantCategoriesAndModalBucket(t *testing.T) {
	d := loadCSV(t,
		"runtime,genre",
		"100,Action",
		"105,Drama",
		"104,Action",
		"190,Drama",
		"101,Action",
	)
	findings := Synthesize(inputsFor(t, d, DefaultConfig()))
	dom, ok := findRule(findings, "dominant-categories")
	if !ok {
		t.Fatal("dominant-categories should fire")
	}
	if !strings.Contains(dom.Text, "Action (60.0%)") || !strings.Contains(dom.Text, "Drama (40.0%)") {
		t.Fatalf("text = %q", dom.Text)
	}
	modal, ok := findRule(findings, "modal-bucket")
	if !ok {
		t.Fatal("modal-bucket should fire")
	}
	if !strings.Contains(modal.Text, "runtime") || !strings.Contains(modal.Text, "4 of 5") {
		t.Fatalf("text = %q", modal.Text)
	}
}

func TestFindingsRankedByPriority(t *testing.T) {
	d := loadCSV(t,
		"budget,revenue,runtime,genre",
		"1,10,100,Action",
		"2,20,,Drama",
		"3,30,104,Action",
		"4,40,101,Action",
	)
	findings := Synthesize(inputsFor(t, d, DefaultConfig()))
	if len(findings) < 2 {
		t.Fatalf("findings = %v", findings)
	}
	for i := 1; i < len(findings); i++ {
		if findings[i-1].Priority > findings[i].Priority {
			t.Fatalf("findings out of priority order: %v", findings)
		}
	}
	if findings[0].Rule != "financial-correlation" {
		t.Fatalf("first finding = %s, want financial-correlation", findings[0].Rule)
	}
}
