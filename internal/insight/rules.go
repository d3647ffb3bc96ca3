// Package insight applies threshold rules over the analysis artifacts and
// emits ranked textual findings. Rules are independent predicate+template
// pairs; all that fire are emitted, ordered by fixed rule priority, ties by
// declaration order. A rule whose required input is undefined stays silent.
package insight

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cinestat/cinestat-cli/internal/bivariate"
	"github.com/cinestat/cinestat-cli/internal/quality"
	"github.com/cinestat/cinestat-cli/internal/univariate"
)

// Config carries the rule thresholds and the designated columns the movie
// rules look at.
type Config struct {
	CorrelationThreshold float64 // rule 1, default 0.7
	MissingPctThreshold  float64 // rule 4, default 5.0
	TopCategories        int     // rule 3, default 2

	FinancialX     string // rule 1, default "budget"
	FinancialY     string // rule 1, default "revenue"
	CategoryColumn string // rule 3, default "genre"
	ModalColumn    string // rule 5, default "runtime"
}

// DefaultConfig returns the standard thresholds and column designations.
func DefaultConfig() Config {
	return Config{
		CorrelationThreshold: 0.7,
		MissingPctThreshold:  5.0,
		TopCategories:        2,
		FinancialX:           "budget",
		FinancialY:           "revenue",
		CategoryColumn:       "genre",
		ModalColumn:          "runtime",
	}
}

// Inputs bundles the upstream artifacts a rule may inspect.
type Inputs struct {
	Missing     quality.MissingnessReport
	Describe    []quality.Stats
	Frequencies []univariate.Frequency
	Histograms  []univariate.Histogram
	Correlation bivariate.Matrix
	Config      Config
}

// Finding is one ranked textual insight.
type Finding struct {
	Rule     string
	Priority int
	Text     string
	Values   []float64 // the statistic value(s) that triggered the rule
}

// Rule is a pure predicate over the inputs plus a template; Evaluate
// returns every finding the rule produces (none when it does not fire).
type Rule struct {
	ID       string
	Priority int
	Evaluate func(Inputs) []Finding
}

// Rules is the fixed ordered rule set.
var Rules = []Rule{
	{ID: "financial-correlation", Priority: 1, Evaluate: financialCorrelation},
	{ID: "right-skew", Priority: 2, Evaluate: rightSkew},
	{ID: "dominant-categories", Priority: 3, Evaluate: dominantCategories},
	{ID: "completeness", Priority: 4, Evaluate: completeness},
	{ID: "modal-bucket", Priority: 5, Evaluate: modalBucket},
}

// Synthesize evaluates every rule independently and returns the findings
// ranked by rule priority, declaration order on ties.
func Synthesize(in Inputs) []Finding {
	var out []Finding
	for _, r := range Rules {
		out = append(out, r.Evaluate(in)...)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}

func financialCorrelation(in Inputs) []Finding {
	r := in.Correlation.Entry(in.Config.FinancialX, in.Config.FinancialY)
	if math.IsNaN(r) || math.Abs(r) < in.Config.CorrelationThreshold {
		return nil
	}
	direction := "positive"
	if r < 0 {
		direction = "negative"
	}
	return []Finding{{
		Rule:     "financial-correlation",
		Priority: 1,
		Text: fmt.Sprintf("%s and %s show a strong %s correlation (r = %.2f, threshold %.2f)",
			in.Config.FinancialX, in.Config.FinancialY, direction, r, in.Config.CorrelationThreshold),
		Values: []float64{r},
	}}
}

func rightSkew(in Inputs) []Finding {
	var out []Finding
	for _, s := range in.Describe {
		if math.IsNaN(s.Mean) || math.IsNaN(s.Median) || math.IsNaN(s.Std) || s.Std == 0 {
			continue
		}
		if s.Mean-s.Median <= s.Std {
			continue
		}
		out = append(out, Finding{
			Rule:     "right-skew",
			Priority: 2,
			Text: fmt.Sprintf("%s is right-skewed: mean %.4g exceeds median %.4g by more than one standard deviation (%.4g)",
				s.Name, s.Mean, s.Median, s.Std),
			Values: []float64{s.Mean, s.Median, s.Std},
		})
	}
	return out
}

func dominantCategories(in Inputs) []Finding {
	for _, f := range in.Frequencies {
		if f.Column != in.Config.CategoryColumn || f.N == 0 {
			continue
		}
		top := f.Top(in.Config.TopCategories)
		parts := make([]string, 0, len(top))
		values := make([]float64, 0, len(top))
		for _, cc := range top {
			share := float64(cc.Count) / float64(f.N) * 100
			parts = append(parts, fmt.Sprintf("%s (%.1f%%)", cc.Value, share))
			values = append(values, share)
		}
		return []Finding{{
			Rule:     "dominant-categories",
			Priority: 3,
			Text:     fmt.Sprintf("dominant %s values: %s", f.Column, strings.Join(parts, ", ")),
			Values:   values,
		}}
	}
	return nil
}

func completeness(in Inputs) []Finding {
	var out []Finding
	for _, cm := range in.Missing {
		if cm.Percent <= in.Config.MissingPctThreshold {
			continue
		}
		out = append(out, Finding{
			Rule:     "completeness",
			Priority: 4,
			Text: fmt.Sprintf("column %s is %.1f%% missing (threshold %.1f%%)",
				cm.Name, cm.Percent, in.Config.MissingPctThreshold),
			Values: []float64{cm.Percent},
		})
	}
	return out
}

func modalBucket(in Inputs) []Finding {
	for _, h := range in.Histograms {
		if h.Column != in.Config.ModalColumn || h.Log1p {
			continue
		}
		b, ok := h.ModalBin()
		if !ok || b.Count == 0 {
			continue
		}
		return []Finding{{
			Rule:     "modal-bucket",
			Priority: 5,
			Text: fmt.Sprintf("%s most often falls between %.4g and %.4g (%d of %d values)",
				h.Column, b.Low, b.High, b.Count, h.N),
			Values: []float64{b.Low, b.High, float64(b.Count)},
		}}
	}
	return nil
}
