// Package pipeline runs the analysis stages in order over one immutable
// dataset and collects their artifacts into a single Result.
package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cinestat/cinestat-cli/internal/bivariate"
	"github.com/cinestat/cinestat-cli/internal/dataset"
	"github.com/cinestat/cinestat-cli/internal/insight"
	"github.com/cinestat/cinestat-cli/internal/inspect"
	"github.com/cinestat/cinestat-cli/internal/quality"
	"github.com/cinestat/cinestat-cli/internal/univariate"
)

// Options are the per-run analysis settings. Validate them with the config
// layer before calling Run; Run trusts its inputs.
type Options struct {
	HistogramBins     int
	DensityPoints     int
	OutlierMultiplier float64
	SampleRows        int
	// Workers bounds the per-column worker pool; <= 1 runs sequentially.
	// Parallelism never changes any computed value, only wall time.
	Workers int

	// ScatterSizeLo/Hi is the visual point-size interval the emphasis
	// column is rescaled onto.
	ScatterSizeLo  float64
	ScatterSizeHi  float64
	EmphasisColumn string

	Insight insight.Config
}

// DefaultOptions mirrors the documented configuration defaults.
func DefaultOptions() Options {
	return Options{
		HistogramBins:     10,
		DensityPoints:     64,
		OutlierMultiplier: 1.5,
		SampleRows:        5,
		Workers:           0,
		ScatterSizeLo:     20,
		ScatterSizeHi:     200,
		EmphasisColumn:    "vote_average",
		Insight:           insight.DefaultConfig(),
	}
}

// Result is the full artifact set of one pipeline run. Every field is a
// pure function of the dataset and options; nothing here is mutated after
// Run returns.
type Result struct {
	RunID       string
	GeneratedAt time.Time
	Dataset     *dataset.Dataset

	Structure   inspect.Report
	Samples     [][]string // head rows for the report
	Missing     quality.MissingnessReport
	Describe    []quality.Stats
	Outliers    []quality.OutlierSummary
	Histograms  []univariate.Histogram
	LogHists    []univariate.Histogram // log1p view of skewed financial columns
	Densities   []univariate.Density
	Frequencies []univariate.Frequency
	Correlation bivariate.Matrix
	Scatter     *bivariate.Scatter
	Insights    []insight.Finding

	// Notes records statistics skipped because of schema gaps.
	Notes []string
}

// Run executes Loader-downstream stages over an already loaded dataset.
func Run(d *dataset.Dataset, opt Options) (*Result, error) {
	res := &Result{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Dataset:     d,
		Structure:   inspect.Describe(d),
		Missing:     quality.Missingness(d),
	}

	for i := 0; i < d.Rows() && i < opt.SampleRows; i++ {
		res.Samples = append(res.Samples, d.Row(i))
	}
	for _, name := range d.MissingExpected() {
		res.Notes = append(res.Notes, fmt.Sprintf("column %s absent; dependent statistics skipped", name))
	}

	if err := runNumeric(d, opt, res); err != nil {
		return nil, err
	}

	for _, c := range d.CategoricalColumns() {
		res.Frequencies = append(res.Frequencies, univariate.NewFrequency(c))
	}

	res.Correlation = bivariate.Correlations(d)

	sc, err := bivariate.JointSummary(d, opt.Insight.FinancialX, opt.Insight.FinancialY,
		opt.EmphasisColumn, opt.ScatterSizeLo, opt.ScatterSizeHi)
	if err != nil {
		res.Notes = append(res.Notes, fmt.Sprintf("joint summary skipped: %v", err))
	} else {
		res.Scatter = &sc
	}

	res.Insights = insight.Synthesize(insight.Inputs{
		Missing:     res.Missing,
		Describe:    res.Describe,
		Frequencies: res.Frequencies,
		Histograms:  res.Histograms,
		Correlation: res.Correlation,
		Config:      opt.Insight,
	})
	return res, nil
}

// runNumeric computes the per-column numeric artifacts, optionally across a
// bounded worker pool. Results land in index-stable slices so the merged
// order is the column declaration order either way.
func runNumeric(d *dataset.Dataset, opt Options, res *Result) error {
	cols := d.NumericColumns()
	res.Describe = make([]quality.Stats, len(cols))
	res.Outliers = make([]quality.OutlierSummary, len(cols))
	res.Histograms = make([]univariate.Histogram, len(cols))
	densities := make([]*univariate.Density, len(cols))
	logHists := make([]*univariate.Histogram, len(cols))

	work := func(i int) {
		c := cols[i]
		s := quality.DescribeColumn(c)
		res.Describe[i] = s
		res.Outliers[i] = quality.Fence(c, s, opt.OutlierMultiplier)
		res.Histograms[i] = univariate.NewHistogram(c, opt.HistogramBins)
		if den, ok := univariate.NewDensity(c, opt.DensityPoints); ok {
			densities[i] = &den
		}
		if c.Name == opt.Insight.FinancialX || c.Name == opt.Insight.FinancialY {
			lh := univariate.NewLogHistogram(c, opt.HistogramBins)
			logHists[i] = &lh
		}
	}

	if opt.Workers > 1 {
		var g errgroup.Group
		g.SetLimit(opt.Workers)
		for i := range cols {
			i := i
			g.Go(func() error {
				work(i)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return fmt.Errorf("numeric analysis: %w", err)
		}
	} else {
		for i := range cols {
			work(i)
		}
	}

	for _, den := range densities {
		if den != nil {
			res.Densities = append(res.Densities, *den)
		}
	}
	for _, lh := range logHists {
		if lh != nil {
			res.LogHists = append(res.LogHists, *lh)
		}
	}
	return nil
}
