package quality

import (
	"math"
	"sort"

	"github.com/cinestat/cinestat-cli/internal/dataset"
	"github.com/cinestat/cinestat-cli/internal/stats"
)

// Stats holds the descriptive statistics of one numeric column over its
// non-missing values. Fields are NaN when the computation is undefined
// (no values for everything, fewer than two values for Std).
type Stats struct {
	Name   string
	N      int
	Min    float64
	Max    float64
	Mean   float64
	Std    float64
	Q1     float64
	Median float64
	Q3     float64
}

// Describe computes descriptive statistics for every numeric column, in
// declaration order.
func Describe(d *dataset.Dataset) []Stats {
	var out []Stats
	for _, c := range d.NumericColumns() {
		out = append(out, DescribeColumn(c))
	}
	return out
}

// DescribeColumn computes the statistics of a single numeric column.
func DescribeColumn(c *dataset.Column) Stats {
	vals := c.Floats()
	s := Stats{Name: c.Name, N: len(vals)}
	if len(vals) == 0 {
		nan := math.NaN()
		s.Min, s.Max, s.Mean, s.Std = nan, nan, nan, nan
		s.Q1, s.Median, s.Q3 = nan, nan, nan
		return s
	}
	s.Min, s.Max = stats.MinMax(vals)
	s.Mean = stats.Mean(vals)
	s.Std = stats.StdDev(vals)
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	s.Q1 = stats.QuantileSorted(sorted, 0.25)
	s.Median = stats.QuantileSorted(sorted, 0.5)
	s.Q3 = stats.QuantileSorted(sorted, 0.75)
	return s
}
