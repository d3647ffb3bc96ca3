package quality

import (
	"github.com/cinestat/cinestat-cli/internal/dataset"
)

// OutlierSummary holds the Tukey fences of one numeric column and the rows
// falling strictly outside them. A zero-variance column has IQR 0, so any
// differing value is flagged.
type OutlierSummary struct {
	Name   string
	IQR    float64
	Lower  float64 // Q1 - k*IQR
	Upper  float64 // Q3 + k*IQR
	Rows   []int   // dataset row indices outside the fences
	Values []float64
}

// Outliers computes fence summaries for every numeric column using the
// given IQR multiplier (conventionally 1.5).
func Outliers(d *dataset.Dataset, multiplier float64) []OutlierSummary {
	describes := Describe(d)
	cols := d.NumericColumns()
	out := make([]OutlierSummary, 0, len(cols))
	for i, c := range cols {
		out = append(out, Fence(c, describes[i], multiplier))
	}
	return out
}

// Fence applies Tukey fencing to one numeric column given its descriptive
// statistics.
func Fence(c *dataset.Column, s Stats, multiplier float64) OutlierSummary {
	iqr := s.Q3 - s.Q1
	sum := OutlierSummary{
		Name:  c.Name,
		IQR:   iqr,
		Lower: s.Q1 - multiplier*iqr,
		Upper: s.Q3 + multiplier*iqr,
	}
	if s.N == 0 {
		return sum
	}
	vals, rows := c.FloatsIndexed()
	for i, v := range vals {
		if v < sum.Lower || v > sum.Upper {
			sum.Rows = append(sum.Rows, rows[i])
			sum.Values = append(sum.Values, v)
		}
	}
	return sum
}
