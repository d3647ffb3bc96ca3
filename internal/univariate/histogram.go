// Package univariate computes per-column distributions: equal-width
// histograms and kernel density curves for numeric columns, exact frequency
// tables for categorical columns.
package univariate

import (
	"math"

	"github.com/cinestat/cinestat-cli/internal/dataset"
	"github.com/cinestat/cinestat-cli/internal/stats"
)

// Bin is one histogram bucket. The range is [Low, High) except for the last
// bin, which also includes High so the column maximum is not dropped.
type Bin struct {
	Low   float64
	High  float64
	Count int
}

// Histogram partitions a numeric column's present values into equal-width
// bins over [min, max].
type Histogram struct {
	Column string
	N      int // values binned (non-missing count)
	Bins   []Bin
	// Log1p marks a histogram computed over ln(1+x) of the raw values,
	// used for heavily right-skewed financial columns.
	Log1p bool
}

// NewHistogram bins the present values of c into the given number of
// equal-width bins. A column with min == max produces a single degenerate
// bin holding every value; a column with no present values produces no bins.
func NewHistogram(c *dataset.Column, bins int) Histogram {
	return histogramOf(c.Name, c.Floats(), bins, false)
}

// NewLogHistogram bins ln(1+x) of the present values, skipping values
// below -1 where the transform is undefined.
func NewLogHistogram(c *dataset.Column, bins int) Histogram {
	var vals []float64
	for _, v := range c.Floats() {
		if v > -1 {
			vals = append(vals, math.Log1p(v))
		}
	}
	return histogramOf(c.Name, vals, bins, true)
}

func histogramOf(name string, vals []float64, bins int, log1p bool) Histogram {
	h := Histogram{Column: name, N: len(vals), Log1p: log1p}
	if len(vals) == 0 {
		return h
	}
	min, max := stats.MinMax(vals)
	if min == max {
		h.Bins = []Bin{{Low: min, High: max, Count: len(vals)}}
		return h
	}
	width := (max - min) / float64(bins)
	h.Bins = make([]Bin, bins)
	for i := range h.Bins {
		h.Bins[i].Low = min + float64(i)*width
		h.Bins[i].High = min + float64(i+1)*width
	}
	h.Bins[bins-1].High = max
	for _, v := range vals {
		idx := int((v - min) / width)
		if idx >= bins {
			idx = bins - 1
		}
		h.Bins[idx].Count++
	}
	return h
}

// ModalBin returns the bin with the highest count (first on ties) and
// whether the histogram has any bins at all.
func (h Histogram) ModalBin() (Bin, bool) {
	if len(h.Bins) == 0 {
		return Bin{}, false
	}
	best := h.Bins[0]
	for _, b := range h.Bins[1:] {
		if b.Count > best.Count {
			best = b
		}
	}
	return best, true
}
