// Package bivariate computes pairwise relationships between numeric
// columns: the Pearson correlation matrix and joint feature summaries for
// scatter rendering.
package bivariate

import (
	"math"

	"github.com/cinestat/cinestat-cli/internal/dataset"
)

// Matrix is a symmetric Pearson correlation matrix over the numeric
// columns. Undefined entries (fewer than two jointly present rows, or zero
// variance on either side) are NaN. The diagonal is 1 by definition.
type Matrix struct {
	Columns []string
	R       [][]float64
}

// Correlations computes the pairwise-complete correlation matrix for every
// numeric column of the dataset, in declaration order.
func Correlations(d *dataset.Dataset) Matrix {
	cols := d.NumericColumns()
	n := len(cols)
	m := Matrix{Columns: make([]string, n), R: make([][]float64, n)}
	for i, c := range cols {
		m.Columns[i] = c.Name
		m.R[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		m.R[i][i] = 1
		for j := i + 1; j < n; j++ {
			r := pearson(cols[i], cols[j])
			m.R[i][j] = r
			m.R[j][i] = r
		}
	}
	return m
}

// Entry returns the coefficient for the named column pair, or NaN when
// either column is not in the matrix.
func (m Matrix) Entry(a, b string) float64 {
	ia, ib := -1, -1
	for i, name := range m.Columns {
		if name == a {
			ia = i
		}
		if name == b {
			ib = i
		}
	}
	if ia < 0 || ib < 0 {
		return math.NaN()
	}
	return m.R[ia][ib]
}

// pearson computes the product-moment coefficient over rows where both
// columns are present.
func pearson(a, b *dataset.Column) float64 {
	n := a.Len()
	var cnt float64
	var sumX, sumY, sumXX, sumYY, sumXY float64
	for i := 0; i < n; i++ {
		x, okx := a.Float(i)
		y, oky := b.Float(i)
		if !okx || !oky {
			continue
		}
		cnt++
		sumX += x
		sumY += y
		sumXX += x * x
		sumYY += y * y
		sumXY += x * y
	}
	if cnt < 2 {
		return math.NaN()
	}
	denom := math.Sqrt((cnt*sumXX - sumX*sumX) * (cnt*sumYY - sumY*sumY))
	if denom == 0 {
		return math.NaN()
	}
	r := (cnt*sumXY - sumX*sumY) / denom
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r
}
