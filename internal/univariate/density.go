package univariate

import (
	"math"

	"github.com/cinestat/cinestat-cli/internal/dataset"
	"github.com/cinestat/cinestat-cli/internal/stats"
)

// Density is a Gaussian-kernel density estimate sampled at fixed points
// across a column's value range. Y integrates to roughly 1 over [min, max].
type Density struct {
	Column string
	X      []float64
	Y      []float64
}

// NewDensity estimates the density of a numeric column's present values,
// sampled at points locations. Returns ok=false when the estimate is
// undefined: fewer than two values, zero variance, or points < 2.
func NewDensity(c *dataset.Column, points int) (Density, bool) {
	vals := c.Floats()
	if len(vals) < 2 || points < 2 {
		return Density{}, false
	}
	std := stats.StdDev(vals)
	if std == 0 || math.IsNaN(std) {
		return Density{}, false
	}
	// Silverman's rule of thumb.
	h := 1.06 * std * math.Pow(float64(len(vals)), -0.2)

	min, max := stats.MinMax(vals)
	d := Density{Column: c.Name, X: make([]float64, points), Y: make([]float64, points)}
	step := (max - min) / float64(points-1)
	norm := 1 / (float64(len(vals)) * h * math.Sqrt(2*math.Pi))
	for i := 0; i < points; i++ {
		x := min + float64(i)*step
		var sum float64
		for _, v := range vals {
			z := (x - v) / h
			sum += math.Exp(-0.5 * z * z)
		}
		d.X[i] = x
		d.Y[i] = norm * sum
	}
	return d, true
}
