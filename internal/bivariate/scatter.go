package bivariate

import (
	"fmt"

	"github.com/cinestat/cinestat-cli/internal/dataset"
	"github.com/cinestat/cinestat-cli/internal/stats"
)

// Point is one row of a joint feature summary: two plotted values plus the
// emphasis value and its rescaled visual size.
type Point struct {
	Row  int
	X    float64
	Y    float64
	V    float64 // raw emphasis value
	Size float64 // V rescaled onto [SizeLo, SizeHi]
}

// Scatter is the chart-ready joint summary of two numeric columns with a
// third emphasis column driving point size. Only rows where all three
// values are present appear.
type Scatter struct {
	XColumn  string
	YColumn  string
	Emphasis string
	SizeLo   float64
	SizeHi   float64
	Points   []Point
}

// JointSummary builds the scatter data for the named columns, rescaling the
// emphasis column linearly onto [sizeLo, sizeHi].
func JointSummary(d *dataset.Dataset, xName, yName, emphasis string, sizeLo, sizeHi float64) (Scatter, error) {
	xc, ok := d.Column(xName)
	if !ok || xc.Kind != dataset.Numeric {
		return Scatter{}, fmt.Errorf("numeric column %q not present", xName)
	}
	yc, ok := d.Column(yName)
	if !ok || yc.Kind != dataset.Numeric {
		return Scatter{}, fmt.Errorf("numeric column %q not present", yName)
	}
	ec, ok := d.Column(emphasis)
	if !ok || ec.Kind != dataset.Numeric {
		return Scatter{}, fmt.Errorf("numeric column %q not present", emphasis)
	}

	s := Scatter{XColumn: xName, YColumn: yName, Emphasis: emphasis, SizeLo: sizeLo, SizeHi: sizeHi}
	var evals []float64
	for i := 0; i < d.Rows(); i++ {
		x, okx := xc.Float(i)
		y, oky := yc.Float(i)
		v, okv := ec.Float(i)
		if !okx || !oky || !okv {
			continue
		}
		s.Points = append(s.Points, Point{Row: i, X: x, Y: y, V: v})
		evals = append(evals, v)
	}
	if len(evals) == 0 {
		return s, nil
	}
	min, max := stats.MinMax(evals)
	for i := range s.Points {
		s.Points[i].Size = stats.Rescale(s.Points[i].V, min, max, sizeLo, sizeHi)
	}
	return s, nil
}
