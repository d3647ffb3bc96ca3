// Package charts turns a pipeline Result into chart-ready data artifacts
// for an external rendering layer. Artifacts carry values only, never pixel
// or style state; per-run presentation knobs arrive through configuration.
package charts

import (
	"math"
	"strconv"
	"time"

	"github.com/cinestat/cinestat-cli/internal/pipeline"
	"github.com/cinestat/cinestat-cli/internal/univariate"
)

// Float is a statistic value that serializes undefined (NaN) entries as
// null instead of breaking the encoder.
type Float float64

// MarshalJSON renders NaN as null.
func (f Float) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(f)) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(float64(f), 'g', -1, 64)), nil
}

// MarshalYAML renders NaN as null.
func (f Float) MarshalYAML() (interface{}, error) {
	if math.IsNaN(float64(f)) {
		return nil, nil
	}
	return float64(f), nil
}

// BinData is one histogram bucket.
type BinData struct {
	Low   float64 `json:"low" yaml:"low"`
	High  float64 `json:"high" yaml:"high"`
	Count int     `json:"count" yaml:"count"`
}

// DensityData is a sampled density curve.
type DensityData struct {
	X []float64 `json:"x" yaml:"x"`
	Y []float64 `json:"y" yaml:"y"`
}

// HistogramChart is the data behind one distribution plot.
type HistogramChart struct {
	Column  string       `json:"column" yaml:"column"`
	Log1p   bool         `json:"log1p,omitempty" yaml:"log1p,omitempty"`
	N       int          `json:"n" yaml:"n"`
	Bins    []BinData    `json:"bins" yaml:"bins"`
	Density *DensityData `json:"density,omitempty" yaml:"density,omitempty"`
}

// BoxPlotChart is the data behind one box plot: quartiles, fences, whisker
// ends (extremes within the fences), and the flagged outlier values.
type BoxPlotChart struct {
	Column      string    `json:"column" yaml:"column"`
	Q1          Float     `json:"q1" yaml:"q1"`
	Median      Float     `json:"median" yaml:"median"`
	Q3          Float     `json:"q3" yaml:"q3"`
	LowerFence  Float     `json:"lower_fence" yaml:"lower_fence"`
	UpperFence  Float     `json:"upper_fence" yaml:"upper_fence"`
	WhiskerLow  Float     `json:"whisker_low" yaml:"whisker_low"`
	WhiskerHigh Float     `json:"whisker_high" yaml:"whisker_high"`
	Outliers    []float64 `json:"outliers,omitempty" yaml:"outliers,omitempty"`
}

// HeatmapChart is the correlation matrix for a heatmap renderer.
type HeatmapChart struct {
	Columns []string  `json:"columns" yaml:"columns"`
	R       [][]Float `json:"r" yaml:"r"`
}

// ScatterPoint is one joint-summary point with its visual size.
type ScatterPoint struct {
	Row  int     `json:"row" yaml:"row"`
	X    float64 `json:"x" yaml:"x"`
	Y    float64 `json:"y" yaml:"y"`
	V    float64 `json:"v" yaml:"v"`
	Size float64 `json:"size" yaml:"size"`
}

// ScatterChart is the joint feature summary for a scatter renderer.
type ScatterChart struct {
	X        string         `json:"x" yaml:"x"`
	Y        string         `json:"y" yaml:"y"`
	Emphasis string         `json:"emphasis" yaml:"emphasis"`
	SizeLo   float64        `json:"size_lo" yaml:"size_lo"`
	SizeHi   float64        `json:"size_hi" yaml:"size_hi"`
	Points   []ScatterPoint `json:"points" yaml:"points"`
}

// CategoryData is one bar of a frequency chart.
type CategoryData struct {
	Value string `json:"value" yaml:"value"`
	Count int    `json:"count" yaml:"count"`
}

// FrequencyChart is the categorical count data for a bar renderer.
type FrequencyChart struct {
	Column string         `json:"column" yaml:"column"`
	N      int            `json:"n" yaml:"n"`
	Counts []CategoryData `json:"counts" yaml:"counts"`
}

// Set is the complete chart artifact bundle of one run.
type Set struct {
	RunID       string    `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	Histograms  []HistogramChart `json:"histograms" yaml:"histograms"`
	BoxPlots    []BoxPlotChart   `json:"box_plots" yaml:"box_plots"`
	Correlation *HeatmapChart    `json:"correlation,omitempty" yaml:"correlation,omitempty"`
	Scatter     *ScatterChart    `json:"scatter,omitempty" yaml:"scatter,omitempty"`
	Frequencies []FrequencyChart `json:"frequencies" yaml:"frequencies"`
}

// Build derives the chart artifact set from a pipeline result.
func Build(res *pipeline.Result) *Set {
	s := &Set{RunID: res.RunID, GeneratedAt: res.GeneratedAt}

	densities := map[string]*DensityData{}
	for _, d := range res.Densities {
		densities[d.Column] = &DensityData{X: d.X, Y: d.Y}
	}
	for _, h := range res.Histograms {
		s.Histograms = append(s.Histograms, histogramChart(h, densities[h.Column]))
	}
	for _, h := range res.LogHists {
		s.Histograms = append(s.Histograms, histogramChart(h, nil))
	}

	for i, o := range res.Outliers {
		st := res.Describe[i]
		bp := BoxPlotChart{
			Column:     o.Name,
			Q1:         Float(st.Q1),
			Median:     Float(st.Median),
			Q3:         Float(st.Q3),
			LowerFence: Float(o.Lower),
			UpperFence: Float(o.Upper),
			Outliers:   o.Values,
		}
		bp.WhiskerLow, bp.WhiskerHigh = whiskers(res, o.Name, o.Lower, o.Upper)
		s.BoxPlots = append(s.BoxPlots, bp)
	}

	if len(res.Correlation.Columns) > 0 {
		hm := &HeatmapChart{Columns: res.Correlation.Columns}
		for _, row := range res.Correlation.R {
			fr := make([]Float, len(row))
			for j, v := range row {
				fr[j] = Float(v)
			}
			hm.R = append(hm.R, fr)
		}
		s.Correlation = hm
	}

	if res.Scatter != nil {
		sc := &ScatterChart{
			X:        res.Scatter.XColumn,
			Y:        res.Scatter.YColumn,
			Emphasis: res.Scatter.Emphasis,
			SizeLo:   res.Scatter.SizeLo,
			SizeHi:   res.Scatter.SizeHi,
		}
		for _, p := range res.Scatter.Points {
			sc.Points = append(sc.Points, ScatterPoint{Row: p.Row, X: p.X, Y: p.Y, V: p.V, Size: p.Size})
		}
		s.Scatter = sc
	}

	for _, f := range res.Frequencies {
		fc := FrequencyChart{Column: f.Column, N: f.N}
		for _, cc := range f.Counts {
			fc.Counts = append(fc.Counts, CategoryData{Value: cc.Value, Count: cc.Count})
		}
		s.Frequencies = append(s.Frequencies, fc)
	}
	return s
}

func histogramChart(h univariate.Histogram, den *DensityData) HistogramChart {
	hc := HistogramChart{Column: h.Column, Log1p: h.Log1p, N: h.N, Density: den}
	for _, b := range h.Bins {
		hc.Bins = append(hc.Bins, BinData{Low: b.Low, High: b.High, Count: b.Count})
	}
	return hc
}

// whiskers returns the extreme column values still inside the fences.
func whiskers(res *pipeline.Result, column string, lower, upper float64) (Float, Float) {
	c, ok := res.Dataset.Column(column)
	if !ok {
		return Float(math.NaN()), Float(math.NaN())
	}
	lo, hi := math.NaN(), math.NaN()
	for _, v := range c.Floats() {
		if v < lower || v > upper {
			continue
		}
		if math.IsNaN(lo) || v < lo {
			lo = v
		}
		if math.IsNaN(hi) || v > hi {
			hi = v
		}
	}
	return Float(lo), Float(hi)
}
