// Package stats provides the scalar statistics shared by the analysis stages.
// Quantiles interpolate linearly between order statistics (position p*(n-1));
// standard deviation is the sample deviation (÷(n−1)).
package stats

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean of values, or NaN for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev returns the sample standard deviation, or NaN when fewer than
// two values are given.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return math.NaN()
	}
	mean := Mean(values)
	var m2 float64
	for _, v := range values {
		d := v - mean
		m2 += d * d
	}
	return math.Sqrt(m2 / float64(len(values)-1))
}

// MinMax returns the minimum and maximum of values, or (NaN, NaN) for an
// empty slice.
func MinMax(values []float64) (min, max float64) {
	if len(values) == 0 {
		return math.NaN(), math.NaN()
	}
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Quantile returns the q-th quantile (0..1) of values, interpolating between
// adjacent order statistics. Returns NaN for an empty slice. The input is
// not modified.
func Quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	cp := make([]float64, len(values))
	copy(cp, values)
	sort.Float64s(cp)
	return QuantileSorted(cp, q)
}

// QuantileSorted is Quantile over an already ascending-sorted slice.
func QuantileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

// Rescale maps v from [min, max] linearly onto [outLo, outHi]. A degenerate
// input range (min == max) maps to the midpoint of the output range.
func Rescale(v, min, max, outLo, outHi float64) float64 {
	if min == max {
		return (outLo + outHi) / 2
	}
	return outLo + (v-min)/(max-min)*(outHi-outLo)
}
