// Package dataset defines the immutable tabular model every analysis stage
// reads, and the loader that produces it from a CSV source.
package dataset

import "math"

// Kind is the semantic type of a column.
type Kind string

const (
	Numeric     Kind = "numeric"
	Categorical Kind = "categorical"
	Date        Kind = "date"
	Boolean     Kind = "boolean"
)

// Column is an ordered sequence of cells with a declared kind. Cells are kept
// as raw strings; numeric columns additionally carry a parsed float view
// aligned index-for-index ("" and unparsable cells are NaN there).
type Column struct {
	Name string
	Kind Kind

	cells []string
	nums  []float64 // numeric columns only, NaN = missing
}

// Len returns the number of rows in the column.
func (c *Column) Len() int { return len(c.cells) }

// IsMissing reports whether row i holds the missing marker.
func (c *Column) IsMissing(i int) bool {
	if c.cells[i] == "" {
		return true
	}
	if c.Kind == Numeric {
		return math.IsNaN(c.nums[i])
	}
	return false
}

// MissingCount counts missing cells.
func (c *Column) MissingCount() int {
	n := 0
	for i := range c.cells {
		if c.IsMissing(i) {
			n++
		}
	}
	return n
}

// Value returns the raw cell at row i ("" when missing).
func (c *Column) Value(i int) string { return c.cells[i] }

// Float returns the parsed numeric value at row i and whether it is present.
// Always (0, false) for non-numeric columns.
func (c *Column) Float(i int) (float64, bool) {
	if c.Kind != Numeric || math.IsNaN(c.nums[i]) {
		return 0, false
	}
	return c.nums[i], true
}

// Floats returns the present numeric values in row order.
func (c *Column) Floats() []float64 {
	if c.Kind != Numeric {
		return nil
	}
	out := make([]float64, 0, len(c.nums))
	for _, v := range c.nums {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// FloatsIndexed returns the present numeric values together with their
// dataset row indices.
func (c *Column) FloatsIndexed() (vals []float64, rows []int) {
	if c.Kind != Numeric {
		return nil, nil
	}
	for i, v := range c.nums {
		if !math.IsNaN(v) {
			vals = append(vals, v)
			rows = append(rows, i)
		}
	}
	return vals, rows
}

// Dataset is a named, ordered collection of equal-length columns. It is
// created once by the loader and never mutated afterwards.
type Dataset struct {
	Source string // file base name, or "sample" for the built-in fallback

	cols   []*Column
	byName map[string]int

	// Expected analytical columns absent from the source; downstream stages
	// skip the statistics that depend on them.
	missingExpected []string
}

// Rows returns the row count (0 for an empty dataset).
func (d *Dataset) Rows() int {
	if len(d.cols) == 0 {
		return 0
	}
	return d.cols[0].Len()
}

// Columns returns the columns in declaration order.
func (d *Dataset) Columns() []*Column { return d.cols }

// Column looks a column up by name.
func (d *Dataset) Column(name string) (*Column, bool) {
	i, ok := d.byName[name]
	if !ok {
		return nil, false
	}
	return d.cols[i], true
}

// NumericColumns returns the numeric columns in declaration order.
func (d *Dataset) NumericColumns() []*Column {
	var out []*Column
	for _, c := range d.cols {
		if c.Kind == Numeric {
			out = append(out, c)
		}
	}
	return out
}

// CategoricalColumns returns the categorical columns in declaration order.
func (d *Dataset) CategoricalColumns() []*Column {
	var out []*Column
	for _, c := range d.cols {
		if c.Kind == Categorical {
			out = append(out, c)
		}
	}
	return out
}

// MissingExpected lists expected analytical columns the source did not carry.
func (d *Dataset) MissingExpected() []string { return d.missingExpected }

// Row returns the raw cells of row i across all columns, in column order.
func (d *Dataset) Row(i int) []string {
	out := make([]string, len(d.cols))
	for j, c := range d.cols {
		out[j] = c.Value(i)
	}
	return out
}
