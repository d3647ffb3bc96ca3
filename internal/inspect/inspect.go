// Package inspect reports the shape and per-column structure of a dataset.
package inspect

import "github.com/cinestat/cinestat-cli/internal/dataset"

// ColumnInfo describes one column's declared kind and non-null count.
type ColumnInfo struct {
	Name    string
	Kind    dataset.Kind
	NonNull int
}

// Report is the structural summary of a dataset.
type Report struct {
	Rows    int
	Columns int
	Info    []ColumnInfo
}

// Describe is a pure read of the dataset; an empty dataset yields an empty
// report, not an error.
func Describe(d *dataset.Dataset) Report {
	cols := d.Columns()
	rep := Report{Rows: d.Rows(), Columns: len(cols)}
	for _, c := range cols {
		rep.Info = append(rep.Info, ColumnInfo{
			Name:    c.Name,
			Kind:    c.Kind,
			NonNull: c.Len() - c.MissingCount(),
		})
	}
	return rep
}
