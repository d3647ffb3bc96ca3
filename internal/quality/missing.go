// Package quality computes data-quality diagnostics: missingness,
// descriptive statistics, and quartile-fence outlier detection.
package quality

import (
	"sort"

	"github.com/cinestat/cinestat-cli/internal/dataset"
)

// ColumnMissing is one row of the missingness report.
type ColumnMissing struct {
	Name    string
	Count   int
	Percent float64 // Count / rows * 100; 0 when the dataset is empty
}

// MissingnessReport lists every column's missing count, ordered by count
// descending, ties broken by column declaration order.
type MissingnessReport []ColumnMissing

// Missingness computes the missingness report for every column.
func Missingness(d *dataset.Dataset) MissingnessReport {
	n := d.Rows()
	rep := make(MissingnessReport, 0, len(d.Columns()))
	for _, c := range d.Columns() {
		m := c.MissingCount()
		pct := 0.0
		if n > 0 {
			pct = float64(m) / float64(n) * 100
		}
		rep = append(rep, ColumnMissing{Name: c.Name, Count: m, Percent: pct})
	}
	sort.SliceStable(rep, func(i, j int) bool { return rep[i].Count > rep[j].Count })
	return rep
}

// ByColumn returns the report entry for name, if present.
func (r MissingnessReport) ByColumn(name string) (ColumnMissing, bool) {
	for _, cm := range r {
		if cm.Name == name {
			return cm, true
		}
	}
	return ColumnMissing{}, false
}
