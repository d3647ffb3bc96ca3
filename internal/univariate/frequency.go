package univariate

import (
	"sort"

	"github.com/cinestat/cinestat-cli/internal/dataset"
)

// CategoryCount is one distinct value and its occurrence count.
type CategoryCount struct {
	Value string
	Count int
}

// Frequency is the exact frequency table of a categorical column, ordered
// by count descending, ties broken by first-seen order.
type Frequency struct {
	Column string
	N      int // present values counted
	Counts []CategoryCount
}

// NewFrequency counts the distinct present values of a categorical column.
func NewFrequency(c *dataset.Column) Frequency {
	f := Frequency{Column: c.Name}
	counts := map[string]int{}
	var order []string
	for i := 0; i < c.Len(); i++ {
		if c.IsMissing(i) {
			continue
		}
		v := c.Value(i)
		if _, ok := counts[v]; !ok {
			order = append(order, v)
		}
		counts[v]++
		f.N++
	}
	for _, v := range order {
		f.Counts = append(f.Counts, CategoryCount{Value: v, Count: counts[v]})
	}
	sort.SliceStable(f.Counts, func(i, j int) bool {
		return f.Counts[i].Count > f.Counts[j].Count
	})
	return f
}

// Top returns at most n leading categories.
func (f Frequency) Top(n int) []CategoryCount {
	if n >= len(f.Counts) {
		return f.Counts
	}
	return f.Counts[:n]
}
