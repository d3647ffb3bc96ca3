package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Expected analytical columns. When one is absent the dataset records the
// gap and downstream stages skip the statistics that depend on it.
var (
	expectedNumeric     = []string{"budget", "revenue", "runtime", "vote_average"}
	expectedCategorical = []string{"genre"}
)

// Kinds fixed by the movie schema. Columns outside this map are inferred
// from their values.
var schemaKinds = map[string]Kind{
	"title":        Categorical,
	"release_date": Date,
	"budget":       Numeric,
	"revenue":      Numeric,
	"runtime":      Numeric,
	"vote_average": Numeric,
	"genre":        Categorical,
	"director":     Categorical,
	"is_english":   Boolean,
}

// Acquire loads the dataset at path. A missing or unparsable source is not
// fatal: a diagnostic goes to stderr and the built-in sample is returned
// instead. The bool reports whether the fallback was used.
func Acquire(path string) (*Dataset, bool) {
	d, err := Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: %v; using built-in sample dataset\n", err)
		return Sample(), true
	}
	return d, false
}

// Load parses the CSV at path into a Dataset. Unlike Acquire it surfaces
// parse failures to the caller.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	names := make([]string, len(header))
	seen := map[string]bool{}
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			return nil, fmt.Errorf("column %d has an empty name", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate column name %q", name)
		}
		seen[name] = true
		names[i] = name
	}

	cells := make([][]string, len(names))
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row: %w", err)
		}
		for j := range names {
			v := ""
			if j < len(rec) {
				v = strings.TrimSpace(rec[j])
			}
			cells[j] = append(cells[j], v)
		}
	}

	cols := make([]*Column, len(names))
	for j, name := range names {
		kind, ok := schemaKinds[name]
		if !ok {
			kind = inferKind(cells[j])
		}
		cols[j] = newColumn(name, kind, cells[j])
	}
	d := build(filepath.Base(path), cols)
	return d, nil
}

func build(source string, cols []*Column) *Dataset {
	d := &Dataset{Source: source, cols: cols, byName: make(map[string]int, len(cols))}
	for i, c := range cols {
		d.byName[c.Name] = i
	}
	for _, name := range expectedNumeric {
		if c, ok := d.Column(name); !ok || c.Kind != Numeric {
			d.missingExpected = append(d.missingExpected, name)
		}
	}
	for _, name := range expectedCategorical {
		if c, ok := d.Column(name); !ok || c.Kind != Categorical {
			d.missingExpected = append(d.missingExpected, name)
		}
	}
	return d
}

func newColumn(name string, kind Kind, cells []string) *Column {
	c := &Column{Name: name, Kind: kind, cells: cells}
	if kind == Numeric {
		c.nums = make([]float64, len(cells))
		for i, v := range cells {
			x, err := strconv.ParseFloat(v, 64)
			if v == "" || err != nil {
				c.nums[i] = math.NaN()
				continue
			}
			c.nums[i] = x
		}
	}
	return c
}

// inferKind classifies a column outside the fixed schema by its predominant
// parse among the present cells.
func inferKind(cells []string) Kind {
	var num, dt, bl, present int
	for _, v := range cells {
		if v == "" {
			continue
		}
		present++
		if _, err := strconv.ParseFloat(v, 64); err == nil {
			num++
			continue
		}
		if _, err := strconv.ParseBool(v); err == nil {
			bl++
			continue
		}
		if parseDateMaybe(v) {
			dt++
		}
	}
	if present == 0 {
		return Categorical
	}
	switch {
	case num*2 > present:
		return Numeric
	case bl*2 > present:
		return Boolean
	case dt*2 > present:
		return Date
	default:
		return Categorical
	}
}

func parseDateMaybe(s string) bool {
	layouts := []string{"2006-01-02", "2006/01/02", "01/02/2006", time.RFC3339}
	for _, l := range layouts {
		if _, err := time.Parse(l, s); err == nil {
			return true
		}
	}
	return false
}
