// Package report renders a pipeline Result as the textual report bundle.
package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cinestat/cinestat-cli/internal/pipeline"
)

// Render produces the full textual report: shape, schema, head rows,
// missingness, descriptive statistics, outliers, categorical frequencies,
// and ranked insights.
func Render(res *pipeline.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Dataset: %s\n", res.Dataset.Source)
	fmt.Fprintf(&b, "Run: %s (%s)\n", res.RunID, res.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "Shape: %d rows × %d columns\n", res.Structure.Rows, res.Structure.Columns)

	writeSection(&b, "Schema", schemaTable(res))
	writeSection(&b, "Head", headTable(res))
	writeSection(&b, "Missing values", missingTable(res))
	writeSection(&b, "Descriptive statistics", describeTable(res))
	writeSection(&b, "Outliers (Tukey fences)", outlierTable(res))
	writeSection(&b, "Top categories", categoryTable(res))

	if len(res.Insights) > 0 {
		b.WriteString("\nInsights\n")
		for i, f := range res.Insights {
			fmt.Fprintf(&b, "%d. %s [%s]\n", i+1, f.Text, f.Rule)
		}
	}
	if len(res.Notes) > 0 {
		b.WriteString("\nNotes\n")
		for _, n := range res.Notes {
			fmt.Fprintf(&b, "- %s\n", n)
		}
	}
	return b.String()
}

func writeSection(b *strings.Builder, title, body string) {
	if body == "" {
		return
	}
	b.WriteString("\n")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
}

func schemaTable(res *pipeline.Result) string {
	rows := make([][]string, 0, len(res.Structure.Info))
	for _, ci := range res.Structure.Info {
		rows = append(rows, []string{ci.Name, string(ci.Kind), strconv.Itoa(ci.NonNull)})
	}
	if len(rows) == 0 {
		return ""
	}
	return renderTable(
		[]string{"Column", "Kind", "Non-null"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight},
	)
}

func headTable(res *pipeline.Result) string {
	if len(res.Samples) == 0 {
		return ""
	}
	headers := make([]string, 0, len(res.Structure.Info))
	aligns := make([]columnAlignment, 0, len(res.Structure.Info))
	for _, ci := range res.Structure.Info {
		headers = append(headers, ci.Name)
		aligns = append(aligns, alignLeft)
	}
	return renderTable(headers, res.Samples, aligns)
}

func missingTable(res *pipeline.Result) string {
	rows := make([][]string, 0, len(res.Missing))
	for _, cm := range res.Missing {
		rows = append(rows, []string{cm.Name, strconv.Itoa(cm.Count), fmt.Sprintf("%.1f%%", cm.Percent)})
	}
	if len(rows) == 0 {
		return ""
	}
	return renderTable(
		[]string{"Column", "Missing", "Percent"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight},
	)
}

func describeTable(res *pipeline.Result) string {
	rows := make([][]string, 0, len(res.Describe))
	for _, s := range res.Describe {
		rows = append(rows, []string{
			s.Name, strconv.Itoa(s.N),
			num(s.Min), num(s.Max), num(s.Mean), num(s.Std),
			num(s.Q1), num(s.Median), num(s.Q3),
		})
	}
	if len(rows) == 0 {
		return ""
	}
	aligns := []columnAlignment{alignLeft}
	for i := 1; i < 9; i++ {
		aligns = append(aligns, alignRight)
	}
	return renderTable(
		[]string{"Column", "N", "Min", "Max", "Mean", "Std", "Q1", "Median", "Q3"},
		rows, aligns,
	)
}

func outlierTable(res *pipeline.Result) string {
	rows := make([][]string, 0, len(res.Outliers))
	for _, o := range res.Outliers {
		idx := "-"
		if len(o.Rows) > 0 {
			parts := make([]string, len(o.Rows))
			for i, r := range o.Rows {
				parts[i] = strconv.Itoa(r)
			}
			idx = strings.Join(parts, ", ")
		}
		rows = append(rows, []string{
			o.Name, num(o.IQR), num(o.Lower), num(o.Upper),
			strconv.Itoa(len(o.Rows)), idx,
		})
	}
	if len(rows) == 0 {
		return ""
	}
	return renderTable(
		[]string{"Column", "IQR", "Lower fence", "Upper fence", "Flagged", "Rows"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignLeft},
	)
}

func categoryTable(res *pipeline.Result) string {
	var rows [][]string
	for _, f := range res.Frequencies {
		for _, cc := range f.Top(5) {
			share := 0.0
			if f.N > 0 {
				share = float64(cc.Count) / float64(f.N) * 100
			}
			rows = append(rows, []string{f.Column, cc.Value, strconv.Itoa(cc.Count), fmt.Sprintf("%.1f%%", share)})
		}
	}
	if len(rows) == 0 {
		return ""
	}
	return renderTable(
		[]string{"Column", "Value", "Count", "Share"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight},
	)
}

// num formats a statistic, rendering undefined values as n/a.
func num(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
