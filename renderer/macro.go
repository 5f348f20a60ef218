package renderer

import (
	"bytes"
	"fmt"

	"github.com/jrueegg/trackfolio/macro"
	md "github.com/nao1215/markdown"
)

// Macro renders the composite sentiment report to markdown: the
// euphoria-oriented gauge, the phase, and one row per indicator.
func Macro(report macro.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Market sentiment")

	doc.PlainText(fmt.Sprintf("Gauge: %s, phase: %s (index %.3f)",
		md.Bold(fmt.Sprintf("%d / 100", macro.GaugeScore(report.Index))),
		md.Bold(string(report.Phase)),
		report.Index))

	table := md.TableSet{
		Alignment: numericTable(7),
		Header:    []string{"Indicator", "Value", "Range", "Direction", "Weight", "Normalized", "Contribution"},
		Rows:      [][]string{},
	}
	for _, row := range report.Rows {
		table.Rows = append(table.Rows, []string{
			row.Name,
			fmt.Sprintf("%g %s", row.Value, row.Unit),
			fmt.Sprintf("%g..%g", row.Min, row.Max),
			string(row.Direction),
			fmt.Sprintf("%g", row.Weight),
			fmt.Sprintf("%.3f", row.Normalized),
			fmt.Sprintf("%.3f", row.Weighted),
		})
	}
	doc.Table(table)

	return doc.String()
}
