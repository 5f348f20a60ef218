package renderer

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/jrueegg/trackfolio"
	"github.com/jrueegg/trackfolio/date"
	md "github.com/nao1215/markdown"
)

// History renders the reconstructed performance series to markdown.
func History(report *trackfolio.PerformanceReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Performance history (%s)", report.Currency))

	table := md.TableSet{
		Alignment: numericTable(5),
		Header:    []string{"Date", "Value", "Invested", "Monthly", "Cumulative"},
		Rows:      [][]string{},
	}
	for _, p := range report.Points {
		table.Rows = append(table.Rows, []string{
			p.Date.String(),
			p.Value.String(),
			p.Invested.String(),
			p.MonthlyReturnPct.SignedString(),
			p.CumulativeReturnPct.SignedString(),
		})
	}
	doc.Table(table)

	byAssetType := make(map[string]*date.History[float64], len(report.ByAssetType))
	for k, h := range report.ByAssetType {
		byAssetType[string(k)] = h
	}
	writeAllocations(doc, "Allocation by asset type", byAssetType)
	writeAllocations(doc, "Allocation by currency", report.ByCurrency)

	return doc.String()
}

// writeAllocations prints the latest share of every group. The full series
// stays available to programmatic consumers; the report only needs the
// current picture.
func writeAllocations(doc *md.Markdown, heading string, groups map[string]*date.History[float64]) {
	if len(groups) == 0 {
		return
	}
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	doc.H2(heading)
	table := md.TableSet{
		Alignment: numericTable(2),
		Header:    []string{"Group", "Share"},
		Rows:      [][]string{},
	}
	for _, key := range keys {
		_, pct := groups[key].Latest()
		table.Rows = append(table.Rows, []string{key, fmt.Sprintf("%.2f%%", pct)})
	}
	doc.Table(table)
}
