package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jrueegg/trackfolio"
	md "github.com/nao1215/markdown"
)

// Analytics renders the risk statistics to markdown.
func Analytics(report *trackfolio.AnalyticsReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Risk statistics")

	doc.Table(md.TableSet{
		Alignment: numericTable(2),
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Annualized return (CAGR)", report.AnnualizedReturn.SignedString()},
			{"Volatility (annualized)", report.StdDev.String()},
			{"Sharpe ratio", fmt.Sprintf("%.2f", report.Sharpe)},
			{"Max drawdown", report.MaxDrawdown.String()},
		},
	})

	if len(report.AnnualReturns) > 0 {
		doc.H2("Annual returns")
		table := md.TableSet{
			Alignment: numericTable(2),
			Header:    []string{"Year", "Return"},
			Rows:      [][]string{},
		}
		for _, ar := range report.AnnualReturns {
			table.Rows = append(table.Rows, []string{strconv.Itoa(ar.Year), ar.ReturnPct.SignedString()})
		}
		doc.Table(table)
	}

	if len(report.Drawdowns) > 0 {
		doc.H2("Drawdowns")
		table := md.TableSet{
			Alignment: numericTable(2),
			Header:    []string{"Date", "Depth"},
			Rows:      [][]string{},
		}
		for _, d := range report.Drawdowns {
			table.Rows = append(table.Rows, []string{d.Date.String(), d.Depth.String()})
		}
		doc.Table(table)
	}

	return doc.String()
}
