package renderer

import (
	"bytes"
	"fmt"

	"github.com/jrueegg/trackfolio"
	md "github.com/nao1215/markdown"
)

// Holding renders a PortfolioState to markdown: one row per live position
// with its allocation against the configured target, then the totals.
func Holding(state *trackfolio.PortfolioState) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio on %s", state.On))

	table := md.TableSet{
		Alignment: numericTable(6),
		Header:    []string{"Security", "Quantity", "Value", "Current", "Target", "Gap"},
		Rows:      [][]string{},
	}
	for _, pos := range state.Positions {
		value := pos.Value.String()
		if !pos.Priced {
			value = "no price" // distinguishes "no data" from "worthless"
		}
		gap := pos.CurrentPct - pos.TargetPct
		table.Rows = append(table.Rows, []string{
			pos.Security.Ticker(),
			pos.Quantity.String(),
			value,
			pos.CurrentPct.String(),
			pos.TargetPct.String(),
			gap.SignedString(),
		})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Total value: %s", state.TotalValue))
	doc.PlainText(fmt.Sprintf("Invested: %s", state.Invested))
	doc.PlainText(fmt.Sprintf("Balance: %s (%s)", state.Balance.SignedString(), state.BalancePct.SignedString()))

	return doc.String()
}
