// Package renderer turns the engine's plain report structures into markdown
// strings. It is a read-only consumer of the computed data: nothing here
// recalculates, rounds differently, or reaches back into the ledger.
package renderer

import md "github.com/nao1215/markdown"

// numericTable returns the alignment of a report table: a left-aligned label
// column followed by right-aligned numeric columns.
func numericTable(columns int) []md.TableAlignment {
	alignment := make([]md.TableAlignment, columns)
	alignment[0] = md.AlignLeft
	for i := 1; i < columns; i++ {
		alignment[i] = md.AlignRight
	}
	return alignment
}
