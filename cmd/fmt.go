package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jrueegg/trackfolio"
)

// fmtCmd rewrites the data files in canonical form: ledger sorted by date,
// market data with declarations first and chronological price rows.
type fmtCmd struct{}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "rewrite the data files in canonical form" }
func (*fmtCmd) Usage() string {
	return `fmt

  Rewrites the ledger sorted by date and the market data with security
  declarations first followed by chronological price rows.
`
}

func (*fmtCmd) SetFlags(_ *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, market, status := loadBooks()
	if status != subcommands.ExitSuccess {
		return status
	}

	// Encode fully in memory before touching any file.
	var buf bytes.Buffer
	if err := trackfolio.EncodeLedger(&buf, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(*ledgerFile, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	buf.Reset()
	if err := trackfolio.EncodeMarket(&buf, market); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding market data: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(*marketFile, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", *marketFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Formatted %s and %s\n", *ledgerFile, *marketFile)
	return subcommands.ExitSuccess
}
