// Package cmd implements the CLI application around the portfolio engine.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/jrueegg/trackfolio"
	"github.com/jrueegg/trackfolio/macro"
)

// Commands lists every subcommand of the application, in display order.
var Commands = []subcommands.Command{
	&holdingCmd{},
	&historyCmd{},
	&analyticsCmd{},
	&macroCmd{},
	&buyCmd{},
	&sellCmd{},
	&fmtCmd{},
	&importQuotesCmd{},
	&topicCmd{},
	&assistCmd{},
}

// Register registers every subcommand on the commander.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// As a CLI application with a very short lifecycle, global flags are fine.

var ledgerFile = flag.String("ledger-file", "transactions.jsonl", "Path to the ledger file (JSONL)")
var marketFile = flag.String("market-file", "market.jsonl", "Path to the market data file (JSONL)")
var macroFile = flag.String("macro-file", "indicators.json", "Path to the macro indicator set (JSON)")
var currency = flag.String("currency", "CHF", "Reporting currency")

// DecodeLedgerFile loads the ledger, returning an empty one when the file
// does not exist yet.
func DecodeLedgerFile() (*trackfolio.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, starting empty")
		return trackfolio.NewLedger(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return trackfolio.DecodeLedger(f)
}

// DecodeMarketFile loads the market data, returning an empty collection when
// the file does not exist yet.
func DecodeMarketFile() (*trackfolio.Market, error) {
	f, err := os.Open(*marketFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, market data file does not exist, starting empty")
		return trackfolio.NewMarket(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return trackfolio.DecodeMarket(f)
}

// EncodeMarketFile writes the market data back in canonical form.
func EncodeMarketFile(market *trackfolio.Market) error {
	f, err := os.Create(*marketFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return trackfolio.EncodeMarket(f, market)
}

// DecodeMacroFile loads the indicator set, returning an empty set when the
// file does not exist yet.
func DecodeMacroFile() (macro.Set, error) {
	f, err := os.Open(*macroFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, indicator file does not exist, starting empty")
		return macro.Set{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return macro.DecodeSet(f)
}

// EncodeMacroFile writes the indicator set back.
func EncodeMacroFile(set macro.Set) error {
	f, err := os.Create(*macroFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return macro.EncodeSet(f, set)
}

// AppendTransaction validates a transaction against the market data and
// appends it to the ledger file.
func AppendTransaction(tx trackfolio.Transaction) subcommands.ExitStatus {
	market, err := DecodeMarketFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market data: %v\n", err)
		return subcommands.ExitFailure
	}
	tx, err = tx.Validate(market)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid transaction: %v\n", err)
		return subcommands.ExitUsageError
	}

	f, err := os.OpenFile(*ledgerFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := trackfolio.EncodeTransaction(f, tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully appended %s to %s\n", tx.What(), *ledgerFile)
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering is not possible.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}

// parseDateFlag parses an optional -d flag, defaulting to today.
func parseDateFlag(str string) (trackfolio.Date, error) {
	if str == "" {
		return trackfolio.Today(), nil
	}
	return trackfolio.ParseDate(str)
}
