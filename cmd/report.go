package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jrueegg/trackfolio"
	"github.com/jrueegg/trackfolio/renderer"
)

type holdingCmd struct {
	date string
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display current positions and allocation gaps" }
func (*holdingCmd) Usage() string {
	return `holding [-d <date>]

  Displays every open position valued in the reporting currency, with its
  current share of the portfolio against the allocation target.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "valuation date (YYYY-MM-DD), defaults to today")
}

func (c *holdingCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid date: %v\n", err)
		return subcommands.ExitUsageError
	}
	ledger, market, status := loadBooks()
	if status != subcommands.ExitSuccess {
		return status
	}

	state := trackfolio.NewSnapshot(ledger, market, *currency, on).State()
	printMarkdown(renderer.Holding(state))
	return subcommands.ExitSuccess
}

type historyCmd struct {
	date   string
	months int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the monthly performance history" }
func (*historyCmd) Usage() string {
	return `history [-d <date>] [-n <months>]

  Reconstructs the portfolio value at each month end and displays monthly
  and cumulative returns, plus the allocation breakdowns over time.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "end date (YYYY-MM-DD), defaults to today")
	f.IntVar(&c.months, "n", 120, "maximum number of monthly points")
}

func (c *historyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid date: %v\n", err)
		return subcommands.ExitUsageError
	}
	ledger, market, status := loadBooks()
	if status != subcommands.ExitSuccess {
		return status
	}

	report := trackfolio.NewPerformanceReport(ledger, market, *currency, on, c.months)
	printMarkdown(renderer.History(report))
	return subcommands.ExitSuccess
}

type analyticsCmd struct {
	date   string
	months int
}

func (*analyticsCmd) Name() string     { return "analytics" }
func (*analyticsCmd) Synopsis() string { return "display risk and return statistics" }
func (*analyticsCmd) Usage() string {
	return `analytics [-d <date>] [-n <months>]

  Computes annualized return, volatility, Sharpe ratio, drawdowns and
  calendar-year returns over the monthly performance history.
`
}

func (c *analyticsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "end date (YYYY-MM-DD), defaults to today")
	f.IntVar(&c.months, "n", 120, "maximum number of monthly points")
}

func (c *analyticsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid date: %v\n", err)
		return subcommands.ExitUsageError
	}
	ledger, market, status := loadBooks()
	if status != subcommands.ExitSuccess {
		return status
	}

	history := trackfolio.NewPerformanceReport(ledger, market, *currency, on, c.months)
	printMarkdown(renderer.Analytics(trackfolio.NewAnalyticsReport(history)))
	return subcommands.ExitSuccess
}

// loadBooks loads the ledger and the market data, printing errors itself.
func loadBooks() (*trackfolio.Ledger, *trackfolio.Market, subcommands.ExitStatus) {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return nil, nil, subcommands.ExitFailure
	}
	market, err := DecodeMarketFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market data: %v\n", err)
		return nil, nil, subcommands.ExitFailure
	}
	return ledger, market, subcommands.ExitSuccess
}
