package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/jrueegg/trackfolio"
)

// importQuotesCmd imports daily closing prices for one security from a JSON
// feed, located by a pair of jsonpath expressions.
type importQuotesCmd struct {
	security  string
	datePath  string
	closePath string
}

func (*importQuotesCmd) Name() string     { return "import-quotes" }
func (*importQuotesCmd) Synopsis() string { return "import closing prices from a JSON feed" }
func (*importQuotesCmd) Usage() string {
	return `import-quotes -s <ticker> [-date-path <jsonpath>] [-close-path <jsonpath>] [file]

  Reads a JSON document from the file (or stdin) and extracts one quote per
  element: dates from -date-path and closes from -close-path. Defaults
  match the common EOD feed shape $[*].date / $[*].close. Imported prices
  are merged into the market data file, later imports overwrite same-day
  prices.
`
}

func (c *importQuotesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.security, "s", "", "security ticker to import prices for")
	f.StringVar(&c.datePath, "date-path", trackfolio.EODFeed.DatePath, "jsonpath to the list of dates")
	f.StringVar(&c.closePath, "close-path", trackfolio.EODFeed.ClosePath, "jsonpath to the list of closing prices")
}

func (c *importQuotesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.security == "" {
		fmt.Fprintln(os.Stderr, "-s is required")
		return subcommands.ExitUsageError
	}

	var in io.Reader = os.Stdin
	if f.NArg() > 0 {
		file, err := os.Open(f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening feed: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		in = file
	}

	feed := trackfolio.QuoteFeed{DatePath: c.datePath, ClosePath: c.closePath}
	quotes, err := trackfolio.DecodeQuotes(in, feed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error extracting quotes: %v\n", err)
		return subcommands.ExitFailure
	}

	market, err := DecodeMarketFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market data: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := trackfolio.ImportQuotes(market, c.security, quotes); err != nil {
		fmt.Fprintf(os.Stderr, "Error importing quotes: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeMarketFile(market); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving market data: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d quotes for %s into %s\n", len(quotes), c.security, *marketFile)
	return subcommands.ExitSuccess
}
