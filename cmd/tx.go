package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jrueegg/trackfolio"
)

// txFlags holds the flags shared by the buy and sell commands.
type txFlags struct {
	date     string
	security string
	quantity float64
	price    float64
	currency string
	memo     string
}

func (c *txFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "transaction date (YYYY-MM-DD), defaults to today")
	f.StringVar(&c.security, "s", "", "security ticker")
	f.Float64Var(&c.quantity, "q", 0, "number of units")
	f.Float64Var(&c.price, "p", 0, "price per unit")
	f.StringVar(&c.currency, "c", "", "transaction currency, defaults to the security's")
	f.StringVar(&c.memo, "m", "", "free-form note")
}

// resolve fills the defaults that need the market data (currency) and
// parses the date flag.
func (c *txFlags) resolve() (trackfolio.Date, string, error) {
	on, err := parseDateFlag(c.date)
	if err != nil {
		return trackfolio.Date{}, "", err
	}
	cur := c.currency
	if cur == "" {
		market, err := DecodeMarketFile()
		if err != nil {
			return trackfolio.Date{}, "", err
		}
		sec := market.Get(c.security)
		if sec == nil {
			return trackfolio.Date{}, "", fmt.Errorf("unknown security %q, declare it in the market data first", c.security)
		}
		cur = sec.Currency()
	}
	return on, cur, nil
}

type buyCmd struct{ txFlags }

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase in the ledger" }
func (*buyCmd) Usage() string {
	return `buy -s <ticker> -q <quantity> -p <price> [-d <date>] [-c <currency>] [-m <memo>]

  Appends a buy transaction to the ledger. The cash amount is quantity
  times price, in the transaction currency.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *buyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, cur, err := c.resolve()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	return AppendTransaction(trackfolio.NewBuy(on, c.memo, c.security, c.quantity, c.price, cur))
}

type sellCmd struct{ txFlags }

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale in the ledger" }
func (*sellCmd) Usage() string {
	return `sell -s <ticker> -q <quantity> -p <price> [-d <date>] [-c <currency>] [-m <memo>]

  Appends a sell transaction to the ledger. Selling more than the current
  position is accepted and recorded as is.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *sellCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, cur, err := c.resolve()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	return AppendTransaction(trackfolio.NewSell(on, c.memo, c.security, c.quantity, c.price, cur))
}
