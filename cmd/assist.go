package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jrueegg/trackfolio"
	"github.com/jrueegg/trackfolio/advisor"
	"github.com/jrueegg/trackfolio/macro"
	"github.com/jrueegg/trackfolio/renderer"
	"google.golang.org/genai"
)

// assistCmd asks a generative model for a short commentary over the current
// reports. Requires Gemini credentials in the environment.
type assistCmd struct {
	months int
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask the AI for a commentary on the portfolio" }
func (*assistCmd) Usage() string {
	return `assist [-n <months>]

  Computes the holding, history, analytics and macro reports, sends them to
  the model, and displays its commentary. The commentary is informational
  only, nothing is written back.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.months, "n", 24, "months of history to include")
}

func (c *assistCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, market, status := loadBooks()
	if status != subcommands.ExitSuccess {
		return status
	}
	set, err := DecodeMacroFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading indicators: %v\n", err)
		return subcommands.ExitFailure
	}

	on := trackfolio.Today()
	state := trackfolio.NewSnapshot(ledger, market, *currency, on).State()
	history := trackfolio.NewPerformanceReport(ledger, market, *currency, on, c.months)
	stats := trackfolio.NewAnalyticsReport(history)
	gauge := renderer.Macro(macro.ComputeIndex(set))

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	comment, err := advisor.New().Comment(ctx, client,
		renderer.Holding(state),
		renderer.History(history),
		renderer.Analytics(stats),
		gauge,
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Advisor failed:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(comment)
	return subcommands.ExitSuccess
}
