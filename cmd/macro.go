package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jrueegg/trackfolio/macro"
	"github.com/jrueegg/trackfolio/renderer"
)

// macroCmd displays the sentiment gauge, and optionally edits one indicator
// before displaying it. Edits are persisted back to the indicator file.
type macroCmd struct {
	id        string
	add       bool
	remove    bool
	name      string
	unit      string
	value     float64
	weight    float64
	min, max  float64
	direction string
}

func (*macroCmd) Name() string     { return "macro" }
func (*macroCmd) Synopsis() string { return "display or update the market sentiment gauge" }
func (*macroCmd) Usage() string {
	return `macro [-id <id> [edit flags]]

  Without flags, computes and displays the composite crisis/euphoria gauge.

  With -id, first applies the given edits to that indicator and saves the
  indicator file:
    -add                declare a new indicator (requires -name, -weight, -min, -max, -dir)
    -rm                 remove the indicator
    -value <v>          update the observed value
    -weight <w>         update the blend weight (0-100)
    -min <v> -max <v>   update the normalization range (always together)
    -dir <d>            update the direction (high_is_crisis|low_is_crisis)
`
}

func (c *macroCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "indicator to edit")
	f.BoolVar(&c.add, "add", false, "declare a new indicator")
	f.BoolVar(&c.remove, "rm", false, "remove the indicator")
	f.StringVar(&c.name, "name", "", "display name for a new indicator")
	f.StringVar(&c.unit, "unit", "", "unit for a new indicator")
	f.Float64Var(&c.value, "value", 0, "observed value")
	f.Float64Var(&c.weight, "weight", 0, "blend weight (0-100)")
	f.Float64Var(&c.min, "min", 0, "lower bound of the normalization range")
	f.Float64Var(&c.max, "max", 0, "upper bound of the normalization range")
	f.StringVar(&c.direction, "dir", "", "crisis direction")
}

func (c *macroCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	set, err := DecodeMacroFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading indicators: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.id != "" {
		passed := make(map[string]bool)
		f.Visit(func(fl *flag.Flag) { passed[fl.Name] = true })

		set, err = c.apply(set, passed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error updating indicator %q: %v\n", c.id, err)
			return subcommands.ExitUsageError
		}
		if err := EncodeMacroFile(set); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving indicators: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.Macro(macro.ComputeIndex(set)))
	return subcommands.ExitSuccess
}

// apply performs the edits selected by the passed flags, in a fixed order.
func (c *macroCmd) apply(set macro.Set, passed map[string]bool) (macro.Set, error) {
	var err error
	if c.remove {
		return set.Remove(c.id)
	}
	if c.add {
		return set.Add(macro.Indicator{
			ID:        c.id,
			Name:      c.name,
			Unit:      c.unit,
			Value:     c.value,
			Min:       c.min,
			Max:       c.max,
			Weight:    c.weight,
			Direction: macro.Direction(c.direction),
		})
	}
	if passed["value"] {
		if set, err = set.SetValue(c.id, c.value); err != nil {
			return nil, err
		}
	}
	if passed["weight"] {
		if set, err = set.SetWeight(c.id, c.weight); err != nil {
			return nil, err
		}
	}
	if passed["min"] || passed["max"] {
		if !passed["min"] || !passed["max"] {
			return nil, fmt.Errorf("-min and -max must be given together")
		}
		if set, err = set.SetRange(c.id, c.min, c.max); err != nil {
			return nil, err
		}
	}
	if passed["dir"] {
		if set, err = set.SetDirection(c.id, macro.Direction(c.direction)); err != nil {
			return nil, err
		}
	}
	return set, nil
}
