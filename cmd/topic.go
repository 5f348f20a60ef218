package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/jrueegg/trackfolio/docs"
)

// topicCmd prints the built-in documentation.
type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "display built-in documentation" }
func (*topicCmd) Usage() string {
	return `topic [<name>|*]

  Without an argument, lists the available topics. With a name, displays
  that topic; "*" displays all of them.
`
}

func (*topicCmd) SetFlags(_ *flag.FlagSet) {}

func (*topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		content, err := docs.GetTopic("readme")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading documentation: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(content)
		return subcommands.ExitSuccess
	}

	name := f.Arg(0)
	if name == "*" {
		topics, err := docs.GetAllTopics()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading documentation: %v\n", err)
			return subcommands.ExitFailure
		}
		var parts []string
		for _, topic := range topics {
			content, err := docs.GetTopic(topic)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error loading topic %q: %v\n", topic, err)
				return subcommands.ExitFailure
			}
			parts = append(parts, content)
		}
		printMarkdown(strings.Join(parts, "\n\n"))
		return subcommands.ExitSuccess
	}

	content, err := docs.GetTopic(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unknown topic %q, run 'tfl topic' for the list\n", name)
		return subcommands.ExitUsageError
	}
	printMarkdown(content)
	return subcommands.ExitSuccess
}
