package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/lindacli/linda/docs"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `linda topic [<topic>...]

  Shows documentation for the given topics. Without arguments, shows the
  readme, which lists the available topics.
`
}

func (*topicCmd) SetFlags(f *flag.FlagSet) {}

func (*topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	var b strings.Builder
	for _, topic := range topics {
		content, err := docs.Get(topic)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
			fmt.Fprintf(os.Stderr, "Available topics: %s\n", strings.Join(docs.All(), ", "))
			return subcommands.ExitFailure
		}
		b.WriteString(content)
		b.WriteString("\n")
	}

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
