package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lindacli/linda"
	"github.com/lindacli/linda/renderer"
)

// defaultText is the historical sample command. Its four fields do not match
// the order shape, so executing it reports a no-operation.
const defaultText = "&100,10,some word,other word"

type execCmd struct {
	text string
}

func (*execCmd) Name() string     { return "exec" }
func (*execCmd) Synopsis() string { return "parse one command line and persist it" }
func (*execCmd) Usage() string {
	return `linda exec [-text <command>] [-f <file>]

  Parses a command line, shows how it was tokenized and classified, and
  persists the resulting record when one is produced. Income is the only
  kind with a producer today; an expense or an unmatched shape is reported
  and nothing is persisted.

Usage Examples:
# Record an income of 10 for groceries.
$ linda exec -text '&10,groceries'

`
}

func (c *execCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.text, "text", defaultText, "Command line to execute.")
}

func (c *execCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cmd, err := linda.Parse(c.text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	classified, err := cmd.Classify()
	if err != nil {
		// a mapped-marker mismatch is a configuration error, fail loudly
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	record, _ := linda.NewRecord(classified)
	printMarkdown(renderer.Command(cmd, classified, record))

	stmt, ok := linda.NewStatement(classified)
	if !ok {
		// classified-but-inert and unmatched shapes are valid outcomes
		fmt.Fprintln(os.Stderr, "Nothing to persist for this command.")
		return subcommands.ExitSuccess
	}

	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	if err := s.Exec(stmt); err != nil {
		fmt.Fprintf(os.Stderr, "Error persisting record: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Recorded %s order in %s\n", classified.Kind(), *databaseFile)
	return subcommands.ExitSuccess
}
