package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lindacli/linda/renderer"
)

type recordsCmd struct {
	currency string
	tail     int
}

func (*recordsCmd) Name() string     { return "records" }
func (*recordsCmd) Synopsis() string { return "list the persisted records" }
func (*recordsCmd) Usage() string {
	return `linda records [-c <currency>] [-tail <n>] [-f <file>]

  Lists persisted records in insertion order, amounts displayed in the
  given currency.
`
}

func (c *recordsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "EUR", "Currency used to display amounts.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N records.")
}

func (c *recordsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	records, err := s.Records()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading records: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.tail > 0 && len(records) > c.tail {
		records = records[len(records)-c.tail:]
	}

	printMarkdown(renderer.Records(records, c.currency))
	return subcommands.ExitSuccess
}
