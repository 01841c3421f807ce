package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type initCmd struct{}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create the database schema if it does not exist" }
func (*initCmd) Usage() string {
	return `linda init [-f <file>]

  Creates the database file and its schema. Idempotent: running it on an
  already initialized database changes nothing.
`
}

func (*initCmd) SetFlags(f *flag.FlagSet) {}

func (*initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	if err := s.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing database: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Initialized database %s\n", *databaseFile)
	return subcommands.ExitSuccess
}
