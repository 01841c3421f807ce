// Package cmd implements the CLI application to record and inspect orders.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/lindacli/linda/store"
)

// Commands lists the subcommands a main package registers on its commander.
var Commands = []subcommands.Command{
	&initCmd{},
	&execCmd{},
	&recordsCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var databaseFile = flag.String("f", store.DefaultFilename, "Path to the database file")

// openStore opens the database file shared by all subcommands.
func openStore() (*store.Store, error) {
	return store.Open(*databaseFile)
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering is not possible.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Fprintln(os.Stdout, md)
		return
	}
	fmt.Fprint(os.Stdout, out)
}
