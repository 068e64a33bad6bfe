// Package cmd implements the CLI application for the bookstore tool.
package cmd

import (
	"flag"
	"fmt"

	"bookstore"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Commands is registered by the main package.
// A main package will call Register on each, and Execute on the user-selected one.
var Commands = []subcommands.Command{
	&runCmd{},
	&reportCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the TOML config file naming the data files")

// loadConfig resolves the data file configuration for all subcommands.
func loadConfig() (bookstore.Config, error) {
	return bookstore.LoadConfig(*configFile)
}

// printMarkdown renders markdown to the terminal, falling back to the
// raw text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
