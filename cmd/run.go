package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"bookstore"

	"github.com/google/subcommands"
	"github.com/peterh/liner"
)

type runCmd struct{}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "start an interactive operator session" }
func (*runCmd) Usage() string {
	return `bks run

  Starts the interactive command session on standard input. On a
  terminal the session offers line editing and history; when input is
  piped, lines are processed verbatim. The session ends on quit, exit,
  or end of input.
`
}

func (*runCmd) SetFlags(f *flag.FlagSet) {}

func (p *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	d, err := bookstore.Open(cfg, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if interactive() {
		return runLiner(d)
	}
	if err := d.Run(os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// interactive reports whether stdin is a terminal liner can drive.
func interactive() bool {
	fi, err := os.Stdin.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0 && liner.TerminalSupported()
}

// runLiner drives the session with line editing and in-memory history.
func runLiner(d *bookstore.Dispatcher) subcommands.ExitStatus {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt("> ")
		if err != nil {
			// io.EOF and a Ctrl-C abort both end the session.
			return subcommands.ExitSuccess
		}
		if input != "" {
			line.AppendHistory(input)
		}
		switch err := d.Exec(input); {
		case err == nil:
		case errors.Is(err, bookstore.ErrQuit):
			return subcommands.ExitSuccess
		case errors.Is(err, bookstore.ErrInvalid):
			fmt.Println(bookstore.FailureMarker)
		default:
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
}
