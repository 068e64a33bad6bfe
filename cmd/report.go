package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"bookstore"
	"bookstore/renderer"

	"github.com/google/subcommands"
)

type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "render a finance or employee report" }
func (*reportCmd) Usage() string {
	return `bks report (finance | employee)

  Renders the financial ledger or the audit trail as markdown, outside
  the interactive session. The interactive report command prints the
  same data in its plain line-oriented form.
`
}

func (*reportCmd) SetFlags(f *flag.FlagSet) {}

func (p *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch f.Arg(0) {
	case "finance":
		printMarkdown(renderer.Finance(bookstore.OpenLedger(cfg.Transactions).All()))
	case "employee":
		printMarkdown(renderer.Employee(bookstore.OpenAuditLog(cfg.Audit).All()))
	default:
		fmt.Fprintf(os.Stderr, "unknown report %q, want finance or employee\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
