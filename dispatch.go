package bookstore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalid is the uniform rejection for malformed commands, failed
// field validation, insufficient privilege, and semantic conflicts.
// The loop translates it into the single failure marker line; durable
// and session state are left untouched.
var ErrInvalid = errors.New("invalid command")

// ErrQuit ends the session loop immediately with no further output.
var ErrQuit = errors.New("quit")

// FailureMarker is the literal line emitted for every rejected command.
const FailureMarker = "Invalid"

// Dispatcher wires the stores, the audit log, and the session stack
// behind the line-oriented command protocol. It processes one line to
// completion before the next; nothing suspends mid-command.
type Dispatcher struct {
	Accounts *AccountStore
	Books    *Catalog
	Ledger   *Ledger
	Audit    *AuditLog
	Sessions *SessionStack
	Out      io.Writer
}

// Open builds a dispatcher over the configured data files, creating
// the bootstrap root account if the account store is empty.
func Open(cfg Config, out io.Writer) (*Dispatcher, error) {
	accounts, err := OpenAccounts(cfg.Accounts)
	if err != nil {
		return nil, err
	}
	return &Dispatcher{
		Accounts: accounts,
		Books:    OpenCatalog(cfg.Books),
		Ledger:   OpenLedger(cfg.Transactions),
		Audit:    OpenAuditLog(cfg.Audit),
		Sessions: NewSessionStack(),
		Out:      out,
	}, nil
}

// command is one named operation: its accepted token-count range
// (command name included), the minimum current privilege, and the
// handler.
type command struct {
	min, max  int
	privilege int
	run       func(*Dispatcher, []string) error
}

var commands = map[string]command{
	"su":       {2, 3, PrivNone, (*Dispatcher).cmdSu},
	"logout":   {1, 1, PrivCustomer, (*Dispatcher).cmdLogout},
	"register": {4, 4, PrivNone, (*Dispatcher).cmdRegister},
	"passwd":   {3, 4, PrivCustomer, (*Dispatcher).cmdPasswd},
	"useradd":  {5, 5, PrivStaff, (*Dispatcher).cmdUseradd},
	"delete":   {2, 2, PrivOwner, (*Dispatcher).cmdDelete},
	"show":     {1, 3, PrivCustomer, (*Dispatcher).cmdShow},
	"buy":      {3, 3, PrivCustomer, (*Dispatcher).cmdBuy},
	"select":   {2, 2, PrivStaff, (*Dispatcher).cmdSelect},
	"modify":   {2, 6, PrivStaff, (*Dispatcher).cmdModify},
	"import":   {3, 3, PrivStaff, (*Dispatcher).cmdImport},
	"log":      {1, 1, PrivOwner, (*Dispatcher).cmdLog},
	"report":   {2, 2, PrivOwner, (*Dispatcher).cmdReport},
}

// Exec runs a single input line. It returns nil on success (after
// emitting the command's output, if any), ErrInvalid on rejection,
// ErrQuit on a termination command, and any other error only for
// unrecoverable storage failures.
func (d *Dispatcher) Exec(line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}
	if tokens[0] == "quit" || tokens[0] == "exit" {
		return ErrQuit
	}
	cmd, ok := commands[tokens[0]]
	if !ok {
		return ErrInvalid
	}
	if len(tokens) < cmd.min || len(tokens) > cmd.max {
		return ErrInvalid
	}
	if d.Sessions.Privilege() < cmd.privilege {
		return ErrInvalid
	}
	return cmd.run(d, tokens)
}

// Run processes input lines until a termination command or the end of
// the stream. Rejected commands print the failure marker and the loop
// continues; storage failures abort.
func (d *Dispatcher) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		switch err := d.Exec(sc.Text()); {
		case err == nil:
		case errors.Is(err, ErrQuit):
			return nil
		case errors.Is(err, ErrInvalid):
			fmt.Fprintln(d.Out, FailureMarker)
		default:
			return err
		}
	}
	return sc.Err()
}

// audit appends a dated, session-tagged description line for a
// privileged action.
func (d *Dispatcher) audit(format string, args ...any) error {
	sid, uid := "-", "-"
	if s, ok := d.Sessions.Current(); ok {
		sid, uid = s.ID.String()[:8], s.UserID
	}
	return d.Audit.Append(fmt.Sprintf("%s %s %s %s", Today(), sid, uid, fmt.Sprintf(format, args...)))
}

// printBooks writes one tab-separated line per book, or a single empty
// line when there is nothing to show.
func (d *Dispatcher) printBooks(books []Book) {
	if len(books) == 0 {
		fmt.Fprintln(d.Out)
		return
	}
	for _, b := range books {
		fmt.Fprintf(d.Out, "%s\t%s\t%s\t%s\t%s\t%d\n",
			b.ISBN, b.Title, b.Author, b.Keywords, b.Price, b.Quantity)
	}
}
