package bookstore

import "fmt"

// Finance and audit commands: the finance branch of show, log, report.

// showFinance handles `show finance [n]`. With no count it sums the
// whole ledger; n beyond the entry count is rejected; n = 0 prints an
// empty line.
func (d *Dispatcher) showFinance(tokens []string) error {
	if d.Sessions.Privilege() < PrivOwner {
		return ErrInvalid
	}
	n := -1
	if len(tokens) == 3 {
		if !validQuantity(tokens[2]) {
			return ErrInvalid
		}
		v := parseQuantity(tokens[2])
		if v > int64(d.Ledger.Count()) {
			return ErrInvalid
		}
		if v == 0 {
			fmt.Fprintln(d.Out)
			return nil
		}
		n = int(v)
	}
	income, expenditure := d.Ledger.Summarize(n)
	fmt.Fprintf(d.Out, "+ %s - %s\n", income, expenditure)
	return nil
}

func (d *Dispatcher) cmdLog(tokens []string) error {
	for _, line := range d.Audit.All() {
		fmt.Fprintln(d.Out, line)
	}
	return nil
}

func (d *Dispatcher) cmdReport(tokens []string) error {
	switch tokens[1] {
	case "finance":
		fmt.Fprintln(d.Out, "Financial Report:")
		for _, e := range d.Ledger.All() {
			fmt.Fprintf(d.Out, "%s: %s\n", e.Direction, e.Amount)
		}
	case "employee":
		fmt.Fprintln(d.Out, "Employee Report:")
		for _, line := range d.Audit.All() {
			fmt.Fprintln(d.Out, line)
		}
	default:
		return ErrInvalid
	}
	return nil
}
