// Package renderer turns bookstore reports into markdown suitable for
// terminal rendering.
package renderer

import (
	"fmt"
	"strings"

	"bookstore"
)

// Finance renders the full ledger as a markdown table with totals,
// in append order.
func Finance(entries []bookstore.Entry) string {
	var b strings.Builder
	b.WriteString("# Financial Report\n\n")
	if len(entries) == 0 {
		b.WriteString("No transactions recorded.\n")
		return b.String()
	}
	b.WriteString("| Date | Direction | Amount |\n")
	b.WriteString("|------|-----------|-------:|\n")
	income := bookstore.M(0, bookstore.DefaultCurrency)
	expenditure := bookstore.M(0, bookstore.DefaultCurrency)
	for _, e := range entries {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", e.Date, e.Direction, e.Amount)
		switch e.Direction {
		case bookstore.Income:
			income = income.Add(e.Amount)
		case bookstore.Expenditure:
			expenditure = expenditure.Add(e.Amount)
		}
	}
	fmt.Fprintf(&b, "\n**Income** %s, **expenditure** %s, **net** %s.\n",
		income, expenditure, income.Sub(expenditure))
	return b.String()
}

// Employee renders the audit trail as a markdown list, in append order.
func Employee(lines []string) string {
	var b strings.Builder
	b.WriteString("# Employee Report\n\n")
	if len(lines) == 0 {
		b.WriteString("No audited actions.\n")
		return b.String()
	}
	for _, line := range lines {
		fmt.Fprintf(&b, "- %s\n", line)
	}
	return b.String()
}
