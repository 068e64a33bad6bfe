package renderer

import (
	"strings"
	"testing"

	"bookstore"
)

func TestFinanceEmpty(t *testing.T) {
	got := Finance(nil)
	if !strings.Contains(got, "# Financial Report") || !strings.Contains(got, "No transactions") {
		t.Fatalf("empty report:\n%s", got)
	}
}

func TestFinanceTable(t *testing.T) {
	entries := []bookstore.Entry{
		{Date: bookstore.MustParseDate("2026-08-30"), Amount: bookstore.M(50, bookstore.DefaultCurrency), Direction: bookstore.Expenditure},
		{Date: bookstore.MustParseDate("2026-08-31"), Amount: bookstore.M(25, bookstore.DefaultCurrency), Direction: bookstore.Income},
	}
	got := Finance(entries)

	for _, want := range []string{
		"| Date | Direction | Amount |",
		"| 2026-08-30 | Expenditure | 50.00 |",
		"| 2026-08-31 | Income | 25.00 |",
		"**Income** 25.00, **expenditure** 50.00, **net** -25.00.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
	// Append order is preserved in the table.
	if strings.Index(got, "2026-08-30") > strings.Index(got, "2026-08-31") {
		t.Error("rows out of append order")
	}
}

func TestEmployee(t *testing.T) {
	if got := Employee(nil); !strings.Contains(got, "No audited actions") {
		t.Fatalf("empty report:\n%s", got)
	}
	got := Employee([]string{"first", "second"})
	if !strings.Contains(got, "- first\n- second\n") {
		t.Fatalf("list report:\n%s", got)
	}
}
