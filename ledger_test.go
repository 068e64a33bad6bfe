package bookstore

import (
	"path/filepath"
	"testing"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	return OpenLedger(filepath.Join(t.TempDir(), "transactions.dat"))
}

func TestLedgerRecordAndCount(t *testing.T) {
	l := newTestLedger(t)
	if l.Count() != 0 {
		t.Fatalf("Count on empty ledger = %d", l.Count())
	}
	l.Record(Income, M(25, DefaultCurrency))
	l.Record(Expenditure, M(50, DefaultCurrency))
	l.Record(Income, M(10, DefaultCurrency))
	if l.Count() != 3 {
		t.Fatalf("Count = %d, want 3", l.Count())
	}
	all := l.All()
	if all[0].Direction != Income || all[1].Direction != Expenditure || all[2].Direction != Income {
		t.Fatalf("append order lost: %v", all)
	}
	if all[1].Date.IsZero() {
		t.Fatal("entry recorded without a date")
	}
}

func TestLedgerSummarize(t *testing.T) {
	l := newTestLedger(t)
	l.Record(Income, mustPrice(t, "25.00"))
	l.Record(Expenditure, mustPrice(t, "50.00"))
	l.Record(Income, mustPrice(t, "10.50"))

	cases := []struct {
		n                   int
		income, expenditure string
	}{
		{-1, "35.50", "50.00"}, // whole ledger
		{3, "35.50", "50.00"},
		{2, "10.50", "50.00"}, // last two
		{1, "10.50", "0.00"},  // last one only
	}
	for _, c := range cases {
		income, expenditure := l.Summarize(c.n)
		if income.String() != c.income || expenditure.String() != c.expenditure {
			t.Errorf("Summarize(%d) = + %s - %s, want + %s - %s",
				c.n, income, expenditure, c.income, c.expenditure)
		}
	}
}

func TestLedgerEntryCodecRoundTrip(t *testing.T) {
	in := Entry{
		Date:      MustParseDate("2026-08-31"),
		Amount:    mustPrice(t, "12.50"),
		Direction: Expenditure,
	}
	var codec entryCodec
	buf := make([]byte, codec.Size())
	codec.Encode(in, buf)
	got := codec.Decode(buf)
	if got.Date != in.Date || got.Direction != in.Direction || !got.Amount.Equal(in.Amount) {
		t.Fatalf("decode = %+v, want %+v", got, in)
	}
}

func TestDirectionString(t *testing.T) {
	if Income.String() != "Income" || Expenditure.String() != "Expenditure" {
		t.Fatal("direction labels wrong")
	}
	if Direction(0).String() != "unknown" {
		t.Fatal("zero direction not reported unknown")
	}
}
