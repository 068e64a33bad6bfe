package bookstore

// Direction tags a ledger entry as money coming in or going out.
type Direction int8

const (
	Income      Direction = 1
	Expenditure Direction = -1
)

func (d Direction) String() string {
	switch d {
	case Income:
		return "Income"
	case Expenditure:
		return "Expenditure"
	default:
		return "unknown"
	}
}

// Entry is one ledger record: a dated, directed amount. Entries are
// append-only and never mutated; file order is chronological order and
// is load-bearing for "last N" reporting.
type Entry struct {
	Date      Date
	Amount    Money
	Direction Direction
}

// entryCodec lays an entry out as a 16-byte record:
// date (4), amount in minor units (8), direction (1), padding (3).
type entryCodec struct{}

func (entryCodec) Size() int          { return 16 }
func (entryCodec) Key(e Entry) string { return "" } // entries have no lookup key

func (entryCodec) Encode(e Entry, buf []byte) {
	putDate(buf[0:4], e.Date)
	putInt64(buf[4:12], e.Amount.Cents())
	buf[12] = byte(e.Direction)
	buf[13], buf[14], buf[15] = 0, 0, 0
}

func (entryCodec) Decode(buf []byte) Entry {
	return Entry{
		Date:      getDate(buf[0:4]),
		Amount:    FromCents(getInt64(buf[4:12])),
		Direction: Direction(int8(buf[12])),
	}
}

// Ledger is the append-only transaction instantiation of the record
// store. Only Append and ScanAll are ever used: entries are never
// looked up, rewritten, or deleted.
type Ledger struct {
	recs *RecStore[Entry]
}

// OpenLedger opens the ledger store.
func OpenLedger(path string) *Ledger {
	return &Ledger{recs: NewRecStore[Entry](path, entryCodec{})}
}

// Record appends a dated entry for the given direction and amount.
func (l *Ledger) Record(dir Direction, amount Money) error {
	return l.recs.Append(Entry{Date: Today(), Amount: amount, Direction: dir})
}

// All returns every entry in append order.
func (l *Ledger) All() []Entry {
	return l.recs.ScanAll()
}

// Count returns the number of recorded entries.
func (l *Ledger) Count() int {
	return len(l.recs.ScanAll())
}

// Summarize sums income and expenditure over the last n entries in
// append order. A negative n sums the whole ledger. The caller is
// responsible for rejecting n beyond the entry count.
func (l *Ledger) Summarize(n int) (income, expenditure Money) {
	entries := l.recs.ScanAll()
	if n >= 0 && n < len(entries) {
		entries = entries[len(entries)-n:]
	}
	income = M(0, DefaultCurrency)
	expenditure = M(0, DefaultCurrency)
	for _, e := range entries {
		switch e.Direction {
		case Income:
			income = income.Add(e.Amount)
		case Expenditure:
			expenditure = expenditure.Add(e.Amount)
		}
	}
	return income, expenditure
}
