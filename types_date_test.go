package bookstore

import (
	"testing"
	"time"
)

func TestDateString(t *testing.T) {
	d := NewDate(2026, time.August, 31)
	if d.String() != "2026-08-31" {
		t.Fatalf("String = %q", d.String())
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-8-3")
	if err != nil {
		t.Fatal(err)
	}
	if d.Year() != 2026 || d.Month() != time.August || d.Day() != 3 {
		t.Fatalf("parsed %v", d)
	}
	if _, err := ParseDate("not-a-date"); err == nil {
		t.Fatal("garbage accepted")
	}
}

func TestDateOrdering(t *testing.T) {
	a := MustParseDate("2026-01-01")
	b := MustParseDate("2026-06-15")
	if !a.Before(b) || !b.After(a) || a.After(b) {
		t.Fatal("ordering broken")
	}
}

func TestDateEncoding(t *testing.T) {
	buf := make([]byte, 4)
	in := MustParseDate("2026-08-31")
	putDate(buf, in)
	if got := getDate(buf); got != in {
		t.Fatalf("round trip = %v, want %v", got, in)
	}

	putDate(buf, Date{})
	if got := getDate(buf); !got.IsZero() {
		t.Fatalf("zero date round trip = %v", got)
	}
}
