package bookstore

import "testing"

func TestQuotedParam(t *testing.T) {
	cases := []struct {
		tok, prefix string
		want        string
		ok          bool
	}{
		{`-name="Dune"`, "-name=", "Dune", true},
		{`-name=""`, "-name=", "", true}, // empty value fails validation later, not here
		{`-name="Dune`, "-name=", "", false},
		{`-name=Dune"`, "-name=", "", false},
		{`-name=Dune`, "-name=", "", false},
		{`-author="X"`, "-name=", "", false},
	}
	for _, c := range cases {
		got, ok := quotedParam(c.tok, c.prefix)
		if ok != c.ok || got != c.want {
			t.Errorf("quotedParam(%q, %q) = %q, %v, want %q, %v", c.tok, c.prefix, got, ok, c.want, c.ok)
		}
	}
}

func TestBareParam(t *testing.T) {
	if v, ok := bareParam("-price=12.50", "-price="); !ok || v != "12.50" {
		t.Fatalf("bareParam = %q, %v", v, ok)
	}
	if _, ok := bareParam("-name=x", "-price="); ok {
		t.Fatal("wrong prefix accepted")
	}
}

func TestParseQuantity(t *testing.T) {
	if got := parseQuantity("1234567890"); got != 1234567890 {
		t.Fatalf("parseQuantity = %d", got)
	}
}
