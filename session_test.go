package bookstore

import (
	"errors"
	"path/filepath"
	"testing"
)

// newTestAccounts creates a store seeded with one account per privilege
// level, all using the secret "pw", plus the bootstrap root.
func newTestAccounts(t *testing.T) *AccountStore {
	t.Helper()
	s, err := OpenAccounts(filepath.Join(t.TempDir(), "accounts.dat"))
	if err != nil {
		t.Fatal(err)
	}
	for _, seed := range []struct {
		id   string
		priv int
	}{
		{"cust", PrivCustomer},
		{"staff", PrivStaff},
		{"owner", PrivOwner},
	} {
		a, err := NewAccount(seed.id, "pw", seed.id, seed.priv)
		if err != nil {
			t.Fatal(err)
		}
		if err := s.Add(a); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func TestLoginSecretRules(t *testing.T) {
	accounts := newTestAccounts(t)

	// From a given current privilege, logging into a target account
	// without a secret succeeds exactly when current > target.
	cases := []struct {
		from   string // "" means empty stack
		target string
		want   bool
	}{
		{"", "cust", false},
		{"", "owner", false},
		{"cust", "cust", false},
		{"cust", "staff", false},
		{"staff", "cust", true},
		{"staff", "staff", false},
		{"owner", "cust", true},
		{"owner", "staff", true},
		{"owner", "owner", false},
	}
	for _, c := range cases {
		st := NewSessionStack()
		if c.from != "" {
			if err := st.Login(accounts, c.from, "pw", true); err != nil {
				t.Fatalf("setup login %s: %v", c.from, err)
			}
		}
		err := st.Login(accounts, c.target, "", false)
		if got := err == nil; got != c.want {
			t.Errorf("login %s -> %s without secret: err=%v, want success=%v", c.from, c.target, err, c.want)
		}
	}
}

func TestLoginWithSecret(t *testing.T) {
	accounts := newTestAccounts(t)
	st := NewSessionStack()

	if err := st.Login(accounts, "cust", "wrong", true); !errors.Is(err, ErrInvalid) {
		t.Fatalf("wrong secret: err=%v, want ErrInvalid", err)
	}
	if err := st.Login(accounts, "nobody", "pw", true); !errors.Is(err, ErrInvalid) {
		t.Fatalf("unknown account: err=%v, want ErrInvalid", err)
	}
	if err := st.Login(accounts, "cust", "pw", true); err != nil {
		t.Fatalf("correct secret: %v", err)
	}
	if st.Privilege() != PrivCustomer {
		t.Fatalf("privilege = %d, want %d", st.Privilege(), PrivCustomer)
	}
}

func TestLoginElevatedIgnoresSuppliedSecret(t *testing.T) {
	accounts := newTestAccounts(t)
	st := NewSessionStack()
	if err := st.Login(accounts, "owner", "pw", true); err != nil {
		t.Fatal(err)
	}
	// A higher-privileged session may switch down even with a wrong
	// secret; the supplied value is not compared.
	if err := st.Login(accounts, "cust", "wrong", true); err != nil {
		t.Fatalf("elevated login with wrong secret: %v", err)
	}
	if st.Privilege() != PrivCustomer {
		t.Fatalf("privilege = %d, want %d", st.Privilege(), PrivCustomer)
	}
}

func TestLogout(t *testing.T) {
	accounts := newTestAccounts(t)
	st := NewSessionStack()

	if err := st.Logout(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("logout on empty stack: err=%v, want ErrInvalid", err)
	}

	st.Login(accounts, "owner", "pw", true)
	st.Login(accounts, "cust", "", false)
	if st.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", st.Depth())
	}
	if err := st.Logout(); err != nil {
		t.Fatal(err)
	}
	if st.Privilege() != PrivOwner {
		t.Fatalf("privilege after pop = %d, want %d", st.Privilege(), PrivOwner)
	}
	if err := st.Logout(); err != nil {
		t.Fatal(err)
	}
	if st.Depth() != 0 || st.Privilege() != PrivNone {
		t.Fatalf("depth=%d privilege=%d after final logout", st.Depth(), st.Privilege())
	}
}

func TestSelectionIsPerSession(t *testing.T) {
	accounts := newTestAccounts(t)
	st := NewSessionStack()
	st.Login(accounts, "owner", "pw", true)
	st.Select("isbn-outer")

	st.Login(accounts, "staff", "", false)
	if st.Selected() != "" {
		t.Fatalf("new session inherited selection %q", st.Selected())
	}
	st.Select("isbn-inner")
	st.Logout()
	// The outer session keeps its own selection; the inner one is gone.
	if st.Selected() != "isbn-outer" {
		t.Fatalf("selection after logout = %q, want isbn-outer", st.Selected())
	}
}

func TestLoggedInSearchesWholeStack(t *testing.T) {
	accounts := newTestAccounts(t)
	st := NewSessionStack()
	st.Login(accounts, "owner", "pw", true)
	st.Login(accounts, "cust", "", false)

	if !st.LoggedIn("owner") {
		t.Fatal("owner buried in the stack not reported as logged in")
	}
	if !st.LoggedIn("cust") {
		t.Fatal("top of stack not reported as logged in")
	}
	if st.LoggedIn("staff") {
		t.Fatal("absent account reported as logged in")
	}
}
