package bookstore

import "github.com/google/uuid"

// Session is one active login: the account's user id, the privilege
// captured at login time (never re-read from storage), and the
// session's selected ISBN (empty until a select).
type Session struct {
	ID        uuid.UUID
	UserID    string
	Privilege int
	Selected  string
}

// SessionStack holds the nested active logins. The top of the stack is
// the current session; pushing is a nested login, popping is a logout.
// The stack is process-local and never persisted.
type SessionStack struct {
	stack []Session
}

// NewSessionStack returns an empty stack (effective privilege 0).
func NewSessionStack() *SessionStack {
	return &SessionStack{}
}

// Privilege returns the top-of-stack privilege, or PrivNone if the
// stack is empty.
func (s *SessionStack) Privilege() int {
	if len(s.stack) == 0 {
		return PrivNone
	}
	return s.stack[len(s.stack)-1].Privilege
}

// Current returns the top-of-stack session.
func (s *SessionStack) Current() (Session, bool) {
	if len(s.stack) == 0 {
		return Session{}, false
	}
	return s.stack[len(s.stack)-1], true
}

// Selected returns the current session's selected ISBN, or "" if there
// is no selection or no session.
func (s *SessionStack) Selected() string {
	if len(s.stack) == 0 {
		return ""
	}
	return s.stack[len(s.stack)-1].Selected
}

// Select sets the current session's selected ISBN. Selecting with an
// empty stack is a caller error: every command that selects also
// requires authentication.
func (s *SessionStack) Select(isbn string) {
	if len(s.stack) == 0 {
		panic("select with no active session")
	}
	s.stack[len(s.stack)-1].Selected = isbn
}

// LoggedIn reports whether the account is active anywhere in the
// stack, not just at the top.
func (s *SessionStack) LoggedIn(userID string) bool {
	for _, sess := range s.stack {
		if sess.UserID == userID {
			return true
		}
	}
	return false
}

// Login authenticates against the account store and pushes a new
// session. When the current effective privilege is strictly above the
// target account's, the login succeeds without secret verification; a
// supplied secret is not checked. Otherwise a secret is mandatory and
// must match. The pushed session captures the privilege at this
// instant.
func (s *SessionStack) Login(accounts *AccountStore, userID, secret string, hasSecret bool) error {
	a, ok := accounts.Find(userID)
	if !ok {
		return ErrInvalid
	}
	if s.Privilege() <= a.Privilege {
		if !hasSecret || !a.Authenticate(secret) {
			return ErrInvalid
		}
	}
	s.stack = append(s.stack, Session{
		ID:        uuid.New(),
		UserID:    a.UserID,
		Privilege: a.Privilege,
	})
	return nil
}

// Logout pops the current session, discarding its selection. It is
// rejected on an empty stack or below the minimum operator level.
func (s *SessionStack) Logout() error {
	if len(s.stack) == 0 || s.Privilege() < PrivCustomer {
		return ErrInvalid
	}
	s.stack = s.stack[:len(s.stack)-1]
	return nil
}

// Depth returns the number of active sessions.
func (s *SessionStack) Depth() int { return len(s.stack) }
