package bookstore

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Privilege levels gating command availability.
const (
	PrivNone     = 0 // no active session
	PrivCustomer = 1
	PrivStaff    = 3
	PrivOwner    = 7
)

// Bootstrap identity created once, when the account store is empty.
const (
	rootUserID = "root"
	rootSecret = "sjtu"
)

// Account is an operator account. The secret is persisted as a bcrypt
// hash; the cleartext never reaches storage.
type Account struct {
	UserID     string
	SecretHash string
	Name       string
	Privilege  int
}

// NewAccount hashes the secret and builds an account record.
func NewAccount(userID, secret, name string, privilege int) (Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return Account{}, fmt.Errorf("hash secret for %q: %w", userID, err)
	}
	return Account{UserID: userID, SecretHash: string(hash), Name: name, Privilege: privilege}, nil
}

// Authenticate reports whether the supplied secret matches.
func (a Account) Authenticate(secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.SecretHash), []byte(secret)) == nil
}

// accountCodec lays an account out as a 132-byte record:
// user id (32), secret hash (64), display name (32), privilege (4).
type accountCodec struct{}

func (accountCodec) Size() int            { return 132 }
func (accountCodec) Key(a Account) string { return a.UserID }

func (accountCodec) Encode(a Account, buf []byte) {
	putFixedString(buf[0:32], a.UserID)
	putFixedString(buf[32:96], a.SecretHash)
	putFixedString(buf[96:128], a.Name)
	buf[128] = byte(a.Privilege)
	buf[129], buf[130], buf[131] = 0, 0, 0
}

func (accountCodec) Decode(buf []byte) Account {
	return Account{
		UserID:     fixedString(buf[0:32]),
		SecretHash: fixedString(buf[32:96]),
		Name:       fixedString(buf[96:128]),
		Privilege:  int(buf[128]),
	}
}

// AccountStore is the account instantiation of the record store.
// UserID uniqueness is enforced here, before every insert.
type AccountStore struct {
	recs *RecStore[Account]
}

// OpenAccounts opens the account store and creates the bootstrap root
// account (privilege 7) if the store is empty.
func OpenAccounts(path string) (*AccountStore, error) {
	s := &AccountStore{recs: NewRecStore[Account](path, accountCodec{})}
	if len(s.recs.ScanAll()) == 0 {
		root, err := NewAccount(rootUserID, rootSecret, rootUserID, PrivOwner)
		if err != nil {
			return nil, err
		}
		if err := s.recs.Append(root); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Find returns the account with the given user id.
func (s *AccountStore) Find(userID string) (Account, bool) {
	return s.recs.FindByKey(userID)
}

// Add appends a new account. The caller must have checked that the
// user id does not pre-exist.
func (s *AccountStore) Add(a Account) error {
	return s.recs.Append(a)
}

// Delete removes the account and reports whether it existed.
func (s *AccountStore) Delete(userID string) (bool, error) {
	return s.recs.DeleteByKey(userID)
}

// SetSecret re-hashes and stores a new secret for an existing account.
func (s *AccountStore) SetSecret(userID, secret string) error {
	a, ok := s.recs.FindByKey(userID)
	if !ok {
		return fmt.Errorf("set secret: unknown account %q", userID)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash secret for %q: %w", userID, err)
	}
	a.SecretHash = string(hash)
	return s.recs.UpsertByKey(a)
}
