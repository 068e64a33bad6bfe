package bookstore

// Account commands: su, logout, register, passwd, useradd, delete.
// Token counts and the privilege threshold are already checked by the
// dispatch table; handlers own field validation and semantics.

func (d *Dispatcher) cmdSu(tokens []string) error {
	userID := tokens[1]
	secret, hasSecret := "", false
	if len(tokens) == 3 {
		secret, hasSecret = tokens[2], true
	}
	if !validUserID(userID) || (hasSecret && !validPassword(secret)) {
		return ErrInvalid
	}
	if err := d.Sessions.Login(d.Accounts, userID, secret, hasSecret); err != nil {
		return err
	}
	return d.audit("su %s", userID)
}

func (d *Dispatcher) cmdLogout(tokens []string) error {
	cur, _ := d.Sessions.Current()
	if err := d.Sessions.Logout(); err != nil {
		return err
	}
	return d.audit("logout %s", cur.UserID)
}

func (d *Dispatcher) cmdRegister(tokens []string) error {
	userID, secret, name := tokens[1], tokens[2], tokens[3]
	if !validUserID(userID) || !validPassword(secret) || !validUserName(name) {
		return ErrInvalid
	}
	if _, exists := d.Accounts.Find(userID); exists {
		return ErrInvalid
	}
	a, err := NewAccount(userID, secret, name, PrivCustomer)
	if err != nil {
		return err
	}
	if err := d.Accounts.Add(a); err != nil {
		return err
	}
	return d.audit("register %s", userID)
}

func (d *Dispatcher) cmdPasswd(tokens []string) error {
	userID := tokens[1]
	var curSecret, newSecret string
	if len(tokens) == 4 {
		curSecret, newSecret = tokens[2], tokens[3]
	} else {
		newSecret = tokens[2]
	}
	if !validUserID(userID) || !validPassword(newSecret) {
		return ErrInvalid
	}
	if len(tokens) == 4 && !validPassword(curSecret) {
		return ErrInvalid
	}
	a, ok := d.Accounts.Find(userID)
	if !ok {
		return ErrInvalid
	}
	// Privilege 7 changes any secret without proof; everyone else must
	// supply and match the current one.
	if d.Sessions.Privilege() < PrivOwner {
		if len(tokens) != 4 || !a.Authenticate(curSecret) {
			return ErrInvalid
		}
	}
	if err := d.Accounts.SetSecret(userID, newSecret); err != nil {
		return err
	}
	return d.audit("passwd %s", userID)
}

func (d *Dispatcher) cmdUseradd(tokens []string) error {
	userID, secret, privStr, name := tokens[1], tokens[2], tokens[3], tokens[4]
	if !validUserID(userID) || !validPassword(secret) || !validUserName(name) {
		return ErrInvalid
	}
	if len(privStr) != 1 || privStr[0] < '0' || privStr[0] > '9' {
		return ErrInvalid
	}
	privilege := int(privStr[0] - '0')
	if privilege != PrivCustomer && privilege != PrivStaff && privilege != PrivOwner {
		return ErrInvalid
	}
	if privilege >= d.Sessions.Privilege() {
		return ErrInvalid
	}
	if _, exists := d.Accounts.Find(userID); exists {
		return ErrInvalid
	}
	a, err := NewAccount(userID, secret, name, privilege)
	if err != nil {
		return err
	}
	if err := d.Accounts.Add(a); err != nil {
		return err
	}
	return d.audit("useradd %s privilege %d", userID, privilege)
}

func (d *Dispatcher) cmdDelete(tokens []string) error {
	userID := tokens[1]
	if !validUserID(userID) {
		return ErrInvalid
	}
	// An account active anywhere in the login stack cannot be removed.
	if d.Sessions.LoggedIn(userID) {
		return ErrInvalid
	}
	found, err := d.Accounts.Delete(userID)
	if err != nil {
		return err
	}
	if !found {
		return ErrInvalid
	}
	return d.audit("delete %s", userID)
}
