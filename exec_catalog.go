package bookstore

import (
	"fmt"
	"strings"
)

// Catalog commands: show (catalog branches), buy, select, modify,
// import. The finance branch of show lives in exec_finance.go.

func (d *Dispatcher) cmdShow(tokens []string) error {
	if len(tokens) >= 2 && tokens[1] == "finance" {
		return d.showFinance(tokens)
	}
	switch len(tokens) {
	case 1:
		d.printBooks(d.Books.List())
		return nil
	case 2:
		return d.showFiltered(tokens[1])
	default:
		return ErrInvalid
	}
}

// showFiltered handles `show` with exactly one search predicate.
func (d *Dispatcher) showFiltered(filter string) error {
	var match func(Book) bool
	switch {
	case strings.HasPrefix(filter, "-ISBN="):
		v, _ := bareParam(filter, "-ISBN=")
		if !validISBN(v) {
			return ErrInvalid
		}
		match = ByISBN(v)
	case strings.HasPrefix(filter, "-name="):
		v, ok := quotedParam(filter, "-name=")
		if !ok || !validBookString(v) {
			return ErrInvalid
		}
		match = ByTitle(v)
	case strings.HasPrefix(filter, "-author="):
		v, ok := quotedParam(filter, "-author=")
		if !ok || !validBookString(v) {
			return ErrInvalid
		}
		match = ByAuthor(v)
	case strings.HasPrefix(filter, "-keyword="):
		v, ok := quotedParam(filter, "-keyword=")
		if !ok || !validBookString(v) {
			return ErrInvalid
		}
		// The predicate takes a single keyword, never a list.
		if strings.ContainsRune(v, '|') {
			return ErrInvalid
		}
		match = ByKeyword(v)
	default:
		return ErrInvalid
	}
	d.printBooks(d.Books.Search(match))
	return nil
}

func (d *Dispatcher) cmdBuy(tokens []string) error {
	isbn, qtyStr := tokens[1], tokens[2]
	if !validISBN(isbn) || !validQuantity(qtyStr) {
		return ErrInvalid
	}
	qty := parseQuantity(qtyStr)
	if qty <= 0 {
		return ErrInvalid
	}
	b, ok := d.Books.Find(isbn)
	if !ok || b.Quantity < qty {
		return ErrInvalid
	}
	total := b.Price.MulQuantity(qty)
	b.Quantity -= qty
	if err := d.Books.Put(b); err != nil {
		return err
	}
	if err := d.Ledger.Record(Income, total); err != nil {
		return err
	}
	fmt.Fprintln(d.Out, total)
	return d.audit("buy %s x%d for %s", isbn, qty, total)
}

func (d *Dispatcher) cmdSelect(tokens []string) error {
	isbn := tokens[1]
	if !validISBN(isbn) {
		return ErrInvalid
	}
	if _, ok := d.Books.Find(isbn); !ok {
		// First selection of an unknown ISBN creates a placeholder.
		if err := d.Books.Put(Book{ISBN: isbn, Price: M(0, DefaultCurrency)}); err != nil {
			return err
		}
		if err := d.audit("select %s (created)", isbn); err != nil {
			return err
		}
	}
	d.Sessions.Select(isbn)
	return nil
}

func (d *Dispatcher) cmdModify(tokens []string) error {
	selected := d.Sessions.Selected()
	if selected == "" {
		return ErrInvalid
	}
	b, ok := d.Books.Find(selected)
	if !ok {
		return ErrInvalid
	}

	// All edits are validated into a local copy first; any invalid
	// parameter aborts the whole command with no mutation.
	used := make(map[string]bool)
	newISBN := ""
	for _, param := range tokens[1:] {
		switch {
		case strings.HasPrefix(param, "-ISBN="):
			v, _ := bareParam(param, "-ISBN=")
			if used["ISBN"] {
				return ErrInvalid
			}
			used["ISBN"] = true
			if !validISBN(v) || v == b.ISBN {
				return ErrInvalid
			}
			if _, exists := d.Books.Find(v); exists {
				return ErrInvalid
			}
			newISBN = v
		case strings.HasPrefix(param, "-name="):
			v, ok := quotedParam(param, "-name=")
			if !ok || used["name"] {
				return ErrInvalid
			}
			used["name"] = true
			if !validBookString(v) {
				return ErrInvalid
			}
			b.Title = v
		case strings.HasPrefix(param, "-author="):
			v, ok := quotedParam(param, "-author=")
			if !ok || used["author"] {
				return ErrInvalid
			}
			used["author"] = true
			if !validBookString(v) {
				return ErrInvalid
			}
			b.Author = v
		case strings.HasPrefix(param, "-keyword="):
			v, ok := quotedParam(param, "-keyword=")
			if !ok || used["keyword"] {
				return ErrInvalid
			}
			used["keyword"] = true
			if !validKeywordList(v) {
				return ErrInvalid
			}
			b.Keywords = v
		case strings.HasPrefix(param, "-price="):
			v, _ := bareParam(param, "-price=")
			if used["price"] {
				return ErrInvalid
			}
			used["price"] = true
			if !validPrice(v) {
				return ErrInvalid
			}
			price, err := ParsePrice(v)
			if err != nil {
				return ErrInvalid
			}
			b.Price = price
		default:
			return ErrInvalid
		}
	}

	if newISBN != "" {
		old := b.ISBN
		b.ISBN = newISBN
		if err := d.Books.Rename(old, b); err != nil {
			return err
		}
		// A rename retargets the session's selection.
		d.Sessions.Select(newISBN)
		return d.audit("modify %s -> %s", old, newISBN)
	}
	if err := d.Books.Put(b); err != nil {
		return err
	}
	return d.audit("modify %s", b.ISBN)
}

func (d *Dispatcher) cmdImport(tokens []string) error {
	selected := d.Sessions.Selected()
	if selected == "" {
		return ErrInvalid
	}
	qtyStr, costStr := tokens[1], tokens[2]
	if !validQuantity(qtyStr) || !validPrice(costStr) {
		return ErrInvalid
	}
	qty := parseQuantity(qtyStr)
	cost, err := ParsePrice(costStr)
	if err != nil {
		return ErrInvalid
	}
	if qty <= 0 || !cost.IsPositive() {
		return ErrInvalid
	}
	b, ok := d.Books.Find(selected)
	if !ok {
		return ErrInvalid
	}
	b.Quantity += qty
	if err := d.Books.Put(b); err != nil {
		return err
	}
	if err := d.Ledger.Record(Expenditure, cost); err != nil {
		return err
	}
	return d.audit("import %s x%d for %s", selected, qty, cost)
}
