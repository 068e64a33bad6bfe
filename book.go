package bookstore

import (
	"sort"
	"strings"
)

// Book is one catalog entry, keyed by ISBN. Keywords is a
// pipe-delimited set. A freshly selected ISBN yields a placeholder
// book with every other field empty or zero.
type Book struct {
	ISBN     string
	Title    string
	Author   string
	Keywords string
	Price    Money
	Quantity int64
}

// HasKeyword reports whether kw is one of the book's keywords.
func (b Book) HasKeyword(kw string) bool {
	for _, k := range strings.Split(b.Keywords, "|") {
		if k == kw {
			return true
		}
	}
	return false
}

// bookCodec lays a book out as a 232-byte record:
// ISBN (24), title (64), author (64), keywords (64),
// price in minor units (8), quantity (8).
type bookCodec struct{}

func (bookCodec) Size() int         { return 232 }
func (bookCodec) Key(b Book) string { return b.ISBN }

func (bookCodec) Encode(b Book, buf []byte) {
	putFixedString(buf[0:24], b.ISBN)
	putFixedString(buf[24:88], b.Title)
	putFixedString(buf[88:152], b.Author)
	putFixedString(buf[152:216], b.Keywords)
	putInt64(buf[216:224], b.Price.Cents())
	putInt64(buf[224:232], b.Quantity)
}

func (bookCodec) Decode(buf []byte) Book {
	return Book{
		ISBN:     fixedString(buf[0:24]),
		Title:    fixedString(buf[24:88]),
		Author:   fixedString(buf[88:152]),
		Keywords: fixedString(buf[152:216]),
		Price:    FromCents(getInt64(buf[216:224])),
		Quantity: getInt64(buf[224:232]),
	}
}

// Catalog is the book instantiation of the record store. ISBN
// uniqueness is enforced here, before insert and rename.
type Catalog struct {
	recs *RecStore[Book]
}

// OpenCatalog opens the catalog store.
func OpenCatalog(path string) *Catalog {
	return &Catalog{recs: NewRecStore[Book](path, bookCodec{})}
}

// Find returns the first book with the given ISBN.
func (c *Catalog) Find(isbn string) (Book, bool) {
	return c.recs.FindByKey(isbn)
}

// Put inserts or updates the book under its ISBN.
func (c *Catalog) Put(b Book) error {
	return c.recs.UpsertByKey(b)
}

// Rename replaces the record stored under oldISBN with b, which
// carries the new ISBN. The caller must have checked that the new ISBN
// does not collide.
func (c *Catalog) Rename(oldISBN string, b Book) error {
	if _, err := c.recs.DeleteByKey(oldISBN); err != nil {
		return err
	}
	return c.recs.Append(b)
}

// List returns every book sorted by ISBN ascending.
func (c *Catalog) List() []Book {
	return sortByISBN(c.recs.ScanAll())
}

// Search returns the books matching the predicate, sorted by ISBN
// ascending.
func (c *Catalog) Search(match func(Book) bool) []Book {
	var out []Book
	for _, b := range c.recs.ScanAll() {
		if match(b) {
			out = append(out, b)
		}
	}
	return sortByISBN(out)
}

func sortByISBN(books []Book) []Book {
	sort.Slice(books, func(i, j int) bool { return books[i].ISBN < books[j].ISBN })
	return books
}

// Search predicates.

func ByISBN(isbn string) func(Book) bool {
	return func(b Book) bool { return b.ISBN == isbn }
}

func ByTitle(title string) func(Book) bool {
	return func(b Book) bool { return b.Title == title }
}

func ByAuthor(author string) func(Book) bool {
	return func(b Book) bool { return b.Author == author }
}

func ByKeyword(kw string) func(Book) bool {
	return func(b Book) bool { return b.HasKeyword(kw) }
}
