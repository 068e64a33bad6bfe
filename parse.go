package bookstore

import (
	"strconv"
	"strings"
)

// Thin parsing helpers for the command grammar. Multi-word fields
// (titles, authors, keyword lists) are carried as single whitespace
// tokens wrapped in quotes by the caller; the helpers below only match
// the field prefix and the surrounding quote characters. A field value
// containing whitespace therefore never reaches the handler intact;
// this is a known constraint of the input grammar.

// bareParam matches `-prefix=value` and returns the raw value.
func bareParam(tok, prefix string) (string, bool) {
	return strings.CutPrefix(tok, prefix)
}

// quotedParam matches `-prefix="value"` and returns the unquoted value.
func quotedParam(tok, prefix string) (string, bool) {
	rest, ok := strings.CutPrefix(tok, prefix+`"`)
	if !ok || len(rest) < 1 || rest[len(rest)-1] != '"' {
		return "", false
	}
	return rest[:len(rest)-1], true
}

// parseQuantity converts a validQuantity token. The validator bounds
// the token to 10 digits, so the conversion cannot overflow.
func parseQuantity(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		panic("parseQuantity on unvalidated token: " + s)
	}
	return n
}
