package bookstore

import "strings"

// Field validators for the command protocol. They check shape only;
// value constraints (positive quantity, stock bounds, and so on) belong
// to the command handlers.

// visible reports whether every byte of s is printable ASCII (no space).
func visible(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 33 || s[i] > 126 {
			return false
		}
	}
	return true
}

func wordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

// validUserID accepts 1 to 30 characters of [A-Za-z0-9_].
func validUserID(s string) bool {
	if s == "" || len(s) > 30 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !wordChar(s[i]) {
			return false
		}
	}
	return true
}

// validPassword shares the user-id alphabet and length.
func validPassword(s string) bool { return validUserID(s) }

// validUserName accepts 1 to 30 visible ASCII characters.
func validUserName(s string) bool {
	return s != "" && len(s) <= 30 && visible(s)
}

// validISBN accepts 1 to 20 visible ASCII characters.
func validISBN(s string) bool {
	return s != "" && len(s) <= 20 && visible(s)
}

// validBookString accepts 1 to 60 visible ASCII characters excluding
// the quote used by the argument grammar.
func validBookString(s string) bool {
	return s != "" && len(s) <= 60 && visible(s) && !strings.ContainsRune(s, '"')
}

// validKeywordList accepts a pipe-delimited keyword list: 60 characters
// total at most, every keyword non-empty, unique within the list, and a
// valid book string.
func validKeywordList(s string) bool {
	if s == "" || len(s) > 60 {
		return false
	}
	seen := make(map[string]struct{})
	for _, kw := range strings.Split(s, "|") {
		if kw == "" || !visible(kw) || strings.ContainsRune(kw, '"') {
			return false
		}
		if _, dup := seen[kw]; dup {
			return false
		}
		seen[kw] = struct{}{}
	}
	return true
}

// validQuantity accepts an unsigned decimal integer of up to 10 digits
// with no leading zero.
func validQuantity(s string) bool {
	if s == "" || len(s) > 10 {
		return false
	}
	if s[0] == '0' && len(s) > 1 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// validPrice accepts up to 13 characters of digits with at most one
// interior decimal point.
func validPrice(s string) bool {
	if s == "" || len(s) > 13 {
		return false
	}
	dot := strings.IndexByte(s, '.')
	if dot == 0 || dot == len(s)-1 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if i == dot {
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
