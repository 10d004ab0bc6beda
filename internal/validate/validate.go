package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reCents = regexp.MustCompile(`^[0-9]+$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

// Email reports whether s has local@domain.tld shape. Callers that need the
// "no error yet" state for empty input must check for "" themselves.
func Email(s string) bool {
	return reEmail.MatchString(s)
}

// EmailError returns a displayable message for a bad email, or "" both for a
// valid address and for empty input (no error shown before first input).
func EmailError(s string) string {
	if s == "" || Email(s) {
		return ""
	}
	return "Invalid email format"
}

// PriceCents parses a price entered as a numeral string in cents ("1999" is
// $19.99). Anything non-numeric coerces to zero; nothing is rejected.
func PriceCents(s string) int64 {
	s = strings.TrimSpace(s)
	if !reCents.MatchString(s) {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// ID validates a simple resource identifier (listing/bank/store ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// SupportMessage trims a support question to the 200 character limit the
// compose screen enforces.
func SupportMessage(s string) string {
	if len(s) > 200 {
		return s[:200]
	}
	return s
}

// AllPresent reports whether every value is non-empty, the building block for
// the composite form gates.
func AllPresent(values ...string) bool {
	for _, v := range values {
		if v == "" {
			return false
		}
	}
	return true
}
