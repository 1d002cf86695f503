package auth

import "strings"

// NormalizePhone reduces a raw phone number to its canonical E.164-like form:
// a leading plus followed by 8-15 digits. Spaces, dashes and parentheses are
// stripped; anything else is rejected.
func NormalizePhone(raw string) (string, bool) {
	var b strings.Builder
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			// leading plus handled below
		case r == ' ' || r == '-' || r == '(' || r == ')':
			// separators dropped
		default:
			return "", false
		}
	}

	digits := b.String()
	if len(digits) < 8 || len(digits) > 15 {
		return "", false
	}
	return "+" + digits, true
}
