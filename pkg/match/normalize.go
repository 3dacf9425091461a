package match

import (
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhone reduces a raw phone number to bare digits for exact
// comparison. An 11-digit number starting with 1 sheds the US country code
// (14145551234 and 414-555-1234 compare equal). It reports false when the
// input is empty or contains no digits at all; a phone with no digits is
// treated the same as a missing one.
func NormalizePhone(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	digits := nonDigits.ReplaceAllString(raw, "")
	if digits == "" {
		return "", false
	}
	if len(digits) == 11 && strings.HasPrefix(digits, "1") {
		digits = digits[1:]
	}
	return digits, true
}

// NormalizeEmail lowercases and trims an email address, reporting false
// when nothing remains.
func NormalizeEmail(raw string) (string, bool) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", false
	}
	return email, true
}

// NormalizeName lowercases and trims a name. A missing name normalizes to
// the empty string.
func NormalizeName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
