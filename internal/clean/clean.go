// Package clean provides field sanitizers for raw sales-export values.
//
// These functions handle the messy reality of the export:
//   - Currency strings with symbols and thousands separators ("₹1,299.00")
//   - Counts with embedded commas ("24,269")
//   - Discount percentages with a trailing "%"
//   - Ratings polluted by a stray "|" artifact
//   - Reviewer names that are placeholders or garbage ("*", "123", "")
//
// All sanitizers are total: any unparsable input maps to a safe default
// rather than an error, so one bad cell never aborts a run.
package clean

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultUserName replaces reviewer names that fail sanitization.
const DefaultUserName = "Amazon Customer"

// Currency strips every character that is not a digit or decimal point and
// parses the remainder as a float. Returns 0 for empty or unparsable input
// (including strings with multiple decimal points). Negative results are
// clamped to 0; note that the digit/point filter removes sign characters,
// so "-50" becomes 50, not -50.
func Currency(value string) float64 {
	var b strings.Builder
	for _, r := range value {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return math.Max(0, v)
}

// Int strips every non-digit character and parses the remainder as an
// integer. Returns 0 for empty or unparsable input.
func Int(value string) int {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return v
}

// Percent parses a discount percentage, tolerating a "%" suffix.
// Returns 0 for empty or unparsable input.
func Percent(value string) float64 {
	s := strings.TrimSpace(strings.ReplaceAll(value, "%", ""))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// Rating parses a product rating, removing the "|" artifact present in some
// export rows, and clamps the result to [0, 5]. Returns 0 for empty or
// unparsable input.
func Rating(value string) float64 {
	s := strings.TrimSpace(strings.ReplaceAll(value, "|", ""))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return math.Max(0, math.Min(5, v))
}

// UserName sanitizes a reviewer name. The trimmed name must be at least two
// characters long and contain at least one ASCII letter; anything else
// (placeholders like "*", bare numbers, empty cells) maps to DefaultUserName.
// Legitimate short names with letters ("Jo", "Al3x") pass unchanged.
func UserName(raw string) string {
	name := strings.TrimSpace(raw)

	if utf8.RuneCountInString(name) < 2 {
		return DefaultUserName
	}

	hasLetter := false
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return DefaultUserName
	}

	return name
}

// Truncate limits s to at most n characters (runes, not bytes, so
// multi-byte text is never cut mid-character).
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// Round2 rounds to two decimal places, used for monetary amounts.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to one decimal place, used for synthetic average ratings.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
