package domain

import (
	"strings"
	"time"
)

// Stored date fields appear in two textual layouts depending on when the
// record was entered. Every date-reading path goes through ParseDate or
// BirthYear so the two layouts are handled identically everywhere.
var dateLayouts = []string{"2006-01-02", "02/01/2006"}

// ParseDate parses a stored date string in either YYYY-MM-DD or DD/MM/YYYY
// form. The second return value is false when the string is empty or matches
// neither layout.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// BirthYear extracts the year component from a stored birth date. It falls
// back to scanning the separator-delimited tokens for a four-digit year when
// the full date does not parse, so partially-entered dates still yield an
// age. Returns 0 when no year can be found.
func BirthYear(s string) int {
	if t, ok := ParseDate(s); ok {
		return t.Year()
	}
	for _, tok := range strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '/' }) {
		if len(tok) == 4 {
			if y := atoi4(tok); y > 0 {
				return y
			}
		}
	}
	return 0
}

// Age computes a whole-year age from the birth-date string: the difference
// between the current year and the birth year. Records without a parseable
// birth year report age 0, which matches no age bucket.
func Age(birthDate string, now time.Time) int {
	y := BirthYear(birthDate)
	if y == 0 {
		return 0
	}
	age := now.Year() - y
	if age < 0 {
		return 0
	}
	return age
}

func atoi4(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
