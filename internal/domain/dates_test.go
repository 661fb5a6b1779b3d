package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate_BothLayouts(t *testing.T) {
	iso, ok := ParseDate("1998-03-15")
	assert.True(t, ok)
	assert.Equal(t, 1998, iso.Year())
	assert.Equal(t, time.March, iso.Month())

	legacy, ok := ParseDate("15/03/1998")
	assert.True(t, ok)
	assert.True(t, iso.Equal(legacy), "both layouts should parse to the same instant")
}

func TestParseDate_Invalid(t *testing.T) {
	for _, s := range []string{"", "  ", "1998", "03-1998", "not a date"} {
		_, ok := ParseDate(s)
		assert.False(t, ok, "should reject %q", s)
	}
}

func TestBirthYear_YearTokenFallback(t *testing.T) {
	assert.Equal(t, 1998, BirthYear("1998-03-15"))
	assert.Equal(t, 1998, BirthYear("15/03/1998"))
	// Partial entries still yield the year component.
	assert.Equal(t, 1998, BirthYear("1998-03"))
	assert.Equal(t, 1998, BirthYear("03/1998"))
	assert.Equal(t, 0, BirthYear("unknown"))
	assert.Equal(t, 0, BirthYear(""))
}

func TestAge_MissingBirthDateIsZero(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 26, Age("1998-03-15", now))
	assert.Equal(t, 0, Age("", now))
	assert.Equal(t, 0, Age("garbled", now))
}
