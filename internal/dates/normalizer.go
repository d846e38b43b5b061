// Package dates turns the date tokens found in access logs and on the command
// line into validated calendar dates.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"timegrid/internal/models"
)

var (
	isoDateRe    = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	apacheDateRe = regexp.MustCompile(`^(\d{1,2})/([A-Za-z]{3,})/(\d{4})$`)
)

var monthNames = [...]string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// Parse accepts "YYYY-MM-DD" and "DD/Mon/YYYY" and returns the date both
// spellings denote, so "2009-12-18" and "18/Dec/2009" are equal.
func Parse(token string) (models.Date, error) {
	token = strings.TrimSpace(token)

	if m := isoDateRe.FindStringSubmatch(token); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return New(year, month, day)
	}

	if m := apacheDateRe.FindStringSubmatch(token); m != nil {
		day, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[3])
		return FromParts(year, m[2], day)
	}

	return models.Date{}, errMalformedDate(token)
}

// FromParts builds a date from a numeric year and day and a month name.
func FromParts(year int, month string, day int) (models.Date, error) {
	m, err := LookupMonth(month)
	if err != nil {
		return models.Date{}, err
	}
	return New(year, int(m), day)
}

// New validates the triple against real month lengths, leap years included.
func New(year, month, day int) (models.Date, error) {
	if month < 1 || month > 12 || day < 1 {
		return models.Date{}, errInvalidDate(day, month, year)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return models.Date{}, errInvalidDate(day, month, year)
	}
	return models.Date{Year: year, Month: time.Month(month), Day: day}, nil
}

// LookupMonth resolves a case-insensitive month name of at least three
// letters ("Dec", "sept", "December").
func LookupMonth(name string) (time.Month, error) {
	lower := strings.ToLower(name)
	if len(lower) >= 3 {
		for i, full := range monthNames {
			if strings.HasPrefix(full, lower) {
				return time.Month(i + 1), nil
			}
		}
	}
	return 0, errUnknownMonth(name)
}
