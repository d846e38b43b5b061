package dates

import (
	"fmt"

	"timegrid/internal/shared/svcerrors"
)

const (
	codeInvalidDate   = "DATE_1000"
	codeUnknownMonth  = "DATE_1001"
	codeMalformedDate = "DATE_1002"
)

// InvalidDateError reports a day/month/year triple that is not a real
// calendar date, such as 31/2/2009.
type InvalidDateError struct {
	Day   int
	Month int
	Year  int
}

func (e *InvalidDateError) Error() string {
	reason := "day is out of range for month"
	if e.Month < 1 || e.Month > 12 {
		reason = "month must be in 1..12"
	}
	return fmt.Sprintf("%d/%d/%d: %s", e.Day, e.Month, e.Year, reason)
}

// UnknownMonthError reports a month name that matches no month.
type UnknownMonthError struct {
	Name string
}

func (e *UnknownMonthError) Error() string {
	return fmt.Sprintf("unknown month %q", e.Name)
}

// MalformedDateError reports a token in neither accepted shape.
type MalformedDateError struct {
	Token string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("unrecognized date %q: expected YYYY-MM-DD or DD/Mon/YYYY", e.Token)
}

// errInvalidDate returns an error for an impossible calendar date.
func errInvalidDate(day, month, year int) *svcerrors.ServiceError {
	cause := &InvalidDateError{Day: day, Month: month, Year: year}
	return svcerrors.NewInvalidArgumentError(codeInvalidDate, cause.Error(), cause)
}

// errUnknownMonth returns an error for an unknown month name.
func errUnknownMonth(name string) *svcerrors.ServiceError {
	cause := &UnknownMonthError{Name: name}
	return svcerrors.NewInvalidArgumentError(codeUnknownMonth, cause.Error(), cause)
}

// errMalformedDate returns an error for a token in no supported shape.
func errMalformedDate(token string) *svcerrors.ServiceError {
	cause := &MalformedDateError{Token: token}
	return svcerrors.NewInvalidArgumentError(codeMalformedDate, cause.Error(), cause)
}
