package models

// DateSelection is the resolved date selector of a run: one calendar date,
// or every date in the input.
type DateSelection struct {
	All  bool
	Date Date
}

func AllDates() DateSelection {
	return DateSelection{All: true}
}

func SingleDate(d Date) DateSelection {
	return DateSelection{Date: d}
}

// Label is the human-readable form used in the report banner.
func (s DateSelection) Label() string {
	if s.All {
		return "all days"
	}
	return s.Date.String()
}

// MarshalText encodes the selection as its label.
func (s DateSelection) MarshalText() ([]byte, error) {
	return []byte(s.Label()), nil
}
