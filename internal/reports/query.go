package reports

import (
	"strings"
	"time"

	"timegrid/internal/dates"
	"timegrid/internal/models"
	"timegrid/internal/shared/svcerrors"
)

// Query describes one report: which files to read, which day to keep and
// which requests to leave out.
type Query struct {
	Paths            []string `validate:"required,min=1"`
	Selection        models.DateSelection
	ExcludeAddresses []string
	ExcludeAgents    []string
}

// ResolveDateSelection turns the date options into a selection. An empty
// selector without all means the local calendar date of now.
func ResolveDateSelection(selector string, all bool, now time.Time) (models.DateSelection, error) {
	selector = strings.TrimSpace(selector)
	if all {
		if selector != "" {
			return models.DateSelection{}, errConflictingDateOptions()
		}
		return models.AllDates(), nil
	}
	if selector == "" {
		return models.SingleDate(models.DateOf(now)), nil
	}

	date, err := dates.Parse(selector)
	if err != nil {
		if _, ok := svcerrors.AsServiceError(err); ok {
			return models.DateSelection{}, err
		}
		return models.DateSelection{}, errInvalidDateOption(selector, err)
	}
	return models.SingleDate(date), nil
}
