package parsers

import (
	"fmt"

	"timegrid/internal/models"
	"timegrid/internal/shared/svcerrors"
)

const (
	codeUnsupportedFormat = "PARSE_1000"
)

// errUnsupportedFormat returns an error for a log format without a parser.
func errUnsupportedFormat(format models.LogFormat) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnsupportedFormat, fmt.Sprintf("unsupported log format: %q", format), nil)
}
