package http

import (
	"fmt"

	"timegrid/internal/shared/svcerrors"
)

const (
	codeInvalidQueryParam = "HTTP_1000"
)

// errInvalidQueryParam returns an error when a query parameter cannot be parsed.
func errInvalidQueryParam(name, value string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidQueryParam, fmt.Sprintf("invalid value %q for query parameter %q", value, name), cause)
}
