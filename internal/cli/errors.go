package cli

import (
	"timegrid/internal/shared/svcerrors"
)

const (
	codeInvalidFlag  = "CLI_1000"
	codeNoInputFiles = "CLI_1001"

	codeInternalServerFailed = "CLI_9000"
)

// errInvalidFlag returns an error for flags that cannot be parsed.
func errInvalidFlag(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidFlag, cause.Error(), cause)
}

// errNoInputFiles returns an error when no log file was given.
func errNoInputFiles() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeNoInputFiles, "please specify at least one log file", nil)
}

// errServerFailed returns an error when the HTTP server stops unexpectedly.
func errServerFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalServerFailed, cause)
}
