package app

import (
	"fmt"

	"timegrid/internal/shared/svcerrors"
)

const (
	codeOutputWrite     = "APP_1000"
	codeMetricsTextfile = "APP_1001"

	codeInternalInitFailed = "APP_9000"
)

// errOutputWrite returns an error when the report cannot be saved to the output file.
func errOutputWrite(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewFileAccessError(codeOutputWrite, fmt.Sprintf("cannot write report to %s: %v", path, cause), cause)
}

// errMetricsTextfile returns an error when the metrics textfile cannot be written.
func errMetricsTextfile(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewFileAccessError(codeMetricsTextfile, fmt.Sprintf("cannot write metrics textfile %s: %v", path, cause), cause)
}

// errInitFailed returns an error when a dependency cannot be created.
func errInitFailed(component string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalInitFailed, fmt.Errorf("init %s: %w", component, cause))
}
