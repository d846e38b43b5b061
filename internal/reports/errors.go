package reports

import (
	"fmt"

	"timegrid/internal/models"
	"timegrid/internal/shared/svcerrors"
)

const (
	codeNoInputFiles           = "RPT_1000"
	codeNoMatchingFiles        = "RPT_1001"
	codeAgentFilterUnsupported = "RPT_1002"
	codeInvalidInputPath       = "RPT_1003"
	codeMalformedLogLine       = "RPT_1004"
	codeConflictingDateOptions = "RPT_1005"
	codeInvalidDateOption      = "RPT_1006"

	codeInternalCancelled = "RPT_9000"
)

// errNoInputFiles returns an error when no log file was given.
func errNoInputFiles() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeNoInputFiles, "please specify an access log file to parse", nil)
}

// errNoMatchingFiles returns an error when a glob pattern matched nothing.
func errNoMatchingFiles(cause error) *svcerrors.ServiceError {
	return svcerrors.NewFileAccessError(codeNoMatchingFiles, cause.Error(), cause)
}

// errAgentFilterUnsupported returns an error when agent exclusions are given for a format without agents.
func errAgentFilterUnsupported(format models.LogFormat) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeAgentFilterUnsupported,
		fmt.Sprintf("agent exclusions need a format with agents; %q has none", format), nil)
}

// errInvalidInputPath returns an error when an input path or pattern is not usable.
func errInvalidInputPath(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidInputPath, cause.Error(), cause)
}

// errMalformedLogLine returns an error when a log line aborts a strict run.
func errMalformedLogLine(cause error) *svcerrors.ServiceError {
	return svcerrors.NewFileAccessError(codeMalformedLogLine, cause.Error(), cause)
}

// errConflictingDateOptions returns an error when both a date and all days are requested.
func errConflictingDateOptions() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeConflictingDateOptions, "a date and all days cannot be selected together", nil)
}

// errInvalidDateOption returns an error when the date selector cannot be parsed.
func errInvalidDateOption(selector string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidDateOption, fmt.Sprintf("invalid date %q: %v", selector, cause), cause)
}

// errCancelled returns an error when the run was cancelled midway.
func errCancelled(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalCancelled, fmt.Errorf("reportCancelled: %w", cause))
}
