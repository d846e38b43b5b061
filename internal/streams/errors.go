package streams

import (
	"fmt"

	"timegrid/internal/shared/svcerrors"
)

const (
	codeFileAccess       = "STREAM_1000"
	codeFileRead         = "STREAM_1001"
	codeInvalidTimestamp = "STREAM_1002"
)

// errFileAccess returns an error when a log file cannot be opened.
func errFileAccess(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewFileAccessError(codeFileAccess, fmt.Sprintf("cannot open log file %s: %v", path, cause), cause)
}

// errFileRead returns an error when reading an opened log file fails midway.
func errFileRead(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewFileAccessError(codeFileRead, fmt.Sprintf("cannot read log file %s: %v", path, cause), cause)
}
