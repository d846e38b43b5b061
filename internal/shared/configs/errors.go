package configs

import (
	"fmt"

	"timegrid/internal/shared/svcerrors"
)

const (
	codeConfigRead    = "CFG_1000"
	codeConfigInvalid = "CFG_1001"
)

// errConfigRead returns an error when a config source cannot be read.
func errConfigRead(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewFileAccessError(codeConfigRead, fmt.Sprintf("failed to read config file %q: %v", path, cause), cause)
}

// errConfigInvalid returns an error when the merged configuration is not usable.
func errConfigInvalid(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeConfigInvalid, msg, cause)
}
