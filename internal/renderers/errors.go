package renderers

import (
	"fmt"

	"timegrid/internal/models"
	"timegrid/internal/shared/svcerrors"
)

const (
	codeUnsupportedMode = "RND_1000"
	codeWriteFailed     = "RND_9000"
)

// errUnsupportedMode returns an error when the render mode is neither ruler nor plain.
func errUnsupportedMode(mode models.RenderMode) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnsupportedMode, fmt.Sprintf("unsupported render mode %q: expected ruler or plain", mode), nil)
}

// errWriteFailed returns an error when the output cannot be written.
func errWriteFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeWriteFailed, fmt.Errorf("writeFailed: %w", cause))
}
