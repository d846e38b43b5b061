package aggregators

import (
	"fmt"

	"timegrid/internal/models"
	"timegrid/internal/shared/svcerrors"
)

const (
	codeInternalInvalidBucket = "AGG_9000"
)

// errInvalidBucket returns an error when a record points outside the 24x60 grid.
func errInvalidBucket(key models.BucketKey) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalInvalidBucket, fmt.Errorf("invalidBucket: hour=%d minute=%d", key.Hour, key.Minute))
}
