package aggregators

import (
	"timegrid/internal/models"
)

// BucketAggregator folds records into per-minute request counts.
type BucketAggregator interface {
	// Fold drains seq and adds one count per record into existing, which is
	// returned. A nil existing map starts from an empty one. The first error
	// from seq stops the fold and is returned together with the partial map.
	Fold(existing models.BucketMap, seq models.RecordSeq) (models.BucketMap, error)
}

type bucketAggregator struct{}

func NewBucketAggregator() BucketAggregator {
	return &bucketAggregator{}
}

func (a *bucketAggregator) Fold(existing models.BucketMap, seq models.RecordSeq) (models.BucketMap, error) {
	buckets := existing
	if buckets == nil {
		buckets = models.NewBucketMap()
	}

	var folded int64
	defer func() {
		metricRecordsFoldedTotal.Add(float64(folded))
	}()

	for record, err := range seq {
		if err != nil {
			return buckets, err
		}
		key := record.Bucket()
		if key.Hour < 0 || key.Hour >= models.HoursPerDay || key.Minute < 0 || key.Minute >= models.MinutesPerHour {
			return buckets, errInvalidBucket(key)
		}
		buckets[key]++
		folded++
	}
	return buckets, nil
}
