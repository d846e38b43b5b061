package aggregators

import (
	"errors"
	"testing"
	"time"

	"timegrid/internal/models"
	"timegrid/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = models.Date{Year: 2009, Month: time.December, Day: 18}

func seqOf(records ...models.Record) models.RecordSeq {
	return func(yield func(models.Record, error) bool) {
		for _, r := range records {
			if !yield(r, nil) {
				return
			}
		}
	}
}

func at(hour, minute int) models.Record {
	return models.Record{Address: "1.2.3.4", Date: day, Hour: hour, Minute: minute}
}

func TestBucketAggregator_Fold_CountsPerMinute(t *testing.T) {
	t.Parallel()

	aggregator := NewBucketAggregator()

	buckets, err := aggregator.Fold(nil, seqOf(at(16, 17), at(16, 17), at(0, 0), at(23, 59)))
	require.NoError(t, err)

	expected := models.BucketMap{
		{Hour: 16, Minute: 17}: 2,
		{Hour: 0, Minute: 0}:   1,
		{Hour: 23, Minute: 59}: 1,
	}
	assert.Equal(t, expected, buckets)
	assert.Equal(t, int64(0), buckets.Count(12, 0), "absent buckets read as zero")
}

func TestBucketAggregator_Fold_EmptySequence(t *testing.T) {
	t.Parallel()

	buckets, err := NewBucketAggregator().Fold(nil, seqOf())
	require.NoError(t, err)
	assert.NotNil(t, buckets)
	assert.Empty(t, buckets)
}

func TestBucketAggregator_Fold_AddsIntoExisting(t *testing.T) {
	t.Parallel()

	aggregator := NewBucketAggregator()
	existing := models.NewBucketMap()
	existing[models.BucketKey{Hour: 16, Minute: 17}] = 5

	buckets, err := aggregator.Fold(existing, seqOf(at(16, 17), at(1, 2)))
	require.NoError(t, err)

	assert.Equal(t, int64(6), buckets.Count(16, 17))
	assert.Equal(t, int64(1), buckets.Count(1, 2))
	assert.Equal(t, int64(6), existing.Count(16, 17), "existing map is updated in place")

	// a second fold keeps accumulating
	buckets, err = aggregator.Fold(buckets, seqOf(at(16, 17)))
	require.NoError(t, err)
	assert.Equal(t, int64(7), buckets.Count(16, 17))
}

func TestBucketAggregator_Fold_OrderIndependent(t *testing.T) {
	t.Parallel()

	records := []models.Record{at(16, 17), at(3, 4), at(16, 17), at(23, 0), at(3, 4), at(16, 18)}
	aggregator := NewBucketAggregator()

	want, err := aggregator.Fold(nil, seqOf(records...))
	require.NoError(t, err)

	for _, perm := range permutations(records) {
		got, err := aggregator.Fold(nil, seqOf(perm...))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestBucketAggregator_Fold_StopsOnFirstError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	pulledAfterError := false
	seq := func(yield func(models.Record, error) bool) {
		if !yield(at(1, 1), nil) {
			return
		}
		if !yield(models.Record{}, boom) {
			return
		}
		pulledAfterError = true
		yield(at(2, 2), nil)
	}

	buckets, err := NewBucketAggregator().Fold(nil, seq)
	assert.ErrorIs(t, err, boom)
	assert.False(t, pulledAfterError)
	assert.Equal(t, int64(1), buckets.Count(1, 1))
	assert.Equal(t, int64(0), buckets.Count(2, 2))
}

func TestBucketAggregator_Fold_RejectsOutOfRangeBucket(t *testing.T) {
	t.Parallel()

	_, err := NewBucketAggregator().Fold(nil, seqOf(at(24, 0)))
	require.Error(t, err)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeInternalInvalidBucket, svcErr.Code)
	assert.True(t, svcErr.IsInternalError())
}

func permutations(records []models.Record) [][]models.Record {
	if len(records) <= 1 {
		return [][]models.Record{append([]models.Record(nil), records...)}
	}
	var out [][]models.Record
	for i := range records {
		rest := make([]models.Record, 0, len(records)-1)
		rest = append(rest, records[:i]...)
		rest = append(rest, records[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]models.Record{records[i]}, p...))
		}
	}
	return out
}
