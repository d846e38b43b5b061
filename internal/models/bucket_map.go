package models

import "fmt"

const (
	HoursPerDay    = 24
	MinutesPerHour = 60
)

// BucketKey identifies one minute of the day.
type BucketKey struct {
	Hour   int
	Minute int
}

func (k BucketKey) String() string {
	return fmt.Sprintf("%02d:%02d", k.Hour, k.Minute)
}

// MarshalText lets a BucketMap encode as a JSON object keyed by "HH:MM".
func (k BucketKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// BucketMap counts requests per minute of the day. Missing keys count as zero.
type BucketMap map[BucketKey]int64

func NewBucketMap() BucketMap {
	return make(BucketMap)
}

// Count returns the number of requests seen in the given minute.
func (b BucketMap) Count(hour, minute int) int64 {
	return b[BucketKey{Hour: hour, Minute: minute}]
}

// Total returns the sum of all bucket counts.
func (b BucketMap) Total() int64 {
	var total int64
	for _, n := range b {
		total += n
	}
	return total
}

// Active returns the number of buckets with at least one request.
func (b BucketMap) Active() int {
	active := 0
	for _, n := range b {
		if n > 0 {
			active++
		}
	}
	return active
}

// Busiest returns the bucket with the highest count, earliest minute first on
// ties. ok is false when the map has no requests.
func (b BucketMap) Busiest() (key BucketKey, count int64, ok bool) {
	for h := 0; h < HoursPerDay; h++ {
		for m := 0; m < MinutesPerHour; m++ {
			if n := b.Count(h, m); n > count {
				key, count, ok = BucketKey{Hour: h, Minute: m}, n, true
			}
		}
	}
	return key, count, ok
}
