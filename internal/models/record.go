package models

import "iter"

// Record is one request extracted from an access log line.
//
// Example source line (combined format):
//
//	1.2.3.4 - - [18/Dec/2009:16:17:18 +0100] "GET /url HTTP/1.1" 200 1000 "http://referrer" "curl/7.0"
//
// yields Address "1.2.3.4", Date 2009-12-18, Hour 16, Minute 17, Agent "curl/7.0", HasAgent true.
// Seconds and the UTC offset are not kept.
type Record struct {
	Address  string
	Date     Date
	Hour     int
	Minute   int
	Agent    string
	HasAgent bool
}

// Bucket returns the minute slot the record falls into.
func (r Record) Bucket() BucketKey {
	return BucketKey{Hour: r.Hour, Minute: r.Minute}
}

// RecordSeq is a lazy, single-pass sequence of records. A non-nil error ends
// the sequence.
type RecordSeq = iter.Seq2[Record, error]
