// Package filters holds order-preserving transforms over record sequences.
// Errors from the input sequence are passed through untouched.
package filters

import (
	"strings"

	"timegrid/internal/models"
)

const (
	filterDate    = "date"
	filterAddress = "address"
	filterAgent   = "agent"
)

// ByDate keeps the records logged on date.
func ByDate(seq models.RecordSeq, date models.Date) models.RecordSeq {
	return keep(seq, filterDate, func(r models.Record) bool {
		return r.Date == date
	})
}

// ExcludeAddresses drops records whose address equals one of addresses.
// With no addresses, seq is returned as-is.
func ExcludeAddresses(seq models.RecordSeq, addresses []string) models.RecordSeq {
	if len(addresses) == 0 {
		return seq
	}
	excluded := make(map[string]struct{}, len(addresses))
	for _, addr := range addresses {
		excluded[addr] = struct{}{}
	}
	return keep(seq, filterAddress, func(r models.Record) bool {
		_, drop := excluded[r.Address]
		return !drop
	})
}

// ExcludeAgents drops records whose agent contains one of substrings.
// Records without an agent field are always kept. With no substrings, seq
// is returned as-is.
func ExcludeAgents(seq models.RecordSeq, substrings []string) models.RecordSeq {
	if len(substrings) == 0 {
		return seq
	}
	return keep(seq, filterAgent, func(r models.Record) bool {
		if !r.HasAgent {
			return true
		}
		for _, sub := range substrings {
			if strings.Contains(r.Agent, sub) {
				return false
			}
		}
		return true
	})
}

// Tap calls fn for every record passing through, without altering the sequence.
func Tap(seq models.RecordSeq, fn func(models.Record)) models.RecordSeq {
	return func(yield func(models.Record, error) bool) {
		for record, err := range seq {
			if err == nil {
				fn(record)
			}
			if !yield(record, err) {
				return
			}
		}
	}
}

func keep(seq models.RecordSeq, name string, pred func(models.Record) bool) models.RecordSeq {
	dropped := metricRecordsDroppedTotal.WithLabelValues(name)
	return func(yield func(models.Record, error) bool) {
		for record, err := range seq {
			if err == nil && !pred(record) {
				dropped.Inc()
				continue
			}
			if !yield(record, err) {
				return
			}
		}
	}
}
