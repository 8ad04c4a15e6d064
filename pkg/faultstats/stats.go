// Package faultstats aggregates collections of faults for monitoring.
//
// Aggregate is a pure computation over a snapshot of fault records; Collector
// adds a mutex-guarded accumulator for services that gather faults
// continuously and snapshot counts periodically.
package faultstats

import (
	"time"

	"github.com/Goden-Gun/fault-lib/pkg/fault"
	"github.com/Goden-Gun/fault-lib/pkg/severity"
)

// TimeRange bounds the occurrence times of an aggregated batch, RFC 3339
// formatted. Both fields are empty for an empty batch.
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Stats summarizes a batch of faults. Built once per Aggregate call; it has
// no lifecycle beyond that.
type Stats struct {
	Total       int                    `json:"total"`
	ByLevel     map[severity.Level]int `json:"by_level"`
	ByErrorCode map[string]int         `json:"by_error_code"`
	ByStatus    map[int]int            `json:"by_status"`
	TimeRange   TimeRange              `json:"time_range"`
}

// Aggregate computes counts by severity tier, error code and status over the
// given faults. The time range spans the earliest and latest occurrence
// times in the batch. Empty (or all-nil) input yields zero totals, empty
// mappings and an empty time range.
func Aggregate(faults []*fault.Fault) Stats {
	stats := Stats{
		ByLevel:     make(map[severity.Level]int),
		ByErrorCode: make(map[string]int),
		ByStatus:    make(map[int]int),
	}

	var start, end time.Time
	for _, f := range faults {
		if f == nil {
			continue
		}
		stats.Total++
		stats.ByLevel[severity.Classify(f.Status())]++
		stats.ByErrorCode[f.Code()]++
		stats.ByStatus[f.Status()]++

		at := f.OccurredAt()
		if start.IsZero() || at.Before(start) {
			start = at
		}
		if at.After(end) {
			end = at
		}
	}

	if stats.Total > 0 {
		stats.TimeRange = TimeRange{
			Start: start.Format(time.RFC3339),
			End:   end.Format(time.RFC3339),
		}
	}
	return stats
}
