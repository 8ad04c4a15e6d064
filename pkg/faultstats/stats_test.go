package faultstats_test

import (
	"testing"
	"time"

	"github.com/Goden-Gun/fault-lib/pkg/fault"
	"github.com/Goden-Gun/fault-lib/pkg/faultstats"
	"github.com/Goden-Gun/fault-lib/pkg/severity"
)

func TestAggregate_Empty(t *testing.T) {
	t.Parallel()

	stats := faultstats.Aggregate(nil)
	if stats.Total != 0 {
		t.Fatalf("Total=%d want=0", stats.Total)
	}
	if len(stats.ByLevel) != 0 || len(stats.ByErrorCode) != 0 || len(stats.ByStatus) != 0 {
		t.Fatalf("mappings not empty: %+v", stats)
	}
	if stats.TimeRange.Start != "" || stats.TimeRange.End != "" {
		t.Fatalf("TimeRange=%+v want empty", stats.TimeRange)
	}

	alsoEmpty := faultstats.Aggregate([]*fault.Fault{})
	if alsoEmpty.Total != 0 {
		t.Fatalf("Total=%d want=0 for empty slice", alsoEmpty.Total)
	}
}

func TestAggregate_CountsByLevelCodeAndStatus(t *testing.T) {
	t.Parallel()

	batch := []*fault.Fault{
		fault.Internal("a", "a"),
		fault.NotFound("b", "b"),
		fault.NotFound("c", "c"),
	}
	stats := faultstats.Aggregate(batch)

	if stats.Total != 3 {
		t.Fatalf("Total=%d want=3", stats.Total)
	}
	if stats.ByLevel[severity.LevelError] != 1 || stats.ByLevel[severity.LevelWarn] != 2 {
		t.Fatalf("ByLevel=%v", stats.ByLevel)
	}
	if stats.ByStatus[500] != 1 || stats.ByStatus[404] != 2 {
		t.Fatalf("ByStatus=%v", stats.ByStatus)
	}
	if stats.ByErrorCode["INTERNAL_ERROR"] != 1 || stats.ByErrorCode["NOT_FOUND"] != 2 {
		t.Fatalf("ByErrorCode=%v", stats.ByErrorCode)
	}
}

func TestAggregate_TimeRangeSpansOccurrences(t *testing.T) {
	t.Parallel()

	first := fault.BadRequest("a", "a")
	time.Sleep(5 * time.Millisecond)
	last := fault.Internal("b", "b")

	stats := faultstats.Aggregate([]*fault.Fault{last, first})

	start, err := time.Parse(time.RFC3339, stats.TimeRange.Start)
	if err != nil {
		t.Fatalf("Start not RFC3339: %v", err)
	}
	end, err := time.Parse(time.RFC3339, stats.TimeRange.End)
	if err != nil {
		t.Fatalf("End not RFC3339: %v", err)
	}
	if end.Before(start) {
		t.Fatalf("end %v before start %v", end, start)
	}
	// Second-resolution formatting must still bound the actual occurrence times.
	if first.OccurredAt().Truncate(time.Second).Before(start.Add(-time.Second)) {
		t.Fatalf("start %v does not cover first occurrence %v", start, first.OccurredAt())
	}
	if last.OccurredAt().After(end.Add(time.Second)) {
		t.Fatalf("end %v does not cover last occurrence %v", end, last.OccurredAt())
	}
}

func TestAggregate_SkipsNilRecords(t *testing.T) {
	t.Parallel()

	stats := faultstats.Aggregate([]*fault.Fault{nil, fault.NotFound("a", "a"), nil})
	if stats.Total != 1 {
		t.Fatalf("Total=%d want=1", stats.Total)
	}
}
