package logger_test

import (
	"errors"
	"testing"

	"github.com/Goden-Gun/fault-lib/pkg/fault"
	log "github.com/Goden-Gun/fault-lib/pkg/logger"
	"github.com/Goden-Gun/fault-lib/pkg/severity"
)

func TestWithFault_Fields(t *testing.T) {
	f := fault.Internal("Internal error", "query failed",
		fault.WithData(map[string]any{"table": "users"}),
		fault.WithRootCause(errors.New("pq: timeout")))

	entry := log.WithFault(f)

	if got := entry.Data["error_code"]; got != "INTERNAL_ERROR" {
		t.Fatalf("error_code=%v", got)
	}
	if got := entry.Data["status"]; got != 500 {
		t.Fatalf("status=%v", got)
	}
	if got := entry.Data["level"]; got != severity.LevelError {
		t.Fatalf("level=%v", got)
	}
	if got := entry.Data["has_data"]; got != true {
		t.Fatalf("has_data=%v", got)
	}
	if got := entry.Data["root_cause"]; got != "pq: timeout" {
		t.Fatalf("root_cause=%v", got)
	}
}

func TestWithFault_NoRootCauseField(t *testing.T) {
	entry := log.WithFault(fault.NotFound("t", "d"))
	if _, ok := entry.Data["root_cause"]; ok {
		t.Fatalf("root_cause field present without a cause")
	}
}

func TestWithFault_NilFault(t *testing.T) {
	entry := log.WithFault(nil)
	if entry == nil {
		t.Fatalf("WithFault(nil) returned nil entry")
	}
	if len(entry.Data) != 0 {
		t.Fatalf("WithFault(nil) carries fields: %v", entry.Data)
	}
}
