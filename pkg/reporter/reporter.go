// Package reporter ships fault events to the platform's monitoring topic.
//
// Reporting is a side channel: the client-facing translation path never
// depends on it, and a report failure never changes the fault itself.
package reporter

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Goden-Gun/fault-lib/pkg/fault"
	"github.com/Goden-Gun/fault-lib/pkg/severity"
	"github.com/Goden-Gun/fault-lib/pkg/tracing"
)

// Event is the JSON record published per reported fault. It carries the
// diagnostic summary only; the root cause value stays in-process.
type Event struct {
	EventID      string         `json:"event_id"`
	Service      string         `json:"service"`
	Instance     string         `json:"instance,omitempty"`
	TraceID      string         `json:"trace_id,omitempty"`
	ErrorCode    string         `json:"error_code"`
	Status       int            `json:"status"`
	Level        severity.Level `json:"level"`
	Title        string         `json:"title"`
	Detail       string         `json:"detail"`
	HasRootCause bool           `json:"has_root_cause"`
	OccurredAt   string         `json:"occurred_at"`
	ReportedAt   string         `json:"reported_at"`
}

// NormalizeEvent fills default fields for Event.
func NormalizeEvent(ev *Event) {
	if ev == nil {
		return
	}
	if ev.EventID == "" {
		ev.EventID = uuid.NewString()
	}
	if ev.ReportedAt == "" {
		ev.ReportedAt = time.Now().UTC().Format(time.RFC3339)
	}
}

// Reporter publishes fault events for a single service.
type Reporter struct {
	producer *Producer
	service  string
}

// New builds a Reporter on top of a connected producer (see
// bootstrap.InitReporter).
func New(producer *Producer, service string) *Reporter {
	return &Reporter{producer: producer, service: service}
}

// Report publishes one fault event, keyed by error code so a partition holds
// a contiguous view per failure kind. instance is the caller-supplied request
// identifier, same value that goes into the translated response.
func (r *Reporter) Report(ctx context.Context, f *fault.Fault, instance string) error {
	if r == nil || r.producer == nil {
		return errors.New("fault reporter not initialized")
	}
	if f == nil {
		return nil
	}

	d := f.Describe()
	ev := Event{
		Service:      r.service,
		Instance:     instance,
		TraceID:      tracing.TraceID(ctx),
		ErrorCode:    d.ErrorCode,
		Status:       d.Status,
		Level:        severity.Classify(d.Status),
		Title:        d.Title,
		Detail:       d.Detail,
		HasRootCause: d.HasRootCause,
		OccurredAt:   f.OccurredAt().Format(time.RFC3339),
	}
	NormalizeEvent(&ev)

	value, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return r.producer.Publish(ctx, []byte(ev.ErrorCode), value)
}
