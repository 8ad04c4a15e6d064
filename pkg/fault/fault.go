package fault

import (
	"errors"
	"fmt"
	"time"
)

// Fault is the canonical failure record shared across services.
//
// Fields:
//   - code:       stable, machine-facing error code (e.g. "NOT_FOUND")
//   - status:     HTTP status code, conventionally within [100,599]
//   - title:      short human-readable summary (client-safe)
//   - detail:     human-readable explanation for this occurrence (client-safe)
//   - data:       optional structured context for clients; never secrets
//   - messageKey: lookup key for localized text; defaults to code
//   - rootCause:  internal diagnostic error; exposed via Unwrap, never to clients
//
// Code, status and message key are set once at construction and never change
// while the fault propagates.
type Fault struct {
	code       string
	status     int
	title      string
	detail     string
	data       any
	messageKey string
	rootCause  error
	occurredAt time.Time
}

// Option configures a Fault during construction.
type Option func(*Fault)

// WithData attaches structured context (an object or a list of objects).
// Map values are defensively cloned so later mutation by the caller cannot
// change the fault.
func WithData(data any) Option {
	return func(f *Fault) { f.data = cloneData(data) }
}

// WithRootCause records the underlying error for internal diagnostics.
// It is returned by Unwrap and surfaced through logging, never serialized
// into a client response.
func WithRootCause(cause error) Option {
	return func(f *Fault) { f.rootCause = cause }
}

// WithMessageKey overrides the localization lookup key. Without it the error
// code is used.
func WithMessageKey(key string) Option {
	return func(f *Fault) { f.messageKey = key }
}

// New builds a Fault with an explicit code/status pair. Prefer the kind
// constructors (BadRequest, NotFound, Internal, ...) so status/code pairings
// stay consistent; New exists for domain codes that have no kind yet.
func New(code string, status int, title, detail string, opts ...Option) *Fault {
	f := &Fault{
		code:       code,
		status:     status,
		title:      title,
		detail:     detail,
		occurredAt: time.Now().UTC(),
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// From converts any error to a *Fault.
//
// Behavior:
//   - nil input => nil output
//   - if err already carries a *Fault in its chain => that fault, as-is
//   - otherwise a 500 INTERNAL_ERROR fault wrapping err as root cause
func From(err error) *Fault {
	if err == nil {
		return nil
	}
	var f *Fault
	if errors.As(err, &f) {
		return f
	}
	return Internal("Internal Server Error", "an unexpected error occurred", WithRootCause(err))
}

// ------ standard error interface

func (f *Fault) Error() string {
	if f == nil {
		return "<nil>"
	}
	if f.rootCause != nil {
		return fmt.Sprintf("%s (%d): %s: %v", f.code, f.status, f.detail, f.rootCause)
	}
	return fmt.Sprintf("%s (%d): %s", f.code, f.status, f.detail)
}

// Unwrap exposes the root cause so errors.Is / errors.As can walk the chain.
func (f *Fault) Unwrap() error {
	if f == nil {
		return nil
	}
	return f.rootCause
}

// Is reports semantic equality by error code only; title, detail, data and
// root cause do not participate.
func (f *Fault) Is(target error) bool {
	if f == nil || target == nil {
		return false
	}
	t, ok := target.(*Fault)
	if !ok || t == nil {
		return false
	}
	return f.code == t.code
}

// ------ getters

func (f *Fault) Code() string   { return f.code }
func (f *Fault) Status() int    { return f.status }
func (f *Fault) Title() string  { return f.title }
func (f *Fault) Detail() string { return f.detail }

// Data returns the structured context. Map values are cloned; the internal
// value is never handed out directly.
func (f *Fault) Data() any { return cloneData(f.data) }

// HasData reports whether structured context is attached.
func (f *Fault) HasData() bool { return f.data != nil }

// MessageKey returns the localization lookup key, falling back to the error
// code when none was set.
func (f *Fault) MessageKey() string {
	if f.messageKey != "" {
		return f.messageKey
	}
	return f.code
}

// OccurredAt returns the construction time of the fault (UTC).
func (f *Fault) OccurredAt() time.Time { return f.occurredAt }

// ------ diagnostics

// Description is a log-safe summary of a fault. It records the presence of
// data and root cause but never the root cause value itself.
type Description struct {
	ErrorCode    string `json:"error_code"`
	Status       int    `json:"status"`
	Title        string `json:"title"`
	Detail       string `json:"detail"`
	HasData      bool   `json:"has_data"`
	HasRootCause bool   `json:"has_root_cause"`
}

// Describe returns the diagnostic summary used for structured logging.
// A nil fault describes as the zero Description.
func (f *Fault) Describe() Description {
	if f == nil {
		return Description{}
	}
	return Description{
		ErrorCode:    f.code,
		Status:       f.status,
		Title:        f.title,
		Detail:       f.detail,
		HasData:      f.data != nil,
		HasRootCause: f.rootCause != nil,
	}
}

// cloneData copies map-shaped data so neither side can mutate the other.
// Slices of maps are cloned element-wise; other values pass through.
func cloneData(data any) any {
	switch v := data.(type) {
	case map[string]any:
		return cloneMap(v)
	case []map[string]any:
		if v == nil {
			return nil
		}
		out := make([]map[string]any, len(v))
		for i, m := range v {
			out[i] = cloneMap(m)
		}
		return out
	default:
		return data
	}
}

func cloneMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		if mv, ok := v.(map[string]any); ok {
			out[k] = cloneMap(mv)
			continue
		}
		out[k] = v
	}
	return out
}
