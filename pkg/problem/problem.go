// Package problem translates faults into RFC 7807 "problem details" payloads.
//
// Translate is a pure function: it performs no I/O, cannot fail, and produces
// a fresh Response on every call. The optional Resolver hook supplies
// localized title/detail text; when it yields nothing the fault's own static
// text is used.
package problem

import (
	"github.com/Goden-Gun/fault-lib/pkg/fault"
)

// DefaultType is the problem type used when no documentation URL is configured.
const DefaultType = "about:blank"

// Resolver looks up localized message text for a fault.
//
// It is a consumed capability: configure it once during application
// initialization and treat it as read-only afterwards. field is one of
// FieldTitle or FieldDetail.
type Resolver interface {
	GetMessage(key, field string) (string, bool)
}

// Message fields a Resolver can be queried for.
const (
	FieldTitle  = "title"
	FieldDetail = "detail"
)

// Response is the RFC 7807 wire entity handed to the transport boundary.
// It carries no reference back to the originating fault and is never mutated
// after Translate returns it.
type Response struct {
	Type      string `json:"type"`
	Title     string `json:"title"`
	Detail    string `json:"detail"`
	Status    int    `json:"status"`
	Instance  string `json:"instance"`
	ErrorCode string `json:"errorCode,omitempty"`
	Data      any    `json:"data,omitempty"`
}

// Option adjusts a single Translate call.
type Option func(*settings)

type settings struct {
	resolver         Resolver
	documentationURL string
}

// WithResolver supplies the message resolver for this translation.
func WithResolver(r Resolver) Option {
	return func(s *settings) { s.resolver = r }
}

// WithDocumentationURL sets the problem type URI instead of "about:blank".
func WithDocumentationURL(url string) Option {
	return func(s *settings) { s.documentationURL = url }
}

// Translate converts a fault plus a request identifier into the wire-format
// error object. The fault's root cause is never copied into the response.
func Translate(f *fault.Fault, requestID string, opts ...Option) Response {
	var s settings
	for _, o := range opts {
		o(&s)
	}

	title := f.Title()
	detail := f.Detail()
	if s.resolver != nil {
		key := f.MessageKey()
		if v, ok := s.resolver.GetMessage(key, FieldTitle); ok && v != "" {
			title = v
		}
		if v, ok := s.resolver.GetMessage(key, FieldDetail); ok && v != "" {
			detail = v
		}
	}

	typ := s.documentationURL
	if typ == "" {
		typ = DefaultType
	}

	return Response{
		Type:      typ,
		Title:     title,
		Detail:    detail,
		Status:    f.Status(),
		Instance:  requestID,
		ErrorCode: f.Code(),
		Data:      f.Data(),
	}
}
