package fault

import "net/http"

// Kind pins a stable error code, HTTP status and message key for one failure
// class. Fixing the triple at the kind level keeps status/code pairings
// consistent across services: a call site cannot raise "not found" with
// status 500.
type Kind struct {
	Code       string
	Status     int
	MessageKey string
}

var (
	// KindBadRequest indicates malformed or invalid request data.
	KindBadRequest = Kind{Code: "BAD_REQUEST", Status: http.StatusBadRequest, MessageKey: "BAD_REQUEST"}
	// KindUnauthorized indicates missing or failed authentication.
	KindUnauthorized = Kind{Code: "UNAUTHORIZED", Status: http.StatusUnauthorized, MessageKey: "UNAUTHORIZED"}
	// KindForbidden indicates the caller lacks capability.
	KindForbidden = Kind{Code: "FORBIDDEN", Status: http.StatusForbidden, MessageKey: "FORBIDDEN"}
	// KindNotFound indicates the target entity does not exist or is inaccessible.
	KindNotFound = Kind{Code: "NOT_FOUND", Status: http.StatusNotFound, MessageKey: "NOT_FOUND"}
	// KindConflict indicates a state conflict with an existing entity.
	KindConflict = Kind{Code: "CONFLICT", Status: http.StatusConflict, MessageKey: "CONFLICT"}
	// KindRateLimited indicates rate limiting.
	KindRateLimited = Kind{Code: "RATE_LIMITED", Status: http.StatusTooManyRequests, MessageKey: "RATE_LIMITED"}
	// KindInternal indicates an unexpected server-side failure.
	KindInternal = Kind{Code: "INTERNAL_ERROR", Status: http.StatusInternalServerError, MessageKey: "INTERNAL_ERROR"}
	// KindUnavailable indicates a dependency or the service itself is unavailable.
	KindUnavailable = Kind{Code: "UNAVAILABLE", Status: http.StatusServiceUnavailable, MessageKey: "UNAVAILABLE"}
)

// Registry exposes a static list of the baseline kinds for validation or docs.
var Registry = []Kind{
	KindBadRequest,
	KindUnauthorized,
	KindForbidden,
	KindNotFound,
	KindConflict,
	KindRateLimited,
	KindInternal,
	KindUnavailable,
}

// NewKind builds a Fault pinned to the kind's code and status. The kind's
// message key is the default; WithMessageKey still overrides it.
// Domain-specific kinds follow the same pattern as the baseline set.
func NewKind(k Kind, title, detail string, opts ...Option) *Fault {
	f := New(k.Code, k.Status, title, detail, opts...)
	if f.messageKey == "" {
		f.messageKey = k.MessageKey
	}
	return f
}

// BadRequest builds a 400 BAD_REQUEST fault.
func BadRequest(title, detail string, opts ...Option) *Fault {
	return NewKind(KindBadRequest, title, detail, opts...)
}

// Unauthorized builds a 401 UNAUTHORIZED fault.
func Unauthorized(title, detail string, opts ...Option) *Fault {
	return NewKind(KindUnauthorized, title, detail, opts...)
}

// Forbidden builds a 403 FORBIDDEN fault.
func Forbidden(title, detail string, opts ...Option) *Fault {
	return NewKind(KindForbidden, title, detail, opts...)
}

// NotFound builds a 404 NOT_FOUND fault.
func NotFound(title, detail string, opts ...Option) *Fault {
	return NewKind(KindNotFound, title, detail, opts...)
}

// Conflict builds a 409 CONFLICT fault.
func Conflict(title, detail string, opts ...Option) *Fault {
	return NewKind(KindConflict, title, detail, opts...)
}

// RateLimited builds a 429 RATE_LIMITED fault.
func RateLimited(title, detail string, opts ...Option) *Fault {
	return NewKind(KindRateLimited, title, detail, opts...)
}

// Internal builds a 500 INTERNAL_ERROR fault.
func Internal(title, detail string, opts ...Option) *Fault {
	return NewKind(KindInternal, title, detail, opts...)
}

// Unavailable builds a 503 UNAVAILABLE fault.
func Unavailable(title, detail string, opts ...Option) *Fault {
	return NewKind(KindUnavailable, title, detail, opts...)
}
