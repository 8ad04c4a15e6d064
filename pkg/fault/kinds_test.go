package fault_test

import (
	"testing"

	"github.com/Goden-Gun/fault-lib/pkg/fault"
)

func TestKindConstructors_PinCodeAndStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		build  func(title, detail string, opts ...fault.Option) *fault.Fault
		code   string
		status int
	}{
		{"BadRequest", fault.BadRequest, "BAD_REQUEST", 400},
		{"Unauthorized", fault.Unauthorized, "UNAUTHORIZED", 401},
		{"Forbidden", fault.Forbidden, "FORBIDDEN", 403},
		{"NotFound", fault.NotFound, "NOT_FOUND", 404},
		{"Conflict", fault.Conflict, "CONFLICT", 409},
		{"RateLimited", fault.RateLimited, "RATE_LIMITED", 429},
		{"Internal", fault.Internal, "INTERNAL_ERROR", 500},
		{"Unavailable", fault.Unavailable, "UNAVAILABLE", 503},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := tt.build("some title", "some detail")
			if f.Code() != tt.code {
				t.Fatalf("Code=%q want=%q", f.Code(), tt.code)
			}
			if f.Status() != tt.status {
				t.Fatalf("Status=%d want=%d", f.Status(), tt.status)
			}
			if f.MessageKey() != tt.code {
				t.Fatalf("MessageKey=%q want=%q", f.MessageKey(), tt.code)
			}
			if f.Title() != "some title" || f.Detail() != "some detail" {
				t.Fatalf("title/detail not preserved: %q/%q", f.Title(), f.Detail())
			}
		})
	}
}

func TestRegistry_CodesUniqueAndStatusesValid(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool, len(fault.Registry))
	for _, k := range fault.Registry {
		if k.Code == "" {
			t.Fatalf("registry kind with empty code: %+v", k)
		}
		if seen[k.Code] {
			t.Fatalf("duplicate code in registry: %s", k.Code)
		}
		seen[k.Code] = true
		if k.Status < 100 || k.Status > 599 {
			t.Fatalf("kind %s status %d outside [100,599]", k.Code, k.Status)
		}
		if k.MessageKey == "" {
			t.Fatalf("kind %s missing message key", k.Code)
		}
	}
}

func TestNewKind_MessageKeyOverride(t *testing.T) {
	t.Parallel()

	f := fault.NotFound("Not Found", "the user does not exist",
		fault.WithMessageKey("user.not_found"))
	if got := f.MessageKey(); got != "user.not_found" {
		t.Fatalf("MessageKey=%q, kind default overwrote the explicit key", got)
	}

	// Without an explicit key the kind's default applies.
	if got := fault.NotFound("Not Found", "the user does not exist").MessageKey(); got != "NOT_FOUND" {
		t.Fatalf("default MessageKey=%q, want NOT_FOUND", got)
	}
}

func TestNewKind_DomainSpecificKind(t *testing.T) {
	t.Parallel()

	kindTenantSuspended := fault.Kind{Code: "TENANT_SUSPENDED", Status: 403, MessageKey: "TENANT_SUSPENDED"}
	f := fault.NewKind(kindTenantSuspended, "Tenant suspended", "the tenant is suspended for non-payment")
	if f.Code() != "TENANT_SUSPENDED" || f.Status() != 403 {
		t.Fatalf("domain kind code/status=%q/%d", f.Code(), f.Status())
	}
}
