package problem_test

import (
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Goden-Gun/fault-lib/pkg/fault"
	"github.com/Goden-Gun/fault-lib/pkg/problem"
)

func TestToGRPCStatus_CodeMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		f    *fault.Fault
		want codes.Code
	}{
		{fault.BadRequest("t", "d"), codes.InvalidArgument},
		{fault.Unauthorized("t", "d"), codes.Unauthenticated},
		{fault.Forbidden("t", "d"), codes.PermissionDenied},
		{fault.NotFound("t", "d"), codes.NotFound},
		{fault.Conflict("t", "d"), codes.Aborted},
		{fault.RateLimited("t", "d"), codes.ResourceExhausted},
		{fault.Internal("t", "d"), codes.Internal},
		{fault.Unavailable("t", "d"), codes.Unavailable},
		{fault.New("TEAPOT", 418, "t", "d"), codes.InvalidArgument},
		{fault.New("BAD_GATEWAY", 502, "t", "d"), codes.Internal},
	}

	for _, tt := range tests {
		st := problem.ToGRPCStatus(tt.f, "req-1")
		if st.Code() != tt.want {
			t.Fatalf("status %d: grpc code=%v want=%v", tt.f.Status(), st.Code(), tt.want)
		}
	}
}

func TestToGRPCStatus_CarriesProblemDetail(t *testing.T) {
	t.Parallel()

	f := fault.NotFound("User not found", "no such user")
	st := problem.ToGRPCStatus(f, "req-77")

	if st.Message() != "no such user" {
		t.Fatalf("message=%q", st.Message())
	}

	details := st.Details()
	if len(details) != 1 {
		t.Fatalf("details len=%d want=1", len(details))
	}
	s, ok := details[0].(*structpb.Struct)
	if !ok {
		t.Fatalf("detail type=%T want *structpb.Struct", details[0])
	}
	fields := s.GetFields()
	if got := fields["errorCode"].GetStringValue(); got != "NOT_FOUND" {
		t.Fatalf("errorCode=%q", got)
	}
	if got := fields["instance"].GetStringValue(); got != "req-77" {
		t.Fatalf("instance=%q", got)
	}
	if got := fields["status"].GetNumberValue(); got != 404 {
		t.Fatalf("status=%v", got)
	}
}
