package problem

import (
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Goden-Gun/fault-lib/pkg/fault"
	"github.com/Goden-Gun/fault-lib/pkg/severity"
)

// ToGRPCStatus adapts a fault for gRPC boundaries. The translated Response is
// attached as a structpb detail so gateway layers can recover the full
// problem payload; the root cause stays behind, same as Translate.
func ToGRPCStatus(f *fault.Fault, requestID string, opts ...Option) *status.Status {
	resp := Translate(f, requestID, opts...)
	st := status.New(grpcCode(resp.Status), resp.Detail)

	detail, err := structpb.NewStruct(map[string]any{
		"type":      resp.Type,
		"title":     resp.Title,
		"detail":    resp.Detail,
		"status":    resp.Status,
		"instance":  resp.Instance,
		"errorCode": resp.ErrorCode,
	})
	if err != nil {
		return st
	}
	if withDetail, err := st.WithDetails(detail); err == nil {
		return withDetail
	}
	return st
}

// grpcCode maps an HTTP status to the closest gRPC code.
func grpcCode(httpStatus int) codes.Code {
	switch httpStatus {
	case http.StatusBadRequest:
		return codes.InvalidArgument
	case http.StatusUnauthorized:
		return codes.Unauthenticated
	case http.StatusForbidden:
		return codes.PermissionDenied
	case http.StatusNotFound:
		return codes.NotFound
	case http.StatusConflict:
		return codes.Aborted
	case http.StatusTooManyRequests:
		return codes.ResourceExhausted
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return codes.DeadlineExceeded
	case http.StatusNotImplemented:
		return codes.Unimplemented
	case http.StatusServiceUnavailable:
		return codes.Unavailable
	}
	switch {
	case severity.IsServerError(httpStatus):
		return codes.Internal
	case severity.IsClientError(httpStatus):
		return codes.InvalidArgument
	default:
		return codes.Unknown
	}
}
