package problem

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Goden-Gun/fault-lib/pkg/fault"
)

// ContentType is the media type for problem details payloads (RFC 7807 §3).
const ContentType = "application/problem+json"

// WriteHTTP serializes a translated Response to w. Routing and filter wiring
// stay with the surrounding transport layer; this is only the hand-off.
func WriteHTTP(w http.ResponseWriter, resp Response) error {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(resp.Status)
	return json.NewEncoder(w).Encode(resp)
}

// WriteFault translates f and writes it in one step. An empty requestID is
// replaced with a fresh UUID so every occurrence stays addressable.
func WriteFault(w http.ResponseWriter, f *fault.Fault, requestID string, opts ...Option) error {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return WriteHTTP(w, Translate(f, requestID, opts...))
}
