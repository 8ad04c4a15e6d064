// Package fault defines the shared failure contract for GGA family services.
//
// Every failure is represented by a Fault: a stable machine-readable error
// code, an HTTP status, human-readable title/detail text and optional
// structured data. Faults are constructed at the point of failure through one
// of the kind constructors (BadRequest, NotFound, Internal, ...) and
// propagated unchanged up the call stack; translation to a client-facing
// payload happens once, at the boundary, via the problem package.
//
// Example usage:
//
//	func (s *Store) Load(id string) (*User, error) {
//	    u, ok := s.users[id]
//	    if !ok {
//	        return nil, fault.NotFound("User not found",
//	            fmt.Sprintf("the user with ID %q does not exist", id),
//	            fault.WithData(map[string]any{"userId": id}))
//	    }
//	    return u, nil
//	}
package fault
