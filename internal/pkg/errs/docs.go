// Package errs defines the error kinds shared by the domain, the use cases and
// the adapters.
//
// Every kind has a sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrValueIsRequired, ErrNotAuthorized, ErrConflict) and
// a struct carrying the parameter name and an optional cause. The structs
// unwrap to their sentinel, so callers classify with errors.Is:
//
//	if errors.Is(err, errs.ErrObjectNotFound) {
//		// 404
//	}
//
// NotAuthorizedError and ConflictError also unwrap to their cause, which keeps
// the rule that rejected a request reachable through errors.Is.
package errs
