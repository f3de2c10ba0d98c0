// Package api is the gateway to the BlogIt backend REST service.
//
// It centralizes base-URL resolution, path-prefix configuration, and
// bearer-token injection so no call site duplicates that logic. All
// failures are surfaced as tagged *Error values; the package never
// retries and never recovers locally.
package api
