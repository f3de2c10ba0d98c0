package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies API failures so callers can branch on the category
// without inspecting raw HTTP status codes.
type Kind string

const (
	// KindTransport covers network-level failures: connection refused,
	// DNS errors, a timeout imposed by the operating system.
	KindTransport Kind = "transport"
	// KindAuth covers 401: invalid credentials, or an expired/missing token.
	KindAuth Kind = "auth"
	// KindAuthorization covers 403: authenticated but not the resource owner.
	KindAuthorization Kind = "authorization"
	// KindValidation covers 400/422: malformed input, duplicate
	// username/email, field length violations.
	KindValidation Kind = "validation"
	// KindNotFound covers 404.
	KindNotFound Kind = "not_found"
	// KindServer covers 5xx and any response the client cannot interpret,
	// including bodies that fail to deserialize into the expected schema.
	KindServer Kind = "server"
)

// Error is the tagged error every Client operation returns on failure.
// HTTPStatus is zero for transport failures that never produced a response.
type Error struct {
	Kind       Kind
	HTTPStatus int
	Message    string
}

func (e *Error) Error() string {
	if e.HTTPStatus == 0 {
		return fmt.Sprintf("api: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("api: %s (%d): %s", e.Kind, e.HTTPStatus, e.Message)
}

// Is matches any *Error with the same Kind, so sentinel-style checks work:
//
//	errors.Is(err, &api.Error{Kind: api.KindAuth})
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, k Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == k
}

// IsAuth reports whether err is a 401-class error (invalid or expired
// credentials). Callers treat it as a signal to return to the login view.
func IsAuth(err error) bool { return IsKind(err, KindAuth) }

// IsAuthorization reports whether err is a 403-class ownership rejection.
func IsAuthorization(err error) bool { return IsKind(err, KindAuthorization) }

// IsValidation reports whether err is a 400/422-class input rejection.
func IsValidation(err error) bool { return IsKind(err, KindValidation) }

// IsNotFound reports whether err is a 404.
func IsNotFound(err error) bool { return IsKind(err, KindNotFound) }

// IsTransport reports whether err is a network-level failure.
func IsTransport(err error) bool { return IsKind(err, KindTransport) }

func transportError(err error) *Error {
	return &Error{Kind: KindTransport, Message: err.Error()}
}

func serverError(status int, msg string) *Error {
	return &Error{Kind: KindServer, HTTPStatus: status, Message: msg}
}

// classify maps a non-2xx response to the error taxonomy. The backend's
// message is carried through verbatim so forms can show field-level text.
func classify(status int, msg string) *Error {
	var kind Kind
	switch {
	case status == http.StatusUnauthorized:
		kind = KindAuth
	case status == http.StatusForbidden:
		kind = KindAuthorization
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		kind = KindValidation
	case status == http.StatusNotFound:
		kind = KindNotFound
	default:
		kind = KindServer
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &Error{Kind: kind, HTTPStatus: status, Message: msg}
}
