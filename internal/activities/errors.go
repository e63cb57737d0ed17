package activities

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why an API call failed.
type ErrorKind string

const (
	// KindTransport means the request never completed (network failure, aborted fetch).
	KindTransport ErrorKind = "transport"
	// KindMalformed means the server answered with a body that does not match the expected shape.
	KindMalformed ErrorKind = "malformed"
	// KindRejected means the server answered with a non-2xx status.
	KindRejected ErrorKind = "rejected"
)

// ErrMalformedResponse is wrapped by every KindMalformed error.
var ErrMalformedResponse = errors.New("malformed response")

// Error is returned by Client methods.
type Error struct {
	Kind   ErrorKind
	Op     string // "list activities", "signup"
	Status int    // HTTP status, zero for transport failures
	Detail string // server-provided detail for rejected requests, may be empty
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindRejected && e.Detail != "":
		return fmt.Sprintf("%s: %s (status %d): %s", e.Op, e.Kind, e.Status, e.Detail)
	case e.Kind == KindRejected:
		return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Kind, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of an *Error anywhere in err's chain, or "" when there is none.
func KindOf(err error) ErrorKind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

func malformed(op, format string, args ...any) *Error {
	return &Error{
		Kind: KindMalformed,
		Op:   op,
		Err:  fmt.Errorf("%w: %s", ErrMalformedResponse, fmt.Sprintf(format, args...)),
	}
}
