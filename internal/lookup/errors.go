package lookup

import (
	"errors"
	"fmt"
)

// ErrTransport matches every failure to complete a lookup. A code the
// directory reports as absent is not an error.
var ErrTransport = errors.New("postal lookup transport failure")

// Kind classifies a transport failure.
type Kind string

const (
	// KindTimeout means the directory did not answer within the timeout.
	KindTimeout Kind = "timeout"
	// KindUnreachable means the request could not be delivered.
	KindUnreachable Kind = "unreachable"
	// KindBadStatus means the directory answered with a non-2xx status.
	KindBadStatus Kind = "bad_status"
	// KindMalformed means the response body could not be read or decoded.
	KindMalformed Kind = "malformed"
	// KindRequest means the outbound request could not be built.
	KindRequest Kind = "request"
)

// Error carries the kind of transport failure and, for KindBadStatus, the
// HTTP status that was returned.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("postal lookup [%s]: %s", e.Kind, e.Message)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrTransport) true for every *Error.
func (e *Error) Is(target error) bool {
	return target == ErrTransport
}

// KindOf extracts the failure kind, or "" when err is not a lookup error.
func KindOf(err error) Kind {
	var le *Error
	if errors.As(err, &le) {
		return le.Kind
	}
	return ""
}

func newError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}
