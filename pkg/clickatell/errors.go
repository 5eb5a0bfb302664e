package clickatell

import (
	"errors"
	"fmt"
)

const (
	ErrCodeInvalidArgument = "INVALID_ARGUMENT"
	ErrCodeTimeout         = "TIMEOUT"
	ErrCodeNetworkError    = "NETWORK_ERROR"
	ErrCodeNoMessageID     = "NO_MESSAGE_ID"
)

var (
	// ErrInvalidArgument reports a missing or inconsistent input. No request
	// is issued when it is returned.
	ErrInvalidArgument = errors.New(ErrCodeInvalidArgument)

	// ErrTimeout reports that the call exceeded the configured timeout or the
	// caller's context was cancelled.
	ErrTimeout = errors.New(ErrCodeTimeout)

	// ErrNetwork reports a transport-level failure (DNS, connect, TLS, read).
	ErrNetwork = errors.New(ErrCodeNetworkError)

	// ErrNoMessageID reports that a send response carried no extractable
	// message identifier.
	ErrNoMessageID = errors.New(ErrCodeNoMessageID)
)

// ErrSessionClosed reports use of a client after Close. It matches
// ErrInvalidArgument under errors.Is.
var ErrSessionClosed = fmt.Errorf("%w: session is closed", ErrInvalidArgument)
