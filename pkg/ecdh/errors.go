package ecdh

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPeerValue indicates a peer public value that failed
	// length or curve-membership validation. Recoverable; the
	// negotiation layer should abort the exchange rather than retry
	// with the same input.
	ErrInvalidPeerValue = errors.New("ecdh: invalid peer public value")

	// ErrInvalidScalar indicates a bad private-value override. The
	// prior key pair is preserved.
	ErrInvalidScalar = errors.New("ecdh: invalid private scalar")

	// ErrComputationFailed indicates scalar multiplication or
	// coordinate extraction failed. Fatal to this key-exchange attempt.
	ErrComputationFailed = errors.New("ecdh: shared secret computation failed")

	// ErrSecretNotAvailable indicates the shared secret was requested
	// before a valid peer value was accepted. Caller logic error.
	ErrSecretNotAvailable = errors.New("ecdh: shared secret not available")

	// ErrSessionDestroyed indicates use of a session after Destroy.
	ErrSessionDestroyed = errors.New("ecdh: session destroyed")
)

// Error wraps an underlying error with the session operation that
// failed.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("ecdh.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// errorf creates a new Error.
func errorf(op string, format string, args ...any) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf(format, args...),
	}
}
