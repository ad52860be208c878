package gateway

import (
	"fmt"
)

// Kind enumerates the closed set of gateway failure classes.
type Kind int

const (
	// KindInvalidInput marks an empty or whitespace-only question.
	KindInvalidInput Kind = iota
	// KindModelConnection marks a transient network/timeout failure
	// that survived all retries.
	KindModelConnection
	// KindModelResponse marks an empty or unusable model reply.
	KindModelResponse
	// KindAuthentication marks a credential failure at the provider.
	KindAuthentication
	// KindRateLimit marks provider-side throttling.
	KindRateLimit
	// KindService marks any other provider failure.
	KindService
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindModelConnection:
		return "model_connection_error"
	case KindModelResponse:
		return "model_response_error"
	case KindAuthentication:
		return "authentication_error"
	case KindRateLimit:
		return "rate_limit_error"
	default:
		return "service_error"
	}
}

// Error is a classified gateway failure. It is propagated as a value;
// the handler maps Kind to a transport status.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same Kind, so callers can test against
// the exported sentinels with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is checks against the taxonomy.
var (
	ErrInvalidInput    = &Error{Kind: KindInvalidInput}
	ErrModelConnection = &Error{Kind: KindModelConnection}
	ErrModelResponse   = &Error{Kind: KindModelResponse}
	ErrAuthentication  = &Error{Kind: KindAuthentication}
	ErrRateLimit       = &Error{Kind: KindRateLimit}
	ErrService         = &Error{Kind: KindService}
)

func newError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}
