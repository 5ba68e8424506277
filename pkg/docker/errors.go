package docker

import (
	"errors"
	"fmt"
)

// ErrorResponse is the body the daemon sends with every unsuccessful status.
type ErrorResponse struct {
	Message string `json:"message" yaml:"message"`
}

// ServerError is returned when the daemon answered with a status code other
// than the one the operation expects. It carries the daemon's message.
//
// All non-matching codes are reported the same way: a 404 and a 500 are both
// a ServerError and are told apart only through StatusCode.
type ServerError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	return fmt.Sprintf("docker: %s (status: %d)", e.Message, e.StatusCode)
}

// DecodeError is returned when a response body could not be parsed into the
// expected shape. This covers both a malformed success payload and an error
// payload that is not an ErrorResponse; StatusCode tells the two apart.
type DecodeError struct {
	StatusCode int
	Body       []byte
	Err        error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("docker: decoding response (status: %d): %v", e.StatusCode, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TransportError is returned when the exchange with the daemon could not be
// completed: the request could not be built or encoded, the socket could not
// be dialed, or the connection broke before the full body was read.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("docker: %s %s: %v", e.Method, e.Path, e.Err)
}

// Unwrap returns the underlying transport failure.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired     = errors.New("config is required")
	ErrUnsupportedScheme  = errors.New("unsupported host scheme")
	ErrInvalidHost        = errors.New("invalid host")
	ErrInvalidAPIVersion  = errors.New("invalid API version")
	ErrAPIVersionTooOld   = errors.New("API version is not supported")
	ErrEmptyID            = errors.New("identifier must not be empty")
	ErrInvalidTimeout     = errors.New("timeout must not be negative")
	ErrNilPayload         = errors.New("payload must not be nil")
	ErrInterceptorFailure = errors.New("interceptor failed")
)

// IsServerError checks if the error was reported by the daemon.
func IsServerError(err error) bool {
	serverErr := &ServerError{}

	return errors.As(err, &serverErr)
}

// IsDecodeError checks if the error is a response decoding failure.
func IsDecodeError(err error) bool {
	decodeErr := &DecodeError{}

	return errors.As(err, &decodeErr)
}

// IsTransportError checks if the error is a transport failure.
func IsTransportError(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}

// ServerMessage returns the daemon's message if err is a ServerError.
func ServerMessage(err error) (string, bool) {
	serverErr := &ServerError{}
	if errors.As(err, &serverErr) {
		return serverErr.Message, true
	}

	return "", false
}
