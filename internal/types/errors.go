package types

import (
	"errors"
	"fmt"
)

// ErrorCode is a typed string for categorizing application errors.
type ErrorCode string

// Error code constants. Components MUST use these constants instead of
// hardcoded strings so logs and metrics stay queryable.
const (
	// Decoding (event-scoped, never fatal to the dispatch loop)
	ErrCodeDecodeMissingField ErrorCode = "decode_missing_required_field"
	ErrCodeDecodeWrongShape   ErrorCode = "decode_wrong_shape"
	ErrCodeDecodeBadValue     ErrorCode = "decode_unparsable_value"

	// Gateway connection
	ErrCodeGatewayDial        ErrorCode = "gateway_dial_failed"
	ErrCodeGatewayClosed      ErrorCode = "gateway_connection_closed"
	ErrCodeGatewayHandshake   ErrorCode = "gateway_handshake_failed"
	ErrCodeGatewayCompression ErrorCode = "gateway_compression_error"
	ErrCodeGatewaySend        ErrorCode = "gateway_send_failed"

	// Session lifecycle
	ErrCodeSessionEnded    ErrorCode = "session_ended"
	ErrCodeSessionNotReady ErrorCode = "session_not_ready"

	// Configuration
	ErrCodeConfigInvalid ErrorCode = "config_invalid"

	// Internal
	ErrCodeInternalUnexpected ErrorCode = "internal_unexpected_error"
)

// AppError is the standard application error type. All component errors
// should be expressed as AppError to enable consistent formatting, error
// chain support, and code-based handling at call sites.
type AppError struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Err     error          `json:"-"`
	Details map[string]any `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError with the given code, message, and
// optional underlying error.
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// DecodeError reports a failure to decode a recognized gateway event. It is
// scoped to the single event that produced it: the dispatch loop logs it,
// drops the event, and proceeds. A partially-decoded event is never surfaced
// alongside a DecodeError.
type DecodeError struct {
	// Event is the gateway event name whose payload failed to decode.
	Event string
	// Field is the offending field name or path, when known.
	Field string
	// Code classifies the failure.
	Code ErrorCode
	// Reason is the human-readable failure description.
	Reason string
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("decode %s: field %q: %s", e.Event, e.Field, e.Reason)
	}
	return fmt.Sprintf("decode %s: %s", e.Event, e.Reason)
}

// Unwrap returns the underlying error for errors.Is/errors.As support.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError constructs a DecodeError for the given event and field.
func NewDecodeError(event, field string, code ErrorCode, reason string, err error) *DecodeError {
	return &DecodeError{
		Event:  event,
		Field:  field,
		Code:   code,
		Reason: reason,
		Err:    err,
	}
}

// IsDecodeError extracts the DecodeError from err's chain, reporting
// whether one was found.
func IsDecodeError(err error) (*DecodeError, bool) {
	var de *DecodeError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
