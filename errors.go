package renamed

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNilFile          = errors.New("file cannot be nil")
	ErrNilReader        = errors.New("reader cannot be nil")
	ErrNilWriter        = errors.New("writer cannot be nil")
	ErrEmptyDownloadURL = errors.New("download url cannot be empty")
	ErrEmptyStatusURL   = errors.New("status url cannot be empty")
)

// ErrorCode identifies the failure category of an Error. The values are the
// machine-readable codes the service uses, so they are stable across
// releases.
type ErrorCode string

const (
	ErrCodeAuthentication      ErrorCode = "AUTHENTICATION_ERROR"
	ErrCodeInsufficientCredits ErrorCode = "INSUFFICIENT_CREDITS"
	ErrCodeValidation          ErrorCode = "VALIDATION_ERROR"
	ErrCodeRateLimit           ErrorCode = "RATE_LIMIT_ERROR"
	ErrCodeNetwork             ErrorCode = "NETWORK_ERROR"
	ErrCodeTimeout             ErrorCode = "TIMEOUT_ERROR"
	ErrCodeJob                 ErrorCode = "JOB_ERROR"
	ErrCodeAPI                 ErrorCode = "API_ERROR"
)

// Error is the failure type returned by every API operation. Callers branch
// on Code with errors.As instead of matching message strings.
type Error struct {
	Code       ErrorCode // Failure category
	Message    string    // Human-readable description
	StatusCode int       // HTTP status for completed exchanges, 0 otherwise
	Details    any       // Raw response payload for validation and API failures
	RetryAfter int       // Seconds to wait, set on rate limit failures
	JobID      string    // Identifier of the failed job, set on job failures

	cause error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying transport error, if any.
func (e *Error) Unwrap() error { return e.cause }

func newAuthenticationError(message string) *Error {
	if message == "" {
		message = "Invalid or missing API key"
	}
	return &Error{Code: ErrCodeAuthentication, Message: message, StatusCode: http.StatusUnauthorized}
}

func newNetworkError(cause error) *Error {
	message := "Network request failed"
	if cause != nil {
		message = cause.Error()
	}
	return &Error{Code: ErrCodeNetwork, Message: message, cause: cause}
}

func newTimeoutError(cause error) *Error {
	message := "Request timed out"
	if cause != nil {
		message = cause.Error()
	}
	return &Error{Code: ErrCodeTimeout, Message: message, cause: cause}
}

func newJobError(message, jobID string) *Error {
	if message == "" {
		message = "Job failed"
	}
	return &Error{Code: ErrCodeJob, Message: message, JobID: jobID}
}

// classifyStatus maps a completed HTTP exchange with status >= 400 to a
// typed error. The message prefers the body's error field over the status
// reason phrase.
func classifyStatus(statusCode int, statusText string, body []byte) *Error {
	payload, fields := decodeErrorPayload(body)

	message := statusText
	if message == "" {
		message = http.StatusText(statusCode)
	}
	if msg, ok := fields["error"].(string); ok && msg != "" {
		message = msg
	}

	switch statusCode {
	case http.StatusUnauthorized:
		return &Error{Code: ErrCodeAuthentication, Message: message, StatusCode: statusCode}
	case http.StatusPaymentRequired:
		return &Error{Code: ErrCodeInsufficientCredits, Message: message, StatusCode: statusCode}
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return &Error{Code: ErrCodeValidation, Message: message, StatusCode: statusCode, Details: payload}
	case http.StatusTooManyRequests:
		apiErr := &Error{Code: ErrCodeRateLimit, Message: message, StatusCode: statusCode}
		if seconds, ok := fields["retryAfter"].(float64); ok {
			apiErr.RetryAfter = int(seconds)
		}
		return apiErr
	default:
		return &Error{Code: ErrCodeAPI, Message: message, StatusCode: statusCode, Details: payload}
	}
}

// decodeErrorPayload parses an error body. Structured JSON objects are kept
// as maps for field access; anything else is carried as a raw string.
func decodeErrorPayload(body []byte) (any, map[string]any) {
	if len(body) == 0 {
		return nil, nil
	}

	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err == nil {
		return fields, fields
	}

	return string(body), nil
}
