package errors

import (
	"fmt"
	"net/http"
)

type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	Op      string `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func InvalidInput(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

func NotFound(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

func Internal(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

// MissingCredential reports that no YouTube API key has been configured.
// The caller is expected to prompt the user rather than retry.
func MissingCredential(op string) *AppError {
	return &AppError{
		Code:    http.StatusPreconditionRequired,
		Message: "YouTube API key is not configured",
		Op:      op,
	}
}

// Upstream reports a failed or unparseable response from a remote service.
// These are retryable from the user's point of view.
func Upstream(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusBadGateway,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

func IsMissingCredential(err error) bool {
	if e, ok := err.(*AppError); ok {
		return e.Code == http.StatusPreconditionRequired
	}
	return false
}

func IsNotFound(err error) bool {
	if e, ok := err.(*AppError); ok {
		return e.Code == http.StatusNotFound
	}
	return false
}
