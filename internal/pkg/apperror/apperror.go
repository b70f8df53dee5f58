package apperror

import "net/http"

// AppError is an error that carries the HTTP status code to answer with.
type AppError struct {
	Code    int    // HTTP Status Code (e.g., 409, 502)
	Message string // User-facing error message
	Err     error  // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Conflict reports that the request does not fit the current state.
func Conflict(err error, message string) *AppError {
	return Wrap(err, http.StatusConflict, message)
}

// BadGateway reports that an upstream service failed.
func BadGateway(err error, message string) *AppError {
	return Wrap(err, http.StatusBadGateway, message)
}
