package apperror

import "net/http"

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause so callers can still errors.Is/As through it.
func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// BadRequestWrap is BadRequest that keeps the cause for server-side logs.
func BadRequestWrap(message string, err error) *AppError {
	return New(http.StatusBadRequest, message, err)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Server error", err)
}

// InternalMessage is a 500 whose message is safe to show to the client.
func InternalMessage(message string, err error) *AppError {
	return New(http.StatusInternalServerError, message, err)
}
