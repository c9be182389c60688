package apperr

import (
	"github.com/pkg/errors"
)

// AppError is an expected, user-facing failure identified by a code.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// New creates an AppError with an optional cause.
func New(code int, msg string, cause error) *AppError {
	return &AppError{Code: code, Message: msg, Err: cause}
}

// Wrap attaches a code and message to err. Returns nil if err is nil.
func Wrap(err error, code int, msg string) *AppError {
	if err == nil {
		return nil
	}
	return New(code, msg, err)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches any AppError carrying the same code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// CodeOf extracts the code of the first AppError in err's chain.
func CodeOf(err error) (int, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return 0, false
}
