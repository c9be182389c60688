package apperr

import (
	"fmt"
)

// Generic Action Messages
const (
	MsgPushFailed  = "failed to push"
	MsgPopFailed   = "failed to pop"
	MsgLoadFailed  = "failed to load"
	MsgParseFailed = "failed to parse"
	MsgInvalid     = "invalid"
)

// MapError wraps an error with a standardized message
func MapError(component string, err error, code int, msg string) *AppError {
	if err == nil {
		return nil
	}

	formattedMsg := fmt.Sprintf("%s %s", component, msg)
	return Wrap(err, code, formattedMsg)
}
