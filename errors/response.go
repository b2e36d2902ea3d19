package errors

import (
	stderrors "errors"
)

// Body returns the flat JSON wire representation of the error:
// {"error": <code>, "message": <message>, ...extra fields}.
func (e *AppError) Body() map[string]any {
	body := map[string]any{
		"error":   string(e.Code),
		"message": e.Message,
	}
	for k, v := range e.Extra {
		body[k] = v
	}
	return body
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
