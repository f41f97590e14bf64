package validation

// Error is a user-facing rejection of one input field.
// The message is shown verbatim in conversational responses.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(message string) *Error {
	return &Error{Message: message}
}

// IsValidationError reports whether err is a field rejection.
func IsValidationError(err error) bool {
	_, ok := err.(*Error)
	return ok
}
