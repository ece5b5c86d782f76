package schema

import "fmt"

// ValidationError reports malformed or mismatched preparer input, such
// as parallel arrays of different lengths or a missing required field.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NewValidationError builds a ValidationError from a format string.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// DataError reports that label extraction yielded no usable labels.
type DataError struct {
	Msg string
}

func (e *DataError) Error() string {
	return e.Msg
}
