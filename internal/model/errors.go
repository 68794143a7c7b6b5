package model

import (
	"fmt"
	"strings"
)

// ShapeError reports a canonical document that is missing required fields or
// carries values of the wrong type.
type ShapeError struct {
	Message    string
	Violations []string
	Cause      error
}

func (e *ShapeError) Error() string {
	msg := "resume data: " + e.Message
	if len(e.Violations) > 0 {
		msg += ": " + strings.Join(e.Violations, "; ")
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ShapeError) Unwrap() error {
	return e.Cause
}
