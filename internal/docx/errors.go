package docx

import "fmt"

// BuildError reports a failure assembling or encoding the document.
type BuildError struct {
	Message string
	Cause   error
}

func (e *BuildError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("docx build error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("docx build error: %s", e.Message)
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}
