package usecase

import (
	"errors"
	"fmt"
)

// Pipeline stages outside the PDF renderer's own launch/load/print.
const (
	StageBuild    = "build"
	StageTemplate = "template"
	StageRender   = "render"
	StageWrite    = "write"
)

// StageError tags a generation failure with the format and the stage that failed.
type StageError struct {
	Format Format
	Stage  string
	Cause  error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s generation failed at %s: %v", e.Format, e.Stage, e.Cause)
}

func (e *StageError) Unwrap() error {
	return e.Cause
}

// StageOf returns the failing stage carried by err, or "" if there is none.
func StageOf(err error) string {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return ""
}
