package model

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var schemaJSON string

var schemaLoader = gojsonschema.NewStringLoader(schemaJSON)

// Validate checks raw JSON against resume.schema.json. Shape problems come back
// as a *ShapeError listing every violation.
func Validate(data []byte) error {
	res, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return &ShapeError{Message: "document is not valid JSON", Cause: err}
	}
	if res.Valid() {
		return nil
	}
	violations := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		violations = append(violations, e.String())
	}
	return &ShapeError{
		Message:    fmt.Sprintf("schema validation failed with %d violation(s)", len(violations)),
		Violations: violations,
	}
}
