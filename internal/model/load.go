package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and validates the canonical resume document at path.
func Load(path string) (*Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read resume data %s: %w", path, err)
	}
	return Parse(data)
}

// Parse validates data against the schema and decodes it.
func Parse(data []byte) (*Resume, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	var r Resume
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, &ShapeError{Message: "failed to decode document", Cause: err}
	}
	return &r, nil
}
