// Package output delivers finished documents to disk.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

const (
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	ContentTypePDF  = "application/pdf"
	ContentTypeHTML = "text/html; charset=utf-8"
)

// Artifact is one generated document held fully in memory.
type Artifact struct {
	Name        string
	ContentType string
	Data        []byte
}

// SizeKB is the size in kilobytes rounded to one decimal, as printed by the
// generators.
func (a *Artifact) SizeKB() float64 {
	return float64(int(float64(len(a.Data))/1024*10+0.5)) / 10
}

// WriteFile replaces path with data. Readers see either the previous file or
// the complete new one, never a partial write.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
