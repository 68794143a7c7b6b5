// Command generate-docx writes the DOCX resume from the canonical JSON document.
package main

import (
	"fmt"
	"os"

	"resume-docs/internal/generate"
	"resume-docs/internal/usecase"
)

func main() {
	if err := generate.NewCommand(usecase.FormatDOCX).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
