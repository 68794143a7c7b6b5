// render_html writes the print HTML next to the generated documents so the
// page can be previewed in a normal browser before printing.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"resume-docs/internal/config"
	"resume-docs/internal/model"
	"resume-docs/internal/usecase"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	doc, err := model.Load(cfg.Resume.DataPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load resume: %v\n", err)
		os.Exit(2)
	}

	out := filepath.Join(cfg.Output.Dir, "Resume.html")
	p := usecase.NewProcessor(nil, nil, zap.NewNop())
	if _, err := p.Publish(context.Background(), usecase.FormatHTML, doc, out); err != nil {
		fmt.Fprintf(os.Stderr, "render html: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", out)
}
