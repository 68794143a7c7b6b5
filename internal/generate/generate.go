// Package generate holds the command shared by the generate-docx and
// generate-pdf binaries.
package generate

import (
	"context"
	"fmt"
	"io"
	"strings"

	repo "resume-docs/internal/adapter/repository"
	"resume-docs/internal/config"
	"resume-docs/internal/layout"
	"resume-docs/internal/logger"
	"resume-docs/internal/model"
	"resume-docs/internal/usecase"
	infra "resume-docs/pkg/infrastructure"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Runner generates one format from the configured canonical document.
type Runner struct {
	Format   usecase.Format
	Config   *config.Config
	Log      *zap.Logger
	Renderer usecase.Renderer
	Runs     usecase.RunsRepo
}

// Run loads the document, publishes it to the configured path and reports the
// result on w.
func (r *Runner) Run(ctx context.Context, w io.Writer) error {
	cfg := r.Config
	competencies, err := layout.ParseCapability(cfg.DOCX.CompetencyLayout)
	if err != nil {
		return err
	}

	doc, err := model.Load(cfg.Resume.DataPath)
	if err != nil {
		return err
	}

	path := cfg.Output.DOCXPath()
	if r.Format == usecase.FormatPDF {
		path = cfg.Output.PDFPath()
	}

	p := usecase.NewProcessor(r.Renderer, r.Runs, r.Log, usecase.WithCompetencyLayout(competencies))
	art, err := p.Publish(ctx, r.Format, doc, path)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s generated: %s (%.1f KB)\n", strings.ToUpper(string(r.Format)), path, art.SizeKB())
	return nil
}

// NewCommand builds the cobra command for format. It takes no arguments;
// everything comes from configuration.
func NewCommand(format usecase.Format) *cobra.Command {
	return &cobra.Command{
		Use:           "generate-" + string(format),
		Short:         fmt.Sprintf("Generate the %s resume from the canonical JSON document", strings.ToUpper(string(format))),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			r := &Runner{Format: format, Config: cfg, Log: log}
			if format == usecase.FormatPDF {
				renderer := infra.NewChromedpRenderer(cfg.PDF.ChromePath, cfg.PDF.LoadTimeout, layout.DefaultStyle(), log)
				renderer.LaunchTimeout = cfg.PDF.LaunchTimeout
				r.Renderer = renderer
			}
			if cfg.Database.URL != "" {
				pool, err := infra.NewPool(ctx, cfg.Database.URL)
				if err != nil {
					log.Warn("run log database not available", zap.Error(err))
				} else {
					defer pool.Close()
					r.Runs = repo.NewRunsRepo(pool)
				}
			}
			return r.Run(ctx, cmd.OutOrStdout())
		},
	}
}
