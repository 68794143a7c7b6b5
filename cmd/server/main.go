package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "resume-docs/internal/adapter/http"
	repo "resume-docs/internal/adapter/repository"
	"resume-docs/internal/config"
	"resume-docs/internal/infrastructure/migration"
	"resume-docs/internal/layout"
	"resume-docs/internal/logger"
	"resume-docs/internal/model"
	"resume-docs/internal/usecase"
	infra "resume-docs/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	competencies, err := layout.ParseCapability(cfg.DOCX.CompetencyLayout)
	if err != nil {
		return err
	}

	doc, err := model.Load(cfg.Resume.DataPath)
	if err != nil {
		return err
	}

	ctx := context.Background()

	// the run log is optional
	var runs usecase.RunsRepo
	if cfg.Database.URL != "" {
		pool, err := infra.NewPool(ctx, cfg.Database.URL)
		if err != nil {
			log.Warn("run log database not available", zap.Error(err))
		} else {
			defer pool.Close()
			if err := migration.RunMigrations(ctx, pool, log); err != nil {
				return fmt.Errorf("migrations: %w", err)
			}
			runs = repo.NewRunsRepo(pool)
		}
	}

	style := layout.DefaultStyle()
	renderer := infra.NewChromedpRenderer(cfg.PDF.ChromePath, cfg.PDF.LoadTimeout, style, log)
	renderer.LaunchTimeout = cfg.PDF.LaunchTimeout
	processor := usecase.NewProcessor(renderer, runs, log,
		usecase.WithStyle(style),
		usecase.WithCompetencyLayout(competencies),
	)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	httpadapter.NewHandler(processor, doc, log).Register(app)

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		log.Info("server listening", zap.String("addr", addr))
		errCh <- app.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-sigCh:
		log.Info("shutdown signal received")
	}
	return app.ShutdownWithTimeout(10 * time.Second)
}
