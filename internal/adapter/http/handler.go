package http

import (
	"context"
	"fmt"

	"resume-docs/internal/model"
	"resume-docs/internal/output"
	"resume-docs/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Generator is the slice of usecase.Processor the handlers need.
type Generator interface {
	DOCX(ctx context.Context, doc *model.Resume) (*output.Artifact, error)
	PDF(ctx context.Context, doc *model.Resume) (*output.Artifact, error)
}

type Handler struct {
	gen Generator
	doc *model.Resume
	log *zap.Logger
}

// NewHandler serves doc, which is shared read-only across requests.
func NewHandler(gen Generator, doc *model.Resume, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{gen: gen, doc: doc, log: log}
}

func (h *Handler) Register(app *fiber.App) {
	app.Get("/Resume.docx", h.DOCX)
	app.Get("/Resume.pdf", h.PDF)
	app.Get("/healthz", h.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

// DOCX builds the Word document for this request.
func (h *Handler) DOCX(c *fiber.Ctx) error {
	art, err := h.gen.DOCX(c.UserContext(), h.doc)
	return h.send(c, art, err)
}

// PDF prints the resume with a fresh headless browser for this request.
func (h *Handler) PDF(c *fiber.Ctx) error {
	art, err := h.gen.PDF(c.UserContext(), h.doc)
	return h.send(c, art, err)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) send(c *fiber.Ctx, art *output.Artifact, err error) error {
	if err != nil {
		h.log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
			"stage": usecase.StageOf(err),
		})
	}
	c.Set(fiber.HeaderContentType, art.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", art.Name))
	return c.Send(art.Data)
}
