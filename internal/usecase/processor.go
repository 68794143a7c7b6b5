package usecase

import (
	"context"
	"errors"
	"time"

	"resume-docs/internal/docx"
	"resume-docs/internal/domain"
	"resume-docs/internal/layout"
	"resume-docs/internal/metrics"
	"resume-docs/internal/model"
	"resume-docs/internal/output"
	"resume-docs/internal/printhtml"
	infra "resume-docs/pkg/infrastructure"

	"go.uber.org/zap"
)

// Format names an output document kind.
type Format string

const (
	FormatDOCX Format = "docx"
	FormatPDF  Format = "pdf"
	FormatHTML Format = "html"
)

type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type RunsRepo interface {
	Save(ctx context.Context, run *domain.GenerationRun) error
}

type Option func(*Processor)

func WithStyle(s layout.Style) Option {
	return func(p *Processor) { p.style = s }
}

func WithCompetencyLayout(c layout.Capability) Option {
	return func(p *Processor) { p.competencies = c }
}

// Processor turns a loaded resume into finished documents. It holds no
// per-run state and is safe for concurrent use.
type Processor struct {
	renderer     Renderer
	repo         RunsRepo
	log          *zap.Logger
	style        layout.Style
	competencies layout.Capability
	now          func() time.Time
}

func NewProcessor(r Renderer, repo RunsRepo, log *zap.Logger, opts ...Option) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Processor{
		renderer:     r,
		repo:         repo,
		log:          log,
		style:        layout.DefaultStyle(),
		competencies: layout.Grid,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// DOCX builds the Word document.
func (p *Processor) DOCX(ctx context.Context, doc *model.Resume) (*output.Artifact, error) {
	return p.run(ctx, FormatDOCX, "", func(ctx context.Context) (*output.Artifact, error) {
		return p.buildDOCX(doc)
	})
}

// PDF renders the print HTML and prints it with the headless browser.
func (p *Processor) PDF(ctx context.Context, doc *model.Resume) (*output.Artifact, error) {
	return p.run(ctx, FormatPDF, "", func(ctx context.Context) (*output.Artifact, error) {
		return p.buildPDF(ctx, doc)
	})
}

// HTML renders the print HTML only.
func (p *Processor) HTML(doc *model.Resume) (*output.Artifact, error) {
	return p.buildHTML(doc)
}

// Publish generates format and writes it to path, replacing any previous file.
func (p *Processor) Publish(ctx context.Context, format Format, doc *model.Resume, path string) (*output.Artifact, error) {
	return p.run(ctx, format, path, func(ctx context.Context) (*output.Artifact, error) {
		var (
			art *output.Artifact
			err error
		)
		switch format {
		case FormatDOCX:
			art, err = p.buildDOCX(doc)
		case FormatPDF:
			art, err = p.buildPDF(ctx, doc)
		case FormatHTML:
			art, err = p.buildHTML(doc)
		default:
			return nil, &StageError{Format: format, Stage: StageBuild, Cause: errors.New("unknown format")}
		}
		if err != nil {
			return nil, err
		}
		p.log.Debug("writing document", zap.String("path", path))
		if err := output.WriteFile(path, art.Data); err != nil {
			return nil, &StageError{Format: format, Stage: StageWrite, Cause: err}
		}
		return art, nil
	})
}

func (p *Processor) buildDOCX(doc *model.Resume) (*output.Artifact, error) {
	p.log.Debug("building docx")
	data, err := docx.Build(doc, docx.WithStyle(p.style), docx.WithCompetencyLayout(p.competencies))
	if err != nil {
		return nil, &StageError{Format: FormatDOCX, Stage: StageBuild, Cause: err}
	}
	if ce := p.log.Check(zap.DebugLevel, "docx outline"); ce != nil {
		if headings, err := docx.SectionHeadings(data); err == nil {
			ce.Write(zap.Strings("headings", headings))
		}
	}
	return &output.Artifact{Name: "Resume.docx", ContentType: output.ContentTypeDOCX, Data: data}, nil
}

func (p *Processor) buildHTML(doc *model.Resume) (*output.Artifact, error) {
	p.log.Debug("rendering print html")
	html, err := printhtml.Render(doc, p.style)
	if err != nil {
		return nil, &StageError{Format: FormatHTML, Stage: StageTemplate, Cause: err}
	}
	return &output.Artifact{Name: "Resume.html", ContentType: output.ContentTypeHTML, Data: []byte(html)}, nil
}

func (p *Processor) buildPDF(ctx context.Context, doc *model.Resume) (*output.Artifact, error) {
	page, err := p.buildHTML(doc)
	if err != nil {
		return nil, &StageError{Format: FormatPDF, Stage: StageTemplate, Cause: errors.Unwrap(err)}
	}
	if p.renderer == nil {
		return nil, &StageError{Format: FormatPDF, Stage: StageRender, Cause: errors.New("no pdf renderer configured")}
	}
	data, err := p.renderer.RenderHTMLToPDF(ctx, string(page.Data))
	if err != nil {
		stage := StageRender
		var re *infra.RenderError
		if errors.As(err, &re) {
			stage = re.Stage
		}
		return nil, &StageError{Format: FormatPDF, Stage: stage, Cause: err}
	}
	return &output.Artifact{Name: "Resume.pdf", ContentType: output.ContentTypePDF, Data: data}, nil
}

// run wraps one generation with the run log, metrics and logging.
func (p *Processor) run(ctx context.Context, format Format, path string, fn func(context.Context) (*output.Artifact, error)) (*output.Artifact, error) {
	start := p.now()
	run := domain.NewGenerationRun(string(format), start)
	run.OutputPath = path
	log := p.log.With(zap.String("format", string(format)), zap.String("run_id", run.ID.String()))

	art, err := fn(ctx)
	elapsed := p.now().Sub(start)
	if err != nil {
		stage := StageOf(err)
		log.Error("generation failed", zap.String("stage", stage), zap.Error(err))
		metrics.Observe(string(format), stage, elapsed)
		run.Fail(stage, err, p.now())
		p.record(ctx, run, log)
		return nil, err
	}

	log.Info("document generated", zap.Int("bytes", len(art.Data)), zap.Duration("duration", elapsed))
	metrics.Observe(string(format), "", elapsed)
	run.Complete(len(art.Data), p.now())
	p.record(ctx, run, log)
	return art, nil
}

// record saves the run; a failed save is logged and otherwise ignored.
func (p *Processor) record(ctx context.Context, run *domain.GenerationRun, log *zap.Logger) {
	if p.repo == nil {
		return
	}
	if err := p.repo.Save(ctx, run); err != nil {
		log.Warn("failed to save generation run", zap.Error(err))
	}
}
