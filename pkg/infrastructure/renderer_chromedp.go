package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resume-docs/internal/layout"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// Render stages reported by RenderError.
const (
	StageLaunch = "launch"
	StageLoad   = "load"
	StagePrint  = "print"
)

const (
	// DefaultLaunchTimeout bounds starting the browser.
	DefaultLaunchTimeout = 30 * time.Second
	// DefaultLoadTimeout bounds loading the document into the page.
	DefaultLoadTimeout = 30 * time.Second
)

// RenderError tags a PDF rendering failure with the stage that failed.
type RenderError struct {
	Stage string
	Cause error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("pdf %s failed: %v", e.Stage, e.Cause)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

var errEmptyPDF = errors.New("browser returned an empty document")

// ChromedpRenderer prints HTML to PDF with a headless Chrome that lives only
// for the duration of one call.
type ChromedpRenderer struct {
	ChromePath    string
	LaunchTimeout time.Duration
	LoadTimeout   time.Duration
	Style         layout.Style
	Logger        *zap.Logger
}

func NewChromedpRenderer(chromePath string, loadTimeout time.Duration, style layout.Style, logger *zap.Logger) *ChromedpRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loadTimeout <= 0 {
		loadTimeout = DefaultLoadTimeout
	}
	return &ChromedpRenderer{
		ChromePath:    chromePath,
		LaunchTimeout: DefaultLaunchTimeout,
		LoadTimeout:   loadTimeout,
		Style:         style,
		Logger:        logger,
	}
}

func (r *ChromedpRenderer) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.ChromePath))
	}
	return opts
}

func (r *ChromedpRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, r.allocatorOptions()...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	if err := r.launch(browserCtx, cancelBrowser); err != nil {
		return nil, &RenderError{Stage: StageLaunch, Cause: err}
	}
	log.Debug("browser started")

	timeout := r.LoadTimeout
	if timeout <= 0 {
		timeout = DefaultLoadTimeout
	}
	loadCtx, cancelLoad := context.WithTimeout(browserCtx, timeout)
	defer cancelLoad()

	var ready bool
	err := chromedp.Run(loadCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Poll(`document.readyState === "complete"`, &ready),
	)
	if err != nil {
		return nil, &RenderError{Stage: StageLoad, Cause: err}
	}
	log.Debug("document loaded", zap.Int("html_bytes", len(html)))

	var pdf []byte
	err = chromedp.Run(browserCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		pdf, _, err = PrintParams(r.Style).Do(ctx)
		return err
	}))
	if err != nil {
		return nil, &RenderError{Stage: StagePrint, Cause: err}
	}
	if len(pdf) == 0 {
		return nil, &RenderError{Stage: StagePrint, Cause: errEmptyPDF}
	}
	log.Debug("pdf printed", zap.Int("bytes", len(pdf)))
	return pdf, nil
}

// launch starts the browser. The first Run ties the browser to browserCtx, so
// the bound is a timer that cancels browserCtx on expiry.
func (r *ChromedpRenderer) launch(browserCtx context.Context, cancelBrowser context.CancelFunc) error {
	timeout := r.LaunchTimeout
	if timeout <= 0 {
		timeout = DefaultLaunchTimeout
	}
	done := make(chan error, 1)
	go func() { done <- chromedp.Run(browserCtx) }()

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case err := <-done:
		return err
	case <-timer.C:
		cancelBrowser()
		return fmt.Errorf("browser did not start within %s: %w", timeout, context.DeadlineExceeded)
	}
}

// PrintParams maps the page geometry of style onto Chrome's print settings.
func PrintParams(style layout.Style) *page.PrintToPDFParams {
	return page.PrintToPDF().
		WithPrintBackground(true).
		WithPaperWidth(float64(style.PageWidth)).
		WithPaperHeight(float64(style.PageHeight)).
		WithMarginTop(float64(style.Margin.Top)).
		WithMarginRight(float64(style.Margin.Right)).
		WithMarginBottom(float64(style.Margin.Bottom)).
		WithMarginLeft(float64(style.Margin.Left)).
		WithPreferCSSPageSize(false)
}
