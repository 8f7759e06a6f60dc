// Package convert runs the PPTX to HTML conversion.
package convert

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gnemet/SlidePress/internal/ai"
	"github.com/gnemet/SlidePress/internal/database"
	"github.com/gnemet/SlidePress/internal/pptx"
	"github.com/gnemet/SlidePress/internal/render"
)

// summaryTimeout bounds the optional summary request.
const summaryTimeout = 30 * time.Second

// Options are the cosmetic settings of a conversion.
type Options struct {
	// Title overrides the page title.
	Title string
	Lang  string
}

// Result describes a finished conversion.
type Result struct {
	ID       string
	Input    string
	Output   string
	Title    string
	Slides   int
	Bytes    int
	Duration time.Duration
}

type Converter struct {
	logger     *zap.Logger
	opts       Options
	summarizer ai.Summarizer
	db         *sql.DB
	now        func() time.Time
}

// New returns a Converter. summarizer and db may be nil.
func New(logger *zap.Logger, opts Options, summarizer ai.Summarizer, db *sql.DB) *Converter {
	if summarizer == nil {
		summarizer = ai.Noop{}
	}
	return &Converter{
		logger:     logger,
		opts:       opts,
		summarizer: summarizer,
		db:         db,
		now:        time.Now,
	}
}

// Run converts the presentation at input into an HTML page at output. The
// page is written to a temporary file and renamed over output, so a failed
// run never leaves a partial file behind.
func (c *Converter) Run(ctx context.Context, input, output string) (*Result, error) {
	res := &Result{ID: uuid.NewString(), Input: input, Output: output}
	log := c.logger.With(
		zap.String("run_id", res.ID),
		zap.String("input", input),
		zap.String("output", output),
	)
	started := c.now()
	log.Info("converting presentation")

	slides, summary, err := c.convert(ctx, log, res)
	res.Duration = c.now().Sub(started)
	c.record(ctx, log, res, slides, summary, started, err)
	if err != nil {
		log.Error("conversion failed", zap.Error(err))
		return nil, err
	}

	log.Info("conversion finished",
		zap.Int("slides", res.Slides),
		zap.Int("bytes", res.Bytes),
		zap.Duration("duration", res.Duration),
	)
	return res, nil
}

func (c *Converter) convert(ctx context.Context, log *zap.Logger, res *Result) ([]pptx.Classification, string, error) {
	doc, err := pptx.Open(res.Input)
	if err != nil {
		return nil, "", err
	}

	slides := pptx.ClassifyDocument(doc)
	res.Slides = len(slides)
	res.Title = PageTitle(c.opts.Title, doc, slides, res.Input)
	log.Debug("classified slides", zap.Int("slides", res.Slides), zap.String("title", res.Title))

	summary := c.summarize(ctx, log, res.Title, slides)

	page := render.Page{
		Title:       res.Title,
		Lang:        c.opts.Lang,
		Slides:      slides,
		GeneratedAt: c.now(),
		Summary:     summary,
	}

	if dir := filepath.Dir(res.Output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return slides, summary, fmt.Errorf("create output directory: %w", err)
		}
	}
	n, err := writePage(res.Output, page)
	if err != nil {
		return slides, summary, fmt.Errorf("write %s: %w", res.Output, err)
	}
	res.Bytes = n
	return slides, summary, nil
}

// writePage renders page into a temporary file next to output and renames
// it into place. It returns the number of bytes written.
func writePage(output string, page render.Page) (n int, err error) {
	f, err := os.CreateTemp(filepath.Dir(output), ".slidepress-*.html")
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if err = render.Write(f, page); err != nil {
		return 0, err
	}
	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	if err = f.Chmod(0644); err != nil {
		return 0, err
	}
	if err = f.Close(); err != nil {
		return 0, err
	}
	if err = os.Rename(f.Name(), output); err != nil {
		return 0, err
	}
	return int(info.Size()), nil
}

// summarize asks the summarizer for a footer summary. Failures are logged
// and yield no summary.
func (c *Converter) summarize(ctx context.Context, log *zap.Logger, title string, slides []pptx.Classification) string {
	if _, ok := c.summarizer.(ai.Noop); ok || len(slides) == 0 {
		return ""
	}
	ctx, cancel := context.WithTimeout(ctx, summaryTimeout)
	defer cancel()

	summary, err := c.summarizer.Summarize(ctx, title, slides)
	if err != nil {
		log.Warn("summary failed", zap.Error(err))
		return ""
	}
	return summary
}

// record writes the run to the conversion log when a database is
// configured. Failures are logged only.
func (c *Converter) record(ctx context.Context, log *zap.Logger, res *Result, slides []pptx.Classification, summary string, started time.Time, runErr error) {
	if c.db == nil {
		return
	}
	conv := &database.Conversion{
		ID:         res.ID,
		InputPath:  res.Input,
		OutputPath: res.Output,
		Title:      res.Title,
		SlideCount: res.Slides,
		Summary:    summary,
		Status:     database.StatusSucceeded,
		StartedAt:  started,
		FinishedAt: started.Add(res.Duration),
	}
	if runErr != nil {
		conv.Status = database.StatusFailed
		conv.Error = runErr.Error()
	}
	for i, s := range slides {
		conv.Slides = append(conv.Slides, database.Slide{SlideNum: i + 1, Title: s.Title, Content: s.Content})
	}
	if err := database.SaveConversion(ctx, c.db, conv); err != nil {
		log.Warn("could not record conversion", zap.Error(err))
	}
}

// PageTitle picks the page title: the override, then the document title,
// then the first slide title, then the input file name.
func PageTitle(override string, doc *pptx.Document, slides []pptx.Classification, input string) string {
	if t := strings.TrimSpace(override); t != "" {
		return t
	}
	if doc != nil {
		if t := strings.TrimSpace(doc.Title); t != "" {
			return t
		}
	}
	if len(slides) > 0 {
		if t := strings.TrimSpace(firstLine(slides[0].Title)); t != "" {
			return t
		}
	}
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
