// Package build discovers Markdown documents, decides which are out of date
// and regenerates their feature files.
package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/chriserin/featgen/internal/db"
	"github.com/chriserin/featgen/internal/feature"
	"github.com/chriserin/featgen/internal/logfields"
	"github.com/chriserin/featgen/internal/markup"
)

// Store remembers which documents were built. *db.Store implements it.
type Store interface {
	IsRegistered(ctx context.Context, name string) (bool, error)
	RecordDocument(ctx context.Context, rec db.DocumentRecord) error
	RecordBuild(ctx context.Context, rec db.BuildRecord) error
}

type Options struct {
	SourceDir string
	OutputDir string
	Extension string
	Workers   int
	Mode      feature.Mode
	Roles     *markup.Registry
	Logger    *slog.Logger
}

type Status string

const (
	StatusGenerated Status = "generated"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// Result is the outcome for one document.
type Result struct {
	Document  Document
	Status    Status
	Scenarios []string
	Err       error
}

// Report is the outcome of one Build call. Results are in document order.
type Report struct {
	ID        string
	StartedAt time.Time
	Results   []Result
}

func (r *Report) Count(s Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}

type Builder struct {
	opts       Options
	store      Store
	parser     *markup.Parser
	translator *feature.Translator
	logger     *slog.Logger
}

func New(opts Options, store Store) *Builder {
	if opts.Extension == "" {
		opts.Extension = ".md"
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		opts:       opts,
		store:      store,
		parser:     markup.NewParser(opts.Roles),
		translator: feature.New(feature.WithMode(opts.Mode), feature.WithLogger(logger)),
		logger:     logger,
	}
}

// Build regenerates every outdated document, or every document when force is
// set. A failing document does not stop the others; its error is in the
// report and no file is written for it. The returned error is reserved for
// problems that abort the whole build.
func (b *Builder) Build(ctx context.Context, force bool) (*Report, error) {
	if _, err := os.Stat(b.opts.SourceDir); err != nil {
		return nil, fmt.Errorf("source directory: %w", err)
	}
	docs, err := Discover(b.opts.SourceDir, b.opts.OutputDir, b.opts.Extension)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", b.opts.SourceDir, err)
	}

	report := &Report{ID: uuid.NewString(), StartedAt: time.Now()}
	report.Results = make([]Result, len(docs))
	b.logger.Info("Starting build", logfields.BuildID(report.ID), slog.Int("documents", len(docs)))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.opts.Workers)
	for i, doc := range docs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report.Results[i] = b.buildOne(gctx, doc, force)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, res := range report.Results {
		b.logResult(res)
		if res.Status != StatusGenerated {
			continue
		}
		err := b.store.RecordDocument(ctx, db.DocumentRecord{
			Name:       res.Document.Name,
			SourcePath: res.Document.SourcePath,
			TargetPath: res.Document.TargetPath,
			Scenarios:  res.Scenarios,
		})
		if err != nil {
			return nil, fmt.Errorf("recording %s: %w", res.Document.Name, err)
		}
	}

	err = b.store.RecordBuild(ctx, db.BuildRecord{
		ID:        report.ID,
		StartedAt: report.StartedAt,
		Generated: report.Count(StatusGenerated),
		Skipped:   report.Count(StatusSkipped),
		Failed:    report.Count(StatusFailed),
	})
	if err != nil {
		return nil, err
	}

	b.logger.Info("Build finished",
		logfields.BuildID(report.ID),
		slog.Int("generated", report.Count(StatusGenerated)),
		slog.Int("skipped", report.Count(StatusSkipped)),
		slog.Int("failed", report.Count(StatusFailed)),
		logfields.DurationMS(time.Since(report.StartedAt).Milliseconds()))
	return report, nil
}

func (b *Builder) buildOne(ctx context.Context, doc Document, force bool) Result {
	res := Result{Document: doc}
	fail := func(err error) Result {
		res.Status = StatusFailed
		res.Err = err
		return res
	}

	if !force {
		registered, err := b.store.IsRegistered(ctx, doc.Name)
		if err != nil {
			return fail(err)
		}
		if !Outdated(doc, registered) {
			res.Status = StatusSkipped
			return res
		}
	}

	src, err := os.ReadFile(doc.SourcePath)
	if err != nil {
		return fail(fmt.Errorf("reading %s: %w", doc.SourcePath, err))
	}

	f, err := b.translator.Run(doc.Name, b.parser.Parse(src))
	if err != nil {
		return fail(err)
	}
	if err := writeFeature(doc, feature.Emit(f)); err != nil {
		return fail(err)
	}

	res.Status = StatusGenerated
	for _, sc := range f.Scenarios {
		res.Scenarios = append(res.Scenarios, sc.Title)
	}
	return res
}

func (b *Builder) logResult(res Result) {
	attrs := []any{logfields.Document(res.Document.Name), logfields.Status(string(res.Status))}
	switch res.Status {
	case StatusFailed:
		b.logger.Warn("Document failed", append(attrs, logfields.Error(res.Err))...)
	case StatusGenerated:
		b.logger.Debug("Document generated", append(attrs, logfields.Path(res.Document.TargetPath), logfields.Scenarios(len(res.Scenarios)))...)
	default:
		b.logger.Debug("Document up to date", attrs...)
	}
}
