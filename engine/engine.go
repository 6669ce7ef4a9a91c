package engine

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/awantoch/iconflow/blob"
	"github.com/awantoch/iconflow/config"
	"github.com/awantoch/iconflow/emitter"
	"github.com/awantoch/iconflow/model"
	"github.com/awantoch/iconflow/registry"
	"github.com/awantoch/iconflow/resolver"
	"github.com/awantoch/iconflow/scanner"
	"github.com/awantoch/iconflow/telemetry"
	"github.com/awantoch/iconflow/utils"
)

// Engine runs the scan, resolve and emit pipeline for one configuration.
type Engine struct {
	cfg    *config.Config
	tel    *telemetry.Telemetry
	tracer trace.Tracer
}

// Options change how Generate writes.
type Options struct {
	// DryRun renders into memory and leaves the output directory alone.
	DryRun bool
}

// Result summarizes a generation run.
type Result struct {
	Registry   *registry.Registry
	Assets     int
	Collisions int
	Files      emitter.Result
	Duration   time.Duration
	DryRun     bool
}

// NewEngine creates an engine for cfg. A nil tel records nothing.
func NewEngine(cfg *config.Config, tel *telemetry.Telemetry) *Engine {
	if tel == nil {
		tel = telemetry.Noop()
	}
	return &Engine{cfg: cfg, tel: tel, tracer: tel.Tracer()}
}

// Resolve scans the source tree and builds the registry. Nothing is written.
func (e *Engine) Resolve(ctx context.Context) (*registry.Registry, error) {
	ctx, span := e.tracer.Start(ctx, "resolve")
	defer span.End()

	sc := scanner.New(e.cfg.Source, e.cfg.Exclude)
	assets, err := e.scan(ctx, sc)
	if err != nil {
		return nil, fail(span, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fail(span, err)
	}
	reg, err := resolver.New(e.cfg.Prefix).Resolve(assets)
	if err != nil {
		return nil, fail(span, err)
	}
	span.SetAttributes(attribute.Int("iconflow.symbols", reg.Len()))
	return reg, nil
}

func (e *Engine) scan(ctx context.Context, sc *scanner.Scanner) ([]model.IconAsset, error) {
	_, span := e.tracer.Start(ctx, "scan", trace.WithAttributes(attribute.String("iconflow.source", sc.Root())))
	defer span.End()
	assets, err := sc.Scan()
	if err != nil {
		return nil, fail(span, err)
	}
	span.SetAttributes(attribute.Int("iconflow.assets", len(assets)))
	utils.Debug("scanned %d assets under %s", len(assets), sc.Root())
	return assets, nil
}

// Generate runs the whole pipeline. Every input is validated before the
// first write, so a failed run leaves the output directory as it was.
func (e *Engine) Generate(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	ctx, span := e.tracer.Start(ctx, "generate", trace.WithAttributes(
		attribute.String("iconflow.target", e.cfg.Target),
		attribute.String("iconflow.layout", e.cfg.Layout),
		attribute.Bool("iconflow.dry_run", opts.DryRun),
	))
	defer span.End()

	reg, err := e.Resolve(ctx)
	if err != nil {
		return nil, fail(span, err)
	}

	driver := blob.DriverFilesystem
	if opts.DryRun {
		driver = blob.DriverMemory
	}
	store, err := blob.NewDefaultStore(blob.Config{Driver: driver, Directory: e.cfg.Output})
	if err != nil {
		return nil, fail(span, err)
	}

	emitCtx, emitSpan := e.tracer.Start(ctx, "emit")
	files, err := emitter.New(store, emitter.OptionsFromConfig(e.cfg)).Emit(emitCtx, reg)
	if err != nil {
		fail(emitSpan, err)
		emitSpan.End()
		return nil, fail(span, err)
	}
	emitSpan.SetAttributes(
		attribute.Int("iconflow.files_written", len(files.Written)),
		attribute.Int("iconflow.files_unchanged", len(files.Unchanged)),
		attribute.Int("iconflow.files_removed", len(files.Removed)),
	)
	emitSpan.End()

	res := &Result{
		Registry:   reg,
		Assets:     reg.Len(),
		Collisions: Collisions(reg),
		Files:      files,
		Duration:   time.Since(start),
		DryRun:     opts.DryRun,
	}
	e.tel.Record(telemetry.RunStats{
		Assets:     res.Assets,
		Collisions: res.Collisions,
		Written:    len(files.Written),
		Unchanged:  len(files.Unchanged),
		Removed:    len(files.Removed),
		Duration:   res.Duration,
	})
	return res, nil
}

// Check renders in memory and compares the result with the output directory.
func (e *Engine) Check(ctx context.Context) ([]emitter.Drift, error) {
	ctx, span := e.tracer.Start(ctx, "check")
	defer span.End()

	reg, err := e.Resolve(ctx)
	if err != nil {
		return nil, fail(span, err)
	}
	drift, err := emitter.New(blob.NewFilesystemStore(e.cfg.Output), emitter.OptionsFromConfig(e.cfg)).Diff(ctx, reg)
	if err != nil {
		return nil, fail(span, err)
	}
	span.SetAttributes(attribute.Int("iconflow.drift", len(drift)))
	return drift, nil
}

// Collisions counts the symbols that needed more than one attempt.
func Collisions(reg *registry.Registry) int {
	n := 0
	for _, entry := range reg.Entries() {
		if len(entry.Name.Attempts) > 1 {
			n++
		}
	}
	return n
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
