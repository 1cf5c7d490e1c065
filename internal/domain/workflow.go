package domain

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/trimsrc/internal/adapter"
	"github.com/mouse-blink/trimsrc/internal/controller"
	m "github.com/mouse-blink/trimsrc/internal/model"
)

const outputFilePerm = 0o644

// PlanArgs selects the input files and the rules applied to them.
type PlanArgs struct {
	Paths   []m.Path
	Exclude []string
	Rules   m.RuleSet
	Output  m.Path
	Threads int
}

// RewriteArgs extends PlanArgs for runs that write their output.
type RewriteArgs struct {
	PlanArgs
	// Manifest writes a summary of the run into the output directory.
	Manifest bool
}

// Workflow drives the tree walk: it rewrites every selected file and places
// the result under the output directory.
type Workflow interface {
	// Plan classifies every file and computes destinations without writing.
	Plan(ctx context.Context, args PlanArgs) ([]m.FileReport, error)
	// Rewrite classifies every file and writes the outputs. A failing file
	// never stops the others; the returned error wraps ErrFilesFailed when
	// at least one file failed.
	Rewrite(ctx context.Context, args RewriteArgs) ([]m.FileReport, error)
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	reportStore adapter.ReportStore
	ui          controller.UI
	logger      *zap.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	logger *zap.Logger,
) Workflow {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &workflow{
		fsAdapter:   fsAdapter,
		reportStore: reportStore,
		ui:          ui,
		logger:      logger,
	}
}

func (w *workflow) Plan(ctx context.Context, args PlanArgs) ([]m.FileReport, error) {
	if err := w.ui.Start(controller.WithPlanMode()); err != nil {
		return nil, err
	}
	defer w.ui.Close()

	reports, _, err := w.prepare(ctx, args)
	if err != nil {
		return nil, err
	}

	for i := range reports {
		if !reports[i].Failed() {
			reports[i].Status = m.StatusPlanned
		}

		w.ui.DisplayFileDone(reports[i])
	}

	return reports, w.finish(reports, nil)
}

func (w *workflow) Rewrite(ctx context.Context, args RewriteArgs) ([]m.FileReport, error) {
	if args.Output == "" {
		return nil, fmt.Errorf("output directory is required")
	}

	if err := w.ui.Start(controller.WithRewriteMode()); err != nil {
		return nil, err
	}
	defer w.ui.Close()

	reports, outputs, err := w.prepare(ctx, args.PlanArgs)
	if err != nil {
		return nil, err
	}

	if err := w.write(ctx, args.Threads, reports, outputs); err != nil {
		return nil, err
	}

	var manifestErr error

	if args.Manifest {
		if manifestErr = w.reportStore.SaveManifest(args.Output, reports); manifestErr != nil {
			w.logger.Error("failed to write manifest", zap.String("out", string(args.Output)), zap.Error(manifestErr))
		}
	}

	return reports, w.finish(reports, manifestErr)
}

// prepare walks the inputs, rewrites every file in memory and plans the
// destinations. Per-file problems end up in the reports; the error is
// reserved for problems that concern the whole run.
func (w *workflow) prepare(ctx context.Context, args PlanArgs) ([]m.FileReport, [][]byte, error) {
	rules := args.Rules.WithDefaults()
	if err := ValidateRuleSet(rules); err != nil {
		return nil, nil, err
	}

	filter, err := newSourceFilter(args.Exclude, rules.Extensions, args.Output)
	if err != nil {
		return nil, nil, err
	}

	sources, err := w.fsAdapter.Get(args.Paths)
	if err != nil {
		return nil, nil, err
	}

	sources = filter.apply(sources)
	threads := normalizeThreads(args.Threads)

	w.ui.DisplayStart(len(sources), threads)
	w.logger.Debug("rewriting sources",
		zap.Int("files", len(sources)),
		zap.Int("threads", threads),
		zap.String("mode", string(rules.Output.Mode)),
	)

	rewriter := NewRewriter(rules, w.logger)
	repackager := NewRepackager(args.Output, rules.Output)

	reports := make([]m.FileReport, len(sources))
	outputs := make([][]byte, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, src := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			reports[i], outputs[i] = w.processSource(src, rewriter, repackager)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	if n := MarkCollisions(reports); n > 0 {
		for _, r := range reports {
			if errors.Is(r.Err, ErrDestinationCollision) {
				w.logger.Error("destination collision", zap.String("path", string(r.Source.Path)), zap.Error(r.Err))
			}
		}
	}

	return reports, outputs, nil
}

func (w *workflow) processSource(src m.Source, rewriter Rewriter, repackager *Repackager) (m.FileReport, []byte) {
	report := m.FileReport{Source: src, Status: m.StatusRewritten}

	if src.Err != nil {
		return w.fail(report, fmt.Errorf("walk %s: %w", src.Path, src.Err)), nil
	}

	content, err := w.fsAdapter.ReadFile(src.Path)
	if err != nil {
		return w.fail(report, fmt.Errorf("read %s: %w", src.Path, err)), nil
	}

	doc := SplitDocument(content)

	if repackager.NeedsKey() {
		key, err := repackager.Key(src, doc.Lines)
		if err != nil {
			return w.fail(report, err), nil
		}

		report.PackageKey = key
	}

	report.Destination = repackager.Destination(src, report.PackageKey)

	lines, stats, warning := rewriter.RewriteLines(src.Path, doc.Lines)
	report.Stats = stats

	if warning != nil {
		report.Status = m.StatusWarned
		report.Warnings = append(report.Warnings, warning.Error())
	}

	return report, JoinDocument(m.Document{Lines: lines, TrailingNewline: doc.TrailingNewline})
}

func (w *workflow) write(ctx context.Context, threads int, reports []m.FileReport, outputs [][]byte) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(normalizeThreads(threads))

	for i := range reports {
		if reports[i].Failed() {
			w.ui.DisplayFileDone(reports[i])
			continue
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			if err := w.writeOutput(reports[i].Destination, outputs[i]); err != nil {
				reports[i] = w.fail(reports[i], err)
			}

			w.ui.DisplayFileDone(reports[i])

			return nil
		})
	}

	return g.Wait()
}

func (w *workflow) writeOutput(dest m.Path, content []byte) error {
	dir := filepath.Dir(string(dest))

	if err := w.fsAdapter.MkdirAll(m.Path(dir)); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	if err := w.fsAdapter.WriteFile(dest, content, outputFilePerm); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}

	return nil
}

func (w *workflow) fail(report m.FileReport, err error) m.FileReport {
	w.logger.Error("failed to rewrite file", zap.String("path", string(report.Source.Path)), zap.Error(err))

	report.Status = m.StatusFailed
	report.Err = err

	return report
}

func (w *workflow) finish(reports []m.FileReport, err error) error {
	displayErr := w.ui.DisplaySummary(reports)
	w.ui.Wait()

	summary := m.Summarize(reports)
	if summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrFilesFailed, summary.Failed, summary.Files)
	}

	if err != nil {
		return err
	}

	return displayErr
}

func normalizeThreads(threads int) int {
	if threads <= 0 {
		return 1
	}

	return threads
}
