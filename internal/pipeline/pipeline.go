// Package pipeline runs the batch job: load both datasets, train every
// configured variant, classify the test set and write the reports.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/FrenchMajesty/bow-classifier/internal/config"
	"github.com/FrenchMajesty/bow-classifier/internal/logging"
	"github.com/FrenchMajesty/bow-classifier/pkg/classifier"
	"github.com/FrenchMajesty/bow-classifier/pkg/dataset"
	"github.com/FrenchMajesty/bow-classifier/pkg/report"
	"github.com/FrenchMajesty/bow-classifier/pkg/types"
)

// Result is the outcome of one model variant
type Result struct {
	Model      classifier.TrainingSummary
	Evaluation *classifier.Evaluation
}

// Runner executes runs against a report writer
type Runner struct {
	cfg    *config.Config
	logger *zap.Logger
	writer report.Writer
}

// NewRunner creates a runner. If writer is nil, reports go to files under cfg.OutputDir.
func NewRunner(cfg *config.Config, logger *zap.Logger, writer report.Writer) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if writer == nil {
		writer = report.NewFileWriter(cfg.OutputDir)
	}

	return &Runner{
		cfg:    cfg,
		logger: logger,
		writer: writer,
	}, nil
}

// Run loads the datasets and evaluates every model variant concurrently.
// Results are returned in configuration order.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	runID := uuid.New()
	logger := r.logger.With(zap.String("run_id", runID.String()))

	training, err := r.load(logger, r.cfg.Training)
	if err != nil {
		return nil, err
	}
	test, err := r.load(logger, r.cfg.Test)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(r.cfg.Models))
	observer := logging.NewZapObserver(logger)

	g, gctx := errgroup.WithContext(ctx)
	for i, model := range r.cfg.Models {
		i, model := i, model
		g.Go(func() error {
			result, err := r.runModel(gctx, runID, model, training, test, observer)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) load(logger *zap.Logger, ds config.DatasetConfig) ([]types.Record, error) {
	logger.Debug("parsing dataset", zap.String("path", ds.Path))

	records, err := dataset.Load(ds.Path, ds.HasHeader)
	if err != nil {
		return nil, err
	}

	stats := dataset.Summarize(records)
	logger.Info("dataset loaded",
		zap.String("path", ds.Path),
		zap.Int("records", stats.Records),
		zap.Int("words", stats.Words),
		zap.Int("yes", stats.Yes),
		zap.Int("no", stats.No),
	)
	return records, nil
}

func (r *Runner) runModel(ctx context.Context, runID uuid.UUID, model config.ModelConfig, training, test []types.Record, observer classifier.Observer) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	clf, err := classifier.NewClassifier(training, model.ClassifierConfig(observer))
	if err != nil {
		return Result{}, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	evaluation, err := clf.ClassifyAll(test)
	if err != nil {
		return Result{}, err
	}

	if err := r.writer.WriteTrace(clf.Name(), test, evaluation.Predictions); err != nil {
		return Result{}, fmt.Errorf("failed to save trace: %w", err)
	}
	if err := r.writer.WriteEvaluation(clf.Name(), evaluation.Report); err != nil {
		return Result{}, fmt.Errorf("failed to save evaluation: %w", err)
	}

	summary := clf.Summary()
	err = r.writer.WriteSummary(report.Summary{
		RunID:         runID,
		Model:         summary,
		MinOccurrence: clf.MinOccurrence(),
		Delta:         clf.Delta(),
		Report:        evaluation.Report,
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to save summary: %w", err)
	}

	return Result{
		Model:      summary,
		Evaluation: evaluation,
	}, nil
}
