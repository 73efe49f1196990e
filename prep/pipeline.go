// SPDX-License-Identifier: MIT

package prep

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/prepkit/config"
	"github.com/katalvlaran/prepkit/matrix"
	"github.com/katalvlaran/prepkit/sample"
	"github.com/katalvlaran/prepkit/table"
	"github.com/katalvlaran/prepkit/winsor"
)

// Pipeline configures one preparation run.
//
// Fields:
//   - KeyColumns: columns hashed by the row assigner (order matters).
//   - FeatureColumns: numeric columns clipped by the winsorizer; may be empty.
//   - TrainingFrac, SampleColumn: row assigner parameters.
//   - Winsor: clipping quantiles.
//   - Logger: nil means zap.NewNop().
type Pipeline struct {
	KeyColumns     []string
	FeatureColumns []string
	TrainingFrac   float64
	SampleColumn   string
	Winsor         winsor.Winsorizer
	Logger         *zap.Logger
}

// New returns a Pipeline with the package defaults for everything but the
// column lists.
func New(keys, features []string, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		KeyColumns:     keys,
		FeatureColumns: features,
		TrainingFrac:   sample.DefaultTrainingFrac,
		SampleColumn:   sample.DefaultSampleColumn,
		Winsor:         winsor.New(),
		Logger:         logger,
	}
}

// FromConfig builds a Pipeline from loaded configuration.
func FromConfig(cfg *config.Config, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		KeyColumns:     cfg.Sample.Columns,
		FeatureColumns: cfg.Winsor.Columns,
		TrainingFrac:   cfg.Sample.TrainingFrac,
		SampleColumn:   cfg.Sample.SampleColumn,
		Winsor:         cfg.Winsorizer(),
		Logger:         logger,
	}
}

// Result is the output of one Run.
type Result struct {
	// RunID tags every log line of the run.
	RunID uuid.UUID
	// Table is the labelled, clipped input in its original row order.
	Table *table.Table
	// Train and Test are the clipped partitions in original relative order.
	Train, Test *table.Table
	// Fitted holds the bounds learned from Train.
	Fitted *winsor.Fitted
}

// Run labels t, fits clipping bounds on the training rows and applies them
// to both partitions. t is not modified.
//
// Errors:
//   - table.ErrNilTable, the row assigner's validation errors,
//     table.ErrColumnNotFound, table.ErrNotNumeric for a non-numeric feature.
//   - ErrEmptyTrain when no row lands in the training partition.
//   - winsor fit errors (e.g. matrix.ErrNaNInf on missing feature values
//     unless the Winsorizer ignores NaN).
//   - ctx.Err() when ctx is done before clipping completes.
func (p *Pipeline) Run(ctx context.Context, t *table.Table) (*Result, error) {
	runID := uuid.New()
	log := p.logger().With(zap.String("run_id", runID.String()))
	start := time.Now()

	if t == nil {
		return nil, fmt.Errorf("Run: %w", table.ErrNilTable)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.Info("run started",
		zap.Int("rows", t.Len()),
		zap.Strings("keys", p.KeyColumns),
		zap.Strings("features", p.FeatureColumns),
		zap.Float64("training_frac", p.TrainingFrac))

	// Stage 1: label.
	labelled, err := sample.Assign(t, p.KeyColumns,
		sample.WithTrainingFrac(p.TrainingFrac),
		sample.WithSampleColumn(p.SampleColumn))
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	// Stage 2: partition, remembering original positions.
	train, trainRows, err := labelled.Where(p.SampleColumn, hasLabel(sample.Train))
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	test, testRows, err := labelled.Where(p.SampleColumn, hasLabel(sample.Test))
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	log.Debug("rows assigned", zap.Int("train", len(trainRows)), zap.Int("test", len(testRows)))
	if train.Len() == 0 {
		return nil, fmt.Errorf("Run: %d rows at fraction %g: %w", t.Len(), p.TrainingFrac, ErrEmptyTrain)
	}

	// Stage 3: fit on training features only.
	Xtrain, err := train.Floats(p.FeatureColumns...)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	fitted, err := p.Winsor.Fit(Xtrain)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	log.Debug("bounds fitted",
		zap.Float64s("lower", fitted.Lower()),
		zap.Float64s("upper", fitted.Upper()))

	// Stage 4: clip both partitions concurrently.
	var Ytrain, Ytest *matrix.Dense
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		Ytrain, err = clip(gctx, fitted, Xtrain)
		return err
	})
	g.Go(func() error {
		Xtest, err := test.Floats(p.FeatureColumns...)
		if err != nil {
			return err
		}
		Ytest, err = clip(gctx, fitted, Xtest)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Warn("clipping failed", zap.Error(err))
		return nil, fmt.Errorf("Run: %w", err)
	}

	// Stage 5: reassemble in original row order.
	res := &Result{RunID: runID, Fitted: fitted}
	if res.Train, err = train.WithFloats(p.FeatureColumns, Ytrain); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if res.Test, err = test.WithFloats(p.FeatureColumns, Ytest); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	full, err := scatter(labelled.Len(), len(p.FeatureColumns),
		[]*matrix.Dense{Ytrain, Ytest}, [][]int{trainRows, testRows})
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if res.Table, err = labelled.WithFloats(p.FeatureColumns, full); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	log.Info("run finished",
		zap.Int("train", res.Train.Len()),
		zap.Int("test", res.Test.Len()),
		zap.Duration("elapsed", time.Since(start)))

	return res, nil
}

func (p *Pipeline) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}

	return p.Logger
}

func hasLabel(label string) func(table.Value) bool {
	return func(v table.Value) bool {
		return v.Kind() == table.KindString && v.Text() == label
	}
}

func clip(ctx context.Context, f *winsor.Fitted, X *matrix.Dense) (*matrix.Dense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return f.Transform(X)
}

// scatter writes row k of parts[p] to row rows[p][k] of an r×c matrix.
// The row lists must cover 0..r-1 between them.
func scatter(r, c int, parts []*matrix.Dense, rows [][]int) (*matrix.Dense, error) {
	data := make([]float64, r*c)
	for p, part := range parts {
		for k, i := range rows[p] {
			row, err := part.Row(k)
			if err != nil {
				return nil, err
			}
			copy(data[i*c:(i+1)*c], row)
		}
	}

	return matrix.NewFromData(r, c, data)
}
