// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/prepkit/config"
	"github.com/katalvlaran/prepkit/prep"
	"github.com/katalvlaran/prepkit/sample"
	"github.com/katalvlaran/prepkit/table"
	"github.com/katalvlaran/prepkit/winsor"
)

// Values accepted by --fit-on.
const (
	fitOnAll   = "all"
	fitOnTrain = "train"
)

var errFitOn = errors.New(`--fit-on must be "all" or "train"`)

// paramFlags are the run parameters a subcommand may override on top of
// the loaded config.
type paramFlags struct {
	keys      []string
	frac      float64
	sampleCol string
	features  []string
	lower     float64
	upper     float64
	ignoreNaN bool
}

func (p *paramFlags) addSample(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringSliceVar(&p.keys, "key", nil, "key column(s) hashed for assignment")
	f.Float64Var(&p.frac, "frac", sample.DefaultTrainingFrac, "training fraction in [0, 1]")
	f.StringVar(&p.sampleCol, "sample-col", sample.DefaultSampleColumn, "name of the label column")
}

func (p *paramFlags) addWinsor(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringSliceVar(&p.features, "columns", nil, "numeric column(s) to clip")
	f.Float64Var(&p.lower, "lower", winsor.DefaultLower, "lower clipping quantile")
	f.Float64Var(&p.upper, "upper", winsor.DefaultUpper, "upper clipping quantile")
	f.BoolVar(&p.ignoreNaN, "ignore-nan", false, "skip missing values when fitting bounds")
}

// apply copies every flag the user set onto cfg and validates the result.
func (p *paramFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("key") {
		cfg.Sample.Columns = config.Columns(p.keys)
	}
	if f.Changed("frac") {
		cfg.Sample.TrainingFrac = p.frac
	}
	if f.Changed("sample-col") {
		cfg.Sample.SampleColumn = p.sampleCol
	}
	if f.Changed("columns") {
		cfg.Winsor.Columns = config.Columns(p.features)
	}
	if f.Changed("lower") {
		cfg.Winsor.Lower = p.lower
	}
	if f.Changed("upper") {
		cfg.Winsor.Upper = p.upper
	}
	if f.Changed("ignore-nan") {
		cfg.Winsor.IgnoreNaN = p.ignoreNaN
	}

	return cfg.Validate()
}

func newSplitCmd(a *app) *cobra.Command {
	var p paramFlags
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Label every row train or test by hashing its key columns",
		Example: `  prepkit split --in users.csv --key user_id --frac 0.8
  prepkit split --sqlite app.db --query "SELECT * FROM orders" --key customer_id,region`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := p.apply(cmd, a.cfg); err != nil {
				return err
			}
			t, err := a.src.load(cmd.Context(), cmd.InOrStdin())
			if err != nil {
				return err
			}

			out, err := sample.Assign(t, a.cfg.Sample.Columns, a.cfg.SampleOptions()...)
			if err != nil {
				return err
			}
			train, test, err := sample.Split(out, a.cfg.Sample.SampleColumn)
			if err != nil {
				return err
			}
			a.logger.Info("split done",
				zap.Strings("keys", a.cfg.Sample.Columns),
				zap.Int("train", train.Len()),
				zap.Int("test", test.Len()))

			return writeTable(out, a.out, cmd.OutOrStdout())
		},
	}
	a.addIOFlags(cmd)
	p.addSample(cmd)

	return cmd
}

func newWinsorizeCmd(a *app) *cobra.Command {
	var (
		p     paramFlags
		fitOn string
	)
	cmd := &cobra.Command{
		Use:   "winsorize",
		Short: "Clip numeric columns to quantile bounds",
		Long: `Clip numeric columns to per-column quantile bounds.

With --fit-on train the bounds are learned only from rows whose label
column (--sample-col) reads "train", e.g. the output of "prepkit split",
and then applied to every row.`,
		Example: `  prepkit winsorize --in data.csv --columns amount,age --lower 0.01 --upper 0.99
  prepkit split --in data.csv --key id | prepkit winsorize --in - --columns amount --fit-on train`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fitOn != fitOnAll && fitOn != fitOnTrain {
				return errFitOn
			}
			if err := p.apply(cmd, a.cfg); err != nil {
				return err
			}
			t, err := a.src.load(cmd.Context(), cmd.InOrStdin())
			if err != nil {
				return err
			}

			out, fitted, err := winsorizeTable(t, a.cfg, fitOn)
			if err != nil {
				return err
			}
			a.logger.Info("winsorize done",
				zap.Strings("columns", a.cfg.Winsor.Columns),
				zap.String("fit_on", fitOn),
				zap.Float64s("lower", fitted.Lower()),
				zap.Float64s("upper", fitted.Upper()))

			return writeTable(out, a.out, cmd.OutOrStdout())
		},
	}
	a.addIOFlags(cmd)
	p.addWinsor(cmd)
	cmd.Flags().StringVar(&p.sampleCol, "sample-col", sample.DefaultSampleColumn, "label column consulted by --fit-on train")
	cmd.Flags().StringVar(&fitOn, "fit-on", fitOnAll, `rows to fit bounds on: "all" or "train"`)

	return cmd
}

// winsorizeTable fits cfg's winsorizer on t (or its training rows) and
// clips every row of t.
func winsorizeTable(t *table.Table, cfg *config.Config, fitOn string) (*table.Table, *winsor.Fitted, error) {
	cols := cfg.Winsor.Columns
	fitRows := t
	if fitOn == fitOnTrain {
		train, _, err := sample.Split(t, cfg.Sample.SampleColumn)
		if err != nil {
			return nil, nil, err
		}
		fitRows = train
	}

	Xfit, err := fitRows.Floats(cols...)
	if err != nil {
		return nil, nil, err
	}
	fitted, err := cfg.Winsorizer().Fit(Xfit)
	if err != nil {
		return nil, nil, err
	}

	X, err := t.Floats(cols...)
	if err != nil {
		return nil, nil, err
	}
	Y, err := fitted.Transform(X)
	if err != nil {
		return nil, nil, err
	}
	out, err := t.WithFloats(cols, Y)
	if err != nil {
		return nil, nil, err
	}

	return out, fitted, nil
}

func newPrepareCmd(a *app) *cobra.Command {
	var (
		p                 paramFlags
		trainOut, testOut string
	)
	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Split, fit bounds on train rows and clip both partitions",
		Example: `  prepkit prepare --config prepkit.yaml --in data.csv --out prepared.csv
  prepkit prepare --in data.csv --key id --columns amount --train-out train.csv --test-out test.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := p.apply(cmd, a.cfg); err != nil {
				return err
			}
			t, err := a.src.load(cmd.Context(), cmd.InOrStdin())
			if err != nil {
				return err
			}

			res, err := prep.FromConfig(a.cfg, a.logger).Run(cmd.Context(), t)
			if err != nil {
				return err
			}
			if trainOut != "" {
				if err := writeTable(res.Train, trainOut, cmd.OutOrStdout()); err != nil {
					return fmt.Errorf("write train: %w", err)
				}
			}
			if testOut != "" {
				if err := writeTable(res.Test, testOut, cmd.OutOrStdout()); err != nil {
					return fmt.Errorf("write test: %w", err)
				}
			}

			return writeTable(res.Table, a.out, cmd.OutOrStdout())
		},
	}
	a.addIOFlags(cmd)
	p.addSample(cmd)
	p.addWinsor(cmd)
	cmd.Flags().StringVar(&trainOut, "train-out", "", "also write the clipped training partition here")
	cmd.Flags().StringVar(&testOut, "test-out", "", "also write the clipped test partition here")

	return cmd
}
