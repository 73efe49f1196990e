// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/prepkit/config"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
	src    source
	out    string
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "prepkit",
		Short: "Deterministic train/test assignment and quantile clipping",
		Long: `prepkit prepares tabular data for model training.

Rows are assigned to "train" or "test" by hashing their key columns, so the
same key always lands in the same partition across runs, machines and
table orderings. Numeric features are then winsorized: bounds are learned
from the training rows only and applied to every row.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zcfg := zap.NewProductionConfig()
			if a.verbose {
				zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := zcfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger

			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "prepkit.yaml", "YAML config file (missing file means defaults)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newSplitCmd(a),
		newWinsorizeCmd(a),
		newPrepareCmd(a),
	)

	return root
}

// addIOFlags registers the input/output flags shared by every subcommand.
func (a *app) addIOFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&a.src.csvPath, "in", "", `input CSV file ("-" for stdin)`)
	f.StringVar(&a.src.arrowPath, "arrow", "", "input Arrow IPC stream file")
	f.StringVar(&a.src.sqlitePath, "sqlite", "", "input SQLite database file")
	f.StringVar(&a.src.query, "query", "", "SQL query to run against --sqlite")
	f.StringVar(&a.out, "out", "-", `output CSV file ("-" for stdout)`)
}
