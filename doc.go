// Package prepkit prepares tabular data for model training: reproducible
// train/test assignment and train-fitted quantile clipping.
//
// What is in the box?
//
//   - Deterministic row assignment: a row's key columns are hashed to a
//     fraction in [0, 1); rows below the training fraction are "train".
//     Same key, same label, on every machine and in every row order.
//   - Winsorizing: per-column quantile bounds learned on one matrix and
//     applied to any other with the same columns.
//   - A pipeline that chains the two so bounds never see test rows.
//
// Packages:
//
//	table/       typed columnar table; CSV, SQL and Arrow ingestion
//	matrix/      dense row-major matrix, quantiles, column clamping
//	sample/      hashing row assigner and partition split
//	winsor/      Winsorizer → Fitted → Transform, plus a gonum pipeline stage
//	prep/        end-to-end run: assign, split, fit on train, clip both
//	config/      YAML run parameters
//	cmd/prepkit  CLI over all of the above
//
// Quick example:
//
//	t, _ := table.ReadCSV(f)
//	res, err := prep.New([]string{"customer_id"}, []string{"amount"}, logger).
//		Run(ctx, t)
//	// res.Train, res.Test: clipped partitions; res.Fitted: the bounds.
//
//	go install github.com/katalvlaran/prepkit/cmd/prepkit@latest
package prepkit
