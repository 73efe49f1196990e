// Package sample assigns rows of a table to a "train" or "test" partition
// deterministically from one or more key columns.
//
// 🚀 How it works
//
//	For every row the key values are rendered to canonical text, joined with
//	"|", hashed with MD5, and the 128-bit digest is mapped onto [0, 1).
//	Rows whose fraction is below the training fraction are "train".
//
// ✨ Guarantees
//   - Determinism: the same key and fraction give the same label in every
//     run and every process; nothing depends on seeds, row order or size.
//   - Grouping: rows with equal key tuples always share a label.
//   - Monotonicity: the per-row fraction never depends on the threshold, so
//     the train set for 0.5 is a subset of the train set for 0.8.
//   - Convergence: the realized train share approaches the fraction as the
//     number of distinct keys grows; small tables can deviate a lot.
//
// ⚙️ Usage:
//
//	out, err := sample.Assign(t, []string{"user_id"}, sample.WithTrainingFrac(0.9))
//	train, test, err := sample.Split(out, sample.DefaultSampleColumn)
//
// The hash, the text encoding (see table.Value.Text) and the separator are
// pinned. Implementations that render each cell independently with the same
// encoding reproduce the split exactly; renderers that coerce a whole row to
// one type first (so an int key beside a float key becomes "1.0") do not.
package sample
