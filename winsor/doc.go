// Package winsor clips numeric features column-wise to quantile bounds
// learned from training data (winsorizing).
//
// The fit/transform contract is split into two values:
//
//	w := winsor.New(winsor.WithQuantiles(0.05, 0.95)) // configuration, no state
//	fitted, err := w.Fit(Xtrain)                      // immutable per-column bounds
//	Xc, err := fitted.Transform(Xtest)                // pure; X is not modified
//
// A *Fitted never changes after Fit returns, so one value can serve any
// number of goroutines. Refitting produces a new *Fitted; nothing is merged.
//
// Quantiles use linear interpolation between closest ranks (see
// matrix.Quantile): (0, 1) reproduces the fit data unchanged, and (q, q)
// collapses every column onto its q-quantile.
//
// For pipelines built on gonum matrices, Stage wraps the same logic behind
// the stateful Fit / Transform / FitTransform protocol.
package winsor
