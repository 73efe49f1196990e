// SPDX-License-Identifier: MIT

package winsor

// Defaults.
const (
	// DefaultLower is the lower clipping quantile (5th percentile).
	DefaultLower = 0.05

	// DefaultUpper is the upper clipping quantile (95th percentile).
	DefaultUpper = 0.95
)

// Option mutates a Winsorizer under construction. Values are validated by
// Fit so that bad input surfaces as an error rather than a panic.
type Option func(*Winsorizer)

// WithLower sets the lower quantile.
func WithLower(q float64) Option {
	return func(w *Winsorizer) { w.Lower = q }
}

// WithUpper sets the upper quantile.
func WithUpper(q float64) Option {
	return func(w *Winsorizer) { w.Upper = q }
}

// WithQuantiles sets both quantiles.
func WithQuantiles(lower, upper float64) Option {
	return func(w *Winsorizer) { w.Lower, w.Upper = lower, upper }
}

// WithIgnoreNaN makes Fit skip NaN cells per column instead of rejecting them.
func WithIgnoreNaN() Option {
	return func(w *Winsorizer) { w.IgnoreNaN = true }
}
