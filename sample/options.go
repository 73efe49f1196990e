// SPDX-License-Identifier: MIT

package sample

// Defaults.
const (
	// DefaultTrainingFrac is the share of keys expected in the train partition.
	DefaultTrainingFrac = 0.8

	// DefaultSampleColumn names the label column added by Assign.
	DefaultSampleColumn = "sample"
)

// Options configures Assign.
//
// Fields:
//   - TrainingFrac: threshold in [0, 1]; validated by Assign, not here, so
//     that a bad value surfaces as ErrInvalidFraction.
//   - SampleColumn: name of the label column; an existing column with this
//     name is overwritten.
type Options struct {
	TrainingFrac float64
	SampleColumn string
}

// DefaultOptions returns Options{DefaultTrainingFrac, DefaultSampleColumn}.
func DefaultOptions() Options {
	return Options{
		TrainingFrac: DefaultTrainingFrac,
		SampleColumn: DefaultSampleColumn,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithTrainingFrac sets the training fraction.
func WithTrainingFrac(f float64) Option {
	return func(o *Options) { o.TrainingFrac = f }
}

// WithSampleColumn sets the label column name.
func WithSampleColumn(name string) Option {
	return func(o *Options) { o.SampleColumn = name }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
