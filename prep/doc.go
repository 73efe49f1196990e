// Package prep chains the row assigner and the quantile clipper into one
// train/test preparation run:
//
//	labelled := sample.Assign(t, keys)      // deterministic train/test label
//	train, test := partition(labelled)      // original relative order kept
//	fitted := winsor.Fit(train[features])   // bounds from training rows only
//	clip(train), clip(test)                 // concurrently
//	reassemble                              // one table, original row order
//
// A Pipeline is plain configuration; Run has no side effects besides
// logging and may be called concurrently.
package prep
