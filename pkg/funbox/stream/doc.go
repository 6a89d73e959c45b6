// Package stream lifts Either operations over channels so that independent
// chains can be evaluated by several worker lines at once. Values flowing
// through a stream are either.Either[error, T].
//
// Common usage:
// - ToChanMany/ToChanManyRights: feed values into a channel
// - Bind/FMap/Try: run a stage over a channel with a fixed number of lines
// - Fold: collapse every value into a concrete result
// - Split/Partition: fan a channel out into two
// - FromChanMany: collect a channel into a slice
//
// Worker count and the handling of values left over after cancellation are
// carried by the context, see WithWorkerOptions and WithProcessOptions.
// Output order is not preserved when more than one line runs.
package stream
