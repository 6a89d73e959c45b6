// Package maybe provides Maybe[T], a closed {Just, Nothing} union that lets
// absent values propagate through a series of operations without explicit
// checks at each step.
//
// - Just/Nothing/Unit: construct a Maybe
// - Bind: sequence a function returning a Maybe; Nothing short-circuits
// - FMap: transform the payload of a Just
// - Join: flatten Maybe[Maybe[T]]
// - Get/OrElse: guarded unwrapping; Value fails on Nothing
package maybe
