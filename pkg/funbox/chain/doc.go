// Package chain provides a fluent, context-carrying wrapper around
// either.Either[error, T] for building synchronous chains.
//
// Every chain gets a correlation id when it starts. The id is kept by every
// step, so log lines from one chain can be grouped.
//
// Key operations:
// - Start/FromValue/FromResult: begin a chain
// - Then/ThenTry/Map: sequence steps; a Left or a done context short-circuits
// - Ensure/Log: side effects that leave the result untouched
// - Or/And: pick among alternative or required chains
// - RepeatUntil/While: loop a step while the chain stays Right
// - ValidateAll: run validators, stopping at the first error or joining all
// - Finally: collapse the chain into a concrete value
package chain
