// Package either provides Either[L, R], a closed {Left, Right} union. Right
// carries a success payload, Left a failure payload (usually a diagnostic).
//
// Failure is sticky: binding a Left returns the same Left and the bound
// function is never called, so the first diagnostic in a chain survives.
//
// Each constructor takes the type parameter of the other side first, since
// its own side is inferred from the argument: Left[R](l) and Right[L](r) both
// build an Either[L, R]. Spelled out in full that reads Left[R, L] but
// Right[L, R].
//
// Highlights:
// - Left/Right/Unit/FromResult/FromMaybe: construct an Either
// - Bind/FMap/Join: sequence, transform and flatten
// - Try/FailOnError/Validate: bring (value, error) and validation funcs in
// - Tee/DoubleTee: side effects that leave the value untouched
// - Fold: collapse to a concrete value
// - Interact: print Right payloads to one writer and Left payloads to another
package either
