// Package funbox holds the contract shared by the monadic wrappers in the
// maybe and either packages, together with a few helpers they build on.
//
// Sub-packages:
//   - maybe: Just/Nothing for optional values
//   - either: Left/Right for values that may carry a failure payload
//   - chain: fluent, context-carrying Either chains
//   - stream: channel-lifted Either stages evaluated by worker lines
//   - iterators, mappings, lists, pairs, op, fn, passthrough, text: small
//     pure helpers (partition, sift, dictionary transforms, curried operators)
//
// Absence and failure are data (Nothing, Left) and propagate through Bind.
// Only contract violations are raised, through Fail.
package funbox
