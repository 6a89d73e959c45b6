// Package op provides curried operators, handy as arguments to Filter,
// Partition, Sift and friends.
//
// The curried argument is always the right-hand operand:
//
//	Lt(3)(x)           == x < 3
//	TakeAway(2)(x)     == x - 2
//	TakeAwayFrom(2)(x) == 2 - x
//	DivideBy(2)(x)     == x / 2
//
// Integer division and modulo floor towards negative infinity, so the sign
// of Modulo follows the divisor.
package op
