// Package laws checks the monad laws for any funbox.Monad implementation.
// Each check returns false together with the two sides that differ.
package laws

import "github.com/ib-77/funbox/pkg/funbox"

// Violation describes the two sides of a law that did not compare equal.
type Violation[M any] struct {
	Law   string
	Left  M
	Right M
}

// LeftIdentity checks unit(x).Bind(f) == f(x).
func LeftIdentity[T any, M funbox.Monad[T, M]](unit func(T) M, f func(T) M, x T,
	eq func(a, b M) bool) (bool, Violation[M]) {

	l := unit(x).Bind(f)
	r := f(x)
	return eq(l, r), Violation[M]{Law: "left identity", Left: l, Right: r}
}

// RightIdentity checks m.Bind(unit) == m.
func RightIdentity[T any, M funbox.Monad[T, M]](unit func(T) M, m M,
	eq func(a, b M) bool) (bool, Violation[M]) {

	l := m.Bind(unit)
	return eq(l, m), Violation[M]{Law: "right identity", Left: l, Right: m}
}

// Associativity checks m.Bind(f).Bind(g) == m.Bind(x -> f(x).Bind(g)).
func Associativity[T any, M funbox.Monad[T, M]](m M, f, g func(T) M,
	eq func(a, b M) bool) (bool, Violation[M]) {

	l := m.Bind(f).Bind(g)
	r := m.Bind(func(x T) M {
		return f(x).Bind(g)
	})
	return eq(l, r), Violation[M]{Law: "associativity", Left: l, Right: r}
}

// All runs the three checks for one input and returns the first violation.
func All[T any, M funbox.Monad[T, M]](unit func(T) M, m M, f, g func(T) M, x T,
	eq func(a, b M) bool) (bool, Violation[M]) {

	if ok, v := LeftIdentity(unit, f, x, eq); !ok {
		return false, v
	}
	if ok, v := RightIdentity(unit, m, eq); !ok {
		return false, v
	}
	return Associativity(m, f, g, eq)
}
