// Package lists holds helpers for slices and other indexable sequences.
package lists

import (
	"errors"
	"fmt"
)

var (
	ErrNegativeCount = errors.New("count must be an integer from 0 upwards")
	ErrEmpty         = errors.New("empty sequence")
)

// AllButLast returns a function dropping the last n items of a slice. The
// count is validated up front, so a bad n fails before any slice is seen.
func AllButLast[T any](n int) (func([]T) []T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w, got %d", ErrNegativeCount, n)
	}
	return func(s []T) []T {
		return s[:max(len(s)-n, 0)]
	}, nil
}

// Uncons splits a slice into its head and tail.
func Uncons[T any](s []T) (T, []T, error) {
	if len(s) == 0 {
		var zero T
		return zero, nil, ErrEmpty
	}
	return s[0], s[1:], nil
}

// Categorise splits a slice by predicates: one output slice per predicate,
// plus a final slice for items no predicate caught. Without unique an item
// lands in every slice whose predicate it satisfies; with unique only in the
// first.
func Categorise[T any](preds []func(T) bool, unique bool) func([]T) [][]T {
	return func(s []T) [][]T {
		out := make([][]T, len(preds)+1)
		for i := range out {
			out[i] = []T{}
		}

		for _, item := range s {
			caught := false
			for i, pred := range preds {
				if pred(item) {
					out[i] = append(out[i], item)
					caught = true
					if unique {
						break
					}
				}
			}
			if !caught {
				out[len(preds)] = append(out[len(preds)], item)
			}
		}
		return out
	}
}

// AddColumn appends one value from column to a copy of each row. Output
// stops at the shorter of rows and column.
func AddColumn[T any](rows [][]T, column []T) [][]T {
	n := min(len(rows), len(column))
	out := make([][]T, n)
	for i := range n {
		row := make([]T, len(rows[i]), len(rows[i])+1)
		copy(row, rows[i])
		out[i] = append(row, column[i])
	}
	return out
}
