// Package mappings transforms maps without modifying them in place.
//
// Most functions are curried so they can be handed to a map over a slice of
// records; a few have both forms (FilterKeys/FilterKeysC, MapValues/MapValuesC).
package mappings

import (
	"errors"
	"fmt"
	"maps"
)

var ErrMissingKey = errors.New("missing key")

// ToDict builds a new map by applying every function in funs to the same
// object: ToDict(funs)(obj)[k] == funs[k](obj).
func ToDict[K comparable, X, V any](funs map[K]func(X) V) func(X) map[K]V {
	return func(obj X) map[K]V {
		out := make(map[K]V, len(funs))
		for k, f := range funs {
			out[k] = f(obj)
		}
		return out
	}
}

// WithCalculated returns a copy of a map updated with values computed from it.
func WithCalculated[K comparable, V any](funs map[K]func(map[K]V) V) func(map[K]V) map[K]V {
	toDict := ToDict(funs)
	return func(m map[K]V) map[K]V {
		return UpdatedWith(m, toDict(m))
	}
}

// UpdatedWith returns a copy of orig with newValues added or overriding.
func UpdatedWith[K comparable, V any](orig, newValues map[K]V) map[K]V {
	out := make(map[K]V, len(orig)+len(newValues))
	maps.Copy(out, orig)
	maps.Copy(out, newValues)
	return out
}

// PullKey indexes objs by keyFun. Later objects win on duplicate keys.
func PullKey[K comparable, X any](keyFun func(X) K) func([]X) map[K]X {
	return func(objs []X) map[K]X {
		out := make(map[K]X, len(objs))
		for _, obj := range objs {
			out[keyFun(obj)] = obj
		}
		return out
	}
}

func MapValues[K comparable, X, Y any](f func(X) Y, m map[K]X) map[K]Y {
	out := make(map[K]Y, len(m))
	for k, v := range m {
		out[k] = f(v)
	}
	return out
}

func MapValuesC[K comparable, X, Y any](f func(X) Y) func(map[K]X) map[K]Y {
	return func(m map[K]X) map[K]Y {
		return MapValues(f, m)
	}
}

// CoerceValues returns a copy of a map with the values named in spec
// converted. Every key in spec must be present.
func CoerceValues[K comparable, V any](spec map[K]func(V) (V, error)) func(map[K]V) (map[K]V, error) {
	return func(m map[K]V) (map[K]V, error) {
		out := maps.Clone(m)
		if out == nil {
			out = make(map[K]V)
		}
		for k, f := range spec {
			v, ok := m[k]
			if !ok {
				return nil, fmt.Errorf("%w: %v", ErrMissingKey, k)
			}
			coerced, err := f(v)
			if err != nil {
				return nil, fmt.Errorf("coerce %v: %w", k, err)
			}
			out[k] = coerced
		}
		return out, nil
	}
}

func FilterKeys[K comparable, V any](pred func(K) bool, m map[K]V) map[K]V {
	out := make(map[K]V)
	for k, v := range m {
		if pred(k) {
			out[k] = v
		}
	}
	return out
}

func FilterKeysC[K comparable, V any](pred func(K) bool) func(map[K]V) map[K]V {
	return func(m map[K]V) map[K]V {
		return FilterKeys(pred, m)
	}
}

// WithoutKeys returns a copy of a map with the given keys removed.
func WithoutKeys[K comparable, V any](keys ...K) func(map[K]V) map[K]V {
	drop := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	return FilterKeysC[K, V](func(k K) bool {
		_, found := drop[k]
		return !found
	})
}

// RowToDict zips keys with a row of values. Extra values are ignored, and
// keys beyond the end of the row are left out.
func RowToDict[K comparable, V any](keys []K) func([]V) map[K]V {
	return func(row []V) map[K]V {
		n := min(len(keys), len(row))
		out := make(map[K]V, n)
		for i := range n {
			out[keys[i]] = row[i]
		}
		return out
	}
}

// DictToRow reads the given keys out of a map, in order.
func DictToRow[K comparable, V any](keys []K) func(map[K]V) ([]V, error) {
	return func(m map[K]V) ([]V, error) {
		row := make([]V, 0, len(keys))
		for _, k := range keys {
			v, ok := m[k]
			if !ok {
				return nil, fmt.Errorf("%w: %v", ErrMissingKey, k)
			}
			row = append(row, v)
		}
		return row, nil
	}
}
