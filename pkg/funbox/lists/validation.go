package lists

import "math/big"

// IsInt reports whether v holds a Go integer type (or a *big.Int).
func IsInt(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		*big.Int:
		return true
	}
	return false
}

// IsNaturalNumber reports whether v is an integer >= 0.
func IsNaturalNumber(v any) bool {
	switch n := v.(type) {
	case int:
		return n >= 0
	case int8:
		return n >= 0
	case int16:
		return n >= 0
	case int32:
		return n >= 0
	case int64:
		return n >= 0
	case *big.Int:
		return n != nil && n.Sign() >= 0
	}
	return IsInt(v)
}
