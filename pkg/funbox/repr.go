package funbox

import (
	"fmt"
	"strconv"
)

// Repr renders a payload for the Variant(payload) form. Strings are quoted,
// Stringers (including nested monadic values) use String. Nil pointers
// render as nil without calling String.
func Repr(v any) string {
	if IsNil(v) {
		return "nil"
	}
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case fmt.Stringer:
		return x.String()
	case error:
		return strconv.Quote(x.Error())
	default:
		return fmt.Sprintf("%v", x)
	}
}

// Show formats a variant name with its payload.
func Show(variant string, payload any) string {
	return variant + "(" + Repr(payload) + ")"
}
