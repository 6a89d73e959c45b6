// Package text has curried helpers for strings, command line arguments and
// date layouts. Layouts are Go reference layouts ("02/01/2006"), not strftime
// directives.
package text

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"
	"unicode"
)

// Join returns a function joining the strings of a sequence with sep.
func Join(sep string) func(iter.Seq[string]) string {
	return func(items iter.Seq[string]) string {
		return strings.Join(slices.Collect(items), sep)
	}
}

// IsFlag reports whether arg looks like a command line flag. "--" counts.
func IsFlag(arg string) bool {
	return strings.HasPrefix(arg, "-")
}

// ArgIsNaturalNum reports whether arg is a non-empty run of digits.
func ArgIsNaturalNum(arg string) bool {
	if arg == "" {
		return false
	}
	for _, r := range arg {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func Strptime(layout string) func(string) (time.Time, error) {
	return func(value string) (time.Time, error) {
		t, err := time.Parse(layout, value)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse %q with layout %q: %w", value, layout, err)
		}
		return t, nil
	}
}

func Strftime(layout string) func(time.Time) string {
	return func(t time.Time) string {
		return t.Format(layout)
	}
}

// ConvertFormat reformats a date string from one layout to another.
func ConvertFormat(from, to string) func(string) (string, error) {
	parse, format := Strptime(from), Strftime(to)
	return func(value string) (string, error) {
		t, err := parse(value)
		if err != nil {
			return "", err
		}
		return format(t), nil
	}
}
