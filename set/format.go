package set

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Formatter renders one element for display. The container never formats
// elements itself; String delegates every element to the formatter.
type Formatter[T any] func(v T) string

// SetFormatter swaps the display formatter. A nil formatter restores the
// default.
func (s *DynamicSet[T]) SetFormatter(f Formatter[T]) {
	if f == nil {
		f = Describe[T]
	}
	s.format = f
}

// Describe is the default formatter: runes and single-rune strings are
// single-quoted, longer strings double-quoted, everything else prints in
// its %v form.
func Describe[T any](v T) string {
	switch t := any(v).(type) {
	case rune:
		return "'" + string(t) + "'"
	case string:
		if utf8.RuneCountInString(t) == 1 {
			return "'" + t + "'"
		}
		return "\"" + t + "\""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// String renders the set as {e1, e2, ...} in enumeration order.
func (s *DynamicSet[T]) String() string {
	parts := make([]string, 0, s.count)
	for _, v := range s.Values() {
		parts = append(parts, s.format(v))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
