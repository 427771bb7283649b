// Package classes joins utility class fragments into a single class string.
//
// Join never deduplicates: repeated tokens are preserved in order because the
// external stylesheet resolves conflicts by last-declared-wins.
package classes

import (
	"strings"
)

const separator = " "

// Optional is a class fragment that may be absent. The zero value is None.
type Optional struct {
	value string
	set   bool
}

// None is the absent fragment.
var None = Optional{}

// Some wraps a present class fragment.
func Some(class string) Optional {
	return Optional{value: class, set: true}
}

// Get returns the fragment and whether it is present.
func (o Optional) Get() (string, bool) {
	return o.value, o.set
}

// String returns the fragment, or "" when absent.
func (o Optional) String() string {
	if !o.set {
		return ""
	}
	return o.value
}

// Join concatenates the non-empty fragments, trimmed, with a single space.
func Join(parts ...string) string {
	var b strings.Builder
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(separator)
		}
		b.WriteString(part)
	}
	return b.String()
}

// JoinAny is the loosely typed form of Join. Strings, Optional values and
// string slices contribute. Anything else is ignored, including numbers and
// other values that merely implement fmt.Stringer.
func JoinAny(parts ...any) string {
	fragments := make([]string, 0, len(parts))
	for _, part := range parts {
		switch v := part.(type) {
		case string:
			fragments = append(fragments, v)
		case Optional:
			fragments = append(fragments, v.String())
		case *Optional:
			if v != nil {
				fragments = append(fragments, v.String())
			}
		case []string:
			fragments = append(fragments, Join(v...))
		}
	}
	return Join(fragments...)
}

// If returns class when cond holds and "" otherwise.
func If(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}

// IfElse returns a when cond holds and b otherwise.
func IfElse(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

// Tokens splits a class string into its individual classes.
func Tokens(class string) []string {
	return strings.Fields(class)
}
