// Package compare provides the named string orderings available to CLI
// invocations and job files.
package compare

import (
	"cmp"
	"fmt"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Func is a three-way string comparison: negative if a sorts before b, zero
// if equal, positive if after. It must implement a consistent total order.
type Func func(a, b string) int

// Natural orders strings by byte value, the ordering `sort.Strings` uses.
func Natural(a, b string) int {
	return cmp.Compare(a, b)
}

// ByLength orders strings by length alone. Strings of equal length compare
// as equal keys, so a join under ByLength pairs them.
func ByLength(a, b string) int {
	return len(a) - len(b)
}

// Collate returns a locale-aware ordering for the given language tag, backed
// by the Unicode Collation Algorithm.
func Collate(tag language.Tag) Func {
	c := collate.New(tag)
	return c.CompareString
}

// ForName resolves a comparator by name:
//
//	natural          byte-value ordering
//	length           order by string length
//	collate:<bcp47>  locale-aware ordering, e.g. "collate:da" or "collate:en-US"
func ForName(name string) (Func, error) {
	switch {
	case name == "natural":
		return Natural, nil
	case name == "length":
		return ByLength, nil
	case strings.HasPrefix(name, "collate:"):
		tag, err := language.Parse(strings.TrimPrefix(name, "collate:"))
		if err != nil {
			return nil, fmt.Errorf("invalid collation language in %q: %w", name, err)
		}
		return Collate(tag), nil
	default:
		return nil, fmt.Errorf("unknown comparator %q: must be natural, length, or collate:<lang>", name)
	}
}
