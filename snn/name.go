// Package snn implements the style name notation: a capitalised
// alphanumeric word such as "Chess", "Shogi" or "Chess960".
package snn

import (
	"regexp"

	"github.com/notation"
)

var nameRe = regexp.MustCompile(`^[A-Z][a-z0-9]*$`)

// Name is an immutable, validated style name.
type Name struct {
	value string
}

// Parse validates s and wraps it unchanged.
func Parse(s string) (Name, error) {
	if !Valid(s) {
		return Name{}, notation.FormatError("snn", s)
	}
	return Name{value: s}, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Name {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// Valid reports whether s is a capitalised style name.
func Valid(s string) bool { return nameRe.MatchString(s) }

// ValidValue reports whether v coerces to a valid style name.
func ValidValue(v interface{}) bool {
	s, ok := notation.AsString(v)
	return ok && Valid(s)
}

func (n Name) String() string { return n.value }

func (n Name) Equal(other Name) bool { return n.value == other.value }
