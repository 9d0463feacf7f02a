// Package pnn implements the piece name notation: a run of letters in a
// single case naming a piece, with an optional state modifier in front and
// an optional terminal marker behind.
//
//	KING     first side, normal
//	+queen   second side, enhanced
//	-ROOK^   first side, diminished, terminal
package pnn

import (
	"regexp"
	"strings"

	"github.com/notation"
)

// TerminalMarker flags a piece whose loss ends the game. The flag is opaque
// to this package.
const TerminalMarker = "^"

var nameRe = regexp.MustCompile(`^([-+]?)([A-Z]+|[a-z]+)(\^?)$`)

// Name is an immutable, validated piece name. The zero value is not a
// valid name; build one with Parse.
type Name struct {
	value string
}

// Parse validates s and wraps it unchanged; case is significant.
func Parse(s string) (Name, error) {
	if !Valid(s) {
		return Name{}, notation.FormatError("pnn", s)
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

// Valid reports whether s is a well formed piece name.
func Valid(s string) bool { return nameRe.MatchString(s) }

// ValidValue reports whether v coerces to a valid piece name.
func ValidValue(v interface{}) bool {
	s, ok := notation.AsString(v)
	return ok && Valid(s)
}

func (n Name) String() string { return n.value }

func (n Name) parts() (prefix, base, terminal string) {
	m := nameRe.FindStringSubmatch(n.value)
	if m == nil {
		return "", "", ""
	}
	return m[1], m[2], m[3]
}

// BaseName is the letter run without modifiers.
func (n Name) BaseName() string {
	_, base, _ := n.parts()
	return base
}

// State is the state given by the leading modifier.
func (n Name) State() notation.State {
	prefix, _, _ := n.parts()
	st, _ := notation.StateFromPrefix(prefix)
	return st
}

// Side is the side given by the case of the base name. The zero Name
// reports the first side.
func (n Name) Side() notation.Side {
	_, base, _ := n.parts()
	if base == "" {
		return notation.First
	}
	return notation.SideOfCase(base[0])
}

func (n Name) Enhanced() bool   { return n.State() == notation.Enhanced }
func (n Name) Diminished() bool { return n.State() == notation.Diminished }
func (n Name) Normal() bool     { return n.State() == notation.Normal }

func (n Name) Terminal() bool {
	_, _, terminal := n.parts()
	return terminal != ""
}

// FirstPlayer reports whether the base name is upper case.
func (n Name) FirstPlayer() bool { return n.Side() == notation.First }

// SecondPlayer reports whether the base name is lower case.
func (n Name) SecondPlayer() bool { return n.Side() == notation.Second }

// SameBaseName compares base names ignoring case, so "KING" and "+king^"
// share a base name.
func (n Name) SameBaseName(other Name) bool {
	return strings.EqualFold(n.BaseName(), other.BaseName())
}

// Equal compares the exact strings: "KING", "king" and "KING^" all differ.
func (n Name) Equal(other Name) bool { return n.value == other.value }

// WithState returns the name carrying the modifier of state.
func (n Name) WithState(state notation.State) (Name, error) {
	if !state.Valid() {
		return n, notation.ArgumentError("state", state)
	}
	_, base, terminal := n.parts()
	return Name{value: state.Prefix() + base + terminal}, nil
}

// Flip returns the name with its base name in the opposite case.
func (n Name) Flip() Name {
	prefix, base, terminal := n.parts()
	if n.FirstPlayer() {
		base = strings.ToLower(base)
	} else {
		base = strings.ToUpper(base)
	}
	return Name{value: prefix + base + terminal}
}

// WithTerminal returns the name with the terminal marker set or cleared.
func (n Name) WithTerminal(terminal bool) Name {
	prefix, base, _ := n.parts()
	if terminal {
		return Name{value: prefix + base + TerminalMarker}
	}
	return Name{value: prefix + base}
}
