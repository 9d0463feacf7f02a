// Package pin implements the compact piece notation: a single ASCII letter
// whose case gives the side, optionally preceded by a state modifier.
//
//	K   first side king, normal
//	+r  second side rook, enhanced
//	-p  second side pawn, diminished
package pin

import (
	"regexp"

	"github.com/hashicorp/go-multierror"

	"github.com/notation"
)

var pinRe = regexp.MustCompile(`^([-+]?)([A-Za-z])$`)

// Identifier is an immutable compact piece: type, side and state.
// The zero value is not a valid identifier; use New or Parse to build one.
type Identifier struct {
	typ   Type
	side  notation.Side
	state notation.State
}

// New validates each field and returns the identifier they describe.
// Every field that fails is reported.
func New(t Type, side notation.Side, state notation.State) (Identifier, error) {
	var errs error
	if !t.Valid() {
		errs = multierror.Append(errs, notation.ArgumentError("type", t))
	}
	if !side.Valid() {
		errs = multierror.Append(errs, notation.ArgumentError("side", side))
	}
	if !state.Valid() {
		errs = multierror.Append(errs, notation.ArgumentError("state", state))
	}
	if errs != nil {
		return Identifier{}, errs
	}
	return Identifier{typ: t, side: side, state: state}, nil
}

// MustNew is like New but panics on invalid fields.
func MustNew(t Type, side notation.Side, state notation.State) Identifier {
	id, err := New(t, side, state)
	if err != nil {
		panic(err)
	}
	return id
}

// Parse reads a compact piece such as "K", "+r" or "-P".
func Parse(s string) (Identifier, error) {
	m := pinRe.FindStringSubmatch(s)
	if m == nil {
		return Identifier{}, notation.FormatError("pin", s)
	}
	state, _ := notation.StateFromPrefix(m[1])
	letter := m[2][0]
	t, _ := TypeOf(letter)
	return Identifier{typ: t, side: notation.SideOfCase(letter), state: state}, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Identifier {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Valid reports whether s is a well formed compact piece.
func Valid(s string) bool { return pinRe.MatchString(s) }

func (id Identifier) Type() Type            { return id.typ }
func (id Identifier) Side() notation.Side   { return id.side }
func (id Identifier) State() notation.State { return id.state }

// Letter is the type rendered in the case of the side.
func (id Identifier) Letter() string { return string(rune(id.typ.Letter(id.side))) }

// Prefix is the state modifier, "+", "-" or "".
func (id Identifier) Prefix() string { return id.state.Prefix() }

func (id Identifier) String() string { return id.Prefix() + id.Letter() }

func (id Identifier) Enhanced() bool     { return id.state == notation.Enhanced }
func (id Identifier) Diminished() bool   { return id.state == notation.Diminished }
func (id Identifier) Normal() bool       { return id.state == notation.Normal }
func (id Identifier) FirstPlayer() bool  { return id.side == notation.First }
func (id Identifier) SecondPlayer() bool { return id.side == notation.Second }

// Enhance returns the identifier in the enhanced state.
func (id Identifier) Enhance() Identifier { return id.to(notation.Enhanced) }

// Unenhance returns the identifier in the normal state if it is enhanced,
// and unchanged otherwise.
func (id Identifier) Unenhance() Identifier {
	if !id.Enhanced() {
		return id
	}
	return id.to(notation.Normal)
}

// Diminish returns the identifier in the diminished state.
func (id Identifier) Diminish() Identifier { return id.to(notation.Diminished) }

// Undiminish returns the identifier in the normal state if it is
// diminished, and unchanged otherwise.
func (id Identifier) Undiminish() Identifier {
	if !id.Diminished() {
		return id
	}
	return id.to(notation.Normal)
}

// Normalize clears any state modifier.
func (id Identifier) Normalize() Identifier { return id.to(notation.Normal) }

// Flip hands the piece to the other side.
func (id Identifier) Flip() Identifier {
	id.side = id.side.Flip()
	return id
}

func (id Identifier) to(state notation.State) Identifier {
	id.state = state
	return id
}

// WithType returns a copy of id with type t.
func (id Identifier) WithType(t Type) (Identifier, error) {
	if !t.Valid() {
		return id, notation.ArgumentError("type", t)
	}
	id.typ = t
	return id, nil
}

// WithSide returns a copy of id owned by side.
func (id Identifier) WithSide(side notation.Side) (Identifier, error) {
	if !side.Valid() {
		return id, notation.ArgumentError("side", side)
	}
	id.side = side
	return id, nil
}

// WithState returns a copy of id in state.
func (id Identifier) WithState(state notation.State) (Identifier, error) {
	if !state.Valid() {
		return id, notation.ArgumentError("state", state)
	}
	id.state = state
	return id, nil
}

func (id Identifier) SameType(other Identifier) bool  { return id.typ == other.typ }
func (id Identifier) SameSide(other Identifier) bool  { return id.side == other.side }
func (id Identifier) SameState(other Identifier) bool { return id.state == other.state }

// Equal reports whether both identifiers have the same type, side and state.
func (id Identifier) Equal(other Identifier) bool { return id == other }
