// Package epin extends the compact piece notation of package pin with a
// derivation marker. A trailing apostrophe says the piece uses the style of
// the opposite side rather than its own native style.
//
//	K    first side king, native style
//	+R'  first side rook, enhanced, foreign style
//	-p   second side pawn, diminished, native style
package epin

import (
	"strings"

	"github.com/notation"
	"github.com/notation/pin"
)

// DerivationSuffix marks a piece that does not use its native style.
const DerivationSuffix = "'"

// Identifier is an immutable compact piece with a derivation flag.
// Type, side and state are held by the embedded pin identifier. The zero
// value is not a valid identifier; use New or Parse to build one.
type Identifier struct {
	pin    pin.Identifier
	native bool
}

// New validates each field and returns the identifier they describe.
func New(t pin.Type, side notation.Side, state notation.State, native bool) (Identifier, error) {
	p, err := pin.New(t, side, state)
	if err != nil {
		return Identifier{}, err
	}
	return Identifier{pin: p, native: native}, nil
}

// MustNew is like New but panics on invalid fields.
func MustNew(t pin.Type, side notation.Side, state notation.State, native bool) Identifier {
	id, err := New(t, side, state, native)
	if err != nil {
		panic(err)
	}
	return id
}

// FromPIN wraps a pin identifier with the given derivation.
func FromPIN(p pin.Identifier, native bool) Identifier {
	return Identifier{pin: p, native: native}
}

// Parse reads a compact piece such as "K", "+R'" or "-p".
func Parse(s string) (Identifier, error) {
	body := strings.TrimSuffix(s, DerivationSuffix)
	p, err := pin.Parse(body)
	if err != nil {
		return Identifier{}, notation.FormatError("epin", s)
	}
	return Identifier{pin: p, native: body == s}, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Identifier {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Valid reports whether s is a well formed compact piece with optional
// derivation marker.
func Valid(s string) bool { return componentsRe.MatchString(s) }

// Enumerate returns every identifier of the notation, ordered by type,
// then side, then state, native before derived.
func Enumerate() []Identifier {
	var ids []Identifier
	for _, t := range pin.Types() {
		for _, side := range []notation.Side{notation.First, notation.Second} {
			for _, state := range notation.States {
				p := pin.MustNew(t, side, state)
				ids = append(ids, FromPIN(p, true), FromPIN(p, false))
			}
		}
	}
	return ids
}

// PIN returns the identifier without its derivation.
func (id Identifier) PIN() pin.Identifier { return id.pin }

func (id Identifier) Type() pin.Type        { return id.pin.Type() }
func (id Identifier) Side() notation.Side   { return id.pin.Side() }
func (id Identifier) State() notation.State { return id.pin.State() }
func (id Identifier) Native() bool          { return id.native }
func (id Identifier) Derived() bool         { return !id.native }
func (id Identifier) Letter() string        { return id.pin.Letter() }
func (id Identifier) Prefix() string        { return id.pin.Prefix() }

// Suffix is the derivation marker, or "" for a native piece.
func (id Identifier) Suffix() string {
	if id.native {
		return ""
	}
	return DerivationSuffix
}

func (id Identifier) String() string { return id.pin.String() + id.Suffix() }

func (id Identifier) Enhanced() bool     { return id.pin.Enhanced() }
func (id Identifier) Diminished() bool   { return id.pin.Diminished() }
func (id Identifier) Normal() bool       { return id.pin.Normal() }
func (id Identifier) FirstPlayer() bool  { return id.pin.FirstPlayer() }
func (id Identifier) SecondPlayer() bool { return id.pin.SecondPlayer() }

func (id Identifier) Enhance() Identifier    { return id.withPIN(id.pin.Enhance()) }
func (id Identifier) Unenhance() Identifier  { return id.withPIN(id.pin.Unenhance()) }
func (id Identifier) Diminish() Identifier   { return id.withPIN(id.pin.Diminish()) }
func (id Identifier) Undiminish() Identifier { return id.withPIN(id.pin.Undiminish()) }
func (id Identifier) Normalize() Identifier  { return id.withPIN(id.pin.Normalize()) }
func (id Identifier) Flip() Identifier       { return id.withPIN(id.pin.Flip()) }

// Derive marks the piece as using the style of the opposite side.
func (id Identifier) Derive() Identifier { return id.WithDerivation(false) }

// Underive marks the piece as using its native style.
func (id Identifier) Underive() Identifier { return id.WithDerivation(true) }

// WithDerivation returns a copy of id with the given native flag.
func (id Identifier) WithDerivation(native bool) Identifier {
	id.native = native
	return id
}

func (id Identifier) WithType(t pin.Type) (Identifier, error) {
	p, err := id.pin.WithType(t)
	return id.withPIN(p), err
}

func (id Identifier) WithSide(side notation.Side) (Identifier, error) {
	p, err := id.pin.WithSide(side)
	return id.withPIN(p), err
}

func (id Identifier) WithState(state notation.State) (Identifier, error) {
	p, err := id.pin.WithState(state)
	return id.withPIN(p), err
}

func (id Identifier) withPIN(p pin.Identifier) Identifier {
	id.pin = p
	return id
}

func (id Identifier) SameType(other Identifier) bool  { return id.pin.SameType(other.pin) }
func (id Identifier) SameSide(other Identifier) bool  { return id.pin.SameSide(other.pin) }
func (id Identifier) SameState(other Identifier) bool { return id.pin.SameState(other.pin) }
func (id Identifier) SameStyle(other Identifier) bool { return id.native == other.native }

// Equal reports whether type, side, state and derivation all match.
func (id Identifier) Equal(other Identifier) bool { return id == other }
