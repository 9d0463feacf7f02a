// Package sin implements the compact style notation. A style is written
// as its name in upper case for the first side and lower case for the
// second, e.g. "CHESS" and "shogi".
package sin

import (
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/notation"
	"github.com/notation/snn"
)

var styleRe = regexp.MustCompile(`^(?:[A-Z][A-Z0-9]*|[a-z][a-z0-9]*)$`)

// Identifier is an immutable style: a capitalised name and a side.
type Identifier struct {
	name snn.Name
	side notation.Side
}

// New validates name and side. name must already be capitalised, as in
// "Chess960".
func New(name string, side notation.Side) (Identifier, error) {
	var errs error
	n, err := snn.Parse(name)
	if err != nil {
		errs = multierror.Append(errs, notation.ArgumentError("name", name))
	}
	if !side.Valid() {
		errs = multierror.Append(errs, notation.ArgumentError("side", side))
	}
	if errs != nil {
		return Identifier{}, errs
	}
	return Identifier{name: n, side: side}, nil
}

// MustNew is like New but panics on invalid fields.
func MustNew(name string, side notation.Side) Identifier {
	id, err := New(name, side)
	if err != nil {
		panic(err)
	}
	return id
}

// FromName pairs an already validated name with a side.
func FromName(name snn.Name, side notation.Side) (Identifier, error) {
	if !side.Valid() {
		return Identifier{}, notation.ArgumentError("side", side)
	}
	return Identifier{name: name, side: side}, nil
}

// Parse reads a style written in a single case, such as "CHESS960" or
// "xiangqi".
func Parse(s string) (Identifier, error) {
	if !Valid(s) {
		return Identifier{}, notation.FormatError("sin", s)
	}
	return Identifier{
		name: snn.MustParse(capitalize(s)),
		side: notation.SideOfCase(s[0]),
	}, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Identifier {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Valid reports whether s is a style written in a single case.
func Valid(s string) bool { return styleRe.MatchString(s) }

// ValidValue reports whether v coerces to a valid style string.
func ValidValue(v interface{}) bool {
	s, ok := notation.AsString(v)
	return ok && Valid(s)
}

func capitalize(s string) string {
	s = strings.ToLower(s)
	return strings.ToUpper(s[:1]) + s[1:]
}

func (id Identifier) Name() snn.Name      { return id.name }
func (id Identifier) Side() notation.Side { return id.side }

func (id Identifier) FirstPlayer() bool  { return id.side == notation.First }
func (id Identifier) SecondPlayer() bool { return id.side == notation.Second }

func (id Identifier) String() string {
	if id.side == notation.Second {
		return strings.ToLower(id.name.String())
	}
	return strings.ToUpper(id.name.String())
}

// Flip hands the style to the other side.
func (id Identifier) Flip() Identifier {
	id.side = id.side.Flip()
	return id
}

// WithName returns a copy of id named name.
func (id Identifier) WithName(name string) (Identifier, error) {
	n, err := snn.Parse(name)
	if err != nil {
		return id, notation.ArgumentError("name", name)
	}
	id.name = n
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

func (id Identifier) SameName(other Identifier) bool { return id.name.Equal(other.name) }
func (id Identifier) SameSide(other Identifier) bool { return id.side == other.side }

// Equal reports whether name and side both match.
func (id Identifier) Equal(other Identifier) bool { return id == other }

// Code returns the opaque form of id.
func (id Identifier) Code() Code { return Code(id.String()) }
