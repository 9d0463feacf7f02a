package sin

import (
	"strings"

	"github.com/notation"
)

// Code is a style kept as the string it was written as. Its side is read
// back from the case of the string on demand.
type Code string

// ParseCode validates s and returns it as a Code.
func ParseCode(s string) (Code, error) {
	if !Valid(s) {
		return "", notation.FormatError("sin", s)
	}
	return Code(s), nil
}

func (c Code) String() string { return string(c) }

func (c Code) Uppercase() bool { return string(c) == strings.ToUpper(string(c)) }
func (c Code) Lowercase() bool { return string(c) == strings.ToLower(string(c)) }

func (c Code) FirstPlayer() bool  { return c.Uppercase() }
func (c Code) SecondPlayer() bool { return c.Lowercase() }

// Identifier decomposes c into name and side.
func (c Code) Identifier() (Identifier, error) { return Parse(string(c)) }
