package pin

import (
	"fmt"

	"github.com/notation"
)

// Type is the identity of a piece: one of the 26 ASCII letters, always held
// in upper case. The side decides the case it is rendered in.
type Type byte

const (
	A Type = 'A' + iota
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z
)

// Types lists every piece type in alphabetical order.
func Types() []Type {
	ts := make([]Type, 0, Z-A+1)
	for t := A; t <= Z; t++ {
		ts = append(ts, t)
	}
	return ts
}

// Valid reports whether t is one of A..Z.
func (t Type) Valid() bool { return t >= A && t <= Z }

// Letter renders t in the case of side.
func (t Type) Letter(side notation.Side) byte {
	if side == notation.Second {
		return byte(t) | 0x20
	}
	return byte(t)
}

func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", byte(t))
	}
	return string(rune(t))
}

// TypeOf returns the type of an ASCII letter in either case.
func TypeOf(c byte) (Type, error) {
	switch {
	case c >= 'A' && c <= 'Z':
		return Type(c), nil
	case c >= 'a' && c <= 'z':
		return Type(c &^ 0x20), nil
	}
	return 0, notation.ArgumentError("type", string(rune(c)))
}

// ParseType converts a one-letter string in either case into a Type.
func ParseType(s string) (Type, error) {
	if len(s) != 1 {
		return 0, notation.ArgumentError("type", s)
	}
	return TypeOf(s[0])
}
