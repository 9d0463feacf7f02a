// Package notation holds the data types shared by the piece and style
// notations: the side a value belongs to, the state modifier of a piece and
// the error kinds every parser reports.
package notation

import "fmt"

// Side is which of the two players owns a piece or a style.
// It is encoded by letter case: first is upper case, second is lower case.
type Side byte

const (
	First Side = iota
	Second
)

// Valid reports whether s is one of the two sides.
func (s Side) Valid() bool { return s == First || s == Second }

// Flip returns the opposite side.
func (s Side) Flip() Side {
	if s == First {
		return Second
	}
	return First
}

func (s Side) String() string {
	switch s {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return fmt.Sprintf("Side(%d)", byte(s))
	}
}

// ParseSide converts "first" or "second" into a Side.
func ParseSide(s string) (Side, error) {
	switch s {
	case "first":
		return First, nil
	case "second":
		return Second, nil
	}
	return 0, ArgumentError("side", s)
}

// SideOfCase returns the side encoded by the case of an ASCII letter.
func SideOfCase(c byte) Side {
	if c >= 'a' && c <= 'z' {
		return Second
	}
	return First
}

// State is the declared condition of a piece. It carries no meaning here;
// callers decide what enhanced or diminished stands for.
type State byte

const (
	Normal State = iota
	Enhanced
	Diminished
)

// States lists every state in rendering order.
var States = []State{Normal, Enhanced, Diminished}

// Valid reports whether st is a known state.
func (st State) Valid() bool { return st <= Diminished }

// Prefix is the modifier written before the letters: "+", "-" or nothing.
func (st State) Prefix() string {
	switch st {
	case Enhanced:
		return "+"
	case Diminished:
		return "-"
	}
	return ""
}

func (st State) String() string {
	switch st {
	case Normal:
		return "normal"
	case Enhanced:
		return "enhanced"
	case Diminished:
		return "diminished"
	default:
		return fmt.Sprintf("State(%d)", byte(st))
	}
}

// ParseState converts "normal", "enhanced" or "diminished" into a State.
func ParseState(s string) (State, error) {
	switch s {
	case "normal":
		return Normal, nil
	case "enhanced":
		return Enhanced, nil
	case "diminished":
		return Diminished, nil
	}
	return 0, ArgumentError("state", s)
}

// StateFromPrefix is the inverse of State.Prefix.
func StateFromPrefix(prefix string) (State, error) {
	switch prefix {
	case "":
		return Normal, nil
	case "+":
		return Enhanced, nil
	case "-":
		return Diminished, nil
	}
	return 0, ArgumentError("prefix", prefix)
}
