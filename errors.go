package notation

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidFormat is the cause of every error returned for a string
	// that does not match the grammar of the requested notation.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidArgument is the cause of every error returned when a field
	// handed to a constructor or a transformation is out of its domain.
	ErrInvalidArgument = errors.New("invalid argument")
)

// FormatError reports that input is not a valid string for the named notation.
func FormatError(notation, input string) error {
	return errors.Wrapf(ErrInvalidFormat, "%s %q", notation, input)
}

// ArgumentError reports that value is not acceptable for field.
func ArgumentError(field string, value interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, "%s %s", field, quote(value))
}

// IsFormatError reports whether err was caused by ErrInvalidFormat.
func IsFormatError(err error) bool { return errors.Is(err, ErrInvalidFormat) }

// IsArgumentError reports whether err, or any error it aggregates, was
// caused by ErrInvalidArgument.
func IsArgumentError(err error) bool { return errors.Is(err, ErrInvalidArgument) }

func quote(v interface{}) string {
	switch x := v.(type) {
	case string:
		return fmt.Sprintf("%q", x)
	case byte:
		return fmt.Sprintf("%q", rune(x))
	case fmt.Stringer:
		return fmt.Sprintf("%q", x.String())
	default:
		return fmt.Sprintf("%v", x)
	}
}

// AsString coerces the dynamic inputs accepted at the edges of the
// package (string, []byte and fmt.Stringer) into a string. Any other
// value, numbers and nil included, is reported as not a string.
func AsString(v interface{}) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case []byte:
		return string(x), true
	case fmt.Stringer:
		return x.String(), true
	}
	return "", false
}
