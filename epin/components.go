package epin

import (
	"regexp"

	"github.com/hashicorp/go-multierror"

	"github.com/notation"
)

var componentsRe = regexp.MustCompile(`^([-+]?)([A-Za-z])(')?$`)

// Components is the field form of a compact piece. Prefix and Suffix are
// empty when the string had no modifier or marker.
type Components struct {
	Letter string `json:"letter" yaml:"letter"`
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Suffix string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
}

// Map returns the components keyed by name, leaving out absent ones.
func (c Components) Map() map[string]string {
	m := map[string]string{"letter": c.Letter}
	if c.Prefix != "" {
		m["prefix"] = c.Prefix
	}
	if c.Suffix != "" {
		m["suffix"] = c.Suffix
	}
	return m
}

// ParseComponents splits s into letter, prefix and suffix.
func ParseComponents(s string) (Components, error) {
	c, ok := SafeParseComponents(s)
	if !ok {
		return Components{}, notation.FormatError("epin", s)
	}
	return c, nil
}

// SafeParseComponents is ParseComponents reporting failure with false.
func SafeParseComponents(s string) (Components, bool) {
	m := componentsRe.FindStringSubmatch(s)
	if m == nil {
		return Components{}, false
	}
	return Components{Letter: m[2], Prefix: m[1], Suffix: m[3]}, true
}

// ValidValue reports whether v coerces to a valid compact piece string.
// Values that are not string-like, nil included, are invalid.
func ValidValue(v interface{}) bool {
	s, ok := notation.AsString(v)
	return ok && Valid(s)
}

// Dump rebuilds the string of c. Every invalid component is reported.
func Dump(c Components) (string, error) {
	var errs error
	if len(c.Letter) != 1 || !isLetter(c.Letter[0]) {
		errs = multierror.Append(errs, notation.ArgumentError("letter", c.Letter))
	}
	if c.Prefix != "" && c.Prefix != "+" && c.Prefix != "-" {
		errs = multierror.Append(errs, notation.ArgumentError("prefix", c.Prefix))
	}
	if c.Suffix != "" && c.Suffix != DerivationSuffix {
		errs = multierror.Append(errs, notation.ArgumentError("suffix", c.Suffix))
	}
	if errs != nil {
		return "", errs
	}
	return c.Prefix + c.Letter + c.Suffix, nil
}

// Components returns the field form of id.
func (id Identifier) Components() Components {
	return Components{Letter: id.Letter(), Prefix: id.Prefix(), Suffix: id.Suffix()}
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
