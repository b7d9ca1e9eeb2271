package config

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/techthiyanes/augmenty/augment"
)

// registry maps formatter names usable in config files to functions.
var registry = map[string]augment.Formatter{
	"abbreviate": Abbreviate,
	"upper":      strings.ToUpper,
	"lower":      strings.ToLower,
	"title":      Title,
}

// Abbreviate shortens a token to its first rune plus a period:
// "Kenneth" becomes "K.".
func Abbreviate(orth string) string {
	if orth == "" {
		return orth
	}

	r, _ := utf8.DecodeRuneInString(orth)

	return string(r) + "."
}

// Title upper-cases the first rune of a token.
func Title(orth string) string {
	if orth == "" {
		return orth
	}

	r, size := utf8.DecodeRuneInString(orth)

	return string(unicode.ToUpper(r)) + orth[size:]
}

// Formatters resolves a list of formatter names from a config file. An
// empty name is the no-op slot.
func Formatters(formatterNames []string) ([]augment.Formatter, error) {
	formatters := make([]augment.Formatter, len(formatterNames))
	for i, name := range formatterNames {
		if name == "" {
			continue
		}

		f, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown formatter %q", augment.ErrInvalidConfig, name)
		}

		formatters[i] = f
	}

	return formatters, nil
}
