package parse

import (
	"strings"
	"unicode/utf8"

	"github.com/napalu/argmatch/types"
)

// Flag describes one flag of an option as seen by the Resolver
type Flag struct {
	Name       string
	Index      int // Index of the option the flag belongs to
	TakesValue bool
}

// EmbeddedOnly reports whether the flag only accepts a value embedded after '=', e.g. "--size="
func (f Flag) EmbeddedOnly() bool {
	return strings.HasSuffix(f.Name, "=")
}

// LongPrefix returns the prefix of long flags in the given style
func LongPrefix(style types.OptionStyle) string {
	if style == types.Standard {
		return "--"
	}

	return style.Prefix()
}

// ValidFlag reports whether flag is well-formed for style.
//
//	Standard: "-" followed by exactly one character, or "--" followed by any number of characters
//	Dash:     "-" followed by at least one character
//	Slash:    "/" followed by at least one character
//
// In all styles '=' is only allowed as the last character.
func ValidFlag(flag string, style types.OptionStyle) bool {
	if i := strings.IndexByte(flag, '='); i >= 0 && i != len(flag)-1 {
		return false
	}

	switch style {
	case types.Standard:
		if strings.HasPrefix(flag, "--") {
			return true
		}
		return strings.HasPrefix(flag, "-") && utf8.RuneCountInString(flag) == 2
	case types.Dash, types.Slash:
		return strings.HasPrefix(flag, style.Prefix()) && len(flag) > 1
	}

	return false
}
