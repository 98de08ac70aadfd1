package parse

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/napalu/argmatch/errs"
	"github.com/napalu/argmatch/internal/util"
	"github.com/napalu/argmatch/types"
)

// Match is the outcome of resolving a single token
type Match struct {
	Flag
	// Value embedded in the token, if HasValue is set
	Value    string
	HasValue bool
	// FollowUp is the remainder of stacked short flags which must be parsed next
	FollowUp string
}

// Resolver classifies tokens and resolves them to flags
type Resolver struct {
	style         types.OptionStyle
	fold          bool
	abbreviations bool
	flags         map[string]Flag
	// sorted folded flag names, used for abbreviations
	names []string
}

// NewResolver creates a Resolver over flags. Flag names are compared case-insensitively
// when fold is true. Unambiguous prefixes of long flags are accepted when abbreviations is true.
func NewResolver(flags []Flag, style types.OptionStyle, fold, abbreviations bool) *Resolver {
	r := &Resolver{
		style:         style,
		fold:          fold,
		abbreviations: abbreviations,
		flags:         make(map[string]Flag, len(flags)),
		names:         make([]string, 0, len(flags)),
	}
	for _, f := range flags {
		key := util.Fold(f.Name, fold)
		if _, found := r.flags[key]; found {
			continue
		}
		r.flags[key] = f
		r.names = append(r.names, key)
	}
	sort.Strings(r.names)

	return r
}

// IsFlag reports whether token is introduced by the style's prefix
func (r *Resolver) IsFlag(token string) bool {
	prefix := r.style.Prefix()
	return strings.HasPrefix(token, prefix) && token != prefix
}

// Exact returns the flag matching token exactly, without abbreviations or embedded values
func (r *Resolver) Exact(token string) (Flag, bool) {
	f, found := r.flags[util.Fold(token, r.fold)]
	return f, found
}

// Resolve matches token against the flags. The boolean result is false when token is not a
// flag at all. Tokens which look like flags but match none yield errs.ErrUnknownOption, and
// abbreviations matching several options yield errs.ErrAmbiguousOption.
func (r *Resolver) Resolve(token string) (Match, bool, error) {
	if !r.IsFlag(token) {
		return Match{}, false, nil
	}

	candidate, value, hasValue := r.splitValue(token)
	if f, found := r.lookup(candidate, hasValue); found {
		return Match{Flag: f, Value: value, HasValue: hasValue}, true, nil
	}

	if r.abbreviations && len(candidate) > len(LongPrefix(r.style)) {
		f, found, err := r.abbreviation(candidate)
		if err != nil {
			return Match{}, true, err
		}
		if found {
			return Match{Flag: f, Value: value, HasValue: hasValue}, true, nil
		}
	}

	if r.style == types.Standard && !strings.HasPrefix(token, "--") && utf8.RuneCountInString(token) > 2 {
		if m, found := r.stacked(token); found {
			return m, true, nil
		}
	}

	return Match{}, true, r.unknown(candidate)
}

func (r *Resolver) splitValue(token string) (string, string, bool) {
	prefixLen := len(r.style.Prefix())
	i := strings.IndexByte(token[prefixLen:], '=')
	if i < 0 {
		return token, "", false
	}
	i += prefixLen

	return token[:i], token[i+1:], true
}

// lookup tries candidate and its embedded-value form "candidate=". The latter is
// preferred when the token carries a value.
func (r *Resolver) lookup(candidate string, hasValue bool) (Flag, bool) {
	keys := []string{candidate, candidate + "="}
	if hasValue {
		keys[0], keys[1] = keys[1], keys[0]
	}
	for _, k := range keys {
		if f, found := r.Exact(k); found {
			return f, true
		}
	}

	return Flag{}, false
}

func (r *Resolver) abbreviation(candidate string) (Flag, bool, error) {
	key := util.Fold(candidate, r.fold)
	start := sort.SearchStrings(r.names, key)

	var matches []string
	options := map[int]Flag{}
	for i := start; i < len(r.names) && strings.HasPrefix(r.names[i], key); i++ {
		if r.names[i] == key {
			continue
		}
		f := r.flags[r.names[i]]
		matches = append(matches, f.Name)
		if _, found := options[f.Index]; !found {
			options[f.Index] = f
		}
	}

	switch len(options) {
	case 0:
		return Flag{}, false, nil
	case 1:
		for _, f := range options {
			return f, true, nil
		}
	}
	sort.Strings(matches)

	return Flag{}, false, errs.ErrAmbiguousOption.WithArgs(candidate, strings.Join(matches, ", "))
}

// stacked splits "-abc" into "-a" and either the follow-up token "-bc" or the value "bc".
// The token only matches if all of its flags are defined.
func (r *Resolver) stacked(token string) (Match, bool) {
	if !r.stackedDefined(token[1:]) {
		return Match{}, false
	}
	_, size := utf8.DecodeRuneInString(token[1:])
	f, found := r.Exact(token[:1+size])
	if !found {
		return Match{}, false
	}

	rest := token[1+size:]
	if f.TakesValue {
		return Match{Flag: f, Value: rest, HasValue: true}, true
	}

	return Match{Flag: f, FollowUp: "-" + rest}, true
}

func (r *Resolver) unknown(candidate string) error {
	err := errs.ErrUnknownOption.WithArgs(candidate)
	names := make([]string, 0, len(r.flags))
	for _, f := range r.flags {
		names = append(names, f.Name)
	}
	if suggestion, found := util.Closest(candidate, names); found {
		return err.Wrap(errs.ErrSuggestion.WithArgs(suggestion))
	}

	return err
}

// stackedDefined walks the short flags of a stacked token up to the first one taking a value
func (r *Resolver) stackedDefined(rest string) bool {
	for rest != "" {
		c, size := utf8.DecodeRuneInString(rest)
		if c == '=' {
			return false
		}
		name := "-" + rest[:size]
		rest = rest[size:]
		if strings.HasPrefix(rest, "=") {
			_, found := r.lookup(name, true)
			return found
		}
		f, found := r.Exact(name)
		if !found {
			return false
		}
		if f.TakesValue {
			return true
		}
	}

	return true
}
