package argmatch

import (
	"github.com/napalu/argmatch/errs"
	"github.com/napalu/argmatch/types"
)

// Argument defines a positional command-line argument
type Argument struct {
	definition
	name string
	min  int
	max  int
}

// NewArgument creates an argument named name. By default an argument must occur exactly once.
//
// Usage example:
//
//	files := NewArgument("file",
//	    WithText("the files to process"),
//	    WithCount(1, types.Unbounded))
//
// Configuration errors are reported when the argument is added to a Parser.
func NewArgument(name string, configs ...ArgumentConfigurer) *Argument {
	a := &Argument{
		name: name,
		min:  1,
		max:  1,
	}
	for _, config := range configs {
		var err error
		config.configureArgument(a, &err)
		if err != nil {
			a.setErr(err)
		}
	}

	return a
}

// Kind returns types.KindArgument
func (a *Argument) Kind() types.Kind {
	return types.KindArgument
}

// Name returns the name of the argument
func (a *Argument) Name() string {
	return a.name
}

// DisplayName returns the name of the argument in angle brackets
func (a *Argument) DisplayName() string {
	return "<" + a.name + ">"
}

// Count returns the minimum and maximum number of occurrences
func (a *Argument) Count() (int, int) {
	return a.min, a.max
}

// IsOptional reports whether the argument may be left out
func (a *Argument) IsOptional() bool {
	return a.min == 0
}

func (a *Argument) validate() error {
	if a.err != nil {
		return a.err
	}
	if a.name == "" {
		return errs.ErrEmptyName
	}

	return validCount(a.name, a.min, a.max)
}

func validCount(name string, min, max int) error {
	if min < 0 || max < 1 || min > max {
		return errs.ErrInvalidCount.WithArgs(name, min, max)
	}

	return nil
}

// valueKey returns the key under which the argument shares its value with other definitions
func (a *Argument) valueKey() string {
	if a.valueName != "" {
		return a.valueName
	}

	return a.name
}
