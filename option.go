package argmatch

import (
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/napalu/argmatch/errs"
	"github.com/napalu/argmatch/parse"
	"github.com/napalu/argmatch/types"
)

const defaultConstant = "1"

// Option defines a command-line option introduced by one or more flags
type Option struct {
	definition
	flags       []string
	meta        string
	deriveMeta  bool
	constant    string
	hasConstant bool
	operation   types.Operation
	typeOf      types.OptionType
	mandatory   bool
}

// NewOption creates an option matched by any of flags. By default an option takes no value,
// records "1" when it is present and replaces earlier values.
//
// Usage example:
//
//	numbers := NewOption([]string{"-n", "--number"},
//	    WithValue("NUM"),
//	    WithOperation(types.OpAppend),
//	    WithText("a number, may be repeated"))
//
// Configuration errors are reported when the option is added to a Parser.
func NewOption(flags []string, configs ...OptionConfigurer) *Option {
	o := &Option{
		flags:     append([]string(nil), flags...),
		operation: types.OpAssign,
	}
	for _, config := range configs {
		var err error
		config.configureOption(o, &err)
		if err != nil {
			o.setErr(err)
		}
	}
	if o.deriveMeta && o.meta == "" {
		o.meta = o.derivedMeta()
	}

	return o
}

// Kind returns types.KindOption
func (o *Option) Kind() types.Kind {
	return types.KindOption
}

// Flags returns a copy of the flags of the option
func (o *Option) Flags() []string {
	return append([]string(nil), o.flags...)
}

// DisplayName returns the flags of the option separated by commas
func (o *Option) DisplayName() string {
	return strings.Join(o.flags, ", ")
}

// Meta returns the name of the option's value as shown in the help text, empty if the option takes no value
func (o *Option) Meta() string {
	return o.meta
}

// TakesValue reports whether the option is followed by a value
func (o *Option) TakesValue() bool {
	return o.meta != ""
}

// Constant returns the value recorded when an option which takes no value is matched
func (o *Option) Constant() string {
	if o.hasConstant {
		return o.constant
	}

	return defaultConstant
}

// Operation returns how the option records its value
func (o *Option) Operation() types.Operation {
	return o.operation
}

// Type returns the option type
func (o *Option) Type() types.OptionType {
	return o.typeOf
}

// IsMandatory reports whether the option must be present on the command line
func (o *Option) IsMandatory() bool {
	return o.mandatory
}

func (o *Option) validate(style types.OptionStyle) error {
	if o.err != nil {
		return o.err
	}
	if len(o.flags) == 0 {
		return errs.ErrNoFlags
	}
	for _, f := range o.flags {
		if !parse.ValidFlag(f, style) {
			return errs.ErrInvalidFlag.WithArgs(f, style)
		}
		if strings.HasSuffix(f, "=") && !o.TakesValue() {
			return errs.ErrInvalidFlag.WithArgs(f, style).Wrap(errs.ErrEmbeddedOnly)
		}
	}

	name := o.DisplayName()
	switch o.operation {
	case types.OpNone:
		if o.mandatory {
			return errs.ErrInvalidOperation.WithArgs(name, "an option with operation none can't be mandatory")
		}
		if o.meta != "" || o.hasConstant || o.valueName != "" {
			return errs.ErrInvalidOperation.WithArgs(name, "an option with operation none can't have a value or a value name")
		}
	case types.OpClear:
		if o.mandatory {
			return errs.ErrInvalidOperation.WithArgs(name, "an option with operation clear can't be mandatory")
		}
	case types.OpAppend:
		if o.meta == "" && !o.hasConstant {
			return errs.ErrInvalidOperation.WithArgs(name, "an option with operation append must have a value or a constant")
		}
	}

	return nil
}

// valueKey returns the key under which the option shares its value with other definitions,
// empty if it does not share its value
func (o *Option) valueKey() string {
	return o.valueName
}

func (o *Option) derivedMeta() string {
	longest := ""
	for _, f := range o.flags {
		name := strings.TrimRight(strings.TrimLeft(f, "-/"), "=")
		if len(name) > len(longest) {
			longest = name
		}
	}
	if longest == "" {
		return "VALUE"
	}

	return strcase.ToScreamingSnake(longest)
}
