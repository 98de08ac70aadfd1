package argmatch

import (
	"github.com/napalu/argmatch/types"
)

// WithValue makes an option take a value. The optional meta name is shown in the help text,
// e.g. "--output FILE". When it is left out it is derived from the longest flag, so that
// "--output-file" shows as "--output-file OUTPUT_FILE".
func WithValue(meta ...string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		if len(meta) > 0 && meta[0] != "" {
			option.meta = meta[0]
			return
		}
		option.deriveMeta = true
	}
}

// WithConstant sets the value recorded by an option which takes no value. It defaults to "1".
func WithConstant(value string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.constant = value
		option.hasConstant = true
	}
}

// WithOperation sets how an option records its value:
//  1. OpAssign - replaces earlier values (default)
//  2. OpAppend - adds the value to earlier values
//  3. OpClear - removes earlier values
//  4. OpNone - records that the option was present but no value
func WithOperation(operation types.Operation) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.operation = operation
	}
}

// WithType sets the option type. Help and Stop options end the parse, LastArgument passes the
// rest of the command line through unprocessed and LastOption turns off option matching for
// the rest of the command line.
func WithType(typeOf types.OptionType) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.typeOf = typeOf
	}
}

// SetMandatory when true, the option must be supplied on the command line
func SetMandatory(mandatory bool) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.mandatory = mandatory
	}
}
