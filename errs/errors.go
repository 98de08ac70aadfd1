package errs

import (
	"fmt"
)

// Class groups errors by the layer which raises them
type Class int

const (
	// Configuration errors are raised while definitions are built and never during parsing
	Configuration Class = iota + 1
	// Parse errors are caused by the command line being parsed
	Parse
	// Usage errors signal misuse of a parse result by the calling program
	Usage
)

// String returns the string representation of a Class
func (c Class) String() string {
	switch c {
	case Configuration:
		return "configuration error"
	case Parse:
		return "parse error"
	case Usage:
		return "usage error"
	}
	return "error"
}

// Error is an error with a stable key, a message format and optional format arguments
// and error wrapping support.
//
// Errors returned by argmatch are copies of the sentinels declared in this package, so
// errors.Is can be used against the sentinel as well as against the class errors
// ErrConfiguration, ErrParse and ErrUsage:
//
//	err := ErrUnknownOption.WithArgs("--foo")
//	errors.Is(err, ErrUnknownOption) // true
//	errors.Is(err, ErrParse)         // true
type Error struct {
	// The sentinel this error was derived from
	sentinel *Error
	class    Class
	key      string
	format   string
	args     []interface{}
	wrapped  error
	// class errors match every error of their class
	isClass bool
}

// New creates a sentinel error
func New(class Class, key, format string) *Error {
	e := &Error{
		class:  class,
		key:    key,
		format: format,
	}
	e.sentinel = e

	return e
}

func newClass(class Class) *Error {
	e := New(class, prefixKey+"."+class.String(), class.String())
	e.isClass = true

	return e
}

// Error returns the message, formatted with args if provided
func (e *Error) Error() string {
	msg := e.format
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}
	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *Error) WithArgs(args ...interface{}) *Error {
	return &Error{
		sentinel: e.sentinel,
		class:    e.class,
		key:      e.key,
		format:   e.format,
		args:     args,
		wrapped:  e.wrapped,
	}
}

// Wrap returns a copy of the error wrapping another error
func (e *Error) Wrap(err error) *Error {
	return &Error{
		sentinel: e.sentinel,
		class:    e.class,
		key:      e.key,
		format:   e.format,
		args:     e.args,
		wrapped:  err,
	}
}

// Is implements errors.Is for comparison with sentinel and class errors
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.isClass {
		return t.class == e.class
	}

	return t.sentinel == e.sentinel
}

// Key returns the stable key of the error
func (e *Error) Key() string {
	return e.key
}

// Class returns the class of the error
func (e *Error) Class() Class {
	return e.class
}

// Args returns the format arguments
func (e *Error) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.wrapped
}

// Class errors
var (
	ErrConfiguration = newClass(Configuration)
	ErrParse         = newClass(Parse)
	ErrUsage         = newClass(Usage)
)

// Configuration errors
var (
	ErrEmptyName        = New(Configuration, ErrEmptyNameKey, "argument must have a name")
	ErrNoFlags          = New(Configuration, ErrNoFlagsKey, "option must have at least one flag")
	ErrInvalidFlag      = New(Configuration, ErrInvalidFlagKey, "invalid flag %q for %s option style")
	ErrInvalidCount     = New(Configuration, ErrInvalidCountKey, "invalid count for argument %q: min %d, max %d")
	ErrInvalidOperation = New(Configuration, ErrInvalidOperationKey, "option %s: %s")
	ErrStyleChange      = New(Configuration, ErrStyleChangeKey, "can't change option style from %s to %s after options have been added")
	ErrDuplicateFlag    = New(Configuration, ErrDuplicateFlagKey, "flag %q is defined more than once")
	ErrNameConflict     = New(Configuration, ErrNameConflictKey, "name %q refers to more than one value")
	ErrEmbeddedOnly     = New(Configuration, ErrEmbeddedOnlyKey, "a flag ending in '=' requires an option taking a value")
)

// Parse errors
var (
	ErrUnknownOption    = New(Parse, ErrUnknownOptionKey, "unknown option: %s")
	ErrAmbiguousOption  = New(Parse, ErrAmbiguousOptionKey, "option %s is ambiguous, candidates are: %s")
	ErrMissingValue     = New(Parse, ErrMissingValueKey, "option %s requires a value")
	ErrValueNotAllowed  = New(Parse, ErrValueNotAllowedKey, "option %s does not accept a value")
	ErrMissingArgument  = New(Parse, ErrMissingArgumentKey, "missing argument: %s")
	ErrTooManyArguments = New(Parse, ErrTooManyArgumentsKey, "too many arguments, starting with %q")
	ErrMissingOption    = New(Parse, ErrMissingOptionKey, "mandatory option %s is missing")
	ErrCallback         = New(Parse, ErrCallbackKey, "callback for %s failed")
	ErrInvalidValue     = New(Parse, ErrInvalidValueKey, "invalid value for %s: %q")
	ErrSuggestion       = New(Parse, ErrSuggestionKey, "did you mean %s?")
	ErrCommandLine      = New(Parse, ErrCommandLineKey, "can't split command line")
)

// Usage errors
var (
	ErrAmbiguousRead   = New(Usage, ErrAmbiguousReadKey, "attempt to read multiple values of %v as a single value")
	ErrUnknownName     = New(Usage, ErrUnknownNameKey, "unknown value: %s")
	ErrNoSpecialOption = New(Usage, ErrNoSpecialOptionKey, "there is no special option")
	ErrNilDefinition   = New(Usage, ErrNilDefinitionKey, "definition is nil")
)
