package types

import "math"

// Unbounded is used as the maximum count of an argument which accepts any number of values
const Unbounded = math.MaxInt32

// ValueID identifies one result slot. Several definitions may share a ValueID.
type ValueID int

// ArgumentID identifies a single argument or option definition
type ArgumentID int

// OptionStyle determines the prefixes which introduce an option on the command line
type OptionStyle int

const (
	Standard OptionStyle = iota // Standard denotes GNU-like options: short "-f" and long "--flag"
	Dash                        // Dash denotes options with a single dash only, e.g. "-flag"
	Slash                       // Slash denotes Windows-like options, e.g. "/flag"
)

// String returns the string representation of an OptionStyle
func (s OptionStyle) String() string {
	switch s {
	case Standard:
		return "standard"
	case Dash:
		return "dash"
	case Slash:
		return "slash"
	}
	return "unknown"
}

// Prefix returns the character every flag of the style starts with
func (s OptionStyle) Prefix() string {
	if s == Slash {
		return "/"
	}
	return "-"
}

// Operation describes how a matched definition records its value
type Operation int

const (
	OpNone   Operation = iota // OpNone records the presence of an option but no value
	OpAssign                  // OpAssign replaces all existing values with a single value
	OpAppend                  // OpAppend adds a value after the existing ones
	OpClear                   // OpClear removes all existing values
)

// String returns the string representation of an Operation
func (o Operation) String() string {
	switch o {
	case OpNone:
		return "none"
	case OpAssign:
		return "assign"
	case OpAppend:
		return "append"
	case OpClear:
		return "clear"
	}
	return "unknown"
}

// OptionType tags options which alter the control flow of the parser
type OptionType int

const (
	Normal       OptionType = iota // Normal options only record values
	Help                           // Help stops parsing and shows the help text
	Stop                           // Stop stops parsing, e.g. for --version
	LastArgument                   // LastArgument passes the remaining tokens through unprocessed
	LastOption                     // LastOption treats the remaining tokens as positional arguments
)

// String returns the string representation of an OptionType
func (o OptionType) String() string {
	switch o {
	case Normal:
		return "normal"
	case Help:
		return "help"
	case Stop:
		return "stop"
	case LastArgument:
		return "last-argument"
	case LastOption:
		return "last-option"
	}
	return "unknown"
}

// Visibility controls where a definition is shown in the help text
type Visibility int

const (
	Visible   Visibility = iota // Visible definitions appear in the usage line and in the argument/option lists
	Hidden                      // Hidden definitions are not shown at all
	UsageOnly                   // UsageOnly definitions only appear in the usage line
	TextOnly                    // TextOnly definitions only appear in the argument/option lists
)

// String returns the string representation of a Visibility
func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Hidden:
		return "hidden"
	case UsageOnly:
		return "usage"
	case TextOnly:
		return "text"
	}
	return "unknown"
}

// InUsage reports whether a definition with this visibility is part of the usage line
func (v Visibility) InUsage() bool {
	return v == Visible || v == UsageOnly
}

// InText reports whether a definition with this visibility is part of the argument/option lists
func (v Visibility) InText() bool {
	return v == Visible || v == TextOnly
}

// ResultCode is the terminal state of a parse
type ResultCode int

const (
	ResultNormal ResultCode = iota // ResultNormal denotes a parse which consumed all of its input
	ResultStop                     // ResultStop denotes a parse ended early by a help or stop option
	ResultError                    // ResultError denotes a failed parse
)

// String returns the string representation of a ResultCode
func (r ResultCode) String() string {
	switch r {
	case ResultNormal:
		return "normal"
	case ResultStop:
		return "stop"
	case ResultError:
		return "error"
	}
	return "unknown"
}

// Kind distinguishes arguments from options
type Kind string

const (
	KindArgument Kind = "argument"
	KindOption   Kind = "option"
)

// TextID names a slot of the help text
type TextID int

const (
	TextInitial        TextID = iota // TextInitial is written before the usage
	TextUsageTitle                   // TextUsageTitle replaces the "USAGE" heading
	TextUsage                        // TextUsage replaces the generated usage line
	TextAbout                        // TextAbout is written between the usage and the argument lists
	TextArgumentsTitle               // TextArgumentsTitle replaces the "ARGUMENTS" heading
	TextOptionsTitle                 // TextOptionsTitle replaces the "OPTIONS" heading
	TextFinal                        // TextFinal is written at the end of the help text
	TextErrorUsage                   // TextErrorUsage is written after an error message
)

// String returns the string representation of a TextID
func (t TextID) String() string {
	switch t {
	case TextInitial:
		return "initial"
	case TextUsageTitle:
		return "usage-title"
	case TextUsage:
		return "usage"
	case TextAbout:
		return "about"
	case TextArgumentsTitle:
		return "arguments-title"
	case TextOptionsTitle:
		return "options-title"
	case TextFinal:
		return "final"
	case TextErrorUsage:
		return "error-usage"
	}
	return "unknown"
}
