package argmatch

import (
	"io"

	"github.com/napalu/argmatch/types"
)

// NewParserWith allows initialization of Parser using option functions. The caller should always test for error on
// return because Parser will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	parser, err := NewParserWith(
//		WithProgramName("sort"),
//		WithAbbreviatedOptions(true),
//		WithOption(
//			NewOption([]string{"-h", "--help"},
//				WithType(types.Help),
//				WithText("Show this help."))),
//		WithOption(
//			NewOption([]string{"-k", "--key"},
//				WithValue("FIELD"),
//				WithOperation(types.OpAppend),
//				WithText("Sort by FIELD. May be repeated."))),
//		WithArgument(
//			NewArgument("file",
//				WithCount(0, types.Unbounded),
//				WithText("The files to sort."))))
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	parser := NewParser()

	var err error
	for _, config := range configs {
		config(parser, &err)
		if err != nil {
			return nil, err
		}
	}

	return parser, nil
}

// WithProgramName sets the name shown in the usage line and in error messages
func WithProgramName(name string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetProgramName(name)
	}
}

// WithOptionStyle is a wrapper for SetOptionStyle. It must come before any WithOption.
func WithOptionStyle(style types.OptionStyle) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.SetOptionStyle(style)
	}
}

// WithCaseInsensitive turns on case-insensitive matching of flags and value names
func WithCaseInsensitive(caseInsensitive bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetCaseInsensitive(caseInsensitive)
	}
}

// WithAbbreviatedOptions allows long flags to be abbreviated, e.g. "--verb" for "--verbose"
func WithAbbreviatedOptions(abbreviations bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetAbbreviatedOptions(abbreviations)
	}
}

// WithAutoExit makes Parse exit the program on help, stop options and parse errors
func WithAutoExit(autoExit bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetAutoExit(autoExit)
	}
}

// WithExitFunc replaces os.Exit when auto exit is on
func WithExitFunc(exitFunc ExitFunc) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetExitFunc(exitFunc)
	}
}

// WithIgnoreUndefinedArguments passes surplus positional tokens through to Result.Unprocessed
func WithIgnoreUndefinedArguments(ignore bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetIgnoreUndefinedArguments(ignore)
	}
}

// WithIgnoreUndefinedOptions passes unknown options through to Result.Unprocessed
func WithIgnoreUndefinedOptions(ignore bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetIgnoreUndefinedOptions(ignore)
	}
}

// WithOutput sets the writer receiving the help text (os.Stdout by default)
func WithOutput(w io.Writer) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetOutput(w)
	}
}

// WithErrorOutput sets the writer receiving error messages (os.Stderr by default)
func WithErrorOutput(w io.Writer) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetErrorOutput(w)
	}
}

// WithLineWidth sets the width of the help text
func WithLineWidth(width int) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetLineWidth(width)
	}
}

// WithHelpText is a wrapper for SetText
func WithHelpText(id types.TextID, text string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetText(id, text)
	}
}

// WithGlobalArgumentCallback is a wrapper for SetGlobalArgumentCallback
func WithGlobalArgumentCallback(callback Callback) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetGlobalArgumentCallback(callback)
	}
}

// WithGlobalOptionCallback is a wrapper for SetGlobalOptionCallback
func WithGlobalOptionCallback(callback Callback) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetGlobalOptionCallback(callback)
	}
}

// WithArgument is a wrapper for AddArgument
func WithArgument(argument *Argument) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddArgument(argument)
	}
}

// WithOption is a wrapper for AddOption
func WithOption(option *Option) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddOption(option)
	}
}
