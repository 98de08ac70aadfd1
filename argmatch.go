// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package argmatch provides support for command-line processing.
//
// A program declares positional arguments and options, then parses the command line:
//
//	p, err := NewParserWith(
//	    WithProgramName("copy"),
//	    WithOption(NewOption([]string{"-h", "--help"}, WithType(types.Help), WithText("Show help."))),
//	    WithOption(NewOption([]string{"-v", "--verbose"}, WithText("Print every file."))),
//	    WithArgument(NewArgument("source", WithCount(1, types.Unbounded))),
//	    WithArgument(NewArgument("destination")))
//	if err != nil {
//	    // handle configuration error
//	}
//	result, err := p.Parse(os.Args[1:])
//
// Options come in three styles (types.OptionStyle):
//
//	Standard - short flags "-v" which can be stacked as in "-vn12" and long flags "--verbose"
//	Dash - flags with a single dash such as "-verbose"
//	Slash - flags with a slash such as "/verbose"
//
// Values of options are either the next token ("-n 12"), embedded ("--number=12", "-n12")
// or a constant for options which take no value. Positional tokens are distributed over the
// arguments in declaration order, respecting the minimum and maximum count of each argument.
package argmatch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/napalu/argmatch/errs"
	"github.com/napalu/argmatch/parse"
	"github.com/napalu/argmatch/types"
)

// NewParser returns a parser with the default configuration: Standard option style, case-sensitive
// flags without abbreviations, help written to os.Stdout, errors written to os.Stderr and
// automatic exit turned off. Use NewParserWith to configure the parser using option functions.
func NewParser() *Parser {
	programName := ""
	if len(os.Args) > 0 {
		programName = filepath.Base(os.Args[0])
	}

	return &Parser{
		programName: programName,
		exitFunc:    os.Exit,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		texts:       map[types.TextID]string{},
		valueIDs:    map[string]types.ValueID{},
	}
}

// ProgramName returns the name used in the usage line and error messages
func (p *Parser) ProgramName() string {
	return p.programName
}

// SetProgramName sets the name used in the usage line and error messages
func (p *Parser) SetProgramName(name string) {
	p.programName = name
}

// OptionStyle returns the option style
func (p *Parser) OptionStyle() types.OptionStyle {
	return p.style
}

// SetOptionStyle sets the option style. The style can't be changed once options have been added.
func (p *Parser) SetOptionStyle(style types.OptionStyle) error {
	if len(p.options) > 0 && style != p.style {
		return errs.ErrStyleChange.WithArgs(p.style, style)
	}
	p.style = style

	return nil
}

// SetCaseInsensitive turns case-insensitive matching of flags and names on or off
func (p *Parser) SetCaseInsensitive(caseInsensitive bool) {
	p.caseInsensitive = caseInsensitive
}

// SetAbbreviatedOptions allows long flags to be abbreviated to any unambiguous prefix
func (p *Parser) SetAbbreviatedOptions(abbreviations bool) {
	p.abbreviations = abbreviations
}

// SetAutoExit makes Parse exit the program after help or stop options and after parse errors.
// Parse errors are printed to the error output before exiting.
func (p *Parser) SetAutoExit(autoExit bool) {
	p.autoExit = autoExit
}

// SetExitFunc replaces os.Exit as the function called when auto exit is on
func (p *Parser) SetExitFunc(exitFunc ExitFunc) {
	if exitFunc == nil {
		exitFunc = os.Exit
	}
	p.exitFunc = exitFunc
}

// SetIgnoreUndefinedArguments passes positional tokens which no argument accepts through to
// Result.Unprocessed instead of failing
func (p *Parser) SetIgnoreUndefinedArguments(ignore bool) {
	p.ignoreUndefinedArguments = ignore
}

// SetIgnoreUndefinedOptions passes unknown options through to Result.Unprocessed instead of failing
func (p *Parser) SetIgnoreUndefinedOptions(ignore bool) {
	p.ignoreUndefinedOptions = ignore
}

// SetOutput sets the writer receiving the help text
func (p *Parser) SetOutput(w io.Writer) {
	p.stdout = w
}

// SetErrorOutput sets the writer receiving error messages when auto exit is on
func (p *Parser) SetErrorOutput(w io.Writer) {
	p.stderr = w
}

// SetLineWidth sets the width of the help text. By default the width of the terminal is used.
func (p *Parser) SetLineWidth(width int) {
	p.lineWidth = width
}

// SetText replaces one of the texts of the help output. An empty text removes the block.
func (p *Parser) SetText(id types.TextID, text string) {
	p.texts[id] = text
}

// Text returns the text set with SetText. The boolean is false if no text was set.
func (p *Parser) Text(id types.TextID) (string, bool) {
	text, found := p.texts[id]
	return text, found
}

// SetGlobalArgumentCallback sets a function called for every matched argument after the argument's own callback
func (p *Parser) SetGlobalArgumentCallback(callback Callback) {
	p.argumentCallback = callback
}

// SetGlobalOptionCallback sets a function called for every matched option after the option's own callback
func (p *Parser) SetGlobalOptionCallback(callback Callback) {
	p.optionCallback = callback
}

// AddArgument adds a positional argument. Arguments receive positional tokens in the order they are added.
// The parser takes ownership of the argument, which must not be modified afterwards.
func (p *Parser) AddArgument(argument *Argument) error {
	if argument == nil {
		return errs.ErrNilDefinition
	}
	if err := argument.validate(); err != nil {
		return err
	}

	argument.argumentID = p.nextArgumentID()
	argument.valueID = p.valueID(argument.valueKey())
	p.arguments = append(p.arguments, argument)

	return nil
}

// AddOption adds an option. Its flags are validated against the option style.
// The parser takes ownership of the option, which must not be modified afterwards.
func (p *Parser) AddOption(option *Option) error {
	if option == nil {
		return errs.ErrNilDefinition
	}
	if err := option.validate(p.style); err != nil {
		return err
	}

	option.argumentID = p.nextArgumentID()
	option.valueID = p.valueID(option.valueKey())
	p.options = append(p.options, option)

	return nil
}

// Arguments returns the arguments in the order they were added
func (p *Parser) Arguments() []*Argument {
	return append([]*Argument(nil), p.arguments...)
}

// Options returns the options in the order they were added
func (p *Parser) Options() []*Option {
	return append([]*Option(nil), p.options...)
}

// Parse parses args, which should not include the program name. Configuration errors, such as
// two options with the same flag, are returned with a nil Result. Parse errors are returned
// together with a Result whose code is types.ResultError.
//
// When a help option is matched the help text is written to the output. With auto exit turned on,
// Parse exits with status 0 after help and stop options and with status 2 after printing a parse
// error.
func (p *Parser) Parse(args []string) (*Result, error) {
	it, err := p.Iterator(args)
	if err != nil {
		return nil, err
	}
	for {
		if _, _, ok := it.Next(); !ok {
			break
		}
	}

	result := it.Result()
	p.applyExitPolicy(result)

	return result, result.Err()
}

// ParseString splits s into tokens using shell quoting rules and parses them. Unbalanced quotes
// yield errs.ErrCommandLine.
func (p *Parser) ParseString(s string) (*Result, error) {
	args, err := parse.Split(s)
	if err != nil {
		return nil, err
	}

	return p.Parse(args)
}

// Iterator returns an Iterator which parses args one definition at a time. Help texts are not
// written and auto exit does not apply.
func (p *Parser) Iterator(args []string) (*Iterator, error) {
	e, err := newEngine(p, args)
	if err != nil {
		return nil, err
	}

	return &Iterator{engine: e}, nil
}

func (p *Parser) applyExitPolicy(result *Result) {
	switch result.Code() {
	case types.ResultStop:
		if special, err := result.SpecialOption(); err == nil && special.Type() == types.Help {
			_ = p.WriteHelp(p.stdout)
		}
		if p.autoExit {
			p.exitFunc(0)
		}
	case types.ResultError:
		if p.autoExit {
			_, _ = fmt.Fprintf(p.stderr, "%s: %s\n", p.programName, result.Err())
			_ = p.writeErrorUsage(p.stderr)
			p.exitFunc(2)
		}
	}
}

func (p *Parser) nextArgumentID() types.ArgumentID {
	return types.ArgumentID(len(p.arguments) + len(p.options) + 1)
}

// valueID returns the value id shared by all definitions with the same key. An empty key always
// yields a new value id.
func (p *Parser) valueID(key string) types.ValueID {
	if key != "" {
		if id, found := p.valueIDs[key]; found {
			return id
		}
	}

	p.lastValueID++
	if key != "" {
		p.valueIDs[key] = p.lastValueID
	}

	return p.lastValueID
}
