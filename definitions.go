package argmatch

import (
	"io"

	"github.com/napalu/argmatch/types"
)

// Definition is implemented by *Argument and *Option. It exposes what both have in common
// so that callbacks and result accessors can treat them alike.
type Definition interface {
	Kind() types.Kind
	// ID returns the custom id set with WithID (0 by default)
	ID() int
	ValueID() types.ValueID
	ArgumentID() types.ArgumentID
	Section() string
	Text() string
	Visibility() types.Visibility
	// DisplayName returns "<name>" for arguments and the comma-separated flags for options
	DisplayName() string
}

// ConfigureParserFunc is used when configuring a Parser with NewParserWith
type ConfigureParserFunc func(p *Parser, err *error)

// ConfigureArgumentFunc is used when defining an Argument
type ConfigureArgumentFunc func(a *Argument, err *error)

// ConfigureOptionFunc is used when defining an Option
type ConfigureOptionFunc func(o *Option, err *error)

// ConfigureDefinitionFunc configures the properties shared by arguments and options. It can be
// passed to both NewArgument and NewOption.
type ConfigureDefinitionFunc func(d *definition, err *error)

// ArgumentConfigurer is accepted by NewArgument
type ArgumentConfigurer interface {
	configureArgument(a *Argument, err *error)
}

// OptionConfigurer is accepted by NewOption
type OptionConfigurer interface {
	configureOption(o *Option, err *error)
}

func (f ConfigureArgumentFunc) configureArgument(a *Argument, err *error) { f(a, err) }

func (f ConfigureOptionFunc) configureOption(o *Option, err *error) { f(o, err) }

func (f ConfigureDefinitionFunc) configureArgument(a *Argument, err *error) { f(&a.definition, err) }

func (f ConfigureDefinitionFunc) configureOption(o *Option, err *error) { f(&o.definition, err) }

// Callback is called each time a definition is matched, after its value has been recorded.
// Returning an error ends the parse with types.ResultError.
type Callback func(d Definition, value string, b *ResultBuilder) error

// ExitFunc terminates the program. It defaults to os.Exit.
type ExitFunc func(code int)

// definition holds the properties shared by Argument and Option
type definition struct {
	text       string
	section    string
	valueName  string
	visibility types.Visibility
	id         int
	callback   Callback
	valueID    types.ValueID
	argumentID types.ArgumentID
	// err is the first configuration error, reported when the definition is added to a Parser
	err error
}

// Text returns the help text
func (d *definition) Text() string {
	return d.text
}

// Section returns the help section, empty for the default section
func (d *definition) Section() string {
	return d.section
}

// ValueName returns the name under which the value is stored, empty if none was set
func (d *definition) ValueName() string {
	return d.valueName
}

// Visibility returns where the definition is shown in the help text
func (d *definition) Visibility() types.Visibility {
	return d.visibility
}

// ID returns the custom id
func (d *definition) ID() int {
	return d.id
}

// ValueID returns the id of the result slot. It is assigned when the definition is added to a Parser.
func (d *definition) ValueID() types.ValueID {
	return d.valueID
}

// ArgumentID returns the unique id of the definition. It is assigned when the definition is added to a Parser.
func (d *definition) ArgumentID() types.ArgumentID {
	return d.argumentID
}

func (d *definition) setErr(err error) {
	if d.err == nil {
		d.err = err
	}
}

// Parser holds the argument and option definitions and the parser configuration
type Parser struct {
	programName              string
	arguments                []*Argument
	options                  []*Option
	style                    types.OptionStyle
	caseInsensitive          bool
	abbreviations            bool
	autoExit                 bool
	ignoreUndefinedArguments bool
	ignoreUndefinedOptions   bool
	exitFunc                 ExitFunc
	stdout                   io.Writer
	stderr                   io.Writer
	lineWidth                int
	texts                    map[types.TextID]string
	argumentCallback         Callback
	optionCallback           Callback
	valueIDs                 map[string]types.ValueID
	lastValueID              types.ValueID
}
