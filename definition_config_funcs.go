package argmatch

import "github.com/napalu/argmatch/types"

// WithText sets the help text of an argument or option
func WithText(text string) ConfigureDefinitionFunc {
	return func(d *definition, err *error) {
		d.text = text
	}
}

// WithSection places an argument or option in a named section of the help text.
// Sections are listed in the order they are first used.
func WithSection(section string) ConfigureDefinitionFunc {
	return func(d *definition, err *error) {
		d.section = section
	}
}

// WithValueName sets the name under which the value is stored. Definitions with the same
// value name share their values, e.g. --verbose and --quiet writing to "verbosity".
func WithValueName(name string) ConfigureDefinitionFunc {
	return func(d *definition, err *error) {
		d.valueName = name
	}
}

// WithVisibility controls whether the definition appears in the usage line and the lists of the help text
func WithVisibility(visibility types.Visibility) ConfigureDefinitionFunc {
	return func(d *definition, err *error) {
		d.visibility = visibility
	}
}

// WithID sets a custom id which is returned by Definition.ID
func WithID(id int) ConfigureDefinitionFunc {
	return func(d *definition, err *error) {
		d.id = id
	}
}

// WithCallback sets a function which is called whenever the definition is matched
func WithCallback(callback Callback) ConfigureDefinitionFunc {
	return func(d *definition, err *error) {
		d.callback = callback
	}
}
