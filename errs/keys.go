// Package errs provides the sentinel errors returned by argmatch.
// This file contains the stable keys identifying each error.
package errs

const (
	prefixKey = "argmatch"
)

// Error prefixes
const (
	ConfigPrefixKey = prefixKey + ".config"
	ParsePrefixKey  = prefixKey + ".parse"
	UsagePrefixKey  = prefixKey + ".usage"
)

// Configuration error keys
const (
	ErrEmptyNameKey        = ConfigPrefixKey + ".empty_name"
	ErrNoFlagsKey          = ConfigPrefixKey + ".no_flags"
	ErrInvalidFlagKey      = ConfigPrefixKey + ".invalid_flag"
	ErrInvalidCountKey     = ConfigPrefixKey + ".invalid_count"
	ErrInvalidOperationKey = ConfigPrefixKey + ".invalid_operation"
	ErrStyleChangeKey      = ConfigPrefixKey + ".style_change"
	ErrDuplicateFlagKey    = ConfigPrefixKey + ".duplicate_flag"
	ErrNameConflictKey     = ConfigPrefixKey + ".name_conflict"
	ErrEmbeddedOnlyKey     = ConfigPrefixKey + ".embedded_only"
)

// Parse error keys
const (
	ErrUnknownOptionKey    = ParsePrefixKey + ".unknown_option"
	ErrAmbiguousOptionKey  = ParsePrefixKey + ".ambiguous_option"
	ErrMissingValueKey     = ParsePrefixKey + ".missing_value"
	ErrValueNotAllowedKey  = ParsePrefixKey + ".value_not_allowed"
	ErrMissingArgumentKey  = ParsePrefixKey + ".missing_argument"
	ErrTooManyArgumentsKey = ParsePrefixKey + ".too_many_arguments"
	ErrMissingOptionKey    = ParsePrefixKey + ".missing_option"
	ErrCallbackKey         = ParsePrefixKey + ".callback"
	ErrInvalidValueKey     = ParsePrefixKey + ".invalid_value"
	ErrSuggestionKey       = ParsePrefixKey + ".suggestion"
	ErrCommandLineKey      = ParsePrefixKey + ".command_line"
)

// Usage error keys
const (
	ErrAmbiguousReadKey   = UsagePrefixKey + ".ambiguous_read"
	ErrUnknownNameKey     = UsagePrefixKey + ".unknown_name"
	ErrNoSpecialOptionKey = UsagePrefixKey + ".no_special_option"
	ErrNilDefinitionKey   = UsagePrefixKey + ".nil_definition"
)
