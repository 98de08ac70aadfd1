package argmatch

import (
	"github.com/napalu/argmatch/errs"
	"github.com/napalu/argmatch/types"
)

// WithCount sets how often an argument occurs. A single count n means exactly n times,
// two counts are the minimum and the maximum. Use types.Unbounded as maximum for arguments
// which accept any number of values.
func WithCount(counts ...int) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		switch len(counts) {
		case 1:
			argument.min, argument.max = counts[0], counts[0]
		case 2:
			argument.min, argument.max = counts[0], counts[1]
		default:
			*err = errs.ErrInvalidCount.WithArgs(argument.name, len(counts), 0)
			return
		}
		*err = validCount(argument.name, argument.min, argument.max)
	}
}

// WithOptional makes an argument optional by setting its minimum count to 0
func WithOptional() ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.min = 0
	}
}

// WithUnbounded lets an argument take any number of values
func WithUnbounded() ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.max = types.Unbounded
	}
}
