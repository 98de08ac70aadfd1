package argmatch

import (
	"strconv"
	"strings"

	"github.com/napalu/argmatch/errs"
	"github.com/napalu/argmatch/internal/util"
)

// Value is a single value read from a Result
type Value struct {
	value        string
	found        bool
	presenceOnly bool // present without a value, as recorded by options with operation none
	def          Definition
}

// Has reports whether the value was present on the command line
func (v Value) Has() bool {
	return v.found
}

// String returns the raw value, empty if it was not present
func (v Value) String() string {
	return v.value
}

// Definition returns the definition which recorded the value, nil if the name is unused
func (v Value) Definition() Definition {
	return v.def
}

// AsString returns the value, or def if no value was recorded
func (v Value) AsString(def string) string {
	if !v.recorded() {
		return def
	}

	return v.value
}

// AsBool interprets the value as a boolean. Besides the strings accepted by strconv.ParseBool,
// integers are true when they are non-zero. An option which was present without a value is true.
func (v Value) AsBool(def bool) (bool, error) {
	if v.presenceOnly {
		return true, nil
	}
	if !v.found {
		return def, nil
	}
	b, err := util.ParseBool(v.value)
	if err != nil {
		return def, v.invalid(err)
	}

	return b, nil
}

// AsInt interprets the value as an int. Prefixes such as 0x are accepted.
func (v Value) AsInt(def int) (int, error) {
	n, err := v.asInt(int64(def), strconv.IntSize)
	return int(n), err
}

// AsInt8 interprets the value as an int8
func (v Value) AsInt8(def int8) (int8, error) {
	n, err := v.asInt(int64(def), 8)
	return int8(n), err
}

// AsInt16 interprets the value as an int16
func (v Value) AsInt16(def int16) (int16, error) {
	n, err := v.asInt(int64(def), 16)
	return int16(n), err
}

// AsInt32 interprets the value as an int32
func (v Value) AsInt32(def int32) (int32, error) {
	n, err := v.asInt(int64(def), 32)
	return int32(n), err
}

// AsInt64 interprets the value as an int64
func (v Value) AsInt64(def int64) (int64, error) {
	return v.asInt(def, 64)
}

// AsUint interprets the value as a uint
func (v Value) AsUint(def uint) (uint, error) {
	n, err := v.asUint(uint64(def), strconv.IntSize)
	return uint(n), err
}

// AsUint8 interprets the value as a uint8
func (v Value) AsUint8(def uint8) (uint8, error) {
	n, err := v.asUint(uint64(def), 8)
	return uint8(n), err
}

// AsUint16 interprets the value as a uint16
func (v Value) AsUint16(def uint16) (uint16, error) {
	n, err := v.asUint(uint64(def), 16)
	return uint16(n), err
}

// AsUint32 interprets the value as a uint32
func (v Value) AsUint32(def uint32) (uint32, error) {
	n, err := v.asUint(uint64(def), 32)
	return uint32(n), err
}

// AsUint64 interprets the value as a uint64
func (v Value) AsUint64(def uint64) (uint64, error) {
	return v.asUint(def, 64)
}

// AsFloat32 interprets the value as a float32
func (v Value) AsFloat32(def float32) (float32, error) {
	f, err := v.asFloat(float64(def), 32)
	return float32(f), err
}

// AsFloat64 interprets the value as a float64
func (v Value) AsFloat64(def float64) (float64, error) {
	return v.asFloat(def, 64)
}

// Split splits the value at sep. With maxParts > 0 the value is split into at most maxParts parts,
// the last part holding the remainder. Fewer than minParts parts is an error.
//
//	v.Split(",", 2, 2) // "640,480" => ["640", "480"]
func (v Value) Split(sep string, minParts, maxParts int) (Values, error) {
	if !v.recorded() {
		return Values{def: v.def}, nil
	}

	n := -1
	if maxParts > 0 {
		n = maxParts
	}
	parts := strings.SplitN(v.value, sep, n)
	if len(parts) < minParts {
		return Values{def: v.def}, v.invalid(nil)
	}

	defs := make([]Definition, len(parts))
	for i := range defs {
		defs[i] = v.def
	}

	return Values{values: parts, defs: defs, def: v.def}, nil
}

func (v Value) asInt(def int64, bitSize int) (int64, error) {
	if !v.recorded() {
		return def, nil
	}
	n, err := util.ParseInt(v.value, bitSize)
	if err != nil {
		return def, v.invalid(err)
	}

	return n, nil
}

func (v Value) asUint(def uint64, bitSize int) (uint64, error) {
	if !v.recorded() {
		return def, nil
	}
	n, err := util.ParseUint(v.value, bitSize)
	if err != nil {
		return def, v.invalid(err)
	}

	return n, nil
}

func (v Value) asFloat(def float64, bitSize int) (float64, error) {
	if !v.recorded() {
		return def, nil
	}
	f, err := util.ParseFloat(v.value, bitSize)
	if err != nil {
		return def, v.invalid(err)
	}

	return f, nil
}

// recorded reports whether a value, possibly empty, was recorded
func (v Value) recorded() bool {
	return v.found && !v.presenceOnly
}

func (v Value) invalid(cause error) error {
	name := "value"
	if v.def != nil {
		name = v.def.DisplayName()
	}
	err := errs.ErrInvalidValue.WithArgs(name, v.value)
	if cause != nil {
		return err.Wrap(cause)
	}

	return err
}

// Values is the ordered list of values read from a Result
type Values struct {
	values []string
	defs   []Definition
	def    Definition
}

// Len returns the number of values
func (vs Values) Len() int {
	return len(vs.values)
}

// At returns the value at index i
func (vs Values) At(i int) Value {
	return Value{value: vs.values[i], found: true, def: vs.defs[i]}
}

// Strings returns a copy of the raw values
func (vs Values) Strings() []string {
	return append([]string(nil), vs.values...)
}

// Definitions returns the definition which recorded each value
func (vs Values) Definitions() []Definition {
	return append([]Definition(nil), vs.defs...)
}

// Ints interprets all values as ints
func (vs Values) Ints() ([]int, error) {
	return convertAll(vs, func(v Value) (int, error) { return v.AsInt(0) })
}

// Int32s interprets all values as int32s
func (vs Values) Int32s() ([]int32, error) {
	return convertAll(vs, func(v Value) (int32, error) { return v.AsInt32(0) })
}

// Int64s interprets all values as int64s
func (vs Values) Int64s() ([]int64, error) {
	return convertAll(vs, func(v Value) (int64, error) { return v.AsInt64(0) })
}

// Uint64s interprets all values as uint64s
func (vs Values) Uint64s() ([]uint64, error) {
	return convertAll(vs, func(v Value) (uint64, error) { return v.AsUint64(0) })
}

// Float64s interprets all values as float64s
func (vs Values) Float64s() ([]float64, error) {
	return convertAll(vs, func(v Value) (float64, error) { return v.AsFloat64(0) })
}

// Bools interprets all values as booleans
func (vs Values) Bools() ([]bool, error) {
	return convertAll(vs, func(v Value) (bool, error) { return v.AsBool(false) })
}

// Split splits every value at sep and returns all parts, see Value.Split
func (vs Values) Split(sep string, minParts, maxParts int) (Values, error) {
	out := Values{def: vs.def}
	for i := range vs.values {
		parts, err := vs.At(i).Split(sep, minParts, maxParts)
		if err != nil {
			return Values{def: vs.def}, err
		}
		out.values = append(out.values, parts.values...)
		out.defs = append(out.defs, parts.defs...)
	}

	return out, nil
}

func convertAll[T any](vs Values, fn func(Value) (T, error)) ([]T, error) {
	out := make([]T, 0, len(vs.values))
	for i := range vs.values {
		converted, err := fn(vs.At(i))
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}

	return out, nil
}
