package util

import (
	"strconv"
	"strings"
)

// ParseInt parses a signed integer of the given bit size. Prefixes such as 0x, 0o and 0b are accepted.
func ParseInt(value string, bitSize int) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(value), 0, bitSize)
}

// ParseUint parses an unsigned integer of the given bit size. Prefixes such as 0x, 0o and 0b are accepted.
func ParseUint(value string, bitSize int) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(value), 0, bitSize)
}

// ParseFloat parses a floating point number of the given bit size
func ParseFloat(value string, bitSize int) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(value), bitSize)
}

// ParseBool accepts everything strconv.ParseBool does. Any other integer is true when it is non-zero.
func ParseBool(value string) (bool, error) {
	if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
		return b, nil
	}

	n, err := ParseInt(value, 64)
	if err != nil {
		return false, err
	}

	return n != 0, nil
}
