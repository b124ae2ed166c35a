// SPDX-License-Identifier: MIT

package weight

import (
	"fmt"
	"strconv"
)

// FromHex parses s as a hexadecimal collation weight, e.g. "06D9".
// Digits are case-insensitive and the width is not fixed: "2", "0020" and
// "00020" all denote the same weight. Signs, "0x" prefixes and empty input
// are rejected with ErrMalformedWeight.
func FromHex(s string) (Weight, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrMalformedWeight)
	}
	// ParseUint with an explicit base accepts neither signs nor prefixes.
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedWeight, s)
	}

	return Weight(v), nil
}

// FromInt returns the weight with numeric value n.
func FromInt(n uint32) Weight {
	return Weight(n)
}

// IsIgnorable reports whether w is an ignorable weight (UTS10-D8),
// i.e. whether its value is exactly zero.
func (w Weight) IsIgnorable() bool {
	return w == 0
}

// Compare returns -1, 0 or +1 depending on whether w is less than, equal
// to or greater than o.
func (w Weight) Compare(o Weight) int {
	switch {
	case w < o:
		return -1
	case w > o:
		return 1
	default:
		return 0
	}
}

// String renders w as at least four uppercase hexadecimal digits, the form
// used inside collation element notation.
func (w Weight) String() string {
	return fmt.Sprintf("%04X", uint32(w))
}
