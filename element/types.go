// SPDX-License-Identifier: MIT

package element

import (
	"errors"

	"github.com/katalvlaran/uca/weight"
)

// Sentinel errors returned by the element package.
var (
	// ErrMalformedNotation indicates a missing "[." / "]" wrapper or an empty body.
	ErrMalformedNotation = errors.New("element: malformed collation element notation")

	// ErrInvalidLevelIndex indicates a level index below 1 where a positive
	// index is required.
	ErrInvalidLevelIndex = errors.New("element: level index must be positive")

	// ErrLevelOutOfRange indicates a level index past the element's last level.
	ErrLevelOutOfRange = errors.New("element: level index exceeds element length")
)

// Element is a collation element (UTS10-D2): an ordered list of collation
// weights where position i holds the Level i+1 weight. Elements are
// immutable; the zero value is the empty element.
type Element struct {
	weights []weight.Weight
}

// Class is the mutually exclusive category of an element, decided by the
// level of its first non-ignorable weight.
type Class int

const (
	// ClassCompletelyIgnorable has ignorable weights at all levels (D13).
	ClassCompletelyIgnorable Class = iota
	// ClassPrimary has a non-ignorable Level 1 weight (D9).
	ClassPrimary
	// ClassSecondary has its first non-ignorable weight at Level 2 (D10).
	ClassSecondary
	// ClassTertiary has its first non-ignorable weight at Level 3 (D11).
	ClassTertiary
	// ClassQuaternary has its first non-ignorable weight at Level 4 (D12).
	ClassQuaternary
	// ClassOther has its first non-ignorable weight beyond Level 4.
	ClassOther
)

// String returns a human-readable class name.
func (c Class) String() string {
	switch c {
	case ClassCompletelyIgnorable:
		return "completely ignorable"
	case ClassPrimary:
		return "primary"
	case ClassSecondary:
		return "secondary"
	case ClassTertiary:
		return "tertiary"
	case ClassQuaternary:
		return "quaternary"
	default:
		return "other"
	}
}
