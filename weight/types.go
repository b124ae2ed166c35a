// SPDX-License-Identifier: MIT

package weight

import "errors"

// Sentinel errors returned by the weight package.
var (
	// ErrMalformedWeight indicates that a string is not a valid hexadecimal
	// collation weight (empty, signed, prefixed, non-hex or wider than 32 bits).
	ErrMalformedWeight = errors.New("weight: malformed hexadecimal weight")

	// ErrUnsupportedLevel indicates that a level ordinal outside 1..4 was requested.
	ErrUnsupportedLevel = errors.New("weight: unsupported level ordinal")
)

// Weight is a collation weight (UTS10-D1): a non-negative integer used to
// establish a systematic comparison of sort keys.
type Weight uint32

// Ordinal is the 1-based position of a weight within a collation element.
type Ordinal int

const (
	// Primary is the Level 1 ordinal (L1).
	Primary Ordinal = iota + 1
	// Secondary is the Level 2 ordinal (L2).
	Secondary
	// Tertiary is the Level 3 ordinal (L3).
	Tertiary
	// Quaternary is the Level 4 ordinal (L4).
	Quaternary

	// MaxOrdinal is the highest ordinal a Level can carry.
	MaxOrdinal = Quaternary
)

// Level is a collation level (UTS10-D3) together with the weight found at
// that position. The zero Level is not valid; build one with NewLevel.
type Level struct {
	ordinal Ordinal
	weight  Weight
}
