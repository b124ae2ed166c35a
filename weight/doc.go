// SPDX-License-Identifier: MIT

// Package weight defines collation weights and collation levels, the two
// leaf notions of the Unicode Collation Algorithm (UTS #10, D1–D8).
//
// Overview:
//
//   - A Weight is a non-negative integer compared by numeric value.
//     A weight of zero is ignorable: sort-key construction passes over it.
//   - A Level pairs a weight with its ordinal position inside a collation
//     element: 1=Primary, 2=Secondary, 3=Tertiary, 4=Quaternary.
//
// Weights are written in hexadecimal in collation element notation, so
// FromHex is the usual entry point:
//
//	w, err := weight.FromHex("06D9")
//	if err != nil {
//	    return err // errors.Is(err, weight.ErrMalformedWeight)
//	}
//	lvl, err := weight.NewLevel(1, w) // L1=06D9
//
// Errors (sentinel):
//
//   - ErrMalformedWeight  if a string is not a hexadecimal weight.
//   - ErrUnsupportedLevel if a level ordinal lies outside 1..4.
//
// Both Weight and Level are plain immutable values and safe to share
// between goroutines.
package weight
