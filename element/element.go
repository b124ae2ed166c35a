// SPDX-License-Identifier: MIT

package element

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/uca/weight"
)

// New returns the element whose Level i weight is ws[i-1].
// The slice is copied; any number of levels is accepted.
func New(ws ...weight.Weight) Element {
	if len(ws) == 0 {
		return Element{}
	}

	return Element{weights: slices.Clone(ws)}
}

// Len returns the number of levels in e.
func (e Element) Len() int {
	return len(e.weights)
}

// Weights returns a copy of the weights of e in level order.
func (e Element) Weights() []weight.Weight {
	return slices.Clone(e.weights)
}

// Equal reports whether e and o hold the same weights at the same levels.
func (e Element) Equal(o Element) bool {
	return slices.Equal(e.weights, o.weights)
}

// Levels returns one Level per weight, in order, with ordinal = position+1.
// Levels are only named up to Quaternary, so an element with more than
// four weights fails with weight.ErrUnsupportedLevel.
//
// Complexity: O(Len())
func (e Element) Levels() ([]weight.Level, error) {
	out := make([]weight.Level, 0, len(e.weights))
	for i, w := range e.weights {
		l, err := weight.NewLevel(i+1, w)
		if err != nil {
			return nil, fmt.Errorf("element: levels of %s: %w", e, err)
		}
		out = append(out, l)
	}

	return out, nil
}

// WeightAtLevel returns the weight at 1-based level n. Values of n below 1
// are treated as 1. A level past the end of e fails with ErrLevelOutOfRange.
func (e Element) WeightAtLevel(n int) (weight.Weight, error) {
	if n < 1 {
		n = 1
	}
	if n > len(e.weights) {
		return 0, fmt.Errorf("%w: level %d of %d", ErrLevelOutOfRange, n, len(e.weights))
	}

	return e.weights[n-1], nil
}
