// SPDX-License-Identifier: MIT

package table

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/uca/element"
	"github.com/katalvlaran/uca/weight"
)

// bounds is the partial result of a reduction over a run of mappings.
type bounds struct {
	lo, hi weight.Weight
}

func (b bounds) merge(o bounds) bounds {
	if o.lo < b.lo {
		b.lo = o.lo
	}
	if o.hi > b.hi {
		b.hi = o.hi
	}

	return b
}

// MinWeightAtLevel returns MINn (UTS10-D26): the least representative
// weight at 1-based level n over all mappings of t.
//
// Errors:
//   - element.ErrInvalidLevelIndex if n < 1 (no clamping at this layer).
//   - ErrEmptyTable                if t holds no mappings.
//   - element.ErrLevelOutOfRange   (wrapped) if a mapping has fewer than n levels;
//     the first such mapping in table order is named, on every path.
func (t *Table) MinWeightAtLevel(n int) (weight.Weight, error) {
	b, err := t.reduce(n)
	if err != nil {
		return 0, err
	}

	return b.lo, nil
}

// MaxWeightAtLevel returns MAXn (UTS10-D27): the greatest representative
// weight at 1-based level n over all mappings of t. Errors match
// MinWeightAtLevel.
func (t *Table) MaxWeightAtLevel(n int) (weight.Weight, error) {
	b, err := t.reduce(n)
	if err != nil {
		return 0, err
	}

	return b.hi, nil
}

// Bounds returns MINn and MAXn in a single pass. Errors match
// MinWeightAtLevel.
func (t *Table) Bounds(n int) (lo, hi weight.Weight, err error) {
	b, err := t.reduce(n)
	if err != nil {
		return 0, 0, err
	}

	return b.lo, b.hi, nil
}

// reduce validates n and dispatches to the sequential or chunked reduction.
//
// Complexity: O(M·E) where M = mappings and E = longest element sequence;
// the parallel path divides the wall time by up to Workers.
func (t *Table) reduce(n int) (bounds, error) {
	if n < 1 {
		return bounds{}, fmt.Errorf("table: level %d: %w", n, element.ErrInvalidLevelIndex)
	}
	size := len(t.mappings)
	if size == 0 {
		return bounds{}, ErrEmptyTable
	}

	workers := min(t.opts.Workers, size)
	if workers <= 1 || size < t.opts.MinParallel {
		return t.scan(0, size, n)
	}

	chunk := (size + workers - 1) / workers
	// Every chunk is non-empty: i*chunk < size for i < len(parts).
	parts := make([]bounds, (size+chunk-1)/chunk)
	errs := make([]error, len(parts))

	var g errgroup.Group
	for i := range parts {
		i := i
		from := i * chunk
		to := min(from+chunk, size)
		g.Go(func() error {
			parts[i], errs[i] = t.scan(from, to, n)
			return errs[i]
		})
	}
	if g.Wait() != nil {
		// Report the lowest failing mapping, as the sequential scan would.
		for _, err := range errs {
			if err != nil {
				return bounds{}, err
			}
		}
	}

	out := parts[0]
	for _, p := range parts[1:] {
		out = out.merge(p)
	}

	return out, nil
}

// scan reduces mappings [from, to) sequentially. from < to must hold.
func (t *Table) scan(from, to, n int) (bounds, error) {
	var out bounds
	for i := from; i < to; i++ {
		m := t.mappings[i]
		w, err := m.WeightAtLevel(n)
		if err != nil {
			return bounds{}, fmt.Errorf("table: mapping %d (%s): %w", i, m, err)
		}
		if i == from {
			out = bounds{lo: w, hi: w}
			continue
		}
		out = out.merge(bounds{lo: w, hi: w})
	}

	return out, nil
}
