// SPDX-License-Identifier: MIT

// Package table implements collation element tables (UTS #10, D23–D27):
// read-only, ordered collections of collation element mappings that answer
// extremal weight queries.
//
// Overview:
//
//   - Build aggregates a batch of mappings. Duplicate or conflicting
//     mappings are kept as given; resolving them is the loader's job.
//   - MinWeightAtLevel (MINn) and MaxWeightAtLevel (MAXn) reduce every
//     mapping's representative weight at level n. For a multi-element
//     mapping the representative weight is the least weight at level n
//     among its elements.
//   - Lookup finds a mapping by its characters after Unicode
//     normalisation (NFD by default), so precomposed U+00E9 and the
//     sequence U+0065 U+0301 reach the same mapping.
//
// Options:
//
//   - WithWorkers(n):     reduce queries on up to n goroutines.
//   - WithMinParallel(n): stay sequential below n mappings.
//   - WithForm(f):        normalisation form used by Lookup.
//
// Errors (sentinel):
//
//   - element.ErrInvalidLevelIndex if a query level is below 1.
//   - ErrEmptyTable                if a query runs on a table with no mappings.
//   - element.ErrLevelOutOfRange   (wrapped) if some mapping lacks level n.
//
// A Table never changes after Build and is safe for concurrent queries.
//
// Example:
//
//	t := table.Build(mappings, table.WithWorkers(runtime.NumCPU()))
//	lo, hi, err := t.Bounds(1)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("MIN1=%s MAX1=%s\n", lo, hi)
package table
