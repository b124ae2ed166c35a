// SPDX-License-Identifier: MIT

// Package element implements collation elements (UTS #10, D2–D15): ordered
// lists of collation weights, one per level, together with the predicates
// that classify an element by where its first non-ignorable weight sits.
//
// Notation:
//
//	[.06D9.0020.0002]
//
// is the element with primary 06D9, secondary 0020 and tertiary 0002.
// FromNotation parses it, String renders it back.
//
// Level indexing is 1-based everywhere:
//
//   - WeightAtLevel clamps n<1 to 1 and returns ErrLevelOutOfRange past
//     the element's length.
//   - IsNIgnorable rejects n<1 with ErrInvalidLevelIndex.
//
// Classification:
//
//	| Schematic              | Class                    | Ignorable | Level notation    |
//	|------------------------|--------------------------|-----------|-------------------|
//	| [.nnnn.nnnn.nnnn.nnnn] | ClassPrimary             | no        | Level 0 ignorable |
//	| [.0000.nnnn.nnnn.nnnn] | ClassSecondary           | yes       | Level 1 ignorable |
//	| [.0000.0000.nnnn.nnnn] | ClassTertiary            | yes       | Level 2 ignorable |
//	| [.0000.0000.0000.nnnn] | ClassQuaternary          | yes       | Level 3 ignorable |
//	| [.0000.0000.0000.0000] | ClassCompletelyIgnorable | yes       | Level 4 ignorable |
//
// Class follows this table and is mutually exclusive. The IsPrimary,
// IsSecondary, IsTertiary and IsQuaternary predicates keep the historical
// per-level reading instead: each only looks at its own level, so an
// element with four non-zero weights satisfies all four.
//
// Parser memoises FromNotation with a fixed-size LRU cache, which pays off
// when a loader parses the same few ignorable elements thousands of times.
package element
