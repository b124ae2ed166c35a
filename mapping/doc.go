// SPDX-License-Identifier: MIT

// Package mapping implements collation element mappings (UTS #10, D17–D22):
// associations from one or more Unicode characters to one or more
// collation elements.
//
// A Mapping is a closed sum type over exactly four shapes:
//
//	| Shape      | Characters | Elements |
//	|------------|------------|----------|
//	| Simple     | 1          | 1        |
//	| Expansion  | 1          | >1       |
//	| ManyToOne  | >1         | 1        |
//	| ManyToMany | >1         | >1       |
//
// New always starts from the general many-to-many pair and canonicalises
// it to the most specific shape its arities allow. Canonicalize is pure and
// idempotent, so feeding it an already canonical mapping returns an equal
// mapping. Contractions (D22) are the ManyToOne and ManyToMany shapes.
//
// Use a type switch to branch on the shape:
//
//	m, err := mapping.New([]rune("ch"), []element.Element{ce})
//	if err != nil {
//	    return err
//	}
//	switch v := m.(type) {
//	case mapping.ManyToOne:
//	    fmt.Println("contraction", string(v.Runes), v.CE)
//	}
//
// The exported fields of the shape structs must be treated as read-only;
// Characters and Elements return copies, and Clone detaches a whole mapping.
//
// Errors (sentinel):
//
//   - ErrInvalidArity: zero characters or zero elements, or a nil mapping.
//   - ErrInvalidRune:  a character that is a surrogate or lies outside
//     [0, 0x10FFFF]; such runes would collapse to U+FFFD in string keys.
package mapping
