// SPDX-License-Identifier: MIT

// Package uca is the data model underneath the Unicode Collation Algorithm
// (UTS #10): collation weights, collation elements, the predicates that
// classify an element by its first non-ignorable weight, collation element
// mappings and collation element tables with extremal weight queries.
//
// What is inside:
//
//	weight/  — Weight (D1, D8) and Level (D3–D7)
//	element/ — Element (D2), notation "[.06D9.0020.0002]", classification (D9–D15)
//	mapping/ — Simple, Expansion, ManyToOne, ManyToMany (D17–D22)
//	table/   — Table (D23) with MINn / MAXn queries (D26, D27) and lookup
//
// Data flows one way: weight → element → mapping → table. Every value is
// immutable once built, and every failure is a sentinel error matched with
// errors.Is; nothing in this module panics on user input.
//
// Not included: sort-key construction, DUCET loading, implicit weights,
// tailoring, variable weighting and string search. Those layers consume
// the types defined here.
//
// Quick example:
//
//	ce, _ := element.FromNotation("[.1C47.0020.0002]")
//	m, _ := mapping.New([]rune("a"), []element.Element{ce})
//	t := table.Build([]mapping.Mapping{m})
//	min1, _ := t.MinWeightAtLevel(1) // 1C47
//
//	go get github.com/katalvlaran/uca
package uca
