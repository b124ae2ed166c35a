// SPDX-License-Identifier: MIT

package mapping

import (
	"errors"

	"github.com/katalvlaran/uca/element"
	"github.com/katalvlaran/uca/weight"
)

// ErrInvalidArity indicates a mapping with zero characters or zero elements.
var ErrInvalidArity = errors.New("mapping: mapping needs at least one character and one element")

// ErrInvalidRune indicates a character that is not a Unicode scalar value.
var ErrInvalidRune = errors.New("mapping: character is not a Unicode scalar value")

// Shape names the four canonical mapping shapes.
type Shape int

const (
	// ShapeSimple maps one character to one element (D18).
	ShapeSimple Shape = iota
	// ShapeExpansion maps one character to several elements (D19).
	ShapeExpansion
	// ShapeManyToOne maps several characters to one element (D20).
	ShapeManyToOne
	// ShapeManyToMany maps several characters to several elements (D21).
	ShapeManyToMany
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeSimple:
		return "simple"
	case ShapeExpansion:
		return "expansion"
	case ShapeManyToOne:
		return "many-to-one"
	case ShapeManyToMany:
		return "many-to-many"
	default:
		return "unknown"
	}
}

// Mapping is a collation element mapping. Its only implementations are
// Simple, Expansion, ManyToOne and ManyToMany.
type Mapping interface {
	// Shape reports which of the four shapes the mapping has.
	Shape() Shape
	// Characters returns a copy of the input characters.
	Characters() []rune
	// Elements returns a copy of the output elements.
	Elements() []element.Element
	// IsContraction reports whether more than one character is mapped (D22).
	IsContraction() bool
	// WeightAtLevel returns the representative weight at 1-based level n:
	// the element's weight for single-element shapes, or the least weight
	// at level n among the elements for multi-element shapes.
	WeightAtLevel(n int) (weight.Weight, error)
	// String renders the mapping as "0061 ; [.1C47.0020.0002]".
	String() string

	mapping()
}

// Simple maps one character to one collation element.
type Simple struct {
	Rune rune
	CE   element.Element
}

// Expansion maps one character to more than one collation element.
type Expansion struct {
	Rune rune
	CEs  []element.Element
}

// ManyToOne maps more than one character to one collation element.
type ManyToOne struct {
	Runes []rune
	CE    element.Element
}

// ManyToMany maps more than one character to more than one collation element.
type ManyToMany struct {
	Runes []rune
	CEs   []element.Element
}

var (
	_ Mapping = Simple{}
	_ Mapping = Expansion{}
	_ Mapping = ManyToOne{}
	_ Mapping = ManyToMany{}
)
