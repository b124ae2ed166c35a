// SPDX-License-Identifier: MIT

package mapping

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/uca/element"
	"github.com/katalvlaran/uca/weight"
)

// New builds the mapping from chars to elems in its canonical shape.
// Both slices are copied. An empty chars or elems fails with ErrInvalidArity;
// a character that is not a Unicode scalar value fails with ErrInvalidRune.
//
// Complexity: O(len(chars) + len(elems))
func New(chars []rune, elems []element.Element) (Mapping, error) {
	return Canonicalize(ManyToMany{
		Runes: slices.Clone(chars),
		CEs:   slices.Clone(elems),
	})
}

// Canonicalize returns m in the most specific shape its arities permit:
//
//	(1, 1)  → Simple
//	(1, >1) → Expansion
//	(>1, 1) → ManyToOne
//	(>1,>1) → ManyToMany
//
// It is idempotent. A nil mapping, or one with zero characters or zero
// elements, fails with ErrInvalidArity. Surrogates and runes outside
// [0, 0x10FFFF] fail with ErrInvalidRune.
func Canonicalize(m Mapping) (Mapping, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil mapping", ErrInvalidArity)
	}
	switch v := m.(type) {
	case Simple:
		return shape([]rune{v.Rune}, []element.Element{v.CE})
	case Expansion:
		return shape([]rune{v.Rune}, v.CEs)
	case ManyToOne:
		return shape(v.Runes, []element.Element{v.CE})
	case ManyToMany:
		return shape(v.Runes, v.CEs)
	default:
		return nil, fmt.Errorf("%w: unknown mapping %T", ErrInvalidArity, m)
	}
}

// shape selects the variant matching len(runes) and len(ces).
// The slices are shared with the result, not copied.
func shape(runes []rune, ces []element.Element) (Mapping, error) {
	nr, ne := len(runes), len(ces)
	if nr == 0 || ne == 0 {
		return nil, fmt.Errorf("%w: %d characters, %d elements", ErrInvalidArity, nr, ne)
	}
	for i, r := range runes {
		if !utf8.ValidRune(r) {
			return nil, fmt.Errorf("%w: character %d is %U", ErrInvalidRune, i+1, r)
		}
	}
	switch {
	case nr == 1 && ne == 1:
		return Simple{Rune: runes[0], CE: ces[0]}, nil
	case nr == 1:
		return Expansion{Rune: runes[0], CEs: ces}, nil
	case ne == 1:
		return ManyToOne{Runes: runes, CE: ces[0]}, nil
	default:
		return ManyToMany{Runes: runes, CEs: ces}, nil
	}
}

// IsExpansion reports whether m maps to more than one collation element.
// A nil m is not an expansion.
func IsExpansion(m Mapping) bool {
	if m == nil {
		return false
	}
	s := m.Shape()

	return s == ShapeExpansion || s == ShapeManyToMany
}

// Clone returns a copy of m that shares no slices with it. Elements are
// immutable and copied by value. Clone(nil) is nil.
func Clone(m Mapping) Mapping {
	switch v := m.(type) {
	case Simple:
		return v
	case Expansion:
		return Expansion{Rune: v.Rune, CEs: slices.Clone(v.CEs)}
	case ManyToOne:
		return ManyToOne{Runes: slices.Clone(v.Runes), CE: v.CE}
	case ManyToMany:
		return ManyToMany{Runes: slices.Clone(v.Runes), CEs: slices.Clone(v.CEs)}
	default:
		return nil
	}
}

// minWeightAtLevel returns the least level-n weight among ces.
func minWeightAtLevel(ces []element.Element, n int) (weight.Weight, error) {
	var lo weight.Weight
	for i, ce := range ces {
		w, err := ce.WeightAtLevel(n)
		if err != nil {
			return 0, fmt.Errorf("mapping: element %d %s: %w", i+1, ce, err)
		}
		if i == 0 || w < lo {
			lo = w
		}
	}

	return lo, nil
}

// format renders runes as space-separated code points followed by the
// concatenated element notations.
func format(runes []rune, ces []element.Element) string {
	var sb strings.Builder
	for i, r := range runes {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%04X", r)
	}
	sb.WriteString(" ; ")
	for _, ce := range ces {
		sb.WriteString(ce.String())
	}

	return sb.String()
}

// --- Simple ------------------------------------------------------------------

func (Simple) mapping() {}
func (Simple) Shape() Shape { return ShapeSimple }
func (Simple) IsContraction() bool { return false }
func (m Simple) Characters() []rune { return []rune{m.Rune} }
func (m Simple) Elements() []element.Element { return []element.Element{m.CE} }
func (m Simple) String() string { return format([]rune{m.Rune}, []element.Element{m.CE}) }
func (m Simple) WeightAtLevel(n int) (weight.Weight, error) {
	return m.CE.WeightAtLevel(n)
}

// --- Expansion ---------------------------------------------------------------

func (Expansion) mapping() {}
func (Expansion) Shape() Shape { return ShapeExpansion }
func (Expansion) IsContraction() bool { return false }
func (m Expansion) Characters() []rune { return []rune{m.Rune} }
func (m Expansion) Elements() []element.Element { return slices.Clone(m.CEs) }
func (m Expansion) String() string { return format([]rune{m.Rune}, m.CEs) }
func (m Expansion) WeightAtLevel(n int) (weight.Weight, error) {
	return minWeightAtLevel(m.CEs, n)
}

// --- ManyToOne ---------------------------------------------------------------

func (ManyToOne) mapping() {}
func (ManyToOne) Shape() Shape { return ShapeManyToOne }
func (ManyToOne) IsContraction() bool { return true }
func (m ManyToOne) Characters() []rune { return slices.Clone(m.Runes) }
func (m ManyToOne) Elements() []element.Element { return []element.Element{m.CE} }
func (m ManyToOne) String() string { return format(m.Runes, []element.Element{m.CE}) }
func (m ManyToOne) WeightAtLevel(n int) (weight.Weight, error) {
	return m.CE.WeightAtLevel(n)
}

// --- ManyToMany --------------------------------------------------------------

func (ManyToMany) mapping() {}
func (ManyToMany) Shape() Shape { return ShapeManyToMany }
func (ManyToMany) IsContraction() bool { return true }
func (m ManyToMany) Characters() []rune { return slices.Clone(m.Runes) }
func (m ManyToMany) Elements() []element.Element { return slices.Clone(m.CEs) }
func (m ManyToMany) String() string { return format(m.Runes, m.CEs) }
func (m ManyToMany) WeightAtLevel(n int) (weight.Weight, error) {
	return minWeightAtLevel(m.CEs, n)
}
