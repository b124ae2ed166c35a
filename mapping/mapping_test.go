// SPDX-License-Identifier: MIT
// Package mapping_test contains unit tests for mapping construction,
// canonicalisation and representative weights.
package mapping_test

import (
	"testing"

	"github.com/katalvlaran/uca/element"
	"github.com/katalvlaran/uca/mapping"
	"github.com/katalvlaran/uca/weight"
	"github.com/stretchr/testify/require"
)

var (
	ceA     = element.MustFromNotation("[.1C47.0020.0002]")
	ceB     = element.MustFromNotation("[.1C60.0020.0002]")
	ceAcute = element.MustFromNotation("[.0000.0024.0002]")
)

// ------------------------------------------------------------------------
// 1. New and shape selection.
// ------------------------------------------------------------------------

func TestNew_Simple(t *testing.T) {
	m, err := mapping.New([]rune{'a'}, []element.Element{element.MustFromNotation("[.1C47.0020.0002]")})
	require.NoError(t, err)
	require.False(t, m.IsContraction())
	require.Equal(t, mapping.ShapeSimple, m.Shape())
	require.Equal(t, mapping.Simple{Rune: 'a', CE: element.MustFromNotation("[.1C47.0020.002]")}, m)
}

func TestNew_AllShapes(t *testing.T) {
	cases := []struct {
		chars       []rune
		elems       []element.Element
		shape       mapping.Shape
		contraction bool
		expansion   bool
	}{
		{[]rune{'a'}, []element.Element{ceA}, mapping.ShapeSimple, false, false},
		{[]rune{'\u00e1'}, []element.Element{ceA, ceAcute}, mapping.ShapeExpansion, false, true},
		{[]rune{'c', 'h'}, []element.Element{ceB}, mapping.ShapeManyToOne, true, false},
		{[]rune{'a', '\u0301'}, []element.Element{ceA, ceAcute}, mapping.ShapeManyToMany, true, true},
	}
	for _, tc := range cases {
		m, err := mapping.New(tc.chars, tc.elems)
		require.NoError(t, err)
		require.Equal(t, tc.shape, m.Shape(), tc.shape.String())
		require.Equal(t, tc.contraction, m.IsContraction(), tc.shape.String())
		require.Equal(t, tc.expansion, mapping.IsExpansion(m), tc.shape.String())
		require.Equal(t, tc.chars, m.Characters())
		require.Equal(t, tc.elems, m.Elements())
	}
}

func TestNew_InvalidArity(t *testing.T) {
	_, err := mapping.New(nil, []element.Element{ceA})
	require.ErrorIs(t, err, mapping.ErrInvalidArity)
	_, err = mapping.New([]rune{'a'}, nil)
	require.ErrorIs(t, err, mapping.ErrInvalidArity)
	_, err = mapping.New([]rune{}, []element.Element{})
	require.ErrorIs(t, err, mapping.ErrInvalidArity)
}

func TestNew_InvalidRune(t *testing.T) {
	for _, r := range []rune{0xD800, 0xDFFF, -1, 0x110000} {
		_, err := mapping.New([]rune{'a', r}, []element.Element{ceA})
		require.ErrorIs(t, err, mapping.ErrInvalidRune, "%U", r)
		_, err = mapping.Canonicalize(mapping.Simple{Rune: r, CE: ceA})
		require.ErrorIs(t, err, mapping.ErrInvalidRune, "%U", r)
		_, err = mapping.Canonicalize(mapping.Expansion{Rune: r, CEs: []element.Element{ceA, ceB}})
		require.ErrorIs(t, err, mapping.ErrInvalidRune, "%U", r)
	}

	// U+FFFD itself is a valid character.
	_, err := mapping.New([]rune{0xFFFD}, []element.Element{ceA})
	require.NoError(t, err)
}

func TestNew_CopiesInput(t *testing.T) {
	chars := []rune{'c', 'h'}
	elems := []element.Element{ceA, ceB}
	m, err := mapping.New(chars, elems)
	require.NoError(t, err)
	chars[0] = 'x'
	elems[0] = ceAcute
	require.Equal(t, []rune{'c', 'h'}, m.Characters())
	require.Equal(t, []element.Element{ceA, ceB}, m.Elements())

	out := m.Characters()
	out[1] = 'y'
	require.Equal(t, []rune{'c', 'h'}, m.Characters())
}

// ------------------------------------------------------------------------
// 2. Canonicalize.
// ------------------------------------------------------------------------

func TestCanonicalize_Idempotent(t *testing.T) {
	inputs := []mapping.Mapping{
		mapping.Simple{Rune: 'a', CE: ceA},
		mapping.Expansion{Rune: '\u00e1', CEs: []element.Element{ceA, ceAcute}},
		mapping.ManyToOne{Runes: []rune("ch"), CE: ceB},
		mapping.ManyToMany{Runes: []rune("ch"), CEs: []element.Element{ceA, ceB}},
	}
	for _, in := range inputs {
		once, err := mapping.Canonicalize(in)
		require.NoError(t, err)
		require.Equal(t, in, once)
		twice, err := mapping.Canonicalize(once)
		require.NoError(t, err)
		require.Equal(t, once, twice)
	}
}

func TestCanonicalize_CollapsesMisassignedShapes(t *testing.T) {
	cases := []struct {
		in   mapping.Mapping
		want mapping.Mapping
	}{
		{mapping.Expansion{Rune: 'a', CEs: []element.Element{ceA}}, mapping.Simple{Rune: 'a', CE: ceA}},
		{mapping.ManyToOne{Runes: []rune{'a'}, CE: ceA}, mapping.Simple{Rune: 'a', CE: ceA}},
		{mapping.ManyToMany{Runes: []rune{'a'}, CEs: []element.Element{ceA}}, mapping.Simple{Rune: 'a', CE: ceA}},
		{
			mapping.ManyToMany{Runes: []rune{'a'}, CEs: []element.Element{ceA, ceB}},
			mapping.Expansion{Rune: 'a', CEs: []element.Element{ceA, ceB}},
		},
		{
			mapping.ManyToMany{Runes: []rune("ch"), CEs: []element.Element{ceB}},
			mapping.ManyToOne{Runes: []rune("ch"), CE: ceB},
		},
	}
	for _, tc := range cases {
		got, err := mapping.Canonicalize(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}
}

func TestCanonicalize_Invalid(t *testing.T) {
	_, err := mapping.Canonicalize(nil)
	require.ErrorIs(t, err, mapping.ErrInvalidArity)
	_, err = mapping.Canonicalize(mapping.Expansion{Rune: 'a'})
	require.ErrorIs(t, err, mapping.ErrInvalidArity)
	_, err = mapping.Canonicalize(mapping.ManyToMany{CEs: []element.Element{ceA}})
	require.ErrorIs(t, err, mapping.ErrInvalidArity)
}

func TestIsExpansion_Nil(t *testing.T) {
	require.False(t, mapping.IsExpansion(nil))
}

func TestClone_SharesNothing(t *testing.T) {
	orig := mapping.ManyToMany{Runes: []rune("ch"), CEs: []element.Element{ceA, ceB}}
	c := mapping.Clone(orig).(mapping.ManyToMany)
	require.Equal(t, orig, c)
	c.Runes[0] = 'x'
	c.CEs[0] = ceAcute
	require.Equal(t, []rune("ch"), orig.Runes)
	require.Equal(t, ceA, orig.CEs[0])

	e := mapping.Clone(mapping.Expansion{Rune: 'x', CEs: []element.Element{ceA, ceB}}).(mapping.Expansion)
	require.Len(t, e.CEs, 2)
	require.Nil(t, mapping.Clone(nil))
}

// ------------------------------------------------------------------------
// 3. Representative weights and rendering.
// ------------------------------------------------------------------------

func TestWeightAtLevel_MinimumOverSequence(t *testing.T) {
	hi := element.MustFromNotation("[.0005.0010.0002]")
	lo := element.MustFromNotation("[.0003.0020.0001]")
	for _, chars := range [][]rune{{'x'}, []rune("xy")} {
		m, err := mapping.New(chars, []element.Element{hi, lo})
		require.NoError(t, err)
		require.True(t, mapping.IsExpansion(m))

		want := []weight.Weight{0x3, 0x10, 0x1}
		for n := 1; n <= 3; n++ {
			got, err := m.WeightAtLevel(n)
			require.NoError(t, err)
			require.Equal(t, want[n-1], got, "level %d", n)
		}
	}
}

func TestWeightAtLevel_SingleElement(t *testing.T) {
	for _, chars := range [][]rune{{'a'}, []rune("ab")} {
		m, err := mapping.New(chars, []element.Element{ceA})
		require.NoError(t, err)
		w, err := m.WeightAtLevel(1)
		require.NoError(t, err)
		require.Equal(t, weight.Weight(0x1C47), w)
		_, err = m.WeightAtLevel(4)
		require.ErrorIs(t, err, element.ErrLevelOutOfRange)
	}
}

func TestWeightAtLevel_ShortElementInSequence(t *testing.T) {
	m, err := mapping.New([]rune{'x'}, []element.Element{ceA, element.MustFromNotation("[.0001]")})
	require.NoError(t, err)
	w, err := m.WeightAtLevel(1)
	require.NoError(t, err)
	require.Equal(t, weight.Weight(1), w)
	_, err = m.WeightAtLevel(2)
	require.ErrorIs(t, err, element.ErrLevelOutOfRange)
}

func TestString(t *testing.T) {
	m, err := mapping.New([]rune{'a', '\u0301'}, []element.Element{ceA, ceAcute})
	require.NoError(t, err)
	require.Equal(t, "0061 0301 ; [.1C47.0020.0002][.0000.0024.0002]", m.String())

	s, err := mapping.New([]rune{'a'}, []element.Element{ceA})
	require.NoError(t, err)
	require.Equal(t, "0061 ; [.1C47.0020.0002]", s.String())
}

func TestShape_String(t *testing.T) {
	require.Equal(t, "simple", mapping.ShapeSimple.String())
	require.Equal(t, "expansion", mapping.ShapeExpansion.String())
	require.Equal(t, "many-to-one", mapping.ShapeManyToOne.String())
	require.Equal(t, "many-to-many", mapping.ShapeManyToMany.String())
	require.Equal(t, "unknown", mapping.Shape(9).String())
}
