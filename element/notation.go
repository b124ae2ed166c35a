// SPDX-License-Identifier: MIT

package element

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/uca/weight"
)

const (
	notationOpen  = "[."
	notationClose = "]"
	notationSep   = "."
)

// FromNotation parses bracketed, dot-separated hexadecimal weights such as
// "[.06D9.0020.0002]". Leading and trailing spaces are ignored.
//
// Errors:
//   - ErrMalformedNotation      if the "[." / "]" wrapper is missing or the body is empty.
//   - weight.ErrMalformedWeight if any dot-separated group is not hexadecimal.
func FromNotation(s string) (Element, error) {
	body, ok := strings.CutPrefix(strings.TrimSpace(s), notationOpen)
	if !ok {
		return Element{}, fmt.Errorf("%w: %q lacks %q prefix", ErrMalformedNotation, s, notationOpen)
	}
	body, ok = strings.CutSuffix(body, notationClose)
	if !ok {
		return Element{}, fmt.Errorf("%w: %q lacks %q suffix", ErrMalformedNotation, s, notationClose)
	}
	if body == "" {
		return Element{}, fmt.Errorf("%w: %q has no weights", ErrMalformedNotation, s)
	}

	groups := strings.Split(body, notationSep)
	ws := make([]weight.Weight, len(groups))
	for i, g := range groups {
		w, err := weight.FromHex(g)
		if err != nil {
			return Element{}, fmt.Errorf("element: level %d of %q: %w", i+1, s, err)
		}
		ws[i] = w
	}

	return Element{weights: ws}, nil
}

// MustFromNotation is like FromNotation but panics on error.
// It is meant for fixtures and package-level variables.
func MustFromNotation(s string) Element {
	e, err := FromNotation(s)
	if err != nil {
		panic(err)
	}

	return e
}

// String renders e in collation element notation, e.g. "[.06D9.0020.0002]".
// The empty element renders as "[]".
func (e Element) String() string {
	if len(e.weights) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for _, w := range e.weights {
		sb.WriteString(notationSep)
		sb.WriteString(w.String())
	}
	sb.WriteString(notationClose)

	return sb.String()
}
