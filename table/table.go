// SPDX-License-Identifier: MIT

package table

import (
	"github.com/katalvlaran/uca/mapping"
)

// Build returns a Table holding canonical copies of ms in input order.
// Duplicates are kept. Nil entries, hand-built mappings with no characters
// or no elements, and mappings over invalid runes are skipped.
//
// Complexity: O(Σ characters + Σ elements) plus normalisation of the keys.
func Build(ms []mapping.Mapping, opts ...Option) *Table {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t := &Table{
		mappings: make([]mapping.Mapping, 0, len(ms)),
		index:    make(map[string]int, len(ms)),
		opts:     o,
	}
	for _, m := range ms {
		if m == nil {
			continue
		}
		// New copies both sides, detaching the table from caller slices.
		c, err := mapping.New(m.Characters(), m.Elements())
		if err != nil {
			continue
		}
		key := o.Form.String(string(c.Characters()))
		if _, dup := t.index[key]; !dup {
			t.index[key] = len(t.mappings)
		}
		t.mappings = append(t.mappings, c)
	}

	return t
}

// Len returns the number of mappings in t.
func (t *Table) Len() int {
	return len(t.mappings)
}

// Mappings returns copies of the mappings of t in table order. Changing
// them does not affect t.
func (t *Table) Mappings() []mapping.Mapping {
	out := make([]mapping.Mapping, len(t.mappings))
	for i, m := range t.mappings {
		out[i] = mapping.Clone(m)
	}

	return out
}

// Lookup returns the first mapping, in table order, whose characters equal
// s once both are normalised with the table's form.
//
// Complexity: O(len(s)) amortised.
func (t *Table) Lookup(s string) (mapping.Mapping, bool) {
	i, ok := t.index[t.opts.Form.String(s)]
	if !ok {
		return nil, false
	}

	return mapping.Clone(t.mappings[i]), true
}

// Contractions returns copies of every contraction mapping of t in table
// order.
func (t *Table) Contractions() []mapping.Mapping {
	var out []mapping.Mapping
	for _, m := range t.mappings {
		if m.IsContraction() {
			out = append(out, mapping.Clone(m))
		}
	}

	return out
}
