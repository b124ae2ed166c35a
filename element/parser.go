// SPDX-License-Identifier: MIT

package element

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Parser memoises FromNotation. Only successful parses are cached, so a
// malformed input is re-validated (and re-reported) on every call.
// A Parser is safe for concurrent use.
type Parser struct {
	cache *lru.Cache[string, Element]
}

// NewParser returns a Parser remembering up to size distinct notations.
// A size below 1 is rejected by the cache and returned as an error.
func NewParser(size int) (*Parser, error) {
	cache, err := lru.New[string, Element](size)
	if err != nil {
		return nil, fmt.Errorf("element: parser cache: %w", err)
	}

	return &Parser{cache: cache}, nil
}

// Parse returns FromNotation(s), serving repeated inputs from the cache.
// Cached elements are shared; Element is immutable so sharing is safe.
func (p *Parser) Parse(s string) (Element, error) {
	if e, ok := p.cache.Get(s); ok {
		return e, nil
	}
	e, err := FromNotation(s)
	if err != nil {
		return Element{}, err
	}
	p.cache.Add(s, e)

	return e, nil
}

// Len returns the number of cached notations.
func (p *Parser) Len() int {
	return p.cache.Len()
}
