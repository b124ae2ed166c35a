// SPDX-License-Identifier: MIT

package element_test

import (
	"testing"

	"github.com/katalvlaran/uca/element"
)

// BenchmarkFromNotation measures raw notation parsing.
func BenchmarkFromNotation(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := element.FromNotation("[.06D9.0020.0002.FFFF]"); err != nil {
			b.Fatalf("FromNotation failed: %v", err)
		}
	}
}

// BenchmarkParser_Hit measures a cache hit on the memoising parser.
func BenchmarkParser_Hit(b *testing.B) {
	p, err := element.NewParser(16)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := p.Parse("[.06D9.0020.0002.FFFF]"); err != nil {
			b.Fatalf("Parse failed: %v", err)
		}
	}
}
