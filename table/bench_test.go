// SPDX-License-Identifier: MIT

package table_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/uca/mapping"
	"github.com/katalvlaran/uca/table"
)

// benchmarkBounds is a helper that runs Bounds(1) on a table of size mappings
// built with opts. It resets the timer after construction.
func benchmarkBounds(b *testing.B, size int, opts ...table.Option) {
	ms := make([]mapping.Mapping, 0, size)
	for i := 0; i < size; i++ {
		ms = append(ms, mustMapping(b, string(rune(0x4E00+i%20000)),
			fmt.Sprintf("[.%04X.0020.0002]", i%0xFFFF+1),
			fmt.Sprintf("[.%04X.0020.0002]", (i*31)%0xFFFF+1)))
	}
	t := table.Build(ms, opts...)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, _, err := t.Bounds(1); err != nil {
			b.Fatalf("Bounds failed: %v", err)
		}
	}
}

// BenchmarkBounds_Sequential reduces 30k mappings on one goroutine.
func BenchmarkBounds_Sequential(b *testing.B) {
	benchmarkBounds(b, 30000)
}

// BenchmarkBounds_Parallel reduces 30k mappings on four goroutines.
func BenchmarkBounds_Parallel(b *testing.B) {
	benchmarkBounds(b, 30000, table.WithWorkers(4))
}
