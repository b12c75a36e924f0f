package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/puzzlegrid/grid"
)

// BenchmarkPointsNeighbors measures full 8-way neighbor scans over every
// point of a 1000×1000 grid. Complexity: O(W×H×8).
func BenchmarkPointsNeighbors(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	g := grid.FromFunc(n, n, func(_, _ int) int { return rng.Intn(10) })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for p := range g.Points() {
			for q := range p.Neighbors() {
				sum += q.Value()
			}
		}
		if sum == 0 {
			b.Fatal("unexpected zero neighbor sum")
		}
	}
}

// BenchmarkColTraversal measures strided column traversal across all
// columns of a 1000×1000 grid.
func BenchmarkColTraversal(b *testing.B) {
	const n = 1000
	g := grid.FromFunc(n, n, func(x, y int) int { return x ^ y })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for c := 0; c < n; c++ {
			it := g.Col(c)
			for v, ok := it.Next(); ok; v, ok = it.Next() {
				sum += v
			}
		}
		if sum == 0 {
			b.Fatal("unexpected zero column sum")
		}
	}
}

// BenchmarkPadded measures border-copy construction of a padded grid.
func BenchmarkPadded(b *testing.B) {
	const n = 500
	g := grid.Filled(n, n, byte('.'))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Padded('#', 2)
	}
}
