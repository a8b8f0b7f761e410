package spatialgrid

import (
	"math/rand/v2"
	"testing"
)

// setupBenchWorld creates a 1600x1200 world with n circles spread uniformly
// over it, alternating between two groups that have a no-op handler.
func setupBenchWorld(n int, withHandler bool) *World {
	w := NewWorld()
	w.SetWorldSize(1600, 1200, 32, 24, n)
	rng := rand.New(rand.NewPCG(42, 42))
	for i := 0; i < n; i++ {
		h := w.AddEntity(GroupID(i%2), Vec2{rng.Float64() * 1600, rng.Float64() * 1200}, MakeCircle(8))
		e := w.Entity(h)
		e.VX = (rng.Float64() - 0.5) * 60
		e.VY = (rng.Float64() - 0.5) * 60
	}
	if withHandler {
		w.RegisterHandler(0, 1, nil, func(CollisionContext) {})
	}
	return w
}

// --- Update Benchmarks ---

func BenchmarkUpdate_1000Entities(b *testing.B) {
	w := setupBenchWorld(1000, true)
	w.Update(1.0 / 60) // warmup: sizes the grid cells and the pair set

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w.Update(1.0 / 60)
	}
}

func BenchmarkUpdate_10000Entities(b *testing.B) {
	w := setupBenchWorld(10000, true)
	w.Update(1.0 / 60)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w.Update(1.0 / 60)
	}
}

func BenchmarkUpdate_10000Entities_NoHandler(b *testing.B) {
	w := setupBenchWorld(10000, false)
	w.Update(1.0 / 60)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w.Update(1.0 / 60)
	}
}

func BenchmarkUpdate_Churn(b *testing.B) {
	w := setupBenchWorld(2000, true)
	w.Update(1.0 / 60)
	rng := rand.New(rand.NewPCG(1, 1))

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		// Replace a slice of the population every frame.
		ents := w.Entities()
		for j := 0; j < 50; j++ {
			ents[rng.IntN(len(ents))].RequestRemove()
		}
		for j := 0; j < 50; j++ {
			w.AddEntity(GroupID(j%2), Vec2{rng.Float64() * 1600, rng.Float64() * 1200}, MakeCircle(8))
		}
		w.Update(1.0 / 60)
	}
}

// --- Narrow Phase Benchmarks ---

func BenchmarkIsCollision_CircleCircle(b *testing.B) {
	var a, c Shape = MakeCircle(10), MakeCircle(10)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		IsCollision(a, Vec2{0, 0}, c, Vec2{15, 0})
	}
}

func BenchmarkIsCollision_LineRect(b *testing.B) {
	var l Shape = MakeLine(Vec2{0, 0}, Vec2{100, 100})
	var r Shape = MakeRectangle(Vec2{-10, -10}, Vec2{10, 10})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		IsCollision(l, Vec2{0, 0}, r, Vec2{50, 50})
	}
}
