// Profiling:
// go build ./demos/stress
// ./stress        (CPU profile)
// ./stress mem    (allocation profile)
// go tool pprof -http=":8000" ./stress cpu.pprof

// stress runs a headless spatialgrid world with thousands of moving circles
// and constant spawn/despawn churn, then prints per-frame averages. No window
// is opened.
package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/pkg/profile"

	"github.com/phanxgames/spatialgrid"
)

const (
	worldW   = 4096
	worldH   = 4096
	columns  = 64
	rows     = 64
	count    = 20_000
	frames   = 600
	churn    = 200 // entities replaced per frame
	groupCnt = 4
)

type totals struct {
	pairs, tests, hits, removed int
	elapsed                     time.Duration
}

func main() {
	mode := profile.CPUProfile
	if len(os.Args) > 1 && os.Args[1] == "mem" {
		mode = profile.MemProfileAllocs
	}
	p := profile.Start(mode, profile.ProfilePath("."), profile.NoShutdownHook)
	t := run(count, frames)
	p.Stop()

	fmt.Printf("entities: %d  frames: %d\n", count, frames)
	fmt.Printf("avg frame: %v\n", t.elapsed/frames)
	fmt.Printf("avg pairs: %d  tests: %d  hits: %d  removed: %d\n",
		t.pairs/frames, t.tests/frames, t.hits/frames, t.removed/frames)
}

func spawn(w *spatialgrid.World, rng *rand.Rand, gid spatialgrid.GroupID) {
	pos := spatialgrid.Vec2{X: rng.Float64() * worldW, Y: rng.Float64() * worldH}
	var shape spatialgrid.Shape
	switch gid % 3 {
	case 0:
		shape = spatialgrid.MakeCircle(4 + rng.Float64()*8)
	case 1:
		shape = spatialgrid.MakeRectangle(spatialgrid.Vec2{X: -6, Y: -6}, spatialgrid.Vec2{X: 6, Y: 6})
	default:
		shape = spatialgrid.MakeLine(spatialgrid.Vec2{}, spatialgrid.Vec2{X: rng.Float64()*24 - 12, Y: rng.Float64()*24 - 12})
	}
	e := w.Entity(w.AddEntity(gid, pos, shape))
	e.VX = (rng.Float64() - 0.5) * 120
	e.VY = (rng.Float64() - 0.5) * 120
	e.OnUpdate = wrap
}

// wrap keeps entities inside the world by wrapping around the edges.
func wrap(e *spatialgrid.Entity, _ float64) {
	if e.X < 0 {
		e.X += worldW
	} else if e.X >= worldW {
		e.X -= worldW
	}
	if e.Y < 0 {
		e.Y += worldH
	} else if e.Y >= worldH {
		e.Y -= worldH
	}
}

func run(n, frames int) totals {
	rng := rand.New(rand.NewPCG(1, 2))
	w := spatialgrid.NewWorld()
	w.SetWorldSize(worldW, worldH, columns, rows, n)

	for i := 0; i < n; i++ {
		spawn(w, rng, spatialgrid.GroupID(i%groupCnt))
	}
	for a := spatialgrid.GroupID(0); a < groupCnt; a++ {
		for b := a + 1; b < groupCnt; b++ {
			w.RegisterHandler(a, b, nil, func(ctx spatialgrid.CollisionContext) {
				ctx.A.VX, ctx.B.VX = ctx.B.VX, ctx.A.VX
				ctx.A.VY, ctx.B.VY = ctx.B.VY, ctx.A.VY
			})
		}
	}

	var t totals
	start := time.Now()
	for f := 0; f < frames; f++ {
		ents := w.Entities()
		for i := 0; i < churn; i++ {
			ents[rng.IntN(len(ents))].RequestRemove()
		}
		for i := 0; i < churn; i++ {
			spawn(w, rng, spatialgrid.GroupID(rng.IntN(groupCnt)))
		}

		w.Update(1.0 / 60)
		s := w.Stats()
		t.pairs += s.CandidatePairs
		t.tests += s.NarrowPhaseTests
		t.hits += s.Collisions
		t.removed += s.Removed
	}
	t.elapsed = time.Since(start)
	return t
}
