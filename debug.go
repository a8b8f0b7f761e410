package spatialgrid

import (
	"fmt"
	"os"
	"time"
)

// Stats holds per-Update counters. Timings are only populated when debug mode
// is enabled.
type Stats struct {
	Entities         int // active entities when the grid was built
	OccupiedCells    int // cells holding at least one entity
	CellEntries      int // entity-to-cell insertions (an entity spanning 4 cells counts 4)
	CandidatePairs   int // distinct pairs found sharing a cell
	NarrowPhaseTests int // pairs with a handler that went through IsCollision
	Collisions       int // handler invocations
	Removed          int // entities reclaimed by the removal pass

	PopulateTime time.Duration
	QueryTime    time.Duration
	RemoveTime   time.Duration
	UpdateTime   time.Duration
}

// SetDebugMode enables or disables debug mode. When enabled, per-update timing
// stats are logged to stderr, along with warnings for arena growth past the
// reserved capacity and for crowded grid cells.
func (w *World) SetDebugMode(enabled bool) {
	w.debug = enabled
}

// DebugMode reports whether debug mode is enabled.
func (w *World) DebugMode() bool {
	return w.debug
}

// debugLog prints timing and pair stats to stderr.
func (w *World) debugLog(stats Stats) {
	if !w.debug {
		return
	}
	total := stats.PopulateTime + stats.QueryTime + stats.RemoveTime + stats.UpdateTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[spatialgrid] populate: %v | query: %v | remove: %v | update: %v | total: %v\n",
		stats.PopulateTime, stats.QueryTime, stats.RemoveTime, stats.UpdateTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[spatialgrid] entities: %d | cells: %d | pairs: %d | tests: %d | collisions: %d | removed: %d\n",
		stats.Entities, stats.OccupiedCells, stats.CandidatePairs,
		stats.NarrowPhaseTests, stats.Collisions, stats.Removed)
}

// debugWarnGrowth warns on stderr when the arena grows past the capacity
// passed to SetWorldSize.
func debugWarnGrowth(slots, reserve int) {
	_, _ = fmt.Fprintf(os.Stderr, "[spatialgrid] warning: entity arena grew to %d slots (reserved %d)\n",
		slots+chunkSize, reserve)
}

// debugMaxCellEntries is the occupancy above which a cell is reported as
// crowded. Crowded cells make the per-cell pair walk quadratic.
const debugMaxCellEntries = 64

// debugCheckCrowding warns on stderr for every cell holding more than
// debugMaxCellEntries entities in the grid built this frame.
func (w *World) debugCheckCrowding() {
	for _, idx := range w.grid.occupied {
		if n := len(w.grid.cells[idx]); n > debugMaxCellEntries {
			_, _ = fmt.Fprintf(os.Stderr, "[spatialgrid] warning: cell (%d,%d) holds %d entities (threshold %d)\n",
				idx%w.grid.columns, idx/w.grid.columns, n, debugMaxCellEntries)
		}
	}
}
