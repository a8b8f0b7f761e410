package spatialgrid

import (
	"fmt"
	"iter"
	"time"
)

// EventSink is the interface for optional ECS integration.
// When set on a World, every dispatched collision is forwarded to it after the
// handler returns.
type EventSink interface {
	EmitCollision(event CollisionEvent)
}

// CollisionEvent describes a dispatched collision. A and B follow the same
// order as the handler's CollisionContext.
type CollisionEvent struct {
	A, B           Handle
	GroupA, GroupB GroupID
	PosA, PosB     Vec2
}

// chunkSize is the number of entity slots per arena chunk. Chunks are never
// reallocated, which keeps *Entity addresses stable as the arena grows.
const chunkSize = 256

// World owns the entity arena, the handler table and the per-frame grid.
//
// World is single-threaded: Update runs to completion and handlers run inline.
// It is not safe for concurrent use.
type World struct {
	// Arena
	chunks    []*[chunkSize]Entity
	slotCount int      // slots handed out so far
	reserve   int      // capacity requested by SetWorldSize
	active    []*Entity
	freeList  []uint32 // reclaimed slot indices, reused LIFO

	// Broad phase
	grid       grid
	configured bool
	tested     map[uint64]struct{}

	handlers handlerRegistry
	sink     EventSink
	script   *ScriptRunner

	debug bool
	stats Stats
}

// NewWorld creates an empty world. Call SetWorldSize before Update.
func NewWorld() *World {
	return &World{
		tested: make(map[uint64]struct{}, 1024),
	}
}

// SetWorldSize sets the world extent, the grid dimensions, and pre-reserves
// storage for reserve entities. The world covers [0, width] x [0, height]
// and is divided into columns x rows cells.
//
// SetWorldSize panics if any dimension is not positive.
func (w *World) SetWorldSize(width, height float64, columns, rows, reserve int) {
	if !(width > 0) || !(height > 0) {
		panic(fmt.Sprintf("spatialgrid: invalid world size %vx%v", width, height))
	}
	if columns <= 0 || rows <= 0 {
		panic(fmt.Sprintf("spatialgrid: invalid grid size %dx%d", columns, rows))
	}
	if reserve < 0 {
		reserve = 0
	}
	w.grid.configure(width, height, columns, rows)
	w.configured = true
	w.reserve = reserve

	for len(w.chunks)*chunkSize < reserve {
		w.chunks = append(w.chunks, new([chunkSize]Entity))
	}
	if cap(w.active) < reserve {
		active := make([]*Entity, len(w.active), reserve)
		copy(active, w.active)
		w.active = active
	}
	if cap(w.freeList) < reserve {
		free := make([]uint32, len(w.freeList), reserve)
		copy(free, w.freeList)
		w.freeList = free
	}
}

// WorldSize returns the extent given to SetWorldSize.
func (w *World) WorldSize() (width, height float64) {
	return w.grid.width, w.grid.height
}

// GridSize returns the number of grid columns and rows.
func (w *World) GridSize() (columns, rows int) {
	return w.grid.columns, w.grid.rows
}

// CellRange returns the inclusive range of grid cells that an AABB maps to.
// ok is false when b lies entirely outside the world.
func (w *World) CellRange(b Bounds) (x0, y0, x1, y1 int, ok bool) {
	return w.grid.cellRange(b)
}

// SetEventSink sets the optional ECS bridge. Pass nil to detach.
func (w *World) SetEventSink(sink EventSink) {
	w.sink = sink
}

// slot returns the entity stored at arena index i.
func (w *World) slot(i uint32) *Entity {
	return &w.chunks[i/chunkSize][i%chunkSize]
}

// AddEntity creates an entity in group gid at pos with the given shape and
// returns its handle. A slot reclaimed by RemoveEntity is reused when one is
// available. The entity joins collision tests from the next Update.
func (w *World) AddEntity(gid GroupID, pos Vec2, shape Shape) Handle {
	var idx uint32
	var gen uint32
	if n := len(w.freeList); n > 0 {
		idx = w.freeList[n-1]
		w.freeList = w.freeList[:n-1]
		gen = w.slot(idx).handle.Generation
	} else {
		if w.slotCount == len(w.chunks)*chunkSize {
			w.chunks = append(w.chunks, new([chunkSize]Entity))
			if w.debug && w.slotCount >= w.reserve {
				debugWarnGrowth(w.slotCount, w.reserve)
			}
		}
		idx = uint32(w.slotCount)
		w.slotCount++
		gen = 1
	}

	h := Handle{Index: idx, Generation: gen}
	e := w.slot(idx)
	e.reset(h, gid, pos, shape)
	w.active = append(w.active, e)
	return h
}

// Entity returns the entity referenced by h, or nil if h is stale or was never
// issued by this world.
func (w *World) Entity(h Handle) *Entity {
	if h.Generation == 0 || int(h.Index) >= w.slotCount {
		return nil
	}
	e := w.slot(h.Index)
	if !e.alive || e.handle != h {
		return nil
	}
	return e
}

// IsValid reports whether h still refers to a live entity.
func (w *World) IsValid(h Handle) bool {
	return w.Entity(h) != nil
}

// RemoveEntity reclaims every entity flagged by RequestRemove. Reclaimed slots
// go to the free list with their generation bumped, so outstanding handles
// turn stale. The relative order of the surviving active entities is kept.
func (w *World) RemoveEntity() int {
	removed := 0
	for _, e := range w.active {
		if e.removeRequested {
			w.reclaim(e)
			removed++
		}
	}
	if removed == 0 {
		return 0
	}

	n := 0
	for _, e := range w.active {
		if e.alive {
			w.active[n] = e
			n++
		}
	}
	clear(w.active[n:])
	w.active = w.active[:n]
	return removed
}

func (w *World) reclaim(e *Entity) {
	e.alive = false
	e.OnUpdate = nil
	e.UserData = nil
	e.shape = nil
	e.handle.Generation++
	if e.handle.Generation == 0 {
		e.handle.Generation = 1
	}
	w.freeList = append(w.freeList, e.handle.Index)
}

// Update runs one frame:
//
//  1. advance the attached ScriptRunner, if any;
//  2. rebuild the grid from the active entities;
//  3. test candidate pairs and dispatch handlers;
//  4. reclaim entities flagged for removal;
//  5. call Update(dt) on every remaining entity.
//
// Update panics if SetWorldSize was never called.
func (w *World) Update(dt float64) {
	if !w.configured {
		panic("spatialgrid: Update called before SetWorldSize")
	}

	var stats Stats
	var t0 time.Time

	if w.script != nil {
		w.script.step(w)
	}

	if w.debug {
		t0 = time.Now()
	}

	w.grid.populate(w.active)
	stats.Entities = len(w.active)
	stats.OccupiedCells = len(w.grid.occupied)
	stats.CellEntries = w.grid.entries

	if w.debug {
		stats.PopulateTime = time.Since(t0)
		t0 = time.Now()
	}

	w.queryCollisions(&stats)

	if w.debug {
		stats.QueryTime = time.Since(t0)
		t0 = time.Now()
	}

	stats.Removed = w.RemoveEntity()

	if w.debug {
		stats.RemoveTime = time.Since(t0)
		t0 = time.Now()
	}

	// Entities added by OnUpdate are appended and updated in the same pass.
	for i := 0; i < len(w.active); i++ {
		w.active[i].Update(dt)
	}

	if w.debug {
		stats.UpdateTime = time.Since(t0)
		w.debugCheckCrowding()
	}

	w.stats = stats
	if w.debug {
		w.debugLog(stats)
	}
}

// pairID packs two slot indices into an order-independent key.
func pairID(a, b uint32) uint64 {
	if a > b {
		a, b = b, a
	}
	return uint64(a)<<32 | uint64(b)
}

// queryCollisions walks every cell with at least two occupants and tests each
// unordered pair once per frame. The handler table is consulted before the
// narrow phase, so pairs with no handler cost nothing beyond the lookup.
func (w *World) queryCollisions(stats *Stats) {
	clear(w.tested)
	for _, idx := range w.grid.occupied {
		cell := w.grid.cells[idx]
		if len(cell) < 2 {
			continue
		}
		for i := 0; i < len(cell)-1; i++ {
			l := cell[i]
			if !l.alive {
				continue
			}
			posL := l.Position()
			for j := i + 1; j < len(cell); j++ {
				r := cell[j]
				// l can die here only if a handler called RemoveEntity.
				if !r.alive || !l.alive {
					continue
				}
				id := pairID(l.handle.Index, r.handle.Index)
				if _, seen := w.tested[id]; seen {
					continue
				}
				w.tested[id] = struct{}{}
				stats.CandidatePairs++

				entry, ok := w.handlers.lookup(l.group, r.group)
				if !ok {
					continue
				}
				stats.NarrowPhaseTests++
				if !IsCollision(l.shape, posL, r.shape, r.Position()) {
					continue
				}

				a, b := l, r
				if a.group != b.group && a.group != entry.first {
					a, b = b, a
				}
				entry.fn(CollisionContext{World: w, A: a, B: b, Data: entry.data})
				stats.Collisions++

				if w.sink != nil {
					w.sink.EmitCollision(CollisionEvent{
						A: a.handle, B: b.handle,
						GroupA: a.group, GroupB: b.group,
						PosA: a.Position(), PosB: b.Position(),
					})
				}
			}
		}
	}
}

// Entities returns the active entities in iteration order. The returned slice
// MUST NOT be mutated and is only valid until the next AddEntity, RemoveEntity
// or Update call.
func (w *World) Entities() []*Entity {
	return w.active
}

// All returns an iterator over the active entities.
func (w *World) All() iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		for _, e := range w.active {
			if !yield(e) {
				return
			}
		}
	}
}

// Len returns the number of active entities.
func (w *World) Len() int {
	return len(w.active)
}

// Stats returns the counters gathered by the most recent Update. Timings are
// only recorded in debug mode.
func (w *World) Stats() Stats {
	return w.stats
}
