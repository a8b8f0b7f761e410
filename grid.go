package spatialgrid

import (
	"math"
	"slices"
)

// grid buckets entities into uniform cells for one Update. The cell slices
// and the occupied index list are reused across frames.
type grid struct {
	width, height float64
	columns, rows int
	// scaleX and scaleY map world coordinates to cell coordinates
	// (columns/width and rows/height).
	scaleX, scaleY float64

	cells    [][]*Entity
	occupied []int // cells with at least one entry, ascending after finish
	entries  int
}

func (g *grid) configure(width, height float64, columns, rows int) {
	g.width = width
	g.height = height
	g.columns = columns
	g.rows = rows
	g.scaleX = float64(columns) / width
	g.scaleY = float64(rows) / height
	g.cells = make([][]*Entity, columns*rows)
	g.occupied = g.occupied[:0]
	g.entries = 0
}

// reset empties every occupied cell without releasing its backing array.
func (g *grid) reset() {
	for _, idx := range g.occupied {
		cell := g.cells[idx]
		clear(cell)
		g.cells[idx] = cell[:0]
	}
	g.occupied = g.occupied[:0]
	g.entries = 0
}

// cellRange returns the inclusive cell rectangle covered by b. ok is false
// when b lies entirely outside the world.
func (g *grid) cellRange(b Bounds) (x0, y0, x1, y1 int, ok bool) {
	if b.Right < 0 || b.Bottom < 0 || b.Left > g.width || b.Top > g.height {
		return 0, 0, 0, 0, false
	}
	x0 = clampCell(b.Left*g.scaleX, g.columns)
	y0 = clampCell(b.Top*g.scaleY, g.rows)
	x1 = clampCell(b.Right*g.scaleX, g.columns)
	y1 = clampCell(b.Bottom*g.scaleY, g.rows)
	return x0, y0, x1, y1, true
}

// clampCell floors v into [0, count-1].
func clampCell(v float64, count int) int {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	// Compare as float: int(v) is undefined once v leaves the int range.
	if v >= float64(count) {
		return count - 1
	}
	return int(v)
}

// insert adds e to every cell its AABB overlaps and returns the number of
// cells touched.
func (g *grid) insert(e *Entity) int {
	x0, y0, x1, y1, ok := g.cellRange(e.Bounds())
	if !ok {
		return 0
	}
	for y := y0; y <= y1; y++ {
		row := y * g.columns
		for x := x0; x <= x1; x++ {
			idx := row + x
			if len(g.cells[idx]) == 0 {
				g.occupied = append(g.occupied, idx)
			}
			g.cells[idx] = append(g.cells[idx], e)
		}
	}
	n := (x1 - x0 + 1) * (y1 - y0 + 1)
	g.entries += n
	return n
}

// finish orders the occupied list so cells are walked by ascending index.
func (g *grid) finish() {
	slices.Sort(g.occupied)
}

// populate rebuilds the grid from the active list. Entities without a shape
// or already flagged for removal are left out.
func (g *grid) populate(active []*Entity) {
	g.reset()
	for _, e := range active {
		if e.shape == nil || e.removeRequested {
			continue
		}
		g.insert(e)
	}
	g.finish()
}
