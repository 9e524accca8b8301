package sim

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/plume/components"
)

// Neighbor holds a nearby particle with precomputed spatial data.
// This avoids recomputing deltas and distances in the SPH passes.
type Neighbor struct {
	E      ecs.Entity
	DX, DY float32 // Delta from query origin to the neighbor
	DistSq float32 // Squared distance (avoid sqrt in hot path)
}

// Grid buckets particles into uniform cells for O(1)-amortized radius
// queries. It is cleared and repopulated every frame and holds non-owning
// entity references only.
//
// Queries scan the 3x3 cell block around the query point, which is correct
// only while the cell size is at least the query radius. The caller keeps
// the cell size pinned to the SPH smoothing radius to preserve this.
type Grid struct {
	cellSize float32
	cols     int
	rows     int
	width    float32
	height   float32
	cells    [][]ecs.Entity
}

// NewGrid creates a spatial grid covering the given world size.
func NewGrid(width, height, cellSize float32) *Grid {
	g := &Grid{width: width, height: height}
	g.rebuild(cellSize)
	return g
}

func (g *Grid) rebuild(cellSize float32) {
	g.cellSize = cellSize
	g.cols = int(g.width/cellSize) + 1
	g.rows = int(g.height/cellSize) + 1

	cells := make([][]ecs.Entity, g.cols*g.rows)
	for i := range cells {
		cells[i] = make([]ecs.Entity, 0, 8) // pre-allocate small capacity
	}
	g.cells = cells
}

// CellSize returns the current cell size.
func (g *Grid) CellSize() float32 {
	return g.cellSize
}

// Resize rebuilds the grid with a new cell size, discarding contents.
func (g *Grid) Resize(cellSize float32) {
	g.rebuild(cellSize)
}

// Clear removes all particles from the grid.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds a particle at the given position. Positions outside the grid
// bounds are silently dropped; boundary particles simply have no neighbors.
func (g *Grid) Insert(e ecs.Entity, x, y float32) {
	col := int(x / g.cellSize)
	row := int(y / g.cellSize)
	if x < 0 || y < 0 || col >= g.cols || row >= g.rows {
		return
	}
	idx := row*g.cols + col
	g.cells[idx] = append(g.cells[idx], e)
}

// QueryInto finds particles within radius of (x, y) and appends them to dst.
// Returns the updated slice. Reuse dst across calls to avoid allocations.
// The query point itself, if inserted, is included with DistSq 0.
func (g *Grid) QueryInto(dst []Neighbor, x, y, radius float32, posMap *ecs.Map1[components.Position]) []Neighbor {
	centerCol := int(x / g.cellSize)
	centerRow := int(y / g.cellSize)
	if x < 0 {
		centerCol = -1
	}
	if y < 0 {
		centerRow = -1
	}

	radiusSq := radius * radius

	for dr := -1; dr <= 1; dr++ {
		row := centerRow + dr
		if row < 0 || row >= g.rows {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			col := centerCol + dc
			if col < 0 || col >= g.cols {
				continue
			}

			for _, e := range g.cells[row*g.cols+col] {
				pos := posMap.Get(e)
				if pos == nil {
					continue
				}

				dx := pos.X - x
				dy := pos.Y - y
				distSq := dx*dx + dy*dy

				if distSq <= radiusSq {
					dst = append(dst, Neighbor{E: e, DX: dx, DY: dy, DistSq: distSq})
				}
			}
		}
	}

	return dst
}
