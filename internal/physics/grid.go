package physics

import "math"

// grid is a uniform broad-phase grid over the playfield.
// Each body is inserted into every cell its AABB covers; bodies outside
// the bounds are clamped into the border cells so off-screen spawns are
// still tested.
type grid struct {
	cellSize    float64
	invCellSize float64 // 1 / cellSize
	cols        int
	rows        int
	cells       [][]int // body indices per cell, reused between steps
}

func newGrid(width, height, cellSize float64) *grid {
	cols := int(math.Ceil(width / cellSize))
	rows := int(math.Ceil(height / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &grid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([][]int, cols*rows),
	}
}

// clear empties all cells without releasing their memory.
func (g *grid) clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// insert adds a body index to every cell overlapped by box.
func (g *grid) insert(index int, box AABB) {
	c0, r0 := g.cellOf(box.Min)
	c1, r1 := g.cellOf(box.Max)
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			idx := r*g.cols + c
			g.cells[idx] = append(g.cells[idx], index)
		}
	}
}

// pairs calls fn once for every distinct pair of indices sharing a cell,
// with i < j.
func (g *grid) pairs(fn func(i, j int)) {
	seen := make(map[[2]int]struct{})
	for _, items := range g.cells {
		for a := 0; a < len(items); a++ {
			for b := a + 1; b < len(items); b++ {
				i, j := items[a], items[b]
				if i > j {
					i, j = j, i
				}
				key := [2]int{i, j}
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				fn(i, j)
			}
		}
	}
}

// cellOf converts a world position to clamped cell coordinates.
func (g *grid) cellOf(p Vec2) (col, row int) {
	col = int(math.Floor(p.X * g.invCellSize))
	row = int(math.Floor(p.Y * g.invCellSize))
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}
	return col, row
}
