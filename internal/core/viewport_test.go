package core

import (
	"testing"

	"github.com/vovakirdan/yamabird/internal/physics"
)

func TestViewportToCell(t *testing.T) {
	// 400x600 world on 80x24 cells: 5 units per column, 25 per row.
	v := NewViewport(NewRect(0, 0, 80, 24), 400, 600)

	tests := []struct {
		name string
		p    physics.Vec2
		x, y int
	}{
		{"bottom-left", physics.V(0, 0), 0, 23},
		{"top-right corner inside", physics.V(399, 599), 79, 0},
		{"center", physics.V(200, 300), 40, 11},
		{"ground top", physics.V(10, 49), 2, 22},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := v.ToCell(tc.p)
			if x != tc.x || y != tc.y {
				t.Errorf("ToCell(%v) = (%d, %d), expected (%d, %d)", tc.p, x, y, tc.x, tc.y)
			}
		})
	}
}

func TestViewportHitTestRoundTrip(t *testing.T) {
	v := NewViewport(NewRect(0, 0, 80, 24), 400, 600)

	for cy := range 24 {
		for cx := range 80 {
			p := v.ToWorld(cx, cy)
			if x, y := v.ToCell(p); x != cx || y != cy {
				t.Fatalf("cell (%d, %d) -> %v -> (%d, %d)", cx, cy, p, x, y)
			}
		}
	}
}

func TestViewportRestartControlHit(t *testing.T) {
	v := NewViewport(NewRect(0, 0, 80, 24), 400, 600)
	restart := physics.BoxAt(physics.V(200, 222.5), physics.V(60, 18))
	cells := v.CellRect(restart)

	if cells != NewRect(28, 14, 24, 2) {
		t.Errorf("CellRect() = %+v, expected {28 14 24 2}", cells)
	}
	for y := cells.Y; y < cells.Bottom(); y++ {
		for x := cells.X; x < cells.Right(); x++ {
			if !restart.Contains(v.ToWorld(x, y)) {
				t.Errorf("cell (%d, %d) drawn as restart but misses it", x, y)
			}
		}
	}
	if restart.Contains(v.ToWorld(10, 3)) {
		t.Error("far cell hits the restart control")
	}
}

func TestViewportCellRectMinimumSize(t *testing.T) {
	v := NewViewport(NewRect(0, 0, 80, 24), 400, 600)
	zone := physics.BoxAt(physics.V(201, 300), physics.V(0.5, 75))

	r := v.CellRect(zone)
	if r.W != 1 {
		t.Errorf("thin box width = %d, expected 1", r.W)
	}
}

func TestViewportOffsetArea(t *testing.T) {
	v := NewViewport(NewRect(10, 2, 40, 12), 400, 600)

	x, y := v.ToCell(physics.V(0, 0))
	if x != 10 || y != 13 {
		t.Errorf("origin maps to (%d, %d), expected (10, 13)", x, y)
	}
	if !v.Valid() || (Viewport{}).Valid() {
		t.Error("Valid() wrong")
	}
}
