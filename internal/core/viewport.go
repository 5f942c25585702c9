package core

import (
	"math"

	"github.com/vovakirdan/yamabird/internal/physics"
)

// Viewport maps the y-up world onto a rectangle of terminal cells with
// row 0 at the top. The world is stretched to fill the area.
type Viewport struct {
	Area   Rect
	WorldW float64
	WorldH float64
}

// NewViewport maps a world of the given size onto area.
func NewViewport(area Rect, worldW, worldH float64) Viewport {
	return Viewport{Area: area, WorldW: worldW, WorldH: worldH}
}

func (v Viewport) col(x float64) float64 { return x * float64(v.Area.W) / v.WorldW }
func (v Viewport) row(y float64) float64 { return y * float64(v.Area.H) / v.WorldH }

// ToCell returns the cell containing a world point. Points outside the
// world map to cells outside the area.
func (v Viewport) ToCell(p physics.Vec2) (int, int) {
	x := int(math.Floor(v.col(p.X)))
	y := v.Area.H - 1 - int(math.Floor(v.row(p.Y)))
	return v.Area.X + x, v.Area.Y + y
}

// ToWorld returns the world point at the center of a cell.
func (v Viewport) ToWorld(cx, cy int) physics.Vec2 {
	x := (float64(cx-v.Area.X) + 0.5) * v.WorldW / float64(v.Area.W)
	y := (float64(v.Area.H-(cy-v.Area.Y)) - 0.5) * v.WorldH / float64(v.Area.H)
	return physics.V(x, y)
}

// CellRect returns the cells covered by a world box. Boxes with any
// extent cover at least one cell on each axis.
func (v Viewport) CellRect(b physics.AABB) Rect {
	x0 := int(math.Floor(v.col(b.Min.X)))
	x1 := int(math.Ceil(v.col(b.Max.X)))
	top := v.Area.H - int(math.Ceil(v.row(b.Max.Y)))
	bottom := v.Area.H - int(math.Floor(v.row(b.Min.Y)))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if bottom <= top {
		bottom = top + 1
	}
	return Rect{X: v.Area.X + x0, Y: v.Area.Y + top, W: x1 - x0, H: bottom - top}
}

// Valid reports whether the viewport has a drawable area and world.
func (v Viewport) Valid() bool {
	return !v.Area.Empty() && v.WorldW > 0 && v.WorldH > 0
}
