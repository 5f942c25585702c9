// Package physics implements a minimal 2D rigid-body world for the game:
// axis-aligned boxes, semi-implicit Euler integration under constant
// gravity, and edge-triggered contact detection between categorized bodies.
//
// Coordinates are y-up with the origin at the playfield's bottom-left corner.
package physics

import "math"

// Vec2 is a 2D vector used for positions, velocities and extents.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// AABB is an axis-aligned bounding box given by its min and max corners.
type AABB struct {
	Min, Max Vec2
}

// BoxAt returns the AABB centered at c with the given half extents.
func BoxAt(c, half Vec2) AABB {
	return AABB{Min: c.Sub(half), Max: c.Add(half)}
}

// Overlaps reports whether two boxes intersect on both axes.
// Boxes that only share an edge do not overlap.
func (a AABB) Overlaps(b AABB) bool {
	if a.Min.X >= b.Max.X || b.Min.X >= a.Max.X {
		return false
	}
	if a.Min.Y >= b.Max.Y || b.Min.Y >= a.Max.Y {
		return false
	}
	return true
}

// Contains reports whether p lies inside the box (edges inclusive).
func (a AABB) Contains(p Vec2) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X && p.Y >= a.Min.Y && p.Y <= a.Max.Y
}

// Center returns the box center.
func (a AABB) Center() Vec2 {
	return Vec2{X: (a.Min.X + a.Max.X) / 2, Y: (a.Min.Y + a.Max.Y) / 2}
}

// BodyID identifies a body within a World. Zero means "not added".
type BodyID uint64

// Body is a simulated rectangle. Category and interaction masks are fixed
// at creation; position and velocity change through the World integrator
// or explicit impulses.
type Body struct {
	id BodyID

	Position    Vec2
	Velocity    Vec2
	HalfExtents Vec2

	dynamic           bool
	affectedByGravity bool

	category        Category
	collidesWith    CategorySet
	contactTestWith CategorySet
}

// BodyDef describes a body to be created with NewBody.
type BodyDef struct {
	Position          Vec2
	Velocity          Vec2
	HalfExtents       Vec2
	Dynamic           bool
	AffectedByGravity bool
	Category          Category
	CollidesWith      CategorySet
	ContactTestWith   CategorySet
}

// NewBody creates a body from its definition.
// Non-positive extents are a programming error and panic.
func NewBody(def BodyDef) *Body {
	if def.HalfExtents.X <= 0 || def.HalfExtents.Y <= 0 {
		panic("physics: body half extents must be positive")
	}
	return &Body{
		Position:          def.Position,
		Velocity:          def.Velocity,
		HalfExtents:       def.HalfExtents,
		dynamic:           def.Dynamic,
		affectedByGravity: def.AffectedByGravity,
		category:          def.Category,
		collidesWith:      def.CollidesWith,
		contactTestWith:   def.ContactTestWith,
	}
}

// ID returns the identifier assigned by World.AddBody.
func (b *Body) ID() BodyID { return b.id }

// Category returns the body's category tag.
func (b *Body) Category() Category { return b.category }

// CollidesWith returns the categories this body is physically blocked by.
func (b *Body) CollidesWith() CategorySet { return b.collidesWith }

// ContactTestWith returns the categories that produce contact events.
func (b *Body) ContactTestWith() CategorySet { return b.contactTestWith }

// IsDynamic reports whether the integrator applies gravity and collision
// response to this body.
func (b *Body) IsDynamic() bool { return b.dynamic }

// AffectedByGravity reports whether gravity is currently applied.
func (b *Body) AffectedByGravity() bool { return b.dynamic && b.affectedByGravity }

// SetAffectedByGravity toggles gravity for a dynamic body.
func (b *Body) SetAffectedByGravity(on bool) { b.affectedByGravity = on }

// SetDynamic switches the body between dynamic and static simulation.
func (b *Body) SetDynamic(on bool) { b.dynamic = on }

// ApplyImpulse adds dv to the velocity instantly (unit mass).
func (b *Body) ApplyImpulse(dv Vec2) {
	b.Velocity = b.Velocity.Add(dv)
}

// ClearCategories removes the body from every interaction: it stops
// belonging to a category and stops testing or colliding with others.
func (b *Body) ClearCategories() {
	b.category = CategoryNone
	b.collidesWith = 0
	b.contactTestWith = 0
}

// Bounds returns the body's current AABB.
func (b *Body) Bounds() AABB {
	return BoxAt(b.Position, b.HalfExtents)
}

// Size returns the full width and height.
func (b *Body) Size() Vec2 {
	return b.HalfExtents.Scale(2)
}

// Overlaps reports whether the two bodies' boxes intersect on both axes.
func (b *Body) Overlaps(other *Body) bool {
	return math.Abs(b.Position.X-other.Position.X) < b.HalfExtents.X+other.HalfExtents.X &&
		math.Abs(b.Position.Y-other.Position.Y) < b.HalfExtents.Y+other.HalfExtents.Y
}

// interested reports whether a and b want to hear about each other.
func interested(a, b *Body) bool {
	return a.contactTestWith.Has(b.category) || a.collidesWith.Has(b.category) ||
		b.contactTestWith.Has(a.category) || b.collidesWith.Has(a.category)
}
