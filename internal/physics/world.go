package physics

import (
	"fmt"
	"math"
	"sort"
)

// Contact is a contact-begin event between two bodies. A always has the
// smaller ID.
type Contact struct {
	A, B *Body
}

// Pair returns the unordered category pair of the contact, read from the
// bodies' current categories.
func (c Contact) Pair() Pair {
	return PairOf(c.A.Category(), c.B.Category())
}

// Select returns the body of the given category, or nil if neither matches.
func (c Contact) Select(cat Category) *Body {
	switch {
	case c.A.Category() == cat:
		return c.A
	case c.B.Category() == cat:
		return c.B
	}
	return nil
}

// String describes the contact for logs.
func (c Contact) String() string {
	return fmt.Sprintf("%s#%d×%s#%d", c.A.Category(), c.A.ID(), c.B.Category(), c.B.ID())
}

// BodyObserver receives body lifecycle notifications. Renderers subscribe
// to a World through this interface; the World never depends on them.
type BodyObserver interface {
	BodyAdded(b *Body)
	BodyMoved(b *Body)
	BodyRemoved(id BodyID)
}

// WorldConfig configures a World.
type WorldConfig struct {
	Gravity  float64 // Vertical acceleration in units/s², negative is down
	Width    float64 // Playfield width covered by the broad-phase grid
	Height   float64 // Playfield height covered by the broad-phase grid
	CellSize float64 // Broad-phase cell size
}

// World owns a set of bodies and advances them in fixed steps.
// It is not safe for concurrent use; the game loop owns it.
type World struct {
	gravity   float64
	bodies    []*Body // ordered by ID
	nextID    BodyID
	touching  map[[2]BodyID]struct{}
	grid      *grid
	observers []BodyObserver
}

// NewWorld creates an empty world. Non-positive bounds or cell size are a
// programming error and panic.
func NewWorld(cfg WorldConfig) *World {
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.CellSize <= 0 {
		panic(fmt.Sprintf("physics: invalid world config %+v", cfg))
	}
	return &World{
		gravity:  cfg.Gravity,
		touching: make(map[[2]BodyID]struct{}),
		grid:     newGrid(cfg.Width, cfg.Height, cfg.CellSize),
	}
}

// Observe registers a lifecycle observer.
func (w *World) Observe(o BodyObserver) {
	w.observers = append(w.observers, o)
}

// Gravity returns the world's vertical acceleration.
func (w *World) Gravity() float64 {
	return w.gravity
}

// AddBody inserts b and assigns its ID.
// Adding a body that already belongs to a world panics.
func (w *World) AddBody(b *Body) BodyID {
	if b.id != 0 {
		panic(fmt.Sprintf("physics: body %d already added", b.id))
	}
	w.nextID++
	b.id = w.nextID
	w.bodies = append(w.bodies, b)
	for _, o := range w.observers {
		o.BodyAdded(b)
	}
	return b.id
}

// RemoveBody removes the body with the given ID. It returns false if the
// body is not in the world, which makes repeated removal harmless.
func (w *World) RemoveBody(id BodyID) bool {
	i := w.index(id)
	if i < 0 {
		return false
	}
	w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
	for key := range w.touching {
		if key[0] == id || key[1] == id {
			delete(w.touching, key)
		}
	}
	for _, o := range w.observers {
		o.BodyRemoved(id)
	}
	return true
}

// Body looks up a body by ID.
func (w *World) Body(id BodyID) (*Body, bool) {
	i := w.index(id)
	if i < 0 {
		return nil, false
	}
	return w.bodies[i], true
}

// Bodies returns a snapshot of all bodies ordered by ID.
func (w *World) Bodies() []*Body {
	out := make([]*Body, len(w.bodies))
	copy(out, w.bodies)
	return out
}

// Len returns the number of bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// MoveBody places a body at pos outside the integrator (scripted motion)
// and notifies observers.
func (w *World) MoveBody(id BodyID, pos Vec2) bool {
	b, ok := w.Body(id)
	if !ok {
		return false
	}
	b.Position = pos
	for _, o := range w.observers {
		o.BodyMoved(b)
	}
	return true
}

func (w *World) index(id BodyID) int {
	i := sort.Search(len(w.bodies), func(i int) bool { return w.bodies[i].id >= id })
	if i < len(w.bodies) && w.bodies[i].id == id {
		return i
	}
	return -1
}

// Step advances the world by dt seconds and returns the contacts that
// began during this step, ordered by body IDs.
//
// Dynamic bodies affected by gravity gain gravity*dt vertical velocity;
// then every body moves by velocity*dt. Static bodies keep whatever
// velocity they were given (kinematic motion) and never receive gravity.
// Overlaps are detected after integration. A pair reports a contact only
// when it was not already overlapping at the end of the previous step.
// Finally dynamic bodies are pushed out of static bodies they collide with.
func (w *World) Step(dt float64) []Contact {
	for _, b := range w.bodies {
		if b.AffectedByGravity() {
			b.Velocity.Y += w.gravity * dt
		}
		if !b.Velocity.IsZero() {
			b.Position = b.Position.Add(b.Velocity.Scale(dt))
		}
	}

	contacts := w.detect()
	w.resolve()

	for _, b := range w.bodies {
		for _, o := range w.observers {
			o.BodyMoved(b)
		}
	}
	return contacts
}

// detect runs the broad and narrow phases and updates the touching set.
func (w *World) detect() []Contact {
	w.grid.clear()
	for i, b := range w.bodies {
		if b.category == CategoryNone && b.collidesWith == 0 && b.contactTestWith == 0 {
			continue
		}
		w.grid.insert(i, b.Bounds())
	}

	now := make(map[[2]BodyID]struct{}, len(w.touching))
	var contacts []Contact
	w.grid.pairs(func(i, j int) {
		a, b := w.bodies[i], w.bodies[j]
		if !interested(a, b) || !a.Overlaps(b) {
			return
		}
		key := [2]BodyID{a.id, b.id}
		now[key] = struct{}{}
		if _, was := w.touching[key]; !was {
			contacts = append(contacts, Contact{A: a, B: b})
		}
	})
	w.touching = now

	sort.Slice(contacts, func(i, j int) bool {
		if contacts[i].A.id != contacts[j].A.id {
			return contacts[i].A.id < contacts[j].A.id
		}
		return contacts[i].B.id < contacts[j].B.id
	})
	return contacts
}

// resolve separates dynamic bodies from static bodies in their collision
// mask along the axis of least penetration and cancels the velocity
// component driving them together.
func (w *World) resolve() {
	for _, d := range w.bodies {
		if !d.dynamic || d.collidesWith == 0 {
			continue
		}
		for _, s := range w.bodies {
			if s == d || s.dynamic || !d.collidesWith.Has(s.category) || !d.Overlaps(s) {
				continue
			}
			dx := s.Position.X - d.Position.X
			dy := s.Position.Y - d.Position.Y
			px := d.HalfExtents.X + s.HalfExtents.X - math.Abs(dx)
			py := d.HalfExtents.Y + s.HalfExtents.Y - math.Abs(dy)
			if py <= px {
				if dy > 0 {
					d.Position.Y -= py
					d.Velocity.Y = math.Min(d.Velocity.Y, 0)
				} else {
					d.Position.Y += py
					d.Velocity.Y = math.Max(d.Velocity.Y, 0)
				}
			} else {
				if dx > 0 {
					d.Position.X -= px
					d.Velocity.X = math.Min(d.Velocity.X, 0)
				} else {
					d.Position.X += px
					d.Velocity.X = math.Max(d.Velocity.X, 0)
				}
			}
		}
	}
}
