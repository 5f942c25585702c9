package physics

import (
	"math"
	"math/rand"
	"testing"
)

func newTestWorld() *World {
	return NewWorld(WorldConfig{Gravity: -1950, Width: 400, Height: 600, CellSize: 100})
}

func playerDef(pos Vec2) BodyDef {
	return BodyDef{
		Position:        pos,
		HalfExtents:     V(17, 12),
		Dynamic:         true,
		Category:        CategoryPlayer,
		CollidesWith:    Categories(CategoryGround),
		ContactTestWith: Categories(CategoryObstacle, CategoryGround),
	}
}

func staticDef(cat Category, pos, half Vec2) BodyDef {
	return BodyDef{Position: pos, HalfExtents: half, Category: cat}
}

type recordingObserver struct {
	added   []BodyID
	moved   int
	removed []BodyID
}

func (r *recordingObserver) BodyAdded(b *Body) { r.added = append(r.added, b.ID()) }
func (r *recordingObserver) BodyMoved(*Body) { r.moved++ }
func (r *recordingObserver) BodyRemoved(id BodyID) { r.removed = append(r.removed, id) }

func TestBodyOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec2
		expected bool
	}{
		{"same center", V(0, 0), V(0, 0), true},
		{"overlap both axes", V(0, 0), V(15, 10), true},
		{"separated on x", V(0, 0), V(40, 0), false},
		{"separated on y", V(0, 0), V(0, 30), false},
		{"touching edge", V(0, 0), V(34, 0), false},
		{"overlap x only", V(0, 0), V(10, 24), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewBody(BodyDef{Position: tc.a, HalfExtents: V(17, 12)})
			b := NewBody(BodyDef{Position: tc.b, HalfExtents: V(17, 12)})
			if got := a.Overlaps(b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := a.Bounds().Overlaps(b.Bounds()); got != tc.expected {
				t.Errorf("AABB.Overlaps() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestApplyImpulse(t *testing.T) {
	b := NewBody(playerDef(V(0, 0)))
	b.Velocity = V(0, -100)
	b.ApplyImpulse(V(0, 540))
	if b.Velocity.Y != 440 {
		t.Errorf("Velocity.Y = %f, expected 440", b.Velocity.Y)
	}
}

func TestNewBodyPanicsOnBadExtents(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewBody with zero extents should panic")
		}
	}()
	NewBody(BodyDef{HalfExtents: V(0, 1)})
}

func TestStepIntegratesSemiImplicitEuler(t *testing.T) {
	w := newTestWorld()
	p := NewBody(playerDef(V(200, 300)))
	p.SetAffectedByGravity(true)
	w.AddBody(p)

	w.Step(0.1)

	// Velocity is updated first, then position uses the new velocity.
	if math.Abs(p.Velocity.Y-(-195)) > 1e-9 {
		t.Errorf("Velocity.Y = %f, expected -195", p.Velocity.Y)
	}
	if math.Abs(p.Position.Y-(300-19.5)) > 1e-9 {
		t.Errorf("Position.Y = %f, expected 280.5", p.Position.Y)
	}
}

func TestStepGravityOff(t *testing.T) {
	w := newTestWorld()
	p := NewBody(playerDef(V(200, 300)))
	w.AddBody(p)

	w.Step(0.5)

	if p.Position.Y != 300 || p.Velocity.Y != 0 {
		t.Errorf("Body without gravity moved: pos=%v vel=%v", p.Position, p.Velocity)
	}
}

func TestStaticBodiesNeverReceiveGravity(t *testing.T) {
	w := newTestWorld()
	pipe := NewBody(staticDef(CategoryObstacle, V(430, 100), V(30, 100)))
	pipe.Velocity = V(-115, 0)
	pipe.SetAffectedByGravity(true)
	w.AddBody(pipe)

	w.Step(1)

	if pipe.Velocity != V(-115, 0) {
		t.Errorf("Static velocity changed to %v", pipe.Velocity)
	}
	if pipe.Position != V(315, 100) {
		t.Errorf("Static kinematic position = %v, expected (315, 100)", pipe.Position)
	}
}

func TestContactIsEdgeTriggered(t *testing.T) {
	w := newTestWorld()
	p := NewBody(playerDef(V(200, 300)))
	w.AddBody(p)
	zone := NewBody(BodyDef{
		Position:        V(260, 300),
		HalfExtents:     V(0.5, 75),
		Category:        CategoryScoreZone,
		ContactTestWith: Categories(CategoryPlayer),
	})
	zone.Velocity = V(-100, 0)
	w.AddBody(zone)

	var begins int
	for i := 0; i < 60; i++ {
		begins += len(w.Step(1.0 / 60))
	}

	if begins != 1 {
		t.Errorf("Expected exactly one contact begin while passing through, got %d", begins)
	}
}

func TestContactRetriggersAfterSeparation(t *testing.T) {
	w := newTestWorld()
	p := NewBody(playerDef(V(200, 300)))
	w.AddBody(p)
	pipe := NewBody(staticDef(CategoryObstacle, V(200, 300), V(30, 30)))
	w.AddBody(pipe)

	if n := len(w.Step(0.01)); n != 1 {
		t.Fatalf("Expected first contact, got %d", n)
	}
	if n := len(w.Step(0.01)); n != 0 {
		t.Fatalf("Persistent overlap should not re-trigger, got %d", n)
	}

	w.MoveBody(pipe.ID(), V(200, 500))
	w.Step(0.01)
	w.MoveBody(pipe.ID(), V(200, 300))
	if n := len(w.Step(0.01)); n != 1 {
		t.Errorf("Expected contact after separation, got %d", n)
	}
}

func TestUninterestedPairsProduceNoContacts(t *testing.T) {
	w := newTestWorld()
	// Two obstacles overlapping: neither tests the other.
	w.AddBody(NewBody(staticDef(CategoryObstacle, V(100, 100), V(30, 30))))
	w.AddBody(NewBody(staticDef(CategoryObstacle, V(110, 100), V(30, 30))))
	// Obstacle and zone overlapping: neither tests the other.
	w.AddBody(NewBody(BodyDef{
		Position:        V(100, 100),
		HalfExtents:     V(1, 10),
		Category:        CategoryScoreZone,
		ContactTestWith: Categories(CategoryPlayer),
	}))

	if n := len(w.Step(0.01)); n != 0 {
		t.Errorf("Expected no contacts, got %d", n)
	}
}

func TestClearedCategoriesStopContacts(t *testing.T) {
	w := newTestWorld()
	p := NewBody(playerDef(V(200, 300)))
	w.AddBody(p)
	p.ClearCategories()
	w.AddBody(NewBody(staticDef(CategoryObstacle, V(200, 300), V(30, 30))))

	if n := len(w.Step(0.01)); n != 0 {
		t.Errorf("Cleared body should not report contacts, got %d", n)
	}
}

func TestGroundBlocksDynamicBody(t *testing.T) {
	w := newTestWorld()
	w.AddBody(NewBody(staticDef(CategoryGround, V(200, 25), V(200, 25))))
	p := NewBody(playerDef(V(200, 80)))
	p.SetAffectedByGravity(true)
	w.AddBody(p)

	var contacts int
	for i := 0; i < 120; i++ {
		contacts += len(w.Step(1.0 / 60))
	}

	restY := 50 + p.HalfExtents.Y
	if math.Abs(p.Position.Y-restY) > 1 {
		t.Errorf("Player should rest on ground at y=%f, got %f", restY, p.Position.Y)
	}
	if p.Velocity.Y < 0 {
		t.Errorf("Resting player should not keep falling, vy=%f", p.Velocity.Y)
	}
	if contacts != 1 {
		t.Errorf("Resting on the ground should report one contact begin, got %d", contacts)
	}
}

func TestObstacleDoesNotBlockPlayer(t *testing.T) {
	w := newTestWorld()
	p := NewBody(playerDef(V(200, 300)))
	w.AddBody(p)
	pipe := NewBody(staticDef(CategoryObstacle, V(230, 300), V(30, 100)))
	w.AddBody(pipe)

	w.Step(0.01)

	if p.Position != V(200, 300) {
		t.Errorf("Obstacle contact is sensor-only, player moved to %v", p.Position)
	}
}

func TestRemoveBodyIsIdempotent(t *testing.T) {
	w := newTestWorld()
	obs := &recordingObserver{}
	w.Observe(obs)
	id := w.AddBody(NewBody(playerDef(V(0, 0))))

	if !w.RemoveBody(id) {
		t.Error("First RemoveBody should report removal")
	}
	if w.RemoveBody(id) {
		t.Error("Second RemoveBody should be a no-op")
	}
	if w.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", w.Len())
	}
	if len(obs.added) != 1 || len(obs.removed) != 1 {
		t.Errorf("Observer saw added=%v removed=%v", obs.added, obs.removed)
	}
}

func TestAddBodyTwicePanics(t *testing.T) {
	w := newTestWorld()
	b := NewBody(playerDef(V(0, 0)))
	w.AddBody(b)
	defer func() {
		if recover() == nil {
			t.Error("Adding the same body twice should panic")
		}
	}()
	w.AddBody(b)
}

func TestObserverSeesMoves(t *testing.T) {
	w := newTestWorld()
	obs := &recordingObserver{}
	w.Observe(obs)
	w.AddBody(NewBody(playerDef(V(0, 0))))
	w.AddBody(NewBody(playerDef(V(100, 0))))

	w.Step(0.01)

	if obs.moved != 2 {
		t.Errorf("Expected 2 move notifications, got %d", obs.moved)
	}
}

func TestContactsOrderedByID(t *testing.T) {
	w := newTestWorld()
	p := NewBody(playerDef(V(200, 300)))
	w.AddBody(p)
	zone := NewBody(BodyDef{Position: V(200, 300), HalfExtents: V(1, 75), Category: CategoryScoreZone, ContactTestWith: Categories(CategoryPlayer)})
	pipe := NewBody(staticDef(CategoryObstacle, V(200, 300), V(30, 30)))
	w.AddBody(zone)
	w.AddBody(pipe)

	contacts := w.Step(0.01)
	if len(contacts) != 2 {
		t.Fatalf("Expected 2 contacts, got %d", len(contacts))
	}
	if contacts[0].B != zone || contacts[1].B != pipe {
		t.Errorf("Contacts not ordered by ID: %v", contacts)
	}
	if contacts[0].Select(CategoryScoreZone) != zone {
		t.Error("Select should return the score zone body")
	}
}

// The grid broad phase must find exactly the overlapping pairs a brute
// force scan finds, including bodies outside the playfield bounds.
func TestBroadPhaseMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	w := NewWorld(WorldConfig{Width: 400, Height: 600, CellSize: 64})
	for i := 0; i < 80; i++ {
		cat := Category(1 + rng.Intn(4))
		w.AddBody(NewBody(BodyDef{
			Position:        V(rng.Float64()*520-60, rng.Float64()*700-50),
			HalfExtents:     V(1+rng.Float64()*40, 1+rng.Float64()*40),
			Category:        cat,
			ContactTestWith: Categories(CategoryPlayer, CategoryObstacle, CategoryGround, CategoryScoreZone),
		}))
	}

	got := make(map[[2]BodyID]bool)
	for _, c := range w.Step(0) {
		got[[2]BodyID{c.A.ID(), c.B.ID()}] = true
	}

	bodies := w.Bodies()
	want := 0
	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			if bodies[i].Overlaps(bodies[j]) {
				want++
				if !got[[2]BodyID{bodies[i].ID(), bodies[j].ID()}] {
					t.Errorf("Broad phase missed pair %d×%d", bodies[i].ID(), bodies[j].ID())
				}
			}
		}
	}
	if len(got) != want {
		t.Errorf("Broad phase found %d pairs, brute force %d", len(got), want)
	}
}

func TestPairTableDispatch(t *testing.T) {
	table := NewPairTable()
	var fatal, score int
	table.On(CategoryPlayer, CategoryGround, func(Contact) { fatal++ })
	table.On(CategoryScoreZone, CategoryPlayer, func(Contact) { score++ })

	p := NewBody(playerDef(V(0, 0)))
	g := NewBody(staticDef(CategoryGround, V(0, 0), V(1, 1)))
	z := NewBody(staticDef(CategoryScoreZone, V(0, 0), V(1, 1)))
	o := NewBody(staticDef(CategoryObstacle, V(0, 0), V(1, 1)))

	table.Dispatch(Contact{A: g, B: p})
	table.Dispatch(Contact{A: p, B: z})
	if handled := table.Dispatch(Contact{A: o, B: z}); handled {
		t.Error("Unknown pair should not be handled")
	}

	if fatal != 1 || score != 1 {
		t.Errorf("fatal=%d score=%d, expected 1 and 1", fatal, score)
	}

	p.ClearCategories()
	if table.Dispatch(Contact{A: p, B: g}) {
		t.Error("Cleared body should no longer match its former pair")
	}
}

func TestCategorySet(t *testing.T) {
	s := Categories(CategoryPlayer, CategoryGround, CategoryNone)
	if !s.Has(CategoryPlayer) || !s.Has(CategoryGround) {
		t.Error("Set should contain Player and Ground")
	}
	if s.Has(CategoryNone) || s.Has(CategoryObstacle) {
		t.Error("Set should not contain None or Obstacle")
	}
	if s.String() != "{Player,Ground}" {
		t.Errorf("String() = %q", s.String())
	}
	if PairOf(CategoryScoreZone, CategoryPlayer) != PairOf(CategoryPlayer, CategoryScoreZone) {
		t.Error("PairOf should be order independent")
	}
}
