package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/yamabird/internal/config"
	"github.com/vovakirdan/yamabird/internal/physics"
)

func TestSpawnGeometry(t *testing.T) {
	cfg := config.Default().Obstacles
	s := NewSpawner(cfg, 3)

	for i := range 1000 {
		p := s.Spawn(400, 600)

		if p.BottomHeight < 100 || p.BottomHeight > 350 {
			t.Fatalf("spawn %d: bottom height %v outside [100, 350]", i, p.BottomHeight)
		}
		if math.Abs(p.TopHeight-(450-p.BottomHeight)) > 1e-9 {
			t.Fatalf("spawn %d: top height %v, expected %v", i, p.TopHeight, 450-p.BottomHeight)
		}
		if got := p.Top.Bounds().Min.Y - p.Bottom.Bounds().Max.Y; math.Abs(got-150) > 1e-9 {
			t.Fatalf("spawn %d: gap %v, expected 150", i, got)
		}
		if p.Bottom.Bounds().Min.Y != 0 || math.Abs(p.Top.Bounds().Max.Y-600) > 1e-9 {
			t.Fatalf("spawn %d: pipes do not reach the playfield edges", i)
		}
		if math.Abs(p.Zone.Bounds().Min.Y-p.Bottom.Bounds().Max.Y) > 1e-9 {
			t.Fatalf("spawn %d: zone does not start at the gap", i)
		}
	}
}

func TestSpawnMotion(t *testing.T) {
	s := NewSpawner(config.Default().Obstacles, 1)
	p := s.Spawn(400, 600)

	for _, b := range p.Bodies() {
		if b.Position.X != 430 {
			t.Errorf("body %s spawned at x=%v, expected 430", b.Category(), b.Position.X)
		}
		if b.Velocity != physics.V(-115, 0) {
			t.Errorf("body %s velocity %v, expected (-115, 0)", b.Category(), b.Velocity)
		}
		if b.IsDynamic() {
			t.Errorf("body %s is dynamic", b.Category())
		}
	}
	if w := p.Zone.Size().X; w != 1 {
		t.Errorf("zone width = %v, expected 1", w)
	}
	if !p.Zone.ContactTestWith().Has(physics.CategoryPlayer) {
		t.Error("zone does not report player contacts")
	}
	if p.Top.Category() != physics.CategoryObstacle || p.Zone.Category() != physics.CategoryScoreZone {
		t.Error("wrong categories")
	}
}

func TestSpawnerRetire(t *testing.T) {
	w := physics.NewWorld(physics.WorldConfig{Gravity: -1950, Width: 400, Height: 600, CellSize: 100})
	s := NewSpawner(config.Default().Obstacles, 1)
	old := s.Inject(w, 400, 600)
	s.Inject(w, 400, 600)

	if s.Retire(w) != 0 {
		t.Fatal("retired pairs still on screen")
	}

	for _, b := range old.Bodies() {
		w.MoveBody(b.ID(), physics.V(-31, b.Position.Y))
	}
	if got := s.Retire(w); got != 1 {
		t.Fatalf("Retire() = %d, expected 1", got)
	}
	if w.Len() != 3 || len(s.Live()) != 1 {
		t.Errorf("world has %d bodies and %d pairs, expected 3 and 1", w.Len(), len(s.Live()))
	}
	for _, b := range old.Bodies() {
		if _, ok := w.Body(b.ID()); ok {
			t.Errorf("retired body %d still in world", b.ID())
		}
	}
}

func TestSpawnerRetireToleratesRemovedZone(t *testing.T) {
	w := physics.NewWorld(physics.WorldConfig{Gravity: -1950, Width: 400, Height: 600, CellSize: 100})
	s := NewSpawner(config.Default().Obstacles, 1)
	p := s.Inject(w, 400, 600)
	w.RemoveBody(p.Zone.ID())

	for _, b := range []*physics.Body{p.Top, p.Bottom} {
		w.MoveBody(b.ID(), physics.V(-100, b.Position.Y))
	}
	if got := s.Retire(w); got != 1 || w.Len() != 0 {
		t.Errorf("Retire() = %d with %d bodies left, expected 1 and 0", got, w.Len())
	}
}

func TestSpawnerHalt(t *testing.T) {
	w := physics.NewWorld(physics.WorldConfig{Gravity: -1950, Width: 400, Height: 600, CellSize: 100})
	s := NewSpawner(config.Default().Obstacles, 1)
	s.Inject(w, 400, 600)
	s.Halt()

	for _, p := range s.Live() {
		for _, b := range p.Bodies() {
			if !b.Velocity.IsZero() {
				t.Errorf("body %d still moving after Halt", b.ID())
			}
		}
	}
}

func TestSpawnerPanics(t *testing.T) {
	tests := []struct {
		name string
		run  func()
	}{
		{"zero gap", func() {
			cfg := config.Default().Obstacles
			cfg.Gap = 0
			NewSpawner(cfg, 1)
		}},
		{"playfield too short", func() {
			NewSpawner(config.Default().Obstacles, 1).Spawn(400, 300)
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tc.run()
		})
	}
}
