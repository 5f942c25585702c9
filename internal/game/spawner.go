package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/yamabird/internal/config"
	"github.com/vovakirdan/yamabird/internal/physics"
)

// ObstaclePair is a top and bottom pipe with a score zone in the gap
// between them. All three share one velocity and one lifecycle.
type ObstaclePair struct {
	Top          *physics.Body
	Bottom       *physics.Body
	Zone         *physics.Body
	TopHeight    float64
	BottomHeight float64
}

// Bodies returns the three bodies of the pair.
func (p ObstaclePair) Bodies() []*physics.Body {
	return []*physics.Body{p.Bottom, p.Top, p.Zone}
}

// RightEdge returns the x coordinate of the pair's right edge.
func (p ObstaclePair) RightEdge() float64 {
	return p.Bottom.Position.X + p.Bottom.HalfExtents.X
}

// Spawner generates obstacle pairs with a random gap position and retires
// them once they leave the playfield.
type Spawner struct {
	cfg  config.ObstacleConfig
	rng  *rand.Rand
	live []ObstaclePair
}

// NewSpawner creates a spawner with a deterministic RNG.
// Non-positive geometry is a programming error and panics.
func NewSpawner(cfg config.ObstacleConfig, seed int64) *Spawner {
	if cfg.Gap <= 0 || cfg.Width <= 0 || cfg.MinHeight <= 0 || cfg.ScoreZoneWidth <= 0 || cfg.TraversalTime <= 0 {
		panic(fmt.Sprintf("game: invalid obstacle config %+v", cfg))
	}
	return &Spawner{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Spawn builds a new pair just beyond the right edge of a playfield of the
// given size. The bottom pipe height is uniform in
// [min, height - gap - min]; the top pipe fills the rest above the gap.
// The bodies are not added to any world.
func (s *Spawner) Spawn(width, height float64) ObstaclePair {
	gap, pipeW, minH := s.cfg.Gap, s.cfg.Width, s.cfg.MinHeight
	maxBottom := height - gap - minH
	if maxBottom < minH {
		panic(fmt.Sprintf("game: playfield height %v cannot fit gap %v and min height %v", height, gap, minH))
	}

	bottomH := minH + s.rng.Float64()*(maxBottom-minH)
	topH := height - bottomH - gap

	x := width + pipeW/2
	vel := physics.V(-s.cfg.Speed(width), 0)

	bottom := physics.NewBody(physics.BodyDef{
		Position:    physics.V(x, bottomH/2),
		Velocity:    vel,
		HalfExtents: physics.V(pipeW/2, bottomH/2),
		Category:    physics.CategoryObstacle,
	})
	top := physics.NewBody(physics.BodyDef{
		Position:    physics.V(x, height-topH/2),
		Velocity:    vel,
		HalfExtents: physics.V(pipeW/2, topH/2),
		Category:    physics.CategoryObstacle,
	})
	zone := physics.NewBody(physics.BodyDef{
		Position:        physics.V(x, bottomH+gap/2),
		Velocity:        vel,
		HalfExtents:     physics.V(s.cfg.ScoreZoneWidth/2, gap/2),
		Category:        physics.CategoryScoreZone,
		ContactTestWith: physics.Categories(physics.CategoryPlayer),
	})

	return ObstaclePair{
		Top:          top,
		Bottom:       bottom,
		Zone:         zone,
		TopHeight:    topH,
		BottomHeight: bottomH,
	}
}

// Inject spawns a pair, adds its bodies to the world and tracks it.
func (s *Spawner) Inject(w *physics.World, width, height float64) ObstaclePair {
	pair := s.Spawn(width, height)
	for _, b := range pair.Bodies() {
		w.AddBody(b)
	}
	s.live = append(s.live, pair)
	return pair
}

// Retire removes every tracked pair whose right edge has passed the left
// edge of the playfield. Returns the number of pairs retired.
func (s *Spawner) Retire(w *physics.World) int {
	kept := s.live[:0]
	retired := 0
	for _, p := range s.live {
		if p.RightEdge() < 0 {
			for _, b := range p.Bodies() {
				w.RemoveBody(b.ID())
			}
			retired++
			continue
		}
		kept = append(kept, p)
	}
	s.live = kept
	return retired
}

// Halt stops every tracked pair where it is.
func (s *Spawner) Halt() {
	for _, p := range s.live {
		for _, b := range p.Bodies() {
			b.Velocity = physics.Vec2{}
		}
	}
}

// Live returns the tracked pairs, oldest first.
func (s *Spawner) Live() []ObstaclePair {
	out := make([]ObstaclePair, len(s.live))
	copy(out, s.live)
	return out
}
