package game

import (
	"math"
	"time"

	"github.com/vovakirdan/yamabird/internal/config"
)

// deathAnimation scripts the player after a fatal contact: a freeze with
// rotation locked, then an ease-in fall below the playfield while spinning.
type deathAnimation struct {
	startY   float64
	targetY  float64
	rotation float64
	elapsed  time.Duration
	freeze   time.Duration
	fall     time.Duration
	spin     time.Duration
}

func newDeathAnimation(startY, targetY, rotation float64, cfg config.DeathConfig) *deathAnimation {
	return &deathAnimation{
		startY:   startY,
		targetY:  targetY,
		rotation: rotation,
		freeze:   cfg.Freeze,
		fall:     cfg.Fall,
		spin:     cfg.SpinPeriod,
	}
}

// advance moves the animation forward and returns the player's height,
// its rotation and whether the fall has finished.
func (a *deathAnimation) advance(dt time.Duration) (y, rotation float64, done bool) {
	prev := a.elapsed
	a.elapsed += dt

	// Rotation is locked during the freeze.
	spinFrom := max(prev, a.freeze)
	spinTo := min(a.elapsed, a.freeze+a.fall)
	if spinTo > spinFrom {
		a.rotation += 2 * math.Pi * float64(spinTo-spinFrom) / float64(a.spin)
	}

	if a.elapsed <= a.freeze {
		return a.startY, a.rotation, false
	}

	t := float64(a.elapsed-a.freeze) / float64(a.fall)
	if t >= 1 {
		return a.targetY, a.rotation, true
	}
	eased := t * t
	return a.startY + (a.targetY-a.startY)*eased, a.rotation, false
}
