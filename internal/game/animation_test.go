package game

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/yamabird/internal/config"
)

func TestDeathAnimation(t *testing.T) {
	cfg := config.Default().Death
	a := newDeathAnimation(300, -24, 0.2, cfg)

	y, rot, done := a.advance(time.Second)
	if y != 300 || rot != 0.2 || done {
		t.Errorf("during freeze: y=%v rot=%v done=%v, expected 300, 0.2, false", y, rot, done)
	}

	// Half way through the fall: eased to a quarter of the distance,
	// three full turns after 1.5s of spin.
	y, rot, done = a.advance(2 * time.Second)
	if math.Abs(y-(300-324.0/4)) > 1e-9 {
		t.Errorf("mid fall y = %v, expected %v", y, 300-324.0/4)
	}
	if math.Abs(rot-(0.2+6*math.Pi)) > 1e-9 {
		t.Errorf("mid fall rotation = %v, expected %v", rot, 0.2+6*math.Pi)
	}
	if done {
		t.Error("finished mid fall")
	}

	y, _, done = a.advance(10 * time.Second)
	if y != -24 || !done {
		t.Errorf("end: y=%v done=%v, expected -24 and true", y, done)
	}
}

func TestDeathAnimationSpinStopsWithFall(t *testing.T) {
	cfg := config.Default().Death
	a := newDeathAnimation(100, -24, 0, cfg)

	_, rot, _ := a.advance(time.Hour)
	// 3s of fall at one turn per 500ms.
	if math.Abs(rot-12*math.Pi) > 1e-9 {
		t.Errorf("rotation = %v, expected %v", rot, 12*math.Pi)
	}
}
