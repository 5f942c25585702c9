package game

import "github.com/vovakirdan/yamabird/internal/physics"

// LabelID identifies an on-screen text label.
type LabelID int

const (
	LabelScore LabelID = iota
	LabelHighScore
	LabelStart
)

// Cue identifies a sound effect.
type Cue int

const (
	CueFlap Cue = iota
	CueScore
	CueHit
	CueGameOver
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueFlap:
		return "flap"
	case CueScore:
		return "score"
	case CueHit:
		return "hit"
	case CueGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Scene presents the game. It observes body lifecycle events from the
// session's physics world and receives label, sound and overlay commands
// from the game. The game never reads anything back from it.
type Scene interface {
	physics.BodyObserver

	// SetRotation sets the visual rotation of a body in radians.
	SetRotation(id physics.BodyID, radians float64)
	SetLabelText(label LabelID, text string)
	RemoveLabel(label LabelID)
	PlaySound(cue Cue)
	// PresentOverlay shows the game over panel with the restart control.
	PresentOverlay(score, highScore int, restart physics.AABB)
	// ScrollGround sets the ground texture's horizontal scroll offset.
	ScrollGround(offset float64)
	// Clear removes every visual, label and overlay.
	Clear()
}

// HighScoreStore persists the single best score.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// RunRecorder receives every finished run.
type RunRecorder interface {
	RecordRun(score int) error
}

// NopScene discards all presentation commands.
type NopScene struct{}

func (NopScene) BodyAdded(*physics.Body) {}
func (NopScene) BodyMoved(*physics.Body) {}
func (NopScene) BodyRemoved(physics.BodyID) {}
func (NopScene) SetRotation(physics.BodyID, float64) {}
func (NopScene) SetLabelText(LabelID, string) {}
func (NopScene) RemoveLabel(LabelID) {}
func (NopScene) PlaySound(Cue) {}
func (NopScene) PresentOverlay(int, int, physics.AABB) {}
func (NopScene) ScrollGround(float64) {}
func (NopScene) Clear() {}

// MemoryHighScores keeps the high score in memory.
type MemoryHighScores struct {
	Score  int
	Writes int
}

// LoadHighScore returns the stored score.
func (m *MemoryHighScores) LoadHighScore() (int, error) {
	return m.Score, nil
}

// SaveHighScore stores the score and counts the write.
func (m *MemoryHighScores) SaveHighScore(score int) error {
	m.Score = score
	m.Writes++
	return nil
}
