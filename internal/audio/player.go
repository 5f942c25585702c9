// Package audio synthesizes and plays the game's sound cues with beep.
package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/yamabird/internal/game"
)

// Config configures the audio player.
type Config struct {
	SampleRate int
	Volume     float64 // 0..1
	Muted      bool
}

// DefaultConfig returns 44.1kHz at 80% volume, unmuted.
func DefaultConfig() Config {
	return Config{SampleRate: 44100, Volume: 0.8}
}

// Player mixes sound cues onto the system speaker. A Player that has not
// been started, or whose speaker failed to initialize, stays silent.
type Player struct {
	cfg   Config
	rate  beep.SampleRate
	mixer *beep.Mixer

	mu      sync.Mutex
	started bool
	silent  atomic.Bool
	muted   atomic.Bool
}

// NewPlayer creates a player. Call Start to open the speaker.
func NewPlayer(cfg Config) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	p := &Player{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
	p.muted.Store(cfg.Muted)
	p.silent.Store(true)
	return p
}

// Start opens the speaker. On failure the player stays in silent mode and
// the error is returned for the caller to report.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.started = true
	p.silent.Store(false)
	return nil
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.started = false
	p.silent.Store(true)
}

// Play queues a cue. It reports whether the cue was queued.
func (p *Player) Play(cue game.Cue) bool {
	if p.silent.Load() || p.muted.Load() {
		return false
	}
	s := CueStreamer(cue, p.rate)
	if s == nil {
		return false
	}
	speaker.Lock()
	p.mixer.Add(newVolume(s, p.cfg.Volume))
	speaker.Unlock()
	return true
}

// ToggleMute flips the mute state and returns true if sound is now on.
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)
	return !muted
}

// Muted reports whether the player is muted.
func (p *Player) Muted() bool {
	return p.muted.Load()
}

// Silent reports whether the speaker is unavailable.
func (p *Player) Silent() bool {
	return p.silent.Load()
}
