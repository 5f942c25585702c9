package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/yamabird/internal/game"
)

// WaveType is an oscillator wave shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length wave whose frequency glides linearly
// from freq to endFreq.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a constant-pitch oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewGlide(freq, freq, duration, wave, rate)
}

// NewGlide creates an oscillator sweeping from one frequency to another.
func NewGlide(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		endFreq:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(from*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with an attack ramp at the start and a release ramp
// at the end of duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.attackSamples > 0 && e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. Zero or negative volume is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(from, to float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewGlide(from, to, d, wave, rate)
	return NewEnvelope(osc, d, 5*time.Millisecond, d/2, rate)
}

// flapSound is a short upward chirp.
func flapSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(tone(420, 880, 90*time.Millisecond, WaveSquare, rate), 0.25)
}

// scoreSound is a two-note chime.
func scoreSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(beep.Seq(
		tone(987.77, 987.77, 70*time.Millisecond, WaveSquare, rate),
		tone(1318.51, 1318.51, 160*time.Millisecond, WaveSquare, rate),
	), 0.25)
}

// hitSound is a noise burst over a low thump.
func hitSound(rate beep.SampleRate) beep.Streamer {
	d := 250 * time.Millisecond
	return newVolume(beep.Mix(
		newVolume(tone(0, 0, d, WaveNoise, rate), 0.5),
		newVolume(tone(140, 60, d, WaveSine, rate), 0.8),
	), 0.5)
}

// gameOverSound is a descending three-note phrase.
func gameOverSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(beep.Seq(
		tone(523.25, 523.25, 180*time.Millisecond, WaveSaw, rate),
		tone(392, 392, 180*time.Millisecond, WaveSaw, rate),
		tone(261.63, 196, 420*time.Millisecond, WaveSaw, rate),
	), 0.3)
}

// CueStreamer returns a fresh streamer for a sound cue, or nil for an
// unknown cue.
func CueStreamer(cue game.Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case game.CueFlap:
		return flapSound(rate)
	case game.CueScore:
		return scoreSound(rate)
	case game.CueHit:
		return hitSound(rate)
	case game.CueGameOver:
		return gameOverSound(rate)
	default:
		return nil
	}
}
