// Package game implements the YamaBird game loop: the player falls under
// gravity, flaps upward on input, and scores by passing through the gaps
// of scrolling obstacle pairs. It owns the session's physics world, the
// obstacle spawner, the phase state machine and the death sequence.
//
// Presentation and persistence are collaborators injected through Options;
// the package has no terminal or storage dependencies.
package game

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/yamabird/internal/config"
	"github.com/vovakirdan/yamabird/internal/physics"
)

// Phase is the game's state machine phase.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseDying
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseDying:
		return "Dying"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// next lists the only phase each phase may advance to. Restart goes back
// to Idle through a fresh session rather than a transition.
var next = map[Phase]Phase{
	PhaseIdle:    PhaseRunning,
	PhaseRunning: PhaseDying,
	PhaseDying:   PhaseGameOver,
}

// Options configures a Game.
type Options struct {
	Config     config.Config
	Scene      Scene          // nil uses NopScene
	HighScores HighScoreStore // nil uses an in-memory store
	Runs       RunRecorder    // optional
	Logger     *log.Logger    // nil discards logs
	Seed       int64          // RNG seed for obstacle placement
}

// State is a snapshot of the game for callers outside the loop.
type State struct {
	Phase          Phase
	Score          int
	HighScore      int
	PlayerPosition physics.Vec2
	PlayerVelocity physics.Vec2
	Obstacles      int
	Elapsed        time.Duration
}

// Game is one player's game. It is driven from a single goroutine: Step,
// Flap, Tap, RestartHit and Reset must not be called concurrently.
type Game struct {
	cfg        config.Config
	scene      Scene
	highScores HighScoreStore
	runs       RunRecorder
	log        *log.Logger
	seed       int64

	// Session state, rebuilt on restart.
	generation    uint64
	world         *physics.World
	sched         *Scheduler
	spawner       *Spawner
	pairs         *physics.PairTable
	player        *physics.Body
	phase         Phase
	score         int
	highScore     int
	tilt          float64
	groundOffset  float64
	groundMoving  bool
	spawnTimer    *Timer
	gameOverTimer *Timer
	death         *deathAnimation
}

// New creates a game in the Idle phase. An invalid configuration is a
// programming error and panics.
func New(opts Options) *Game {
	opts.Config.MustValidate()

	g := &Game{
		cfg:        opts.Config,
		scene:      opts.Scene,
		highScores: opts.HighScores,
		runs:       opts.Runs,
		log:        opts.Logger,
		seed:       opts.Seed,
	}
	if g.scene == nil {
		g.scene = NopScene{}
	}
	if g.highScores == nil {
		g.highScores = &MemoryHighScores{}
	}
	if g.log == nil {
		g.log = log.New(io.Discard)
	}

	g.newSession()
	return g
}

// newSession builds the world, player, ground and labels for a fresh
// Idle session and loads the high score.
func (g *Game) newSession() {
	g.generation++
	pf := g.cfg.Playfield

	g.world = physics.NewWorld(physics.WorldConfig{
		Gravity:  g.cfg.Physics.ScaledGravity(),
		Width:    pf.Width,
		Height:   pf.Height,
		CellSize: g.cfg.Physics.CellSize,
	})
	g.world.Observe(g.scene)
	g.sched = NewScheduler()
	g.spawner = NewSpawner(g.cfg.Obstacles, g.seed+int64(g.generation))

	g.pairs = physics.NewPairTable()
	g.pairs.On(physics.CategoryPlayer, physics.CategoryGround, g.onFatalContact)
	g.pairs.On(physics.CategoryPlayer, physics.CategoryObstacle, g.onFatalContact)
	g.pairs.On(physics.CategoryPlayer, physics.CategoryScoreZone, g.onScoreContact)

	g.phase = PhaseIdle
	g.score = 0
	g.tilt = 0
	g.groundOffset = 0
	g.groundMoving = false
	g.spawnTimer = nil
	g.gameOverTimer = nil
	g.death = nil

	g.world.AddBody(physics.NewBody(physics.BodyDef{
		Position:    physics.V(pf.Width/2, pf.GroundHeight/2),
		HalfExtents: physics.V(pf.Width/2, pf.GroundHeight/2),
		Category:    physics.CategoryGround,
	}))

	g.player = physics.NewBody(physics.BodyDef{
		Position:        physics.V(pf.Width/2, pf.Height/2),
		HalfExtents:     physics.V(g.cfg.Player.Width/2, g.cfg.Player.Height/2),
		Dynamic:         true,
		Category:        physics.CategoryPlayer,
		CollidesWith:    physics.Categories(physics.CategoryGround),
		ContactTestWith: physics.Categories(physics.CategoryObstacle, physics.CategoryGround),
	})
	g.world.AddBody(g.player)

	hs, err := g.highScores.LoadHighScore()
	if err != nil {
		g.log.Warn("could not load high score", "error", err)
		hs = 0
	}
	g.highScore = max(hs, 0)

	g.scene.SetLabelText(LabelScore, scoreText(0))
	g.scene.SetLabelText(LabelHighScore, highScoreText(g.highScore))
	g.scene.SetLabelText(LabelStart, "Tap to Start")

	g.log.Debug("session started", "generation", g.generation, "high_score", g.highScore)
}

// teardown invalidates the current session: every pending timer is
// cancelled and the scene is cleared.
func (g *Game) teardown() {
	g.sched.Stop()
	g.scene.Clear()
}

// transition moves to the next phase. Any other transition is a broken
// invariant and panics.
func (g *Game) transition(to Phase) {
	if want, ok := next[g.phase]; !ok || want != to {
		panic(fmt.Sprintf("game: invalid phase transition %s -> %s", g.phase, to))
	}
	g.log.Debug("phase", "from", g.phase, "to", to, "score", g.score)
	g.phase = to
}

// Flap applies the player's single action. In Idle it starts the run; in
// Running it resets vertical velocity and applies the flap impulse, so
// jumps are crisp rather than additive. Ignored while dying or game over.
func (g *Game) Flap() {
	switch g.phase {
	case PhaseIdle:
		g.start()
	case PhaseRunning:
	default:
		return
	}

	g.scene.PlaySound(CueFlap)
	g.player.Velocity = physics.Vec2{}
	g.player.ApplyImpulse(physics.V(0, g.cfg.Physics.FlapImpulse))
}

// start enters Running: gravity on, spawning and ground scroll started.
func (g *Game) start() {
	g.transition(PhaseRunning)
	g.player.SetAffectedByGravity(true)
	g.scene.RemoveLabel(LabelStart)
	g.groundMoving = true

	pf := g.cfg.Playfield
	g.spawner.Inject(g.world, pf.Width, pf.Height)
	g.spawnTimer = g.sched.Every(g.cfg.Obstacles.SpawnPeriod, func() {
		if g.phase == PhaseRunning {
			g.spawner.Inject(g.world, pf.Width, pf.Height)
		}
	})
}

// RestartHit handles activation of the restart control. It is only
// accepted in GameOver and starts a fresh Idle session.
func (g *Game) RestartHit() {
	if g.phase != PhaseGameOver {
		return
	}
	g.log.Info("restart", "score", g.score, "high_score", g.highScore)
	g.teardown()
	g.newSession()
}

// Reset discards the current session in any phase and starts a fresh one.
// Pending callbacks of the old session never run.
func (g *Game) Reset() {
	g.teardown()
	g.newSession()
}

// RestartControl returns the restart control's bounds in world space.
func (g *Game) RestartControl() physics.AABB {
	pf, d := g.cfg.Playfield, g.cfg.Death
	center := physics.V(pf.Width/2, pf.Height/2-d.RestartOffsetY)
	return physics.BoxAt(center, physics.V(d.RestartWidth/2, d.RestartHeight/2))
}

// Tap resolves a tap at a world-space location: inside the restart control
// during GameOver it restarts, otherwise it flaps. Taps that resolve to
// nothing are ignored.
func (g *Game) Tap(p physics.Vec2) {
	if g.phase == PhaseGameOver {
		if g.RestartControl().Contains(p) {
			g.RestartHit()
		}
		return
	}
	g.Flap()
}

// maxStep is the longest slice of time simulated at once. Longer Step
// calls are split so periodic spawns and physics interleave the same way
// they do frame by frame.
const maxStep = 20 * time.Millisecond

// Step advances the session by dt: timers first, then physics and contact
// handling while Running, or the death animation afterwards.
func (g *Game) Step(dt time.Duration) {
	gen := g.generation
	for dt > 0 && gen == g.generation {
		step := min(dt, maxStep)
		dt -= step
		g.step(step)
	}
}

func (g *Game) step(dt time.Duration) {
	gen := g.generation
	g.sched.Advance(dt)
	if gen != g.generation {
		return
	}

	switch g.phase {
	case PhaseRunning:
		contacts := g.world.Step(dt.Seconds())
		for _, c := range contacts {
			g.pairs.Dispatch(c)
		}
		if g.phase != PhaseRunning {
			g.advanceDeath(0)
			return
		}
		g.spawner.Retire(g.world)
		g.updateTilt()
		g.scrollGround(dt)
	case PhaseDying, PhaseGameOver:
		g.advanceDeath(dt)
	}
}

// updateTilt eases the player's rotation toward a target proportional to
// its vertical velocity.
func (g *Game) updateTilt() {
	pc := g.cfg.Player
	target := math.Max(math.Min(g.player.Velocity.Y/pc.TiltDivisor, pc.MaxTilt), -pc.MaxTilt)
	g.tilt = g.tilt*(1-pc.TiltSmoothing) + target*pc.TiltSmoothing
	g.scene.SetRotation(g.player.ID(), g.tilt)
}

func (g *Game) scrollGround(dt time.Duration) {
	if !g.groundMoving {
		return
	}
	g.groundOffset += g.cfg.Playfield.GroundSpeed * dt.Seconds()
	g.scene.ScrollGround(g.groundOffset)
}

// onScoreContact removes the score zone and scores once per zone.
func (g *Game) onScoreContact(c physics.Contact) {
	if g.phase != PhaseRunning {
		return
	}
	zone := c.Select(physics.CategoryScoreZone)
	if zone == nil || !g.world.RemoveBody(zone.ID()) {
		return
	}
	g.IncreaseScore()
}

// IncreaseScore adds one point. Points are only awarded while Running.
func (g *Game) IncreaseScore() {
	if g.phase != PhaseRunning {
		return
	}
	g.score++
	g.scene.SetLabelText(LabelScore, scoreText(g.score))
	g.scene.PlaySound(CueScore)
}

// onFatalContact ends the run on the first contact with ground or an
// obstacle. Clearing the player's categories makes every later contact in
// the same step miss the pair table.
func (g *Game) onFatalContact(physics.Contact) {
	if g.phase != PhaseRunning {
		return
	}
	g.transition(PhaseDying)

	g.player.Velocity = physics.Vec2{}
	g.player.ClearCategories()
	g.player.SetAffectedByGravity(false)
	g.player.SetDynamic(false)

	g.spawnTimer.Cancel()
	g.spawner.Halt()
	g.groundMoving = false

	if g.score > g.highScore {
		g.highScore = g.score
		if err := g.highScores.SaveHighScore(g.highScore); err != nil {
			g.log.Warn("could not save high score", "score", g.highScore, "error", err)
		}
		g.scene.SetLabelText(LabelHighScore, highScoreText(g.highScore))
	}

	g.scene.PlaySound(CueHit)
	g.sched.After(g.cfg.Death.GameOverSound, func() {
		g.scene.PlaySound(CueGameOver)
	})

	g.death = newDeathAnimation(g.player.Position.Y, -g.player.Size().Y, g.tilt, g.cfg.Death)

	gen := g.generation
	g.gameOverTimer = g.sched.After(g.cfg.Death.GameOverDelay, func() {
		g.showGameOver(gen)
	})
	g.log.Info("player died", "score", g.score, "high_score", g.highScore)
}

// showGameOver presents the game over overlay. It belongs to the session
// that scheduled it and does nothing for any other.
func (g *Game) showGameOver(gen uint64) {
	if gen != g.generation || g.phase != PhaseDying {
		return
	}
	g.transition(PhaseGameOver)
	g.scene.PresentOverlay(g.score, g.highScore, g.RestartControl())
	if g.runs != nil {
		if err := g.runs.RecordRun(g.score); err != nil {
			g.log.Warn("could not record run", "score", g.score, "error", err)
		}
	}
}

// advanceDeath drives the scripted fall; the player is removed from the
// world once it has dropped below the playfield.
func (g *Game) advanceDeath(dt time.Duration) {
	if g.death == nil {
		return
	}
	id := g.player.ID()
	if _, ok := g.world.Body(id); !ok {
		return
	}
	y, rot, done := g.death.advance(dt)
	g.world.MoveBody(id, physics.V(g.player.Position.X, y))
	g.scene.SetRotation(id, rot)
	if done {
		g.world.RemoveBody(id)
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// HighScore returns the best score known to this game.
func (g *Game) HighScore() int { return g.highScore }

// Player returns the player body of the current session.
func (g *Game) Player() *physics.Body { return g.player }

// World returns the physics world of the current session.
func (g *Game) World() *physics.World { return g.world }

// Config returns the game's configuration.
func (g *Game) Config() config.Config { return g.cfg }

// State returns a snapshot of the current session.
func (g *Game) State() State {
	return State{
		Phase:          g.phase,
		Score:          g.score,
		HighScore:      g.highScore,
		PlayerPosition: g.player.Position,
		PlayerVelocity: g.player.Velocity,
		Obstacles:      len(g.spawner.Live()),
		Elapsed:        g.sched.Now(),
	}
}

func scoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

func highScoreText(score int) string {
	return fmt.Sprintf("High Score: %d", score)
}
