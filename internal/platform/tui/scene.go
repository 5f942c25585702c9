package tui

import (
	"fmt"
	"math"
	"slices"

	"github.com/vovakirdan/yamabird/internal/core"
	"github.com/vovakirdan/yamabird/internal/game"
	"github.com/vovakirdan/yamabird/internal/physics"
)

// Sounder plays sound cues. audio.Player implements it.
type Sounder interface {
	Play(cue game.Cue) bool
	ToggleMute() bool
}

type overlay struct {
	score     int
	highScore int
	restart   physics.AABB
}

// TermScene is the terminal Scene. It tracks the bodies of the current
// session and draws them into a core.Screen on demand.
type TermScene struct {
	bodies    map[physics.BodyID]*physics.Body
	rotations map[physics.BodyID]float64
	labels    map[game.LabelID]string
	overlay   *overlay
	ground    float64
	sound     Sounder
}

// NewTermScene creates an empty scene. sound may be nil for a silent scene.
func NewTermScene(sound Sounder) *TermScene {
	return &TermScene{
		bodies:    make(map[physics.BodyID]*physics.Body),
		rotations: make(map[physics.BodyID]float64),
		labels:    make(map[game.LabelID]string),
		sound:     sound,
	}
}

var _ game.Scene = (*TermScene)(nil)

func (s *TermScene) BodyAdded(b *physics.Body) { s.bodies[b.ID()] = b }
func (s *TermScene) BodyMoved(*physics.Body) {}

func (s *TermScene) BodyRemoved(id physics.BodyID) {
	delete(s.bodies, id)
	delete(s.rotations, id)
}

func (s *TermScene) SetRotation(id physics.BodyID, radians float64) { s.rotations[id] = radians }
func (s *TermScene) SetLabelText(l game.LabelID, text string) { s.labels[l] = text }
func (s *TermScene) RemoveLabel(l game.LabelID) { delete(s.labels, l) }
func (s *TermScene) ScrollGround(offset float64) { s.ground = offset }

// PlaySound forwards the cue to the sound player.
func (s *TermScene) PlaySound(cue game.Cue) {
	if s.sound != nil {
		s.sound.Play(cue)
	}
}

func (s *TermScene) PresentOverlay(score, highScore int, restart physics.AABB) {
	s.overlay = &overlay{score: score, highScore: highScore, restart: restart}
}

// Clear forgets every body, label and the overlay.
func (s *TermScene) Clear() {
	clear(s.bodies)
	clear(s.rotations)
	clear(s.labels)
	s.overlay = nil
	s.ground = 0
}

// Len returns the number of tracked bodies.
func (s *TermScene) Len() int {
	return len(s.bodies)
}

// Label returns a label's text and whether it is shown.
func (s *TermScene) Label(l game.LabelID) (string, bool) {
	text, ok := s.labels[l]
	return text, ok
}

// RestartCells returns the cells of the restart button, if shown.
func (s *TermScene) RestartCells(vp core.Viewport) (core.Rect, bool) {
	if s.overlay == nil {
		return core.Rect{}, false
	}
	return vp.CellRect(s.overlay.restart), true
}

// Draw rasterizes the scene into the viewport's area of the screen.
func (s *TermScene) Draw(scr *core.Screen, vp core.Viewport) {
	if !vp.Valid() {
		return
	}
	scr.DrawRect(vp.Area, ' ', core.ColorSky)

	ids := make([]physics.BodyID, 0, len(s.bodies))
	for id := range s.bodies {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		b := s.bodies[id]
		switch b.Category() {
		case physics.CategoryGround:
			s.drawGround(scr, vp, b)
		case physics.CategoryObstacle:
			drawPipe(scr, vp, b)
		}
	}
	// Drawn last so the bird stays on top. After death its category is
	// cleared, so it is found by shape instead.
	for _, id := range ids {
		b := s.bodies[id]
		if b.Category() == physics.CategoryPlayer || (b.Category() == physics.CategoryNone && !b.IsDynamic()) {
			drawBird(scr, vp, b, s.rotations[id])
		}
	}

	s.drawLabels(scr, vp)
	if s.overlay != nil {
		s.drawOverlay(scr, vp)
	}
}

func (s *TermScene) drawGround(scr *core.Screen, vp core.Viewport, b *physics.Body) {
	r := vp.CellRect(b.Bounds()).Intersect(vp.Area)
	if r.Empty() {
		return
	}
	scr.DrawRect(r, '▒', core.ColorGround)

	shift := int(s.ground * float64(vp.Area.W) / vp.WorldW)
	for x := r.X; x < r.Right(); x++ {
		ch := '▀'
		if (x+shift)%4 >= 2 {
			ch = '▔'
		}
		scr.Set(x, r.Y, ch, core.ColorGrass)
	}
}

func drawPipe(scr *core.Screen, vp core.Viewport, b *physics.Body) {
	r := vp.CellRect(b.Bounds()).Intersect(vp.Area)
	if r.Empty() {
		return
	}
	scr.DrawRect(r, '█', core.ColorPipe)

	// The cap faces the gap.
	capY := r.Y
	if b.Bounds().Max.Y >= vp.WorldH {
		capY = r.Bottom() - 1
	}
	for x := r.X; x < r.Right(); x++ {
		scr.Set(x, capY, '▓', core.ColorPipeEdge)
	}
}

// beaks holds the beak glyph for each eighth of a turn, starting at
// facing right and going counter-clockwise.
var beaks = [8]struct {
	dx, dy int
	glyph  rune
}{
	{1, 0, '>'},
	{1, -1, '/'},
	{0, -1, '^'},
	{-1, -1, '\\'},
	{-1, 0, '<'},
	{-1, 1, '/'},
	{0, 1, 'v'},
	{1, 1, '\\'},
}

func drawBird(scr *core.Screen, vp core.Viewport, b *physics.Body, rotation float64) {
	r := vp.CellRect(b.Bounds())
	if !r.Intersects(vp.Area) {
		return
	}
	scr.DrawRect(r.Intersect(vp.Area), '█', core.ColorBird)

	turn := math.Mod(rotation, 2*math.Pi)
	if turn < 0 {
		turn += 2 * math.Pi
	}
	octant := int(math.Round(turn/(math.Pi/4))) % 8
	beak := beaks[octant]

	cx, cy := r.Center()
	x, y := cx, cy
	switch {
	case beak.dx > 0:
		x = r.Right()
	case beak.dx < 0:
		x = r.X - 1
	}
	switch {
	case beak.dy > 0:
		y = r.Bottom()
	case beak.dy < 0:
		y = r.Y - 1
	}
	if vp.Area.Contains(x, y) {
		scr.Set(x, y, beak.glyph, core.ColorBeak)
	}
}

func (s *TermScene) drawLabels(scr *core.Screen, vp core.Viewport) {
	a := vp.Area
	if text, ok := s.labels[game.LabelScore]; ok {
		scr.DrawText(a.X+1, a.Y, text, core.ColorText)
	}
	if text, ok := s.labels[game.LabelHighScore]; ok {
		scr.DrawText(a.Right()-len([]rune(text))-1, a.Y, text, core.ColorText)
	}
	if text, ok := s.labels[game.LabelStart]; ok {
		row := a.Y + a.H/3
		scr.DrawText(a.X+(a.W-len([]rune(text)))/2, row, text, core.ColorHighlight)
	}
}

func (s *TermScene) drawOverlay(scr *core.Screen, vp core.Viewport) {
	btn := vp.CellRect(s.overlay.restart)

	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score: %d", s.overlay.score),
		fmt.Sprintf("Best:  %d", s.overlay.highScore),
	}
	w := max(btn.W+4, 21)
	h := btn.H + len(lines) + 3
	a := vp.Area
	// Short terminals would push the title off the top.
	x := core.Clamp(btn.X+btn.W/2-w/2, a.X, max(a.X, a.Right()-w))
	y := core.Clamp(btn.Y-len(lines)-2, a.Y, max(a.Y, a.Bottom()-h))
	panel := core.NewRect(x, y, w, h)
	scr.DrawRect(panel, ' ', core.ColorPanel)
	scr.DrawBox(panel, core.ColorPanel)

	for i, line := range lines {
		c := core.ColorText
		if i == 0 {
			c = core.ColorHighlight
		}
		x := panel.X + (panel.W-len([]rune(line)))/2
		scr.DrawText(x, panel.Y+1+i, line, c)
	}

	scr.DrawRect(btn, '░', core.ColorButton)
	label := "[ Restart ]"
	_, cy := btn.Center()
	scr.DrawText(btn.X+(btn.W-len(label))/2, cy, label, core.ColorHighlight)
}
