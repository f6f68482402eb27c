package component

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// ErrUnknownAnimation is returned by Play for a name that isn't in the set.
	ErrUnknownAnimation = errors.New("unknown animation")
	// ErrRowOutOfRange is returned by SetRow for a row the current animation doesn't have.
	ErrRowOutOfRange = errors.New("row out of range")
)

// Animation is one named sprite-sheet animation for a character: a row-major
// grid of frames plus per-frame tick durations. Rows are facing directions,
// columns are the frames of one cycle. Immutable once loaded; every sprite of
// the same character shares the same Animation values.
type Animation struct {
	Name      string
	FrameW    int
	FrameH    int
	Durations []int
	Frames    [][]*ebiten.Image // [row][frame]
}

// Rows returns the number of facing-direction rows.
func (a *Animation) Rows() int { return len(a.Frames) }

// FrameCount returns the number of frames in one row.
func (a *Animation) FrameCount() int { return len(a.Durations) }

// TotalDuration returns the sum of all frame durations in ticks.
func (a *Animation) TotalDuration() int {
	total := 0
	for _, d := range a.Durations {
		total += d
	}
	return total
}

// AnimatedSprite plays one animation out of a character's named set. It starts
// paused; Play selects an animation and starts it from frame 0. Playback holds
// on the final frame instead of looping, so the owner decides what happens
// once EndReached reports true.
type AnimatedSprite struct {
	set       map[string]*Animation
	current   *Animation
	row       int
	frame     int
	remaining int
	paused    bool
}

func NewAnimatedSprite(set map[string]*Animation) *AnimatedSprite {
	return &AnimatedSprite{set: set, paused: true}
}

// Animation looks up a descriptor by name without changing playback state.
func (s *AnimatedSprite) Animation(name string) (*Animation, bool) {
	a, ok := s.set[name]
	return a, ok
}

// Play switches to the named animation and restarts it from frame 0. The
// facing row is kept unless the new animation doesn't have it, in which case
// the row resets to 0. On an unknown name the sprite is left untouched.
func (s *AnimatedSprite) Play(name string) error {
	a, ok := s.set[name]
	if !ok || a.FrameCount() == 0 {
		return fmt.Errorf("component: play %q: %w", name, ErrUnknownAnimation)
	}
	s.current = a
	if s.row >= a.Rows() {
		s.row = 0
	}
	s.frame = 0
	s.remaining = a.Durations[0]
	s.paused = false
	return nil
}

// SetRow changes the facing row of the current animation. The row is left
// unchanged on error.
func (s *AnimatedSprite) SetRow(row int) error {
	if s.current == nil || row < 0 || row >= s.current.Rows() {
		return fmt.Errorf("component: set row %d: %w", row, ErrRowOutOfRange)
	}
	s.row = row
	return nil
}

// Stop pauses playback. Play resumes it.
func (s *AnimatedSprite) Stop() { s.paused = true }

func (s *AnimatedSprite) Paused() bool { return s.paused }

func (s *AnimatedSprite) Row() int { return s.row }

func (s *AnimatedSprite) Frame() int { return s.frame }

// Current returns the animation selected by the last Play, or nil.
func (s *AnimatedSprite) Current() *Animation { return s.current }

// Update advances playback by one tick. Call once per game update.
func (s *AnimatedSprite) Update() {
	if s.paused || s.current == nil {
		return
	}
	s.remaining--
	if s.EndReached() {
		// hold on the last frame
		return
	}
	if s.remaining <= 0 {
		s.frame++
		s.remaining = s.current.Durations[s.frame]
	}
}

// EndReached reports whether the current frame is the last one and its
// duration has run out.
func (s *AnimatedSprite) EndReached() bool {
	return s.current != nil && s.frame == s.current.FrameCount()-1 && s.remaining <= 0
}

// Draw renders the current frame centered at (x, y).
func (s *AnimatedSprite) Draw(screen *ebiten.Image, x, y float64) {
	if s.current == nil || s.row >= len(s.current.Frames) {
		return
	}
	row := s.current.Frames[s.row]
	if s.frame >= len(row) || row[s.frame] == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-float64(s.current.FrameW)/2, y-float64(s.current.FrameH)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(row[s.frame], op)
}
