package component

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// testAnim builds an animation with the given rows and durations but no frame
// images, which is all the playback logic needs.
func testAnim(name string, rows int, durations ...int) *Animation {
	return &Animation{
		Name:      name,
		FrameW:    32,
		FrameH:    32,
		Durations: durations,
		Frames:    make([][]*ebiten.Image, rows),
	}
}

func testSet() map[string]*Animation {
	return map[string]*Animation{
		"Idle":   testAnim("Idle", 8, 24, 24),
		"Walk":   testAnim("Walk", 8, 10, 10, 10),
		"Pickup": testAnim("Pickup", 1, 8, 8),
	}
}

func TestAnimationTotalDuration(t *testing.T) {
	cases := []struct {
		name      string
		durations []int
		want      int
	}{
		{"three_frames", []int{10, 10, 10}, 30},
		{"uneven", []int{5, 12, 3}, 20},
		{"single", []int{7}, 7},
		{"empty", nil, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := testAnim("x", 1, c.durations...)
			if got := a.TotalDuration(); got != c.want {
				t.Fatalf("TotalDuration() = %d, want %d", got, c.want)
			}
		})
	}
}

func TestPlayUnknownAnimation(t *testing.T) {
	s := NewAnimatedSprite(testSet())
	err := s.Play("Fly")
	if !errors.Is(err, ErrUnknownAnimation) {
		t.Fatalf("Play(Fly) error = %v, want ErrUnknownAnimation", err)
	}
	if s.Current() != nil {
		t.Fatalf("failed Play should not select an animation")
	}
	if !s.Paused() {
		t.Fatalf("failed Play should leave the sprite paused")
	}
}

func TestPlayResetsRowWhenOutOfRange(t *testing.T) {
	s := NewAnimatedSprite(testSet())
	if err := s.Play("Walk"); err != nil {
		t.Fatalf("Play(Walk): %v", err)
	}
	if err := s.SetRow(5); err != nil {
		t.Fatalf("SetRow(5): %v", err)
	}

	// Pickup only has one row, so row 5 must reset to 0.
	if err := s.Play("Pickup"); err != nil {
		t.Fatalf("Play(Pickup): %v", err)
	}
	if s.Row() != 0 {
		t.Fatalf("row = %d after switching to a 1-row animation, want 0", s.Row())
	}

	// Switching back keeps a row that's still valid.
	if err := s.Play("Walk"); err != nil {
		t.Fatalf("Play(Walk): %v", err)
	}
	if err := s.SetRow(3); err != nil {
		t.Fatalf("SetRow(3): %v", err)
	}
	if err := s.Play("Idle"); err != nil {
		t.Fatalf("Play(Idle): %v", err)
	}
	if s.Row() != 3 {
		t.Fatalf("row = %d after switching to an 8-row animation, want 3", s.Row())
	}
}

func TestSetRow(t *testing.T) {
	cases := []struct {
		name    string
		row     int
		wantErr bool
	}{
		{"first", 0, false},
		{"last", 7, false},
		{"past_end", 8, true},
		{"negative", -1, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewAnimatedSprite(testSet())
			if err := s.Play("Walk"); err != nil {
				t.Fatalf("Play(Walk): %v", err)
			}
			err := s.SetRow(c.row)
			if c.wantErr {
				if !errors.Is(err, ErrRowOutOfRange) {
					t.Fatalf("SetRow(%d) error = %v, want ErrRowOutOfRange", c.row, err)
				}
				if s.Row() != 0 {
					t.Fatalf("failed SetRow changed row to %d", s.Row())
				}
				return
			}
			if err != nil {
				t.Fatalf("SetRow(%d): %v", c.row, err)
			}
			if s.Row() != c.row {
				t.Fatalf("row = %d, want %d", s.Row(), c.row)
			}
		})
	}
}

func TestSetRowWithoutPlay(t *testing.T) {
	s := NewAnimatedSprite(testSet())
	if err := s.SetRow(0); !errors.Is(err, ErrRowOutOfRange) {
		t.Fatalf("SetRow before Play error = %v, want ErrRowOutOfRange", err)
	}
}

func TestUpdateWhilePaused(t *testing.T) {
	s := NewAnimatedSprite(testSet())
	if err := s.Play("Walk"); err != nil {
		t.Fatalf("Play(Walk): %v", err)
	}
	s.Stop()
	for i := 0; i < 50; i++ {
		s.Update()
	}
	if s.Frame() != 0 || s.Row() != 0 {
		t.Fatalf("paused Update changed state: frame=%d row=%d", s.Frame(), s.Row())
	}
}

func TestPlaybackHoldsOnLastFrame(t *testing.T) {
	s := NewAnimatedSprite(testSet())
	if err := s.Play("Walk"); err != nil { // durations 10,10,10
		t.Fatalf("Play(Walk): %v", err)
	}

	steps := []struct {
		ticks     int // total ticks since Play
		wantFrame int
		wantEnded bool
	}{
		{1, 0, false},
		{9, 0, false},
		{10, 1, false},
		{19, 1, false},
		{20, 2, false},
		{29, 2, false},
		{31, 2, true},
		{35, 2, true},
	}

	ticked := 0
	for _, st := range steps {
		for ; ticked < st.ticks; ticked++ {
			s.Update()
		}
		if s.Frame() != st.wantFrame {
			t.Fatalf("after %d ticks frame = %d, want %d", st.ticks, s.Frame(), st.wantFrame)
		}
		if s.EndReached() != st.wantEnded {
			t.Fatalf("after %d ticks EndReached() = %v, want %v", st.ticks, s.EndReached(), st.wantEnded)
		}
	}
}

func TestEndReachedOnlyOnLastFrame(t *testing.T) {
	s := NewAnimatedSprite(testSet())
	if err := s.Play("Idle"); err != nil { // durations 24,24
		t.Fatalf("Play(Idle): %v", err)
	}
	for tick := 1; tick <= 50; tick++ {
		s.Update()
		want := tick >= 48 // total duration
		if s.EndReached() != want {
			t.Fatalf("at tick %d EndReached() = %v, want %v", tick, s.EndReached(), want)
		}
	}
}
