package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input merges mouse and touch into a single pointer. A touch takes over the
// pointer for its whole press so a finger drag behaves exactly like a mouse
// drag.
type Input struct {
	// CursorX/Y is the pointer position in screen pixels.
	CursorX float64
	CursorY float64
	// JustPressed is true on the frame the pointer went down.
	JustPressed bool
	// Held is true while the pointer is down.
	Held bool
	// JustReleased is true on the frame the pointer went up.
	JustReleased bool

	touchID     ebiten.TouchID
	touchActive bool
	touchIDs    []ebiten.TouchID
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the pointer. Call once per game update.
func (i *Input) Update() {
	i.JustPressed = false
	i.JustReleased = false

	if i.touchActive {
		if inpututil.IsTouchJustReleased(i.touchID) {
			i.touchActive = false
			i.Held = false
			i.JustReleased = true
			return
		}
		x, y := ebiten.TouchPosition(i.touchID)
		i.CursorX, i.CursorY = float64(x), float64(y)
		i.Held = true
		return
	}

	i.touchIDs = inpututil.AppendJustPressedTouchIDs(i.touchIDs[:0])
	if len(i.touchIDs) > 0 {
		i.touchID = i.touchIDs[0]
		i.touchActive = true
		x, y := ebiten.TouchPosition(i.touchID)
		i.CursorX, i.CursorY = float64(x), float64(y)
		i.JustPressed = true
		i.Held = true
		return
	}

	mx, my := ebiten.CursorPosition()
	i.CursorX, i.CursorY = float64(mx), float64(my)
	i.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	i.Held = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	i.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}
