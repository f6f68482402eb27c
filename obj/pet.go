package obj

import (
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gridpets/common"
	"github.com/milk9111/gridpets/component"
)

// Animation names every character manifest must provide.
const (
	AnimIdle   = "Idle"
	AnimWalk   = "Walk"
	AnimPickup = "Pickup"
)

type petState int

const (
	stateIdle petState = iota
	stateWalking
	statePickedUp
)

func (s petState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateWalking:
		return "walking"
	case statePickedUp:
		return "picked-up"
	}
	return "unknown"
}

// Pet is one wandering character on the grid. It alternates between idle and
// short multi-step walks, and can be lifted off the grid by the cursor and
// dropped back onto it. All timing is in game ticks; Update must be called
// once per tick.
type Pet struct {
	Character string

	sprite *component.AnimatedSprite
	grid   Grid
	policy DirectionPolicy
	rng    *rand.Rand

	row, col int
	x, y     float64

	// previous continuous position, present only mid-move for interpolation
	prevX, prevY float64
	hasPrev      bool

	state    petState
	dir      Direction
	repeats  int
	timer    int
	duration int
}

// NewPet places a pet on the given cell and immediately rolls its first
// behavior.
func NewPet(character string, sprite *component.AnimatedSprite, g Grid, row, col int, policy DirectionPolicy, rng *rand.Rand) *Pet {
	row, col = g.Clamp(row, col)
	p := &Pet{
		Character: character,
		sprite:    sprite,
		grid:      g,
		policy:    policy,
		rng:       rng,
		row:       row,
		col:       col,
	}
	p.x, p.y = g.CellCenter(row, col)
	p.nextState()
	return p
}

// nextState rolls the next autonomous behavior: a 1-3 step walk in a single
// direction, or an idle cycle. Runs at construction, whenever the current
// action's duration expires, and after Place.
func (p *Pet) nextState() {
	p.hasPrev = false
	p.timer = 0
	if p.rng.Float64() < 0.5 {
		p.state = stateWalking
		p.repeats = 1 + p.rng.Intn(3)
		p.dir = p.policy.Choose(p.rng, p.grid, p.row, p.col)
		p.move()
		return
	}
	p.state = stateIdle
	p.play(AnimIdle)
	p.duration = p.animTotal()
}

// move steps one cell in the chosen direction and starts one walk cycle
// toward it.
func (p *Pet) move() {
	p.play(AnimWalk)
	if err := p.sprite.SetRow(int(p.dir)); err != nil {
		log.Printf("obj: pet %s: %v", p.Character, err)
	}
	p.duration = p.animTotal()
	p.timer = 0
	p.prevX, p.prevY = p.x, p.y
	p.hasPrev = true
	dr, dc := p.dir.Delta()
	p.row, p.col = p.grid.Clamp(p.row+dr, p.col+dc)
	p.x, p.y = p.grid.CellCenter(p.row, p.col)
}

// Update advances the pet by one tick.
func (p *Pet) Update() {
	p.timer++
	p.sprite.Update()

	if p.state == statePickedUp {
		// loop the reaction animation for as long as the pet is held
		if p.sprite.EndReached() {
			p.play(AnimPickup)
		}
		return
	}

	// chain the remaining steps of a multi-step walk before the duration
	// check, since both expire on the same tick
	if p.state == stateWalking && p.sprite.EndReached() && p.repeats > 1 {
		p.repeats--
		p.move()
		return
	}

	if p.timer >= p.duration {
		p.nextState()
	}
}

// Draw renders the pet, interpolating between the previous and current cell
// centers while a move is in progress.
func (p *Pet) Draw(screen *ebiten.Image) {
	x, y := p.x, p.y
	if p.hasPrev && p.duration > 0 {
		t := float64(p.timer) / float64(p.duration)
		if t > 1 {
			t = 1
		}
		x = common.Lerp(p.prevX, p.x, t)
		y = common.Lerp(p.prevY, p.y, t)
	}
	p.sprite.Draw(screen, x, y)
}

// PickUp lifts the pet off the grid. While held, the pet loops its reaction
// animation and its position is driven by SetScreenPosition.
func (p *Pet) PickUp() {
	p.state = statePickedUp
	p.hasPrev = false
	p.play(AnimPickup)
	if err := p.sprite.SetRow(0); err != nil {
		log.Printf("obj: pet %s: %v", p.Character, err)
	}
	p.timer = 0
	p.duration = p.animTotal()
}

// SetScreenPosition writes the continuous position directly, bypassing the
// grid. Used by drag input while the pet is held.
func (p *Pet) SetScreenPosition(x, y float64) {
	p.x, p.y = x, y
}

// Place snaps the pet onto a cell (clamped to the grid) and resumes
// autonomous behavior.
func (p *Pet) Place(row, col int) {
	p.row, p.col = p.grid.Clamp(row, col)
	p.x, p.y = p.grid.CellCenter(p.row, p.col)
	p.nextState()
}

// Resize hands the pet a rebuilt grid and pulls it back inside if the grid
// shrank.
func (p *Pet) Resize(g Grid) {
	p.grid = g
	p.row, p.col = g.Clamp(p.row, p.col)
	if p.state != statePickedUp {
		p.hasPrev = false
		p.x, p.y = g.CellCenter(p.row, p.col)
	}
}

// SetDirectionPolicy swaps how the pet chooses walk directions. Takes effect
// on the next walk roll.
func (p *Pet) SetDirectionPolicy(policy DirectionPolicy) {
	p.policy = policy
}

// Cell returns the pet's grid cell.
func (p *Pet) Cell() (row, col int) { return p.row, p.col }

// Position returns the pet's continuous position.
func (p *Pet) Position() (x, y float64) { return p.x, p.y }

// PickedUp reports whether the pet is currently held.
func (p *Pet) PickedUp() bool { return p.state == statePickedUp }

// StateName returns the behavior state for debug overlays.
func (p *Pet) StateName() string { return p.state.String() }

func (p *Pet) play(name string) {
	if err := p.sprite.Play(name); err != nil {
		log.Printf("obj: pet %s: %v", p.Character, err)
	}
}

func (p *Pet) animTotal() int {
	if a := p.sprite.Current(); a != nil {
		return a.TotalDuration()
	}
	return 1
}
