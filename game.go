package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"

	"github.com/milk9111/gridpets/obj"
	"github.com/milk9111/gridpets/prefabs"
	"github.com/milk9111/gridpets/render"
)

type Game struct {
	frames int
	debug  bool
	paused bool

	cfg    *prefabs.Config
	grid   obj.Grid
	width  int
	height int

	input *Input
	pets  []*obj.Pet
	held  *obj.Pet

	rng        *rand.Rand
	policy     obj.DirectionPolicy
	policyName string

	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher
}

func NewGame(cfg *prefabs.Config, debug bool, seed int64, width, height int) (*Game, error) {
	if seed == 0 {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		debug:  debug,
		cfg:    cfg,
		width:  width,
		height: height,
		grid:   obj.NewGrid(width, height, cfg.CellSize),
		input:  NewInput(),
		rng:    rand.New(rand.NewSource(seed)),
	}

	policy, err := buildPolicy(cfg)
	if err != nil {
		return nil, err
	}
	g.policy = policy
	g.policyName = cfg.Policy

	lib := render.NewCharacterLibrary()
	for _, spec := range cfg.Pets {
		for i := 0; i < spec.Count; i++ {
			sprite, err := lib.Sprite(spec.Character)
			if err != nil {
				return nil, err
			}
			row := g.rng.Intn(g.grid.Rows)
			col := g.rng.Intn(g.grid.Cols)
			g.pets = append(g.pets, obj.NewPet(spec.Character, sprite, g.grid, row, col, g.policy, g.rng))
		}
	}

	g.pauseUI = NewPauseUI(g)

	if debug {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("config watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

func buildPolicy(cfg *prefabs.Config) (obj.DirectionPolicy, error) {
	switch cfg.Policy {
	case prefabs.PolicyUniform:
		return obj.UniformPolicy{}, nil
	case prefabs.PolicyEdge:
		return obj.EdgePolicy{Margin: cfg.EdgeMargin}, nil
	case prefabs.PolicyScript:
		src, err := prefabs.LoadScript(cfg.Script)
		if err != nil {
			return nil, fmt.Errorf("load direction script %s: %w", cfg.Script, err)
		}
		return obj.NewScriptPolicy(src, obj.EdgePolicy{Margin: cfg.EdgeMargin})
	}
	return nil, fmt.Errorf("unknown direction policy %q", cfg.Policy)
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.drainWatcher()
	g.input.Update()
	g.handlePointer()

	for _, p := range g.pets {
		p.Update()
	}
	return nil
}

// handlePointer routes pointer presses to pick-up, moves to drag, and
// releases to drop.
func (g *Game) handlePointer() {
	if g.input.JustPressed && g.held == nil {
		row, col := g.grid.CellAt(g.input.CursorX, g.input.CursorY)
		g.held = g.petOn(row, col)
		if g.held != nil {
			g.held.PickUp()
			g.held.SetScreenPosition(g.input.CursorX, g.input.CursorY)
		}
		return
	}

	if g.held == nil {
		return
	}

	if g.input.Held {
		g.held.SetScreenPosition(g.input.CursorX, g.input.CursorY)
		return
	}

	// released (or the press was lost, e.g. a canceled touch)
	row, col := g.grid.CellAt(g.input.CursorX, g.input.CursorY)
	g.held.Place(row, col)
	g.held = nil
}

// petOn returns the topmost pet on the cell, or nil.
func (g *Game) petOn(row, col int) *obj.Pet {
	for i := len(g.pets) - 1; i >= 0; i-- {
		pRow, pCol := g.pets[i].Cell()
		if pRow == row && pCol == col {
			return g.pets[i]
		}
	}
	return nil
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	changed := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("config changed: %s", name)
			changed = true
		case err := <-g.watcher.Errors:
			if err != nil {
				log.Printf("config watcher: %v", err)
			}
		default:
			if changed {
				g.reloadConfig()
			}
			return
		}
	}
}

// reloadConfig re-applies the policy settings from a changed config. The pet
// roster and seed only apply at startup.
func (g *Game) reloadConfig() {
	cfg, err := prefabs.LoadConfig()
	if err != nil {
		log.Printf("config reload: %v", err)
		return
	}
	policy, err := buildPolicy(cfg)
	if err != nil {
		log.Printf("config reload: %v", err)
		return
	}
	g.cfg = cfg
	g.setPolicy(cfg.Policy, policy)
	if cfg.CellSize != g.grid.CellSize {
		g.resize(g.width, g.height)
	}
}

func (g *Game) setPolicy(name string, policy obj.DirectionPolicy) {
	g.policy = policy
	g.policyName = name
	for _, p := range g.pets {
		p.SetDirectionPolicy(policy)
	}
}

// cyclePolicy steps uniform -> edge -> script -> uniform, used by the pause
// menu. A script that fails to load keeps the current policy.
func (g *Game) cyclePolicy() {
	names := []string{prefabs.PolicyUniform, prefabs.PolicyEdge, prefabs.PolicyScript}
	next := names[0]
	for i, n := range names {
		if n == g.policyName {
			next = names[(i+1)%len(names)]
			break
		}
	}
	cfg := *g.cfg
	cfg.Policy = next
	policy, err := buildPolicy(&cfg)
	if err != nil {
		log.Printf("switch policy to %s: %v", next, err)
		return
	}
	g.cfg.Policy = next
	g.setPolicy(next, policy)
}

func (g *Game) resize(width, height int) {
	g.width = width
	g.height = height
	g.grid = obj.NewGrid(width, height, g.cfg.CellSize)
	for _, p := range g.pets {
		p.Resize(g.grid)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)
	g.grid.Draw(screen, colornames.Slategray)

	// held pet draws last so it floats above the others
	for _, p := range g.pets {
		if p != g.held {
			p.Draw(screen)
		}
	}
	if g.held != nil {
		g.held.Draw(screen)
	}

	if g.debug {
		msg := fmt.Sprintf("FPS: %.2f  TPS: %.2f  grid: %dx%d  policy: %s",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.grid.Rows, g.grid.Cols, g.policyName)
		for _, p := range g.pets {
			row, col := p.Cell()
			msg += fmt.Sprintf("\n%s (%d,%d) %s", p.Character, row, col, p.StateName())
		}
		ebitenutil.DebugPrint(screen, msg)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
