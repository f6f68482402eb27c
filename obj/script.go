package obj

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ScriptPolicy hands the direction choice to a Tengo script. The script gets
// the pet's cell, the grid bounds, and a pre-rolled uniform direction as
// globals (row, col, rows, cols, roll) and must assign a direction index to
// `dir`. A script or range error falls back to the wrapped policy, so a bad
// script degrades to normal wandering instead of freezing pets.
type ScriptPolicy struct {
	compiled *tengo.Compiled
	fallback DirectionPolicy
}

var scriptGlobals = []string{"row", "col", "rows", "cols", "roll"}

func NewScriptPolicy(src []byte, fallback DirectionPolicy) (*ScriptPolicy, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math", "fmt"))
	for _, name := range scriptGlobals {
		if err := script.Add(name, 0); err != nil {
			return nil, fmt.Errorf("obj: direction script global %s: %w", name, err)
		}
	}
	if err := script.Add("dir", -1); err != nil {
		return nil, fmt.Errorf("obj: direction script global dir: %w", err)
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("obj: compile direction script: %w", err)
	}
	if fallback == nil {
		fallback = EdgePolicy{}
	}
	return &ScriptPolicy{compiled: compiled, fallback: fallback}, nil
}

func (p *ScriptPolicy) Choose(rng *rand.Rand, g Grid, row, col int) Direction {
	roll := rng.Intn(NumDirections)
	vals := map[string]int{
		"row": row, "col": col, "rows": g.Rows, "cols": g.Cols, "roll": roll,
	}
	for name, v := range vals {
		if err := p.compiled.Set(name, v); err != nil {
			log.Printf("obj: direction script set %s: %v", name, err)
			return p.fallback.Choose(rng, g, row, col)
		}
	}
	if err := p.compiled.Run(); err != nil {
		log.Printf("obj: direction script: %v", err)
		return p.fallback.Choose(rng, g, row, col)
	}
	dir := p.compiled.Get("dir").Int()
	if dir < 0 || dir >= NumDirections {
		log.Printf("obj: direction script returned %d, want 0..%d", dir, NumDirections-1)
		return p.fallback.Choose(rng, g, row, col)
	}
	return Direction(dir)
}
