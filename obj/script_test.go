package obj

import (
	"math/rand"
	"testing"
)

func TestScriptPolicyChoosesFromScript(t *testing.T) {
	// always walk down, ignoring the roll
	p, err := NewScriptPolicy([]byte(`dir = 0`), EdgePolicy{})
	if err != nil {
		t.Fatalf("NewScriptPolicy: %v", err)
	}
	g := Grid{Rows: 10, Cols: 10, CellSize: 64}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		if got := p.Choose(rng, g, 5, 5); got != DirDown {
			t.Fatalf("Choose() = %s, want %s", got, DirDown)
		}
	}
}

func TestScriptPolicySeesCellAndGrid(t *testing.T) {
	// mirror of the built-in edge policy, written in script
	src := []byte(`
dir = roll
if row <= 1 {
	dir = 0
} else if col <= 1 {
	dir = 2
} else if row >= rows - 2 {
	dir = 4
} else if col >= cols - 2 {
	dir = 6
}
`)
	p, err := NewScriptPolicy(src, EdgePolicy{})
	if err != nil {
		t.Fatalf("NewScriptPolicy: %v", err)
	}
	g := Grid{Rows: 10, Cols: 10, CellSize: 64}
	rng := rand.New(rand.NewSource(1))

	cases := []struct {
		name     string
		row, col int
		want     Direction
	}{
		{"top", 0, 5, DirDown},
		{"left", 5, 0, DirRight},
		{"bottom", 9, 5, DirUp},
		{"right", 5, 9, DirLeft},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := p.Choose(rng, g, c.row, c.col); got != c.want {
				t.Fatalf("Choose(%d,%d) = %s, want %s", c.row, c.col, got, c.want)
			}
		})
	}

	// interior cells pass the roll through, so results stay in range
	for i := 0; i < 100; i++ {
		if d := p.Choose(rng, g, 5, 5); d < 0 || d >= NumDirections {
			t.Fatalf("interior Choose() = %d, out of range", d)
		}
	}
}

func TestScriptPolicyFallsBackOnBadDirection(t *testing.T) {
	p, err := NewScriptPolicy([]byte(`dir = 42`), UniformPolicy{})
	if err != nil {
		t.Fatalf("NewScriptPolicy: %v", err)
	}
	g := Grid{Rows: 10, Cols: 10, CellSize: 64}
	rng := rand.New(rand.NewSource(1))
	if d := p.Choose(rng, g, 5, 5); d < 0 || d >= NumDirections {
		t.Fatalf("fallback Choose() = %d, out of range", d)
	}
}

func TestScriptPolicyCompileError(t *testing.T) {
	if _, err := NewScriptPolicy([]byte(`dir = := nope`), nil); err == nil {
		t.Fatalf("expected a compile error")
	}
}
