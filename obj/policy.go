package obj

import "math/rand"

// DirectionPolicy chooses the walk direction for a pet standing on a cell.
// Policies draw randomness from the supplied source only, so a seeded rand
// makes whole wander sequences reproducible.
type DirectionPolicy interface {
	Choose(rng *rand.Rand, g Grid, row, col int) Direction
}

// UniformPolicy picks uniformly over the 8 compass directions, edges
// included. Pets using it bump along the grid border until a roll points them
// back inward.
type UniformPolicy struct{}

func (UniformPolicy) Choose(rng *rand.Rand, _ Grid, _, _ int) Direction {
	return Direction(rng.Intn(NumDirections))
}

// EdgePolicy forces pets near a grid border to walk back toward the middle,
// and is uniform everywhere else. Margin is how many cells from the border
// count as "near"; zero means the default of 1.
type EdgePolicy struct {
	Margin int
}

func (p EdgePolicy) Choose(rng *rand.Rand, g Grid, row, col int) Direction {
	m := p.Margin
	if m <= 0 {
		m = 1
	}
	switch {
	case row <= m:
		return DirDown
	case col <= m:
		return DirRight
	case row >= g.Rows-1-m:
		return DirUp
	case col >= g.Cols-1-m:
		return DirLeft
	}
	return Direction(rng.Intn(NumDirections))
}
