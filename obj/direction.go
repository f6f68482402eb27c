package obj

// Direction indexes the 8 compass directions a pet can walk. The index
// doubles as the facing row in the character's Walk sprite sheet.
type Direction int

const (
	DirDown Direction = iota
	DirDownRight
	DirRight
	DirUpRight
	DirUp
	DirUpLeft
	DirLeft
	DirDownLeft

	NumDirections = 8
)

var dirDeltas = [NumDirections][2]int{
	DirDown:      {1, 0},
	DirDownRight: {1, 1},
	DirRight:     {0, 1},
	DirUpRight:   {-1, 1},
	DirUp:        {-1, 0},
	DirUpLeft:    {-1, -1},
	DirLeft:      {0, -1},
	DirDownLeft:  {1, -1},
}

var dirNames = [NumDirections]string{
	"down", "down-right", "right", "up-right", "up", "up-left", "left", "down-left",
}

// Delta returns the (row, col) step for one move in this direction.
func (d Direction) Delta() (dRow, dCol int) {
	if d < 0 || d >= NumDirections {
		return 0, 0
	}
	return dirDeltas[d][0], dirDeltas[d][1]
}

func (d Direction) String() string {
	if d < 0 || d >= NumDirections {
		return "invalid"
	}
	return dirNames[d]
}
