package game

import (
	"math"

	"github.com/beka-birhanu/starmaze/maze"
)

// Player is the continuously positioned avatar, in the same units as the
// grid (cell index * cell size).
type Player struct {
	X      float64 // Centre x
	Y      float64 // Centre y
	Radius float64 // Collision radius
	Speed  float64 // Displacement per tick at full input
	Hue    int     // Cosmetic colour hue in degrees, advanced every tick
}

// Cell returns the grid cell containing the player's centre.
func (p Player) Cell(cellSize float64) maze.CellPosition {
	return maze.CellPosition{
		Row: int(math.Floor(p.Y / cellSize)),
		Col: int(math.Floor(p.X / cellSize)),
	}
}

// Star is a collectible pinned to a cell.
type Star struct {
	Pos       maze.CellPosition
	Collected bool
}

// Gate is the exit. It opens once every star has been collected.
type Gate struct {
	Pos    maze.CellPosition
	IsOpen bool
}

// cellCenter returns the continuous coordinates of the centre of pos.
func cellCenter(pos maze.CellPosition, cellSize float64) (float64, float64) {
	return float64(pos.Col)*cellSize + cellSize/2, float64(pos.Row)*cellSize + cellSize/2
}

// State is the session state.
type State int

const (
	StatePlaying State = iota
	StateWon
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "PLAYING"
	case StateWon:
		return "WON"
	default:
		return "UNKNOWN"
	}
}

// Event is a bit set of the transitions that happened during one tick.
type Event uint8

const (
	EventStarCollected Event = 1 << iota // At least one star was collected.
	EventGateOpened                      // The gate opened.
	EventWon                             // The player reached the open gate.
)

// Has reports whether every bit of flag is set in e.
func (e Event) Has(flag Event) bool {
	return e&flag == flag && flag != 0
}
