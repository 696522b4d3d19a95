package game

import (
	"math"
	"sync/atomic"

	"github.com/beka-birhanu/starmaze/maze"
)

// KeyBindings maps key names to the heading they drive. Arrow keys and WASD.
var KeyBindings = map[string]maze.Direction{
	"ArrowUp":    maze.Up,
	"w":          maze.Up,
	"ArrowDown":  maze.Down,
	"s":          maze.Down,
	"ArrowLeft":  maze.Left,
	"a":          maze.Left,
	"ArrowRight": maze.Right,
	"d":          maze.Right,
}

// InputState is a point-in-time copy of the four directional flags.
type InputState struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// Vector sums the active unit directions (up is -y) and normalizes the result.
// Opposite directions cancel; an idle or cancelled state yields (0, 0).
func (s InputState) Vector() (float64, float64) {
	var dx, dy float64
	if s.Up {
		dy--
	}
	if s.Down {
		dy++
	}
	if s.Left {
		dx--
	}
	if s.Right {
		dx++
	}

	if dx == 0 && dy == 0 {
		return 0, 0
	}
	length := math.Hypot(dx, dy)
	return dx / length, dy / length
}

// Input holds directional flags written by an input collaborator and read by
// the simulation once per tick. Writers may run on any goroutine.
type Input struct {
	up    atomic.Bool
	down  atomic.Bool
	left  atomic.Bool
	right atomic.Bool
}

// Set marks direction d as held or released.
func (in *Input) Set(d maze.Direction, pressed bool) {
	switch d {
	case maze.Up:
		in.up.Store(pressed)
	case maze.Down:
		in.down.Store(pressed)
	case maze.Left:
		in.left.Store(pressed)
	case maze.Right:
		in.right.Store(pressed)
	}
}

// KeyDown sets the flag bound to key. It reports whether the key is bound.
func (in *Input) KeyDown(key string) bool {
	d, ok := KeyBindings[key]
	if ok {
		in.Set(d, true)
	}
	return ok
}

// KeyUp clears the flag bound to key. It reports whether the key is bound.
func (in *Input) KeyUp(key string) bool {
	d, ok := KeyBindings[key]
	if ok {
		in.Set(d, false)
	}
	return ok
}

// Reset releases every direction.
func (in *Input) Reset() {
	for _, d := range maze.Directions {
		in.Set(d, false)
	}
}

// Snapshot returns the current flags.
func (in *Input) Snapshot() InputState {
	return InputState{
		Up:    in.up.Load(),
		Down:  in.down.Load(),
		Left:  in.left.Load(),
		Right: in.right.Load(),
	}
}
