package game

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/beka-birhanu/starmaze/maze"
	"github.com/zyedidia/generic/mapset"
)

// Game-related errors.
var (
	ErrNotEnoughCells  = errors.New("grid has too few cells for the player, stars and gate")
	ErrInvalidSettings = errors.New("invalid game settings")
)

// Default tuning values.
const (
	DefaultStarCount         = 3
	DefaultPlayerSpeed       = 3.5
	DefaultPlayerRadiusRatio = 0.2

	defaultStarRadiusRatio = 0.2
	defaultGateRadiusRatio = 0.25

	hueDegrees = 360
)

// Settings configures a single session.
type Settings struct {
	Rows              int
	Cols              int
	CellSize          float64
	StarCount         int
	PlayerSpeed       float64
	PlayerRadiusRatio float64 // Player radius as a fraction of CellSize
	StarRadiusRatio   float64 // Star pickup radius as a fraction of CellSize
	GateRadiusRatio   float64 // Gate radius as a fraction of CellSize
}

// DefaultSettings returns settings for a rows x cols grid with the default
// star count, speed and radii.
func DefaultSettings(rows, cols int, cellSize float64) Settings {
	return Settings{
		Rows:              rows,
		Cols:              cols,
		CellSize:          cellSize,
		StarCount:         DefaultStarCount,
		PlayerSpeed:       DefaultPlayerSpeed,
		PlayerRadiusRatio: DefaultPlayerRadiusRatio,
		StarRadiusRatio:   defaultStarRadiusRatio,
		GateRadiusRatio:   defaultGateRadiusRatio,
	}
}

// MaxPlayerSpeed is the exclusive upper bound on the per-tick displacement for
// a player of radius ratio*cellSize. Collision only inspects the cell holding
// the player's centre, so a step of a full diameter or more can carry the
// centre past a wall into a cell whose own walls no longer block it.
func MaxPlayerSpeed(cellSize, radiusRatio float64) float64 {
	return 2 * radiusRatio * cellSize
}

// Validate checks settings for values no session can be built from.
func (s Settings) Validate() error {
	switch {
	case s.Rows <= 0 || s.Cols <= 0:
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidSettings, s.Rows, s.Cols)
	case s.CellSize <= 0:
		return fmt.Errorf("%w: cell size %v", ErrInvalidSettings, s.CellSize)
	case s.StarCount < 0:
		return fmt.Errorf("%w: star count %d", ErrInvalidSettings, s.StarCount)
	case s.PlayerSpeed < 0:
		return fmt.Errorf("%w: player speed %v", ErrInvalidSettings, s.PlayerSpeed)
	case s.PlayerRadiusRatio <= 0 || s.PlayerRadiusRatio >= 0.5:
		return fmt.Errorf("%w: player radius ratio %v", ErrInvalidSettings, s.PlayerRadiusRatio)
	case s.PlayerSpeed >= MaxPlayerSpeed(s.CellSize, s.PlayerRadiusRatio):
		return fmt.Errorf("%w: player speed %v tunnels through walls of %v-unit cells", ErrInvalidSettings, s.PlayerSpeed, s.CellSize)
	}

	// player start + stars + gate must land on distinct cells
	if need := s.StarCount + 2; s.Rows*s.Cols < need {
		return fmt.Errorf("%w: %dx%d grid, need %d cells", ErrNotEnoughCells, s.Rows, s.Cols, need)
	}
	return nil
}

// Game is one play session: the maze, the player, the stars and the gate.
// It is not safe for concurrent use; a single loop owns it.
type Game struct {
	grid       *maze.Grid
	collider   *Collider
	player     Player
	stars      []Star
	gate       Gate
	state      State
	cellSize   float64
	starRadius float64
	gateRadius float64
}

// NewGame builds a session: carves a maze from the top-left cell, puts the
// player at the centre of that cell, then scatters stars and the gate on
// distinct cells away from the player.
func NewGame(s Settings, rng *rand.Rand) (*Game, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	grid, err := maze.Generate(s.Rows, s.Cols, rng)
	if err != nil {
		return nil, fmt.Errorf("generating maze: %w", err)
	}
	if !grid.IsPerfect() {
		return nil, maze.ErrImperfectMaze
	}

	start := maze.CellPosition{}
	px, py := cellCenter(start, s.CellSize)
	player := Player{
		X:      px,
		Y:      py,
		Radius: s.CellSize * s.PlayerRadiusRatio,
		Speed:  s.PlayerSpeed,
	}

	excluded := mapset.New[maze.CellPosition]()
	excluded.Put(player.Cell(s.CellSize))

	stars, err := PlaceStars(grid, excluded, s.StarCount, rng)
	if err != nil {
		return nil, fmt.Errorf("placing stars: %w", err)
	}
	for _, st := range stars {
		excluded.Put(st.Pos)
	}

	gate, err := PlaceGate(grid, excluded, rng)
	if err != nil {
		return nil, fmt.Errorf("placing gate: %w", err)
	}

	return &Game{
		grid:       grid,
		collider:   NewCollider(grid, s.CellSize),
		player:     player,
		stars:      stars,
		gate:       gate,
		state:      StatePlaying,
		cellSize:   s.CellSize,
		starRadius: s.CellSize * s.StarRadiusRatio,
		gateRadius: s.CellSize * s.GateRadiusRatio,
	}, nil
}

// Tick advances the simulation by one frame using the given input snapshot
// and reports what changed. A won game no longer changes.
func (g *Game) Tick(in InputState) Event {
	if g.state == StateWon {
		return 0
	}

	g.collider.Move(&g.player, in)
	g.player.Hue = (g.player.Hue + 1) % hueDegrees

	var ev Event
	if g.CollectStars() > 0 {
		ev |= EventStarCollected
	}
	if g.OpenGate() {
		ev |= EventGateOpened
	}
	if g.checkWin() {
		ev |= EventWon
	}
	return ev
}

// CollectStars marks every uncollected star the player touches as collected
// and returns how many were newly collected.
func (g *Game) CollectStars() int {
	collected := 0
	for i := range g.stars {
		st := &g.stars[i]
		if st.Collected {
			continue
		}
		if g.distanceTo(st.Pos) < g.player.Radius+g.starRadius {
			st.Collected = true
			collected++
		}
	}
	return collected
}

// OpenGate opens the gate once every star is collected. It reports true only
// on the call that performs the transition.
func (g *Game) OpenGate() bool {
	if g.gate.IsOpen || !g.allCollected() {
		return false
	}
	g.gate.IsOpen = true
	return true
}

func (g *Game) checkWin() bool {
	if g.state != StatePlaying || !g.gate.IsOpen || !g.allCollected() {
		return false
	}
	if g.distanceTo(g.gate.Pos) < g.player.Radius+g.gateRadius {
		g.state = StateWon
		return true
	}
	return false
}

func (g *Game) allCollected() bool {
	for _, st := range g.stars {
		if !st.Collected {
			return false
		}
	}
	return true
}

// distanceTo is the Euclidean distance from the player's centre to the centre
// of pos.
func (g *Game) distanceTo(pos maze.CellPosition) float64 {
	cx, cy := cellCenter(pos, g.cellSize)
	return math.Hypot(g.player.X-cx, g.player.Y-cy)
}

// IsCollidingWithWalls reports whether a circle at (x, y) hits a wall of this
// session's maze.
func (g *Game) IsCollidingWithWalls(x, y, radius float64) bool {
	return g.collider.IsCollidingWithWalls(x, y, radius)
}

// State returns the current session state.
func (g *Game) State() State {
	return g.state
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Snapshot is a read-only copy of everything a renderer draws.
type Snapshot struct {
	Rows       int
	Cols       int
	CellSize   float64
	Cells      [][]maze.Cell
	Player     Player
	Stars      []Star
	Gate       Gate
	StarRadius float64
	GateRadius float64
	State      State
}

// Collected returns how many stars have been collected.
func (s Snapshot) Collected() int {
	n := 0
	for _, st := range s.Stars {
		if st.Collected {
			n++
		}
	}
	return n
}

// Snapshot copies the session state for presentation.
func (g *Game) Snapshot() Snapshot {
	stars := make([]Star, len(g.stars))
	copy(stars, g.stars)

	return Snapshot{
		Rows:       g.grid.Rows,
		Cols:       g.grid.Cols,
		CellSize:   g.cellSize,
		Cells:      g.grid.Snapshot(),
		Player:     g.player,
		Stars:      stars,
		Gate:       g.gate,
		StarRadius: g.starRadius,
		GateRadius: g.gateRadius,
		State:      g.state,
	}
}
