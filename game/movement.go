package game

import (
	"math"

	"github.com/beka-birhanu/starmaze/maze"
)

// Collider answers wall-collision queries for circles moving over a maze and
// applies per-tick player movement.
type Collider struct {
	maze     Maze
	cellSize float64
}

// NewCollider creates a collider over m where every cell spans cellSize units.
func NewCollider(m Maze, cellSize float64) *Collider {
	return &Collider{maze: m, cellSize: cellSize}
}

// IsCollidingWithWalls reports whether a circle centred at (x, y) crosses an
// intact wall of the cell containing its centre. Positions outside the grid
// always collide.
//
// Only the containing cell is tested, so a circle may overlap the end of a
// wall belonging to a diagonal neighbour near a shared corner.
func (c *Collider) IsCollidingWithWalls(x, y, radius float64) bool {
	col := int(math.Floor(x / c.cellSize))
	row := int(math.Floor(y / c.cellSize))

	if !c.maze.InBound(row, col) {
		return true
	}
	cell, err := c.maze.Cell(maze.CellPosition{Row: row, Col: col})
	if err != nil {
		return true
	}

	localX := x - float64(col)*c.cellSize
	localY := y - float64(row)*c.cellSize

	if cell.TopWall && localY-radius < 0 {
		return true
	}
	if cell.RightWall && localX+radius > c.cellSize {
		return true
	}
	if cell.BottomWall && localY+radius > c.cellSize {
		return true
	}
	if cell.LeftWall && localX-radius < 0 {
		return true
	}
	return false
}

// Move advances p by one tick of input. The X displacement is attempted first
// and kept only if it does not collide; the Y displacement is then attempted
// from the resulting X. Diagonal input into a wall therefore slides along it.
// It reports whether the player moved on either axis.
func (c *Collider) Move(p *Player, in InputState) bool {
	dx, dy := in.Vector()
	if dx == 0 && dy == 0 {
		return false
	}
	dx *= p.Speed
	dy *= p.Speed

	moved := false
	if dx != 0 && !c.IsCollidingWithWalls(p.X+dx, p.Y, p.Radius) {
		p.X += dx
		moved = true
	}
	if dy != 0 && !c.IsCollidingWithWalls(p.X, p.Y+dy, p.Radius) {
		p.Y += dy
		moved = true
	}
	return moved
}
