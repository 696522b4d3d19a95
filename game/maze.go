package game

import "github.com/beka-birhanu/starmaze/maze"

// Maze defines the read-only view of a grid the movement engine needs.
type Maze interface {
	InBound(row, col int) bool
	Cell(pos maze.CellPosition) (*maze.Cell, error)
}

var _ Maze = (*maze.Grid)(nil)
