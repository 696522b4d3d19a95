/*
Package maze provides tools for creating and carving rectangular mazes.

It defines the `Grid` structure, composed of `Cell` objects that carry four wall
flags and a visited flag used during generation.

The package includes a randomized iterative depth-first generator that turns a
fully walled grid into a perfect maze, wall-pair carving that keeps neighbouring
cells consistent, a perfect-maze check, and ASCII visualization of the grid.
*/
package maze

import (
	"errors"
	"strings"

	"github.com/kamstrup/intmap"
)

var (
	ErrInvalidDimensions = errors.New("maze dimensions must be positive")
	ErrOutOfBounds       = errors.New("position is out of the maze")
	ErrNotAdjacent       = errors.New("cells are not adjacent")
	ErrImperfectMaze     = errors.New("maze is not a spanning tree")
)

// Grid represents a rectangular maze consisting of cells with walls.
// Its shape never changes after creation.
type Grid struct {
	Rows  int       // Number of rows
	Cols  int       // Number of columns
	Cells [][]*Cell // 2D grid of cells indexed [row][col]
}

// New allocates a rows x cols grid where every cell has all four walls intact
// and is unvisited.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	cells := make([][]*Cell, rows)
	for r := range cells {
		cells[r] = make([]*Cell, cols)
		for c := range cells[r] {
			cells[r][c] = newCell()
		}
	}

	return &Grid{
		Rows:  rows,
		Cols:  cols,
		Cells: cells,
	}, nil
}

// InBound reports whether (row, col) lies inside the grid.
func (g *Grid) InBound(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Cell returns the cell at pos.
func (g *Grid) Cell(pos CellPosition) (*Cell, error) {
	if !g.InBound(pos.Row, pos.Col) {
		return nil, ErrOutOfBounds
	}
	return g.Cells[pos.Row][pos.Col], nil
}

// Size returns the number of cells in the grid.
func (g *Grid) Size() int {
	return g.Rows * g.Cols
}

// index flattens a position into a single int key.
func (g *Grid) index(pos CellPosition) int {
	return pos.Row*g.Cols + pos.Col
}

// carve removes the wall pair between from and the adjacent cell in direction d.
func (g *Grid) carve(from CellPosition, d Direction) error {
	to := from.Step(d)
	if !g.InBound(from.Row, from.Col) || !g.InBound(to.Row, to.Col) {
		return ErrOutOfBounds
	}

	g.Cells[from.Row][from.Col].clearWall(d)
	g.Cells[to.Row][to.Col].clearWall(d.Opposite())
	return nil
}

// Carve removes the wall pair shared by two orthogonally adjacent cells.
func (g *Grid) Carve(a, b CellPosition) error {
	for _, d := range Directions {
		if a.Step(d) == b {
			return g.carve(a, d)
		}
	}
	return ErrNotAdjacent
}

// Passages counts the carved wall pairs. Only right and bottom walls are
// inspected so each pair is counted once.
func (g *Grid) Passages() int {
	passages := 0
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			cell := g.Cells[r][c]
			if c+1 < g.Cols && !cell.RightWall {
				passages++
			}
			if r+1 < g.Rows && !cell.BottomWall {
				passages++
			}
		}
	}
	return passages
}

// IsPerfect reports whether the carved passages form a spanning tree: every
// cell reachable from (0,0) and exactly Size()-1 passages.
func (g *Grid) IsPerfect() bool {
	if g.Passages() != g.Size()-1 {
		return false
	}

	start := CellPosition{}
	visited := intmap.New[int, int](g.Size())
	visited.Put(g.index(start), 0)
	queue := []CellPosition{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		depth, _ := visited.Get(g.index(cur))

		for _, d := range Directions {
			next := cur.Step(d)
			if !g.InBound(next.Row, next.Col) || g.Cells[cur.Row][cur.Col].HasWall(d) {
				continue
			}
			if _, seen := visited.Get(g.index(next)); seen {
				continue
			}
			visited.Put(g.index(next), depth+1)
			queue = append(queue, next)
		}
	}

	return visited.Len() == g.Size()
}

// Snapshot returns a deep copy of the cell state for read-only consumers.
func (g *Grid) Snapshot() [][]Cell {
	cells := make([][]Cell, g.Rows)
	for r := range cells {
		cells[r] = make([]Cell, g.Cols)
		for c := range cells[r] {
			cells[r][c] = *g.Cells[r][c]
		}
	}
	return cells
}

// String provides a textual representation of the maze.
func (g *Grid) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+")
	for col := 0; col < g.Cols; col++ {
		if g.Cells[0][col].TopWall {
			output.WriteString("---+")
		} else {
			output.WriteString("   +")
		}
	}
	output.WriteString("\n")

	for row := 0; row < g.Rows; row++ {
		// Cell rows
		if g.Cells[row][0].LeftWall {
			output.WriteString("|")
		} else {
			output.WriteString(" ")
		}
		for col := 0; col < g.Cols; col++ {
			if g.Cells[row][col].RightWall {
				output.WriteString("   |")
			} else {
				output.WriteString("    ")
			}
		}
		output.WriteString("\n")

		// Wall rows
		output.WriteString("+")
		for col := 0; col < g.Cols; col++ {
			if g.Cells[row][col].BottomWall {
				output.WriteString("---+")
			} else {
				output.WriteString("   +")
			}
		}
		output.WriteString("\n")
	}

	return output.String()
}
