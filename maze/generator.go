package maze

import (
	"math/rand"
)

// Generate allocates a rows x cols grid and carves a perfect maze into it
// starting from the top-left cell.
func Generate(rows, cols int, rng *rand.Rand) (*Grid, error) {
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}

	if err := g.Generate(CellPosition{}, rng); err != nil {
		return nil, err
	}
	return g, nil
}

// Generate carves a perfect maze with a randomized iterative depth-first
// backtracker. The stack is explicit so large grids never hit recursion limits.
// The grid is expected to be freshly created: every cell walled and unvisited.
func (g *Grid) Generate(start CellPosition, rng *rand.Rand) error {
	startCell, err := g.Cell(start)
	if err != nil {
		return err
	}

	startCell.Visited = true
	stack := []CellPosition{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		candidates := g.unvisitedNeighbors(current)

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		next := current.Step(d)
		if err := g.carve(current, d); err != nil {
			return err
		}
		g.Cells[next.Row][next.Col].Visited = true

		// current stays beneath next for backtracking.
		stack = append(stack, next)
	}

	return nil
}

// unvisitedNeighbors returns the directions from pos that lead to in-bound,
// unvisited cells, in Up/Right/Down/Left order.
func (g *Grid) unvisitedNeighbors(pos CellPosition) []Direction {
	result := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		n := pos.Step(d)
		if g.InBound(n.Row, n.Col) && !g.Cells[n.Row][n.Col].Visited {
			result = append(result, d)
		}
	}
	return result
}
