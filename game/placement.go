package game

import (
	"fmt"
	"math/rand"

	"github.com/beka-birhanu/starmaze/maze"
	"github.com/zyedidia/generic/mapset"
)

// maxPlacementAttempts bounds rejection sampling per pick. Once exhausted the
// pick falls back to a uniform choice among the remaining free cells.
const maxPlacementAttempts = 64

// PlaceStars picks count distinct cells uniformly at random, none of which is
// in excluded, and returns uncollected stars on them in pick order.
func PlaceStars(g *maze.Grid, excluded mapset.Set[maze.CellPosition], count int, rng *rand.Rand) ([]Star, error) {
	cells, err := pickCells(g, excluded, count, rng)
	if err != nil {
		return nil, err
	}

	stars := make([]Star, len(cells))
	for i, pos := range cells {
		stars[i] = Star{Pos: pos}
	}
	return stars, nil
}

// PlaceGate picks one cell outside excluded for a closed gate.
func PlaceGate(g *maze.Grid, excluded mapset.Set[maze.CellPosition], rng *rand.Rand) (Gate, error) {
	cells, err := pickCells(g, excluded, 1, rng)
	if err != nil {
		return Gate{}, err
	}
	return Gate{Pos: cells[0]}, nil
}

// pickCells returns count distinct in-bound cells not in excluded.
func pickCells(g *maze.Grid, excluded mapset.Set[maze.CellPosition], count int, rng *rand.Rand) ([]maze.CellPosition, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrInvalidSettings, count)
	}

	free := 0
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if !excluded.Has(maze.CellPosition{Row: r, Col: c}) {
				free++
			}
		}
	}
	if count > free {
		return nil, fmt.Errorf("%w: need %d free cells, grid has %d", ErrNotEnoughCells, count, free)
	}

	chosen := mapset.New[maze.CellPosition]()
	taken := func(pos maze.CellPosition) bool {
		return excluded.Has(pos) || chosen.Has(pos)
	}

	picks := make([]maze.CellPosition, 0, count)
	for len(picks) < count {
		pos := pickFree(g, taken, rng)
		chosen.Put(pos)
		picks = append(picks, pos)
	}
	return picks, nil
}

// pickFree draws a cell for which taken is false. The caller guarantees that
// at least one such cell exists.
func pickFree(g *maze.Grid, taken func(maze.CellPosition) bool, rng *rand.Rand) maze.CellPosition {
	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		pos := maze.CellPosition{Row: rng.Intn(g.Rows), Col: rng.Intn(g.Cols)}
		if !taken(pos) {
			return pos
		}
	}

	candidates := make([]maze.CellPosition, 0)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			pos := maze.CellPosition{Row: r, Col: c}
			if !taken(pos) {
				candidates = append(candidates, pos)
			}
		}
	}
	return candidates[rng.Intn(len(candidates))]
}
