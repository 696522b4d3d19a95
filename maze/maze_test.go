package maze

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("All walls intact and unvisited", func(t *testing.T) {
		g, err := New(3, 4)
		require.NoError(t, err)
		assert.Equal(t, 3, g.Rows)
		assert.Equal(t, 4, g.Cols)

		for r := 0; r < g.Rows; r++ {
			for c := 0; c < g.Cols; c++ {
				cell := g.Cells[r][c]
				assert.True(t, cell.TopWall)
				assert.True(t, cell.RightWall)
				assert.True(t, cell.BottomWall)
				assert.True(t, cell.LeftWall)
				assert.False(t, cell.Visited)
			}
		}
		assert.Zero(t, g.Passages())
	})

	t.Run("Reject non-positive dimensions", func(t *testing.T) {
		_, err := New(0, 4)
		assert.ErrorIs(t, err, ErrInvalidDimensions)

		_, err = New(4, -1)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})

	t.Run("Cell out of bounds", func(t *testing.T) {
		g, err := New(2, 2)
		require.NoError(t, err)

		_, err = g.Cell(CellPosition{Row: 2, Col: 0})
		assert.ErrorIs(t, err, ErrOutOfBounds)

		cell, err := g.Cell(CellPosition{Row: 1, Col: 1})
		assert.NoError(t, err)
		assert.Same(t, g.Cells[1][1], cell)
	})
}

func TestCarve(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)

	require.NoError(t, g.Carve(CellPosition{0, 0}, CellPosition{0, 1}))
	assert.False(t, g.Cells[0][0].RightWall)
	assert.False(t, g.Cells[0][1].LeftWall)

	require.NoError(t, g.Carve(CellPosition{1, 1}, CellPosition{0, 1}))
	assert.False(t, g.Cells[1][1].TopWall)
	assert.False(t, g.Cells[0][1].BottomWall)

	assert.ErrorIs(t, g.Carve(CellPosition{0, 0}, CellPosition{1, 1}), ErrNotAdjacent)
	assert.ErrorIs(t, g.Carve(CellPosition{0, 0}, CellPosition{-1, 0}), ErrOutOfBounds)
	assert.Equal(t, 2, g.Passages())
}

func TestGenerate(t *testing.T) {
	t.Run("Perfect maze across sizes and seeds", func(t *testing.T) {
		for seed := int64(1); seed <= 25; seed++ {
			rng := rand.New(rand.NewSource(seed))
			rows, cols := 1+rng.Intn(20), 1+rng.Intn(20)

			g, err := Generate(rows, cols, rng)
			require.NoError(t, err)

			assert.Equal(t, rows*cols-1, g.Passages(), "seed %d", seed)
			assert.True(t, g.IsPerfect(), "seed %d", seed)
			assertWallSymmetry(t, g)
			assertBorderIntact(t, g)
			assertUniquePaths(t, g)
		}
	})

	t.Run("Every cell visited", func(t *testing.T) {
		g, err := Generate(7, 9, rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		for r := range g.Cells {
			for c := range g.Cells[r] {
				assert.True(t, g.Cells[r][c].Visited)
			}
		}
	})

	t.Run("Single cell grid", func(t *testing.T) {
		g, err := Generate(1, 1, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		assert.Zero(t, g.Passages())
		assert.True(t, g.IsPerfect())
		cell := g.Cells[0][0]
		assert.True(t, cell.TopWall && cell.RightWall && cell.BottomWall && cell.LeftWall)
	})

	t.Run("One by two grid carves exactly one pair", func(t *testing.T) {
		g, err := Generate(1, 2, rand.New(rand.NewSource(7)))
		require.NoError(t, err)
		assert.Equal(t, 1, g.Passages())
		assert.False(t, g.Cells[0][0].RightWall)
		assert.False(t, g.Cells[0][1].LeftWall)
		assert.True(t, g.IsPerfect())
	})

	t.Run("Same seed same maze", func(t *testing.T) {
		a, err := Generate(12, 15, rand.New(rand.NewSource(99)))
		require.NoError(t, err)
		b, err := Generate(12, 15, rand.New(rand.NewSource(99)))
		require.NoError(t, err)
		assert.Equal(t, a.String(), b.String())
	})

	t.Run("Start out of bounds", func(t *testing.T) {
		g, err := New(3, 3)
		require.NoError(t, err)
		err = g.Generate(CellPosition{Row: 3, Col: 0}, rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("Large grid does not recurse", func(t *testing.T) {
		g, err := Generate(200, 200, rand.New(rand.NewSource(3)))
		require.NoError(t, err)
		assert.True(t, g.IsPerfect())
	})
}

func TestIsPerfect(t *testing.T) {
	t.Run("Cycle is rejected", func(t *testing.T) {
		g, err := New(2, 2)
		require.NoError(t, err)
		require.NoError(t, g.Carve(CellPosition{0, 0}, CellPosition{0, 1}))
		require.NoError(t, g.Carve(CellPosition{0, 1}, CellPosition{1, 1}))
		require.NoError(t, g.Carve(CellPosition{1, 1}, CellPosition{1, 0}))
		assert.True(t, g.IsPerfect())

		require.NoError(t, g.Carve(CellPosition{1, 0}, CellPosition{0, 0}))
		assert.False(t, g.IsPerfect())
	})

	t.Run("Disconnected is rejected", func(t *testing.T) {
		g, err := New(1, 3)
		require.NoError(t, err)
		require.NoError(t, g.Carve(CellPosition{0, 0}, CellPosition{0, 1}))
		assert.False(t, g.IsPerfect())
	})
}

func TestString(t *testing.T) {
	g, err := New(1, 2)
	require.NoError(t, err)
	require.NoError(t, g.Carve(CellPosition{0, 0}, CellPosition{0, 1}))

	lines := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "+---+---+", lines[0])
	assert.Equal(t, "|       |", lines[1])
	assert.Equal(t, "+---+---+", lines[2])
}

func TestSnapshotIsCopy(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)

	snap := g.Snapshot()
	snap[0][0].RightWall = false
	assert.True(t, g.Cells[0][0].RightWall)
}

func assertWallSymmetry(t *testing.T, g *Grid) {
	t.Helper()
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			cell := g.Cells[r][c]
			if c+1 < g.Cols {
				assert.Equal(t, cell.RightWall, g.Cells[r][c+1].LeftWall, "(%d,%d) right", r, c)
			}
			if r+1 < g.Rows {
				assert.Equal(t, cell.BottomWall, g.Cells[r+1][c].TopWall, "(%d,%d) bottom", r, c)
			}
		}
	}
}

func assertBorderIntact(t *testing.T, g *Grid) {
	t.Helper()
	for c := 0; c < g.Cols; c++ {
		assert.True(t, g.Cells[0][c].TopWall)
		assert.True(t, g.Cells[g.Rows-1][c].BottomWall)
	}
	for r := 0; r < g.Rows; r++ {
		assert.True(t, g.Cells[r][0].LeftWall)
		assert.True(t, g.Cells[r][g.Cols-1].RightWall)
	}
}

// assertUniquePaths walks the passage graph with a DFS that tracks the parent
// of each cell; reaching an already seen cell through a non-parent edge would
// mean two distinct simple paths exist.
func assertUniquePaths(t *testing.T, g *Grid) {
	t.Helper()
	type frame struct {
		pos    CellPosition
		parent CellPosition
	}

	seen := map[CellPosition]bool{{}: true}
	stack := []frame{{pos: CellPosition{}, parent: CellPosition{Row: -1, Col: -1}}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range Directions {
			n := f.pos.Step(d)
			if !g.InBound(n.Row, n.Col) || g.Cells[f.pos.Row][f.pos.Col].HasWall(d) || n == f.parent {
				continue
			}
			if !assert.False(t, seen[n], "cycle through %v", n) {
				return
			}
			seen[n] = true
			stack = append(stack, frame{pos: n, parent: f.pos})
		}
	}
	assert.Len(t, seen, g.Size())
}
