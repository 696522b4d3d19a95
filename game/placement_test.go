package game

import (
	"math/rand"
	"testing"

	"github.com/beka-birhanu/starmaze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"
)

func TestPlaceStars(t *testing.T) {
	t.Run("Distinct cells outside the excluded set", func(t *testing.T) {
		for seed := int64(1); seed <= 50; seed++ {
			rng := rand.New(rand.NewSource(seed))
			g := mustGrid(t, 4, 4)
			excluded := mapset.New[maze.CellPosition]()
			excluded.Put(pos(0, 0))

			stars, err := PlaceStars(g, excluded, 5, rng)
			require.NoError(t, err)
			require.Len(t, stars, 5)

			seen := map[maze.CellPosition]bool{}
			for _, st := range stars {
				assert.False(t, st.Collected)
				assert.False(t, excluded.Has(st.Pos))
				assert.False(t, seen[st.Pos])
				assert.True(t, g.InBound(st.Pos.Row, st.Pos.Col))
				seen[st.Pos] = true
			}
		}
	})

	t.Run("Fills every free cell", func(t *testing.T) {
		g := mustGrid(t, 2, 2)
		excluded := mapset.New[maze.CellPosition]()
		excluded.Put(pos(0, 0))

		stars, err := PlaceStars(g, excluded, 3, rand.New(rand.NewSource(11)))
		require.NoError(t, err)

		got := map[maze.CellPosition]bool{}
		for _, st := range stars {
			got[st.Pos] = true
		}
		assert.Equal(t, map[maze.CellPosition]bool{pos(0, 1): true, pos(1, 0): true, pos(1, 1): true}, got)
	})

	t.Run("Too many requested", func(t *testing.T) {
		g := mustGrid(t, 2, 2)
		excluded := mapset.New[maze.CellPosition]()
		excluded.Put(pos(0, 0))

		_, err := PlaceStars(g, excluded, 4, rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrNotEnoughCells)
	})

	t.Run("Excluded cells outside the grid do not reduce capacity", func(t *testing.T) {
		g := mustGrid(t, 1, 2)
		excluded := mapset.New[maze.CellPosition]()
		excluded.Put(pos(5, 5))

		stars, err := PlaceStars(g, excluded, 2, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		assert.Len(t, stars, 2)
	})

	t.Run("Negative count", func(t *testing.T) {
		_, err := PlaceStars(mustGrid(t, 2, 2), mapset.New[maze.CellPosition](), -1, rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrInvalidSettings)
	})

	t.Run("Zero count", func(t *testing.T) {
		stars, err := PlaceStars(mustGrid(t, 2, 2), mapset.New[maze.CellPosition](), 0, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		assert.Empty(t, stars)
	})
}

func TestPlaceGate(t *testing.T) {
	t.Run("Avoids player and stars", func(t *testing.T) {
		for seed := int64(1); seed <= 50; seed++ {
			rng := rand.New(rand.NewSource(seed))
			g := mustGrid(t, 2, 3)
			excluded := mapset.New[maze.CellPosition]()
			excluded.Put(pos(0, 0))

			stars, err := PlaceStars(g, excluded, 3, rng)
			require.NoError(t, err)
			for _, st := range stars {
				excluded.Put(st.Pos)
			}

			gate, err := PlaceGate(g, excluded, rng)
			require.NoError(t, err)
			assert.False(t, excluded.Has(gate.Pos))
			assert.False(t, gate.IsOpen)
		}
	})

	t.Run("No cell left", func(t *testing.T) {
		g := mustGrid(t, 1, 2)
		excluded := mapset.New[maze.CellPosition]()
		excluded.Put(pos(0, 0))
		excluded.Put(pos(0, 1))

		_, err := PlaceGate(g, excluded, rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrNotEnoughCells)
	})
}
