package game

import (
	"math"
	"math/rand"
)

// Layout holds the bounds used to roll grid dimensions and fit the cell size
// to the available display area.
type Layout struct {
	MinSize       int     // Smallest rows/cols value, inclusive
	MaxSize       int     // Largest rows/cols value, inclusive
	BaseCellSize  float64 // Preferred cell size
	MinCellSize   float64 // Floor applied after shrinking
	ScreenUsage   float64 // Fraction of the display the grid may cover
	DisplayWidth  float64
	DisplayHeight float64
}

// RandomDimensions draws rows and cols independently from [minSize, maxSize].
func RandomDimensions(minSize, maxSize int, rng *rand.Rand) (int, int) {
	if maxSize < minSize {
		maxSize = minSize
	}
	span := maxSize - minSize + 1
	return minSize + rng.Intn(span), minSize + rng.Intn(span)
}

// FitCellSize returns base unless the grid would exceed the usable display
// area, in which case the largest whole cell size that fits is used, but never
// less than minCell.
func (l Layout) FitCellSize(rows, cols int) float64 {
	maxW := l.DisplayWidth * l.ScreenUsage
	maxH := l.DisplayHeight * l.ScreenUsage

	cellSize := l.BaseCellSize
	if float64(rows)*cellSize > maxH || float64(cols)*cellSize > maxW {
		byHeight := math.Floor(maxH / float64(rows))
		byWidth := math.Floor(maxW / float64(cols))
		cellSize = math.Max(math.Min(byHeight, byWidth), l.MinCellSize)
	}
	return cellSize
}

// Roll picks fresh dimensions and the matching cell size.
func (l Layout) Roll(rng *rand.Rand) (rows, cols int, cellSize float64) {
	rows, cols = RandomDimensions(l.MinSize, l.MaxSize, rng)
	return rows, cols, l.FitCellSize(rows, cols)
}
