package game

import (
	"math"
	"sync"
	"testing"

	"github.com/beka-birhanu/starmaze/maze"
	"github.com/stretchr/testify/assert"
)

func TestInputStateVector(t *testing.T) {
	tests := []struct {
		name   string
		in     InputState
		dx, dy float64
	}{
		{name: "idle", in: InputState{}},
		{name: "up", in: InputState{Up: true}, dy: -1},
		{name: "down", in: InputState{Down: true}, dy: 1},
		{name: "left", in: InputState{Left: true}, dx: -1},
		{name: "right", in: InputState{Right: true}, dx: 1},
		{name: "up right", in: InputState{Up: true, Right: true}, dx: 1 / math.Sqrt2, dy: -1 / math.Sqrt2},
		{name: "down left", in: InputState{Down: true, Left: true}, dx: -1 / math.Sqrt2, dy: 1 / math.Sqrt2},
		{name: "opposites cancel", in: InputState{Up: true, Down: true}},
		{name: "three keys", in: InputState{Up: true, Down: true, Right: true}, dx: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy := tt.in.Vector()
			assert.InDelta(t, tt.dx, dx, 1e-12)
			assert.InDelta(t, tt.dy, dy, 1e-12)
		})
	}
}

func TestInputKeys(t *testing.T) {
	var in Input

	assert.True(t, in.KeyDown("ArrowUp"))
	assert.True(t, in.KeyDown("d"))
	assert.Equal(t, InputState{Up: true, Right: true}, in.Snapshot())

	assert.True(t, in.KeyUp("w"))
	assert.Equal(t, InputState{Right: true}, in.Snapshot())

	assert.False(t, in.KeyDown("x"))
	assert.False(t, in.KeyUp("Enter"))

	in.Set(maze.Left, true)
	in.Set(maze.Down, true)
	in.Reset()
	assert.Equal(t, InputState{}, in.Snapshot())
}

func TestInputConcurrentWriters(t *testing.T) {
	var in Input
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				in.Set(maze.Directions[(i+j)%4], j%2 == 0)
				_ = in.Snapshot()
			}
		}(i)
	}
	wg.Wait()
}
