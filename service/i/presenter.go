package i

import (
	"time"

	"github.com/beka-birhanu/starmaze/game"
	"github.com/google/uuid"
)

// Presenter receives read-only session state. Calls are made from the
// session's loop goroutine and should return quickly.
type Presenter interface {
	// Render draws the state produced by the latest tick.
	Render(id uuid.UUID, s game.Snapshot)

	// Message shows a status line. An empty message clears it.
	Message(id uuid.UUID, msg string)

	// Won signals that the player escaped. A reset follows after a delay.
	Won(id uuid.UUID, s game.Snapshot)
}

// FrameScheduler delivers one frame signal per display refresh.
type FrameScheduler interface {
	Frames() <-chan time.Time
	Stop()
}
