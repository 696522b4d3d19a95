package i

import (
	"context"

	"github.com/beka-birhanu/starmaze/game"
	"github.com/google/uuid"
)

// Game is a single play session advanced one frame at a time.
type Game interface {
	// Tick advances the simulation using a snapshot of the input state.
	Tick(game.InputState) game.Event

	// Snapshot returns a read-only copy of the session for rendering.
	Snapshot() game.Snapshot
}

// GameSessionManager runs game sessions and exposes their input and state.
type GameSessionManager interface {
	// NewSession sets up a game and starts ticking it until ctx is done or the
	// session is stopped.
	NewSession(ctx context.Context) (uuid.UUID, error)

	// Input returns the input flags the session reads every tick.
	Input(uuid.UUID) (*game.Input, error)

	// Snapshot returns the state rendered on the latest tick.
	Snapshot(uuid.UUID) (game.Snapshot, error)

	// Stop halts a session and waits for its loop to exit.
	Stop(uuid.UUID) error

	// StopAll halts every session.
	StopAll()
}
