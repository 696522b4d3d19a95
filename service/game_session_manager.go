package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/beka-birhanu/starmaze/game"
	"github.com/beka-birhanu/starmaze/service/i"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	defaultResetDelay = 2 * time.Second

	gateOpenedMessage = "All stars collected! The gate is open."
	wonMessage        = "You escaped the maze! Restarting..."
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrMissingFactory   = errors.New("game and scheduler factories are required")
	ErrMissingPresenter = errors.New("presenter is required")
)

// session is one running game. Only its loop goroutine touches the game; the
// latest snapshot is published under mu for other readers.
type session struct {
	id     uuid.UUID
	input  *game.Input
	cancel context.CancelFunc
	done   chan struct{}

	mu   sync.RWMutex
	last game.Snapshot
}

func (s *session) publish(snap game.Snapshot) {
	s.mu.Lock()
	s.last = snap
	s.mu.Unlock()
}

func (s *session) snapshot() game.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// GameSessionManager owns running sessions. Each session ticks on its own
// goroutine at the pace of a frame scheduler and re-initializes itself after a
// win.
type GameSessionManager struct {
	sessions         map[uuid.UUID]*session
	gameFactory      func() (i.Game, error)
	schedulerFactory func() i.FrameScheduler
	presenter        i.Presenter
	resetDelay       time.Duration
	logger           *log.Entry
	sync.RWMutex
}

var _ i.GameSessionManager = &GameSessionManager{}

// Config holds the collaborators of a GameSessionManager.
type Config struct {
	GameFactory      func() (i.Game, error)  // Builds a fresh session: dimensions, maze, placement
	SchedulerFactory func() i.FrameScheduler // Frame source, one per play phase
	Presenter        i.Presenter             // Receives snapshots and messages
	ResetDelay       time.Duration           // Pause between a win and the reset, 0 for the default
	Logger           *log.Entry              // Optional
}

// NewGameSessionManager validates c and returns an idle manager.
func NewGameSessionManager(c *Config) (*GameSessionManager, error) {
	if c.GameFactory == nil || c.SchedulerFactory == nil {
		return nil, ErrMissingFactory
	}
	if c.Presenter == nil {
		return nil, ErrMissingPresenter
	}

	resetDelay := c.ResetDelay
	if resetDelay <= 0 {
		resetDelay = defaultResetDelay
	}

	logger := c.Logger
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}

	return &GameSessionManager{
		sessions:         make(map[uuid.UUID]*session),
		gameFactory:      c.GameFactory,
		schedulerFactory: c.SchedulerFactory,
		presenter:        c.Presenter,
		resetDelay:       resetDelay,
		logger:           logger,
	}, nil
}

// NewSession builds a game and starts its loop. A game that cannot be set up
// (for instance a grid too small for its stars) rejects the session.
func (g *GameSessionManager) NewSession(ctx context.Context) (uuid.UUID, error) {
	gm, err := g.gameFactory()
	if err != nil {
		g.logger.WithError(err).Error("creating game for a new session")
		return uuid.Nil, fmt.Errorf("creating game: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &session{
		input:  &game.Input{},
		cancel: cancel,
		done:   make(chan struct{}),
		last:   gm.Snapshot(),
	}
	id := g.saveSession(s)

	go g.run(ctx, s, gm)

	snap := s.snapshot()
	g.logger.WithFields(log.Fields{
		"session": id,
		"rows":    snap.Rows,
		"cols":    snap.Cols,
		"cell":    snap.CellSize,
	}).Info("started new session")
	return id, nil
}

// Input returns the input flags of a session.
func (g *GameSessionManager) Input(id uuid.UUID) (*game.Input, error) {
	s, err := g.lookup(id)
	if err != nil {
		return nil, err
	}
	return s.input, nil
}

// Snapshot returns the state published by the latest tick of a session.
func (g *GameSessionManager) Snapshot(id uuid.UUID) (game.Snapshot, error) {
	s, err := g.lookup(id)
	if err != nil {
		return game.Snapshot{}, err
	}
	return s.snapshot(), nil
}

// Done returns a channel closed once the session's loop has exited.
func (g *GameSessionManager) Done(id uuid.UUID) (<-chan struct{}, error) {
	s, err := g.lookup(id)
	if err != nil {
		return nil, err
	}
	return s.done, nil
}

// Stop cancels a session and waits for its loop to exit. A session whose loop
// already exited is no longer known.
func (g *GameSessionManager) Stop(id uuid.UUID) error {
	s, err := g.lookup(id)
	if err != nil {
		return err
	}

	s.cancel()
	<-s.done
	g.logger.WithField("session", id).Info("stopped session")
	return nil
}

// StopAll stops every session.
func (g *GameSessionManager) StopAll() {
	g.RLock()
	ids := make([]uuid.UUID, 0, len(g.sessions))
	for id := range g.sessions {
		ids = append(ids, id)
	}
	g.RUnlock()

	for _, id := range ids {
		_ = g.Stop(id)
	}
}

func (g *GameSessionManager) lookup(id uuid.UUID) (*session, error) {
	g.RLock()
	defer g.RUnlock()
	s, ok := g.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (g *GameSessionManager) saveSession(s *session) uuid.UUID {
	g.Lock()
	defer g.Unlock()

	sessionID := uuid.New()
	for {
		if _, ok := g.sessions[sessionID]; !ok {
			break
		}
		sessionID = uuid.New()
	}

	s.id = sessionID
	g.sessions[sessionID] = s
	return sessionID
}

func (g *GameSessionManager) clean(id uuid.UUID) {
	g.Lock()
	defer g.Unlock()
	delete(g.sessions, id)
}

// run plays games back to back: each win is followed by the reset delay and a
// fully re-initialized game. It returns when ctx is done or a reset fails, and
// the session is forgotten before done is closed.
func (g *GameSessionManager) run(ctx context.Context, s *session, gm i.Game) {
	defer close(s.done)
	defer g.clean(s.id)
	logger := g.logger.WithField("session", s.id)

	for {
		if !g.play(ctx, s, gm) {
			return
		}
		logger.Info("player escaped the maze")

		select {
		case <-ctx.Done():
			return
		case <-time.After(g.resetDelay):
		}

		next, err := g.gameFactory()
		if err != nil {
			logger.WithError(err).Error("resetting session")
			return
		}
		gm = next
		s.input.Reset()
		s.publish(gm.Snapshot())
		g.presenter.Message(s.id, "")

		snap := s.snapshot()
		logger.WithFields(log.Fields{"rows": snap.Rows, "cols": snap.Cols}).Info("session reset")
	}
}

// play ticks gm once per frame until the player wins (true) or ctx is done
// (false). Ticking stops as soon as the game is won.
func (g *GameSessionManager) play(ctx context.Context, s *session, gm i.Game) bool {
	frames := g.schedulerFactory()
	defer frames.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case <-frames.Frames():
			ev := gm.Tick(s.input.Snapshot())
			snap := gm.Snapshot()
			s.publish(snap)
			g.presenter.Render(s.id, snap)

			if ev.Has(game.EventStarCollected) {
				g.logger.WithFields(log.Fields{
					"session":   s.id,
					"collected": snap.Collected(),
					"total":     len(snap.Stars),
				}).Debug("star collected")
			}
			if ev.Has(game.EventGateOpened) {
				g.presenter.Message(s.id, gateOpenedMessage)
			}
			if ev.Has(game.EventWon) {
				g.presenter.Message(s.id, wonMessage)
				g.presenter.Won(s.id, snap)
				return true
			}
		}
	}
}
