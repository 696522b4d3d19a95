package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
)

// App forwards terminal events to a Keyboard until the player quits.
type App struct {
	screen   tcell.Screen
	keyboard *Keyboard
	logger   *log.Entry
	now      func() time.Time
}

// NewApp returns an app reading events from screen.
func NewApp(screen tcell.Screen, keyboard *Keyboard, logger *log.Entry) *App {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return &App{
		screen:   screen,
		keyboard: keyboard,
		logger:   logger,
		now:      time.Now,
	}
}

// Run polls the screen until a quit key arrives or ctx is done. Expired key
// holds are released on a short period in between.
func (a *App) Run(ctx context.Context) {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	release := time.NewTicker(a.keyboard.hold / 4)
	defer release.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if !a.handleEvent(ev) {
				a.logger.Info("quit requested")
				return
			}
		case <-release.C:
			a.keyboard.Release(a.now())
		}
	}
}

// handleEvent applies ev and reports whether the app should keep running.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsQuit(ev) {
			a.keyboard.ReleaseAll()
			return false
		}
		if name := KeyName(ev); name != "" {
			a.keyboard.Press(name, a.now())
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}
