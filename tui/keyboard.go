package tui

import (
	"sync"
	"time"
	"unicode"

	"github.com/beka-birhanu/starmaze/game"
	"github.com/beka-birhanu/starmaze/maze"
	"github.com/gdamore/tcell/v2"
)

// DefaultHoldTimeout is how long a direction stays held after its last key
// event. Terminals report auto-repeat but never a release.
const DefaultHoldTimeout = 200 * time.Millisecond

// KeyName returns the name game.KeyBindings knows ev by, or "" for keys that
// have no name there.
func KeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "ArrowUp"
	case tcell.KeyDown:
		return "ArrowDown"
	case tcell.KeyLeft:
		return "ArrowLeft"
	case tcell.KeyRight:
		return "ArrowRight"
	case tcell.KeyRune:
		return string(unicode.ToLower(ev.Rune()))
	}
	return ""
}

// IsQuit reports whether ev asks to leave the game: Esc, Ctrl-C or q.
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// Keyboard turns key presses into held directions on a game.Input and
// releases each direction once its hold timeout passes without a repeat.
type Keyboard struct {
	input *game.Input
	hold  time.Duration

	// held maps each direction this keyboard pressed to its release deadline.
	// The session resets the Input on its own after a win; entries left over
	// from before then only clear flags that are already clear, and they expire
	// within one hold timeout.
	mu   sync.Mutex
	held map[maze.Direction]time.Time
}

// NewKeyboard returns a keyboard driving in. A non-positive hold uses
// DefaultHoldTimeout.
func NewKeyboard(in *game.Input, hold time.Duration) *Keyboard {
	if hold <= 0 {
		hold = DefaultHoldTimeout
	}
	return &Keyboard{
		input: in,
		hold:  hold,
		held:  make(map[maze.Direction]time.Time),
	}
}

// Press holds the direction bound to name until now plus the hold timeout.
// It reports whether name is bound.
func (k *Keyboard) Press(name string, now time.Time) bool {
	d, ok := game.KeyBindings[name]
	if !ok {
		return false
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	k.input.Set(d, true)
	k.held[d] = now.Add(k.hold)
	return true
}

// Release lets go of every direction whose hold expired at or before now.
func (k *Keyboard) Release(now time.Time) {
	k.mu.Lock()
	defer k.mu.Unlock()
	for d, until := range k.held {
		if now.Before(until) {
			continue
		}
		k.input.Set(d, false)
		delete(k.held, d)
	}
}

// ReleaseAll lets go of every direction.
func (k *Keyboard) ReleaseAll() {
	k.mu.Lock()
	defer k.mu.Unlock()
	clear(k.held)
	k.input.Reset()
}
