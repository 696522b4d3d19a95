package service

import (
	"time"

	"github.com/beka-birhanu/starmaze/service/i"
)

// TickerScheduler is a FrameScheduler backed by a time.Ticker.
type TickerScheduler struct {
	ticker *time.Ticker
}

var _ i.FrameScheduler = &TickerScheduler{}

// NewTickerScheduler starts a ticker firing every interval.
func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	return &TickerScheduler{ticker: time.NewTicker(interval)}
}

// TickerFactory returns a constructor for schedulers ticking at interval.
func TickerFactory(interval time.Duration) func() i.FrameScheduler {
	return func() i.FrameScheduler {
		return NewTickerScheduler(interval)
	}
}

// Frames implements i.FrameScheduler.
func (t *TickerScheduler) Frames() <-chan time.Time {
	return t.ticker.C
}

// Stop implements i.FrameScheduler.
func (t *TickerScheduler) Stop() {
	t.ticker.Stop()
}
