package screen

import (
	"time"

	"ledboard/lifecycle"
)

const DefaultFrameInterval = time.Second / 30

// Loop drives dirty-only renders on a fixed cadence until its lifecycle
// stops. Render failures are already logged by the screen, so the loop just
// keeps going.
type Loop struct {
	screen   *Screen
	interval time.Duration
}

func NewLoop(s *Screen, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Loop{screen: s, interval: interval}
}

// Run renders until the lifecycle stops. Start it with lifecycle.Go so
// shutdown waits for it.
func (l *Loop) Run(lc *lifecycle.Lifecycle) {
	l.screen.log.Debug().Dur("interval", l.interval).Msg("render loop started")
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	for {
		select {
		case <-lc.Stopping():
			l.screen.log.Debug().Msg("render loop stopped")
			return
		case <-ticker.C:
			_ = l.screen.Update()
		}
	}
}
