package shapeviz

import (
	"time"
)

type Clock func() time.Time

// Time tracks the frame clock: Start is fixed at install, Time is the last frame.
type Time struct {
	Start time.Time
	Time  time.Time
	Dt    time.Duration
}

// Elapsed is the wall-clock time since Start at the last frame.
func (t *Time) Elapsed() time.Duration {
	return t.Time.Sub(t.Start)
}

type TimeModule struct {
	// Clock defaults to time.Now.
	Clock Clock
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	clock := mod.Clock
	if clock == nil {
		clock = time.Now
	}
	now := clock()
	app.clock = clock
	app.time = &Time{
		Start: now,
		Time:  now,
		Dt:    0,
	}
}

func timeSystem(timeResource *Time, now time.Time) {
	timeResource.Dt = now.Sub(timeResource.Time)
	timeResource.Time = now
}
