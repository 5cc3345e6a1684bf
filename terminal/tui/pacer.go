package tui

import (
	"time"
)

// frameSlack is shaved off each sleep to absorb scheduler wake-up latency
const frameSlack = 400 * time.Microsecond

// Clock hooks, replaced in tests
var (
	now   = time.Now
	sleep = time.Sleep
)

// FrameTiming describes one paced frame
type FrameTiming struct {
	Elapsed        float64 // Seconds since the previous call
	ActiveFraction float64 // Share of Elapsed spent outside the pacer
}

// TargetFramerate sleeps out the remainder of a 1/fps frame measured from *last,
// then stores the current time in *last
// A non-positive fps never sleeps
func TargetFramerate(fps int, last *time.Time) FrameTiming {
	active := now().Sub(*last)
	if fps > 0 {
		wait := time.Second/time.Duration(fps) - active - frameSlack
		if wait > 0 {
			sleep(wait)
		}
	}

	end := now()
	total := end.Sub(*last)
	*last = end

	timing := FrameTiming{Elapsed: total.Seconds()}
	if total > 0 {
		timing.ActiveFraction = active.Seconds() / total.Seconds()
	}
	return timing
}
