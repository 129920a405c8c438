package display

import "time"

const (
	// ShortSleep is the near-real-time poll interval used close to and during games.
	ShortSleep = 60 * time.Second
	// LongSleep caps the interval far ahead of an event, and is used once an event has passed.
	LongSleep = 2 * time.Hour
	// NearHorizon is how close an event must be before polling switches to ShortSleep.
	NearHorizon = 20 * time.Minute
	// IdleSleep is used when nothing is scheduled.
	IdleSleep = 15 * time.Minute
)

// SleepPolicy decides how long the client should sleep before polling again.
type SleepPolicy struct {
	Short     time.Duration
	Long      time.Duration
	Threshold time.Duration
}

// DefaultSleepPolicy returns the production polling policy.
func DefaultSleepPolicy() SleepPolicy {
	return SleepPolicy{
		Short:     ShortSleep,
		Long:      LongSleep,
		Threshold: NearHorizon,
	}
}

// Until returns the sleep interval for an event starting in delta.
//
// A negative delta means the event has started without the source reflecting it yet,
// so the client backs off to Long. Beyond Threshold the client sleeps until the
// threshold is reached, capped at Long and floored at Short. Inside it, Short.
func (p SleepPolicy) Until(delta time.Duration) time.Duration {
	switch {
	case delta < 0:
		return p.Long
	case delta > p.Threshold:
		wait := delta - p.Threshold
		if wait > p.Long {
			wait = p.Long
		}
		if wait < p.Short {
			wait = p.Short
		}
		return wait
	default:
		return p.Short
	}
}

// Seconds is Until expressed in whole seconds.
func (p SleepPolicy) Seconds(delta time.Duration) int {
	return int(p.Until(delta) / time.Second)
}
