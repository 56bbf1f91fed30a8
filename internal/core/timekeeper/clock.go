package timekeeper

import "time"

// Clock provides the current wall-clock time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time from the standard library.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
