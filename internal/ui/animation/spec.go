package animation

import "time"

// BlinkSpec describes one blink sequence: Count on/off cycles, each shown
// for On and hidden for Off.
type BlinkSpec struct {
	Count int
	On    time.Duration
	Off   time.Duration
}

// Total returns how long the sequence runs.
func (spec BlinkSpec) Total() time.Duration {
	if spec.Count <= 0 {
		return 0
	}
	return time.Duration(spec.Count) * (spec.On + spec.Off)
}

// ExpirySpec is the blink played when a countdown finishes.
func ExpirySpec() BlinkSpec {
	return BlinkSpec{
		Count: 6,
		On:    350 * time.Millisecond,
		Off:   250 * time.Millisecond,
	}
}
