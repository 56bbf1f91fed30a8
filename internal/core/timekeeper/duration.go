package timekeeper

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidDuration is returned when a duration entry does not parse.
var ErrInvalidDuration = errors.New("enter valid numbers")

// DurationEntry holds the raw hours/minutes/seconds fields typed by the user.
type DurationEntry struct {
	Hours   string
	Minutes string
	Seconds string
}

// Total parses every field and returns the duration in seconds.
// A single bad field rejects the whole entry.
func (entry DurationEntry) Total() (int64, error) {
	var total int64
	for _, field := range []struct {
		value string
		unit  int64
	}{
		{entry.Hours, 3600},
		{entry.Minutes, 60},
		{entry.Seconds, 1},
	} {
		parsed, err := strconv.ParseInt(strings.TrimSpace(field.value), 10, 32)
		if err != nil || parsed < 0 {
			return 0, ErrInvalidDuration
		}
		total += parsed * field.unit
	}
	return total, nil
}
