package staffing

import (
	"errors"
	"fmt"
)

// ErrInvalidClock is returned for time-of-day strings that are not 24-hour HH:MM
var ErrInvalidClock = errors.New("invalid clock time")

// ParseClock parses a 24-hour "HH:MM" string into minutes since midnight.
// Hours must be 00-23 and minutes 00-59; there is no next-day form.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	h, ok := twoDigits(s[0], s[1])
	if !ok || h > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	m, ok := twoDigits(s[3], s[4])
	if !ok || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return h*60 + m, nil
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// DurationMinutes returns end minus start in minutes. No rollover is applied,
// so an end earlier than the start gives a negative duration.
func DurationMinutes(start, end string) (int, error) {
	s, err := ParseClock(start)
	if err != nil {
		return 0, fmt.Errorf("start time: %w", err)
	}
	e, err := ParseClock(end)
	if err != nil {
		return 0, fmt.Errorf("end time: %w", err)
	}
	return e - s, nil
}
