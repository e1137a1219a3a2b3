package booking

import (
	"errors"
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	minutesPerDay = 24 * 60
)

var ErrInvalidWindow = errors.New("invalid booking window")

// Window is a half-open [start, end) interval of whole hours on a single
// calendar day. End equal to 24:00 is allowed; windows that would run past
// midnight are rejected rather than wrapped.
type Window struct {
	Date          string
	StartMinutes  int
	DurationHours int
}

func ParseWindow(date, startTime string, durationHours int) (Window, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return Window{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidWindow)
	}

	start, err := ParseClock(startTime)
	if err != nil {
		return Window{}, fmt.Errorf("%w: start time must be HH:MM", ErrInvalidWindow)
	}

	if durationHours < 1 {
		return Window{}, fmt.Errorf("%w: duration must be a positive number of hours", ErrInvalidWindow)
	}

	w := Window{Date: date, StartMinutes: start, DurationHours: durationHours}
	if w.EndMinutes() > minutesPerDay {
		return Window{}, fmt.Errorf("%w: booking cannot extend past midnight", ErrInvalidWindow)
	}

	return w, nil
}

func (w Window) EndMinutes() int {
	return w.StartMinutes + w.DurationHours*60
}

func (w Window) Start() string {
	return FormatClock(w.StartMinutes)
}

func (w Window) End() string {
	return FormatClock(w.EndMinutes())
}

// Overlaps reports whether the window shares any instant with [startMin, endMin)
// under half-open semantics: [a,b) and [c,d) overlap iff a < d and b > c.
func (w Window) Overlaps(startMin, endMin int) bool {
	return w.StartMinutes < endMin && w.EndMinutes() > startMin
}

// ParseClock converts a 24-hour "HH:MM" string to minutes from midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes from midnight as "HH:MM". 1440 becomes "24:00",
// the exclusive end of the last bookable window of a day.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
