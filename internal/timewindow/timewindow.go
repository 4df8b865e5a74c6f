package timewindow

import (
	"errors"
	"time"
)

// ErrInvalidWindow is returned when a window's start is not before its end.
var ErrInvalidWindow = errors.New("invalid time window: start must be before end")

// Window is a closed time interval [Start, End].
type Window struct {
	Start time.Time
	End   time.Time
}

// New constructs a Window, rejecting inverted or empty intervals.
func New(start, end time.Time) (Window, error) {
	if !start.Before(end) {
		return Window{}, ErrInvalidWindow
	}
	return Window{Start: start, End: end}, nil
}

// Contains reports whether t lies within the window, endpoints included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// StartsAfter reports whether the window opens strictly after t.
func (w Window) StartsAfter(t time.Time) bool {
	return w.Start.After(t)
}

// EndsBefore reports whether the window closes strictly before t.
func (w Window) EndsBefore(t time.Time) bool {
	return w.End.Before(t)
}
