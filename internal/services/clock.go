package services

import "time"

// Clock supplies the current time so date-derived behavior (daily quote,
// days-together counter, theme) is testable with fixed dates.
type Clock interface {
	Now() time.Time
	// Today returns the current time truncated to its calendar day.
	Today() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// RealClock returns the wall clock
func RealClock() Clock { return realClock{} }
