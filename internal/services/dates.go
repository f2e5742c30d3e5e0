package services

import "time"

// parseDate accepts the YYYY-MM-DD form the settings page submits
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// DaysTogether counts whole days elapsed since the relationship start
func DaysTogether(today, startDate time.Time) int {
	return int(today.Sub(startDate).Hours() / 24)
}
