package timeutil

import "time"

// NextDailyTick returns the next occurrence of the given local hour strictly
// after now. Used to schedule the daily dedup reset.
func NextDailyTick(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
