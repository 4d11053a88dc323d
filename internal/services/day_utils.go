package services

import "time"

// DateOnly drops the time-of-day component. The normalized value is anchored
// to UTC so day differences are exact 24h multiples regardless of DST.
func DateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts calendar days from one date to another. Negative when
// to precedes from.
func DaysBetween(from time.Time, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}

func sameCalendarDay(a time.Time, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}
