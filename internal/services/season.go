package services

import (
	"time"

	"github.com/terraincognita07/selene/internal/models"
)

// The classification window around the ovulation day is deliberately narrower
// than the forward-looking prediction window (predictorOvulationHalfWidth).
const classifierOvulationHalfWidth = 1

// SeasonForDate maps a calendar date to its cycle season. The date is first
// normalized into a canonical cycle position, so the function is well-defined
// for dates arbitrarily far past the anchor and for cycles that run long.
// Dates preceding the anchor map to SeasonUnknown.
func SeasonForDate(date time.Time, cycleStart time.Time, avgCycleLength int, periodLength int, lutealLength int) models.Season {
	if avgCycleLength <= 0 || lutealLength <= 0 || periodLength < 0 {
		return models.SeasonUnknown
	}

	dayInCycle := DaysBetween(cycleStart, date) + 1
	if dayInCycle < 1 {
		return models.SeasonUnknown
	}

	normalizedDay := (dayInCycle-1)%avgCycleLength + 1
	ovulationDay := avgCycleLength - lutealLength

	switch {
	case normalizedDay <= periodLength:
		return models.SeasonWinter
	case normalizedDay < ovulationDay-classifierOvulationHalfWidth:
		return models.SeasonSpring
	case normalizedDay <= ovulationDay+classifierOvulationHalfWidth:
		return models.SeasonSummer
	default:
		return models.SeasonAutumn
	}
}
