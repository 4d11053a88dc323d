package services

import (
	"time"

	"github.com/terraincognita07/selene/internal/models"
)

// CycleBaseline is the parameter tuple shared by the prediction engine and
// the standalone season classifier. Calendar and forecast consumers must use
// the same tuple the engine used, otherwise "today's phase" and the multi-day
// forecast drift apart.
type CycleBaseline struct {
	CycleStart     time.Time
	AvgCycleLength int
	PeriodLength   int
	LutealLength   int
	Variability    int
	Perimenopause  bool
	Stats          CycleStatistics
}

// PredictionBaseline derives the baseline from the raw history bundle.
// Returns false when there is no cycle on record at all.
func PredictionBaseline(cycles []models.CycleRecord, logs []models.BleedingLog, prefs models.Preferences) (CycleBaseline, bool) {
	if len(cycles) == 0 {
		return CycleBaseline{}, false
	}

	cycleStart := DateOnly(cycles[0].StartDate)
	stats := ComputeCycleStatistics(cycles)

	avgCycleLength := prefs.AvgCycleLength
	if avgCycleLength <= 0 {
		avgCycleLength = models.DefaultCycleLength
	}
	if stats.SampleCount >= 2 {
		avgCycleLength = stats.MedianLength
	}
	if avgCycleLength < models.MinCycleLength {
		avgCycleLength = models.MinCycleLength
	}

	variability := fallbackVariability
	if stats.SampleCount >= 2 {
		variability = stats.Variability
	}

	lutealLength := prefs.LutealPhaseLength
	if lutealLength <= 0 {
		lutealLength = models.DefaultLutealLength
	}

	return CycleBaseline{
		CycleStart:     cycleStart,
		AvgCycleLength: avgCycleLength,
		PeriodLength:   openCyclePeriodLength(cycleStart, logs, prefs),
		LutealLength:   lutealLength,
		Variability:    variability,
		Perimenopause:  prefs.Perimenopause,
		Stats:          stats,
	}, true
}

// openCyclePeriodLength estimates how long the current period ran from the
// bleeding log: latest true-flow entry at or after the cycle start. Spotting
// never extends the period. Falls back to the preferred period length while
// the open cycle has no qualifying entries yet.
func openCyclePeriodLength(cycleStart time.Time, logs []models.BleedingLog, prefs models.Preferences) int {
	latest := time.Time{}
	for _, entry := range logs {
		if !models.IsTrueFlow(entry.Intensity) {
			continue
		}
		day := DateOnly(entry.Date)
		if day.Before(cycleStart) {
			continue
		}
		if latest.IsZero() || day.After(latest) {
			latest = day
		}
	}

	if latest.IsZero() {
		if prefs.AvgPeriodLength > 0 {
			return prefs.AvgPeriodLength
		}
		return models.DefaultPeriodLength
	}
	return DaysBetween(cycleStart, latest) + 1
}
