package services

import (
	"time"

	"github.com/terraincognita07/selene/internal/models"
)

const (
	// Forward-looking ovulation windows are wider than the classification
	// window around the same day (classifierOvulationHalfWidth). Keep the two
	// constants separate.
	predictorOvulationHalfWidth = 2
	fertileWindowLeadDays       = 5
	fertileWindowTrailDays      = 1

	maxPlausibleCycleDay = 100

	baseConfidence              = 70
	perimenopauseBaseConfidence = 50
	confidencePerVariability    = 5
	minNextPeriodConfidence     = 20
	minOvulationConfidence      = 15
	fallbackVariability         = 3

	highVariabilityThreshold      = 7
	rationaleVariabilityThreshold = 5
)

const (
	RationaleInsufficientData  = "Not enough data yet. Log the start of a period to unlock predictions."
	RationaleImplausibleAnchor = "The recorded cycle start date looks implausible. Verify the start date of your current cycle."
	RationaleSteadyCycles      = "Recent cycle lengths are steady, so the predicted windows are fairly tight."
	RationaleVariableCycles    = "Recent cycle lengths vary, so the predicted windows are wider than usual."
)

const (
	WatchoutLongCycles      = "Cycles longer than 45 days can point to anovulation or perimenopause. Consider discussing this with a clinician."
	WatchoutHighVariability = "Cycle length swings a lot between cycles, so these predictions carry low confidence."
)

// BuildPrediction classifies today and computes the forward windows for the
// next period, ovulation and the fertile window. It always returns a
// structurally valid Prediction: every degenerate input (empty history,
// corrupted anchor date, sparse statistics) resolves to a default result with
// an explanatory rationale, never an error. Callers invoke it synchronously
// on every read.
func BuildPrediction(cycles []models.CycleRecord, logs []models.BleedingLog, prefs models.Preferences, today time.Time) models.Prediction {
	baseline, ok := PredictionBaseline(cycles, logs, prefs)
	if !ok {
		return defaultPrediction(RationaleInsufficientData)
	}

	// The sanity gate runs before any other derivation: a corrupted anchor
	// date would poison every downstream window.
	dayInCycle := DaysBetween(baseline.CycleStart, today) + 1
	if dayInCycle <= 0 || dayInCycle > maxPlausibleCycleDay {
		return defaultPrediction(RationaleImplausibleAnchor)
	}

	estimatedOvulationDay := baseline.AvgCycleLength - baseline.LutealLength
	phase := livePhase(dayInCycle, baseline.PeriodLength, estimatedOvulationDay, bleedingOn(logs, today))

	nextPeriodDate := baseline.CycleStart.AddDate(0, 0, baseline.AvgCycleLength)
	nextPeriodConfidence := periodConfidence(baseline.Variability, baseline.Perimenopause)

	ovulationDate := nextPeriodDate.AddDate(0, 0, -baseline.LutealLength)
	ovulationConfidence := nextPeriodConfidence - 10
	if ovulationConfidence < minOvulationConfidence {
		ovulationConfidence = minOvulationConfidence
	}

	return models.Prediction{
		CurrentPhase:  phase,
		CurrentSeason: models.SeasonForPhase(phase),
		NextPeriodWindow: &models.PredictionWindow{
			Start:      nextPeriodDate.AddDate(0, 0, -baseline.Variability),
			End:        nextPeriodDate.AddDate(0, 0, baseline.Variability),
			Confidence: nextPeriodConfidence,
		},
		OvulationWindow: &models.PredictionWindow{
			Start:      ovulationDate.AddDate(0, 0, -predictorOvulationHalfWidth),
			End:        ovulationDate.AddDate(0, 0, predictorOvulationHalfWidth),
			Confidence: ovulationConfidence,
		},
		FertileWindow: &models.PredictionWindow{
			Start:      ovulationDate.AddDate(0, 0, -fertileWindowLeadDays),
			End:        ovulationDate.AddDate(0, 0, fertileWindowTrailDays),
			Confidence: ovulationConfidence,
		},
		AvgCycleLength:   baseline.AvgCycleLength,
		CycleVariability: baseline.Variability,
		Rationale:        rationaleForVariability(baseline.Variability),
		Watchouts:        watchoutsFor(baseline.AvgCycleLength, baseline.Variability),
	}
}

// livePhase mirrors the date-only season classifier but is keyed off the live
// bleeding state: an actual flow entry for today forces menstrual regardless
// of the day count.
func livePhase(dayInCycle int, periodLength int, estimatedOvulationDay int, bleedingToday bool) models.Phase {
	switch {
	case bleedingToday || dayInCycle <= periodLength:
		return models.PhaseMenstrual
	case dayInCycle < estimatedOvulationDay-classifierOvulationHalfWidth:
		return models.PhaseFollicular
	case dayInCycle <= estimatedOvulationDay+classifierOvulationHalfWidth:
		return models.PhaseOvulatory
	default:
		return models.PhaseLuteal
	}
}

func bleedingOn(logs []models.BleedingLog, day time.Time) bool {
	for _, entry := range logs {
		if models.IsTrueFlow(entry.Intensity) && sameCalendarDay(entry.Date, day) {
			return true
		}
	}
	return false
}

func periodConfidence(variability int, perimenopause bool) int {
	base := baseConfidence
	if perimenopause {
		base = perimenopauseBaseConfidence
	}
	confidence := base - variability*confidencePerVariability
	if confidence < minNextPeriodConfidence {
		confidence = minNextPeriodConfidence
	}
	return confidence
}

func rationaleForVariability(variability int) string {
	if variability > rationaleVariabilityThreshold {
		return RationaleVariableCycles
	}
	return RationaleSteadyCycles
}

func watchoutsFor(avgCycleLength int, variability int) []string {
	watchouts := make([]string, 0, 2)
	if avgCycleLength > models.AnovulatoryLengthThreshold {
		watchouts = append(watchouts, WatchoutLongCycles)
	}
	if variability > highVariabilityThreshold {
		watchouts = append(watchouts, WatchoutHighVariability)
	}
	return watchouts
}

func defaultPrediction(rationale string) models.Prediction {
	return models.Prediction{
		CurrentPhase:  models.PhaseUnknown,
		CurrentSeason: models.SeasonUnknown,
		Rationale:     rationale,
		Watchouts:     make([]string, 0),
	}
}
