package models

import "time"

type Phase string

const (
	PhaseMenstrual  Phase = "menstrual"
	PhaseFollicular Phase = "follicular"
	PhaseOvulatory  Phase = "ovulatory"
	PhaseLuteal     Phase = "luteal"
	PhaseUnknown    Phase = "unknown"
)

type Season string

const (
	SeasonWinter  Season = "winter"
	SeasonSpring  Season = "spring"
	SeasonSummer  Season = "summer"
	SeasonAutumn  Season = "autumn"
	SeasonUnknown Season = "unknown"
)

// SeasonForPhase is the fixed user-facing renaming of physiological phases.
func SeasonForPhase(phase Phase) Season {
	switch phase {
	case PhaseMenstrual:
		return SeasonWinter
	case PhaseFollicular:
		return SeasonSpring
	case PhaseOvulatory:
		return SeasonSummer
	case PhaseLuteal:
		return SeasonAutumn
	}
	return SeasonUnknown
}

type PredictionWindow struct {
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Confidence int       `json:"confidence"`
}

// Prediction is recomputed on every read and carries no identity of its own.
type Prediction struct {
	CurrentPhase     Phase             `json:"current_phase"`
	CurrentSeason    Season            `json:"current_season"`
	NextPeriodWindow *PredictionWindow `json:"next_period_window"`
	OvulationWindow  *PredictionWindow `json:"ovulation_window"`
	FertileWindow    *PredictionWindow `json:"fertile_window"`
	AvgCycleLength   int               `json:"avg_cycle_length"`
	CycleVariability int               `json:"cycle_variability"`
	Rationale        string            `json:"rationale"`
	Watchouts        []string          `json:"watchouts"`
}
