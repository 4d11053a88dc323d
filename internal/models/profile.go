package models

import "time"

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
	DefaultLutealLength = 13
	MinCycleLength      = 21
)

type Profile struct {
	ID                uint `gorm:"primaryKey"`
	AvgCycleLength    int  `gorm:"not null;default:28"`
	AvgPeriodLength   int  `gorm:"not null;default:5"`
	LutealPhaseLength int  `gorm:"not null;default:13"`
	Perimenopause     bool `gorm:"not null;default:false"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type Preferences struct {
	AvgCycleLength    int  `json:"avg_cycle_length"`
	AvgPeriodLength   int  `json:"avg_period_length"`
	LutealPhaseLength int  `json:"luteal_phase_length"`
	Perimenopause     bool `json:"perimenopause"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		AvgCycleLength:    DefaultCycleLength,
		AvgPeriodLength:   DefaultPeriodLength,
		LutealPhaseLength: DefaultLutealLength,
	}
}

// Preferences resolves the stored profile row into engine tunables, falling
// back to the documented defaults for unset values.
func (profile Profile) Preferences() Preferences {
	prefs := DefaultPreferences()
	if profile.AvgCycleLength > 0 {
		prefs.AvgCycleLength = profile.AvgCycleLength
	}
	if profile.AvgPeriodLength > 0 {
		prefs.AvgPeriodLength = profile.AvgPeriodLength
	}
	if profile.LutealPhaseLength > 0 {
		prefs.LutealPhaseLength = profile.LutealPhaseLength
	}
	prefs.Perimenopause = profile.Perimenopause
	return prefs
}
