package models

import "time"

const (
	IntensityNone     = "none"
	IntensitySpotting = "spotting"
	IntensityLight    = "light"
	IntensityMedium   = "medium"
	IntensityHeavy    = "heavy"
)

type BleedingLog struct {
	ID               uint      `gorm:"primaryKey"`
	ProfileID        uint      `gorm:"not null;uniqueIndex:uidx_profile_date"`
	Date             time.Time `gorm:"type:date;not null;uniqueIndex:uidx_profile_date"`
	Intensity        string    `gorm:"not null;default:none"`
	IsIntermenstrual bool      `gorm:"not null;default:false"`
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsTrueFlow reports whether the intensity counts as actual menstrual flow.
// Spotting is logged but never treated as flow.
func IsTrueFlow(intensity string) bool {
	switch intensity {
	case IntensityLight, IntensityMedium, IntensityHeavy:
		return true
	}
	return false
}

func IsValidIntensity(intensity string) bool {
	switch intensity {
	case IntensityNone, IntensitySpotting, IntensityLight, IntensityMedium, IntensityHeavy:
		return true
	}
	return false
}
