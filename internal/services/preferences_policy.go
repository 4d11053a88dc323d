package services

import (
	"errors"

	"github.com/terraincognita07/selene/internal/models"
)

var (
	ErrPreferencesCycleLengthOutOfRange  = errors.New("preferences cycle length out of range")
	ErrPreferencesPeriodLengthOutOfRange = errors.New("preferences period length out of range")
	ErrPreferencesLutealLengthOutOfRange = errors.New("preferences luteal phase length out of range")
	ErrPreferencesLutealIncompatible     = errors.New("preferences luteal phase incompatible with cycle length")
)

const (
	maxCycleLengthPreference  = 60
	minPeriodLengthPreference = 1
	maxPeriodLengthPreference = 10
	minLutealLengthPreference = 9
	maxLutealLengthPreference = 16
)

// ValidatePreferences gates profile updates. The luteal compatibility check
// requires the derived ovulation day to land after the period, otherwise the
// phase branches would overlap.
func ValidatePreferences(input models.Preferences) error {
	if input.AvgCycleLength < models.MinCycleLength || input.AvgCycleLength > maxCycleLengthPreference {
		return ErrPreferencesCycleLengthOutOfRange
	}
	if input.AvgPeriodLength < minPeriodLengthPreference || input.AvgPeriodLength > maxPeriodLengthPreference {
		return ErrPreferencesPeriodLengthOutOfRange
	}
	if input.LutealPhaseLength < minLutealLengthPreference || input.LutealPhaseLength > maxLutealLengthPreference {
		return ErrPreferencesLutealLengthOutOfRange
	}

	ovulationDay := input.AvgCycleLength - input.LutealPhaseLength
	if ovulationDay <= input.AvgPeriodLength {
		return ErrPreferencesLutealIncompatible
	}
	return nil
}

// ApplyPreferences copies validated tunables onto the stored profile row.
func ApplyPreferences(profile *models.Profile, input models.Preferences) {
	if profile == nil {
		return
	}
	profile.AvgCycleLength = input.AvgCycleLength
	profile.AvgPeriodLength = input.AvgPeriodLength
	profile.LutealPhaseLength = input.LutealPhaseLength
	profile.Perimenopause = input.Perimenopause
}
