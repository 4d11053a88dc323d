package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/selene/internal/models"
)

func TestValidatePreferences(t *testing.T) {
	cases := []struct {
		name     string
		input    models.Preferences
		expected error
	}{
		{"defaults", models.DefaultPreferences(), nil},
		{"cycle too short", models.Preferences{AvgCycleLength: 18, AvgPeriodLength: 5, LutealPhaseLength: 13}, ErrPreferencesCycleLengthOutOfRange},
		{"cycle too long", models.Preferences{AvgCycleLength: 70, AvgPeriodLength: 5, LutealPhaseLength: 13}, ErrPreferencesCycleLengthOutOfRange},
		{"period zero", models.Preferences{AvgCycleLength: 28, AvgPeriodLength: 0, LutealPhaseLength: 13}, ErrPreferencesPeriodLengthOutOfRange},
		{"period too long", models.Preferences{AvgCycleLength: 28, AvgPeriodLength: 11, LutealPhaseLength: 13}, ErrPreferencesPeriodLengthOutOfRange},
		{"luteal too short", models.Preferences{AvgCycleLength: 28, AvgPeriodLength: 5, LutealPhaseLength: 8}, ErrPreferencesLutealLengthOutOfRange},
		{"luteal too long", models.Preferences{AvgCycleLength: 28, AvgPeriodLength: 5, LutealPhaseLength: 17}, ErrPreferencesLutealLengthOutOfRange},
		{"ovulation inside period", models.Preferences{AvgCycleLength: 21, AvgPeriodLength: 8, LutealPhaseLength: 13}, ErrPreferencesLutealIncompatible},
	}

	for _, testCase := range cases {
		err := ValidatePreferences(testCase.input)
		if !errors.Is(err, testCase.expected) {
			t.Fatalf("%s: expected %v, got %v", testCase.name, testCase.expected, err)
		}
	}
}

func TestApplyPreferences(t *testing.T) {
	profile := models.Profile{ID: 1}
	input := models.Preferences{AvgCycleLength: 31, AvgPeriodLength: 6, LutealPhaseLength: 12, Perimenopause: true}

	ApplyPreferences(&profile, input)

	if profile.AvgCycleLength != 31 || profile.AvgPeriodLength != 6 || profile.LutealPhaseLength != 12 || !profile.Perimenopause {
		t.Fatalf("unexpected profile after apply: %+v", profile)
	}

	// Must not panic on nil.
	ApplyPreferences(nil, input)
}
