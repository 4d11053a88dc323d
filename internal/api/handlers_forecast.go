package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/selene/internal/models"
	"github.com/terraincognita07/selene/internal/services"
)

const (
	defaultForecastDays = 5
	maxForecastDays     = 60
)

type ForecastDay struct {
	Date   string        `json:"date"`
	Season models.Season `json:"season"`
}

// GetForecast classifies the next N days through the memoized season
// classifier, using the exact parameter tuple the prediction engine derives,
// so the forecast stays consistent with today's phase.
func (handler *Handler) GetForecast(c *fiber.Ctx) error {
	days := defaultForecastDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxForecastDays {
			return apiError(c, fiber.StatusUnprocessableEntity, "days must be between 1 and 60")
		}
		days = parsed
	}

	profile, err := handler.repos.Profiles.EnsureDefault()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}

	today := handler.today()
	bundle, err := handler.history.HistoryBundle(profile.ID, today)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycle history")
	}

	forecast := make([]ForecastDay, 0, days)
	baseline, ok := services.PredictionBaseline(bundle.Cycles, bundle.Logs, bundle.Preferences)
	for offset := 0; offset < days; offset++ {
		day := today.AddDate(0, 0, offset)
		season := models.SeasonUnknown
		if ok {
			season = handler.seasons.SeasonForDate(
				day,
				baseline.CycleStart,
				baseline.AvgCycleLength,
				baseline.PeriodLength,
				baseline.LutealLength,
			)
		}
		forecast = append(forecast, ForecastDay{
			Date:   day.Format("2006-01-02"),
			Season: season,
		})
	}

	return c.JSON(fiber.Map{"days": forecast})
}
