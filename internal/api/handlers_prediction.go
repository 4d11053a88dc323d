package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/selene/internal/services"
)

func (handler *Handler) GetPrediction(c *fiber.Ctx) error {
	profile, err := handler.repos.Profiles.EnsureDefault()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}

	today := handler.today()
	bundle, err := handler.history.HistoryBundle(profile.ID, today)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycle history")
	}

	prediction := services.BuildPrediction(bundle.Cycles, bundle.Logs, bundle.Preferences, today)
	return c.JSON(prediction)
}
