package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/selene/internal/models"
	"github.com/terraincognita07/selene/internal/services"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	profile, err := handler.repos.Profiles.EnsureDefault()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}
	return c.JSON(profile.Preferences())
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	input := models.Preferences{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := services.ValidatePreferences(input); err != nil {
		return apiError(c, fiber.StatusUnprocessableEntity, preferencesErrorMessage(err))
	}

	profile, err := handler.repos.Profiles.EnsureDefault()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}

	services.ApplyPreferences(&profile, input)
	if err := handler.repos.Profiles.Save(&profile); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save profile")
	}
	return c.JSON(profile.Preferences())
}

func preferencesErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrPreferencesCycleLengthOutOfRange):
		return "avg_cycle_length must be between 21 and 60"
	case errors.Is(err, services.ErrPreferencesPeriodLengthOutOfRange):
		return "avg_period_length must be between 1 and 10"
	case errors.Is(err, services.ErrPreferencesLutealLengthOutOfRange):
		return "luteal_phase_length must be between 9 and 16"
	case errors.Is(err, services.ErrPreferencesLutealIncompatible):
		return "luteal_phase_length is incompatible with the cycle and period lengths"
	}
	return "invalid preferences"
}
