package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/selene/internal/services"
)

type bleedingLogInput struct {
	Intensity        string `json:"intensity"`
	IsIntermenstrual bool   `json:"is_intermenstrual"`
	Notes            string `json:"notes"`
}

func (handler *Handler) UpsertBleedingLog(c *fiber.Ctx) error {
	day, ok := parseDay(c.Params("date"), handler.location)
	if !ok {
		return apiError(c, fiber.StatusUnprocessableEntity, "date must be a valid YYYY-MM-DD date")
	}

	input := bleedingLogInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	profile, err := handler.repos.Profiles.EnsureDefault()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}

	entry, err := handler.history.RecordBleeding(profile.ID, day, input.Intensity, input.IsIntermenstrual, input.Notes)
	if err != nil {
		if errors.Is(err, services.ErrUnknownBleedingIntensity) {
			return apiError(c, fiber.StatusUnprocessableEntity, "intensity must be one of none, spotting, light, medium, heavy")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to record bleeding log")
	}
	return c.JSON(entry)
}
