package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/selene/internal/services"
)

type declareCycleStartInput struct {
	StartDate string `json:"start_date"`
}

func (handler *Handler) GetCycles(c *fiber.Ctx) error {
	profile, err := handler.repos.Profiles.EnsureDefault()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}

	records, err := handler.history.RecentCycles(profile.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycles")
	}
	return c.JSON(fiber.Map{"cycles": records})
}

func (handler *Handler) DeclareCycleStart(c *fiber.Ctx) error {
	input := declareCycleStartInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	startDate, ok := parseDay(input.StartDate, handler.location)
	if !ok {
		return apiError(c, fiber.StatusUnprocessableEntity, "start_date must be a valid YYYY-MM-DD date")
	}
	if services.DateOnly(startDate).After(handler.today()) {
		return apiError(c, fiber.StatusUnprocessableEntity, "start_date cannot be in the future")
	}

	profile, err := handler.repos.Profiles.EnsureDefault()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}

	record, err := handler.history.DeclarePeriodStart(profile.ID, startDate)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to record cycle start")
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}
