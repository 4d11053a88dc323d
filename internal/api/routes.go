package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")
	api.Get("/prediction", handler.GetPrediction)
	api.Get("/forecast", handler.GetForecast)
	api.Get("/cycles", handler.GetCycles)
	api.Post("/cycles", handler.DeclareCycleStart)
	api.Post("/logs/:date", handler.UpsertBleedingLog)
	api.Get("/profile", handler.GetProfile)
	api.Put("/profile", handler.UpdateProfile)
}
