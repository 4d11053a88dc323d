package api

import (
	"time"

	"github.com/terraincognita07/selene/internal/db"
	"github.com/terraincognita07/selene/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	repos    *db.Repositories
	history  *services.CycleHistoryService
	seasons  *services.SeasonCache
	location *time.Location
}

func NewHandler(database *gorm.DB, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}
	repos := db.NewRepositories(database)
	return &Handler{
		repos:    repos,
		history:  services.NewCycleHistoryService(repos.Cycles, repos.BleedingLogs, repos.Profiles),
		seasons:  services.NewSeasonCache(),
		location: location,
	}
}

func (handler *Handler) today() time.Time {
	return services.DateOnly(time.Now().In(handler.location))
}
