package db

import (
	"time"

	"github.com/terraincognita07/selene/internal/models"
	"gorm.io/gorm"
)

type BleedingLogRepository struct {
	database *gorm.DB
}

func NewBleedingLogRepository(database *gorm.DB) *BleedingLogRepository {
	return &BleedingLogRepository{database: database}
}

func (repo *BleedingLogRepository) ListByProfileRange(profileID uint, from time.Time, to time.Time) ([]models.BleedingLog, error) {
	logs := make([]models.BleedingLog, 0)
	if err := repo.database.
		Where("profile_id = ? AND date >= ? AND date < ?", profileID, from, to).
		Order("date ASC, id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *BleedingLogRepository) FindByProfileAndDay(profileID uint, day time.Time) (models.BleedingLog, bool, error) {
	entry := models.BleedingLog{}
	result := repo.database.
		Where("profile_id = ? AND date >= ? AND date < ?", profileID, day, day.AddDate(0, 0, 1)).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.BleedingLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.BleedingLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *BleedingLogRepository) Create(entry *models.BleedingLog) error {
	return repo.database.Create(entry).Error
}

func (repo *BleedingLogRepository) Save(entry *models.BleedingLog) error {
	return repo.database.Save(entry).Error
}
