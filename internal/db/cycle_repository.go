package db

import (
	"github.com/terraincognita07/selene/internal/models"
	"gorm.io/gorm"
)

type CycleRepository struct {
	database *gorm.DB
}

func NewCycleRepository(database *gorm.DB) *CycleRepository {
	return &CycleRepository{database: database}
}

// ListRecentByProfile returns records newest-first, the order the statistics
// reducer expects.
func (repo *CycleRepository) ListRecentByProfile(profileID uint, limit int) ([]models.CycleRecord, error) {
	records := make([]models.CycleRecord, 0, limit)
	query := repo.database.Where("profile_id = ?", profileID).Order("start_date DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *CycleRepository) FindOpenByProfile(profileID uint) (models.CycleRecord, bool, error) {
	record := models.CycleRecord{}
	result := repo.database.
		Where("profile_id = ? AND end_date IS NULL", profileID).
		Order("start_date DESC, id DESC").
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.CycleRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CycleRecord{}, false, nil
	}
	return record, true, nil
}

func (repo *CycleRepository) Create(record *models.CycleRecord) error {
	return repo.database.Create(record).Error
}

func (repo *CycleRepository) Save(record *models.CycleRecord) error {
	return repo.database.Save(record).Error
}

func (repo *CycleRepository) Delete(record *models.CycleRecord) error {
	return repo.database.Delete(record).Error
}
