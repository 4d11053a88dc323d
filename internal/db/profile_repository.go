package db

import (
	"github.com/terraincognita07/selene/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

// EnsureDefault returns the instance profile, creating it with default
// preferences on first use. Selene is single-tenant; the profile row exists
// so preferences have somewhere to live.
func (repo *ProfileRepository) EnsureDefault() (models.Profile, error) {
	profile := models.Profile{}
	result := repo.database.Order("id ASC").Limit(1).Find(&profile)
	if result.Error != nil {
		return models.Profile{}, result.Error
	}
	if result.RowsAffected == 1 {
		return profile, nil
	}

	profile = models.Profile{
		AvgCycleLength:    models.DefaultCycleLength,
		AvgPeriodLength:   models.DefaultPeriodLength,
		LutealPhaseLength: models.DefaultLutealLength,
	}
	if err := repo.database.Create(&profile).Error; err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func (repo *ProfileRepository) FindByID(profileID uint) (models.Profile, bool, error) {
	profile := models.Profile{}
	result := repo.database.Where("id = ?", profileID).Limit(1).Find(&profile)
	if result.Error != nil {
		return models.Profile{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Profile{}, false, nil
	}
	return profile, true, nil
}

func (repo *ProfileRepository) Save(profile *models.Profile) error {
	return repo.database.Save(profile).Error
}
