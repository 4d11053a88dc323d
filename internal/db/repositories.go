package db

import "gorm.io/gorm"

type Repositories struct {
	Cycles       *CycleRepository
	BleedingLogs *BleedingLogRepository
	Profiles     *ProfileRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Cycles:       NewCycleRepository(database),
		BleedingLogs: NewBleedingLogRepository(database),
		Profiles:     NewProfileRepository(database),
	}
}
