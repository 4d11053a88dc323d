package models

import "time"

// Cycles longer than this are flagged as likely anovulatory.
const AnovulatoryLengthThreshold = 45

type CycleRecord struct {
	ID             uint       `gorm:"primaryKey"`
	ProfileID      uint       `gorm:"not null;index"`
	StartDate      time.Time  `gorm:"type:date;not null;index"`
	EndDate        *time.Time `gorm:"type:date"`
	ComputedLength *int
	IsAnovulatory  bool `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsOpen reports whether the cycle is still running, i.e. the next period
// start has not been declared yet.
func (record CycleRecord) IsOpen() bool {
	return record.EndDate == nil
}
