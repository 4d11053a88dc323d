package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/selene/internal/models"
)

var ErrUnknownBleedingIntensity = errors.New("unknown bleeding intensity")

const (
	// A declared start less than this many days after the open cycle's start
	// is treated as a data-entry error: the open record is discarded, not
	// closed with a nonsense length.
	minCycleGapDays = 7

	historyWindowSize     = 6
	bleedingLogWindowDays = 90
)

type CycleRecordRepository interface {
	ListRecentByProfile(profileID uint, limit int) ([]models.CycleRecord, error)
	FindOpenByProfile(profileID uint) (models.CycleRecord, bool, error)
	Create(record *models.CycleRecord) error
	Save(record *models.CycleRecord) error
	Delete(record *models.CycleRecord) error
}

type BleedingLogRepository interface {
	ListByProfileRange(profileID uint, from time.Time, to time.Time) ([]models.BleedingLog, error)
	FindByProfileAndDay(profileID uint, day time.Time) (models.BleedingLog, bool, error)
	Create(entry *models.BleedingLog) error
	Save(entry *models.BleedingLog) error
}

type ProfilePreferencesReader interface {
	FindByID(profileID uint) (models.Profile, bool, error)
}

// CycleHistoryService is the history provider the prediction engine consumes:
// it owns the cycle-record lifecycle (open, close, discard) and assembles the
// bounded input bundle.
type CycleHistoryService struct {
	cycles   CycleRecordRepository
	logs     BleedingLogRepository
	profiles ProfilePreferencesReader
}

func NewCycleHistoryService(cycles CycleRecordRepository, logs BleedingLogRepository, profiles ProfilePreferencesReader) *CycleHistoryService {
	return &CycleHistoryService{
		cycles:   cycles,
		logs:     logs,
		profiles: profiles,
	}
}

// HistoryBundle is everything BuildPrediction needs: the most recent cycle
// records newest-first, a trailing window of bleeding logs, and preferences
// with defaults already applied.
type HistoryBundle struct {
	Cycles      []models.CycleRecord
	Logs        []models.BleedingLog
	Preferences models.Preferences
}

func (service *CycleHistoryService) HistoryBundle(profileID uint, today time.Time) (HistoryBundle, error) {
	cycles, err := service.cycles.ListRecentByProfile(profileID, historyWindowSize)
	if err != nil {
		return HistoryBundle{}, fmt.Errorf("list recent cycles: %w", err)
	}

	to := DateOnly(today).AddDate(0, 0, 1)
	from := DateOnly(today).AddDate(0, 0, -bleedingLogWindowDays)
	logs, err := service.logs.ListByProfileRange(profileID, from, to)
	if err != nil {
		return HistoryBundle{}, fmt.Errorf("list bleeding logs: %w", err)
	}

	preferences := models.DefaultPreferences()
	profile, found, err := service.profiles.FindByID(profileID)
	if err != nil {
		return HistoryBundle{}, fmt.Errorf("load profile: %w", err)
	}
	if found {
		preferences = profile.Preferences()
	}

	return HistoryBundle{
		Cycles:      cycles,
		Logs:        logs,
		Preferences: preferences,
	}, nil
}

func (service *CycleHistoryService) RecentCycles(profileID uint) ([]models.CycleRecord, error) {
	return service.cycles.ListRecentByProfile(profileID, historyWindowSize)
}

// DeclarePeriodStart records a new period start and settles the previously
// open cycle record:
//
//	no open record          -> create a new open record
//	same start re-declared  -> no-op
//	gap < 7 days (or before)-> discard the open record, then create
//	gap >= 7 days           -> close it (end date, computed length,
//	                           anovulatory flag), then create
func (service *CycleHistoryService) DeclarePeriodStart(profileID uint, startDate time.Time) (models.CycleRecord, error) {
	newStart := DateOnly(startDate)

	open, found, err := service.cycles.FindOpenByProfile(profileID)
	if err != nil {
		return models.CycleRecord{}, fmt.Errorf("find open cycle: %w", err)
	}

	if found {
		gap := DaysBetween(DateOnly(open.StartDate), newStart)
		switch {
		case gap == 0:
			return open, nil
		case gap < minCycleGapDays:
			if err := service.cycles.Delete(&open); err != nil {
				return models.CycleRecord{}, fmt.Errorf("discard overlapping cycle: %w", err)
			}
		default:
			endDate := newStart.AddDate(0, 0, -1)
			length := gap
			open.EndDate = &endDate
			open.ComputedLength = &length
			open.IsAnovulatory = length > models.AnovulatoryLengthThreshold
			if err := service.cycles.Save(&open); err != nil {
				return models.CycleRecord{}, fmt.Errorf("close cycle: %w", err)
			}
		}
	}

	record := models.CycleRecord{ProfileID: profileID, StartDate: newStart}
	if err := service.cycles.Create(&record); err != nil {
		return models.CycleRecord{}, fmt.Errorf("create cycle: %w", err)
	}
	return record, nil
}

// RecordBleeding upserts the single bleeding observation for a day.
func (service *CycleHistoryService) RecordBleeding(profileID uint, day time.Time, intensity string, intermenstrual bool, notes string) (models.BleedingLog, error) {
	if !models.IsValidIntensity(intensity) {
		return models.BleedingLog{}, ErrUnknownBleedingIntensity
	}

	date := DateOnly(day)
	existing, found, err := service.logs.FindByProfileAndDay(profileID, date)
	if err != nil {
		return models.BleedingLog{}, fmt.Errorf("find bleeding log: %w", err)
	}

	if found {
		existing.Intensity = intensity
		existing.IsIntermenstrual = intermenstrual
		existing.Notes = notes
		if err := service.logs.Save(&existing); err != nil {
			return models.BleedingLog{}, fmt.Errorf("update bleeding log: %w", err)
		}
		return existing, nil
	}

	entry := models.BleedingLog{
		ProfileID:        profileID,
		Date:             date,
		Intensity:        intensity,
		IsIntermenstrual: intermenstrual,
		Notes:            notes,
	}
	if err := service.logs.Create(&entry); err != nil {
		return models.BleedingLog{}, fmt.Errorf("create bleeding log: %w", err)
	}
	return entry, nil
}
