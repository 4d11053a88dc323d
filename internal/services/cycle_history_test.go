package services

import (
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/terraincognita07/selene/internal/models"
)

func TestDeclarePeriodStartFirstCycle(t *testing.T) {
	service, cycles, _ := newHistoryFixture()

	record, err := service.DeclarePeriodStart(1, mustParseDay("2024-01-01"))
	if err != nil {
		t.Fatalf("declare failed: %v", err)
	}
	if !record.IsOpen() {
		t.Fatal("expected the new record to be open")
	}
	if len(cycles.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(cycles.records))
	}
}

func TestDeclarePeriodStartClosesPreviousCycle(t *testing.T) {
	service, cycles, _ := newHistoryFixture()

	mustDeclare(t, service, "2024-01-01")
	mustDeclare(t, service, "2024-01-29")

	if len(cycles.records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(cycles.records))
	}

	closed := cycles.records[0]
	if closed.IsOpen() {
		t.Fatal("expected the first record to be closed")
	}
	if formatDay(*closed.EndDate) != "2024-01-28" {
		t.Fatalf("unexpected end date: %s", formatDay(*closed.EndDate))
	}
	if *closed.ComputedLength != 28 {
		t.Fatalf("expected computed length 28, got %d", *closed.ComputedLength)
	}
	if closed.IsAnovulatory {
		t.Fatal("a 28-day cycle must not be flagged anovulatory")
	}
}

func TestDeclarePeriodStartFlagsAnovulatoryCycle(t *testing.T) {
	service, cycles, _ := newHistoryFixture()

	mustDeclare(t, service, "2024-01-01")
	mustDeclare(t, service, "2024-02-20") // 50-day gap

	closed := cycles.records[0]
	if *closed.ComputedLength != 50 {
		t.Fatalf("expected computed length 50, got %d", *closed.ComputedLength)
	}
	if !closed.IsAnovulatory {
		t.Fatal("expected a 50-day cycle to be flagged anovulatory")
	}
}

func TestDeclarePeriodStartDiscardsOverlappingCycle(t *testing.T) {
	service, cycles, _ := newHistoryFixture()

	mustDeclare(t, service, "2024-01-01")
	mustDeclare(t, service, "2024-01-04") // 3-day gap: data-entry error

	if len(cycles.records) != 1 {
		t.Fatalf("expected the overlapping record discarded, got %d records", len(cycles.records))
	}
	record := cycles.records[0]
	if formatDay(record.StartDate) != "2024-01-04" {
		t.Fatalf("expected the new start kept, got %s", formatDay(record.StartDate))
	}
	if !record.IsOpen() {
		t.Fatal("expected the surviving record to be open")
	}
}

func TestDeclarePeriodStartBeforeOpenCycleDiscards(t *testing.T) {
	service, cycles, _ := newHistoryFixture()

	mustDeclare(t, service, "2024-01-10")
	mustDeclare(t, service, "2024-01-02") // before the open record's start

	if len(cycles.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(cycles.records))
	}
	if formatDay(cycles.records[0].StartDate) != "2024-01-02" {
		t.Fatalf("unexpected surviving start: %s", formatDay(cycles.records[0].StartDate))
	}
}

func TestDeclarePeriodStartSameDateIsNoOp(t *testing.T) {
	service, cycles, _ := newHistoryFixture()

	first := mustDeclare(t, service, "2024-01-01")
	second := mustDeclare(t, service, "2024-01-01")

	if len(cycles.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(cycles.records))
	}
	if first.ID != second.ID {
		t.Fatalf("expected the same record back, got %d and %d", first.ID, second.ID)
	}
}

func TestDeclarePeriodStartKeepsSingleOpenRecord(t *testing.T) {
	service, cycles, _ := newHistoryFixture()

	for _, day := range []string{"2024-01-01", "2024-01-29", "2024-02-26", "2024-02-28", "2024-03-27"} {
		mustDeclare(t, service, day)
	}

	openCount := 0
	for _, record := range cycles.records {
		if record.IsOpen() {
			openCount++
		}
	}
	if openCount != 1 {
		t.Fatalf("expected exactly one open record, got %d", openCount)
	}
}

func TestHistoryBundleDefaultsWithoutProfile(t *testing.T) {
	service, _, _ := newHistoryFixture()

	bundle, err := service.HistoryBundle(1, mustParseDay("2024-03-01"))
	if err != nil {
		t.Fatalf("bundle failed: %v", err)
	}
	if bundle.Preferences != models.DefaultPreferences() {
		t.Fatalf("expected default preferences, got %+v", bundle.Preferences)
	}
	if len(bundle.Cycles) != 0 {
		t.Fatalf("expected no cycles, got %d", len(bundle.Cycles))
	}
}

func TestHistoryBundleCapsCycleWindow(t *testing.T) {
	service, cycles, _ := newHistoryFixture()

	start := mustParseDay("2023-06-01")
	for i := 0; i < 9; i++ {
		mustDeclare(t, service, formatDay(start))
		start = start.AddDate(0, 0, 28)
	}

	bundle, err := service.HistoryBundle(1, mustParseDay("2024-02-01"))
	if err != nil {
		t.Fatalf("bundle failed: %v", err)
	}
	if len(cycles.records) != 9 {
		t.Fatalf("expected 9 stored records, got %d", len(cycles.records))
	}
	if len(bundle.Cycles) != 6 {
		t.Fatalf("expected the bundle capped at 6, got %d", len(bundle.Cycles))
	}
	for i := 1; i < len(bundle.Cycles); i++ {
		if bundle.Cycles[i].StartDate.After(bundle.Cycles[i-1].StartDate) {
			t.Fatal("expected newest-first ordering")
		}
	}
}

func TestHistoryBundleUsesProfilePreferences(t *testing.T) {
	service, _, profiles := newHistoryFixture()
	profiles.profile = &models.Profile{
		ID:                1,
		AvgCycleLength:    31,
		AvgPeriodLength:   6,
		LutealPhaseLength: 12,
		Perimenopause:     true,
	}

	bundle, err := service.HistoryBundle(1, mustParseDay("2024-03-01"))
	if err != nil {
		t.Fatalf("bundle failed: %v", err)
	}
	if bundle.Preferences.AvgCycleLength != 31 || !bundle.Preferences.Perimenopause {
		t.Fatalf("expected profile preferences, got %+v", bundle.Preferences)
	}
}

func TestRecordBleedingUpsert(t *testing.T) {
	service, _, _ := newHistoryFixture()
	day := mustParseDay("2024-01-03")

	created, err := service.RecordBleeding(1, day, models.IntensityLight, false, "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := service.RecordBleeding(1, day, models.IntensityHeavy, false, "worse today")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("expected the same entry updated, got %d and %d", created.ID, updated.ID)
	}
	if updated.Intensity != models.IntensityHeavy || updated.Notes != "worse today" {
		t.Fatalf("unexpected entry after update: %+v", updated)
	}
}

func TestRecordBleedingRejectsUnknownIntensity(t *testing.T) {
	service, _, _ := newHistoryFixture()

	_, err := service.RecordBleeding(1, mustParseDay("2024-01-03"), "torrential", false, "")
	if !errors.Is(err, ErrUnknownBleedingIntensity) {
		t.Fatalf("expected ErrUnknownBleedingIntensity, got %v", err)
	}
}

func mustDeclare(t *testing.T, service *CycleHistoryService, day string) models.CycleRecord {
	t.Helper()
	record, err := service.DeclarePeriodStart(1, mustParseDay(day))
	if err != nil {
		t.Fatalf("declare %s failed: %v", day, err)
	}
	return record
}

func newHistoryFixture() (*CycleHistoryService, *fakeCycleRepository, *fakeProfileReader) {
	cycles := &fakeCycleRepository{}
	logs := &fakeBleedingLogRepository{}
	profiles := &fakeProfileReader{}
	return NewCycleHistoryService(cycles, logs, profiles), cycles, profiles
}

type fakeCycleRepository struct {
	records []models.CycleRecord
	nextID  uint
}

func (repo *fakeCycleRepository) ListRecentByProfile(profileID uint, limit int) ([]models.CycleRecord, error) {
	matched := make([]models.CycleRecord, 0, len(repo.records))
	for _, record := range repo.records {
		if record.ProfileID == profileID {
			matched = append(matched, record)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].StartDate.After(matched[j].StartDate)
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (repo *fakeCycleRepository) FindOpenByProfile(profileID uint) (models.CycleRecord, bool, error) {
	for _, record := range repo.records {
		if record.ProfileID == profileID && record.IsOpen() {
			return record, true, nil
		}
	}
	return models.CycleRecord{}, false, nil
}

func (repo *fakeCycleRepository) Create(record *models.CycleRecord) error {
	repo.nextID++
	record.ID = repo.nextID
	repo.records = append(repo.records, *record)
	return nil
}

func (repo *fakeCycleRepository) Save(record *models.CycleRecord) error {
	for index := range repo.records {
		if repo.records[index].ID == record.ID {
			repo.records[index] = *record
			return nil
		}
	}
	return errors.New("record not found")
}

func (repo *fakeCycleRepository) Delete(record *models.CycleRecord) error {
	for index := range repo.records {
		if repo.records[index].ID == record.ID {
			repo.records = append(repo.records[:index], repo.records[index+1:]...)
			return nil
		}
	}
	return errors.New("record not found")
}

type fakeBleedingLogRepository struct {
	entries []models.BleedingLog
	nextID  uint
}

func (repo *fakeBleedingLogRepository) ListByProfileRange(profileID uint, from time.Time, to time.Time) ([]models.BleedingLog, error) {
	matched := make([]models.BleedingLog, 0, len(repo.entries))
	for _, entry := range repo.entries {
		if entry.ProfileID == profileID && !entry.Date.Before(from) && entry.Date.Before(to) {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

func (repo *fakeBleedingLogRepository) FindByProfileAndDay(profileID uint, day time.Time) (models.BleedingLog, bool, error) {
	for _, entry := range repo.entries {
		if entry.ProfileID == profileID && entry.Date.Equal(day) {
			return entry, true, nil
		}
	}
	return models.BleedingLog{}, false, nil
}

func (repo *fakeBleedingLogRepository) Create(entry *models.BleedingLog) error {
	repo.nextID++
	entry.ID = repo.nextID
	repo.entries = append(repo.entries, *entry)
	return nil
}

func (repo *fakeBleedingLogRepository) Save(entry *models.BleedingLog) error {
	for index := range repo.entries {
		if repo.entries[index].ID == entry.ID {
			repo.entries[index] = *entry
			return nil
		}
	}
	return errors.New("entry not found")
}

type fakeProfileReader struct {
	profile *models.Profile
}

func (repo *fakeProfileReader) FindByID(profileID uint) (models.Profile, bool, error) {
	if repo.profile == nil || repo.profile.ID != profileID {
		return models.Profile{}, false, nil
	}
	return *repo.profile, true, nil
}
