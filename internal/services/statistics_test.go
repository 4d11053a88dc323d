package services

import (
	"testing"

	"github.com/terraincognita07/selene/internal/models"
)

func TestComputeCycleStatisticsMedianEvenCount(t *testing.T) {
	stats := ComputeCycleStatistics(makeCycleRecords(28, 30, 26, 29, 27, 31))

	if stats.SampleCount != 6 {
		t.Fatalf("expected 6 usable lengths, got %d", stats.SampleCount)
	}
	// Sorted middles are 28 and 29: the tie rounds half up.
	if stats.MedianLength != 29 {
		t.Fatalf("expected median 29, got %d", stats.MedianLength)
	}
	if stats.Variability != 2 {
		t.Fatalf("expected variability 2, got %d", stats.Variability)
	}
	if stats.Trend != TrendStable {
		t.Fatalf("expected stable trend, got %s", stats.Trend)
	}
}

func TestComputeCycleStatisticsMedianOddCount(t *testing.T) {
	stats := ComputeCycleStatistics(makeCycleRecords(28, 30, 26))
	if stats.MedianLength != 28 {
		t.Fatalf("expected median 28, got %d", stats.MedianLength)
	}
}

func TestComputeCycleStatisticsExcludesOutliers(t *testing.T) {
	stats := ComputeCycleStatistics(makeCycleRecords(28, 29, 90, 5, 27))

	if stats.SampleCount != 3 {
		t.Fatalf("expected outliers 90 and 5 excluded, got %d usable lengths", stats.SampleCount)
	}
	if stats.MedianLength != 28 {
		t.Fatalf("expected median 28 over [28 29 27], got %d", stats.MedianLength)
	}
	if stats.Variability != 1 {
		t.Fatalf("expected variability 1, got %d", stats.Variability)
	}
}

func TestComputeCycleStatisticsSparseHistory(t *testing.T) {
	for _, records := range [][]models.CycleRecord{
		nil,
		makeCycleRecords(),
		makeCycleRecords(28),
		makeCycleRecords(28, 90, 5), // only one usable length
	} {
		stats := ComputeCycleStatistics(records)
		if stats.SampleCount != 0 || stats.MedianLength != 0 || stats.Variability != 0 {
			t.Fatalf("expected zero stats for sparse history, got %+v", stats)
		}
		if stats.Trend != TrendUnknown {
			t.Fatalf("expected unknown trend for sparse history, got %s", stats.Trend)
		}
	}
}

func TestComputeCycleStatisticsSkipsOpenCycles(t *testing.T) {
	records := makeCycleRecords(28, 30)
	open := models.CycleRecord{StartDate: mustParseDay("2024-06-01")}
	records = append([]models.CycleRecord{open}, records...)

	stats := ComputeCycleStatistics(records)
	if stats.SampleCount != 2 {
		t.Fatalf("expected the open record ignored, got %d usable lengths", stats.SampleCount)
	}
}

func TestComputeCycleStatisticsCapsAtSixMostRecent(t *testing.T) {
	// Newest six are all 28; the two older 40s must fall outside the window.
	stats := ComputeCycleStatistics(makeCycleRecords(28, 28, 28, 28, 28, 28, 40, 40))

	if stats.SampleCount != 6 {
		t.Fatalf("expected window capped at 6, got %d", stats.SampleCount)
	}
	if stats.MedianLength != 28 {
		t.Fatalf("expected median 28, got %d", stats.MedianLength)
	}
	if stats.Variability != 0 {
		t.Fatalf("expected variability 0, got %d", stats.Variability)
	}
}

func TestComputeCycleStatisticsTrend(t *testing.T) {
	cases := []struct {
		name     string
		lengths  []int
		expected CycleTrend
	}{
		{"shortening", []int{24, 25, 30, 31}, TrendShorter},
		{"lengthening", []int{34, 33, 28, 27}, TrendLonger},
		{"stable", []int{28, 29, 28, 30}, TrendStable},
		{"within threshold", []int{27, 28, 30, 31}, TrendStable},
		{"two lengths only", []int{24, 31}, TrendUnknown},
	}

	for _, testCase := range cases {
		stats := ComputeCycleStatistics(makeCycleRecords(testCase.lengths...))
		if stats.Trend != testCase.expected {
			t.Fatalf("%s: expected trend %s, got %s", testCase.name, testCase.expected, stats.Trend)
		}
	}
}

// makeCycleRecords builds closed records newest-first with the given lengths.
func makeCycleRecords(lengths ...int) []models.CycleRecord {
	records := make([]models.CycleRecord, 0, len(lengths))
	start := mustParseDay("2024-06-01")
	for _, length := range lengths {
		value := length
		end := start.AddDate(0, 0, value-1)
		records = append(records, models.CycleRecord{
			StartDate:      start,
			EndDate:        &end,
			ComputedLength: &value,
		})
		start = start.AddDate(0, 0, -value)
	}
	return records
}
