package services

import (
	"math"
	"sort"

	"github.com/terraincognita07/selene/internal/models"
)

type CycleTrend string

const (
	TrendShorter CycleTrend = "shorter"
	TrendLonger  CycleTrend = "longer"
	TrendStable  CycleTrend = "stable"
	TrendUnknown CycleTrend = "unknown"
)

const (
	minUsableCycleLength = 7
	maxUsableCycleLength = 60
	statsWindowSize      = 6
	trendShiftDays       = 3
)

// CycleStatistics summarizes the recent completed cycles. SampleCount < 2
// means the remaining fields are meaningless and callers must fall back to
// preferences.
type CycleStatistics struct {
	MedianLength int        `json:"median_length"`
	Variability  int        `json:"variability"`
	Trend        CycleTrend `json:"trend"`
	SampleCount  int        `json:"sample_count"`
}

// ComputeCycleStatistics reduces the history to a robust length baseline.
// Records are expected newest-first; lengths outside [7, 60] are treated as
// entry errors and discarded, never clamped. The function never fails: sparse
// input degrades to the zero result with TrendUnknown.
func ComputeCycleStatistics(records []models.CycleRecord) CycleStatistics {
	stats := CycleStatistics{Trend: TrendUnknown}

	lengths := usableCycleLengths(records, statsWindowSize)
	if len(lengths) < 2 {
		return stats
	}

	stats.SampleCount = len(lengths)
	stats.MedianLength = medianInt(lengths)
	stats.Variability = populationStdevInt(lengths)

	if len(lengths) >= 3 {
		recent := meanInts(lengths[:2])
		older := meanInts(lengths[len(lengths)-2:])
		switch {
		case recent < older-trendShiftDays:
			stats.Trend = TrendShorter
		case recent > older+trendShiftDays:
			stats.Trend = TrendLonger
		default:
			stats.Trend = TrendStable
		}
	}

	return stats
}

func usableCycleLengths(records []models.CycleRecord, limit int) []int {
	lengths := make([]int, 0, limit)
	for _, record := range records {
		if len(lengths) == limit {
			break
		}
		if record.ComputedLength == nil {
			continue
		}
		length := *record.ComputedLength
		if length < minUsableCycleLength || length > maxUsableCycleLength {
			continue
		}
		lengths = append(lengths, length)
	}
	return lengths
}

func medianInt(values []int) int {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]int, 0, len(values))
	sorted = append(sorted, values...)
	sort.Ints(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	left := sorted[mid-1]
	right := sorted[mid]
	return int(float64(left+right)/2 + 0.5)
}

func populationStdevInt(values []int) int {
	if len(values) == 0 {
		return 0
	}
	mean := meanInts(values)
	var sumSquares float64
	for _, value := range values {
		diff := float64(value) - mean
		sumSquares += diff * diff
	}
	return int(math.Round(math.Sqrt(sumSquares / float64(len(values)))))
}

func meanInts(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	var total int
	for _, value := range values {
		total += value
	}
	return float64(total) / float64(len(values))
}
