package services

import (
	"sync"
	"time"

	"github.com/terraincognita07/selene/internal/models"
)

type seasonCacheKey struct {
	date           string
	cycleStart     string
	avgCycleLength int
	periodLength   int
	lutealLength   int
}

// SeasonCache memoizes SeasonForDate over the full parameter tuple. The
// wrapped function is pure, so entries never need invalidation. Safe for
// concurrent use.
type SeasonCache struct {
	mu      sync.RWMutex
	entries map[seasonCacheKey]models.Season
}

func NewSeasonCache() *SeasonCache {
	return &SeasonCache{entries: make(map[seasonCacheKey]models.Season)}
}

func (cache *SeasonCache) SeasonForDate(date time.Time, cycleStart time.Time, avgCycleLength int, periodLength int, lutealLength int) models.Season {
	key := seasonCacheKey{
		date:           DateOnly(date).Format("2006-01-02"),
		cycleStart:     DateOnly(cycleStart).Format("2006-01-02"),
		avgCycleLength: avgCycleLength,
		periodLength:   periodLength,
		lutealLength:   lutealLength,
	}

	cache.mu.RLock()
	season, cached := cache.entries[key]
	cache.mu.RUnlock()
	if cached {
		return season
	}

	season = SeasonForDate(date, cycleStart, avgCycleLength, periodLength, lutealLength)

	cache.mu.Lock()
	cache.entries[key] = season
	cache.mu.Unlock()
	return season
}

func (cache *SeasonCache) Len() int {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	return len(cache.entries)
}
