package statistics

import (
	"log"
	"strconv"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/braincapital/braincap/app/models"
	"github.com/braincapital/braincap/internal/pkg/cache"
)

const (
	CacheKeyCountries  = "statistics:countries:total"
	CacheKeyIndicators = "statistics:indicators:active"
	CacheKeyValues     = "statistics:values:total"
	CacheKeyLatestYear = "statistics:values:latest_year"
	CacheExpiration    = 30 * time.Minute
)

// Data holds the dataset figures shown on the dashboard
type Data struct {
	Countries        int
	ActiveIndicators int
	Values           int
	LatestYear       int
}

var (
	lastCacheUpdate     time.Time
	cacheUpdateMutex    sync.Mutex
	cacheUpdateInterval = 5 * time.Minute
)

// UpdateCacheIfNeeded refreshes the cached figures when the interval elapsed
func UpdateCacheIfNeeded(db *gorm.DB) {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	if time.Since(lastCacheUpdate) <= cacheUpdateInterval {
		return
	}

	if err := UpdateStatisticsCache(db); err != nil {
		log.Printf("Error updating statistics cache: %v", err)
		return
	}
	lastCacheUpdate = time.Now()
}

// UpdateStatisticsCache recounts the dataset and stores the figures in the cache
func UpdateStatisticsCache(db *gorm.DB) error {
	var countries int64
	if err := db.Model(&models.Country{}).Count(&countries).Error; err != nil {
		return err
	}

	var indicators int64
	if err := db.Model(&models.Indicator{}).Where("is_active = ?", true).Count(&indicators).Error; err != nil {
		return err
	}

	var values int64
	if err := db.Model(&models.IndicatorValue{}).Count(&values).Error; err != nil {
		return err
	}

	var latestYear int64
	// COALESCE keeps the scan from failing on an empty table
	if err := db.Model(&models.IndicatorValue{}).Select("COALESCE(MAX(year), 0)").Scan(&latestYear).Error; err != nil {
		return err
	}

	for key, v := range map[string]int64{
		CacheKeyCountries:  countries,
		CacheKeyIndicators: indicators,
		CacheKeyValues:     values,
		CacheKeyLatestYear: latestYear,
	} {
		if err := cache.Set(key, strconv.FormatInt(v, 10), CacheExpiration); err != nil {
			return err
		}
	}

	return nil
}

// GetData returns the dashboard figures, cache first with database fallback
func GetData(db *gorm.DB) Data {
	return Data{
		Countries:        getCached(db, CacheKeyCountries, countCountries),
		ActiveIndicators: getCached(db, CacheKeyIndicators, countActiveIndicators),
		Values:           getCached(db, CacheKeyValues, countValues),
		LatestYear:       getCached(db, CacheKeyLatestYear, maxYear),
	}
}

func getCached(db *gorm.DB, key string, compute func(*gorm.DB) (int64, error)) int {
	if val, err := cache.Get(key); err == nil {
		if n, perr := strconv.ParseInt(val, 10, 64); perr == nil {
			return int(n)
		}
	}

	n, err := compute(db)
	if err != nil {
		log.Printf("Error computing statistic %s: %v", key, err)
		return 0
	}
	if err := cache.Set(key, strconv.FormatInt(n, 10), CacheExpiration); err != nil {
		log.Printf("Error caching statistic %s: %v", key, err)
	}
	return int(n)
}

func countCountries(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&models.Country{}).Count(&n).Error
	return n, err
}

func countActiveIndicators(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&models.Indicator{}).Where("is_active = ?", true).Count(&n).Error
	return n, err
}

func countValues(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&models.IndicatorValue{}).Count(&n).Error
	return n, err
}

func maxYear(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&models.IndicatorValue{}).Select("COALESCE(MAX(year), 0)").Scan(&n).Error
	return n, err
}
