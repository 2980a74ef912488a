package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/braincapital/braincap/app/models"
	"github.com/braincapital/braincap/app/repository"
)

func setupInsightService(t *testing.T, ttl time.Duration) (*gorm.DB, *Service) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(
		&models.Country{},
		&models.Pillar{},
		&models.Dimension{},
		&models.Indicator{},
		&models.Insight{},
	))

	require.NoError(t, db.Create(&models.Country{Code: "USA", Name: "United States"}).Error)

	repos := repository.NewRepositories(db)
	svc := NewService(repos, NewRuleBasedGenerator("rule-based-v1"), ttl)
	return db, svc
}

func TestGetOrGenerateCachesByType(t *testing.T) {
	_, svc := setupInsightService(t, 24*time.Hour)

	req := &GenerateRequest{InsightType: "comparative"}

	first, cached, err := svc.GetOrGenerate(req)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.False(t, cached)
	assert.Equal(t, "rule-based-v1", first.ModelVersion)
	require.NotNil(t, first.ConfidenceScore)
	assert.Equal(t, 0.75, *first.ConfidenceScore)

	second, cached, err := svc.GetOrGenerate(req)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.True(t, cached)
	assert.Equal(t, first.ID, second.ID)
}

func TestGetOrGenerateScopesByCountry(t *testing.T) {
	_, svc := setupInsightService(t, 24*time.Hour)

	usa, cached, err := svc.GetOrGenerate(&GenerateRequest{InsightType: "country", CountryCode: "USA"})
	require.NoError(t, err)
	assert.False(t, cached)
	require.NotNil(t, usa.CountryID)

	// An unknown code cannot resolve to a country, so the lookup falls back
	// to a type-only match and still finds the USA insight.
	fallback, cached, err := svc.GetOrGenerate(&GenerateRequest{InsightType: "country", CountryCode: "ZZZ"})
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, usa.ID, fallback.ID)
}

func TestGetOrGenerateExpiredRegenerates(t *testing.T) {
	db, svc := setupInsightService(t, 24*time.Hour)

	first, _, err := svc.GetOrGenerate(&GenerateRequest{InsightType: "comparative"})
	require.NoError(t, err)

	// Force the cached insight past its expiry
	require.NoError(t, db.Model(&models.Insight{}).
		Where("id = ?", first.ID).
		Update("expires_at", time.Now().Add(-time.Minute)).Error)

	second, cached, err := svc.GetOrGenerate(&GenerateRequest{InsightType: "comparative"})
	require.NoError(t, err)
	assert.False(t, cached)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestGenerateSetsExpiryFromTTL(t *testing.T) {
	_, svc := setupInsightService(t, 2*time.Hour)

	before := time.Now()
	insight, err := svc.Generate(&GenerateRequest{InsightType: "generic"})
	require.NoError(t, err)

	assert.True(t, insight.ExpiresAt.After(before.Add(time.Hour)))
	assert.True(t, insight.ExpiresAt.Before(before.Add(3*time.Hour)))
}

func TestSubmitFeedbackOverwrites(t *testing.T) {
	_, svc := setupInsightService(t, 24*time.Hour)

	insight, err := svc.Generate(&GenerateRequest{InsightType: "generic"})
	require.NoError(t, err)

	rated, err := svc.SubmitFeedback(insight.ID, 3)
	require.NoError(t, err)
	require.NotNil(t, rated)
	require.NotNil(t, rated.UserFeedback)
	assert.Equal(t, 3, *rated.UserFeedback)

	// The latest submission wins
	rated, err = svc.SubmitFeedback(insight.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, *rated.UserFeedback)

	stored, err := svc.GetByID(insight.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.UserFeedback)
	assert.Equal(t, 5, *stored.UserFeedback)
}

func TestSubmitFeedbackMissingInsight(t *testing.T) {
	_, svc := setupInsightService(t, 24*time.Hour)

	rated, err := svc.SubmitFeedback(9999, 4)
	require.NoError(t, err)
	assert.Nil(t, rated)
}

func TestGenerateStoresFilterSnapshot(t *testing.T) {
	_, svc := setupInsightService(t, 24*time.Hour)

	insight, err := svc.Generate(&GenerateRequest{
		InsightType:  "country",
		CountryCode:  "USA",
		IndicatorIDs: []uint{1, 2},
	})
	require.NoError(t, err)

	snapshot := string(insight.FilterParams)
	assert.Contains(t, snapshot, `"insight_type":"country"`)
	assert.Contains(t, snapshot, `"country_code":"USA"`)
}
