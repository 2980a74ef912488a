package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/braincapital/braincap/app/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive and shared
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(
		&models.Country{},
		&models.Pillar{},
		&models.Dimension{},
		&models.Indicator{},
		&models.IndicatorValue{},
		&models.Insight{},
	))

	return db
}

func fptr(f float64) *float64 { return &f }

func seedHierarchy(t *testing.T, db *gorm.DB) (models.Country, models.Pillar, models.Dimension, models.Indicator) {
	t.Helper()

	country := models.Country{Code: "USA", Name: "United States", Latitude: fptr(38.0), Longitude: fptr(-97.0)}
	require.NoError(t, db.Create(&country).Error)

	pillar := models.Pillar{Name: "Brain Health", DisplayOrder: 1}
	require.NoError(t, db.Create(&pillar).Error)

	dimension := models.Dimension{PillarID: pillar.ID, Name: "Mental Health", DisplayOrder: 1}
	require.NoError(t, db.Create(&dimension).Error)

	indicator := models.Indicator{DimensionID: dimension.ID, Name: "Depression Prevalence", Unit: "per 100k", IsActive: true}
	require.NoError(t, db.Create(&indicator).Error)

	return country, pillar, dimension, indicator
}

func TestCountryRepositoryCodeNormalization(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCountryRepository(db)

	require.NoError(t, repo.Create(&models.Country{Code: "usa", Name: "United States"}))

	country, err := repo.GetByCode("usa")
	require.NoError(t, err)
	require.NotNil(t, country)
	assert.Equal(t, "USA", country.Code)

	// Lookup is case-insensitive either way
	country, err = repo.GetByCode("USA")
	require.NoError(t, err)
	require.NotNil(t, country)
}

func TestCountryRepositoryNotFoundReturnsNil(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCountryRepository(db)

	country, err := repo.GetByID(9999)
	require.NoError(t, err)
	assert.Nil(t, country)

	country, err = repo.GetByCode("ZZZ")
	require.NoError(t, err)
	assert.Nil(t, country)
}

func TestCountryRepositoryListOrdersByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCountryRepository(db)

	require.NoError(t, repo.Create(&models.Country{Code: "USA", Name: "United States"}))
	require.NoError(t, repo.Create(&models.Country{Code: "DEU", Name: "Germany"}))
	require.NoError(t, repo.Create(&models.Country{Code: "AUS", Name: "Australia"}))

	countries, err := repo.List(0, 10)
	require.NoError(t, err)
	require.Len(t, countries, 3)
	assert.Equal(t, "Australia", countries[0].Name)
	assert.Equal(t, "Germany", countries[1].Name)
	assert.Equal(t, "United States", countries[2].Name)
}

func TestPillarRepositoryOrderingWithNameTieBreak(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPillarRepository(db)

	require.NoError(t, repo.Create(&models.Pillar{Name: "Zeta", DisplayOrder: 1}))
	require.NoError(t, repo.Create(&models.Pillar{Name: "Alpha", DisplayOrder: 2}))
	require.NoError(t, repo.Create(&models.Pillar{Name: "Beta", DisplayOrder: 1}))

	pillars, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, pillars, 3)
	assert.Equal(t, "Beta", pillars[0].Name)
	assert.Equal(t, "Zeta", pillars[1].Name)
	assert.Equal(t, "Alpha", pillars[2].Name)
}

func TestDimensionNameUniquePerPillar(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDimensionRepository(db)

	pillarA := models.Pillar{Name: "Brain Health"}
	pillarB := models.Pillar{Name: "Brain Skills"}
	require.NoError(t, db.Create(&pillarA).Error)
	require.NoError(t, db.Create(&pillarB).Error)

	require.NoError(t, repo.Create(&models.Dimension{PillarID: pillarA.ID, Name: "Access"}))
	assert.Error(t, repo.Create(&models.Dimension{PillarID: pillarA.ID, Name: "Access"}))

	// The same name under a different pillar is allowed
	require.NoError(t, repo.Create(&models.Dimension{PillarID: pillarB.ID, Name: "Access"}))
}

func TestDimensionGetByIDPreloadsPillar(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDimensionRepository(db)

	_, pillar, dimension, _ := seedHierarchy(t, db)

	got, err := repo.GetByID(dimension.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.Pillar)
	assert.Equal(t, pillar.Name, got.Pillar.Name)
}

func TestIndicatorRepositoryActiveFiltering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIndicatorRepository(db)

	_, _, dimension, indicator := seedHierarchy(t, db)

	inactive := models.Indicator{DimensionID: dimension.ID, Name: "Retired Metric", IsActive: false}
	require.NoError(t, db.Create(&inactive).Error)

	byDimension, err := repo.GetByDimensionID(dimension.ID)
	require.NoError(t, err)
	require.Len(t, byDimension, 1)
	assert.Equal(t, indicator.Name, byDimension[0].Name)

	active, err := repo.GetAllActive()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, indicator.Name, active[0].Name)
}

func TestIndicatorValueUniqueTriple(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIndicatorValueRepository(db)

	country, _, _, indicator := seedHierarchy(t, db)

	require.NoError(t, repo.Create(&models.IndicatorValue{
		CountryID: country.ID, IndicatorID: indicator.ID, Year: 2023, Value: fptr(80),
	}))
	assert.Error(t, repo.Create(&models.IndicatorValue{
		CountryID: country.ID, IndicatorID: indicator.ID, Year: 2023, Value: fptr(81),
	}))

	// A different year under the same country and indicator is fine
	require.NoError(t, repo.Create(&models.IndicatorValue{
		CountryID: country.ID, IndicatorID: indicator.ID, Year: 2022, Value: fptr(78),
	}))

	value, err := repo.GetByKey(country.ID, indicator.ID, 2023)
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, 80.0, *value.Value)

	value, err = repo.GetByKey(country.ID, indicator.ID, 1999)
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestPillarDeleteCascades(t *testing.T) {
	db := setupTestDB(t)

	country, pillar, dimension, indicator := seedHierarchy(t, db)
	require.NoError(t, db.Create(&models.IndicatorValue{
		CountryID: country.ID, IndicatorID: indicator.ID, Year: 2023, Value: fptr(80),
	}).Error)

	require.NoError(t, NewPillarRepository(db).Delete(pillar.ID))

	var dimensions, indicators, values int64
	require.NoError(t, db.Model(&models.Dimension{}).Where("id = ?", dimension.ID).Count(&dimensions).Error)
	require.NoError(t, db.Model(&models.Indicator{}).Where("id = ?", indicator.ID).Count(&indicators).Error)
	require.NoError(t, db.Model(&models.IndicatorValue{}).Count(&values).Error)
	assert.Zero(t, dimensions)
	assert.Zero(t, indicators)
	assert.Zero(t, values)
}

func TestCountryDeleteCascadesToValuesAndInsights(t *testing.T) {
	db := setupTestDB(t)

	country, _, _, indicator := seedHierarchy(t, db)
	require.NoError(t, db.Create(&models.IndicatorValue{
		CountryID: country.ID, IndicatorID: indicator.ID, Year: 2023, Value: fptr(80),
	}).Error)
	require.NoError(t, db.Create(&models.Insight{
		InsightType: "country",
		CountryID:   &country.ID,
		InsightText: "text",
		ExpiresAt:   time.Now().Add(time.Hour),
	}).Error)

	require.NoError(t, NewCountryRepository(db).Delete(country.ID))

	var values, insights int64
	require.NoError(t, db.Model(&models.IndicatorValue{}).Count(&values).Error)
	require.NoError(t, db.Model(&models.Insight{}).Count(&insights).Error)
	assert.Zero(t, values)
	assert.Zero(t, insights)
}

func TestInsightRepositoryFindCached(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInsightRepository(db)

	country, _, _, _ := seedHierarchy(t, db)
	now := time.Now()

	expired := models.Insight{InsightType: "comparative", InsightText: "old", ExpiresAt: now.Add(-time.Hour)}
	live := models.Insight{InsightType: "comparative", InsightText: "fresh", ExpiresAt: now.Add(time.Hour)}
	scoped := models.Insight{InsightType: "country", CountryID: &country.ID, InsightText: "usa", ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, repo.Create(&expired))
	require.NoError(t, repo.Create(&live))
	require.NoError(t, repo.Create(&scoped))

	got, err := repo.FindCached("comparative", nil, now)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, live.ID, got.ID)

	got, err = repo.FindCached("country", &country.ID, now)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, scoped.ID, got.ID)

	got, err = repo.FindCached("trend", nil, now)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Everything is expired far enough in the future
	got, err = repo.FindCached("comparative", nil, now.Add(48*time.Hour))
	require.NoError(t, err)
	assert.Nil(t, got)
}
