package repository

import (
	"time"

	"github.com/braincapital/braincap/app/models"
	"gorm.io/gorm"
)

// CountryRepository defines the interface for country-related database operations
type CountryRepository interface {
	Create(country *models.Country) error
	GetByID(id uint) (*models.Country, error)
	GetByCode(code string) (*models.Country, error)
	GetByRegion(region string) ([]models.Country, error)
	List(offset, limit int) ([]models.Country, error)
	Update(country *models.Country) error
	Delete(id uint) error
	Count() (int64, error)
}

// PillarRepository defines the interface for pillar-related database operations
type PillarRepository interface {
	Create(pillar *models.Pillar) error
	GetByID(id uint) (*models.Pillar, error)
	GetByName(name string) (*models.Pillar, error)
	GetAll() ([]models.Pillar, error)
	Update(pillar *models.Pillar) error
	Delete(id uint) error
}

// DimensionRepository defines the interface for dimension-related database operations
type DimensionRepository interface {
	Create(dimension *models.Dimension) error
	GetByID(id uint) (*models.Dimension, error)
	GetByPillarID(pillarID uint) ([]models.Dimension, error)
	Update(dimension *models.Dimension) error
	Delete(id uint) error
}

// IndicatorRepository defines the interface for indicator-related database operations
type IndicatorRepository interface {
	Create(indicator *models.Indicator) error
	GetByID(id uint) (*models.Indicator, error)
	GetByDimensionID(dimensionID uint) ([]models.Indicator, error)
	GetAllActive() ([]models.Indicator, error)
	Update(indicator *models.Indicator) error
	Delete(id uint) error
}

// IndicatorValueRepository defines the interface for fact-row database operations
type IndicatorValueRepository interface {
	Create(value *models.IndicatorValue) error
	GetByID(id uint) (*models.IndicatorValue, error)
	GetByKey(countryID, indicatorID uint, year int) (*models.IndicatorValue, error)
	List(query ValueQuery) ([]models.IndicatorValue, error)
	Update(value *models.IndicatorValue) error
	Delete(id uint) error
	Count() (int64, error)
}

// InsightRepository defines the interface for insight-related database operations
type InsightRepository interface {
	Create(insight *models.Insight) error
	GetByID(id uint) (*models.Insight, error)
	FindCached(insightType string, countryID *uint, now time.Time) (*models.Insight, error)
	Update(insight *models.Insight) error
	Delete(id uint) error
}

// ValueQuery narrows an indicator-value listing. Zero fields do not constrain.
type ValueQuery struct {
	IndicatorID uint
	CountryID   uint
	Year        int
	YearStart   int
	YearEnd     int
	Limit       int
	Offset      int
}

// Repositories struct holds all repository instances
type Repositories struct {
	Country        CountryRepository
	Pillar         PillarRepository
	Dimension      DimensionRepository
	Indicator      IndicatorRepository
	IndicatorValue IndicatorValueRepository
	Insight        InsightRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Country:        NewCountryRepository(db),
		Pillar:         NewPillarRepository(db),
		Dimension:      NewDimensionRepository(db),
		Indicator:      NewIndicatorRepository(db),
		IndicatorValue: NewIndicatorValueRepository(db),
		Insight:        NewInsightRepository(db),
	}
}
