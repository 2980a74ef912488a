package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

// GetCountryRepository returns the country repository instance
func (f *Factory) GetCountryRepository() CountryRepository {
	return f.GetRepositories().Country
}

// GetPillarRepository returns the pillar repository instance
func (f *Factory) GetPillarRepository() PillarRepository {
	return f.GetRepositories().Pillar
}

// GetDimensionRepository returns the dimension repository instance
func (f *Factory) GetDimensionRepository() DimensionRepository {
	return f.GetRepositories().Dimension
}

// GetIndicatorRepository returns the indicator repository instance
func (f *Factory) GetIndicatorRepository() IndicatorRepository {
	return f.GetRepositories().Indicator
}

// GetIndicatorValueRepository returns the indicator value repository instance
func (f *Factory) GetIndicatorValueRepository() IndicatorValueRepository {
	return f.GetRepositories().IndicatorValue
}

// GetInsightRepository returns the insight repository instance
func (f *Factory) GetInsightRepository() InsightRepository {
	return f.GetRepositories().Insight
}

// Global factory instance
var globalFactory *Factory
var factoryOnce sync.Once

// InitializeFactory initializes the global repository factory
func InitializeFactory(db *gorm.DB) {
	factoryOnce.Do(func() {
		globalFactory = NewFactory(db)
	})
}

// GetGlobalFactory returns the global repository factory instance
func GetGlobalFactory() *Factory {
	if globalFactory == nil {
		panic("Repository factory not initialized. Call InitializeFactory first.")
	}
	return globalFactory
}

// GetGlobalRepositories returns the global repositories instance
func GetGlobalRepositories() *Repositories {
	return GetGlobalFactory().GetRepositories()
}
