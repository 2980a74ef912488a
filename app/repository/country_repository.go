package repository

import (
	"errors"
	"strings"

	"github.com/braincapital/braincap/app/models"
	"gorm.io/gorm"
)

// countryRepository implements the CountryRepository interface
type countryRepository struct {
	db *gorm.DB
}

// NewCountryRepository creates a new country repository instance
func NewCountryRepository(db *gorm.DB) CountryRepository {
	return &countryRepository{db: db}
}

// Create creates a new country in the database
func (r *countryRepository) Create(country *models.Country) error {
	return r.db.Create(country).Error
}

// GetByID retrieves a country by its ID. Returns nil when not found.
func (r *countryRepository) GetByID(id uint) (*models.Country, error) {
	var country models.Country
	err := r.db.First(&country, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &country, nil
}

// GetByCode retrieves a country by its ISO code (case-insensitive)
func (r *countryRepository) GetByCode(code string) (*models.Country, error) {
	var country models.Country
	err := r.db.Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).First(&country).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &country, nil
}

// GetByRegion retrieves all countries in a region
func (r *countryRepository) GetByRegion(region string) ([]models.Country, error) {
	var countries []models.Country
	err := r.db.Where("region = ?", region).Find(&countries).Error
	return countries, err
}

// List retrieves countries with pagination
func (r *countryRepository) List(offset, limit int) ([]models.Country, error) {
	var countries []models.Country
	err := r.db.Order("name ASC").Offset(offset).Limit(limit).Find(&countries).Error
	return countries, err
}

// Update updates an existing country in the database
func (r *countryRepository) Update(country *models.Country) error {
	return r.db.Save(country).Error
}

// Delete removes a country. Indicator values and insights owned by the
// country are removed by the ON DELETE CASCADE constraints.
func (r *countryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Country{}, id).Error
}

// Count returns the total number of countries
func (r *countryRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Country{}).Count(&count).Error
	return count, err
}
