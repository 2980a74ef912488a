package repository

import (
	"errors"

	"github.com/braincapital/braincap/app/models"
	"gorm.io/gorm"
)

// indicatorValueRepository implements the IndicatorValueRepository interface
type indicatorValueRepository struct {
	db *gorm.DB
}

// NewIndicatorValueRepository creates a new indicator value repository instance
func NewIndicatorValueRepository(db *gorm.DB) IndicatorValueRepository {
	return &indicatorValueRepository{db: db}
}

// Create inserts a fact row. The database rejects a duplicate
// (country, indicator, year) triple atomically.
func (r *indicatorValueRepository) Create(value *models.IndicatorValue) error {
	return r.db.Create(value).Error
}

// GetByID retrieves a value by its ID. Returns nil when not found.
func (r *indicatorValueRepository) GetByID(id uint) (*models.IndicatorValue, error) {
	var value models.IndicatorValue
	err := r.db.First(&value, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// GetByKey retrieves a value by its natural (country, indicator, year) key
func (r *indicatorValueRepository) GetByKey(countryID, indicatorID uint, year int) (*models.IndicatorValue, error) {
	var value models.IndicatorValue
	err := r.db.Where("country_id = ? AND indicator_id = ? AND year = ?", countryID, indicatorID, year).
		First(&value).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// List retrieves values matching the query. Zero-valued query fields do not
// constrain the result.
func (r *indicatorValueRepository) List(query ValueQuery) ([]models.IndicatorValue, error) {
	tx := r.db.Model(&models.IndicatorValue{})

	if query.IndicatorID != 0 {
		tx = tx.Where("indicator_id = ?", query.IndicatorID)
	}
	if query.CountryID != 0 {
		tx = tx.Where("country_id = ?", query.CountryID)
	}
	if query.Year != 0 {
		tx = tx.Where("year = ?", query.Year)
	}
	if query.YearStart != 0 {
		tx = tx.Where("year >= ?", query.YearStart)
	}
	if query.YearEnd != 0 {
		tx = tx.Where("year <= ?", query.YearEnd)
	}

	limit := query.Limit
	if limit <= 0 {
		limit = 100
	}

	var values []models.IndicatorValue
	err := tx.Offset(query.Offset).Limit(limit).Find(&values).Error
	return values, err
}

// Update updates an existing value in the database
func (r *indicatorValueRepository) Update(value *models.IndicatorValue) error {
	return r.db.Save(value).Error
}

// Delete removes a value by its ID
func (r *indicatorValueRepository) Delete(id uint) error {
	return r.db.Delete(&models.IndicatorValue{}, id).Error
}

// Count returns the total number of fact rows
func (r *indicatorValueRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.IndicatorValue{}).Count(&count).Error
	return count, err
}
