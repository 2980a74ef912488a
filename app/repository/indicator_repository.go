package repository

import (
	"errors"

	"github.com/braincapital/braincap/app/models"
	"gorm.io/gorm"
)

// indicatorRepository implements the IndicatorRepository interface
type indicatorRepository struct {
	db *gorm.DB
}

// NewIndicatorRepository creates a new indicator repository instance
func NewIndicatorRepository(db *gorm.DB) IndicatorRepository {
	return &indicatorRepository{db: db}
}

// Create creates a new indicator in the database
func (r *indicatorRepository) Create(indicator *models.Indicator) error {
	return r.db.Create(indicator).Error
}

// GetByID retrieves an indicator with its dimension and that dimension's
// pillar eagerly loaded. Returns nil when not found.
func (r *indicatorRepository) GetByID(id uint) (*models.Indicator, error) {
	var indicator models.Indicator
	err := r.db.Preload("Dimension.Pillar").Preload("Dimension").First(&indicator, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &indicator, nil
}

// GetByDimensionID retrieves the active indicators of a dimension in display order
func (r *indicatorRepository) GetByDimensionID(dimensionID uint) ([]models.Indicator, error) {
	var indicators []models.Indicator
	err := r.db.Where("dimension_id = ? AND is_active = ?", dimensionID, true).
		Order("display_order ASC, name ASC").Find(&indicators).Error
	return indicators, err
}

// GetAllActive retrieves all active indicators in display order
func (r *indicatorRepository) GetAllActive() ([]models.Indicator, error) {
	var indicators []models.Indicator
	err := r.db.Where("is_active = ?", true).
		Order("display_order ASC, name ASC").Find(&indicators).Error
	return indicators, err
}

// Update updates an existing indicator in the database
func (r *indicatorRepository) Update(indicator *models.Indicator) error {
	return r.db.Save(indicator).Error
}

// Delete removes an indicator and cascades to its values
func (r *indicatorRepository) Delete(id uint) error {
	return r.db.Delete(&models.Indicator{}, id).Error
}
