package repository

import (
	"errors"

	"github.com/braincapital/braincap/app/models"
	"gorm.io/gorm"
)

// dimensionRepository implements the DimensionRepository interface
type dimensionRepository struct {
	db *gorm.DB
}

// NewDimensionRepository creates a new dimension repository instance
func NewDimensionRepository(db *gorm.DB) DimensionRepository {
	return &dimensionRepository{db: db}
}

// Create creates a new dimension in the database
func (r *dimensionRepository) Create(dimension *models.Dimension) error {
	return r.db.Create(dimension).Error
}

// GetByID retrieves a dimension with its owning pillar. Returns nil when not found.
func (r *dimensionRepository) GetByID(id uint) (*models.Dimension, error) {
	var dimension models.Dimension
	err := r.db.Preload("Pillar").First(&dimension, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dimension, nil
}

// GetByPillarID retrieves the dimensions of a pillar in display order
func (r *dimensionRepository) GetByPillarID(pillarID uint) ([]models.Dimension, error) {
	var dimensions []models.Dimension
	err := r.db.Where("pillar_id = ?", pillarID).
		Order("display_order ASC, name ASC").Find(&dimensions).Error
	return dimensions, err
}

// Update updates an existing dimension in the database
func (r *dimensionRepository) Update(dimension *models.Dimension) error {
	return r.db.Save(dimension).Error
}

// Delete removes a dimension and cascades to its indicators and values
func (r *dimensionRepository) Delete(id uint) error {
	return r.db.Delete(&models.Dimension{}, id).Error
}
