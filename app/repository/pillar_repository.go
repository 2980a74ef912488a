package repository

import (
	"errors"

	"github.com/braincapital/braincap/app/models"
	"gorm.io/gorm"
)

// pillarRepository implements the PillarRepository interface
type pillarRepository struct {
	db *gorm.DB
}

// NewPillarRepository creates a new pillar repository instance
func NewPillarRepository(db *gorm.DB) PillarRepository {
	return &pillarRepository{db: db}
}

// Create creates a new pillar in the database
func (r *pillarRepository) Create(pillar *models.Pillar) error {
	return r.db.Create(pillar).Error
}

// GetByID retrieves a pillar by its ID. Returns nil when not found.
func (r *pillarRepository) GetByID(id uint) (*models.Pillar, error) {
	var pillar models.Pillar
	err := r.db.First(&pillar, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pillar, nil
}

// GetByName retrieves a pillar by its unique name
func (r *pillarRepository) GetByName(name string) (*models.Pillar, error) {
	var pillar models.Pillar
	err := r.db.Where("name = ?", name).First(&pillar).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pillar, nil
}

// GetAll retrieves all pillars in display order with a stable name tie-break
func (r *pillarRepository) GetAll() ([]models.Pillar, error) {
	var pillars []models.Pillar
	err := r.db.Order("display_order ASC, name ASC").Find(&pillars).Error
	return pillars, err
}

// Update updates an existing pillar in the database
func (r *pillarRepository) Update(pillar *models.Pillar) error {
	return r.db.Save(pillar).Error
}

// Delete removes a pillar. Dimensions, indicators and values underneath it
// are removed transitively by the ON DELETE CASCADE constraints.
func (r *pillarRepository) Delete(id uint) error {
	return r.db.Delete(&models.Pillar{}, id).Error
}
