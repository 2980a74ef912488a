package repository

import (
	"errors"
	"time"

	"github.com/braincapital/braincap/app/models"
	"gorm.io/gorm"
)

// insightRepository implements the InsightRepository interface
type insightRepository struct {
	db *gorm.DB
}

// NewInsightRepository creates a new insight repository instance
func NewInsightRepository(db *gorm.DB) InsightRepository {
	return &insightRepository{db: db}
}

// Create persists a newly generated insight
func (r *insightRepository) Create(insight *models.Insight) error {
	return r.db.Create(insight).Error
}

// GetByID retrieves an insight by its ID. Returns nil when not found.
func (r *insightRepository) GetByID(id uint) (*models.Insight, error) {
	var insight models.Insight
	err := r.db.First(&insight, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &insight, nil
}

// FindCached returns the first unexpired insight of the given type,
// additionally narrowed to a country when countryID is non-nil.
// Returns nil on a cache miss.
func (r *insightRepository) FindCached(insightType string, countryID *uint, now time.Time) (*models.Insight, error) {
	tx := r.db.Where("insight_type = ? AND expires_at > ?", insightType, now)
	if countryID != nil {
		tx = tx.Where("country_id = ?", *countryID)
	}

	var insight models.Insight
	err := tx.First(&insight).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &insight, nil
}

// Update updates an existing insight (feedback is the only mutation)
func (r *insightRepository) Update(insight *models.Insight) error {
	return r.db.Save(insight).Error
}

// Delete removes an insight by its ID
func (r *insightRepository) Delete(id uint) error {
	return r.db.Delete(&models.Insight{}, id).Error
}
