package models

import (
	"time"

	"gorm.io/datatypes"
)

// Insight is a cached, expiring piece of generated text scoped to a filter
// combination. It is created once, optionally rated by a user afterwards,
// and never updated otherwise. The hierarchy associations are nullable so
// deleting a pillar or dimension does not block on existing insights.
type Insight struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	InsightType     string         `gorm:"type:varchar(50);not null;index" json:"insight_type"`
	CountryID       *uint          `gorm:"index" json:"country_id"`
	Country         *Country       `gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE" json:"country,omitempty"`
	IndicatorID     *uint          `gorm:"index" json:"indicator_id"`
	Indicator       *Indicator     `gorm:"foreignKey:IndicatorID;constraint:OnDelete:CASCADE" json:"indicator,omitempty"`
	PillarID        *uint          `json:"pillar_id"`
	DimensionID     *uint          `json:"dimension_id"`
	YearStart       *int           `json:"year_start"`
	YearEnd         *int           `json:"year_end"`
	FilterParams    datatypes.JSON `gorm:"type:json" json:"filter_params"`
	InsightText     string         `gorm:"type:text;not null" json:"insight_text"`
	ConfidenceScore *float64       `gorm:"type:decimal(3,2)" json:"confidence_score"`
	ModelVersion    string         `gorm:"type:varchar(100)" json:"model_version"`
	GeneratedAt     time.Time      `gorm:"autoCreateTime;index" json:"generated_at"`
	ExpiresAt       time.Time      `gorm:"index" json:"expires_at"`
	UserFeedback    *int           `json:"user_feedback" validate:"omitempty,gte=1,lte=5"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Insight model
func (Insight) TableName() string {
	return "insights"
}

// IsExpired reports whether the insight is past its expiry at the given time
func (i *Insight) IsExpired(now time.Time) bool {
	return !i.ExpiresAt.After(now)
}
