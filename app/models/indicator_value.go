package models

import (
	"time"
)

// IndicatorValue is one measurement of one indicator for one country in one
// year. The (country, indicator, year) triple is unique.
type IndicatorValue struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	CountryID       uint       `gorm:"not null;index;uniqueIndex:uq_indicator_value,priority:1" json:"country_id"`
	Country         *Country   `gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE" json:"country,omitempty"`
	IndicatorID     uint       `gorm:"not null;index;uniqueIndex:uq_indicator_value,priority:2" json:"indicator_id"`
	Indicator       *Indicator `gorm:"foreignKey:IndicatorID;constraint:OnDelete:CASCADE" json:"indicator,omitempty"`
	Year            int        `gorm:"not null;index;uniqueIndex:uq_indicator_value,priority:3" json:"year" validate:"gte=1900,lte=2100"`
	Value           *float64   `gorm:"type:decimal(15,4)" json:"value"`
	ConfidenceScore *float64   `gorm:"type:decimal(3,2)" json:"confidence_score" validate:"omitempty,gte=0,lte=1"`
	Notes           string     `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the IndicatorValue model
func (IndicatorValue) TableName() string {
	return "indicator_values"
}
