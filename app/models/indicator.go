package models

import (
	"time"
)

// Indicator is a measurable metric nested under exactly one dimension.
// Deactivating an indicator hides it from all listings and filter results
// without deleting its historical values.
type Indicator struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	DimensionID    uint       `gorm:"not null;index;uniqueIndex:uq_indicator_dimension_name" json:"dimension_id"`
	Dimension      *Dimension `gorm:"foreignKey:DimensionID;constraint:OnDelete:CASCADE" json:"dimension,omitempty"`
	Name           string     `gorm:"type:varchar(255);not null;uniqueIndex:uq_indicator_dimension_name" json:"name" validate:"required,max=255"`
	Description    string     `gorm:"type:text" json:"description"`
	Unit           string     `gorm:"type:varchar(100)" json:"unit"`
	DataSource     string     `gorm:"type:varchar(255)" json:"data_source"`
	MethodologyURL string     `gorm:"type:text" json:"methodology_url"`
	DisplayOrder   int        `gorm:"default:0;index" json:"display_order"`
	IsActive       bool       `gorm:"default:true;index" json:"is_active"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Indicator model
func (Indicator) TableName() string {
	return "indicators"
}
