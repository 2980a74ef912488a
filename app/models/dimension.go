package models

import (
	"time"
)

// Dimension is a sub-category nested under exactly one pillar.
// Name is unique within the owning pillar.
type Dimension struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PillarID     uint      `gorm:"not null;index;uniqueIndex:uq_dimension_pillar_name" json:"pillar_id"`
	Pillar       *Pillar   `gorm:"foreignKey:PillarID;constraint:OnDelete:CASCADE" json:"pillar,omitempty"`
	Name         string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_dimension_pillar_name" json:"name" validate:"required,max=255"`
	Description  string    `gorm:"type:text" json:"description"`
	DisplayOrder int       `gorm:"default:0;index" json:"display_order"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Dimension model
func (Dimension) TableName() string {
	return "dimensions"
}
