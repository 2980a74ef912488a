package models

import (
	"time"
)

// Pillar is the top-level category of brain capital measurement.
// Dimensions reference their pillar by ID; there is no back-reference here,
// child listings are queries against the dimension table.
type Pillar struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required,max=255"`
	Description  string    `gorm:"type:text" json:"description"`
	DisplayOrder int       `gorm:"default:0;index" json:"display_order"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Pillar model
func (Pillar) TableName() string {
	return "pillars"
}
