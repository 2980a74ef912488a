package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Country represents a country tracked by the platform
type Country struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Code       string    `gorm:"type:varchar(3);uniqueIndex;not null" json:"code" validate:"required,min=2,max=3"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	Region     string    `gorm:"type:varchar(100);index" json:"region"`
	Latitude   *float64  `gorm:"type:decimal(9,6)" json:"latitude"`
	Longitude  *float64  `gorm:"type:decimal(9,6)" json:"longitude"`
	Population *int64    `json:"population"`
	GDPUsd     *float64  `gorm:"column:gdp_usd;type:decimal(15,2)" json:"gdp_usd"`
	ViewCount  uint64    `gorm:"default:0" json:"view_count"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Country model
func (Country) TableName() string {
	return "countries"
}

// BeforeSave normalizes the ISO code to upper case
func (c *Country) BeforeSave(tx *gorm.DB) error {
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	return nil
}

// HasCoordinates reports whether the country can be placed on the map
func (c *Country) HasCoordinates() bool {
	return c.Latitude != nil && c.Longitude != nil
}

// Validate checks the country fields against the validation tags
func (c *Country) Validate() error {
	v := validator.New()
	return v.Struct(c)
}
