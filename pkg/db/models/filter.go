package models

import (
	"time"
)

// FilterPreset stores a named filter configuration
type FilterPreset struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"type:text;not null;uniqueIndex"`
	Definition  string `gorm:"type:text;not null"` // YAML encoded filter configuration
	Description string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
