package models

import "time"

const (
	OperationIntake = "intake"
	OperationSort   = "sort"

	StatusSuccess = "success"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

// ProcessingLog is a write-only audit entry for a single document operation
type ProcessingLog struct {
	ID        uint   `gorm:"primaryKey"`
	Filename  string `gorm:"type:text;index"`
	Operation string `gorm:"type:text;not null"`
	Status    string `gorm:"type:text;not null"`
	Message   string `gorm:"type:text"`

	CreatedAt time.Time
}

// ProcessedFile remembers source paths that already went through intake
type ProcessedFile struct {
	ID   uint   `gorm:"primaryKey"`
	Path string `gorm:"type:text;not null;uniqueIndex"`

	CreatedAt time.Time
}
