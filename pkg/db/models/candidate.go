package models

import (
	"time"

	"github.com/mwantia/resorter/pkg/resume"
)

// Candidate represents a persisted resume record
type Candidate struct {
	ID       uint   `gorm:"primaryKey"`
	Filename string `gorm:"type:text;not null;uniqueIndex"`

	// Extracted attributes
	FullName   string `gorm:"type:text;not null"`
	Age        int    `gorm:"not null"`
	Experience int    `gorm:"not null"`
	Education  int    `gorm:"not null;index"`
	Salary     int    `gorm:"not null"`
	Summary    string `gorm:"type:text"`

	// Classification
	Status        string `gorm:"type:text;not null;index"`
	CategoryColor string `gorm:"type:text"`
	SourcePath    string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"index"`
}

func NewCandidate(c resume.Candidate) Candidate {
	return Candidate{
		Filename:      c.Filename,
		FullName:      c.FullName,
		Age:           c.Age,
		Experience:    c.Experience,
		Education:     int(c.Education),
		Salary:        c.Salary,
		Summary:       c.Summary,
		Status:        string(c.Category),
		CategoryColor: c.Color,
		SourcePath:    c.SourcePath,
		CreatedAt:     c.CreatedAt,
	}
}

func (m Candidate) Resume() resume.Candidate {
	return resume.Candidate{
		FullName:   m.FullName,
		Age:        m.Age,
		Experience: m.Experience,
		Education:  resume.EducationLevel(m.Education),
		Salary:     m.Salary,
		Summary:    m.Summary,
		Filename:   m.Filename,
		SourcePath: m.SourcePath,
		Category:   resume.Category(m.Status),
		Color:      m.CategoryColor,
		CreatedAt:  m.CreatedAt,
	}
}
