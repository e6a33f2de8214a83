package store

import (
	"context"

	"github.com/mwantia/resorter/pkg/db/models"
	"github.com/mwantia/resorter/pkg/filter"
	"github.com/mwantia/resorter/pkg/resume"
	"github.com/pkg/errors"
)

var (
	ErrDuplicateFilename = errors.New("candidate with this filename already exists")
	ErrNotFound          = errors.New("record not found")
)

// CandidateStore defines the interface for database operations
type CandidateStore interface {
	// Lifecycle
	Connect(ctx context.Context) error
	Close() error
	Migrate(ctx context.Context) error
	Health(ctx context.Context) error
	Kind() string

	// Candidate operations
	CreateCandidate(ctx context.Context, candidate *resume.Candidate) error
	GetCandidate(ctx context.Context, filename string) (*resume.Candidate, error)
	CandidateExists(ctx context.Context, filename string) (bool, error)
	ListCandidates(ctx context.Context) ([]resume.Candidate, error)
	Filter(ctx context.Context, cfg filter.Config) ([]resume.Candidate, error)

	// Intake bookkeeping
	IsFileProcessed(ctx context.Context, path string) (bool, error)
	MarkFileProcessed(ctx context.Context, path string) error
	CreateProcessingLog(ctx context.Context, entry *models.ProcessingLog) error
	ListProcessingLogs(ctx context.Context, limit int) ([]models.ProcessingLog, error)

	// Filter presets
	SaveFilterPreset(ctx context.Context, name, description string, cfg filter.Config) error
	GetFilterPreset(ctx context.Context, name string) (filter.Config, error)
	ListFilterPresets(ctx context.Context) ([]models.FilterPreset, error)
	DeleteFilterPreset(ctx context.Context, name string) error
}
