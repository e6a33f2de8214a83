package store

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/mwantia/resorter/pkg/db/migrations"
	"github.com/mwantia/resorter/pkg/db/models"
	"github.com/mwantia/resorter/pkg/filter"
	"github.com/mwantia/resorter/pkg/resume"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

const (
	KindSQLite   = "sqlite"
	KindPostgres = "postgres"
)

var (
	_ CandidateStore = (*GormStore)(nil)
	_ filter.Source  = (*GormStore)(nil)
)

// GormStore implements CandidateStore on top of a SQL database
type GormStore struct {
	db           *gorm.DB
	kind         string
	maxOpenConns int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	Path     string
	LogLevel logger.LogLevel
}

// PostgresConfig holds PostgreSQL-specific configuration
type PostgresConfig struct {
	DSN          string
	MaxOpenConns int
	LogLevel     logger.LogLevel
}

func gormConfig(level logger.LogLevel) *gorm.Config {
	// Default to silent logging
	if level == 0 {
		level = logger.Silent
	}

	return &gorm.Config{
		Logger: logger.Default.LogMode(level),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// NewSQLiteStore creates a new SQLite-backed candidate store
func NewSQLiteStore(cfg SQLiteConfig) (*GormStore, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), gormConfig(cfg.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	return &GormStore{
		db:           db,
		kind:         KindSQLite,
		maxOpenConns: 1, // SQLite only supports 1 writer
	}, nil
}

// NewPostgresStore creates a new PostgreSQL-backed candidate store
func NewPostgresStore(cfg PostgresConfig) (*GormStore, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("postgres dsn is required")
	}
	if cfg.MaxOpenConns <= 0 {
		cfg.MaxOpenConns = 10
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), gormConfig(cfg.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres database: %w", err)
	}

	return &GormStore{
		db:           db,
		kind:         KindPostgres,
		maxOpenConns: cfg.MaxOpenConns,
	}, nil
}

// DB returns the underlying GORM database instance
func (s *GormStore) DB() *gorm.DB {
	return s.db
}

func (s *GormStore) Kind() string {
	return s.kind
}

// Connect initializes the database connection
func (s *GormStore) Connect(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(s.maxOpenConns)
	sqlDB.SetMaxIdleConns(s.maxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return sqlDB.PingContext(ctx)
}

// Close closes the database connection
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}

// Migrate applies all pending versioned migrations
func (s *GormStore) Migrate(ctx context.Context) error {
	return migrations.NewMigrator(s.db).Migrate(ctx)
}

// Health checks database connectivity
func (s *GormStore) Health(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Candidate operations

func (s *GormStore) CreateCandidate(ctx context.Context, candidate *resume.Candidate) error {
	row := models.NewCandidate(*candidate)
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row)
	if result.Error != nil {
		return fmt.Errorf("failed to insert candidate %s: %w", candidate.Filename, result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.Wrap(ErrDuplicateFilename, candidate.Filename)
	}

	candidate.CreatedAt = row.CreatedAt
	return nil
}

func (s *GormStore) GetCandidate(ctx context.Context, filename string) (*resume.Candidate, error) {
	var row models.Candidate
	err := s.db.WithContext(ctx).Where("filename = ?", filename).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(ErrNotFound, filename)
	}
	if err != nil {
		return nil, err
	}

	candidate := row.Resume()
	return &candidate, nil
}

func (s *GormStore) CandidateExists(ctx context.Context, filename string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Candidate{}).
		Where("filename = ?", filename).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) ListCandidates(ctx context.Context) ([]resume.Candidate, error) {
	return s.Filter(ctx, filter.Config{})
}

// Filter returns matching candidates, newest first
func (s *GormStore) Filter(ctx context.Context, cfg filter.Config) ([]resume.Candidate, error) {
	query := s.db.WithContext(ctx).Model(&models.Candidate{})
	for _, p := range filter.Predicates(cfg) {
		query = query.Where(p.SQL, p.Args...)
	}

	var rows []models.Candidate
	if err := query.Order("created_at DESC").Order("id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to filter candidates: %w", err)
	}

	candidates := make([]resume.Candidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, row.Resume())
	}
	return candidates, nil
}

// Intake bookkeeping

func (s *GormStore) IsFileProcessed(ctx context.Context, path string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.ProcessedFile{}).
		Where("path = ?", path).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) MarkFileProcessed(ctx context.Context, path string) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.ProcessedFile{Path: path}).Error
}

func (s *GormStore) CreateProcessingLog(ctx context.Context, entry *models.ProcessingLog) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

func (s *GormStore) ListProcessingLogs(ctx context.Context, limit int) ([]models.ProcessingLog, error) {
	var entries []models.ProcessingLog
	query := s.db.WithContext(ctx).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&entries).Error
	return entries, err
}

// Filter presets

func (s *GormStore) SaveFilterPreset(ctx context.Context, name, description string, cfg filter.Config) error {
	definition, err := encodePreset(cfg)
	if err != nil {
		return err
	}

	preset := models.FilterPreset{
		Name:        name,
		Definition:  definition,
		Description: description,
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"definition", "description", "updated_at"}),
		}).
		Create(&preset).Error
}

func (s *GormStore) GetFilterPreset(ctx context.Context, name string) (filter.Config, error) {
	var preset models.FilterPreset
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&preset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return filter.Config{}, errors.Wrap(ErrNotFound, name)
	}
	if err != nil {
		return filter.Config{}, err
	}
	return decodePreset(preset.Definition)
}

func (s *GormStore) ListFilterPresets(ctx context.Context) ([]models.FilterPreset, error) {
	var presets []models.FilterPreset
	err := s.db.WithContext(ctx).Order("name ASC").Find(&presets).Error
	return presets, err
}

func (s *GormStore) DeleteFilterPreset(ctx context.Context, name string) error {
	result := s.db.WithContext(ctx).Where("name = ?", name).Delete(&models.FilterPreset{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.Wrap(ErrNotFound, name)
	}
	return nil
}
