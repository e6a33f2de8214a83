package store

import (
	"context"
	"fmt"

	config "github.com/mwantia/resorter/internal/config/server"
	"gorm.io/gorm/logger"
)

// Open creates, connects and migrates the store selected by the metadata configuration
func Open(ctx context.Context, cfg config.MetadataServerConfig, logSQL bool) (CandidateStore, error) {
	level := logger.Silent
	if logSQL {
		level = logger.Info
	}

	var s CandidateStore
	switch cfg.Type {
	case config.MetadataTypeMemory:
		return NewMemoryStore(), nil
	case config.MetadataTypeSQLite:
		sqliteStore, err := NewSQLiteStore(SQLiteConfig{
			Path:     cfg.SQLite.Path,
			LogLevel: level,
		})
		if err != nil {
			return nil, err
		}
		s = sqliteStore
	case config.MetadataTypePostgres:
		postgresStore, err := NewPostgresStore(PostgresConfig{
			DSN:          cfg.Postgres.DSN(),
			MaxOpenConns: cfg.Postgres.MaxOpenConns,
			LogLevel:     level,
		})
		if err != nil {
			return nil, err
		}
		s = postgresStore
	default:
		return nil, fmt.Errorf("unsupported metadata type '%s'", cfg.Type)
	}

	if err := s.Connect(ctx); err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to connect %s store: %w", s.Kind(), err)
	}
	if err := s.Migrate(ctx); err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to migrate %s store: %w", s.Kind(), err)
	}

	return s, nil
}
