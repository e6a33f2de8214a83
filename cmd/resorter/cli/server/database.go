package server

import (
	"context"
	"fmt"

	"github.com/mwantia/resorter/pkg/db/migrations"
	"github.com/mwantia/resorter/pkg/db/store"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	config "github.com/mwantia/resorter/internal/config/server"
)

func NewDatabaseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Manage the metadata database schema",
	}

	cmd.AddCommand(newDatabaseMigrateCommand())
	cmd.AddCommand(newDatabaseStatusCommand())
	cmd.AddCommand(newDatabaseRollbackCommand())

	return cmd
}

func newDatabaseMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(ctx context.Context, m *migrations.Migrator) error {
				if err := m.Migrate(ctx); err != nil {
					return err
				}
				pterm.Success.Println("Database schema is up to date")
				return nil
			})
		},
	}
}

func newDatabaseStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(ctx context.Context, m *migrations.Migrator) error {
				statuses, err := m.Status(ctx)
				if err != nil {
					return err
				}

				data := pterm.TableData{{"Version", "Description", "Status"}}
				for _, s := range statuses {
					status := pterm.Yellow("pending")
					if s.Applied {
						status = pterm.Green("applied")
					}
					data = append(data, []string{fmt.Sprint(s.Version), s.Description, status})
				}
				return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
			})
		},
	}
}

func newDatabaseRollbackCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rollback",
		Short: "Roll back the last applied migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(ctx context.Context, m *migrations.Migrator) error {
				if err := m.Rollback(ctx); err != nil {
					return err
				}
				pterm.Success.Println("Rolled back the last migration")
				return nil
			})
		},
	}
}

func withMigrator(fn func(ctx context.Context, m *migrations.Migrator) error) error {
	cfg, err := config.LoadServerConfig()
	if err != nil {
		return fmt.Errorf("failed to load server configuration: %w", err)
	}

	var s *store.GormStore
	switch cfg.Metadata.Type {
	case config.MetadataTypeSQLite:
		s, err = store.NewSQLiteStore(store.SQLiteConfig{Path: cfg.Metadata.SQLite.Path})
	case config.MetadataTypePostgres:
		s, err = store.NewPostgresStore(store.PostgresConfig{
			DSN:          cfg.Metadata.Postgres.DSN(),
			MaxOpenConns: cfg.Metadata.Postgres.MaxOpenConns,
		})
	default:
		return fmt.Errorf("metadata type '%s' has no schema to manage", cfg.Metadata.Type)
	}
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := context.Background()
	if err := s.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect %s store: %w", s.Kind(), err)
	}

	return fn(ctx, migrations.NewMigrator(s.DB()))
}
