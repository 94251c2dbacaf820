package migration

import (
	"context"

	"spacexdash/internal/errors"

	"github.com/jmoiron/sqlx"
)

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createLaunchDatasetsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create launch_datasets table")
	}

	if err := r.createLaunchRecordsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create launch_records table")
	}

	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create indexes")
	}

	return nil
}

func (r *MigrationRunner) createLaunchDatasetsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS launch_datasets (
			id UUID PRIMARY KEY,
			source TEXT NOT NULL,
			fingerprint CHAR(64) NOT NULL,
			record_count INTEGER NOT NULL,
			loaded_at TIMESTAMP WITH TIME ZONE NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createLaunchRecordsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS launch_records (
			dataset_id UUID NOT NULL REFERENCES launch_datasets(id) ON DELETE CASCADE,
			row_index INTEGER NOT NULL,
			launch_site TEXT NOT NULL,
			payload_mass_kg DOUBLE PRECISION NOT NULL CHECK (payload_mass_kg >= 0),
			class SMALLINT NOT NULL CHECK (class IN (0, 1)),
			booster_version_category TEXT NOT NULL,
			PRIMARY KEY (dataset_id, row_index)
		)
	`)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_launch_datasets_loaded_at ON launch_datasets (loaded_at DESC)
	`)
	return err
}
