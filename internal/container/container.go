package container

import (
	"context"
	"fmt"

	"spacexdash/adapters/excel"
	"spacexdash/adapters/postgres"
	"spacexdash/domain/launch"
	"spacexdash/internal"
	"spacexdash/internal/config"
	"spacexdash/internal/errors"
	"spacexdash/internal/migration"
	"spacexdash/internal/profiling"
	"spacexdash/ports"
	"spacexdash/ui/services"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config

	// Infrastructure
	DB *sqlx.DB

	// Data access
	Reader     ports.LaunchReader
	Repository ports.LaunchRepository

	// Loaded data and the services built on it
	Snapshot *launch.Snapshot
	Service  *services.DataService
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	return &Container{Config: cfg}, nil
}

// ConnectDatabase opens the configured PostgreSQL database and runs migrations.
func (c *Container) ConnectDatabase(ctx context.Context) error {
	if c.Config.Database.URL == "" {
		return errors.ConfigInvalid("DATABASE_URL is required")
	}

	db, err := sqlx.ConnectContext(ctx, "postgres", c.Config.Database.URL)
	if err != nil {
		return errors.DatabaseError("failed to connect to database", err)
	}

	if err := migration.NewRunner().Run(ctx, db); err != nil {
		db.Close()
		return errors.Wrap(err, "database migration failed")
	}

	c.DB = db
	c.Repository = postgres.NewLaunchRepository(db)
	return nil
}

// Init picks the configured launch data source, loads the dataset once and
// builds the dashboard service over it.
func (c *Container) Init(ctx context.Context) error {
	switch c.Config.Data.Source {
	case config.SourcePostgres:
		if c.DB == nil {
			if err := c.ConnectDatabase(ctx); err != nil {
				return err
			}
		}
		c.Reader = postgres.NewLaunchRepository(c.DB)
	default:
		c.Reader = excel.NewLaunchLoader(c.Config.Data.File)
	}

	snap, err := c.Reader.ReadLaunches(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load launch data")
	}
	if snap.Data.Len() == 0 {
		internal.DefaultLogger.Named("Container").Warn("Launch dataset %s is empty; charts will render without data", snap.ID)
	}

	c.Snapshot = snap
	c.Service = services.NewDataService(snap, c.Config.Layout, profiling.NewProfiler(c.Config.Data.Confidence))
	return nil
}

// Shutdown releases held resources
func (c *Container) Shutdown() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			internal.DefaultLogger.Named("Container").Error("failed to close database: %v", err)
		}
	}
}
