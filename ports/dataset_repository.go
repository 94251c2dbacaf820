package ports

import (
	"context"

	"spacexdash/domain/core"
	"spacexdash/domain/launch"
)

// LaunchRepository defines the interface for persisted launch datasets
type LaunchRepository interface {
	// Save stores a snapshot and all of its records atomically.
	Save(ctx context.Context, snap *launch.Snapshot) error
	// Get loads one snapshot by ID with records in their original order.
	Get(ctx context.Context, id core.DatasetID) (*launch.Snapshot, error)
	// Latest loads the most recently saved snapshot.
	Latest(ctx context.Context) (*launch.Snapshot, error)
}
