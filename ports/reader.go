package ports

import (
	"context"

	"spacexdash/domain/launch"
)

// LaunchReader loads the launch dataset from some source. It is called once
// at startup; any error is fatal to the process.
type LaunchReader interface {
	ReadLaunches(ctx context.Context) (*launch.Snapshot, error)
}
