package launch

import (
	"time"

	"spacexdash/domain/core"
)

// Required CSV columns.
const (
	ColumnSite            = "Launch Site"
	ColumnPayloadMass     = "Payload Mass (kg)"
	ColumnClass           = "class"
	ColumnBoosterCategory = "Booster Version Category"
)

// RequiredColumns lists the columns every launch data source must provide.
var RequiredColumns = []string{ColumnSite, ColumnPayloadMass, ColumnClass, ColumnBoosterCategory}

// Snapshot is a loaded dataset together with where and when it came from.
type Snapshot struct {
	ID          core.DatasetID
	Source      string
	Fingerprint core.Hash
	LoadedAt    time.Time
	Data        *Dataset
}
