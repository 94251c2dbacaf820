package excel

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"spacexdash/domain/core"
	"spacexdash/domain/launch"
	"spacexdash/internal"
	"spacexdash/internal/errors"
)

// LaunchLoader turns a CSV or XLSX file into a launch snapshot.
type LaunchLoader struct {
	reader *DataReader
	log    *internal.Logger
}

// NewLaunchLoader creates a loader for the file at path.
func NewLaunchLoader(path string) *LaunchLoader {
	return &LaunchLoader{reader: NewDataReader(path), log: internal.DefaultLogger.Named("LaunchLoader")}
}

// ReadLaunches reads and validates the whole file. A missing file, a missing
// required column, or a cell that cannot be parsed fails the load.
func (l *LaunchLoader) ReadLaunches(ctx context.Context) (*launch.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := l.reader.ReadData()
	if err != nil {
		return nil, err
	}

	records, err := ParseRecords(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid launch data in %s", l.reader.Path())
	}

	snap := &launch.Snapshot{
		ID:          core.NewDatasetID(),
		Source:      l.reader.Path(),
		Fingerprint: core.NewHash(data.Raw),
		LoadedAt:    time.Now().UTC(),
		Data:        launch.NewDataset(records),
	}
	l.log.Info("Loaded %d launch records from %s (dataset %s, sha256 %s)",
		snap.Data.Len(), snap.Source, snap.ID, snap.Fingerprint.Short())
	return snap, nil
}

// ParseRecords converts raw rows into launch records in file order.
func ParseRecords(data *ExcelData) ([]launch.Record, error) {
	for _, col := range launch.RequiredColumns {
		if !data.HasColumn(col) {
			return nil, errors.MissingColumn(col)
		}
	}

	records := make([]launch.Record, 0, len(data.Rows))
	for i, row := range data.Rows {
		// Row numbers are 1-based and count the header.
		line := i + 2

		site := row[launch.ColumnSite]
		if site == "" {
			return nil, errors.DatasetLoad(fmt.Sprintf("row %d: empty %q", line, launch.ColumnSite), nil)
		}

		payload, err := strconv.ParseFloat(strings.ReplaceAll(row[launch.ColumnPayloadMass], ",", ""), 64)
		if err != nil {
			return nil, errors.DatasetLoad(fmt.Sprintf("row %d: invalid %q value %q", line, launch.ColumnPayloadMass, row[launch.ColumnPayloadMass]), err)
		}
		if payload < 0 {
			return nil, errors.DatasetLoad(fmt.Sprintf("row %d: negative payload mass %g", line, payload), nil)
		}

		class, ok := launch.ParseOutcome(row[launch.ColumnClass])
		if !ok {
			return nil, errors.DatasetLoad(fmt.Sprintf("row %d: class must be 0 or 1, got %q", line, row[launch.ColumnClass]), nil)
		}

		records = append(records, launch.Record{
			Site:            site,
			PayloadMassKg:   payload,
			Class:           class,
			BoosterCategory: row[launch.ColumnBoosterCategory],
		})
	}
	return records, nil
}
