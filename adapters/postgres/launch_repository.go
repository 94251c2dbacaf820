package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"spacexdash/domain/core"
	"spacexdash/domain/launch"
	"spacexdash/internal/errors"
	"spacexdash/ports"

	"github.com/jmoiron/sqlx"
)

// LaunchRepository stores launch datasets in PostgreSQL. It also serves as a
// ports.LaunchReader so the dashboard can start from the database.
type LaunchRepository struct {
	db *sqlx.DB
}

// NewLaunchRepository creates a new launch dataset repository
func NewLaunchRepository(db *sqlx.DB) *LaunchRepository {
	return &LaunchRepository{db: db}
}

var (
	_ ports.LaunchRepository = (*LaunchRepository)(nil)
	_ ports.LaunchReader     = (*LaunchRepository)(nil)
)

type datasetRow struct {
	ID          string    `db:"id"`
	Source      string    `db:"source"`
	Fingerprint string    `db:"fingerprint"`
	RecordCount int       `db:"record_count"`
	LoadedAt    time.Time `db:"loaded_at"`
}

type recordRow struct {
	RowIndex        int     `db:"row_index"`
	Site            string  `db:"launch_site"`
	PayloadMassKg   float64 `db:"payload_mass_kg"`
	Class           int     `db:"class"`
	BoosterCategory string  `db:"booster_version_category"`
}

// Save inserts the snapshot header and every record in a single transaction
func (r *LaunchRepository) Save(ctx context.Context, snap *launch.Snapshot) error {
	if snap == nil || snap.Data == nil {
		return errors.InvalidInput("snapshot has no data")
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.DatabaseError("failed to begin transaction", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx, `
		INSERT INTO launch_datasets (id, source, fingerprint, record_count, loaded_at)
		VALUES ($1, $2, $3, $4, $5)`,
		snap.ID.String(), snap.Source, snap.Fingerprint.String(), snap.Data.Len(), snap.LoadedAt,
	)
	if err != nil {
		return errors.DatabaseError("failed to insert launch dataset", err)
	}

	stmt, err := tx.PreparexContext(ctx, `
		INSERT INTO launch_records (dataset_id, row_index, launch_site, payload_mass_kg, class, booster_version_category)
		VALUES ($1, $2, $3, $4, $5, $6)`)
	if err != nil {
		return errors.DatabaseError("failed to prepare launch record insert", err)
	}
	defer stmt.Close()

	for i, rec := range snap.Data.Records() {
		if _, err := stmt.ExecContext(ctx, snap.ID.String(), i, rec.Site, rec.PayloadMassKg, int(rec.Class), rec.BoosterCategory); err != nil {
			return errors.DatabaseError(fmt.Sprintf("failed to insert launch record %d", i), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.DatabaseError("failed to commit launch dataset", err)
	}
	return nil
}

// Get loads a snapshot by ID
func (r *LaunchRepository) Get(ctx context.Context, id core.DatasetID) (*launch.Snapshot, error) {
	var header datasetRow
	err := r.db.GetContext(ctx, &header, `
		SELECT id, source, fingerprint, record_count, loaded_at
		FROM launch_datasets WHERE id = $1`, id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFound("launch dataset " + id.String())
		}
		return nil, errors.DatabaseError("failed to get launch dataset", err)
	}
	return r.loadRecords(ctx, header)
}

// Latest loads the most recently loaded snapshot
func (r *LaunchRepository) Latest(ctx context.Context) (*launch.Snapshot, error) {
	var header datasetRow
	err := r.db.GetContext(ctx, &header, `
		SELECT id, source, fingerprint, record_count, loaded_at
		FROM launch_datasets ORDER BY loaded_at DESC LIMIT 1`)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFound("launch dataset")
		}
		return nil, errors.DatabaseError("failed to get latest launch dataset", err)
	}
	return r.loadRecords(ctx, header)
}

// ReadLaunches serves the latest stored snapshot as the dashboard's data source
func (r *LaunchRepository) ReadLaunches(ctx context.Context) (*launch.Snapshot, error) {
	return r.Latest(ctx)
}

func (r *LaunchRepository) loadRecords(ctx context.Context, header datasetRow) (*launch.Snapshot, error) {
	var rows []recordRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT row_index, launch_site, payload_mass_kg, class, booster_version_category
		FROM launch_records WHERE dataset_id = $1 ORDER BY row_index`, header.ID)
	if err != nil {
		return nil, errors.DatabaseError("failed to load launch records", err)
	}
	if len(rows) != header.RecordCount {
		return nil, errors.DatasetLoad(fmt.Sprintf("launch dataset %s: expected %d records, found %d", header.ID, header.RecordCount, len(rows)), nil)
	}

	records := make([]launch.Record, len(rows))
	for i, row := range rows {
		records[i] = launch.Record{
			Site:            row.Site,
			PayloadMassKg:   row.PayloadMassKg,
			Class:           launch.Outcome(row.Class),
			BoosterCategory: row.BoosterCategory,
		}
	}

	return &launch.Snapshot{
		ID:          core.DatasetID(header.ID),
		Source:      header.Source,
		Fingerprint: core.Hash(header.Fingerprint),
		LoadedAt:    header.LoadedAt,
		Data:        launch.NewDataset(records),
	}, nil
}
