package services

import (
	"time"

	"spacexdash/domain/core"
	"spacexdash/domain/launch"
	"spacexdash/internal/config"
	"spacexdash/internal/profiling"
)

func testRecords() []launch.Record {
	return []launch.Record{
		{Site: "Cape Canaveral", PayloadMassKg: 0, Class: launch.Failure, BoosterCategory: "v1.0"},
		{Site: "Cape Canaveral", PayloadMassKg: 525, Class: launch.Failure, BoosterCategory: "v1.0"},
		{Site: "Vandenberg", PayloadMassKg: 500, Class: launch.Failure, BoosterCategory: "v1.1"},
		{Site: "Kennedy Space Center", PayloadMassKg: 2490, Class: launch.Success, BoosterCategory: "FT"},
		{Site: "Cape Canaveral", PayloadMassKg: 3170, Class: launch.Success, BoosterCategory: "FT"},
		{Site: "Vandenberg", PayloadMassKg: 9600, Class: launch.Success, BoosterCategory: "FT"},
	}
}

func newTestDataService() *DataService {
	snap := &launch.Snapshot{
		ID:          core.NewDatasetID(),
		Source:      "test.csv",
		Fingerprint: core.NewHash([]byte("test")),
		LoadedAt:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Data:        launch.NewDataset(testRecords()),
	}
	return NewDataService(snap, config.DefaultLayout(), profiling.NewProfiler(0.95))
}
