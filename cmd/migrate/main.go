package main

import (
	"context"
	"log"
	"os"

	"spacexdash/adapters/excel"
	"spacexdash/adapters/postgres"
	"spacexdash/internal/migration"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func main() {
	if len(os.Args) < 3 {
		log.Fatal("Usage: migrate <database_url> <launch_data_file>")
	}

	databaseURL := os.Args[1]
	dataFile := os.Args[2]
	ctx := context.Background()

	log.Printf("Importing %s into database", dataFile)

	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.NewRunner().Run(ctx, db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	snap, err := excel.NewLaunchLoader(dataFile).ReadLaunches(ctx)
	if err != nil {
		log.Fatalf("Failed to read launch data: %v", err)
	}

	repo := postgres.NewLaunchRepository(db)
	if err := repo.Save(ctx, snap); err != nil {
		log.Fatalf("Failed to save launch dataset: %v", err)
	}

	log.Printf("Imported %d launch records as dataset %s (sha256 %s)", snap.Data.Len(), snap.ID, snap.Fingerprint.Short())
}
