package main

import (
	"context"
	"flag"
	"log"

	"spacexdash/internal/config"
	"spacexdash/internal/container"
	"spacexdash/ui"
)

func main() {
	dataFile := flag.String("data", "spacex_launch_dash.csv", "launch data file (.csv or .xlsx)")
	port := flag.String("port", "8050", "HTTP port")
	flag.Parse()

	cfg := &config.Config{
		Data:   config.DataConfig{Source: config.SourceFile, File: *dataFile, Confidence: 0.95},
		Layout: config.DefaultLayout(),
	}
	appContainer, err := container.New(cfg)
	if err != nil {
		log.Fatal("Failed to create container:", err)
	}
	if err := appContainer.Init(context.Background()); err != nil {
		log.Fatal("Failed to load launch data:", err)
	}

	app, err := ui.NewApp(appContainer.Service, ui.Config{Port: *port})
	if err != nil {
		log.Fatal("Failed to create UI app:", err)
	}

	log.Printf("Starting launch dashboard on http://localhost:%s", *port)
	log.Fatal(app.Start())
}
