package main

import (
	"context"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spacexdash/internal"
	"spacexdash/internal/config"
	"spacexdash/internal/container"
	"spacexdash/ui"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	internal.DefaultLogger = internal.NewLogger(internal.ParseLogLevel(appConfig.LogLevel))
	logger := internal.DefaultLogger.Named("main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appContainer, err := container.New(appConfig)
	if err != nil {
		log.Fatalf("Failed to create application container: %v", err)
	}
	defer appContainer.Shutdown()

	// A dataset that cannot be loaded means the dashboard cannot start.
	if err := appContainer.Init(ctx); err != nil {
		log.Fatalf("Failed to initialize dashboard: %v", err)
	}
	info := appContainer.Service.Info()
	logger.Info("Loaded %d launches from %s across %d sites", info.Records, info.Source, len(info.Sites))

	server, err := ui.NewServer(appContainer.Service, ":"+appConfig.Server.Port, appConfig.Server.GinMode)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Start()
	})

	var pprofServer *http.Server
	if appConfig.Profiling.Enabled {
		pprofServer = &http.Server{Addr: ":" + appConfig.Profiling.Port, ReadHeaderTimeout: 10 * time.Second}
		g.Go(func() error {
			logger.Info("Performance profiling server starting on :%s", appConfig.Profiling.Port)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if pprofServer != nil {
			_ = pprofServer.Shutdown(shutdownCtx)
		}
		return server.Shutdown(shutdownCtx)
	})

	logger.Info("Dashboard available at http://localhost:%s", appConfig.Server.Port)
	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	logger.Info("Shut down cleanly")
}
