package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/podsift/podsift/app/api"
	"github.com/podsift/podsift/app/cfg"
	"github.com/podsift/podsift/app/database"
	"github.com/podsift/podsift/app/feed"
	"github.com/podsift/podsift/app/output"
	"github.com/podsift/podsift/app/tasks"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Load configuration from environment variables and command-line flags
	appCfg, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	if appCfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	log.Printf("Starting Podsift %s...", appCfg.Version)

	var entities map[string]string
	if appCfg.EntitiesFile != "" {
		entities, err = feed.LoadEntities(appCfg.EntitiesFile)
		if err != nil {
			log.Fatalf("Failed to load entities file: %v", err)
		}
		log.Printf("Loaded entity overrides from %s", appCfg.EntitiesFile)
	}

	parser := feed.NewParser(entities)

	var sink feed.Sink
	var db *database.DB

	switch appCfg.OutputMode {
	case cfg.OutputModeJSON:
		jsonSink, err := output.NewJSONSink(appCfg.OutputDir)
		if err != nil {
			log.Fatalf("Failed to create JSON output: %v", err)
		}
		log.Printf("Writing records to %s", jsonSink.Dir())
		sink = jsonSink
	default:
		log.Println("Connecting to database...")
		db, err = database.NewConnection(appCfg.DBPath)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		defer db.Close()

		version, dirty, err := database.RunMigrations(db)
		if err != nil {
			log.Fatal("Failed to run migrations:", err)
		}
		log.Printf("Database ready (schema version %d, dirty: %v)", version, dirty)

		sink = database.NewStore(db)
	}

	log.Printf("Starting background scheduler with %d workers...", appCfg.WorkerCount)
	scheduler := tasks.NewScheduler(parser, sink)
	scheduler.Start()
	defer scheduler.Stop()

	if !appCfg.Watch {
		// One-shot mode: drain the queue and exit.
		scheduler.Wait()
		log.Println("All feed files processed")
		return
	}

	// Watch mode keeps scanning the input directory; the status API is only
	// meaningful with a database behind it.
	var httpServer *http.Server
	serverErrChan := make(chan error, 1)

	if db != nil {
		newsfeedRepo := database.NewNewsfeedRepository(db)
		itemRepo := database.NewItemRepository(db)

		handler := api.NewHandler(newsfeedRepo, itemRepo)
		server := api.NewServer(handler, appCfg.Version)

		httpServer = &http.Server{
			Addr:         ":" + appCfg.Port,
			Handler:      server,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		}

		go func() {
			log.Printf("Starting HTTP server on port %s", appCfg.Port)
			log.Printf("  Health check:  http://localhost:%s/health", appCfg.Port)
			log.Printf("  Statistics:    http://localhost:%s/stats", appCfg.Port)
			log.Printf("  Newsfeeds:     http://localhost:%s/newsfeeds/<feed_id>", appCfg.Port)
			log.Printf("  Items:         http://localhost:%s/newsfeeds/<feed_id>/items", appCfg.Port)

			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Println("Podsift started successfully!")
	log.Println("Press Ctrl+C to shutdown gracefully...")

	select {
	case sig := <-sigChan:
		log.Printf("Received signal: %v", sig)
	case err := <-serverErrChan:
		log.Printf("Server error: %v", err)
	}

	log.Println("Shutting down gracefully...")

	if httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP server shutdown error: %v", err)
		} else {
			log.Println("HTTP server stopped")
		}
	}

	log.Println("Podsift shutdown complete")
}
