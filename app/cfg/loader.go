package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

// Output mode selection, see OutputMode.
const (
	OutputModeDB   = "db"
	OutputModeJSON = "json"
)

type rawCfg struct {
	// Database configuration
	DBPath string `long:"db-path" env:"DB_PATH" default:"./podsift.db" description:"Path to the sqlite database file"`

	// Application configuration
	InputDir      string `long:"input-dir" env:"INPUT_DIR" default:"./feeds" description:"Directory containing fetched feed files"`
	OutputMode    string `long:"output-mode" env:"OUTPUT_MODE" default:"db" choice:"db" choice:"json" description:"Record destination: sqlite database or JSON files"`
	OutputDir     string `long:"output-dir" env:"OUTPUT_DIR" default:"./output" description:"Directory for JSON output (output-mode json)"`
	EntitiesFile  string `long:"entities-file" env:"ENTITIES_FILE" description:"Optional YAML file overriding the built-in XML entity table"`
	Port          string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	WorkerCount   int    `long:"worker-count" env:"WORKER_COUNT" default:"5" description:"Number of background workers for feed processing"`
	Watch         bool   `long:"watch" env:"WATCH" description:"Keep scanning the input directory for new files"`
	WatchInterval int    `long:"watch-interval" env:"WATCH_INTERVAL" default:"30" description:"Input directory scan interval in seconds"`

	// Application metadata
	Timezone string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug    bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		DBPath:        raw.DBPath,
		InputDir:      raw.InputDir,
		OutputMode:    raw.OutputMode,
		OutputDir:     raw.OutputDir,
		EntitiesFile:  raw.EntitiesFile,
		Port:          raw.Port,
		WorkerCount:   raw.WorkerCount,
		Watch:         raw.Watch,
		WatchInterval: raw.WatchInterval,
		Timezone:      raw.Timezone,
		Debug:         raw.Debug,
		Version:       GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
			fmt.Printf("Timezone configured: %s\n", timezone)
		}
	}
	return nil
}
