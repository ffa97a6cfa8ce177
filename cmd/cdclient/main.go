// Package main implements the unified cdclient binary.
// It serves the HTTP query API over a client database file, or exports the
// database to SQLite and JSON, based on the --mode flag.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Xiphoseer/paradox-typed-db/internal/app"
	"github.com/Xiphoseer/paradox-typed-db/internal/config"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	var (
		configFile  string
		dataDir     string
		mode        string
		dbPath      string
		dbObject    string
		httpAddr    string
		exportDir   string
		showVersion bool
		showHelp    bool
	)

	flag.StringVar(&configFile, "config", "", "Path to configuration file (YAML or JSON)")
	flag.StringVar(&dataDir, "data-dir", "", "Base directory for downloaded and staged files")
	flag.StringVar(&mode, "mode", "", "Service mode: serve, export")
	flag.StringVar(&dbPath, "db", "", "Path to the client database file")
	flag.StringVar(&dbObject, "db-object", "", "Object storage key of the client database file")
	flag.StringVar(&httpAddr, "http-addr", "", "HTTP address for the query API")
	flag.StringVar(&exportDir, "export-dir", "", "Directory for export output")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showHelp, "help", false, "Show help message")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "cdclient - Typed query layer over the client database\n\n")
		fmt.Fprintf(os.Stderr, "Usage: cdclient [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  cdclient --db cdclient.fdb\n")
		fmt.Fprintf(os.Stderr, "  cdclient --mode export --db cdclient.fdb --export-dir ./out\n")
		fmt.Fprintf(os.Stderr, "  cdclient --config /etc/cdclient/config.yaml\n")
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  CDCLIENT_MODE             Service mode (serve, export)\n")
		fmt.Fprintf(os.Stderr, "  CDCLIENT_DATABASE_PATH    Path to the client database file\n")
		fmt.Fprintf(os.Stderr, "  CDCLIENT_DATABASE_OBJECT  Object storage key of the database file\n")
		fmt.Fprintf(os.Stderr, "  CDCLIENT_HTTP_ADDR        HTTP address for the query API\n")
		fmt.Fprintf(os.Stderr, "  CDCLIENT_STORAGE_TYPE     Storage type (local, s3)\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("cdclient version %s (commit: %s)\n", version, commit)
		os.Exit(0)
	}

	cfg, err := loadConfig(configFile, dataDir, mode, dbPath, dbObject, httpAddr, exportDir)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	ctx := context.Background()
	if err := application.Load(ctx); err != nil {
		log.Fatalf("Failed to load database: %v", err)
	}

	switch cfg.Mode {
	case config.ModeExport:
		stats, err := application.Export(ctx)
		if err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		out, _ := json.MarshalIndent(stats, "", "  ")
		fmt.Println(string(out))
	default:
		if err := application.Serve(ctx); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}
}

// loadConfig loads configuration from .env, file, environment, and command
// line flags, in increasing priority.
func loadConfig(configFile, dataDir, mode, dbPath, dbObject, httpAddr, exportDir string) (*config.Config, error) {
	config.LoadDotEnv()

	var cfg *config.Config
	var err error

	if configFile != "" {
		cfg, err = config.LoadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		cfg = config.DefaultConfig()
	}

	config.LoadFromEnv(cfg)

	// Command line flags win
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if mode != "" {
		cfg.Mode = config.Mode(mode)
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}
	if dbObject != "" {
		cfg.Database.Object = dbObject
	}
	if httpAddr != "" {
		cfg.HTTP.Addr = httpAddr
	}
	if exportDir != "" {
		cfg.Export.OutDir = exportDir
		cfg.Export.SQLitePath = ""
	}

	return cfg, nil
}
