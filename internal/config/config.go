// Package config provides unified configuration for the cdclient services.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Mode represents the service mode to run.
type Mode string

const (
	ModeServe  Mode = "serve"
	ModeExport Mode = "export"
)

// Config holds the unified configuration for the cdclient services.
type Config struct {
	// Mode specifies which service to run: serve, export
	Mode Mode `json:"mode" yaml:"mode"`

	// DataDir is the base directory for downloaded and staged files
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// Database configuration
	Database DatabaseConfig `json:"database" yaml:"database"`

	// HTTP configuration
	HTTP HTTPConfig `json:"http" yaml:"http"`

	// Export service configuration
	Export ExportConfig `json:"export" yaml:"export"`

	// Storage configuration
	Storage StorageConfig `json:"storage" yaml:"storage"`
}

// DatabaseConfig holds the location of the client database file.
type DatabaseConfig struct {
	// Path is the local path to the database file. When Object is set, the
	// file is downloaded here first.
	Path string `json:"path" yaml:"path"`

	// Object is the object storage key of the database file. Empty means
	// Path already points at a local file.
	Object string `json:"object" yaml:"object"`
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	// Addr is the HTTP address for the query API
	Addr string `json:"addr" yaml:"addr"`

	// ReadTimeout is the HTTP read timeout
	ReadTimeout time.Duration `json:"read_timeout" yaml:"read_timeout"`

	// WriteTimeout is the HTTP write timeout
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout"`

	// IdleTimeout is the HTTP idle timeout
	IdleTimeout time.Duration `json:"idle_timeout" yaml:"idle_timeout"`
}

// ExportConfig holds export service configuration.
type ExportConfig struct {
	// OutDir is the directory for export output
	OutDir string `json:"out_dir" yaml:"out_dir"`

	// SQLitePath is the path of the SQLite export file
	SQLitePath string `json:"sqlite_path" yaml:"sqlite_path"`

	// CompressJSON enables snappy compression of per-table JSON exports
	CompressJSON bool `json:"compress_json" yaml:"compress_json"`

	// Tables restricts the export to the named tables. Empty exports all.
	Tables []string `json:"tables" yaml:"tables"`
}

// StorageConfig holds storage configuration.
type StorageConfig struct {
	// Type is the storage type: local, s3
	Type string `json:"type" yaml:"type"`

	// Path is the local storage path (for local type)
	Path string `json:"path" yaml:"path"`

	// S3 configuration (for s3 type)
	S3 S3Config `json:"s3" yaml:"s3"`
}

// S3Config holds S3 storage configuration.
type S3Config struct {
	// Bucket is the S3 bucket name
	Bucket string `json:"bucket" yaml:"bucket"`

	// Region is the AWS region
	Region string `json:"region" yaml:"region"`

	// Endpoint is the S3 endpoint (for S3-compatible storage)
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// UsePathStyle enables path-style addressing (required for MinIO)
	UsePathStyle bool `json:"use_path_style" yaml:"use_path_style"`
}

// DefaultConfig returns the default configuration for local development.
func DefaultConfig() *Config {
	return &Config{
		Mode:    ModeServe,
		DataDir: "./data/cdclient",
		Database: DatabaseConfig{
			Path: "cdclient.fdb",
		},
		HTTP: HTTPConfig{
			Addr:         ":8080",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Export: ExportConfig{
			CompressJSON: true,
		},
		Storage: StorageConfig{
			Type: "local",
		},
	}
}

// Resolve resolves relative paths and sets defaults based on DataDir.
func (c *Config) Resolve() {
	if c.DataDir == "" {
		c.DataDir = "./data/cdclient"
	}

	if c.Storage.Path == "" {
		c.Storage.Path = filepath.Join(c.DataDir, "storage")
	}

	if c.Export.OutDir == "" {
		c.Export.OutDir = filepath.Join(c.DataDir, "export")
	}
	if c.Export.SQLitePath == "" {
		c.Export.SQLitePath = filepath.Join(c.Export.OutDir, "cdclient.sqlite")
	}

	// A remote database object downloads into DataDir by default.
	if c.Database.Object != "" && c.Database.Path == "" {
		c.Database.Path = filepath.Join(c.DataDir, filepath.Base(c.Database.Object))
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeServe, ModeExport:
		// Valid modes
	default:
		return fmt.Errorf("invalid mode: %s (must be serve or export)", c.Mode)
	}

	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}

	if c.Database.Path == "" && c.Database.Object == "" {
		return fmt.Errorf("database.path or database.object is required")
	}

	if c.Storage.Type != "local" && c.Storage.Type != "s3" {
		return fmt.Errorf("invalid storage type: %s (must be local or s3)", c.Storage.Type)
	}

	if c.Storage.Type == "s3" && c.Storage.S3.Bucket == "" {
		return fmt.Errorf("s3.bucket is required when storage type is s3")
	}

	if c.Database.Object != "" && c.Storage.Type == "local" && c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required to resolve database.object locally")
	}

	return nil
}

// LoadFromFile loads configuration from a YAML or JSON file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", ext)
	}

	return cfg, nil
}

// LoadDotEnv loads a .env file into the process environment if one exists.
// Variables already set in the environment win.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables use the CDCLIENT_ prefix.
func LoadFromEnv(cfg *Config) {
	if v := os.Getenv("CDCLIENT_MODE"); v != "" {
		cfg.Mode = Mode(v)
	}
	if v := os.Getenv("CDCLIENT_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}

	// Database configuration
	if v := os.Getenv("CDCLIENT_DATABASE_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("CDCLIENT_DATABASE_OBJECT"); v != "" {
		cfg.Database.Object = v
	}

	// HTTP configuration
	if v := os.Getenv("CDCLIENT_HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("CDCLIENT_HTTP_READ_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.ReadTimeout = d
		}
	}
	if v := os.Getenv("CDCLIENT_HTTP_WRITE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.WriteTimeout = d
		}
	}

	// Export configuration
	if v := os.Getenv("CDCLIENT_EXPORT_OUT_DIR"); v != "" {
		cfg.Export.OutDir = v
	}
	if v := os.Getenv("CDCLIENT_EXPORT_SQLITE_PATH"); v != "" {
		cfg.Export.SQLitePath = v
	}
	if v := os.Getenv("CDCLIENT_EXPORT_COMPRESS_JSON"); v != "" {
		cfg.Export.CompressJSON = v == "true" || v == "1"
	}
	if v := os.Getenv("CDCLIENT_EXPORT_TABLES"); v != "" {
		cfg.Export.Tables = strings.Split(v, ",")
	}

	// Storage configuration
	if v := os.Getenv("CDCLIENT_STORAGE_TYPE"); v != "" {
		cfg.Storage.Type = v
	}
	if v := os.Getenv("CDCLIENT_STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("CDCLIENT_S3_BUCKET"); v != "" {
		cfg.Storage.S3.Bucket = v
	}
	if v := os.Getenv("CDCLIENT_S3_REGION"); v != "" {
		cfg.Storage.S3.Region = v
	}
	if v := os.Getenv("CDCLIENT_S3_ENDPOINT"); v != "" {
		cfg.Storage.S3.Endpoint = v
	}
	if v := os.Getenv("CDCLIENT_S3_USE_PATH_STYLE"); v != "" {
		cfg.Storage.S3.UsePathStyle = v == "true" || v == "1"
	}
}

// EnsureDirectories creates all required directories.
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.DataDir,
		c.Storage.Path,
		c.Export.OutDir,
	}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
