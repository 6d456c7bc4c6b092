// Package config resolves the database path and server settings from the
// environment and an optional global config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// DefaultDBFile is used when no path is configured.
	DefaultDBFile = "fund_data.db"
	// DefaultPort is the MCP server's SSE port.
	DefaultPort = 9000

	// EnvDBPath names the database path environment variable.
	EnvDBPath = "SQLITE_DB_PATH"
	// EnvPort names the server port environment variable.
	EnvPort = "FUNDDB_PORT"
)

// Config holds the resolved settings.
type Config struct {
	DBPath string
	Port   int
}

// Load resolves configuration: environment variables win, then the global
// config file, then defaults. A .env file in the working directory is read
// first if present. Relative database paths are made absolute against the
// working directory.
func Load() (*Config, error) {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	global, err := LoadGlobalConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DBPath: DefaultDBFile,
		Port:   DefaultPort,
	}
	if global.DBPath != "" {
		cfg.DBPath = global.DBPath
	}
	if global.Port != 0 {
		cfg.Port = global.Port
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %q", EnvPort, v)
		}
		cfg.Port = p
	}

	if !filepath.IsAbs(cfg.DBPath) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		cfg.DBPath = filepath.Join(cwd, cfg.DBPath)
	}

	return cfg, nil
}

// EnsureDBDir creates the database file's parent directory if missing.
func EnsureDBDir(dbPath string) error {
	dir := filepath.Dir(dbPath)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating database directory: %w", err)
	}
	return nil
}
