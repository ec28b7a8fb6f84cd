// Package config loads showmanager settings from the environment.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultDBName is the store file name shared with databases written by
// earlier releases.
const DefaultDBName = "gestao_espetaculos.db"

// Config holds all process settings. Empty paths are filled in by Load.
type Config struct {
	DBPath    string `env:"SHOWMANAGER_DB"`
	BackupDir string `env:"SHOWMANAGER_BACKUP_DIR"`
	ExportDir string `env:"SHOWMANAGER_EXPORT_DIR" envDefault:"."`
	LogFile   string `env:"SHOWMANAGER_LOG_FILE"`
	LogLevel  string `env:"SHOWMANAGER_LOG_LEVEL"  envDefault:"info"`
}

// Load reads an optional .env file from the working directory, then the
// environment. Variables already set in the environment win over .env.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.resolvePaths(); err != nil {
		return Config{}, err
	}
	if _, err := cfg.SlogLevel(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) resolvePaths() error {
	home, err := os.UserHomeDir()
	if err != nil && (c.DBPath == "" || hasTilde(c.DBPath, c.BackupDir, c.ExportDir, c.LogFile)) {
		return fmt.Errorf("finding home directory: %w", err)
	}
	if c.DBPath == "" {
		c.DBPath = filepath.Join(home, ".showmanager", DefaultDBName)
	}
	c.DBPath = expandHome(c.DBPath, home)
	if c.BackupDir == "" {
		c.BackupDir = filepath.Join(filepath.Dir(c.DBPath), "backups")
	}
	c.BackupDir = expandHome(c.BackupDir, home)
	c.ExportDir = expandHome(c.ExportDir, home)
	c.LogFile = expandHome(c.LogFile, home)
	return nil
}

func hasTilde(paths ...string) bool {
	for _, p := range paths {
		if strings.HasPrefix(p, "~") {
			return true
		}
	}
	return false
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("SHOWMANAGER_LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// OpenLog returns the writer use-case logs go to. Without a LogFile, logs
// are discarded so they never interleave with the terminal UI.
func (c Config) OpenLog() (io.WriteCloser, error) {
	if c.LogFile == "" {
		return nopCloser{io.Discard}, nil
	}
	if err := os.MkdirAll(filepath.Dir(c.LogFile), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
